package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {

	authController := &controllers.AuthController{}

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Use(database.InjectDBMiddleware(authController))
	api.Post("/login", authController.Login)

	apiAuth := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	apiAuth.Use(database.InjectDBMiddleware(authController))
	apiAuth.Get("/logout", authController.Logout)
	apiAuth.Get("/isLoggedIn", authController.IsLoggedIn)
}
