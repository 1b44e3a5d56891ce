package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPutawayRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/putaway", middleware.AuthMiddleware)
	putawayController := &controllers.PutawayController{}
	api.Use(database.InjectDBMiddleware(putawayController))

	api.Get("/pending", putawayController.GetPendingPutaway)
	api.Get("/logs", putawayController.GetPutawayLogs)
	api.Post("/process", putawayController.ProcessPutaway)
}
