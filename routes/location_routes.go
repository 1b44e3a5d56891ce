package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupLocationRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/locations", middleware.AuthMiddleware)
	locationController := &controllers.LocationController{}
	api.Use(database.InjectDBMiddleware(locationController))

	api.Post("/", locationController.CreateLocation)
	api.Get("/", locationController.GetAllLocations)
	api.Get("/:id", locationController.GetLocationByID)
	api.Put("/:id", locationController.UpdateLocation)
	api.Delete("/:id", locationController.DeleteLocation)
}
