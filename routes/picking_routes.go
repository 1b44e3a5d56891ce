package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupPickingRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/picking", middleware.AuthMiddleware)
	pickingController := &controllers.PickingController{}
	api.Use(database.InjectDBMiddleware(pickingController))

	// fixed paths before the :id routes
	api.Get("/export", pickingController.ExportPickingList)
	api.Get("/locations/:itemId", pickingController.GetPickingLocations)
	api.Post("/", pickingController.CreatePicking)
	api.Get("/", pickingController.GetPickingList)
	api.Get("/:id", pickingController.GetPickingByID)
	api.Post("/:id/process", pickingController.ProcessPicking)
	api.Delete("/:id", pickingController.CancelPicking)
}
