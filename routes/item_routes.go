package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/items", middleware.AuthMiddleware)
	itemController := &controllers.ItemController{}
	api.Use(database.InjectDBMiddleware(itemController))

	api.Post("/upload-excel", itemController.CreateItemFromExcel)
	api.Post("/", itemController.CreateItem)
	api.Get("/", itemController.GetAllItems)
	api.Get("/:id", itemController.GetItemByID)
	api.Put("/:id", itemController.UpdateItem)
	api.Delete("/:id", itemController.DeleteItem)
}
