package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAsnRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/asn", middleware.AuthMiddleware)
	asnController := &controllers.AsnController{}
	api.Use(database.InjectDBMiddleware(asnController))

	api.Post("/", asnController.CreateAsn)
	api.Get("/", asnController.GetAsnList)
	api.Get("/:id", asnController.GetAsnByID)
	api.Post("/:id/receive", asnController.ReceiveAsn)
	api.Delete("/:id", asnController.DeleteAsn)
}
