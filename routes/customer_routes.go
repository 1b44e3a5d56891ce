package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/customers", middleware.AuthMiddleware)
	customerController := &controllers.CustomerController{}
	api.Use(database.InjectDBMiddleware(customerController))

	api.Post("/", customerController.CreateCustomer)
	api.Get("/", customerController.GetAllCustomers)
	api.Get("/:id", customerController.GetCustomerByID)
	api.Put("/:id", customerController.UpdateCustomer)
	api.Delete("/:id", customerController.DeleteCustomer)
}
