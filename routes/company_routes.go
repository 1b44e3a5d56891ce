package routes

import (
	"wms-app/config"
	"wms-app/controllers"
	"wms-app/database"
	"wms-app/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {

	api := app.Group(config.MAIN_ROUTES+"/companies", middleware.AuthMiddleware)
	companyController := &controllers.CompanyController{}
	api.Use(database.InjectDBMiddleware(companyController))

	api.Post("/", companyController.CreateCompany)
	api.Get("/", companyController.GetAllCompanies)
	api.Get("/:id", companyController.GetCompanyByID)
	api.Put("/:id", companyController.UpdateCompany)
	api.Delete("/:id", companyController.DeleteCompany)
}
