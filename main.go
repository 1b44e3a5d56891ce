package main

import (
	"fmt"
	"log"

	"wms-app/config"
	"wms-app/database"
	"wms-app/idgen"
	"wms-app/migration"
	"wms-app/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {

	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	mainDB, err := database.OpenMainDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := migration.Migrate(mainDB); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(mainDB)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupCompanyRoutes(app)
	routes.SetupItemRoutes(app)
	routes.SetupSupplierRoutes(app)
	routes.SetupCustomerRoutes(app)
	routes.SetupLocationRoutes(app)
	routes.SetupAsnRoutes(app)
	routes.SetupPutawayRoutes(app)
	routes.SetupPickingRoutes(app)

	port := config.APP_PORT
	fmt.Println("Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
