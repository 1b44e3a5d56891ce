package database

import (
	"errors"
	"log"

	"wms-app/config"
	"wms-app/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedAdminUser(db)
	SeedCompany(db)
	SeedDockLocation(db)
}

func SeedAdminUser(db *gorm.DB) {
	var existing models.User
	err := db.Where("username = ?", "admin").First(&existing).Error
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Unexpected DB error: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := models.User{
		Username: "admin",
		Name:     "Administrator",
		Password: string(hashed),
		Role:     "admin",
		IsActive: true,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}
}

func SeedCompany(db *gorm.DB) {
	company := models.Company{
		CompanyCode: "DEFAULT",
		CompanyName: "Default Company",
		IsActive:    true,
	}

	var existing models.Company
	if err := db.Where("company_code = ?", company.CompanyCode).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&company)
		}
	}
}

// SeedDockLocation makes sure the receiving dock exists so ASN receive always
// has somewhere to land stock.
func SeedDockLocation(db *gorm.DB) {
	dock := models.Location{
		LocationCode: config.ReceivingDock,
		LocationName: "Receiving Dock",
		Area:         "DOCK",
		IsActive:     true,
	}

	var existing models.Location
	if err := db.Where("location_code = ?", dock.LocationCode).First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&dock)
		}
	}
}
