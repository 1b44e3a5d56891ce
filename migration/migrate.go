package migration

import (
	"wms-app/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.LoginLog{},
		&models.Company{},
		&models.Item{},
		&models.Supplier{},
		&models.Customer{},
		&models.Location{},
		&models.Inventory{},
		&models.AsnHeader{},
		&models.AsnDetail{},
		&models.PutawayLog{},
		&models.PickingHeader{},
		&models.PickingDetail{},
	)
}
