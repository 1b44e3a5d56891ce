package models

import (
	"wms-app/types"

	"gorm.io/gorm"
)

// PutawayLog records one movement of received stock from the dock into a
// storage location.
type PutawayLog struct {
	gorm.Model
	InventoryID  types.SnowflakeID `json:"inventory_id"`
	ItemID       int               `json:"item_id"`
	ItemCode     string            `json:"item_code"`
	FromLocation string            `json:"from_location"`
	ToLocation   string            `json:"to_location"`
	Quantity     int               `json:"quantity"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
