package models

import (
	"wms-app/types"

	"gorm.io/gorm"
)

// Inventory is one stock row: an item quantity sitting in one location.
// qty_onhand is physical stock, qty_available is what picking may still
// allocate, qty_allocated is reserved by in-flight picks.
type Inventory struct {
	gorm.Model
	ID           types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	AsnID        int               `json:"asn_id" gorm:"default:null"`
	AsnDetailID  int               `json:"asn_detail_id" gorm:"default:null"`
	RecDate      string            `json:"rec_date"`
	LocationID   int               `json:"location_id"`
	LocationCode string            `json:"location_code"`
	ItemID       int               `json:"item_id"`
	ItemCode     string            `json:"item_code"`
	Barcode      string            `json:"barcode"`
	Uom          string            `json:"uom"`
	QtyOrigin    int               `json:"qty_origin" gorm:"default:0"`
	QtyOnhand    int               `json:"qty_onhand" gorm:"default:0"`
	QtyAvailable int               `json:"qty_available" gorm:"default:0"`
	QtyAllocated int               `json:"qty_allocated" gorm:"default:0"`
	QtyShipped   int               `json:"qty_shipped" gorm:"default:0"`
	IsPutaway    bool              `json:"is_putaway" gorm:"default:false"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
