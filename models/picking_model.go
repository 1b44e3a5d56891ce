package models

import (
	"wms-app/types"

	"gorm.io/gorm"
)

type PickingHeader struct {
	gorm.Model
	PickingNo       string              `json:"picking_no" gorm:"unique"`
	SalesOrderNo    string              `json:"sales_order_no"`
	CustomerID      int                 `json:"customer_id" gorm:"default:null"`
	CustomerCode    string              `json:"customer_code" validate:"required"`
	CustomerName    string              `json:"customer_name"`
	HoldingLocation string              `json:"holding_location"`
	Status          types.PickingStatus `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	Remarks         string              `json:"remarks"`
	CreatedBy       int
	UpdatedBy       int
	DeletedBy       int

	PickingDetails []PickingDetail `gorm:"foreignKey:PickingID;references:ID;constraint:OnDelete:CASCADE" json:"picking_details"`
}

type PickingDetail struct {
	gorm.Model
	PickingID   int                `json:"picking_id" gorm:"default:null"`
	PickingNo   string             `json:"picking_no"`
	ItemID      int                `json:"item_id"`
	ItemCode    string             `json:"item_code"`
	ItemName    string             `json:"item_name"`
	Uom         string             `json:"uom"`
	QtyRequired int                `json:"qty_required" validate:"required,min=1"`
	QtyPicked   int                `json:"qty_picked" gorm:"default:0"`
	Status      types.DetailStatus `json:"status" gorm:"type:varchar(20);default:'Pending'"`
	LocationID  int                `json:"location_id" gorm:"default:null"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// RemainingQuantity is the still-unpicked portion of the line. Never negative:
// qty_picked is capped at qty_required by the process endpoint.
func (d *PickingDetail) RemainingQuantity() int {
	remaining := d.QtyRequired - d.QtyPicked
	if remaining < 0 {
		return 0
	}
	return remaining
}
