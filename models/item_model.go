package models

import (
	"gorm.io/gorm"
)

type Item struct {
	gorm.Model
	ItemCode    string `json:"item_code" gorm:"unique" validate:"required"`
	ItemName    string `json:"item_name" validate:"required"`
	Barcode     string `json:"barcode"`
	Uom         string `json:"uom" gorm:"default:'PCS'"`
	CompanyCode string `json:"company_code" validate:"required"`
	Remarks     string `json:"remarks"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
