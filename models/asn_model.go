package models

import (
	"gorm.io/gorm"
)

type AsnHeader struct {
	gorm.Model
	AsnNo        string `json:"asn_no" gorm:"unique"`
	AsnDate      string `json:"asn_date"`
	PoNumber     string `json:"po_number"`
	SupplierID   int    `json:"supplier_id" gorm:"default:null"`
	SupplierCode string `json:"supplier_code" validate:"required"`
	SupplierName string `json:"supplier_name"`
	CompanyCode  string `json:"company_code" validate:"required"`
	Status       string `json:"status" gorm:"default:'open'"`
	Remarks      string `json:"remarks"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int

	AsnDetails []AsnDetail `gorm:"foreignKey:AsnID;references:ID;constraint:OnDelete:CASCADE" json:"asn_details"`
}

type AsnDetail struct {
	gorm.Model
	AsnID       int    `json:"asn_id" gorm:"default:null"`
	AsnNo       string `json:"asn_no"`
	LineNumber  string `json:"line_number"`
	ItemID      int    `json:"item_id"`
	ItemCode    string `json:"item_code" validate:"required"`
	Barcode     string `json:"barcode"`
	Quantity    int    `json:"quantity" validate:"required,min=1"`
	QtyReceived int    `json:"qty_received" gorm:"default:0"`
	Uom         string `json:"uom"`
	Status      string `json:"status" gorm:"default:'open'"`
	Remarks     string `json:"remarks"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
