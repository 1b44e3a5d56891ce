package models

import (
	"gorm.io/gorm"
)

type Supplier struct {
	gorm.Model
	SupplierCode string `json:"supplier_code" gorm:"unique" validate:"required"`
	SupplierName string `json:"supplier_name" validate:"required"`
	SuppAddr1    string `json:"supp_addr1"`
	SuppCity     string `json:"supp_city"`
	SuppCountry  string `json:"supp_country"`
	SuppPhone    string `json:"supp_phone"`
	SuppEmail    string `json:"supp_email"`
	CompanyCode  string `json:"company_code"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
