package models

import (
	"gorm.io/gorm"
)

// Company is the goods owner every item and order belongs to.
type Company struct {
	gorm.Model
	CompanyCode string `json:"company_code" gorm:"unique" validate:"required"`
	CompanyName string `json:"company_name" validate:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}
