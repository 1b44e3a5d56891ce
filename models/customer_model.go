package models

import (
	"gorm.io/gorm"
)

type Customer struct {
	gorm.Model
	CustomerCode string `json:"customer_code" gorm:"unique" validate:"required"`
	CustomerName string `json:"customer_name" validate:"required"`
	CustAddr1    string `json:"cust_addr1"`
	CustCity     string `json:"cust_city"`
	CustCountry  string `json:"cust_country"`
	CustPhone    string `json:"cust_phone"`
	CustEmail    string `json:"cust_email"`
	CompanyCode  string `json:"company_code"`
	CreatedBy    int
	UpdatedBy    int
	DeletedBy    int
}
