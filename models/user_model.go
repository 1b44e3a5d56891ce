package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Password  string `json:"-" validate:"required,min=6"`
	Email     string `json:"email"`
	Role      string `json:"role" gorm:"default:'operator'"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type LoginLog struct {
	gorm.Model
	UserID    uint       `json:"user_id"`
	SessionID string     `json:"session_id"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	LogoutAt  *time.Time `json:"logout_at"`
}
