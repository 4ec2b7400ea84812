package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username     string `json:"username" gorm:"uniqueIndex"`
	PasswordHash string `json:"-"`
	Email        string `json:"email"`
	FullName     string `json:"fullName"`
	Phone        string `json:"phone"`
	Role         string `json:"role" gorm:"default:'CUSTOMER'"`
	IsActive     bool   `json:"isActive" gorm:"default:true"`

	Orders []Order `json:"-" gorm:"foreignKey:Username;references:Username"`
}
