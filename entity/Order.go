package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	Username        string          `json:"username" gorm:"index"`
	TotalAmount     decimal.Decimal `json:"totalAmount" gorm:"type:decimal(10,2)"`
	Status          string          `json:"status" gorm:"default:'PENDING'"`
	DeliveryAddress string          `json:"deliveryAddress"`
	PhoneNumber     string          `json:"phoneNumber"`
	PaymentMethod   string          `json:"paymentMethod" gorm:"default:'Cash on Delivery'"`

	// preload only for order detail
	OrderItems []OrderItem `json:"-"`
}
