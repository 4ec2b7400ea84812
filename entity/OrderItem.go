package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Quantity int `json:"quantity"`
	// snapshot taken when the item went into the cart, immune to later
	// catalog price changes
	UnitPrice decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`

	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	FoodItemID uint     `json:"foodItemId"`
	FoodItem   FoodItem `json:"-"` // preload only when the item name is needed
}
