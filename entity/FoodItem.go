package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
	Available   bool            `json:"available" gorm:"default:true"`
	Vegetarian  bool            `json:"vegetarian" gorm:"default:false"`
	ImageURL    string          `json:"imageUrl"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"` // preload only when the category name is needed
}
