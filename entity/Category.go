package entity

import (
	"gorm.io/gorm"
)

type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"uniqueIndex"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	FoodItems []FoodItem `json:"-"`
}
