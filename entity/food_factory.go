package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DishConstructor builds a catalog item from its type tag. New dishes are
// added with RegisterDish, not by branching on the tag.
type DishConstructor func() FoodItem

var dishRegistry = map[string]DishConstructor{}

func RegisterDish(tag string, build DishConstructor) {
	dishRegistry[strings.ToLower(tag)] = build
}

func NewDish(tag string) (FoodItem, bool) {
	build, ok := dishRegistry[strings.ToLower(tag)]
	if !ok {
		return FoodItem{}, false
	}
	return build(), true
}

func init() {
	RegisterDish("pizza", func() FoodItem {
		return FoodItem{
			Name:        "Margherita Pizza",
			Description: "Tomato, mozzarella and basil",
			Price:       decimal.RequireFromString("12.99"),
			Available:   true,
			Vegetarian:  true,
		}
	})
	RegisterDish("pasta", func() FoodItem {
		return FoodItem{
			Name:        "Spaghetti Carbonara",
			Description: "Egg, pecorino and guanciale",
			Price:       decimal.RequireFromString("10.49"),
			Available:   true,
		}
	})
	RegisterDish("burger", func() FoodItem {
		return FoodItem{
			Name:        "Classic Burger",
			Description: "Beef patty, cheddar and pickles",
			Price:       decimal.RequireFromString("8.99"),
			Available:   true,
		}
	})
}
