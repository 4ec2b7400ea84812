package repository

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
)

type FoodItemRepository struct{ DB *gorm.DB }

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{DB: db}
}

// MenuRow is a food item joined with its category name, the shape the
// menu endpoints return.
type MenuRow struct {
	ID           uint            `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Available    bool            `json:"available"`
	Vegetarian   bool            `json:"vegetarian"`
	ImageURL     string          `json:"imageUrl"`
	CategoryID   uint            `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
}

func (r *FoodItemRepository) ListAvailable() ([]MenuRow, error) {
	var out []MenuRow
	err := r.DB.Table("food_items AS fi").
		Select("fi.id, fi.name, fi.description, fi.price, fi.available, fi.vegetarian, fi.image_url, fi.category_id, c.name AS category_name").
		Joins("JOIN categories c ON c.id = fi.category_id").
		Where("fi.available = ? AND fi.deleted_at IS NULL", true).
		Order("fi.name").
		Scan(&out).Error
	return out, err
}

// Lookup resolves a catalog item by id. Both the add-to-cart path and
// order placement use this; placement re-runs it inside the transaction.
func (r *FoodItemRepository) Lookup(itemID uint) (*entity.FoodItem, error) {
	return lookup(r.DB, itemID)
}

// LookupTx is Lookup against an open transaction.
func (r *FoodItemRepository) LookupTx(tx *gorm.DB, itemID uint) (*entity.FoodItem, error) {
	return lookup(tx, itemID)
}

func lookup(db *gorm.DB, itemID uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := db.First(&item, itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Newf(apperr.NotFound, "food item %d not found", itemID)
		}
		return nil, apperr.Wrap(apperr.Persistence, "lookup food item", err)
	}
	return &item, nil
}

func (r *FoodItemRepository) ListCategories() ([]entity.Category, error) {
	var out []entity.Category
	err := r.DB.Order("name").Find(&out).Error
	return out, err
}
