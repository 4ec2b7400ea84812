package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
)

type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ---------------- writes (always inside the placement transaction) ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

// ---------------- reads ----------------

// OrderSummary is one row of a user's order history; Items is a readable
// roll-up like "Margherita Pizza (x2), Classic Burger (x1)".
type OrderSummary struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	Items       string          `json:"items"`
}

func (r *OrderRepository) ListOrdersForUser(username string, limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []OrderSummary
	err := r.DB.Table("orders AS o").
		Select("o.id, o.total_amount, o.status, o.created_at, "+
			"GROUP_CONCAT(fi.name || ' (x' || oi.quantity || ')', ', ') AS items").
		Joins("LEFT JOIN order_items oi ON oi.order_id = o.id").
		Joins("LEFT JOIN food_items fi ON fi.id = oi.food_item_id").
		Where("o.username = ? AND o.deleted_at IS NULL", username).
		Group("o.id").
		Order("o.id DESC").Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *OrderRepository) GetOrderForUser(username string, orderID uint) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Where("id = ? AND username = ?", orderID, username).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetOrderItems(orderID uint) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Model(&entity.OrderItem{}).
		Select("id, quantity, unit_price, food_item_id, order_id").
		Where("order_id = ?", orderID).
		Find(&items).Error
	return items, err
}
