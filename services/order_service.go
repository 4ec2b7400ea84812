package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/cart"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/configs"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
)

// OrderService turns a cart into a persisted order. All writes happen in
// one transaction; sqlite has a single write path, so placements from all
// sessions serialize on the writer gate with a bounded wait instead of
// piling up on the database.
type OrderService struct {
	store *configs.Store
	repo  *repository.OrderRepository
	foods *repository.FoodItemRepository

	writer  chan struct{}
	timeout time.Duration
}

func NewOrderService(store *configs.Store, repo *repository.OrderRepository, foods *repository.FoodItemRepository, timeout time.Duration) *OrderService {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &OrderService{
		store:   store,
		repo:    repo,
		foods:   foods,
		writer:  make(chan struct{}, 1),
		timeout: timeout,
	}
}

type PlaceOrderIn struct {
	DeliveryAddress string `json:"deliveryAddress" binding:"required"`
	PhoneNumber     string `json:"phoneNumber"`
	PaymentMethod   string `json:"paymentMethod"`
}

type PlaceOrderOut struct {
	ID          uint            `json:"id"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Status      string          `json:"status"`
}

// PlaceOrder claims the cart, then writes the order header and one line
// per entry in a single transaction. The total is recomputed from the
// cart's own entries and pricing; nothing the client sends is trusted.
// Every line carries the entry's real food item id, re-validated against
// the catalog inside the transaction.
//
// On any failure the transaction rolls back, the claim is released and the
// cart is left intact for a retry. The caller clears the cart, and only
// after success.
func (s *OrderService) PlaceOrder(ctx context.Context, c *cart.Cart, username string, in *PlaceOrderIn) (*PlaceOrderOut, error) {
	snap, err := c.Checkout()
	if err != nil {
		return nil, err
	}

	// The claim is held without the cart lock, so waiting here never
	// blocks cart reads or other sessions.
	select {
	case s.writer <- struct{}{}:
	case <-time.After(s.timeout):
		c.Reopen()
		return nil, apperr.New(apperr.Conflict, "order placement is busy, try again")
	case <-ctx.Done():
		c.Reopen()
		return nil, apperr.Wrap(apperr.Conflict, "order placement cancelled", ctx.Err())
	}
	defer func() { <-s.writer }()

	db, err := s.store.DB()
	if err != nil {
		c.Reopen()
		return nil, err
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "Cash on Delivery"
	}

	txCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var out PlaceOrderOut
	err = db.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		order := entity.Order{
			Username:        username,
			TotalAmount:     snap.Total,
			Status:          entity.OrderPending,
			DeliveryAddress: in.DeliveryAddress,
			PhoneNumber:     in.PhoneNumber,
			PaymentMethod:   paymentMethod,
		}
		if err := s.repo.CreateOrder(tx, &order); err != nil {
			return apperr.Wrap(apperr.Persistence, "create order", err)
		}

		for _, e := range snap.Entries {
			item, err := s.foods.LookupTx(tx, e.FoodItemID)
			if err != nil {
				return err
			}
			if !item.Available {
				return apperr.Newf(apperr.NotFound, "%s is no longer available", item.Name)
			}

			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: e.FoodItemID,
				Quantity:   e.Quantity,
				UnitPrice:  e.UnitPrice,
			}
			if err := s.repo.CreateOrderItem(tx, &oi); err != nil {
				return apperr.Wrap(apperr.Persistence, "create order item", err)
			}
		}

		out = PlaceOrderOut{ID: order.ID, TotalAmount: order.TotalAmount, Status: order.Status}
		return nil
	})
	if err != nil {
		c.Reopen()
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperr.Wrap(apperr.Conflict, "order placement timed out", err)
		}
		if apperr.KindOf(err) == apperr.Unknown {
			err = apperr.Wrap(apperr.Persistence, "place order", err)
		}
		return nil, err
	}
	return &out, nil
}

func (s *OrderService) ListForUser(username string, limit int) ([]repository.OrderSummary, error) {
	orders, err := s.repo.ListOrdersForUser(username, limit)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "list orders", err)
	}
	return orders, nil
}

type OrderDetail struct {
	Order entity.Order       `json:"order"`
	Items []entity.OrderItem `json:"items"`
}

func (s *OrderService) DetailForUser(username string, orderID uint) (*OrderDetail, error) {
	o, err := s.repo.GetOrderForUser(username, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, apperr.Wrap(apperr.Persistence, "get order", err)
	}
	items, err := s.repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "get order items", err)
	}
	return &OrderDetail{Order: *o, Items: items}, nil
}
