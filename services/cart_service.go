package services

import (
	"github.com/shopspring/decimal"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/cart"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/session"
)

type CartService struct {
	sessions *session.Store
	foods    *repository.FoodItemRepository
}

func NewCartService(sessions *session.Store, foods *repository.FoodItemRepository) *CartService {
	return &CartService{sessions: sessions, foods: foods}
}

type AddToCartIn struct {
	ItemID uint     `json:"itemId" binding:"required"`
	Qty    int      `json:"qty"`
	Extras []string `json:"extras"`
}

type CartView struct {
	Entries  []cart.Entry    `json:"entries"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Total    decimal.Decimal `json:"total"`
}

// Add snapshots the item's current catalog price into a new cart entry.
func (s *CartService) Add(sessionID string, in *AddToCartIn) error {
	c, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}

	item, err := s.foods.Lookup(in.ItemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return apperr.Newf(apperr.Validation, "%s is not available", item.Name)
	}

	mods, err := cart.ExtrasByName(in.Extras...)
	if err != nil {
		return err
	}

	return c.Add(item.ID, item.Name, item.Price, in.Qty, mods...)
}

func (s *CartService) View(sessionID string) (*CartView, error) {
	c, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	return &CartView{
		Entries:  c.Entries(),
		Subtotal: c.Subtotal(),
		Total:    c.Total(),
	}, nil
}

func (s *CartService) Clear(sessionID string) error {
	c, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	c.Clear()
	return nil
}
