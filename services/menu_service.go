package services

import (
	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/pkg/apperr"
	"github.com/nudrat-nrt/Online-Food-Delivery-System/repository"
)

// MenuService is read-only catalog browsing; none of it runs inside a
// transaction.
type MenuService struct {
	foods *repository.FoodItemRepository
}

func NewMenuService(foods *repository.FoodItemRepository) *MenuService {
	return &MenuService{foods: foods}
}

func (s *MenuService) List() ([]repository.MenuRow, error) {
	items, err := s.foods.ListAvailable()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "list menu", err)
	}
	return items, nil
}

func (s *MenuService) Detail(itemID uint) (*entity.FoodItem, error) {
	return s.foods.Lookup(itemID)
}

func (s *MenuService) Categories() ([]entity.Category, error) {
	cats, err := s.foods.ListCategories()
	if err != nil {
		return nil, apperr.Wrap(apperr.Persistence, "list categories", err)
	}
	return cats, nil
}
