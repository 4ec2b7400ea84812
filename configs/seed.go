package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/nudrat-nrt/Online-Food-Delivery-System/entity"
)

func SetupDatabase(s *Store) error {
	db, err := s.DB()
	if err != nil {
		return err
	}
	return db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.FoodItem{},
		&entity.Order{}, &entity.OrderItem{},
	)
}

func SeedAdmin(s *Store, cfg *Config) error {
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_PASSWORD")
		return nil
	}
	db, err := s.DB()
	if err != nil {
		return err
	}

	var count int64
	db.Model(&entity.User{}).Where("username = ?", cfg.AdminUsername).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", cfg.AdminUsername)
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := entity.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         "ADMIN",
		IsActive:     true,
	}
	return db.Create(&admin).Error
}

// SeedMenu fills the catalog on first run: categories plus the registered
// default dishes.
func SeedMenu(s *Store) error {
	db, err := s.DB()
	if err != nil {
		return err
	}

	categories := map[string]entity.Category{
		"pizza":  {Name: "Pizza", Description: "Wood-fired pizzas"},
		"pasta":  {Name: "Pasta", Description: "Fresh pasta dishes"},
		"burger": {Name: "Burgers", Description: "Burgers and sides"},
	}
	for tag, c := range categories {
		row := c
		if err := db.Where(entity.Category{Name: c.Name}).FirstOrCreate(&row).Error; err != nil {
			return err
		}
		categories[tag] = row
	}

	for _, tag := range []string{"pizza", "pasta", "burger"} {
		item, ok := entity.NewDish(tag)
		if !ok {
			continue
		}
		item.CategoryID = categories[tag].ID
		if err := db.Where(entity.FoodItem{Name: item.Name}).
			Attrs(item).FirstOrCreate(&entity.FoodItem{}).Error; err != nil {
			return err
		}
	}

	log.Println("✅ menu seeded")
	return nil
}
