package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"table-order/models"
)

type seedMenu struct {
	Name        string
	Description string
	Price       float64
}

type seedCategory struct {
	Name        string
	Description string
	Menus       []seedMenu
}

var defaultSeedCategories = []seedCategory{
	{
		Name:        "Rice",
		Description: "Rice dishes",
		Menus: []seedMenu{
			{"Pork Fried Rice", "Fried rice with pork, egg and fresh vegetables", 60},
			{"Basil Minced Pork on Rice", "Stir-fried basil with minced pork and fried egg", 55},
			{"Crispy Pork on Rice", "Crispy pork belly with sauce", 65},
			{"Omelette on Rice", "Minced pork omelette on rice", 50},
		},
	},
	{
		Name:        "Noodles",
		Description: "Pad thai, noodle soups and more",
		Menus: []seedMenu{
			{"Pad Thai with Shrimp", "Pad thai with fresh shrimp, bean sprouts and chives", 80},
			{"Tom Yum Noodle Soup", "Spicy noodle soup with minced pork", 55},
			{"Dry Egg Noodles with Red Pork", "Egg noodles with red pork and fish balls", 50},
		},
	},
	{
		Name:        "Drinks",
		Description: "Water, tea and coffee",
		Menus: []seedMenu{
			{"Thai Iced Tea", "Sweet iced tea", 25},
			{"Iced Coffee", "House iced coffee", 35},
			{"Fresh Orange Juice", "100% squeezed orange juice", 40},
		},
	},
	{
		Name:        "Desserts",
		Description: "Sweets and desserts",
		Menus: []seedMenu{
			{"Coconut Ice Cream", "Creamy coconut ice cream", 30},
			{"Lod Chong Singapore", "Pandan jelly in iced coconut milk", 35},
		},
	},
}

type SeedOptions struct {
	Password string
	Tables   int
	RandomQR bool
}

type SeedResult struct {
	Users      int
	Categories int
	Menus      int
	Tables     int
}

// Seeder fills an empty database with demo data. Rows that already exist are left alone,
// so running it twice is harmless.
type Seeder struct {
	users      *UserService
	userStore  UserStore
	categories CategoryStore
	menus      MenuStore
	tables     TableStore
}

func NewSeeder(users UserStore, categories CategoryStore, menus MenuStore, tables TableStore) *Seeder {
	return &Seeder{
		users:      NewUserService(users),
		userStore:  users,
		categories: categories,
		menus:      menus,
		tables:     tables,
	}
}

func TableQRCode(tableNumber int, random bool) string {
	if random {
		return uuid.NewString()
	}
	return fmt.Sprintf("TABLE_QR_%03d", tableNumber)
}

func (s *Seeder) Run(ctx context.Context, opts SeedOptions) (*SeedResult, error) {
	if opts.Password == "" {
		opts.Password = "123456"
	}
	result := &SeedResult{}

	for _, role := range []string{models.RoleAdmin, models.RoleKitchen, models.RoleCustomer} {
		_, err := s.userStore.FindByUsername(ctx, role)
		if err == nil {
			log.Printf("User %q already exists, skipping", role)
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("look up user %s: %w", role, err)
		}

		if _, err := s.users.Create(ctx, models.CreateUserRequest{
			Username: role,
			Password: opts.Password,
			Role:     role,
		}); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", role, err)
		}
		result.Users++
	}

	existing, err := s.categories.FindAll(ctx, models.CategoryFilter{})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	known := make(map[string]bool, len(existing))
	for _, c := range existing {
		known[c.Name] = true
	}

	for _, sc := range defaultSeedCategories {
		if known[sc.Name] {
			log.Printf("Category %q already exists, skipping", sc.Name)
			continue
		}

		category := &models.Category{Name: sc.Name, Description: sc.Description, IsActive: true}
		if err := s.categories.Create(ctx, category); err != nil {
			return nil, fmt.Errorf("seed category %s: %w", sc.Name, err)
		}
		result.Categories++

		for _, sm := range sc.Menus {
			menu := &models.Menu{
				Name:        sm.Name,
				Description: sm.Description,
				Price:       sm.Price,
				CategoryID:  category.ID,
				IsAvailable: true,
			}
			if err := s.menus.Create(ctx, menu); err != nil {
				return nil, fmt.Errorf("seed menu %s: %w", sm.Name, err)
			}
			result.Menus++
		}
	}

	for n := 1; n <= opts.Tables; n++ {
		inserted, err := s.tables.Upsert(ctx, &models.Table{
			TableNumber: n,
			QRCode:      TableQRCode(n, opts.RandomQR),
			IsActive:    true,
		})
		if err != nil {
			return nil, fmt.Errorf("seed table %d: %w", n, err)
		}
		if inserted {
			result.Tables++
		}
	}

	return result, nil
}
