// Package seed provisions demo data for local and self-hosted setups.
// Real onboarding happens out of band; this only guarantees a working
// owner login and a browsable menu on a fresh database.
package seed

import (
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	authdomain "github.com/smallbiznis/carta/internal/auth/domain"
	authservice "github.com/smallbiznis/carta/internal/auth/service"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"gorm.io/gorm"
)

const demoRestaurantName = "La Pizzería"

// EnsureDemoRestaurant creates a demo owner with a restaurant, starter
// categories and a few products. Idempotent: if the restaurant slug
// already exists, nothing is written.
func EnsureDemoRestaurant(db *gorm.DB, genID *snowflake.Node, ownerEmail, ownerPassword string) error {
	demoSlug := slug.Make(demoRestaurantName)

	var existing catalogdomain.Restaurant
	err := db.Where("slug = ?", demoSlug).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := authservice.HashPassword(ownerPassword)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	owner := &authdomain.User{
		ID:                  genID.Generate(),
		ExternalID:          uuid.NewString(),
		Email:               ownerEmail,
		PasswordHash:        &hashed,
		LastPasswordChanged: &now,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := db.Create(owner).Error; err != nil {
		return err
	}

	primaryColor := "#b91c1c"
	restaurant := &catalogdomain.Restaurant{
		ID:           genID.Generate(),
		OwnerID:      owner.ID,
		Slug:         demoSlug,
		Name:         demoRestaurantName,
		PrimaryColor: &primaryColor,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := db.Create(restaurant).Error; err != nil {
		return err
	}

	categories := []struct {
		name       string
		orderIndex int
	}{
		{"Entradas", 1},
		{"Pizzas", 2},
		{"Postres", 3},
	}

	categoryIDs := make(map[string]snowflake.ID, len(categories))
	for _, c := range categories {
		category := &catalogdomain.Category{
			ID:           genID.Generate(),
			RestaurantID: restaurant.ID,
			Name:         c.name,
			OrderIndex:   c.orderIndex,
			CreatedAt:    now,
		}
		if err := db.Create(category).Error; err != nil {
			return err
		}
		categoryIDs[c.name] = category.ID
	}

	available := true
	products := []struct {
		category    string
		name        string
		description string
		price       float64
	}{
		{"Entradas", "Pan de ajo", "Con mantequilla y perejil", 4.5},
		{"Pizzas", "Pizza Napolitana", "Tomate, mozzarella y albahaca", 12.5},
		{"Pizzas", "Pizza Cuatro Quesos", "Mozzarella, gorgonzola, parmesano y provolone", 14},
		{"Postres", "Tiramisú", "Receta de la casa", 6},
	}
	for _, p := range products {
		description := p.description
		product := &catalogdomain.Product{
			ID:           genID.Generate(),
			RestaurantID: restaurant.ID,
			CategoryID:   categoryIDs[p.category],
			Name:         p.name,
			Description:  &description,
			Price:        p.price,
			IsAvailable:  &available,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := db.Create(product).Error; err != nil {
			return err
		}
	}

	return nil
}
