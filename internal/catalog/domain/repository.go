package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"
)

type Repository interface {
	CreateRestaurant(ctx context.Context, db *gorm.DB, restaurant *Restaurant) error
	CreateCategory(ctx context.Context, db *gorm.DB, category *Category) error
	InsertProduct(ctx context.Context, db *gorm.DB, product *Product) error

	// FindBySlug and FindByOwner return nil when no restaurant matches.
	FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*RestaurantTree, error)
	FindByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (*RestaurantTree, error)

	// FindProduct resolves a product and its owner through the category
	// chain. Returns nil when the product does not exist.
	FindProduct(ctx context.Context, db *gorm.DB, id snowflake.ID) (*OwnedProduct, error)
	FindCategory(ctx context.Context, db *gorm.DB, id snowflake.ID) (*OwnedCategory, error)

	UpdateProductPrice(ctx context.Context, db *gorm.DB, id snowflake.ID, price float64, updatedAt time.Time) error
	UpdateProductAvailability(ctx context.Context, db *gorm.DB, id snowflake.ID, available bool, updatedAt time.Time) error
}
