// Package domain contains the catalog data model: a restaurant, its
// categories and its products, owned by exactly one user.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Restaurant is the tenant root. The slug is the public lookup key and
// immutable once published.
type Restaurant struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	OwnerID      snowflake.ID `gorm:"column:owner_id;not null;uniqueIndex"`
	Slug         string       `gorm:"type:text;not null;uniqueIndex"`
	Name         string       `gorm:"type:text;not null"`
	Description  *string      `gorm:"type:text"`
	LogoURL      *string      `gorm:"column:logo_url;type:text"`
	PrimaryColor *string      `gorm:"column:primary_color;type:text"`
	PhoneNumber  *string      `gorm:"column:phone_number;type:text"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Restaurant) TableName() string { return "restaurants" }

// Category groups products inside a restaurant. OrderIndex controls
// display order on the public menu, ties broken by id. Values need not
// be contiguous.
type Category struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	RestaurantID snowflake.ID `gorm:"column:restaurant_id;not null;index"`
	Name         string       `gorm:"type:text;not null"`
	OrderIndex   int          `gorm:"column:order_index;not null;default:0"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Category) TableName() string { return "categories" }

// Product belongs to exactly one category and, through it, one
// restaurant. RestaurantID is denormalized for dashboard reads; the
// category chain stays authoritative for ownership checks.
type Product struct {
	ID           snowflake.ID `gorm:"primaryKey"`
	RestaurantID snowflake.ID `gorm:"column:restaurant_id;not null;index"`
	CategoryID   snowflake.ID `gorm:"column:category_id;not null;index"`
	Name         string       `gorm:"type:text;not null"`
	Description  *string      `gorm:"type:text"`
	Price        float64      `gorm:"not null"`
	ImageURL     *string      `gorm:"column:image_url;type:text"`
	IsAvailable  *bool        `gorm:"column:is_available"`
	CreatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt    time.Time    `gorm:"not null;default:CURRENT_TIMESTAMP"`
}

// TableName sets the database table name.
func (Product) TableName() string { return "products" }

// Available reports the effective availability. A NULL column counts as
// available, matching the default-available policy of the public menu.
func (p Product) Available() bool {
	return p.IsAvailable == nil || *p.IsAvailable
}

// RestaurantTree is a full consistent read of one tenant: the restaurant
// row, its categories ordered by (order_index, id), and all its products
// in insertion order.
type RestaurantTree struct {
	Restaurant Restaurant
	Categories []Category
	Products   []Product
}

// OwnedProduct carries a product together with the owner of the
// restaurant reached through its category chain.
type OwnedProduct struct {
	Product
	OwnerID snowflake.ID `gorm:"column:owner_id"`
}

// OwnedCategory carries a category together with its restaurant's owner.
type OwnedCategory struct {
	Category
	OwnerID snowflake.ID `gorm:"column:owner_id"`
}
