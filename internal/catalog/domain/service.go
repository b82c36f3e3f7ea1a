package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	// CreateRestaurant provisions a tenant. Used by onboarding and seed
	// paths, not exposed on the dashboard API.
	CreateRestaurant(ctx context.Context, req CreateRestaurantRequest) (*RestaurantResponse, error)

	// Catalog returns the caller's full catalog in owner mode: all
	// products regardless of availability, insertion order.
	Catalog(ctx context.Context) (*CatalogResponse, error)

	CreateProduct(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	UpdatePrice(ctx context.Context, req UpdatePriceRequest) (*ProductResponse, error)
	SetAvailability(ctx context.Context, req SetAvailabilityRequest) (*ProductResponse, error)
}

type CreateRestaurantRequest struct {
	OwnerID      string  `json:"owner_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	LogoURL      *string `json:"logo_url"`
	PrimaryColor *string `json:"primary_color"`
	PhoneNumber  *string `json:"phone_number"`
}

type CreateProductRequest struct {
	CategoryID  string  `json:"category_id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	ImageURL    *string `json:"image_url"`
}

type UpdatePriceRequest struct {
	ProductID string `json:"product_id"`
	Price     string `json:"price"`
}

type SetAvailabilityRequest struct {
	ProductID string `json:"product_id"`
	Available bool   `json:"available"`
}

type RestaurantResponse struct {
	ID           string    `json:"id"`
	Slug         string    `json:"slug"`
	Name         string    `json:"name"`
	Description  *string   `json:"description,omitempty"`
	LogoURL      *string   `json:"logo_url,omitempty"`
	PrimaryColor *string   `json:"primary_color,omitempty"`
	PhoneNumber  *string   `json:"phone_number,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	OrderIndex int    `json:"order_index"`
}

type ProductResponse struct {
	ID          string    `json:"id"`
	CategoryID  string    `json:"category_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url,omitempty"`
	IsAvailable bool      `json:"is_available"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CatalogResponse mirrors the dashboard fetch shape: flat category and
// product lists under the restaurant.
type CatalogResponse struct {
	Restaurant RestaurantResponse `json:"restaurant"`
	Categories []CategoryResponse `json:"categories"`
	Products   []ProductResponse  `json:"products"`
}

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the target exists but belongs to another tenant.
	// The HTTP layer reports it identically to ErrNotFound.
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrSlugTaken        = errors.New("slug_taken")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrInvalidID        = errors.New("invalid_id")
)
