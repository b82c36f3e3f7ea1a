// Package domain contains the public menu view model: the read-only
// tree rendered for a restaurant's slug.
package domain

import (
	"context"
	"errors"
)

type Service interface {
	// BySlug returns the public menu for a slug: categories sorted by
	// order index, unavailable products filtered out.
	BySlug(ctx context.Context, slug string) (*View, error)
}

// View is the public rendering tree. Prices stay numeric; formatting is
// left to the presentation layer.
type View struct {
	Restaurant RestaurantView `json:"restaurant"`
	Categories []CategoryView `json:"categories"`
}

type RestaurantView struct {
	Slug         string  `json:"slug"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	LogoURL      *string `json:"logo_url,omitempty"`
	PrimaryColor *string `json:"primary_color,omitempty"`
	PhoneNumber  *string `json:"phone_number,omitempty"`
}

type CategoryView struct {
	Name     string        `json:"name"`
	Products []ProductView `json:"products"`
}

type ProductView struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url,omitempty"`
}

var ErrNotFound = errors.New("restaurant not found")
