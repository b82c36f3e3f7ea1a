package repository

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/carta/internal/catalog/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) CreateRestaurant(ctx context.Context, db *gorm.DB, restaurant *domain.Restaurant) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO restaurants (id, owner_id, slug, name, description, logo_url, primary_color, phone_number, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		restaurant.ID,
		restaurant.OwnerID,
		restaurant.Slug,
		restaurant.Name,
		restaurant.Description,
		restaurant.LogoURL,
		restaurant.PrimaryColor,
		restaurant.PhoneNumber,
		restaurant.CreatedAt,
		restaurant.UpdatedAt,
	).Error
}

func (r *repo) CreateCategory(ctx context.Context, db *gorm.DB, category *domain.Category) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO categories (id, restaurant_id, name, order_index, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		category.ID,
		category.RestaurantID,
		category.Name,
		category.OrderIndex,
		category.CreatedAt,
	).Error
}

func (r *repo) InsertProduct(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, restaurant_id, category_id, name, description, price, image_url, is_available, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.RestaurantID,
		product.CategoryID,
		product.Name,
		product.Description,
		product.Price,
		product.ImageURL,
		product.IsAvailable,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.RestaurantTree, error) {
	var restaurant domain.Restaurant
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, slug, name, description, logo_url, primary_color, phone_number, created_at, updated_at
		 FROM restaurants WHERE slug = ?`,
		slug,
	).Scan(&restaurant).Error
	if err != nil {
		return nil, err
	}
	if restaurant.ID == 0 {
		return nil, nil
	}
	return r.loadTree(ctx, db, restaurant)
}

func (r *repo) FindByOwner(ctx context.Context, db *gorm.DB, ownerID snowflake.ID) (*domain.RestaurantTree, error) {
	var restaurant domain.Restaurant
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, slug, name, description, logo_url, primary_color, phone_number, created_at, updated_at
		 FROM restaurants WHERE owner_id = ?`,
		ownerID,
	).Scan(&restaurant).Error
	if err != nil {
		return nil, err
	}
	if restaurant.ID == 0 {
		return nil, nil
	}
	return r.loadTree(ctx, db, restaurant)
}

// loadTree fetches categories ordered for display and products in
// insertion order. Callers filter or regroup as needed.
func (r *repo) loadTree(ctx context.Context, db *gorm.DB, restaurant domain.Restaurant) (*domain.RestaurantTree, error) {
	var categories []domain.Category
	err := db.WithContext(ctx).Raw(
		`SELECT id, restaurant_id, name, order_index, created_at
		 FROM categories WHERE restaurant_id = ? ORDER BY order_index ASC, id ASC`,
		restaurant.ID,
	).Scan(&categories).Error
	if err != nil {
		return nil, err
	}

	var products []domain.Product
	err = db.WithContext(ctx).Raw(
		`SELECT id, restaurant_id, category_id, name, description, price, image_url, is_available, created_at, updated_at
		 FROM products WHERE restaurant_id = ? ORDER BY id ASC`,
		restaurant.ID,
	).Scan(&products).Error
	if err != nil {
		return nil, err
	}

	return &domain.RestaurantTree{
		Restaurant: restaurant,
		Categories: categories,
		Products:   products,
	}, nil
}

func (r *repo) FindProduct(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.OwnedProduct, error) {
	var p domain.OwnedProduct
	err := db.WithContext(ctx).Raw(
		`SELECT p.id, p.restaurant_id, p.category_id, p.name, p.description, p.price, p.image_url, p.is_available, p.created_at, p.updated_at, r.owner_id
		 FROM products p
		 JOIN categories c ON c.id = p.category_id
		 JOIN restaurants r ON r.id = c.restaurant_id
		 WHERE p.id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindCategory(ctx context.Context, db *gorm.DB, id snowflake.ID) (*domain.OwnedCategory, error) {
	var c domain.OwnedCategory
	err := db.WithContext(ctx).Raw(
		`SELECT c.id, c.restaurant_id, c.name, c.order_index, c.created_at, r.owner_id
		 FROM categories c
		 JOIN restaurants r ON r.id = c.restaurant_id
		 WHERE c.id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) UpdateProductPrice(ctx context.Context, db *gorm.DB, id snowflake.ID, price float64, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET price = ?, updated_at = ? WHERE id = ?`,
		price,
		updatedAt,
		id,
	).Error
}

func (r *repo) UpdateProductAvailability(ctx context.Context, db *gorm.DB, id snowflake.ID, available bool, updatedAt time.Time) error {
	return db.WithContext(ctx).Exec(
		`UPDATE products SET is_available = ?, updated_at = ? WHERE id = ?`,
		available,
		updatedAt,
		id,
	).Error
}
