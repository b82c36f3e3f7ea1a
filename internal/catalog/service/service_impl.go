package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gosimple/slug"
	"github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/ownerctx"
	"github.com/smallbiznis/carta/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("catalog.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) CreateRestaurant(ctx context.Context, req domain.CreateRestaurantRequest) (*domain.RestaurantResponse, error) {
	ownerID, err := snowflake.ParseString(strings.TrimSpace(req.OwnerID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	now := time.Now().UTC()
	restaurant := &domain.Restaurant{
		ID:           s.genID.Generate(),
		OwnerID:      ownerID,
		Slug:         slug.Make(name),
		Name:         name,
		Description:  trimOptional(req.Description),
		LogoURL:      trimOptional(req.LogoURL),
		PrimaryColor: trimOptional(req.PrimaryColor),
		PhoneNumber:  trimOptional(req.PhoneNumber),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.CreateRestaurant(ctx, s.db, restaurant); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrSlugTaken
		}
		return nil, err
	}

	s.log.Info("restaurant created",
		zap.String("restaurant_id", restaurant.ID.String()),
		zap.String("slug", restaurant.Slug),
	)

	resp := toRestaurantResponse(restaurant)
	return &resp, nil
}

func (s *Service) Catalog(ctx context.Context) (*domain.CatalogResponse, error) {
	ownerID, ok := ownerctx.OwnerFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	tree, err := s.repo.FindByOwner(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	if tree == nil {
		return nil, domain.ErrNotFound
	}

	resp := &domain.CatalogResponse{
		Restaurant: toRestaurantResponse(&tree.Restaurant),
		Categories: make([]domain.CategoryResponse, 0, len(tree.Categories)),
		Products:   make([]domain.ProductResponse, 0, len(tree.Products)),
	}
	for _, category := range tree.Categories {
		resp.Categories = append(resp.Categories, toCategoryResponse(&category))
	}
	for _, product := range tree.Products {
		resp.Products = append(resp.Products, toProductResponse(&product))
	}
	return resp, nil
}

func (s *Service) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.ProductResponse, error) {
	ownerID, ok := ownerctx.OwnerFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	categoryID, err := snowflake.ParseString(strings.TrimSpace(req.CategoryID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	category, err := s.repo.FindCategory(ctx, s.db, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	if category.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}

	available := true
	now := time.Now().UTC()
	product := &domain.Product{
		ID: s.genID.Generate(),
		// The restaurant is derived from the category chain, never from
		// the request.
		RestaurantID: category.RestaurantID,
		CategoryID:   category.ID,
		Name:         name,
		Description:  trimOptional(req.Description),
		Price:        price,
		ImageURL:     trimOptional(req.ImageURL),
		IsAvailable:  &available,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.InsertProduct(ctx, s.db, product); err != nil {
		return nil, err
	}

	resp := toProductResponse(product)
	return &resp, nil
}

func (s *Service) UpdatePrice(ctx context.Context, req domain.UpdatePriceRequest) (*domain.ProductResponse, error) {
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	product, err := s.resolveOwned(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateProductPrice(ctx, s.db, product.ID, price, now); err != nil {
		return nil, err
	}

	product.Price = price
	product.UpdatedAt = now
	resp := toProductResponse(&product.Product)
	return &resp, nil
}

func (s *Service) SetAvailability(ctx context.Context, req domain.SetAvailabilityRequest) (*domain.ProductResponse, error) {
	product, err := s.resolveOwned(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	// Setting the current value again is a success no-op, which keeps
	// retried toggles idempotent.
	if product.Available() == req.Available {
		resp := toProductResponse(&product.Product)
		return &resp, nil
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateProductAvailability(ctx, s.db, product.ID, req.Available, now); err != nil {
		return nil, err
	}

	value := req.Available
	product.IsAvailable = &value
	product.UpdatedAt = now
	resp := toProductResponse(&product.Product)
	return &resp, nil
}

// resolveOwned loads a product and enforces the identity→ownership
// chain. Absent products and other tenants' products stay distinct here;
// the HTTP layer collapses them.
func (s *Service) resolveOwned(ctx context.Context, rawID string) (*domain.OwnedProduct, error) {
	ownerID, ok := ownerctx.OwnerFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	productID, err := snowflake.ParseString(strings.TrimSpace(rawID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	product, err := s.repo.FindProduct(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if product.OwnerID != ownerID {
		return nil, domain.ErrForbidden
	}
	return product, nil
}

func parsePrice(raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0, domain.ErrInvalidPrice
	}
	price, err := strconv.ParseFloat(value, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0, domain.ErrInvalidPrice
	}
	return price, nil
}

func trimOptional(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func toRestaurantResponse(r *domain.Restaurant) domain.RestaurantResponse {
	return domain.RestaurantResponse{
		ID:           r.ID.String(),
		Slug:         r.Slug,
		Name:         r.Name,
		Description:  r.Description,
		LogoURL:      r.LogoURL,
		PrimaryColor: r.PrimaryColor,
		PhoneNumber:  r.PhoneNumber,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

func toCategoryResponse(c *domain.Category) domain.CategoryResponse {
	return domain.CategoryResponse{
		ID:         c.ID.String(),
		Name:       c.Name,
		OrderIndex: c.OrderIndex,
	}
}

func toProductResponse(p *domain.Product) domain.ProductResponse {
	return domain.ProductResponse{
		ID:          p.ID.String(),
		CategoryID:  p.CategoryID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		IsAvailable: p.Available(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
