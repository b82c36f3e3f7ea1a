package service

import (
	"context"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/catalog/repository"
	catalogservice "github.com/smallbiznis/carta/internal/catalog/service"
	menudomain "github.com/smallbiznis/carta/internal/menu/domain"
	"github.com/smallbiznis/carta/internal/ownerctx"
	"github.com/smallbiznis/carta/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fixture struct {
	menuSvc    menudomain.Service
	catalogSvc catalogdomain.Service
	db         *gorm.DB
	repo       catalogdomain.Repository
	genID      *snowflake.Node
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.Restaurant{},
		&catalogdomain.Category{},
		&catalogdomain.Product{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("failed to create snowflake node: %v", err)
	}

	repo := repository.Provide()
	return &fixture{
		menuSvc: New(Params{
			DB:   dbConn,
			Log:  zap.NewNop(),
			Repo: repo,
		}),
		catalogSvc: catalogservice.New(catalogservice.Params{
			DB:    dbConn,
			Log:   zap.NewNop(),
			GenID: node,
			Repo:  repo,
		}),
		db:    dbConn,
		repo:  repo,
		genID: node,
	}
}

func (f *fixture) seedRestaurant(t *testing.T, name string, categories map[string]int) (context.Context, map[string]snowflake.ID) {
	t.Helper()

	ownerID := f.genID.Generate()
	ctx := ownerctx.WithOwner(context.Background(), ownerID)

	restaurant, err := f.catalogSvc.CreateRestaurant(context.Background(), catalogdomain.CreateRestaurantRequest{
		OwnerID: ownerID.String(),
		Name:    name,
	})
	if err != nil {
		t.Fatalf("failed to create restaurant: %v", err)
	}
	restaurantID, err := snowflake.ParseString(restaurant.ID)
	if err != nil {
		t.Fatalf("failed to parse restaurant id: %v", err)
	}

	categoryIDs := make(map[string]snowflake.ID, len(categories))
	for categoryName, orderIndex := range categories {
		category := &catalogdomain.Category{
			ID:           f.genID.Generate(),
			RestaurantID: restaurantID,
			Name:         categoryName,
			OrderIndex:   orderIndex,
			CreatedAt:    time.Now().UTC(),
		}
		if err := f.repo.CreateCategory(context.Background(), f.db, category); err != nil {
			t.Fatalf("failed to create category: %v", err)
		}
		categoryIDs[categoryName] = category.ID
	}
	return ctx, categoryIDs
}

func TestBySlugNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.menuSvc.BySlug(context.Background(), "no-existe")
	if err != menudomain.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestBySlugOrdersCategories(t *testing.T) {
	f := newFixture(t)
	f.seedRestaurant(t, "La Pizzería", map[string]int{
		"Postres":  2,
		"Entradas": 1,
	})

	view, err := f.menuSvc.BySlug(context.Background(), "la-pizzeria")
	if err != nil {
		t.Fatalf("failed to fetch menu: %v", err)
	}
	if len(view.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(view.Categories))
	}
	if view.Categories[0].Name != "Entradas" || view.Categories[1].Name != "Postres" {
		t.Fatalf("expected [Entradas Postres], got [%s %s]", view.Categories[0].Name, view.Categories[1].Name)
	}
}

func TestBySlugEmptyMenu(t *testing.T) {
	f := newFixture(t)
	f.seedRestaurant(t, "Nuevo Local", nil)

	view, err := f.menuSvc.BySlug(context.Background(), "nuevo-local")
	if err != nil {
		t.Fatalf("expected empty menu to render, got %v", err)
	}
	if len(view.Categories) != 0 {
		t.Fatalf("expected no categories, got %d", len(view.Categories))
	}
}

func TestToggledProductLeavesPublicMenuButStaysInCatalog(t *testing.T) {
	f := newFixture(t)
	ctx, categoryIDs := f.seedRestaurant(t, "La Pizzería", map[string]int{"Pizzas": 1})

	product, err := f.catalogSvc.CreateProduct(ctx, catalogdomain.CreateProductRequest{
		CategoryID: categoryIDs["Pizzas"].String(),
		Name:       "Pizza Napolitana",
		Price:      "12.5",
	})
	if err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	view, err := f.menuSvc.BySlug(context.Background(), "la-pizzeria")
	if err != nil {
		t.Fatalf("failed to fetch menu: %v", err)
	}
	if len(view.Categories[0].Products) != 1 {
		t.Fatalf("expected 1 public product, got %d", len(view.Categories[0].Products))
	}

	if _, err := f.catalogSvc.SetAvailability(ctx, catalogdomain.SetAvailabilityRequest{
		ProductID: product.ID,
		Available: false,
	}); err != nil {
		t.Fatalf("failed to toggle availability: %v", err)
	}

	view, err = f.menuSvc.BySlug(context.Background(), "la-pizzeria")
	if err != nil {
		t.Fatalf("failed to fetch menu: %v", err)
	}
	if len(view.Categories[0].Products) != 0 {
		t.Fatalf("expected toggled product off the public menu, got %d products", len(view.Categories[0].Products))
	}

	catalog, err := f.catalogSvc.Catalog(ctx)
	if err != nil {
		t.Fatalf("failed to fetch catalog: %v", err)
	}
	if len(catalog.Products) != 1 {
		t.Fatalf("expected toggled product to stay in owner catalog, got %d products", len(catalog.Products))
	}
	if catalog.Products[0].IsAvailable {
		t.Fatal("expected product to be unavailable in owner catalog")
	}
}
