package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
)

func boolPtr(v bool) *bool { return &v }

func TestAssembleSortsCategoriesByOrderIndex(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Restaurant: catalogdomain.Restaurant{Slug: "la-pizzeria", Name: "La Pizzería"},
		Categories: []catalogdomain.Category{
			{ID: 10, OrderIndex: 2, Name: "Postres"},
			{ID: 11, OrderIndex: 1, Name: "Entradas"},
		},
	}

	view := Assemble(tree)

	require.Len(t, view.Categories, 2)
	assert.Equal(t, "Entradas", view.Categories[0].Name)
	assert.Equal(t, "Postres", view.Categories[1].Name)
}

func TestAssembleBreaksOrderTiesByID(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Categories: []catalogdomain.Category{
			{ID: 22, OrderIndex: 0, Name: "Segunda"},
			{ID: 21, OrderIndex: 0, Name: "Primera"},
		},
	}

	view := Assemble(tree)

	require.Len(t, view.Categories, 2)
	assert.Equal(t, "Primera", view.Categories[0].Name)
	assert.Equal(t, "Segunda", view.Categories[1].Name)
}

func TestAssembleFiltersUnavailableProducts(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Categories: []catalogdomain.Category{
			{ID: 1, Name: "Pizzas"},
		},
		Products: []catalogdomain.Product{
			{ID: 100, CategoryID: 1, Name: "Napolitana", Price: 12.5, IsAvailable: boolPtr(true)},
			{ID: 101, CategoryID: 1, Name: "Agotada", Price: 9, IsAvailable: boolPtr(false)},
			// A product without an explicit flag counts as available.
			{ID: 102, CategoryID: 1, Name: "Sin bandera", Price: 7},
		},
	}

	view := Assemble(tree)

	require.Len(t, view.Categories, 1)
	products := view.Categories[0].Products
	require.Len(t, products, 2)
	assert.Equal(t, "Napolitana", products[0].Name)
	assert.Equal(t, "Sin bandera", products[1].Name)
	assert.Equal(t, 12.5, products[0].Price)
}

func TestAssembleKeepsStoredProductOrder(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Categories: []catalogdomain.Category{{ID: 1, Name: "Pizzas"}},
		Products: []catalogdomain.Product{
			{ID: 100, CategoryID: 1, Name: "Primera"},
			{ID: 101, CategoryID: 1, Name: "Segunda"},
			{ID: 102, CategoryID: 1, Name: "Tercera"},
		},
	}

	view := Assemble(tree)

	require.Len(t, view.Categories, 1)
	names := []string{}
	for _, p := range view.Categories[0].Products {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"Primera", "Segunda", "Tercera"}, names)
}

func TestAssembleEmptyMenuIsValid(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Restaurant: catalogdomain.Restaurant{Slug: "nuevo", Name: "Nuevo"},
	}

	view := Assemble(tree)

	assert.Equal(t, "nuevo", view.Restaurant.Slug)
	assert.Empty(t, view.Categories)
	assert.NotNil(t, view.Categories)
}

func TestAssembleKeepsEmptyCategories(t *testing.T) {
	tree := &catalogdomain.RestaurantTree{
		Categories: []catalogdomain.Category{{ID: 1, Name: "Pizzas"}},
		Products: []catalogdomain.Product{
			{ID: 100, CategoryID: 1, Name: "Agotada", IsAvailable: boolPtr(false)},
		},
	}

	view := Assemble(tree)

	require.Len(t, view.Categories, 1)
	assert.NotNil(t, view.Categories[0].Products)
	assert.Empty(t, view.Categories[0].Products)
}
