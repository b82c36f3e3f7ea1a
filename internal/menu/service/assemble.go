package service

import (
	"sort"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/smallbiznis/carta/internal/catalog/domain"
	"github.com/smallbiznis/carta/internal/menu/domain"
)

// Assemble builds the public menu view from a restaurant tree. Pure
// function: categories are sorted non-decreasing by order index with
// ties broken by id, products keep their stored order and are filtered
// to the available ones. A restaurant with no categories yields a valid
// empty menu.
func Assemble(tree *catalogdomain.RestaurantTree) *domain.View {
	categories := make([]catalogdomain.Category, len(tree.Categories))
	copy(categories, tree.Categories)
	sort.SliceStable(categories, func(i, j int) bool {
		if categories[i].OrderIndex != categories[j].OrderIndex {
			return categories[i].OrderIndex < categories[j].OrderIndex
		}
		return categories[i].ID < categories[j].ID
	})

	byCategory := make(map[snowflake.ID][]domain.ProductView, len(categories))
	for _, product := range tree.Products {
		if !product.Available() {
			continue
		}
		byCategory[product.CategoryID] = append(byCategory[product.CategoryID], domain.ProductView{
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			ImageURL:    product.ImageURL,
		})
	}

	view := &domain.View{
		Restaurant: domain.RestaurantView{
			Slug:         tree.Restaurant.Slug,
			Name:         tree.Restaurant.Name,
			Description:  tree.Restaurant.Description,
			LogoURL:      tree.Restaurant.LogoURL,
			PrimaryColor: tree.Restaurant.PrimaryColor,
			PhoneNumber:  tree.Restaurant.PhoneNumber,
		},
		Categories: make([]domain.CategoryView, 0, len(categories)),
	}
	for _, category := range categories {
		products := byCategory[category.ID]
		if products == nil {
			products = []domain.ProductView{}
		}
		view.Categories = append(view.Categories, domain.CategoryView{
			Name:     category.Name,
			Products: products,
		})
	}
	return view
}
