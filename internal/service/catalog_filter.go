package service

import (
	"sort"
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"

	"github.com/shopspring/decimal"
)

// ProductFilter 商品筛选条件，零值表示不过滤
type ProductFilter struct {
	Search      string
	Category    string
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	MinRating   float64
	InStockOnly bool
	Sort        string
}

// FilterProducts 按条件筛选并排序，返回新切片，不修改入参
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	search := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)
	if strings.EqualFold(category, constants.ProductCategoryAll) {
		category = ""
	}

	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if category != "" && !strings.EqualFold(p.Category, category) {
			continue
		}
		if filter.MinPrice != nil && p.Price.Decimal.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && p.Price.Decimal.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.MinRating > 0 && p.RatingValue() < filter.MinRating {
			continue
		}
		if filter.InStockOnly && !p.InStock() {
			continue
		}
		result = append(result, p.Clone())
	}

	sortProducts(result, filter.Sort)
	return result
}

func matchesSearch(p models.Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}

func sortProducts(products []models.Product, mode string) {
	switch strings.TrimSpace(mode) {
	case constants.ProductSortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Decimal.LessThan(products[j].Price.Decimal)
		})
	case constants.ProductSortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.Decimal.GreaterThan(products[j].Price.Decimal)
		})
	case constants.ProductSortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	case constants.ProductSortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].RatingValue() > products[j].RatingValue()
		})
	}
}
