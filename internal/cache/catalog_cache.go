package cache

import (
	"context"
	"time"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

const defaultCatalogCacheTTL = 5 * time.Minute

// GetCatalogList 读取缓存的商品列表
func GetCatalogList(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product
	hit, err := GetJSON(ctx, constants.CatalogListCache, &products)
	if err != nil || !hit {
		return nil, false, err
	}
	return products, true, nil
}

// SetCatalogList 缓存商品列表
func SetCatalogList(ctx context.Context, products []models.Product, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = defaultCatalogCacheTTL
	}
	return SetJSON(ctx, constants.CatalogListCache, products, ttl)
}

// InvalidateCatalogList 删除商品列表缓存
func InvalidateCatalogList(ctx context.Context) error {
	return Del(ctx, constants.CatalogListCache)
}
