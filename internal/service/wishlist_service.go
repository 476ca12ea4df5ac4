package service

import (
	"context"
	"time"

	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

// WishlistService 会话收藏夹服务
type WishlistService struct {
	store   repository.KVStore
	repo    repository.WishlistRepository
	catalog *CatalogService
	cart    *CartService
	now     func() time.Time
}

// NewWishlistService 创建收藏夹服务
func NewWishlistService(store repository.KVStore, repo repository.WishlistRepository, catalog *CatalogService, cart *CartService) *WishlistService {
	return &WishlistService{
		store:   store,
		repo:    repo,
		catalog: catalog,
		cart:    cart,
		now:     time.Now,
	}
}

// List 按收藏顺序返回收藏项
func (s *WishlistService) List(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.repo.Load(ctx, sessionID)
}

// Add 收藏商品，已收藏时不重复添加
func (s *WishlistService) Add(ctx context.Context, sessionID string, productID uint) ([]models.WishlistItem, error) {
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return s.mutate(ctx, sessionID, func(items []models.WishlistItem) ([]models.WishlistItem, bool) {
		if wishlistIndex(items, productID) >= 0 {
			return items, false
		}
		return append(items, models.NewWishlistItem(*product, s.now())), true
	})
}

// Remove 取消收藏，不存在时返回 NotFound 且不写入
func (s *WishlistService) Remove(ctx context.Context, sessionID string, productID uint) (UpdateResult, []models.WishlistItem, error) {
	result := NotFound
	items, err := s.mutate(ctx, sessionID, func(items []models.WishlistItem) ([]models.WishlistItem, bool) {
		idx := wishlistIndex(items, productID)
		if idx < 0 {
			return items, false
		}
		result = Updated
		return append(items[:idx], items[idx+1:]...), true
	})
	return result, items, err
}

// MoveToCart 按当前目录价格加入购物车后取消收藏；
// 加入购物车失败（商品已下架或缺货）时收藏保持不变
func (s *WishlistService) MoveToCart(ctx context.Context, sessionID string, productID uint) (UpdateResult, CartSummary, error) {
	items, err := s.List(ctx, sessionID)
	if err != nil {
		return NotFound, CartSummary{}, err
	}
	if wishlistIndex(items, productID) < 0 {
		return NotFound, CartSummary{}, nil
	}
	summary, err := s.cart.AddProduct(ctx, sessionID, productID, 1)
	if err != nil {
		return NotFound, CartSummary{}, err
	}
	if _, _, err := s.Remove(ctx, sessionID, productID); err != nil {
		logger.Warnw("wishlist_move_remove_failed", "session_id", sessionID, "product_id", productID, "error", err)
	}
	return Updated, summary, nil
}

// Clear 清空收藏夹
func (s *WishlistService) Clear(ctx context.Context, sessionID string) error {
	_, err := s.mutate(ctx, sessionID, func([]models.WishlistItem) ([]models.WishlistItem, bool) {
		return nil, true
	})
	return err
}

// mutate 在原子块内读取、修改并写回收藏夹，fn 返回 false 时不写入
func (s *WishlistService) mutate(ctx context.Context, sessionID string, fn func([]models.WishlistItem) ([]models.WishlistItem, bool)) ([]models.WishlistItem, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	var result []models.WishlistItem
	err = s.store.Atomic(ctx, func(tx repository.KVStore) error {
		repo := s.repo.WithStore(tx)
		items, err := repo.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		next, changed := fn(items)
		result = next
		if !changed {
			return nil
		}
		return repo.Save(ctx, sessionID, next)
	})
	if err != nil {
		return nil, err
	}
	if result == nil {
		result = []models.WishlistItem{}
	}
	return result, nil
}

func wishlistIndex(items []models.WishlistItem, productID uint) int {
	for i := range items {
		if items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
