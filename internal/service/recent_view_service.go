package service

import (
	"context"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

// RecentViewService 最近浏览记录，最多保留 constants.RecentlyViewedLimit 个商品
type RecentViewService struct {
	store   repository.KVStore
	repo    repository.RecentViewRepository
	catalog *CatalogService
}

// NewRecentViewService 创建最近浏览服务
func NewRecentViewService(store repository.KVStore, repo repository.RecentViewRepository, catalog *CatalogService) *RecentViewService {
	return &RecentViewService{store: store, repo: repo, catalog: catalog}
}

// Record 记录一次浏览：移到最前并截断
func (s *RecentViewService) Record(ctx context.Context, sessionID string, productID uint) ([]uint, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	var ids []uint
	err = s.store.Atomic(ctx, func(tx repository.KVStore) error {
		repo := s.repo.WithStore(tx)
		current, err := repo.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		ids = pushRecent(current, productID, constants.RecentlyViewedLimit)
		return repo.Save(ctx, sessionID, ids)
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// List 返回最近浏览的商品（最新在前），已删除的商品跳过
func (s *RecentViewService) List(ctx context.Context, sessionID string) ([]models.Product, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	ids, err := s.repo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	products := make([]models.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			products = append(products, p.Clone())
		}
	}
	return products, nil
}

func pushRecent(ids []uint, productID uint, limit int) []uint {
	out := make([]uint, 0, limit)
	out = append(out, productID)
	for _, id := range ids {
		if len(out) >= limit {
			break
		}
		if id != productID {
			out = append(out, id)
		}
	}
	return out
}
