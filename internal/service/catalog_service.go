package service

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"github.com/minishop-next/internal/cache"
	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/events"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

// catalogListCache 商品列表缓存
type catalogListCache interface {
	Get(ctx context.Context) ([]models.Product, bool, error)
	Set(ctx context.Context, products []models.Product, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}

type redisCatalogListCache struct{}

func (redisCatalogListCache) Get(ctx context.Context) ([]models.Product, bool, error) {
	return cache.GetCatalogList(ctx)
}

func (redisCatalogListCache) Set(ctx context.Context, products []models.Product, ttl time.Duration) error {
	return cache.SetCatalogList(ctx, products, ttl)
}

func (redisCatalogListCache) Invalidate(ctx context.Context) error {
	return cache.InvalidateCatalogList(ctx)
}

// CatalogService 商品目录服务
type CatalogService struct {
	store     repository.KVStore
	repo      repository.CatalogRepository
	bus       events.Bus
	listCache catalogListCache
	cacheTTL  time.Duration
	// generation 每次目录变更递增，回填缓存前后比对，避免旧列表覆盖失效结果
	generation atomic.Uint64
}

// NewCatalogService 创建商品目录服务
func NewCatalogService(store repository.KVStore, repo repository.CatalogRepository, bus events.Bus, cacheTTL time.Duration) *CatalogService {
	if bus == nil {
		bus = events.NewLocalBus()
	}
	return &CatalogService{
		store:     store,
		repo:      repo,
		bus:       bus,
		listCache: redisCatalogListCache{},
		cacheTTL:  cacheTTL,
	}
}

// Bus 目录变更事件总线
func (s *CatalogService) Bus() events.Bus {
	return s.bus
}

// List 返回全部商品（插入顺序）
func (s *CatalogService) List(ctx context.Context) ([]models.Product, error) {
	if products, hit, err := s.listCache.Get(ctx); err != nil {
		logger.Warnw("catalog_cache_get_failed", "error", err)
	} else if hit {
		return products, nil
	}

	generation := s.generation.Load()
	products := s.load(ctx, s.repo)
	if s.generation.Load() != generation {
		return products, nil
	}
	if err := s.listCache.Set(ctx, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_set_failed", "error", err)
	}
	// 回填期间发生变更时，失效可能早于回填，需要再次清理
	if s.generation.Load() != generation {
		s.invalidateList(ctx, "stale_fill")
	}
	return products, nil
}

// GetByID 查询商品，不存在时返回 nil, nil
func (s *CatalogService) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if products[i].ID == id {
			p := products[i].Clone()
			return &p, nil
		}
	}
	return nil, nil
}

// Add 新增商品，ID 为当前最大 ID + 1（空目录为 1）
func (s *CatalogService) Add(ctx context.Context, input models.Product) (*models.Product, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateProduct(input); err != nil {
		return nil, err
	}

	var created models.Product
	err := s.mutate(ctx, func(products []models.Product) ([]models.Product, bool, error) {
		created = input.Clone()
		created.ID = nextProductID(products)
		return append(products, created), true, nil
	})
	if err != nil {
		return nil, err
	}
	s.publish(ctx, constants.CatalogActionAdded, created.ID)
	return &created, nil
}

// Update 合并部分字段，目标不存在时返回 NotFound
func (s *CatalogService) Update(ctx context.Context, id uint, patch models.ProductPatch) (UpdateResult, *models.Product, error) {
	if patch.Name != nil {
		trimmed := strings.TrimSpace(*patch.Name)
		patch.Name = &trimmed
	}

	var updated *models.Product
	err := s.mutate(ctx, func(products []models.Product) ([]models.Product, bool, error) {
		for i := range products {
			if products[i].ID != id {
				continue
			}
			merged := patch.Apply(products[i])
			if err := validateProduct(merged); err != nil {
				return nil, false, err
			}
			products[i] = merged
			updated = &merged
			return products, true, nil
		}
		return products, false, nil
	})
	if err != nil {
		return NotFound, nil, err
	}
	if updated == nil {
		return NotFound, nil, nil
	}
	s.publish(ctx, constants.CatalogActionUpdated, id)
	return Updated, updated, nil
}

// Delete 删除商品，目标不存在时返回 NotFound
func (s *CatalogService) Delete(ctx context.Context, id uint) (UpdateResult, error) {
	result := NotFound
	err := s.mutate(ctx, func(products []models.Product) ([]models.Product, bool, error) {
		kept := make([]models.Product, 0, len(products))
		for _, p := range products {
			if p.ID == id {
				result = Updated
				continue
			}
			kept = append(kept, p)
		}
		return kept, result == Updated, nil
	})
	if err != nil {
		return NotFound, err
	}
	if result == Updated {
		s.publish(ctx, constants.CatalogActionDeleted, id)
	}
	return result, nil
}

// Reset 无条件恢复默认商品目录
func (s *CatalogService) Reset(ctx context.Context) error {
	if err := s.repo.Save(ctx, models.DefaultProducts(), models.CatalogVersion); err != nil {
		return err
	}
	logger.Infow("catalog_reset", "version", models.CatalogVersion)
	s.publish(ctx, constants.CatalogActionReset, 0)
	return nil
}

// Categories 按首次出现顺序返回分类
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		categories = append(categories, p.Category)
	}
	return categories, nil
}

// Filter 按条件筛选并排序
func (s *CatalogService) Filter(ctx context.Context, filter ProductFilter) ([]models.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return FilterProducts(products, filter), nil
}

// mutate 在原子块内读取、修改并保存商品目录，fn 返回 changed=false 时不写入
func (s *CatalogService) mutate(ctx context.Context, fn func([]models.Product) ([]models.Product, bool, error)) error {
	return s.store.Atomic(ctx, func(tx repository.KVStore) error {
		repo := s.repo.WithStore(tx)
		next, changed, err := fn(s.load(ctx, repo))
		if err != nil || !changed {
			return err
		}
		return repo.Save(ctx, next, models.CatalogVersion)
	})
}

// load 读取商品目录；缺失、损坏或版本不符时重新写入默认目录
func (s *CatalogService) load(ctx context.Context, repo repository.CatalogRepository) []models.Product {
	snapshot, err := repo.Load(ctx)
	reason := ""
	switch {
	case errors.Is(err, repository.ErrCorruptRecord):
		reason = "corrupt"
	case err != nil:
		reason = "load_failed"
	case snapshot == nil:
		reason = "missing"
	case snapshot.Version != models.CatalogVersion:
		reason = "version_mismatch"
	}
	if reason == "" {
		return snapshot.Products
	}

	defaults := models.DefaultProducts()
	logger.Warnw("catalog_reseeded", "reason", reason, "version", models.CatalogVersion, "error", err)
	if saveErr := repo.Save(ctx, defaults, models.CatalogVersion); saveErr != nil {
		logger.Errorw("catalog_reseed_save_failed", "reason", reason, "error", saveErr)
	}
	s.generation.Add(1)
	s.invalidateList(ctx, "reseeded")
	return defaults
}

func (s *CatalogService) invalidateList(ctx context.Context, reason string) {
	if err := s.listCache.Invalidate(ctx); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "reason", reason, "error", err)
	}
}

func (s *CatalogService) publish(ctx context.Context, action string, productID uint) {
	s.bus.Publish(ctx, events.Event{
		Type:      constants.EventCatalogChanged,
		Action:    action,
		ProductID: productID,
		At:        time.Now(),
	})
}

// RegisterCacheInvalidation 目录变更（含其他实例转发的事件）时递增代数并清理商品列表缓存
func (s *CatalogService) RegisterCacheInvalidation() func() {
	return s.bus.Subscribe(func(ctx context.Context, event events.Event) {
		if event.Type != constants.EventCatalogChanged {
			return
		}
		s.generation.Add(1)
		s.invalidateList(ctx, event.Action)
	})
}

func nextProductID(products []models.Product) uint {
	var maxID uint
	for _, p := range products {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func validateProduct(p models.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return invalidField(ErrProductInvalid, "name")
	}
	if p.Price.IsNegative() {
		return invalidField(ErrProductInvalid, "price")
	}
	if p.Stock != nil && *p.Stock < 0 {
		return invalidField(ErrProductInvalid, "stock")
	}
	if p.Rating != nil && (*p.Rating < 0 || *p.Rating > 5) {
		return invalidField(ErrProductInvalid, "rating")
	}
	if p.ReviewCount != nil && *p.ReviewCount < 0 {
		return invalidField(ErrProductInvalid, "reviewCount")
	}
	return nil
}
