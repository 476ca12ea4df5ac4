package service

import (
	"context"
	"strings"

	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

// CartSummary 购物车汇总（用于响应）
type CartSummary struct {
	Items     []models.CartItem `json:"items"`
	ItemCount int               `json:"item_count"`
	Subtotal  models.Money      `json:"subtotal"`
}

// CartService 会话购物车服务，每次修改立即持久化
type CartService struct {
	store    repository.KVStore
	cartRepo repository.CartRepository
	catalog  *CatalogService
}

// NewCartService 创建购物车服务
func NewCartService(store repository.KVStore, cartRepo repository.CartRepository, catalog *CatalogService) *CartService {
	return &CartService{
		store:    store,
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// Get 读取会话购物车
func (s *CartService) Get(ctx context.Context, sessionID string) (*CartLedger, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	items, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return NewCartLedger(items), nil
}

// Summary 返回购物车行项目、总件数与小计
func (s *CartService) Summary(ctx context.Context, sessionID string) (CartSummary, error) {
	ledger, err := s.Get(ctx, sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(ledger), nil
}

// AddItem 加入商品（名称与价格在此刻快照）
func (s *CartService) AddItem(ctx context.Context, sessionID string, product models.Product) (CartSummary, error) {
	return s.mutate(ctx, sessionID, func(ledger *CartLedger) bool {
		ledger.AddItem(product)
		return true
	})
}

// AddProduct 按商品 ID 从目录读取后加入 quantity 件
func (s *CartService) AddProduct(ctx context.Context, sessionID string, productID uint, quantity int) (CartSummary, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return CartSummary{}, ErrQuantityInvalid
	}
	product, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return CartSummary{}, err
	}
	if product == nil {
		return CartSummary{}, ErrProductNotFound
	}
	if product.Stock != nil && !product.InStock() {
		return CartSummary{}, ErrProductOutOfStock
	}
	return s.mutate(ctx, sessionID, func(ledger *CartLedger) bool {
		ledger.AddItem(*product)
		if quantity > 1 {
			for _, item := range ledger.Items() {
				if item.ProductID == product.ID {
					ledger.SetQuantity(product.ID, item.Quantity+quantity-1)
					break
				}
			}
		}
		return true
	})
}

// RemoveItem 删除商品行，不存在时返回 NotFound 且不写入
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (UpdateResult, CartSummary, error) {
	result := NotFound
	summary, err := s.mutate(ctx, sessionID, func(ledger *CartLedger) bool {
		if ledger.RemoveItem(productID) {
			result = Updated
		}
		return result == Updated
	})
	return result, summary, err
}

// SetQuantity qty < 1 时删除商品行
func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID uint, qty int) (UpdateResult, CartSummary, error) {
	result := NotFound
	summary, err := s.mutate(ctx, sessionID, func(ledger *CartLedger) bool {
		if ledger.SetQuantity(productID, qty) {
			result = Updated
		}
		return result == Updated
	})
	return result, summary, err
}

// Clear 清空购物车，空购物车重复调用无副作用
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	_, err := s.mutate(ctx, sessionID, func(ledger *CartLedger) bool {
		ledger.Clear()
		return true
	})
	return err
}

// mutate 在原子块内读取、修改并写回购物车，fn 返回 false 时不写入
func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(*CartLedger) bool) (CartSummary, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return CartSummary{}, err
	}
	var ledger *CartLedger
	err = s.store.Atomic(ctx, func(tx repository.KVStore) error {
		repo := s.cartRepo.WithStore(tx)
		items, err := repo.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		ledger = NewCartLedger(items)
		if !fn(ledger) {
			return nil
		}
		return repo.Save(ctx, sessionID, ledger.Items())
	})
	if err != nil {
		return CartSummary{}, err
	}
	return summarize(ledger), nil
}

func summarize(ledger *CartLedger) CartSummary {
	return CartSummary{
		Items:     ledger.Items(),
		ItemCount: ledger.ItemCount(),
		Subtotal:  models.NewMoneyFromDecimal(ledger.Subtotal()),
	}
}

func normalizeSessionID(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrSessionRequired
	}
	return sessionID, nil
}
