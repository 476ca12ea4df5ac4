package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// OrderRepository 订单历史数据访问接口（只追加）
type OrderRepository interface {
	List(ctx context.Context, sessionID string) ([]models.Order, error)
	Append(ctx context.Context, sessionID string, order models.Order) error
	GetByID(ctx context.Context, sessionID string, id int64) (*models.Order, error)
	WithStore(store KVStore) *KVOrderRepository
}

// KVOrderRepository 键值存储实现
type KVOrderRepository struct {
	store KVStore
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(store KVStore) *KVOrderRepository {
	return &KVOrderRepository{store: store}
}

// WithStore 绑定到指定存储
func (r *KVOrderRepository) WithStore(store KVStore) *KVOrderRepository {
	if store == nil {
		return r
	}
	return &KVOrderRepository{store: store}
}

// List 按提交顺序返回订单历史
func (r *KVOrderRepository) List(ctx context.Context, sessionID string) ([]models.Order, error) {
	key, err := ordersKey(sessionID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, r.store, key)
}

// Append 追加一条订单
func (r *KVOrderRepository) Append(ctx context.Context, sessionID string, order models.Order) error {
	key, err := ordersKey(sessionID)
	if err != nil {
		return err
	}
	return r.store.Atomic(ctx, func(store KVStore) error {
		orders, err := r.load(ctx, store, key)
		if err != nil {
			return err
		}
		orders = append(orders, order)
		payload, err := json.Marshal(orders)
		if err != nil {
			return err
		}
		return store.Set(ctx, key, payload)
	})
}

// GetByID 查询订单，不存在时返回 nil, nil
func (r *KVOrderRepository) GetByID(ctx context.Context, sessionID string, id int64) (*models.Order, error) {
	orders, err := r.List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *KVOrderRepository) load(ctx context.Context, store KVStore, key string) ([]models.Order, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.Order{}, nil
	}
	var orders []models.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func ordersKey(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrEmptySessionID
	}
	return namespacedKey(constants.NamespaceOrders, sessionID), nil
}
