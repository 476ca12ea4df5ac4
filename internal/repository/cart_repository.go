package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// ErrEmptySessionID 会话 ID 为空
var ErrEmptySessionID = errors.New("empty session id")

// CartRepository 购物车数据访问接口
type CartRepository interface {
	// Load 读取会话购物车，不存在时返回空切片
	Load(ctx context.Context, sessionID string) ([]models.CartItem, error)
	// Save 覆盖写入会话购物车，空购物车会删除存储键
	Save(ctx context.Context, sessionID string, items []models.CartItem) error
	WithStore(store KVStore) *KVCartRepository
}

// KVCartRepository 键值存储实现
type KVCartRepository struct {
	store KVStore
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(store KVStore) *KVCartRepository {
	return &KVCartRepository{store: store}
}

// WithStore 绑定到指定存储
func (r *KVCartRepository) WithStore(store KVStore) *KVCartRepository {
	if store == nil {
		return r
	}
	return &KVCartRepository{store: store}
}

// Load 读取会话购物车
func (r *KVCartRepository) Load(ctx context.Context, sessionID string) ([]models.CartItem, error) {
	key, err := cartKey(sessionID)
	if err != nil {
		return nil, err
	}
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if !found {
		return []models.CartItem{}, nil
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

// Save 写入会话购物车
func (r *KVCartRepository) Save(ctx context.Context, sessionID string, items []models.CartItem) error {
	key, err := cartKey(sessionID)
	if err != nil {
		return err
	}
	if len(items) == 0 {
		return r.store.Delete(ctx, key)
	}
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, payload)
}

func cartKey(sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrEmptySessionID
	}
	return namespacedKey(constants.NamespaceCart, sessionID), nil
}
