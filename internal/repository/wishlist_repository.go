package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// WishlistRepository 收藏夹数据访问接口
type WishlistRepository interface {
	// Load 读取会话收藏夹，不存在时返回空切片
	Load(ctx context.Context, sessionID string) ([]models.WishlistItem, error)
	// Save 覆盖写入，空收藏夹会删除存储键
	Save(ctx context.Context, sessionID string, items []models.WishlistItem) error
	WithStore(store KVStore) *KVWishlistRepository
}

// KVWishlistRepository 键值存储实现
type KVWishlistRepository struct {
	store KVStore
}

// NewWishlistRepository 创建收藏夹仓库
func NewWishlistRepository(store KVStore) *KVWishlistRepository {
	return &KVWishlistRepository{store: store}
}

// WithStore 绑定到指定存储
func (r *KVWishlistRepository) WithStore(store KVStore) *KVWishlistRepository {
	if store == nil {
		return r
	}
	return &KVWishlistRepository{store: store}
}

// Load 读取会话收藏夹
func (r *KVWishlistRepository) Load(ctx context.Context, sessionID string) ([]models.WishlistItem, error) {
	key, err := sessionScopedKey(constants.NamespaceWishlist, sessionID)
	if err != nil {
		return nil, err
	}
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	items := []models.WishlistItem{}
	if !found {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	if items == nil {
		items = []models.WishlistItem{}
	}
	return items, nil
}

// Save 写入会话收藏夹
func (r *KVWishlistRepository) Save(ctx context.Context, sessionID string, items []models.WishlistItem) error {
	key, err := sessionScopedKey(constants.NamespaceWishlist, sessionID)
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

func sessionScopedKey(namespace, sessionID string) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return "", ErrEmptySessionID
	}
	return namespacedKey(namespace, sessionID), nil
}
