package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minishop-next/internal/constants"
)

// RecentViewRepository 最近浏览数据访问接口，只保存商品 ID（最新在前）
type RecentViewRepository interface {
	Load(ctx context.Context, sessionID string) ([]uint, error)
	Save(ctx context.Context, sessionID string, productIDs []uint) error
	WithStore(store KVStore) *KVRecentViewRepository
}

// KVRecentViewRepository 键值存储实现
type KVRecentViewRepository struct {
	store KVStore
}

// NewRecentViewRepository 创建最近浏览仓库
func NewRecentViewRepository(store KVStore) *KVRecentViewRepository {
	return &KVRecentViewRepository{store: store}
}

// WithStore 绑定到指定存储
func (r *KVRecentViewRepository) WithStore(store KVStore) *KVRecentViewRepository {
	if store == nil {
		return r
	}
	return &KVRecentViewRepository{store: store}
}

// Load 读取最近浏览的商品 ID
func (r *KVRecentViewRepository) Load(ctx context.Context, sessionID string) ([]uint, error) {
	key, err := sessionScopedKey(constants.NamespaceRecent, sessionID)
	if err != nil {
		return nil, err
	}
	raw, found, err := r.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	ids := []uint{}
	if !found {
		return ids, nil
	}
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	if ids == nil {
		ids = []uint{}
	}
	return ids, nil
}

// Save 覆盖写入最近浏览列表
func (r *KVRecentViewRepository) Save(ctx context.Context, sessionID string, productIDs []uint) error {
	key, err := sessionScopedKey(constants.NamespaceRecent, sessionID)
	if err != nil {
		return err
	}
	if len(productIDs) == 0 {
		return r.store.Delete(ctx, key)
	}
	payload, err := json.Marshal(productIDs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, payload)
}
