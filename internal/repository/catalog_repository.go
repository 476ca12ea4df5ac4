package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// CatalogSnapshot 已存储的商品目录
type CatalogSnapshot struct {
	Products []models.Product
	Version  string
}

// CatalogRepository 商品目录数据访问接口
type CatalogRepository interface {
	// Load 读取商品目录，未初始化时返回 nil, nil；内容损坏时返回 ErrCorruptRecord
	Load(ctx context.Context) (*CatalogSnapshot, error)
	Save(ctx context.Context, products []models.Product, version string) error
	WithStore(store KVStore) *KVCatalogRepository
}

// KVCatalogRepository 键值存储实现
type KVCatalogRepository struct {
	store KVStore
}

// NewCatalogRepository 创建商品目录仓库
func NewCatalogRepository(store KVStore) *KVCatalogRepository {
	return &KVCatalogRepository{store: store}
}

// WithStore 绑定到指定存储（通常为事务内存储）
func (r *KVCatalogRepository) WithStore(store KVStore) *KVCatalogRepository {
	if store == nil {
		return r
	}
	return &KVCatalogRepository{store: store}
}

// Load 读取商品目录
func (r *KVCatalogRepository) Load(ctx context.Context) (*CatalogSnapshot, error) {
	raw, found, err := r.store.Get(ctx, catalogProductsKey())
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	version, _, err := r.store.Get(ctx, catalogVersionKey())
	if err != nil {
		return nil, err
	}
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, catalogProductsKey(), err)
	}
	return &CatalogSnapshot{
		Products: products,
		Version:  string(version),
	}, nil
}

// Save 原子写入商品列表与版本号
func (r *KVCatalogRepository) Save(ctx context.Context, products []models.Product, version string) error {
	if products == nil {
		products = []models.Product{}
	}
	payload, err := json.Marshal(products)
	if err != nil {
		return err
	}
	return r.store.Atomic(ctx, func(store KVStore) error {
		if err := store.Set(ctx, catalogProductsKey(), payload); err != nil {
			return err
		}
		return store.Set(ctx, catalogVersionKey(), []byte(version))
	})
}

func catalogProductsKey() string {
	return namespacedKey(constants.NamespaceCatalog, constants.CatalogProductsKey)
}

func catalogVersionKey() string {
	return namespacedKey(constants.NamespaceCatalog, constants.CatalogVersionKey)
}
