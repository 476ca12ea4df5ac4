package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
)

// ErrInvalidProductID 商品 ID 无效
var ErrInvalidProductID = errors.New("invalid product id")

// ReviewRepository 商品评价数据访问接口（按商品只追加）
type ReviewRepository interface {
	// List 按提交顺序返回商品评价
	List(ctx context.Context, productID uint) ([]models.Review, error)
	Append(ctx context.Context, productID uint, review models.Review) error
	WithStore(store KVStore) *KVReviewRepository
}

// KVReviewRepository 键值存储实现
type KVReviewRepository struct {
	store KVStore
}

// NewReviewRepository 创建评价仓库
func NewReviewRepository(store KVStore) *KVReviewRepository {
	return &KVReviewRepository{store: store}
}

// WithStore 绑定到指定存储
func (r *KVReviewRepository) WithStore(store KVStore) *KVReviewRepository {
	if store == nil {
		return r
	}
	return &KVReviewRepository{store: store}
}

// List 读取商品评价
func (r *KVReviewRepository) List(ctx context.Context, productID uint) ([]models.Review, error) {
	key, err := reviewsKey(productID)
	if err != nil {
		return nil, err
	}
	return r.load(ctx, r.store, key)
}

// Append 追加一条评价
func (r *KVReviewRepository) Append(ctx context.Context, productID uint, review models.Review) error {
	key, err := reviewsKey(productID)
	if err != nil {
		return err
	}
	return r.store.Atomic(ctx, func(store KVStore) error {
		reviews, err := r.load(ctx, store, key)
		if err != nil {
			return err
		}
		payload, err := json.Marshal(append(reviews, review))
		if err != nil {
			return err
		}
		return store.Set(ctx, key, payload)
	})
}

func (r *KVReviewRepository) load(ctx context.Context, store KVStore, key string) ([]models.Review, error) {
	raw, found, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	reviews := []models.Review{}
	if !found {
		return reviews, nil
	}
	if err := json.Unmarshal(raw, &reviews); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	return reviews, nil
}

func reviewsKey(productID uint) (string, error) {
	if productID == 0 {
		return "", ErrInvalidProductID
	}
	return namespacedKey(constants.NamespaceReviews, strconv.FormatUint(uint64(productID), 10)), nil
}
