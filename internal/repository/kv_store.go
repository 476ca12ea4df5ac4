package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/minishop-next/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrCorruptRecord 存储内容无法解析
var ErrCorruptRecord = errors.New("corrupt stored record")

// KVStore 键值存储接口
type KVStore interface {
	// Get 读取键值，键不存在时 found 为 false
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Atomic 在同一事务内执行 fn，fn 返回错误时全部写入回滚
	Atomic(ctx context.Context, fn func(store KVStore) error) error
}

// GormKVStore 基于 kv_entries 表的实现
type GormKVStore struct {
	db *gorm.DB
	// inTx 绑定事务时读取加锁，直到事务结束，防止读改写丢失更新
	inTx bool
}

// NewGormKVStore 创建 GORM 键值存储
func NewGormKVStore(db *gorm.DB) *GormKVStore {
	return &GormKVStore{db: db}
}

// WithTx 绑定事务
func (s *GormKVStore) WithTx(tx *gorm.DB) *GormKVStore {
	if tx == nil {
		return s
	}
	return &GormKVStore{db: tx, inTx: true}
}

// Get 读取键值；事务内读取会锁定该键
func (s *GormKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := s.lockKey(ctx, key); err != nil {
		return nil, false, err
	}
	query := s.db.WithContext(ctx)
	if s.inTx {
		query = query.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var entry models.KVEntry
	err := query.
		Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).
		Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return []byte(entry.Value), true, nil
}

// Set 写入键值（存在则覆盖）
func (s *GormKVStore) Set(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now(),
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}

// Delete 删除键值，键不存在不报错
func (s *GormKVStore) Delete(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).
		Where(clause.Eq{Column: clause.Column{Name: "key"}, Value: key}).
		Delete(&models.KVEntry{}).Error
}

// Atomic 使用数据库事务执行
func (s *GormKVStore) Atomic(ctx context.Context, fn func(store KVStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(s.WithTx(tx))
	})
}

// lockKey 事务内按键加咨询锁；行锁无法覆盖尚不存在的键（如首个订单），
// 并发事务会在此处排队
func (s *GormKVStore) lockKey(ctx context.Context, key string) error {
	if !s.inTx || !supportsAdvisoryLock(s.db) {
		return nil
	}
	return s.db.WithContext(ctx).Exec("SELECT pg_advisory_xact_lock(hashtext(?))", key).Error
}

// namespacedKey 拼接命名空间键，例如 cart:<session>
func namespacedKey(namespace string, parts ...string) string {
	segments := make([]string, 0, len(parts)+1)
	segments = append(segments, namespace)
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		segments = append(segments, part)
	}
	return strings.Join(segments, ":")
}
