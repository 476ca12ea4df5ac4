package cache

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/repository"

	"github.com/redis/go-redis/v9"
)

const maxAtomicAttempts = 3

// ErrAtomicConflict 乐观事务多次冲突
var ErrAtomicConflict = errors.New("redis kv: concurrent modification")

// RedisKVStore 基于 Redis 的键值存储
type RedisKVStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisKVStore 创建 Redis 键值存储
func NewRedisKVStore(client redis.UniversalClient, prefix string) *RedisKVStore {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &RedisKVStore{client: client, prefix: prefix}
}

func (s *RedisKVStore) key(key string) string {
	return fmt.Sprintf("%s:kv:%s", s.prefix, key)
}

// Get 读取键值
func (s *RedisKVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// Set 写入键值
func (s *RedisKVStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, s.key(key), value, 0).Err()
}

// Delete 删除键值
func (s *RedisKVStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.key(key)).Err()
}

// Atomic 缓冲 fn 内的写入，提交时 WATCH 已读键并以 MULTI/EXEC 一次写入；
// 已读键被并发修改时重跑 fn，超过次数返回 ErrAtomicConflict
func (s *RedisKVStore) Atomic(ctx context.Context, fn func(store repository.KVStore) error) error {
	for attempt := 0; attempt < maxAtomicAttempts; attempt++ {
		buf := newBufferedKV(s)
		if err := fn(buf); err != nil {
			return err
		}
		if len(buf.order) == 0 {
			return nil
		}
		err := s.commit(ctx, buf)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrAtomicConflict
}

func (s *RedisKVStore) commit(ctx context.Context, buf *bufferedKV) error {
	watched := make([]string, 0, len(buf.reads))
	for key := range buf.reads {
		watched = append(watched, s.key(key))
	}
	return s.client.Watch(ctx, func(tx *redis.Tx) error {
		for key, seen := range buf.reads {
			current, err := tx.Get(ctx, s.key(key)).Bytes()
			found := true
			if err == redis.Nil {
				found = false
			} else if err != nil {
				return err
			}
			if found != seen.found || !bytes.Equal(current, seen.value) {
				return redis.TxFailedErr
			}
		}
		_, err := tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, key := range buf.order {
				write := buf.writes[key]
				if write.deleted {
					pipe.Del(ctx, s.key(key))
					continue
				}
				pipe.Set(ctx, s.key(key), write.value, 0)
			}
			return nil
		})
		return err
	}, watched...)
}

type readSnapshot struct {
	value []byte
	found bool
}

type pendingWrite struct {
	value   []byte
	deleted bool
}

// bufferedKV 事务内视图：读穿透到 Redis 并记录，写入仅缓冲
type bufferedKV struct {
	base   *RedisKVStore
	reads  map[string]readSnapshot
	writes map[string]pendingWrite
	order  []string
}

func newBufferedKV(base *RedisKVStore) *bufferedKV {
	return &bufferedKV{
		base:   base,
		reads:  make(map[string]readSnapshot),
		writes: make(map[string]pendingWrite),
	}
}

func (b *bufferedKV) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if write, ok := b.writes[key]; ok {
		if write.deleted {
			return nil, false, nil
		}
		return append([]byte(nil), write.value...), true, nil
	}
	value, found, err := b.base.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if _, seen := b.reads[key]; !seen {
		b.reads[key] = readSnapshot{value: value, found: found}
	}
	return value, found, nil
}

func (b *bufferedKV) Set(_ context.Context, key string, value []byte) error {
	b.record(key, pendingWrite{value: append([]byte(nil), value...)})
	return nil
}

func (b *bufferedKV) Delete(_ context.Context, key string) error {
	b.record(key, pendingWrite{deleted: true})
	return nil
}

// Atomic 嵌套调用并入外层事务
func (b *bufferedKV) Atomic(_ context.Context, fn func(store repository.KVStore) error) error {
	return fn(b)
}

func (b *bufferedKV) record(key string, write pendingWrite) {
	if _, exists := b.writes[key]; !exists {
		b.order = append(b.order, key)
	}
	b.writes[key] = write
}
