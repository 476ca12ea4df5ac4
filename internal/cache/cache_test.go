package cache

import (
	"context"
	"testing"

	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/models"
)

func TestDisabledCacheIsNoop(t *testing.T) {
	if err := InitRedis(&config.RedisConfig{Enabled: false}); err != nil {
		t.Fatalf("init disabled redis failed: %v", err)
	}
	ctx := context.Background()
	if Enabled() || Client() != nil {
		t.Fatalf("cache should be disabled")
	}
	if err := SetCatalogList(ctx, models.DefaultProducts(), 0); err != nil {
		t.Fatalf("set on disabled cache should be a no-op: %v", err)
	}
	products, hit, err := GetCatalogList(ctx)
	if err != nil || hit || products != nil {
		t.Fatalf("disabled cache should miss, hit=%v err=%v", hit, err)
	}
	if err := InvalidateCatalogList(ctx); err != nil {
		t.Fatalf("invalidate on disabled cache should be a no-op: %v", err)
	}
}

func TestBuildKey(t *testing.T) {
	Use(nil, " shop ")
	t.Cleanup(func() { Use(nil, "") })

	if got := BuildKey("catalog:list"); got != "shop:catalog:list" {
		t.Fatalf("want shop:catalog:list got %s", got)
	}
	if got := BuildKey("  "); got != "shop" {
		t.Fatalf("empty key should return prefix, got %s", got)
	}
}

func TestBufferedKVReadsOwnWrites(t *testing.T) {
	buf := newBufferedKV(NewRedisKVStore(nil, ""))
	ctx := context.Background()

	if err := buf.Set(ctx, "cart:s1", []byte("[]")); err != nil {
		t.Fatalf("buffered set failed: %v", err)
	}
	if err := buf.Set(ctx, "orders:s1", []byte("[1]")); err != nil {
		t.Fatalf("buffered set failed: %v", err)
	}
	if err := buf.Delete(ctx, "cart:s1"); err != nil {
		t.Fatalf("buffered delete failed: %v", err)
	}

	if _, found, err := buf.Get(ctx, "cart:s1"); err != nil || found {
		t.Fatalf("deleted key should read as missing, found=%v err=%v", found, err)
	}
	value, found, err := buf.Get(ctx, "orders:s1")
	if err != nil || !found || string(value) != "[1]" {
		t.Fatalf("buffered value should be visible, got %s found=%v err=%v", value, found, err)
	}
	if len(buf.order) != 2 || buf.order[0] != "cart:s1" || buf.order[1] != "orders:s1" {
		t.Fatalf("write order should keep first-write order, got %v", buf.order)
	}
	if len(buf.reads) != 0 {
		t.Fatalf("reads served from the buffer should not be watched, got %v", buf.reads)
	}
}

func TestRedisKVStoreKeyPrefix(t *testing.T) {
	store := NewRedisKVStore(nil, "")
	if got := store.key("cart:s1"); got != "ms:kv:cart:s1" {
		t.Fatalf("want ms:kv:cart:s1 got %s", got)
	}
}
