package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/minishop-next/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupKVStoreTest(t *testing.T) (*GormKVStore, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:kv_store_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("get sql db failed: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewGormKVStore(db), db
}

func TestGormKVStoreSetGetDelete(t *testing.T) {
	store, _ := setupKVStoreTest(t)
	ctx := context.Background()

	if _, found, err := store.Get(ctx, "cart:s1"); err != nil || found {
		t.Fatalf("missing key should be not found, found=%v err=%v", found, err)
	}
	if err := store.Set(ctx, "cart:s1", []byte(`[1]`)); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := store.Set(ctx, "cart:s1", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	value, found, err := store.Get(ctx, "cart:s1")
	if err != nil || !found {
		t.Fatalf("get after set failed: found=%v err=%v", found, err)
	}
	if string(value) != `[1,2]` {
		t.Fatalf("value want [1,2] got %s", value)
	}
	if err := store.Delete(ctx, "cart:s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Delete(ctx, "cart:s1"); err != nil {
		t.Fatalf("delete missing key should not fail: %v", err)
	}
	if _, found, _ := store.Get(ctx, "cart:s1"); found {
		t.Fatalf("key should be gone after delete")
	}
}

func TestGormKVStoreAtomicRollback(t *testing.T) {
	store, _ := setupKVStoreTest(t)
	ctx := context.Background()
	if err := store.Set(ctx, "a", []byte("before")); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(tx KVStore) error {
		if err := tx.Set(ctx, "a", []byte("after")); err != nil {
			return err
		}
		if err := tx.Set(ctx, "b", []byte("new")); err != nil {
			return err
		}
		value, found, err := tx.Get(ctx, "a")
		if err != nil || !found || string(value) != "after" {
			t.Fatalf("writes should be visible inside the transaction, got %s", value)
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("atomic should return callback error, got %v", err)
	}

	value, _, _ := store.Get(ctx, "a")
	if string(value) != "before" {
		t.Fatalf("rollback should restore a, got %s", value)
	}
	if _, found, _ := store.Get(ctx, "b"); found {
		t.Fatalf("rollback should discard b")
	}
}

func TestNamespacedKey(t *testing.T) {
	if got := namespacedKey("cart", " s1 "); got != "cart:s1" {
		t.Fatalf("want cart:s1 got %s", got)
	}
	if got := namespacedKey("catalog", "products"); got != "catalog:products" {
		t.Fatalf("want catalog:products got %s", got)
	}
}

func TestGormKVStoreLocksReadsInsideAtomic(t *testing.T) {
	store, db := setupKVStoreTest(t)
	ctx := context.Background()

	var locked []bool
	if err := db.Callback().Query().Before("gorm:query").Register("test:record_locking", func(tx *gorm.DB) {
		_, ok := tx.Statement.Clauses["FOR"]
		locked = append(locked, ok)
	}); err != nil {
		t.Fatalf("register callback failed: %v", err)
	}

	if err := store.Set(ctx, "orders:s1", []byte("[]")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, _, err := store.Get(ctx, "orders:s1"); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	err := store.Atomic(ctx, func(tx KVStore) error {
		if _, _, err := tx.Get(ctx, "orders:s1"); err != nil {
			return err
		}
		return tx.Atomic(ctx, func(nested KVStore) error {
			_, _, err := nested.Get(ctx, "cart:s1")
			return err
		})
	})
	if err != nil {
		t.Fatalf("atomic failed: %v", err)
	}
	if len(locked) != 3 || locked[0] || !locked[1] || !locked[2] {
		t.Fatalf("only reads inside a transaction should lock rows, got %v", locked)
	}
}

func TestDBDialectName(t *testing.T) {
	_, db := setupKVStoreTest(t)
	if got := dbDialectName(db); got != "sqlite" {
		t.Fatalf("want sqlite got %s", got)
	}
	if got := dbDialectName(nil); got != "sqlite" {
		t.Fatalf("nil db should default to sqlite, got %s", got)
	}
	if supportsAdvisoryLock(db) {
		t.Fatalf("sqlite should not use advisory locks")
	}
}
