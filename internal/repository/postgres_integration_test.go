//go:build integration
// +build integration

package repository

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/minishop-next/internal/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}
	_ = db.Migrator().DropTable(&models.KVEntry{})
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(&models.KVEntry{})
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestPostgresIntegrationCatalogRoundTrip(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	store := NewGormKVStore(db)
	repo := NewCatalogRepository(store)
	ctx := context.Background()

	products := models.DefaultProducts()
	if err := repo.Save(ctx, products, models.CatalogVersion); err != nil {
		t.Fatalf("save catalog failed: %v", err)
	}
	snapshot, err := repo.Load(ctx)
	if err != nil || snapshot == nil {
		t.Fatalf("load catalog failed: snapshot=%v err=%v", snapshot, err)
	}
	if len(snapshot.Products) != len(products) || snapshot.Version != models.CatalogVersion {
		t.Fatalf("unexpected snapshot: %d products version %s", len(snapshot.Products), snapshot.Version)
	}
	if !snapshot.Products[0].Price.Decimal.Equal(products[0].Price.Decimal) {
		t.Fatalf("price want %s got %s", products[0].Price.String(), snapshot.Products[0].Price.String())
	}
}

func TestPostgresIntegrationAtomicRollback(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	store := NewGormKVStore(db)
	cartRepo := NewCartRepository(store)
	orderRepo := NewOrderRepository(store)
	ctx := context.Background()

	item := models.CartItem{
		ProductID: 1,
		Name:      "Wireless Bluetooth Headphones",
		UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(20)),
		Quantity:  2,
	}
	if err := cartRepo.Save(ctx, "pg-session", []models.CartItem{item}); err != nil {
		t.Fatalf("save cart failed: %v", err)
	}

	boom := errors.New("boom")
	err := store.Atomic(ctx, func(tx KVStore) error {
		if err := orderRepo.WithStore(tx).Append(ctx, "pg-session", models.Order{ID: time.Now().UnixMilli()}); err != nil {
			return err
		}
		if err := cartRepo.WithStore(tx).Save(ctx, "pg-session", nil); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("atomic should return fn error, got %v", err)
	}

	items, err := cartRepo.Load(ctx, "pg-session")
	if err != nil || len(items) != 1 {
		t.Fatalf("cart should survive rollback: items=%v err=%v", items, err)
	}
	orders, err := orderRepo.List(ctx, "pg-session")
	if err != nil || len(orders) != 0 {
		t.Fatalf("order should be rolled back: orders=%v err=%v", orders, err)
	}
}

func TestPostgresIntegrationConcurrentAppendKeepsAllOrders(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	store := NewGormKVStore(db)
	orderRepo := NewOrderRepository(store)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			errs <- store.Atomic(ctx, func(tx KVStore) error {
				repo := orderRepo.WithStore(tx)
				if _, err := repo.List(ctx, "pg-concurrent"); err != nil {
					return err
				}
				// 读取后停顿，放大读改写窗口
				time.Sleep(20 * time.Millisecond)
				return repo.Append(ctx, "pg-concurrent", models.Order{ID: id})
			})
		}(int64(i + 1))
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent append failed: %v", err)
		}
	}

	orders, err := orderRepo.List(ctx, "pg-concurrent")
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != writers {
		t.Fatalf("want %d orders got %d", writers, len(orders))
	}
}
