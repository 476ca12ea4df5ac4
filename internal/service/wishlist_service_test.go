package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minishop-next/internal/events"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

func setupWishlistService(t *testing.T) (*WishlistService, *CartService, *CatalogService) {
	t.Helper()
	store := setupServiceStore(t)
	catalog := NewCatalogService(store, repository.NewCatalogRepository(store), events.NewLocalBus(), time.Minute)
	cart := NewCartService(store, repository.NewCartRepository(store), catalog)
	return NewWishlistService(store, repository.NewWishlistRepository(store), catalog, cart), cart, catalog
}

func TestWishlistAddIsIdempotentAndScoped(t *testing.T) {
	svc, _, _ := setupWishlistService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	items, err := svc.Add(ctx, "s1", 1)
	if err != nil {
		t.Fatalf("second add failed: %v", err)
	}
	if len(items) != 1 || items[0].ProductID != 1 || items[0].Price.String() != "20.00" {
		t.Fatalf("want a single snapshot of product 1, got %+v", items)
	}
	// 缺货商品也可以收藏
	if _, err := svc.Add(ctx, "s1", 4); err != nil {
		t.Fatalf("out of stock product should be wishlistable: %v", err)
	}

	other, err := svc.List(ctx, "s2")
	if err != nil || len(other) != 0 {
		t.Fatalf("wishlist must be scoped by session, got %+v %v", other, err)
	}
	if _, err := svc.Add(ctx, "s1", 9999); !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("want ErrProductNotFound got %v", err)
	}
	if _, err := svc.List(ctx, " "); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("want ErrSessionRequired got %v", err)
	}
}

func TestWishlistRemoveAndClear(t *testing.T) {
	svc, _, _ := setupWishlistService(t)
	ctx := context.Background()

	for _, id := range []uint{1, 2, 3} {
		if _, err := svc.Add(ctx, "s1", id); err != nil {
			t.Fatalf("add %d failed: %v", id, err)
		}
	}
	result, items, err := svc.Remove(ctx, "s1", 2)
	if err != nil || result != Updated {
		t.Fatalf("remove want Updated got %v %v", result, err)
	}
	if len(items) != 2 || items[0].ProductID != 1 || items[1].ProductID != 3 {
		t.Fatalf("remove should keep order of the rest, got %+v", items)
	}
	result, _, err = svc.Remove(ctx, "s1", 2)
	if err != nil || result != NotFound {
		t.Fatalf("second remove want NotFound got %v %v", result, err)
	}

	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if err := svc.Clear(ctx, "s1"); err != nil {
		t.Fatalf("clear should be idempotent: %v", err)
	}
	items, _ = svc.List(ctx, "s1")
	if len(items) != 0 {
		t.Fatalf("wishlist should be empty, got %+v", items)
	}
}

func TestWishlistMoveToCartUsesCurrentPrice(t *testing.T) {
	svc, cart, catalog := setupWishlistService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	price := models.MustMoney("12.50")
	if _, _, err := catalog.Update(ctx, 2, models.ProductPatch{Price: &price}); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	result, summary, err := svc.MoveToCart(ctx, "s1", 2)
	if err != nil || result != Updated {
		t.Fatalf("move want Updated got %v %v", result, err)
	}
	if len(summary.Items) != 1 || summary.Items[0].UnitPrice.String() != "12.50" {
		t.Fatalf("cart should use the current catalog price, got %+v", summary.Items)
	}
	items, _ := svc.List(ctx, "s1")
	if len(items) != 0 {
		t.Fatalf("moved item should leave the wishlist, got %+v", items)
	}

	result, _, err = svc.MoveToCart(ctx, "s1", 2)
	if err != nil || result != NotFound {
		t.Fatalf("moving a missing item want NotFound got %v %v", result, err)
	}
	reloaded, _ := cart.Summary(ctx, "s1")
	if reloaded.ItemCount != 1 {
		t.Fatalf("NotFound move must not touch the cart, got %+v", reloaded)
	}
}

func TestWishlistMoveToCartOutOfStockKeepsItem(t *testing.T) {
	svc, cart, _ := setupWishlistService(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "s1", 4); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, _, err := svc.MoveToCart(ctx, "s1", 4); !errors.Is(err, ErrProductOutOfStock) {
		t.Fatalf("want ErrProductOutOfStock got %v", err)
	}
	items, _ := svc.List(ctx, "s1")
	if len(items) != 1 {
		t.Fatalf("failed move should keep the wishlist item, got %+v", items)
	}
	summary, _ := cart.Summary(ctx, "s1")
	if len(summary.Items) != 0 {
		t.Fatalf("failed move should leave the cart empty, got %+v", summary)
	}
}
