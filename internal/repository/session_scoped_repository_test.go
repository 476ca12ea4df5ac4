package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/minishop-next/internal/models"
)

func TestWishlistRepositorySaveLoadAndDelete(t *testing.T) {
	store, _ := setupKVStoreTest(t)
	repo := NewWishlistRepository(store)
	ctx := context.Background()

	items := []models.WishlistItem{
		{ProductID: 2, Name: "Smart Watch Pro", Price: models.MustMoney("30"), AddedAt: time.Unix(10, 0).UTC()},
	}
	if err := repo.Save(ctx, "alice", items); err != nil {
		t.Fatalf("save wishlist failed: %v", err)
	}
	got, err := repo.Load(ctx, "alice")
	if err != nil || len(got) != 1 || got[0].Price.String() != "30.00" {
		t.Fatalf("unexpected wishlist %+v %v", got, err)
	}

	other, err := repo.Load(ctx, "bob")
	if err != nil || other == nil || len(other) != 0 {
		t.Fatalf("other session should see an empty wishlist, got %+v %v", other, err)
	}

	if err := repo.Save(ctx, "alice", nil); err != nil {
		t.Fatalf("save empty wishlist failed: %v", err)
	}
	if _, found, _ := store.Get(ctx, "wishlist:alice"); found {
		t.Fatalf("empty wishlist should delete the key")
	}
	if _, err := repo.Load(ctx, " "); !errors.Is(err, ErrEmptySessionID) {
		t.Fatalf("want ErrEmptySessionID got %v", err)
	}
}

func TestRecentViewRepositoryCorruptRecord(t *testing.T) {
	store, _ := setupKVStoreTest(t)
	repo := NewRecentViewRepository(store)
	ctx := context.Background()

	if err := repo.Save(ctx, "alice", []uint{3, 1}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	ids, err := repo.Load(ctx, "alice")
	if err != nil || len(ids) != 2 || ids[0] != 3 {
		t.Fatalf("unexpected ids %v %v", ids, err)
	}
	if err := store.Set(ctx, "recent:alice", []byte("{")); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if _, err := repo.Load(ctx, "alice"); !errors.Is(err, ErrCorruptRecord) {
		t.Fatalf("want ErrCorruptRecord got %v", err)
	}
}

func TestReviewRepositoryAppendsPerProduct(t *testing.T) {
	store, _ := setupKVStoreTest(t)
	repo := NewReviewRepository(store)
	ctx := context.Background()

	for i, rating := range []int{4, 2} {
		review := models.Review{ID: int64(i + 1), ProductID: 7, Name: "n", Rating: rating, Title: "t", Text: "x"}
		if err := repo.Append(ctx, 7, review); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}
	reviews, err := repo.List(ctx, 7)
	if err != nil || len(reviews) != 2 || reviews[0].Rating != 4 || reviews[1].Rating != 2 {
		t.Fatalf("want two reviews in submit order, got %+v %v", reviews, err)
	}
	empty, err := repo.List(ctx, 8)
	if err != nil || len(empty) != 0 {
		t.Fatalf("other product should have no reviews, got %+v %v", empty, err)
	}
	if err := repo.Append(ctx, 0, models.Review{}); !errors.Is(err, ErrInvalidProductID) {
		t.Fatalf("want ErrInvalidProductID got %v", err)
	}
}
