package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/constants"
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/provider"
	"github.com/minishop-next/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	StatusCode int             `json:"status_code"`
	Msg        string          `json:"msg"`
	Data       json.RawMessage `json:"data"`
}

type testClient struct {
	t      *testing.T
	engine *gin.Engine
	token  string
	header map[string]string
}

func setupRouter(t *testing.T, adminKey string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	dsn := fmt.Sprintf("file:router_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
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

	cfg := &config.Config{}
	cfg.Server.Mode = "debug"
	cfg.Session.SecretKey = "router-test-secret"
	cfg.Admin.APIKey = adminKey
	container := provider.NewContainerWithStore(cfg, repository.NewGormKVStore(db), nil)
	return SetupRouter(cfg, container)
}

func (tc *testClient) do(method, path string, body interface{}) envelope {
	tc.t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			tc.t.Fatalf("marshal body failed: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if tc.token != "" {
		req.Header.Set(constants.SessionTokenHeader, tc.token)
	}
	for k, v := range tc.header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	tc.engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		tc.t.Fatalf("%s %s http status want 200 got %d", method, path, w.Code)
	}
	if token := w.Header().Get(constants.SessionTokenHeader); token != "" {
		tc.token = token
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		tc.t.Fatalf("%s %s unmarshal failed: %v body=%s", method, path, err, w.Body.String())
	}
	return env
}

func decodeData(t *testing.T, env envelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data failed: %v data=%s", err, string(env.Data))
	}
}

func TestCatalogRoutes(t *testing.T) {
	client := &testClient{t: t, engine: setupRouter(t, "")}

	env := client.do(http.MethodGet, "/api/v1/catalog/products?category=Electronics&sort=price-low", nil)
	if env.StatusCode != 200 {
		t.Fatalf("list products status_code want 200 got %d msg=%s", env.StatusCode, env.Msg)
	}
	var listing struct {
		Items []models.Product `json:"items"`
		Total int              `json:"total"`
	}
	decodeData(t, env, &listing)
	products := listing.Items
	if listing.Total != len(products) {
		t.Fatalf("total want %d got %d", len(products), listing.Total)
	}
	if len(products) == 0 {
		t.Fatalf("electronics should not be empty")
	}
	for i, p := range products {
		if p.Category != "Electronics" {
			t.Fatalf("product %d category want Electronics got %s", p.ID, p.Category)
		}
		if i > 0 && products[i-1].Price.Decimal.GreaterThan(p.Price.Decimal) {
			t.Fatalf("products should be sorted by price ascending")
		}
	}

	env = client.do(http.MethodGet, "/api/v1/catalog/products/1", nil)
	var product models.Product
	decodeData(t, env, &product)
	if product.ID != 1 || product.Name != "Wireless Bluetooth Headphones" {
		t.Fatalf("unexpected product %+v", product)
	}

	env = client.do(http.MethodGet, "/api/v1/catalog/products/9999", nil)
	if env.StatusCode != 404 {
		t.Fatalf("missing product status_code want 404 got %d", env.StatusCode)
	}
	env = client.do(http.MethodGet, "/api/v1/catalog/products/abc", nil)
	if env.StatusCode != 400 {
		t.Fatalf("bad product id status_code want 400 got %d", env.StatusCode)
	}

	env = client.do(http.MethodGet, "/api/v1/catalog/categories", nil)
	if env.StatusCode != 200 || len(env.Data) == 0 {
		t.Fatalf("categories failed: %d %s", env.StatusCode, env.Msg)
	}
}

func TestCartCheckoutAndOrderFlow(t *testing.T) {
	client := &testClient{t: t, engine: setupRouter(t, "")}

	env := client.do(http.MethodGet, "/api/v1/session", nil)
	if env.StatusCode != 200 || client.token == "" {
		t.Fatalf("session should be issued, status_code=%d", env.StatusCode)
	}

	client.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 1, "quantity": 2})
	client.do(http.MethodPost, "/api/v1/cart/items", gin.H{"product_id": 2})
	env = client.do(http.MethodPut, "/api/v1/cart/items/2", gin.H{"quantity": 2})
	if env.StatusCode != 200 {
		t.Fatalf("set quantity failed: %d %s", env.StatusCode, env.Msg)
	}

	env = client.do(http.MethodGet, "/api/v1/cart", nil)
	var cart struct {
		ItemCount int    `json:"item_count"`
		Subtotal  string `json:"subtotal"`
	}
	decodeData(t, env, &cart)
	if cart.ItemCount != 4 || cart.Subtotal != "100.00" {
		t.Fatalf("cart want 4 items / 100.00 got %d / %s", cart.ItemCount, cart.Subtotal)
	}

	env = client.do(http.MethodPost, "/api/v1/checkout/promo", gin.H{"code": "bogus"})
	if env.StatusCode != 400 {
		t.Fatalf("unknown promo status_code want 400 got %d", env.StatusCode)
	}

	env = client.do(http.MethodPost, "/api/v1/checkout", gin.H{
		"promo_code":      "save10",
		"shipping_method": "standard",
		"shipping": gin.H{
			"full_name": "Ada Lovelace",
			"email":     "ada@example.com",
			"address":   "12 Analytical St",
			"city":      "London",
			"zip_code":  "10001",
			"phone":     "555-0100",
		},
		"payment": gin.H{
			"method":          "card",
			"card_number":     "4111 1111 1111 1111",
			"cardholder_name": "Ada Lovelace",
			"expiry":          "12/99",
			"cvv":             "123",
		},
	})
	if env.StatusCode != 200 {
		t.Fatalf("checkout failed: %d %s", env.StatusCode, env.Msg)
	}
	var order struct {
		ID      int64  `json:"id"`
		Total   string `json:"total"`
		Payment struct {
			CardLast4 string `json:"card_last4"`
		} `json:"payment"`
	}
	decodeData(t, env, &order)
	if order.Total != "103.19" {
		t.Fatalf("order total want 103.19 got %s", order.Total)
	}
	if order.Payment.CardLast4 != "1111" {
		t.Fatalf("card last4 want 1111 got %s", order.Payment.CardLast4)
	}

	env = client.do(http.MethodGet, "/api/v1/cart", nil)
	decodeData(t, env, &cart)
	if cart.ItemCount != 0 {
		t.Fatalf("cart should be cleared after checkout, got %d items", cart.ItemCount)
	}

	env = client.do(http.MethodGet, "/api/v1/orders", nil)
	var orders []struct {
		ID int64 `json:"id"`
	}
	decodeData(t, env, &orders)
	if len(orders) != 1 || orders[0].ID != order.ID {
		t.Fatalf("order history want [%d] got %+v", order.ID, orders)
	}
	env = client.do(http.MethodGet, fmt.Sprintf("/api/v1/orders/%d", order.ID), nil)
	if env.StatusCode != 200 {
		t.Fatalf("get order failed: %d %s", env.StatusCode, env.Msg)
	}

	env = client.do(http.MethodPost, "/api/v1/checkout", gin.H{"shipping_method": "standard"})
	if env.StatusCode == 200 {
		t.Fatalf("checkout with empty cart and form should fail")
	}

	stranger := &testClient{t: t, engine: client.engine}
	env = stranger.do(http.MethodGet, "/api/v1/orders", nil)
	decodeData(t, env, &orders)
	if len(orders) != 0 {
		t.Fatalf("another session should not see orders, got %d", len(orders))
	}
}

func TestAdminCatalogRoutes(t *testing.T) {
	engine := setupRouter(t, "admin-key")
	anon := &testClient{t: t, engine: engine}
	env := anon.do(http.MethodPost, "/api/v1/admin/catalog/products", gin.H{"name": "Desk Lamp", "price": "25"})
	if env.StatusCode != 401 {
		t.Fatalf("missing admin key status_code want 401 got %d", env.StatusCode)
	}

	admin := &testClient{t: t, engine: engine, header: map[string]string{constants.AdminKeyHeader: "admin-key"}}
	env = admin.do(http.MethodPost, "/api/v1/admin/catalog/products", gin.H{"name": "Desk Lamp", "price": "25", "category": "Home"})
	if env.StatusCode != 200 {
		t.Fatalf("create product failed: %d %s", env.StatusCode, env.Msg)
	}
	var created models.Product
	decodeData(t, env, &created)
	if created.ID != uint(len(models.DefaultProducts())+1) {
		t.Fatalf("new product id want %d got %d", len(models.DefaultProducts())+1, created.ID)
	}

	env = admin.do(http.MethodPost, "/api/v1/admin/catalog/products", gin.H{"name": "Broken", "price": "-1"})
	if env.StatusCode != 400 {
		t.Fatalf("negative price status_code want 400 got %d", env.StatusCode)
	}

	env = admin.do(http.MethodPatch, fmt.Sprintf("/api/v1/admin/catalog/products/%d", created.ID), gin.H{"price": "19.5"})
	if env.StatusCode != 200 {
		t.Fatalf("update product failed: %d %s", env.StatusCode, env.Msg)
	}
	env = admin.do(http.MethodPatch, "/api/v1/admin/catalog/products/9999", gin.H{"price": "1"})
	if env.StatusCode != 404 {
		t.Fatalf("update missing product status_code want 404 got %d", env.StatusCode)
	}

	env = admin.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/catalog/products/%d", created.ID), nil)
	if env.StatusCode != 200 {
		t.Fatalf("delete product failed: %d %s", env.StatusCode, env.Msg)
	}
	env = admin.do(http.MethodDelete, fmt.Sprintf("/api/v1/admin/catalog/products/%d", created.ID), nil)
	if env.StatusCode != 404 {
		t.Fatalf("second delete status_code want 404 got %d", env.StatusCode)
	}

	env = admin.do(http.MethodPost, "/api/v1/admin/catalog/reset", nil)
	if env.StatusCode != 200 {
		t.Fatalf("reset failed: %d %s", env.StatusCode, env.Msg)
	}
}

func TestHealthz(t *testing.T) {
	client := &testClient{t: t, engine: setupRouter(t, "")}
	env := client.do(http.MethodGet, "/api/v1/healthz", nil)
	if env.StatusCode != 200 {
		t.Fatalf("healthz status_code want 200 got %d", env.StatusCode)
	}
}

type streamRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (r *streamRecorder) CloseNotify() <-chan bool {
	return r.closed
}

func TestCatalogEventsStreamEndsOnShutdown(t *testing.T) {
	engine := setupRouter(t, "")
	shutdown := make(chan struct{})
	ctx := handlershared.WithShutdownSignal(context.Background(), shutdown)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/events", nil).WithContext(ctx)
	rec := &streamRecorder{ResponseRecorder: httptest.NewRecorder(), closed: make(chan bool, 1)}

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		engine.ServeHTTP(rec, req)
	}()

	select {
	case <-finished:
		t.Fatalf("stream should stay open until shutdown")
	case <-time.After(50 * time.Millisecond):
	}
	close(shutdown)
	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatalf("stream should end after shutdown signal")
	}
	if !strings.Contains(rec.Body.String(), "event:ready") {
		t.Fatalf("stream should send ready event, got %q", rec.Body.String())
	}
}

func TestWishlistReviewAndRecentlyViewedRoutes(t *testing.T) {
	client := &testClient{t: t, engine: setupRouter(t, "")}
	client.do(http.MethodGet, "/api/v1/session", nil)

	client.do(http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": 1})
	client.do(http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": 1})
	env := client.do(http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": 2})
	var wishlist struct {
		Items []models.WishlistItem `json:"items"`
		Total int                   `json:"total"`
	}
	decodeData(t, env, &wishlist)
	if wishlist.Total != 2 {
		t.Fatalf("wishlist want 2 items got %+v", wishlist)
	}
	env = client.do(http.MethodPost, "/api/v1/wishlist/items", gin.H{"product_id": 9999})
	if env.StatusCode != 404 {
		t.Fatalf("unknown product status_code want 404 got %d", env.StatusCode)
	}

	env = client.do(http.MethodPost, "/api/v1/wishlist/items/1/move-to-cart", nil)
	var moved struct {
		Result string `json:"result"`
		Cart   struct {
			ItemCount int `json:"item_count"`
		} `json:"cart"`
	}
	decodeData(t, env, &moved)
	if moved.Result != "updated" || moved.Cart.ItemCount != 1 {
		t.Fatalf("move to cart want updated with 1 item, got %+v", moved)
	}
	env = client.do(http.MethodDelete, "/api/v1/wishlist/items/1", nil)
	var removed struct {
		Result string `json:"result"`
	}
	decodeData(t, env, &removed)
	if removed.Result != "not_found" {
		t.Fatalf("moved item should be gone, got %+v", removed)
	}
	client.do(http.MethodDelete, "/api/v1/wishlist", nil)
	env = client.do(http.MethodGet, "/api/v1/wishlist", nil)
	decodeData(t, env, &wishlist)
	if wishlist.Total != 0 {
		t.Fatalf("cleared wishlist want 0 items got %+v", wishlist)
	}

	env = client.do(http.MethodPost, "/api/v1/catalog/products/1/reviews", gin.H{"name": "Ana", "rating": 9, "title": "t", "text": "x"})
	if env.StatusCode != 400 {
		t.Fatalf("bad rating status_code want 400 got %d", env.StatusCode)
	}
	env = client.do(http.MethodPost, "/api/v1/catalog/products/1/reviews", gin.H{"name": "Ana", "rating": 1, "title": "Meh", "text": "Too quiet"})
	var submitted struct {
		Review  models.Review   `json:"review"`
		Product *models.Product `json:"product"`
	}
	decodeData(t, env, &submitted)
	if submitted.Product == nil || submitted.Product.RatingValue() != 4.0 || *submitted.Product.ReviewCount != 5 {
		t.Fatalf("review should update product rating, got %+v", submitted.Product)
	}
	env = client.do(http.MethodGet, "/api/v1/catalog/products/1/reviews?sort=lowest", nil)
	var reviews struct {
		Items []models.Review `json:"items"`
		Total int             `json:"total"`
	}
	decodeData(t, env, &reviews)
	if reviews.Total != 1 || reviews.Items[0].Title != "Meh" {
		t.Fatalf("want the submitted review, got %+v", reviews)
	}

	client.do(http.MethodPost, "/api/v1/recently-viewed/3", nil)
	client.do(http.MethodPost, "/api/v1/recently-viewed/1", nil)
	env = client.do(http.MethodPost, "/api/v1/recently-viewed/9999", nil)
	if env.StatusCode != 404 {
		t.Fatalf("unknown product status_code want 404 got %d", env.StatusCode)
	}
	env = client.do(http.MethodGet, "/api/v1/recently-viewed", nil)
	var recent struct {
		Items []models.Product `json:"items"`
	}
	decodeData(t, env, &recent)
	if len(recent.Items) != 2 || recent.Items[0].ID != 1 || recent.Items[1].ID != 3 {
		t.Fatalf("recently viewed want [1 3] got %+v", recent.Items)
	}
}
