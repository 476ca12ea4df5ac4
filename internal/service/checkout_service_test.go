package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

type checkoutFixture struct {
	cart     *CartService
	checkout *CheckoutService
	orders   *OrderService
}

func setupCheckout(t *testing.T, delay time.Duration) checkoutFixture {
	t.Helper()
	cart, _, store := setupCartService(t)
	cartRepo := repository.NewCartRepository(store)
	orderRepo := repository.NewOrderRepository(store)
	checkout := NewCheckoutService(store, cartRepo, orderRepo, nil, delay)
	checkout.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return checkoutFixture{cart: cart, checkout: checkout, orders: NewOrderService(orderRepo)}
}

func validCheckoutInput(sessionID string) CheckoutInput {
	return CheckoutInput{
		SessionID:      sessionID,
		PromoCode:      "save10",
		ShippingMethod: constants.ShippingMethodStandard,
		Shipping: ShippingForm{
			FullName: "Ada Lovelace",
			Email:    "ada@example.com",
			Address:  "12 Analytical St",
			City:     "London",
			ZipCode:  "N1 9GU",
			Phone:    "+44 20 7946 0000",
		},
		Payment: PaymentForm{
			Method:         constants.PaymentMethodCard,
			CardNumber:     "4242 4242 4242 4242",
			CardholderName: "Ada Lovelace",
			Expiry:         "12/29",
			CVV:            "123",
		},
	}
}

func TestPlaceOrderRecordsAndClearsCart(t *testing.T) {
	fx := setupCheckout(t, 0)
	ctx := context.Background()

	// 小计 20×2 + 30 + 30 = 100
	if _, err := fx.cart.AddProduct(ctx, "s1", 1, 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	before, err := fx.cart.AddProduct(ctx, "s1", 2, 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := fx.checkout.PlaceOrder(ctx, validCheckoutInput("s1"))
	if err != nil {
		t.Fatalf("place order failed: %v", err)
	}
	if order.Total.String() != "103.19" || order.Tax.String() != "7.20" || order.Discount.String() != "10.00" {
		t.Fatalf("unexpected totals %+v", order)
	}
	if order.Status != constants.OrderStatusPending || order.PromoCode != "SAVE10" {
		t.Fatalf("unexpected order header %+v", order)
	}
	if order.ID != time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC).UnixMilli() {
		t.Fatalf("order id should be the commit timestamp in ms, got %d", order.ID)
	}
	if order.Payment.CardLast4 != "4242" || order.Payment.CardholderName != "Ada Lovelace" {
		t.Fatalf("unexpected payment metadata %+v", order.Payment)
	}

	want := make([]models.OrderItem, 0, len(before.Items))
	for _, item := range before.Items {
		want = append(want, models.NewOrderItem(item))
	}
	if !reflect.DeepEqual(order.Items, want) {
		t.Fatalf("order items should equal cart contents, got %+v want %+v", order.Items, want)
	}

	summary, _ := fx.cart.Summary(ctx, "s1")
	if len(summary.Items) != 0 {
		t.Fatalf("cart should be cleared after checkout")
	}
	history, err := fx.orders.List(ctx, "s1")
	if err != nil || len(history) != 1 {
		t.Fatalf("history should grow by one, got %d %v", len(history), err)
	}

	// 之后的购物车修改不影响已提交订单
	if _, err := fx.cart.AddProduct(ctx, "s1", 1, 5); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	stored, err := fx.orders.Get(ctx, "s1", order.ID)
	if err != nil {
		t.Fatalf("get order failed: %v", err)
	}
	if !reflect.DeepEqual(stored.Items, want) {
		t.Fatalf("committed order changed after cart mutation")
	}
}

func TestPlaceOrderUniqueIDsWithinSameMillisecond(t *testing.T) {
	fx := setupCheckout(t, 0)
	ctx := context.Background()
	var ids []int64
	for i := 0; i < 2; i++ {
		if _, err := fx.cart.AddProduct(ctx, "s1", 1, 1); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		order, err := fx.checkout.PlaceOrder(ctx, validCheckoutInput("s1"))
		if err != nil {
			t.Fatalf("place order failed: %v", err)
		}
		ids = append(ids, order.ID)
	}
	if ids[1] != ids[0]+1 {
		t.Fatalf("second id should be bumped, got %v", ids)
	}
}

func TestPlaceOrderFailuresLeaveCartUntouched(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(in *CheckoutInput)
		want   error
	}{
		{"unknown_promo", func(in *CheckoutInput) { in.PromoCode = "NOPE" }, ErrPromoCodeInvalid},
		{"unknown_shipping", func(in *CheckoutInput) { in.ShippingMethod = "teleport" }, ErrShippingMethodInvalid},
		{"missing_city", func(in *CheckoutInput) { in.Shipping.City = " " }, ErrShippingInfoInvalid},
		{"bad_email", func(in *CheckoutInput) { in.Shipping.Email = "not-an-email" }, ErrEmailInvalid},
		{"short_card", func(in *CheckoutInput) { in.Payment.CardNumber = "4242" }, ErrPaymentInvalid},
		{"expired_card", func(in *CheckoutInput) { in.Payment.Expiry = "01/26" }, ErrPaymentInvalid},
		{"bad_method", func(in *CheckoutInput) { in.Payment.Method = "cash" }, ErrPaymentInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := setupCheckout(t, 0)
			ctx := context.Background()
			if _, err := fx.cart.AddProduct(ctx, "s1", 1, 1); err != nil {
				t.Fatalf("add failed: %v", err)
			}
			input := validCheckoutInput("s1")
			tc.mutate(&input)
			if _, err := fx.checkout.PlaceOrder(ctx, input); !errors.Is(err, tc.want) {
				t.Fatalf("want %v got %v", tc.want, err)
			}
			summary, _ := fx.cart.Summary(ctx, "s1")
			history, _ := fx.orders.List(ctx, "s1")
			if summary.ItemCount != 1 || len(history) != 0 {
				t.Fatalf("failed checkout must not mutate state, cart=%+v orders=%d", summary, len(history))
			}
		})
	}
}

func TestPlaceOrderCanceledDuringDelay(t *testing.T) {
	fx := setupCheckout(t, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	if _, err := fx.cart.AddProduct(ctx, "s1", 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	if _, err := fx.checkout.PlaceOrder(ctx, validCheckoutInput("s1")); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled got %v", err)
	}
	summary, _ := fx.cart.Summary(context.Background(), "s1")
	history, _ := fx.orders.List(context.Background(), "s1")
	if summary.ItemCount != 1 || len(history) != 0 {
		t.Fatalf("canceled checkout must not mutate state")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	fx := setupCheckout(t, 0)
	if _, err := fx.checkout.PlaceOrder(context.Background(), validCheckoutInput("s1")); !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("want ErrCartEmpty got %v", err)
	}
}

func TestPreviewDoesNotMutate(t *testing.T) {
	fx := setupCheckout(t, 0)
	ctx := context.Background()
	if _, err := fx.cart.AddProduct(ctx, "s1", 1, 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	preview, err := fx.checkout.Preview(ctx, "s1", "welcome20", "")
	if err != nil {
		t.Fatalf("preview failed: %v", err)
	}
	// 20 - 4 + 5.99 + 1.28
	if preview.Quote.Total.String() != "23.27" || preview.Quote.ShippingMethod != constants.ShippingMethodStandard {
		t.Fatalf("unexpected preview %+v", preview.Quote)
	}
	if len(preview.ShippingOptions) != 4 {
		t.Fatalf("preview should list shipping options")
	}
	if _, err := fx.checkout.Preview(ctx, "s1", "bogus", ""); !errors.Is(err, ErrPromoCodeInvalid) {
		t.Fatalf("want ErrPromoCodeInvalid got %v", err)
	}
	summary, _ := fx.cart.Summary(ctx, "s1")
	if summary.ItemCount != 1 {
		t.Fatalf("preview must not mutate the cart")
	}
}

func TestOrderServiceGetMissing(t *testing.T) {
	fx := setupCheckout(t, 0)
	if _, err := fx.orders.Get(context.Background(), "s1", 1); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound got %v", err)
	}
}

func TestNormalizePaymentFormWallets(t *testing.T) {
	info, err := normalizePaymentForm(PaymentForm{Method: "PayPal", CardNumber: "ignored"}, time.Now())
	if err != nil {
		t.Fatalf("paypal should not require card fields: %v", err)
	}
	if info.Method != constants.PaymentMethodPayPal || info.CardLast4 != "" {
		t.Fatalf("wallet payment should store method only, got %+v", info)
	}
}

func TestValidCardExpiry(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	cases := map[string]bool{"03/26": true, "12/30": true, "02/26": false, "13/27": false, "3/27": false, "0327": false}
	for raw, want := range cases {
		if got := validCardExpiry(raw, now); got != want {
			t.Fatalf("expiry %q want %v got %v", raw, want, got)
		}
	}
}
