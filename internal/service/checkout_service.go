package service

import (
	"context"
	"time"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/queue"
	"github.com/minishop-next/internal/repository"
)

// CheckoutInput 下单输入
type CheckoutInput struct {
	SessionID      string
	PromoCode      string
	ShippingMethod string
	Shipping       ShippingForm
	Payment        PaymentForm
}

// CheckoutPreview 结账预览
type CheckoutPreview struct {
	Items           []models.CartItem `json:"items"`
	ItemCount       int               `json:"item_count"`
	Quote           PriceQuote        `json:"quote"`
	ShippingOptions []ShippingOption  `json:"shipping_options"`
}

// CheckoutService 结账服务：下单与清空购物车在同一原子块内完成
type CheckoutService struct {
	store       repository.KVStore
	cartRepo    repository.CartRepository
	orderRepo   repository.OrderRepository
	queueClient *queue.Client
	commitDelay time.Duration
	now         func() time.Time
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(store repository.KVStore, cartRepo repository.CartRepository, orderRepo repository.OrderRepository, queueClient *queue.Client, commitDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		store:       store,
		cartRepo:    cartRepo,
		orderRepo:   orderRepo,
		queueClient: queueClient,
		commitDelay: commitDelay,
		now:         time.Now,
	}
}

// Preview 按当前购物车计算价格明细，不产生任何写入
func (s *CheckoutService) Preview(ctx context.Context, sessionID, promoCode, shippingMethod string) (*CheckoutPreview, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if shippingMethod == "" {
		shippingMethod = constants.ShippingMethodStandard
	}
	items, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	ledger := NewCartLedger(items)
	quote, err := PriceCart(ledger.Subtotal(), promoCode, shippingMethod)
	if err != nil {
		return nil, err
	}
	return &CheckoutPreview{
		Items:           ledger.Items(),
		ItemCount:       ledger.ItemCount(),
		Quote:           quote,
		ShippingOptions: ShippingOptions(),
	}, nil
}

// PlaceOrder 校验输入，等待提交延迟后追加订单并清空购物车；
// 任一步失败时购物车与订单历史均保持不变
func (s *CheckoutService) PlaceOrder(ctx context.Context, input CheckoutInput) (*models.Order, error) {
	sessionID, err := normalizeSessionID(input.SessionID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	code, _, err := ValidatePromo(input.PromoCode)
	if err != nil {
		return nil, err
	}
	shippingInfo, err := normalizeShippingForm(input.Shipping, input.ShippingMethod)
	if err != nil {
		return nil, err
	}
	payment, err := normalizePaymentForm(input.Payment, now)
	if err != nil {
		return nil, err
	}

	items, err := s.cartRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	if err := s.waitCommitDelay(ctx); err != nil {
		logger.Infow("checkout_canceled", "session_id", sessionID, "error", err)
		return nil, err
	}

	var order models.Order
	err = s.store.Atomic(ctx, func(tx repository.KVStore) error {
		cartRepo := s.cartRepo.WithStore(tx)
		orderRepo := s.orderRepo.WithStore(tx)

		current, err := cartRepo.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		ledger := NewCartLedger(current)
		if ledger.Len() == 0 {
			return ErrCartEmpty
		}
		quote, err := PriceCart(ledger.Subtotal(), code, shippingInfo.Method)
		if err != nil {
			return err
		}
		history, err := orderRepo.List(ctx, sessionID)
		if err != nil {
			return err
		}

		order = buildOrder(nextOrderID(now, history), ledger, quote, shippingInfo, payment, now)
		if err := orderRepo.Append(ctx, sessionID, order); err != nil {
			return err
		}
		return cartRepo.Save(ctx, sessionID, nil)
	})
	if err != nil {
		return nil, err
	}

	logger.Infow("order_placed",
		"session_id", sessionID,
		"order_id", order.ID,
		"item_count", order.ItemCount(),
		"total", order.Total.String(),
		"promo_code", order.PromoCode,
	)
	if err := s.queueClient.EnqueueOrderPlaced(ctx, queue.OrderPlacedPayload{SessionID: sessionID, OrderID: order.ID}); err != nil {
		logger.Warnw("order_placed_enqueue_failed", "session_id", sessionID, "order_id", order.ID, "error", err)
	}
	return &order, nil
}

func (s *CheckoutService) waitCommitDelay(ctx context.Context) error {
	if s.commitDelay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.commitDelay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func buildOrder(id int64, ledger *CartLedger, quote PriceQuote, shipping models.ShippingInfo, payment models.PaymentInfo, now time.Time) models.Order {
	cartItems := ledger.Items()
	items := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, models.NewOrderItem(item))
	}
	return models.Order{
		ID:              id,
		Status:          constants.OrderStatusPending,
		Items:           items,
		Subtotal:        quote.Subtotal,
		Discount:        quote.Discount,
		Shipping:        quote.Shipping,
		Tax:             quote.Tax,
		Total:           quote.Total,
		PromoCode:       quote.PromoCode,
		DiscountPercent: quote.DiscountPercent,
		ShippingInfo:    shipping,
		Payment:         payment,
		CreatedAt:       now.UTC(),
	}
}

// nextOrderID 毫秒时间戳，与历史订单冲突时顺延
func nextOrderID(now time.Time, history []models.Order) int64 {
	id := now.UnixMilli()
	for _, o := range history {
		if o.ID >= id {
			id = o.ID + 1
		}
	}
	return id
}
