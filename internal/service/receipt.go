package service

import (
	"fmt"
	"strings"

	"github.com/minishop-next/internal/models"
)

// OrderReceipt 订单回执
type OrderReceipt struct {
	OrderID   int64    `json:"order_id"`
	Email     string   `json:"email"`
	ItemCount int      `json:"item_count"`
	Total     string   `json:"total"`
	Lines     []string `json:"lines"`
}

// BuildOrderReceipt 由订单快照生成回执文本
func BuildOrderReceipt(order models.Order) OrderReceipt {
	lines := make([]string, 0, len(order.Items)+6)
	lines = append(lines, fmt.Sprintf("Order #%d (%s)", order.ID, order.Status))
	for _, item := range order.Items {
		lines = append(lines, fmt.Sprintf("%d x %s @ %s = %s", item.Quantity, item.Name, item.UnitPrice.String(), item.LineTotal.String()))
	}
	lines = append(lines, "Subtotal: "+order.Subtotal.String())
	if order.PromoCode != "" {
		lines = append(lines, fmt.Sprintf("Discount (%s, %d%%): -%s", order.PromoCode, order.DiscountPercent, order.Discount.String()))
	}
	lines = append(lines,
		fmt.Sprintf("Shipping (%s): %s", strings.ToLower(order.ShippingInfo.Method), order.Shipping.String()),
		"Tax: "+order.Tax.String(),
		"Total: "+order.Total.String(),
	)
	return OrderReceipt{
		OrderID:   order.ID,
		Email:     order.ShippingInfo.Email,
		ItemCount: order.ItemCount(),
		Total:     order.Total.String(),
		Lines:     lines,
	}
}

// Text 回执纯文本
func (r OrderReceipt) Text() string {
	return strings.Join(r.Lines, "\n")
}
