package models

import "time"

// Order 订单记录，提交后不再修改
type Order struct {
	ID              int64        `json:"id"`                   // 订单ID（毫秒时间戳）
	Status          string       `json:"status"`               // 订单状态
	Items           []OrderItem  `json:"items"`                // 订单项快照
	Subtotal        Money        `json:"subtotal"`             // 商品小计
	Discount        Money        `json:"discount"`             // 优惠金额
	Shipping        Money        `json:"shipping"`             // 运费
	Tax             Money        `json:"tax"`                  // 税费
	Total           Money        `json:"total"`                // 应付总额
	PromoCode       string       `json:"promo_code,omitempty"` // 优惠码
	DiscountPercent int          `json:"discount_percent"`     // 优惠百分比
	ShippingInfo    ShippingInfo `json:"shipping_info"`        // 收货信息
	Payment         PaymentInfo  `json:"payment"`              // 支付元数据
	CreatedAt       time.Time    `json:"created_at"`           // 创建时间
}

// ItemCount 订单内商品总件数
func (o Order) ItemCount() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// ShippingInfo 收货信息
type ShippingInfo struct {
	Method   string `json:"method"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	City     string `json:"city"`
	ZipCode  string `json:"zip_code"`
	Phone    string `json:"phone"`
}

// PaymentInfo 支付元数据，仅保留可展示字段
type PaymentInfo struct {
	Method         string `json:"method"`
	CardholderName string `json:"cardholder_name,omitempty"`
	CardLast4      string `json:"card_last4,omitempty"`
}
