package service

import (
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/models"

	"github.com/shopspring/decimal"
)

// TaxRate 税率，作用于优惠后小计
var TaxRate = decimal.RequireFromString("0.08")

// promoCodes 优惠码及折扣百分比
var promoCodes = map[string]int{
	"SAVE10":    10,
	"WELCOME20": 20,
	"FLASH30":   30,
	"SUMMER15":  15,
	"SAVE50":    50,
}

// ShippingOption 配送方式
type ShippingOption struct {
	Method        string       `json:"method"`
	Name          string       `json:"name"`
	Cost          models.Money `json:"cost"`
	EstimatedDays string       `json:"estimated_days"`
}

var shippingOptions = []ShippingOption{
	{Method: constants.ShippingMethodStandard, Name: "Standard Shipping", Cost: models.MustMoney("5.99"), EstimatedDays: "5-7 business days"},
	{Method: constants.ShippingMethodExpress, Name: "Express Shipping", Cost: models.MustMoney("12.99"), EstimatedDays: "2-3 business days"},
	{Method: constants.ShippingMethodOvernight, Name: "Overnight Shipping", Cost: models.MustMoney("24.99"), EstimatedDays: "Next business day"},
	{Method: constants.ShippingMethodFree, Name: "Free Shipping", Cost: models.MustMoney("0"), EstimatedDays: "7-10 business days"},
}

// ShippingOptions 返回全部配送方式（副本）
func ShippingOptions() []ShippingOption {
	out := make([]ShippingOption, len(shippingOptions))
	copy(out, shippingOptions)
	return out
}

// ShippingCost 查询配送费用
func ShippingCost(method string) (models.Money, error) {
	method = strings.ToLower(strings.TrimSpace(method))
	for _, opt := range shippingOptions {
		if opt.Method == method {
			return opt.Cost, nil
		}
	}
	return models.Money{}, ErrShippingMethodInvalid
}

// NormalizePromoCode 去除空白并转为大写
func NormalizePromoCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ValidatePromo 校验优惠码，返回规范化后的码与折扣百分比；空码返回 0
func ValidatePromo(code string) (string, int, error) {
	normalized := NormalizePromoCode(code)
	if normalized == "" {
		return "", 0, nil
	}
	percent, ok := promoCodes[normalized]
	if !ok {
		return "", 0, ErrPromoCodeInvalid
	}
	return normalized, percent, nil
}

// PriceQuote 价格明细，各项金额均为 2 位小数
type PriceQuote struct {
	Subtotal        models.Money `json:"subtotal"`
	Discount        models.Money `json:"discount"`
	Shipping        models.Money `json:"shipping"`
	Tax             models.Money `json:"tax"`
	Total           models.Money `json:"total"`
	PromoCode       string       `json:"promo_code,omitempty"`
	DiscountPercent int          `json:"discount_percent"`
	ShippingMethod  string       `json:"shipping_method"`
}

// PriceCart 计算订单金额：
// discount = subtotal × 折扣%；tax = (subtotal - discount) × 8%；
// total = subtotal - discount + shipping + tax。
// discount 与 tax 各自四舍五入到分后再求和。
func PriceCart(subtotal decimal.Decimal, promoCode string, shippingMethod string) (PriceQuote, error) {
	code, percent, err := ValidatePromo(promoCode)
	if err != nil {
		return PriceQuote{}, err
	}
	shipping, err := ShippingCost(shippingMethod)
	if err != nil {
		return PriceQuote{}, err
	}

	subtotal = subtotal.Round(2)
	discount := subtotal.Mul(decimal.NewFromInt(int64(percent))).Div(decimal.NewFromInt(100)).Round(2)
	tax := subtotal.Sub(discount).Mul(TaxRate).Round(2)
	total := subtotal.Sub(discount).Add(shipping.Decimal).Add(tax)

	return PriceQuote{
		Subtotal:        models.NewMoneyFromDecimal(subtotal),
		Discount:        models.NewMoneyFromDecimal(discount),
		Shipping:        shipping,
		Tax:             models.NewMoneyFromDecimal(tax),
		Total:           models.NewMoneyFromDecimal(total),
		PromoCode:       code,
		DiscountPercent: percent,
		ShippingMethod:  strings.ToLower(strings.TrimSpace(shippingMethod)),
	}, nil
}
