package models

import "github.com/shopspring/decimal"

// CartItem 购物车项，名称与单价在加入时快照
type CartItem struct {
	ProductID uint   `json:"product_id"`      // 商品ID
	Name      string `json:"name"`            // 名称快照
	UnitPrice Money  `json:"unit_price"`      // 单价快照
	Quantity  int    `json:"quantity"`        // 数量，始终 >= 1
	Image     string `json:"image,omitempty"` // 图片快照
}

// LineTotal 单价 × 数量
func (i CartItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Decimal.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// NewCartItem 从商品创建数量为 1 的购物车项
func NewCartItem(p Product) CartItem {
	return CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		UnitPrice: p.Price,
		Quantity:  1,
		Image:     p.Image,
	}
}
