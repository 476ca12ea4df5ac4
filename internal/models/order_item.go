package models

// OrderItem 订单项快照
type OrderItem struct {
	ProductID uint   `json:"product_id"`      // 商品ID
	Name      string `json:"name"`            // 名称快照
	UnitPrice Money  `json:"unit_price"`      // 单价
	Quantity  int    `json:"quantity"`        // 数量
	LineTotal Money  `json:"line_total"`      // 小计
	Image     string `json:"image,omitempty"` // 图片
}

// NewOrderItem 由购物车项生成订单项（值拷贝）
func NewOrderItem(item CartItem) OrderItem {
	return OrderItem{
		ProductID: item.ProductID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice,
		Quantity:  item.Quantity,
		LineTotal: NewMoneyFromDecimal(item.LineTotal()),
		Image:     item.Image,
	}
}
