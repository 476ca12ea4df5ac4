package service

import (
	"github.com/minishop-next/internal/models"

	"github.com/shopspring/decimal"
)

// CartLedger 购物车行项目集合，每个商品最多一行，数量始终 >= 1
type CartLedger struct {
	items []models.CartItem
}

// NewCartLedger 从已存储的行项目构造，数量非法的行会被丢弃、重复商品合并
func NewCartLedger(items []models.CartItem) *CartLedger {
	ledger := &CartLedger{items: make([]models.CartItem, 0, len(items))}
	for _, item := range items {
		if item.Quantity < 1 {
			continue
		}
		if idx := ledger.indexOf(item.ProductID); idx >= 0 {
			ledger.items[idx].Quantity += item.Quantity
			continue
		}
		ledger.items = append(ledger.items, item)
	}
	return ledger
}

// AddItem 已存在则数量 +1，否则以当前名称与价格快照新建一行
func (l *CartLedger) AddItem(product models.Product) {
	if idx := l.indexOf(product.ID); idx >= 0 {
		l.items[idx].Quantity++
		return
	}
	l.items = append(l.items, models.NewCartItem(product))
}

// RemoveItem 删除商品行，不存在时返回 false
func (l *CartLedger) RemoveItem(productID uint) bool {
	idx := l.indexOf(productID)
	if idx < 0 {
		return false
	}
	l.items = append(l.items[:idx], l.items[idx+1:]...)
	return true
}

// SetQuantity qty < 1 等同于 RemoveItem；不存在的商品返回 false
func (l *CartLedger) SetQuantity(productID uint, qty int) bool {
	if qty < 1 {
		return l.RemoveItem(productID)
	}
	idx := l.indexOf(productID)
	if idx < 0 {
		return false
	}
	l.items[idx].Quantity = qty
	return true
}

// Clear 清空
func (l *CartLedger) Clear() {
	l.items = l.items[:0]
}

// Subtotal 单价 × 数量之和
func (l *CartLedger) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range l.items {
		total = total.Add(item.LineTotal())
	}
	return total
}

// ItemCount 商品总件数（非行数）
func (l *CartLedger) ItemCount() int {
	count := 0
	for _, item := range l.items {
		count += item.Quantity
	}
	return count
}

// Len 行数
func (l *CartLedger) Len() int {
	return len(l.items)
}

// Items 返回行项目副本
func (l *CartLedger) Items() []models.CartItem {
	out := make([]models.CartItem, len(l.items))
	copy(out, l.items)
	return out
}

func (l *CartLedger) indexOf(productID uint) int {
	for i := range l.items {
		if l.items[i].ProductID == productID {
			return i
		}
	}
	return -1
}
