package models

import "time"

// WishlistItem 收藏项，名称与价格在收藏时快照
type WishlistItem struct {
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Price     Money     `json:"price"`
	Category  string    `json:"category,omitempty"`
	Image     string    `json:"image,omitempty"`
	AddedAt   time.Time `json:"added_at"`
}

// NewWishlistItem 从商品创建收藏项
func NewWishlistItem(p Product, now time.Time) WishlistItem {
	return WishlistItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Category:  p.Category,
		Image:     p.Image,
		AddedAt:   now.UTC(),
	}
}
