package models

import "time"

// Review 商品评价，按商品存储，提交后不再修改
type Review struct {
	ID        int64     `json:"id"`
	ProductID uint      `json:"product_id"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"` // 1-5
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}
