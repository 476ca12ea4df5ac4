package models

// Product 商品记录（整体序列化后存入商品目录命名空间）
type Product struct {
	ID          uint     `json:"id"`                    // 商品ID，max+1 分配
	Name        string   `json:"name"`                  // 名称
	Price       Money    `json:"price"`                 // 价格
	Description string   `json:"description,omitempty"` // 描述
	Category    string   `json:"category,omitempty"`    // 分类
	Stock       *int     `json:"stock,omitempty"`       // 库存，未设置表示未知
	Rating      *float64 `json:"rating,omitempty"`      // 评分
	ReviewCount *int     `json:"reviewCount,omitempty"` // 评价数
	Image       string   `json:"image,omitempty"`       // 图片地址
}

// Clone 深拷贝，避免指针字段被共享
func (p Product) Clone() Product {
	out := p
	if p.Stock != nil {
		v := *p.Stock
		out.Stock = &v
	}
	if p.Rating != nil {
		v := *p.Rating
		out.Rating = &v
	}
	if p.ReviewCount != nil {
		v := *p.ReviewCount
		out.ReviewCount = &v
	}
	return out
}

// InStock 库存大于 0
func (p Product) InStock() bool {
	return p.Stock != nil && *p.Stock > 0
}

// RatingValue 评分，未设置时为 0
func (p Product) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

// ProductPatch 商品部分更新，nil 字段保持原值
type ProductPatch struct {
	Name        *string  `json:"name"`
	Price       *Money   `json:"price"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Stock       *int     `json:"stock"`
	Rating      *float64 `json:"rating"`
	ReviewCount *int     `json:"reviewCount"`
	Image       *string  `json:"image"`
}

// Apply 将补丁合并到商品上，ID 不受影响
func (patch ProductPatch) Apply(p Product) Product {
	out := p.Clone()
	if patch.Name != nil {
		out.Name = *patch.Name
	}
	if patch.Price != nil {
		out.Price = *patch.Price
	}
	if patch.Description != nil {
		out.Description = *patch.Description
	}
	if patch.Category != nil {
		out.Category = *patch.Category
	}
	if patch.Stock != nil {
		v := *patch.Stock
		out.Stock = &v
	}
	if patch.Rating != nil {
		v := *patch.Rating
		out.Rating = &v
	}
	if patch.ReviewCount != nil {
		v := *patch.ReviewCount
		out.ReviewCount = &v
	}
	if patch.Image != nil {
		out.Image = *patch.Image
	}
	return out
}
