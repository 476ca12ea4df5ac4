package public

import (
	"strings"

	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductListQuery 商品列表查询参数
type ProductListQuery struct {
	Search    string  `form:"q"`
	Category  string  `form:"category"`
	MinPrice  string  `form:"min_price"`
	MaxPrice  string  `form:"max_price"`
	MinRating float64 `form:"min_rating"`
	InStock   bool    `form:"in_stock"`
	Sort      string  `form:"sort"`
}

func (q ProductListQuery) toFilter() (service.ProductFilter, bool) {
	filter := service.ProductFilter{
		Search:      q.Search,
		Category:    q.Category,
		MinRating:   q.MinRating,
		InStockOnly: q.InStock,
		Sort:        q.Sort,
	}
	if raw := strings.TrimSpace(q.MinPrice); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, false
		}
		filter.MinPrice = &d
	}
	if raw := strings.TrimSpace(q.MaxPrice); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, false
		}
		filter.MaxPrice = &d
	}
	return filter, true
}

// ListProducts 商品列表（支持筛选与排序）
func (h *Handler) ListProducts(c *gin.Context) {
	var query ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	filter, ok := query.toFilter()
	if !ok {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	products, err := h.CatalogService.Filter(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": products, "total": len(products)})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	product, err := h.CatalogService.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	if product == nil {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	response.Success(c, product)
}

// ListCategories 分类列表（按首次出现顺序）
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.CatalogService.Categories(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"items": categories})
}
