package admin

import (
	"errors"

	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProductRequest 新增商品请求
type CreateProductRequest struct {
	Name        string       `json:"name" binding:"required"`
	Price       models.Money `json:"price"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Stock       *int         `json:"stock"`
	Rating      *float64     `json:"rating"`
	ReviewCount *int         `json:"reviewCount"`
	Image       string       `json:"image"`
}

// ProductMutationResponse 商品修改响应
type ProductMutationResponse struct {
	Result  service.UpdateResult `json:"result"`
	Product *models.Product      `json:"product,omitempty"`
}

// GetAdminProducts 获取商品列表 (Admin)，按存储顺序分页
func (h *Handler) GetAdminProducts(c *gin.Context) {
	var query struct {
		Page     int `form:"page"`
		PageSize int `form:"page_size"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	page, pageSize := handlershared.NormalizePagination(query.Page, query.PageSize)

	products, err := h.CatalogService.List(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	start, end := handlershared.PageBounds(len(products), page, pageSize)
	response.SuccessWithPage(c, products[start:end], response.NewPagination(page, pageSize, int64(len(products))))
}

// CreateProduct 新增商品 (Admin)
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	product, err := h.CatalogService.Add(c.Request.Context(), models.Product{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Category:    req.Category,
		Stock:       req.Stock,
		Rating:      req.Rating,
		ReviewCount: req.ReviewCount,
		Image:       req.Image,
	})
	if err != nil {
		respondProductError(c, err)
		return
	}
	requestLog(c).Infow("admin_product_created", "product_id", product.ID, "name", product.Name)
	response.Success(c, product)
}

// UpdateProduct 部分更新商品 (Admin)
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	var patch models.ProductPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	result, product, err := h.CatalogService.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondProductError(c, err)
		return
	}
	if !result.Found() {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	requestLog(c).Infow("admin_product_updated", "product_id", id)
	response.Success(c, ProductMutationResponse{Result: result, Product: product})
}

// DeleteProduct 删除商品 (Admin)
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	result, err := h.CatalogService.Delete(c.Request.Context(), id)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_save_failed", err)
		return
	}
	if !result.Found() {
		respondError(c, response.CodeNotFound, "error.product_not_found", nil)
		return
	}
	requestLog(c).Infow("admin_product_deleted", "product_id", id)
	response.Success(c, ProductMutationResponse{Result: result})
}

// ResetCatalog 恢复默认商品目录 (Admin)
func (h *Handler) ResetCatalog(c *gin.Context) {
	if err := h.CatalogService.Reset(c.Request.Context()); err != nil {
		respondError(c, response.CodeInternal, "error.catalog_reset_failed", err)
		return
	}
	requestLog(c).Infow("admin_catalog_reset", "version", models.CatalogVersion)
	response.SuccessWithMsg(c, "catalog reset", gin.H{"version": models.CatalogVersion})
}

func respondProductError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProductInvalid) {
		handlershared.RespondMappedError(c, response.CodeBadRequest, "error.product_invalid", err)
		return
	}
	respondError(c, response.CodeInternal, "error.product_save_failed", err)
}
