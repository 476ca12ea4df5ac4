package public

import (
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// SetCartQuantityRequest 修改数量请求，quantity < 1 时删除
type SetCartQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartMutationResponse 购物车修改响应
type CartMutationResponse struct {
	Result service.UpdateResult `json:"result"`
	Cart   service.CartSummary  `json:"cart"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	summary, err := h.CartService.Summary(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, summary)
}

// AddCartItem 加入购物车，已存在时累加数量
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	summary, err := h.CartService.AddProduct(c.Request.Context(), sessionID, req.ProductID, req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, summary)
}

// SetCartItemQuantity 修改购物车项数量
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.product_id_invalid")
	if !ok {
		return
	}
	var req SetCartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	result, summary, err := h.CartService.SetQuantity(c.Request.Context(), sessionID, productID, *req.Quantity)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, CartMutationResponse{Result: result, Cart: summary})
}

// RemoveCartItem 删除购物车项
func (h *Handler) RemoveCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.product_id_invalid")
	if !ok {
		return
	}
	result, summary, err := h.CartService.RemoveItem(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, CartMutationResponse{Result: result, Cart: summary})
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(c.Request.Context(), sessionID); err != nil {
		respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "error.cart_update_failed")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
