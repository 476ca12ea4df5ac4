package public

import (
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// AddWishlistItemRequest 收藏请求
type AddWishlistItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// WishlistMutationResponse 收藏夹修改响应
type WishlistMutationResponse struct {
	Result service.UpdateResult   `json:"result"`
	Items  []models.WishlistItem `json:"items"`
}

// MoveToCartResponse 收藏移入购物车响应
type MoveToCartResponse struct {
	Result service.UpdateResult `json:"result"`
	Cart   service.CartSummary  `json:"cart"`
}

// GetWishlist 获取收藏夹
func (h *Handler) GetWishlist(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	items, err := h.WishlistService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "error.wishlist_fetch_failed")
		return
	}
	response.Success(c, gin.H{"items": items, "total": len(items)})
}

// AddWishlistItem 收藏商品，重复收藏无副作用
func (h *Handler) AddWishlistItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	items, err := h.WishlistService.Add(c.Request.Context(), sessionID, req.ProductID)
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "error.wishlist_update_failed")
		return
	}
	response.Success(c, gin.H{"items": items, "total": len(items)})
}

// RemoveWishlistItem 取消收藏
func (h *Handler) RemoveWishlistItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.product_id_invalid")
	if !ok {
		return
	}
	result, items, err := h.WishlistService.Remove(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "error.wishlist_update_failed")
		return
	}
	response.Success(c, WishlistMutationResponse{Result: result, Items: items})
}

// MoveWishlistItemToCart 收藏移入购物车
func (h *Handler) MoveWishlistItemToCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.product_id_invalid")
	if !ok {
		return
	}
	result, cart, err := h.WishlistService.MoveToCart(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "error.wishlist_update_failed")
		return
	}
	response.Success(c, MoveToCartResponse{Result: result, Cart: cart})
}

// ClearWishlist 清空收藏夹
func (h *Handler) ClearWishlist(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.WishlistService.Clear(c.Request.Context(), sessionID); err != nil {
		respondWithMappedError(c, err, wishlistErrorRules, response.CodeInternal, "error.wishlist_update_failed")
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
