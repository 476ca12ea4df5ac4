package public

import (
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// ListRecentlyViewed 最近浏览的商品
func (h *Handler) ListRecentlyViewed(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	products, err := h.RecentViewService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, recentViewErrorRules, response.CodeInternal, "error.recent_view_failed")
		return
	}
	response.Success(c, gin.H{"items": products, "total": len(products)})
}

// RecordRecentlyViewed 记录一次商品浏览
func (h *Handler) RecordRecentlyViewed(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID, ok := handlershared.ParseUintParam(c, "product_id", "error.product_id_invalid")
	if !ok {
		return
	}
	ids, err := h.RecentViewService.Record(c.Request.Context(), sessionID, productID)
	if err != nil {
		respondWithMappedError(c, err, recentViewErrorRules, response.CodeInternal, "error.recent_view_failed")
		return
	}
	response.Success(c, gin.H{"product_ids": ids})
}
