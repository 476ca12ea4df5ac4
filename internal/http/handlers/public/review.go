package public

import (
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewSubmitResponse 评价提交响应，product 为更新评分后的商品
type ReviewSubmitResponse struct {
	Review  *models.Review  `json:"review"`
	Product *models.Product `json:"product,omitempty"`
}

// ListProductReviews 商品评价列表，sort: newest|oldest|highest|lowest
func (h *Handler) ListProductReviews(c *gin.Context) {
	productID, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	reviews, err := h.ReviewService.List(c.Request.Context(), productID, c.Query("sort"))
	if err != nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_fetch_failed")
		return
	}
	response.Success(c, gin.H{"items": reviews, "total": len(reviews)})
}

// SubmitProductReview 提交商品评价
func (h *Handler) SubmitProductReview(c *gin.Context) {
	productID, ok := handlershared.ParseUintParam(c, "id", "error.product_id_invalid")
	if !ok {
		return
	}
	var form service.ReviewForm
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	review, product, err := h.ReviewService.Submit(c.Request.Context(), productID, form)
	if err != nil && review == nil {
		respondWithMappedError(c, err, reviewErrorRules, response.CodeInternal, "error.review_save_failed")
		return
	}
	if err != nil {
		// 评价已保存，评分稍后随下一次提交重新计算
		requestLog(c).Warnw("review_rating_update_failed", "product_id", productID, "error", err)
	}
	response.Success(c, ReviewSubmitResponse{Review: review, Product: product})
}
