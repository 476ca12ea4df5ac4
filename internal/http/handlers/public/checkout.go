package public

import (
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
)

// PromoRequest 优惠码校验请求
type PromoRequest struct {
	Code string `json:"code" binding:"required"`
}

// PreviewRequest 结账预览请求
type PreviewRequest struct {
	PromoCode      string `json:"promo_code"`
	ShippingMethod string `json:"shipping_method"`
}

// CheckoutRequest 下单请求
type CheckoutRequest struct {
	PromoCode      string               `json:"promo_code"`
	ShippingMethod string               `json:"shipping_method" binding:"required"`
	Shipping       service.ShippingForm `json:"shipping"`
	Payment        service.PaymentForm  `json:"payment"`
}

// ListShippingOptions 配送方式列表
func (h *Handler) ListShippingOptions(c *gin.Context) {
	response.Success(c, gin.H{"items": service.ShippingOptions()})
}

// ValidatePromo 校验优惠码（不修改购物车）
func (h *Handler) ValidatePromo(c *gin.Context) {
	var req PromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	code, percent, err := service.ValidatePromo(req.Code)
	if err != nil || code == "" {
		respondError(c, response.CodeBadRequest, "error.promo_code_invalid", nil)
		return
	}
	response.Success(c, gin.H{"code": code, "discount_percent": percent})
}

// PreviewCheckout 结账金额预览
func (h *Handler) PreviewCheckout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	preview, err := h.CheckoutService.Preview(c.Request.Context(), sessionID, req.PromoCode, req.ShippingMethod)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.cart_fetch_failed")
		return
	}
	response.Success(c, preview)
}

// PlaceOrder 提交订单并清空购物车
func (h *Handler) PlaceOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.CheckoutService.PlaceOrder(c.Request.Context(), service.CheckoutInput{
		SessionID:      sessionID,
		PromoCode:      req.PromoCode,
		ShippingMethod: req.ShippingMethod,
		Shipping:       req.Shipping,
		Payment:        req.Payment,
	})
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}
	response.Success(c, order)
}
