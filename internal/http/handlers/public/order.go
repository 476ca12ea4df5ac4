package public

import (
	handlershared "github.com/minishop-next/internal/http/handlers/shared"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/models"

	"github.com/gin-gonic/gin"
)

// OrderListQuery 订单列表查询参数
type OrderListQuery struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ListOrders 会话订单历史（最新在前）
func (h *Handler) ListOrders(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var query OrderListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	page, pageSize := handlershared.NormalizePagination(query.Page, query.PageSize)

	orders, err := h.OrderService.List(c.Request.Context(), sessionID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	newestFirst := make([]models.Order, 0, len(orders))
	for i := len(orders) - 1; i >= 0; i-- {
		newestFirst = append(newestFirst, orders[i])
	}
	start, end := handlershared.PageBounds(len(newestFirst), page, pageSize)
	response.SuccessWithPage(c, newestFirst[start:end], response.NewPagination(page, pageSize, int64(len(newestFirst))))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	orderID, ok := handlershared.ParseInt64Param(c, "id", "error.order_id_invalid")
	if !ok {
		return
	}
	order, err := h.OrderService.Get(c.Request.Context(), sessionID, orderID)
	if err != nil {
		respondWithMappedError(c, err, orderErrorRules, response.CodeInternal, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}
