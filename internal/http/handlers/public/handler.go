package public

import "github.com/minishop-next/internal/provider"

// Handler 前台接口处理器入口
// 说明：商品浏览、购物车、结账与订单查询均按购物会话隔离。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
