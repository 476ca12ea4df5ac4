package admin

import "github.com/minishop-next/internal/provider"

// Handler 商品管理接口处理器入口
// 说明：该处理器仅用于目录维护 API，由管理密钥中间件保护。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
