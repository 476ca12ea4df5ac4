package public

import (
	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSession 返回当前购物会话及其令牌
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{
		"session_id": sessionID,
		"token":      c.GetString(constants.SessionTokenKey),
	})
}
