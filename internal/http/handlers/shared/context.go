package shared

import (
	"strconv"
	"strings"

	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSessionID 从上下文读取购物会话ID并统一处理错误响应。
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.SessionIDKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.session_required", nil)
		return "", false
	}
	id, ok := value.(string)
	if !ok || strings.TrimSpace(id) == "" {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return "", false
	}
	return id, true
}

// ParseUintParam 解析路径中的正整数参数。
func ParseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(value), true
}

// ParseInt64Param 解析路径中的正 int64 参数。
func ParseInt64Param(c *gin.Context, name, invalidKey string) (int64, bool) {
	raw := strings.TrimSpace(c.Param(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		RespondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return value, true
}
