package shared

import (
	"errors"

	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(response.RequestIDKey); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW(response.RequestIDKey, id)
		}
	}
	return logger.S()
}

// RespondError 返回错误响应，并在有原始错误时记录日志。
// 校验错误会在 data.field 中带上出错字段。
func RespondError(c *gin.Context, code int, key string, err error) {
	appErr := response.WrapError(code, key, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"error", err,
		)
	}
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		response.ErrorWithData(c, appErr.Code, appErr.Message, gin.H{"field": validation.Field})
		return
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondMappedError 返回已识别的业务错误，不记录错误日志；校验错误附带字段信息。
func RespondMappedError(c *gin.Context, code int, key string, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		response.ErrorWithData(c, code, response.Message(key), gin.H{"field": validation.Field})
		return
	}
	response.Error(c, code, response.Message(key))
}
