package router

import (
	"crypto/subtle"
	"strconv"
	"strings"
	"time"

	"github.com/minishop-next/internal/authz"
	"github.com/minishop-next/internal/config"
	"github.com/minishop-next/internal/constants"
	"github.com/minishop-next/internal/http/response"
	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Cache-Control",
			constants.SessionTokenHeader,
			constants.AdminKeyHeader,
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")
	exposedHeader := strings.Join(cfg.ExposedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if exposedHeader != "" {
			c.Writer.Header().Set("Access-Control-Expose-Headers", exposedHeader)
		}
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(response.RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if sessionID := c.GetString(constants.SessionIDKey); sessionID != "" {
			fields = fields.With("session_id", sessionID)
		}
		if len(c.Errors) > 0 {
			fields.Errorw("request", "errors", c.Errors.String())
			return
		}
		fields.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(response.RequestIDKey)
}

// SessionMiddleware 购物会话中间件
// 令牌缺失或失效时签发新会话，并通过响应头返回给客户端
func SessionMiddleware(sessions *service.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessions == nil {
			response.AbortWithError(c, response.CodeInternal, "error.session_invalid")
			return
		}
		token := strings.TrimSpace(c.GetHeader(constants.SessionTokenHeader))
		sessionID, err := sessions.Parse(token)
		if err != nil {
			if token != "" {
				logger.Debugw("session_token_rejected", "request_id", getRequestID(c), "error", err)
			}
			sessionID, token, _, err = sessions.Issue()
			if err != nil {
				logger.Errorw("session_issue_failed", "request_id", getRequestID(c), "error", err)
				response.AbortWithError(c, response.CodeInternal, "error.internal")
				return
			}
		}
		c.Set(constants.SessionIDKey, sessionID)
		c.Set(constants.SessionTokenKey, token)
		c.Writer.Header().Set(constants.SessionTokenHeader, token)
		c.Next()
	}
}

// AdminKeyMiddleware 商品管理接口鉴权：按密钥识别主体，再由 RBAC 判定路由权限
// 未配置任何管理密钥时放行
func AdminKeyMiddleware(cfg config.AdminConfig, authzService *authz.Service) gin.HandlerFunc {
	// 按顺序匹配，只读密钥在前；启动时已拒绝两者相同的配置
	var keys []adminKey
	if key := strings.TrimSpace(cfg.ViewerKey); key != "" {
		keys = append(keys, adminKey{name: constants.AdminKeyNameViewer, key: key})
	}
	if key := strings.TrimSpace(cfg.APIKey); key != "" {
		keys = append(keys, adminKey{name: constants.AdminKeyNameEditor, key: key})
	}
	return func(c *gin.Context) {
		if len(keys) == 0 {
			c.Next()
			return
		}
		keyName := matchAdminKey(keys, strings.TrimSpace(c.GetHeader(constants.AdminKeyHeader)))
		if keyName == "" {
			logger.Warnw("admin_key_rejected",
				"request_id", getRequestID(c),
				"path", c.Request.URL.Path,
				"client_ip", c.ClientIP(),
			)
			response.AbortWithError(c, response.CodeUnauthorized, "error.admin_key_invalid")
			return
		}
		if authzService == nil {
			logger.Errorw("admin_rbac_service_unavailable")
			response.AbortWithError(c, response.CodeForbidden, "error.forbidden")
			return
		}

		resource := c.FullPath()
		if strings.TrimSpace(resource) == "" {
			resource = c.Request.URL.Path
		}
		allowed, err := authzService.EnforceKey(keyName, resource, c.Request.Method)
		if err != nil {
			logger.Errorw("admin_rbac_enforce_failed",
				"key", keyName,
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
				"error", err,
			)
			response.AbortWithError(c, response.CodeForbidden, "error.forbidden")
			return
		}
		if !allowed {
			logger.Warnw("admin_rbac_permission_denied",
				"key", keyName,
				"method", c.Request.Method,
				"resource", authz.NormalizeObject(resource),
			)
			response.AbortWithError(c, response.CodeForbidden, "error.forbidden")
			return
		}
		c.Next()
	}
}

type adminKey struct {
	name string
	key  string
}

func matchAdminKey(keys []adminKey, provided string) string {
	if provided == "" {
		return ""
	}
	for _, k := range keys {
		if subtle.ConstantTimeCompare([]byte(provided), []byte(k.key)) == 1 {
			return k.name
		}
	}
	return ""
}
