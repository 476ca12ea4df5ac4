package app

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	handlershared "github.com/minishop-next/internal/http/handlers/shared"
)

// 不设置 WriteTimeout，目录事件流为长连接
const (
	httpReadHeaderTimeout = 10 * time.Second
	httpIdleTimeout       = 120 * time.Second
)

// HTTPService HTTP 服务封装
type HTTPService struct {
	name   string
	server *http.Server
}

// NewHTTPService 创建 HTTP 服务；关闭时通知事件流等长连接退出
func NewHTTPService(addr string, handler http.Handler) *HTTPService {
	streamsDone := make(chan struct{})
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: httpReadHeaderTimeout,
		IdleTimeout:       httpIdleTimeout,
		BaseContext: func(net.Listener) context.Context {
			return handlershared.WithShutdownSignal(context.Background(), streamsDone)
		},
	}
	var closeOnce sync.Once
	server.RegisterOnShutdown(func() {
		closeOnce.Do(func() { close(streamsDone) })
	})
	return &HTTPService{
		name:   "http",
		server: server,
	}
}

// Name 服务名称
func (s *HTTPService) Name() string {
	if s == nil || s.name == "" {
		return "http"
	}
	return s.name
}

// Start 启动服务
func (s *HTTPService) Start(ctx context.Context) error {
	if s == nil || s.server == nil {
		return errors.New("http server not initialized")
	}
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop 停止服务
func (s *HTTPService) Stop(ctx context.Context) error {
	if s == nil || s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
