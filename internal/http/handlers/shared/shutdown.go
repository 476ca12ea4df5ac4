package shared

import "context"

type shutdownSignalKey struct{}

// WithShutdownSignal 在上下文中登记服务关闭信号，供长连接在关闭时主动退出。
func WithShutdownSignal(ctx context.Context, done <-chan struct{}) context.Context {
	return context.WithValue(ctx, shutdownSignalKey{}, done)
}

// ShutdownSignal 返回服务关闭信号，未登记时返回 nil（永不触发）。
func ShutdownSignal(ctx context.Context) <-chan struct{} {
	done, _ := ctx.Value(shutdownSignalKey{}).(<-chan struct{})
	return done
}
