package public

import (
	"context"
	"io"
	"time"

	"github.com/minishop-next/internal/events"
	handlershared "github.com/minishop-next/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

const (
	catalogEventBuffer    = 16
	catalogEventHeartbeat = 25 * time.Second
)

// StreamCatalogEvents 以 SSE 推送商品目录变更事件，客户端断开或服务关闭时结束
func (h *Handler) StreamCatalogEvents(c *gin.Context) {
	ctx := c.Request.Context()
	shutdown := handlershared.ShutdownSignal(ctx)
	ch := make(chan events.Event, catalogEventBuffer)
	unsubscribe := h.EventBus.Subscribe(func(_ context.Context, event events.Event) {
		select {
		case ch <- event:
		default:
			// 客户端消费过慢时丢弃，客户端收到下一次事件后会整体刷新
		}
	})
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	requestLog(c).Debugw("catalog_stream_open")

	heartbeat := time.NewTicker(catalogEventHeartbeat)
	defer heartbeat.Stop()

	c.SSEvent("ready", gin.H{"at": time.Now().UTC()})
	c.Writer.Flush()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case <-shutdown:
			return false
		case event := <-ch:
			c.SSEvent(event.Type, event)
			return true
		case <-heartbeat.C:
			c.SSEvent("ping", gin.H{"at": time.Now().UTC()})
			return true
		}
	})
	requestLog(c).Debugw("catalog_stream_closed")
}
