package events

import (
	"context"
	"sync"
	"time"

	"github.com/minishop-next/internal/logger"
)

// Event 领域事件
type Event struct {
	Type      string    `json:"type"`                 // 事件类型，例如 catalog_changed
	Action    string    `json:"action,omitempty"`     // 动作：added/updated/deleted/reset
	ProductID uint      `json:"product_id,omitempty"` // 相关商品
	At        time.Time `json:"at"`                   // 发生时间
}

// Handler 事件处理函数
type Handler func(ctx context.Context, event Event)

// Bus 事件总线
type Bus interface {
	Publish(ctx context.Context, event Event)
	// Subscribe 注册处理函数，返回的函数用于取消订阅（可重复调用）
	Subscribe(handler Handler) (unsubscribe func())
}

// LocalBus 进程内同步分发
type LocalBus struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]Handler
}

// NewLocalBus 创建进程内事件总线
func NewLocalBus() *LocalBus {
	return &LocalBus{handlers: make(map[uint64]Handler)}
}

// Publish 依次调用当前全部订阅者
func (b *LocalBus) Publish(ctx context.Context, event Event) {
	if event.At.IsZero() {
		event.At = time.Now()
	}
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers))
	for _, h := range b.handlers {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, h := range handlers {
		dispatch(ctx, h, event)
	}
}

// Subscribe 注册订阅者
func (b *LocalBus) Subscribe(handler Handler) func() {
	if handler == nil {
		return func() {}
	}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.handlers[id] = handler
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.handlers, id)
			b.mu.Unlock()
		})
	}
}

// SubscriberCount 当前订阅者数量
func (b *LocalBus) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers)
}

func dispatch(ctx context.Context, h Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("event_handler_panic", "type", event.Type, "panic", r)
		}
	}()
	h(ctx, event)
}
