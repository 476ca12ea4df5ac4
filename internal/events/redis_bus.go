package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// envelope Redis 频道消息
type envelope struct {
	Origin string `json:"origin"`
	Event  Event  `json:"event"`
}

// RedisBus 通过 Redis Pub/Sub 在多个实例间转发事件
type RedisBus struct {
	local      *LocalBus
	client     *redis.Client
	channel    string
	instanceID string
}

// NewRedisBus 创建跨实例事件总线，本地订阅者仍由 local 分发
func NewRedisBus(local *LocalBus, client *redis.Client, prefix string) *RedisBus {
	if local == nil {
		local = NewLocalBus()
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "ms"
	}
	return &RedisBus{
		local:      local,
		client:     client,
		channel:    fmt.Sprintf("%s:events:catalog", prefix),
		instanceID: uuid.NewString(),
	}
}

// Publish 本地分发后广播到其他实例
func (b *RedisBus) Publish(ctx context.Context, event Event) {
	b.local.Publish(ctx, event)
	if b.client == nil {
		return
	}
	payload, err := json.Marshal(envelope{Origin: b.instanceID, Event: event})
	if err != nil {
		logger.Warnw("event_bus_marshal_failed", "type", event.Type, "error", err)
		return
	}
	if err := b.client.Publish(ctx, b.channel, payload).Err(); err != nil {
		logger.Warnw("event_bus_publish_failed", "channel", b.channel, "error", err)
	}
}

// Subscribe 注册本地订阅者
func (b *RedisBus) Subscribe(handler Handler) func() {
	return b.local.Subscribe(handler)
}

// Name 服务名称
func (b *RedisBus) Name() string {
	return "event_relay"
}

// Start 订阅频道并转发其他实例的事件，直到 ctx 结束
func (b *RedisBus) Start(ctx context.Context) error {
	if b.client == nil {
		return errors.New("event relay: redis client is nil")
	}
	pubsub := b.client.Subscribe(ctx, b.channel)
	defer pubsub.Close()
	if _, err := pubsub.Receive(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("event relay subscribe failed: %w", err)
	}
	logger.Infow("event_relay_subscribed", "channel", b.channel, "instance", b.instanceID)

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			b.relay(ctx, msg.Payload)
		}
	}
}

// Stop 由 Start 的 ctx 取消负责退出
func (b *RedisBus) Stop(context.Context) error {
	return nil
}

func (b *RedisBus) relay(ctx context.Context, payload string) {
	var env envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		logger.Warnw("event_relay_unmarshal_failed", "error", err)
		return
	}
	if env.Origin == b.instanceID {
		return
	}
	b.local.Publish(ctx, env.Event)
}
