package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/minishop-next/internal/logger"
	"github.com/minishop-next/internal/provider"
	"github.com/minishop-next/internal/queue"
	"github.com/minishop-next/internal/service"

	"github.com/hibiken/asynq"
)

// Consumer 异步任务消费者
type Consumer struct {
	*provider.Container
}

// NewConsumer 创建消费者
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register 注册消费者
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderPlaced, c.handleOrderPlaced)
}

func (c *Consumer) handleOrderPlaced(ctx context.Context, task *asynq.Task) error {
	if c == nil || task == nil || c.Container == nil || c.OrderService == nil {
		logger.Debugw("worker_order_placed_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	payload, err := queue.ParseOrderPlacedPayload(task.Payload())
	if err != nil {
		logger.Warnw("worker_order_placed_invalid_payload", "error", err)
		return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
	}
	receipt, err := c.OrderService.Receipt(ctx, payload.SessionID, payload.OrderID)
	if errors.Is(err, service.ErrOrderNotFound) {
		logger.Debugw("worker_order_placed_skip_order_not_found", "session_id", payload.SessionID, "order_id", payload.OrderID)
		return nil
	}
	if err != nil {
		logger.Warnw("worker_order_placed_fetch_order_failed", "session_id", payload.SessionID, "order_id", payload.OrderID, "error", err)
		return err
	}
	logger.Infow("order_receipt",
		"order_id", receipt.OrderID,
		"email", receipt.Email,
		"item_count", receipt.ItemCount,
		"total", receipt.Total,
		"receipt", receipt.Text(),
	)
	return nil
}
