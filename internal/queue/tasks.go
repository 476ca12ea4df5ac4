package queue

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/minishop-next/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderPlaced 订单提交后的回执任务
	TaskOrderPlaced = constants.TaskOrderPlaced
)

// OrderPlacedPayload 订单提交任务载荷
type OrderPlacedPayload struct {
	SessionID string `json:"session_id"`
	OrderID   int64  `json:"order_id"`
}

// NewOrderPlacedTask 创建订单提交任务
func NewOrderPlacedTask(payload OrderPlacedPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderPlaced, body), nil
}

// ParseOrderPlacedPayload 解析并校验订单提交任务载荷
func ParseOrderPlacedPayload(body []byte) (OrderPlacedPayload, error) {
	var payload OrderPlacedPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, err
	}
	if strings.TrimSpace(payload.SessionID) == "" || payload.OrderID <= 0 {
		return payload, fmt.Errorf("invalid order placed payload: session=%q order=%d", payload.SessionID, payload.OrderID)
	}
	return payload, nil
}
