package service

import (
	"context"

	"github.com/minishop-next/internal/models"
	"github.com/minishop-next/internal/repository"
)

// OrderService 订单查询服务（订单只由结账产生，提交后不再修改）
type OrderService struct {
	orderRepo repository.OrderRepository
}

// NewOrderService 创建订单服务
func NewOrderService(orderRepo repository.OrderRepository) *OrderService {
	return &OrderService{orderRepo: orderRepo}
}

// List 按提交顺序返回会话订单历史
func (s *OrderService) List(ctx context.Context, sessionID string) ([]models.Order, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	return s.orderRepo.List(ctx, sessionID)
}

// Get 查询会话内的单个订单
func (s *OrderService) Get(ctx context.Context, sessionID string, orderID int64) (*models.Order, error) {
	sessionID, err := normalizeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	order, err := s.orderRepo.GetByID(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// Receipt 生成订单回执
func (s *OrderService) Receipt(ctx context.Context, sessionID string, orderID int64) (*OrderReceipt, error) {
	order, err := s.Get(ctx, sessionID, orderID)
	if err != nil {
		return nil, err
	}
	receipt := BuildOrderReceipt(*order)
	return &receipt, nil
}
