package usecase

import (
	"context"

	"orderservice/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// ListOrders returns every order, newest first
	ListOrders(ctx context.Context) ([]*entity.OrderSummary, error)

	// ListFailedOrders returns the orders whose status is exactly "Failed"
	ListFailedOrders(ctx context.Context) ([]*entity.OrderSummary, error)

	// ListCompletedOrders returns the orders whose status is exactly "Completed"
	ListCompletedOrders(ctx context.Context) ([]*entity.OrderSummary, error)

	// GetOrderByID returns the order detail, or nil when the order does not exist
	GetOrderByID(ctx context.Context, orderID uuid.UUID) (*entity.OrderDetail, error)

	// UpdateOrderStatus moves an order to the named status (name matched ignoring case)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *entity.OrderChangeStatusDTO) error

	// CreateOrder creates an order without items and returns its new id
	CreateOrder(ctx context.Context, input *entity.OrderCreateDTO) (uuid.UUID, error)

	// GetProfitByMonth returns the profit of completed orders per calendar month, ascending
	GetProfitByMonth(ctx context.Context) ([]*entity.OrderMonthlyProfit, error)
}
