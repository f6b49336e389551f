// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"orderservice/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderRepository defines the interface for order-related database operations.
//
// Mutations fail with domain errors ErrOrderNotFound / ErrStatusNotFound (match with
// errors.Is); FindOrderByID instead reports absence as a nil detail with a nil error.
type OrderRepository interface {
	// ListOrders returns every order, newest first.
	ListOrders(ctx context.Context) ([]*entity.OrderSummary, error)

	// ListOrdersByStatus returns orders whose status name equals statusName exactly
	// (case-sensitive), newest first. An unknown name yields an empty slice.
	ListOrdersByStatus(ctx context.Context, statusName string) ([]*entity.OrderSummary, error)

	// FindOrderByID returns the full order, or nil when no order has that id.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error)

	// UpdateOrderStatus moves the order to the status named newStatusName, matched ignoring case.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatusName string) error

	// CreateOrder persists a new item-less order and returns its freshly generated id.
	CreateOrder(ctx context.Context, dto *entity.OrderCreateDTO) (uuid.UUID, error)
}
