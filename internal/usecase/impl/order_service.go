// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "orderservice/internal/delivery/context"
	"orderservice/internal/domain/constants"
	"orderservice/internal/domain/entity"
	"orderservice/internal/domain/repository"
	"orderservice/internal/domain/service"
	"orderservice/internal/errors"
	"orderservice/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// OrderServiceParams holds dependencies for the order service, injected by Fx
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

// ListOrders returns every order, newest first.
func (srv *orderService) ListOrders(ctx context.Context) ([]*entity.OrderSummary, error) {
	orders, err := srv.orderRepo.ListOrders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// ListFailedOrders returns orders in the "Failed" status.
func (srv *orderService) ListFailedOrders(ctx context.Context) ([]*entity.OrderSummary, error) {
	orders, err := srv.orderRepo.ListOrdersByStatus(ctx, entity.StatusNameFailed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list failed orders")
	}

	return orders, nil
}

// ListCompletedOrders returns orders in the "Completed" status.
func (srv *orderService) ListCompletedOrders(ctx context.Context) ([]*entity.OrderSummary, error) {
	orders, err := srv.orderRepo.ListOrdersByStatus(ctx, entity.StatusNameCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed orders")
	}

	return orders, nil
}

// GetOrderByID returns nil without error for an unknown id.
func (srv *orderService) GetOrderByID(ctx context.Context, orderID uuid.UUID) (*entity.OrderDetail, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get order")
	}

	return order, nil
}

// UpdateOrderStatus changes the status and announces it once stored.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *entity.OrderChangeStatusDTO) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	logger.Info("Updating order status",
		slog.String("order_id", orderID.String()),
		slog.String("status_name", input.NewStatusName),
	)

	if err := srv.orderRepo.UpdateOrderStatus(ctx, orderID, input.NewStatusName); err != nil {
		return errors.Wrap(err, "failed to update order status")
	}

	srv.publish(ctx, logger, &service.OrderEvent{
		Type:       constants.EventTypeOrderStatusChanged,
		OrderID:    orderID.String(),
		StatusName: input.NewStatusName,
	})

	return nil
}

// CreateOrder stores a new order and announces it once stored.
func (srv *orderService) CreateOrder(ctx context.Context, input *entity.OrderCreateDTO) (uuid.UUID, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	orderID, err := srv.orderRepo.CreateOrder(ctx, input)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create order")
	}

	logger.Info("Order created",
		slog.String("order_id", orderID.String()),
		slog.String("status_id", input.StatusID.String()),
	)

	srv.publish(ctx, logger, &service.OrderEvent{
		Type:     constants.EventTypeOrderCreated,
		OrderID:  orderID.String(),
		StatusID: input.StatusID.String(),
	})

	return orderID, nil
}

// GetProfitByMonth aggregates the profit of completed orders per creation month.
func (srv *orderService) GetProfitByMonth(ctx context.Context) ([]*entity.OrderMonthlyProfit, error) {
	completed, err := srv.orderRepo.ListOrdersByStatus(ctx, entity.StatusNameCompleted)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed orders")
	}

	return AggregateMonthlyProfit(completed), nil
}

// publish sends an order event. The mutation is already committed, so failures are only logged.
func (srv *orderService) publish(ctx context.Context, logger *slog.Logger, event *service.OrderEvent) {
	if srv.publisher == nil {
		return
	}

	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)
	event.OccurredAt = srv.now().UTC()

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish order event",
			slog.String("type", event.Type),
			slog.String("order_id", event.OrderID),
			slog.Any("error", err),
		)
	}
}
