package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "orderservice/internal/delivery/context"
	"orderservice/internal/domain/constants"
	"orderservice/internal/domain/entity"
	domainerrors "orderservice/internal/domain/errors"
	"orderservice/internal/domain/service"
	mockRepo "orderservice/internal/mocks/repository"
	mockService "orderservice/internal/mocks/service"
	"orderservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	orderRepo *mockRepo.MockOrderRepository
	publisher *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return orderServiceFixtures{
		service: NewOrderService(OrderServiceParams{
			OrderRepo: orderRepo,
			Publisher: publisher,
			Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		orderRepo: orderRepo,
		publisher: publisher,
	}
}

func TestOrderService_ListOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orders := []*entity.OrderSummary{{ID: uuid.New()}, {ID: uuid.New()}}
	fx.orderRepo.EXPECT().ListOrders(ctx).Return(orders, nil)

	result, err := fx.service.ListOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, result)
}

func TestOrderService_ListOrders_RepositoryError(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	storeErr := errors.New("connection refused")
	fx.orderRepo.EXPECT().ListOrders(ctx).Return(nil, storeErr)

	result, err := fx.service.ListOrders(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, storeErr)
}

func TestOrderService_ListFailedOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	orders := []*entity.OrderSummary{{ID: uuid.New(), StatusName: entity.StatusNameFailed}}
	fx.orderRepo.EXPECT().ListOrdersByStatus(ctx, "Failed").Return(orders, nil)

	result, err := fx.service.ListFailedOrders(ctx)
	require.NoError(t, err)
	assert.Equal(t, orders, result)
}

func TestOrderService_ListCompletedOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().ListOrdersByStatus(ctx, "Completed").Return([]*entity.OrderSummary{}, nil)

	result, err := fx.service.ListCompletedOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestOrderService_GetOrderByID(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	detail := &entity.OrderDetail{ID: orderID, Items: []entity.OrderItemDetail{}}
	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(detail, nil)

	result, err := fx.service.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, detail, result)
}

func TestOrderService_GetOrderByID_Absent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, nil)

	result, err := fx.service.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestOrderService_UpdateOrderStatus_PublishesEvent(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	orderID := uuid.New()

	fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, "completed").Return(nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventTypeOrderStatusChanged &&
				event.OrderID == orderID.String() &&
				event.StatusName == "completed" &&
				event.RequestID == "req-42" &&
				!event.OccurredAt.IsZero()
		})).
		Return(nil)

	err := fx.service.UpdateOrderStatus(ctx, orderID, &entity.OrderChangeStatusDTO{NewStatusName: "completed"})
	require.NoError(t, err)
}

func TestOrderService_UpdateOrderStatus_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{
			name:    "order not found",
			repoErr: domainerrors.ErrOrderNotFound.WrapMessage("order x"),
			want:    domainerrors.ErrOrderNotFound,
		},
		{
			name:    "status not found",
			repoErr: domainerrors.ErrStatusNotFound.WrapMessage("status x"),
			want:    domainerrors.ErrStatusNotFound,
		},
		{
			name:    "canceled",
			repoErr: context.Canceled,
			want:    context.Canceled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()
			orderID := uuid.New()

			fx.orderRepo.EXPECT().UpdateOrderStatus(ctx, orderID, "Shipped").Return(tt.repoErr)

			err := fx.service.UpdateOrderStatus(ctx, orderID, &entity.OrderChangeStatusDTO{NewStatusName: "Shipped"})
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			// No event for a failed mutation.
			fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	newID := uuid.New()

	input := &entity.OrderCreateDTO{
		ResellerID:  uuid.New(),
		CustomerID:  uuid.New(),
		StatusID:    uuid.New(),
		CreatedDate: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	fx.orderRepo.EXPECT().CreateOrder(ctx, input).Return(newID, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.MatchedBy(func(event *service.OrderEvent) bool {
			return event.Type == constants.EventTypeOrderCreated &&
				event.OrderID == newID.String() &&
				event.StatusID == input.StatusID.String()
		})).
		Return(nil)

	id, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestOrderService_CreateOrder_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	newID := uuid.New()
	input := &entity.OrderCreateDTO{StatusID: uuid.New()}

	fx.orderRepo.EXPECT().CreateOrder(ctx, input).Return(newID, nil)
	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(errors.New("topic unavailable"))

	id, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, newID, id)
}

func TestOrderService_CreateOrder_StatusNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	input := &entity.OrderCreateDTO{StatusID: uuid.New()}

	fx.orderRepo.EXPECT().
		CreateOrder(ctx, input).
		Return(uuid.Nil, domainerrors.ErrStatusNotFound.WrapMessage("status"))

	id, err := fx.service.CreateOrder(ctx, input)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrStatusNotFound)
	assert.Equal(t, uuid.Nil, id)
}

func TestOrderService_GetProfitByMonth(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	completed := []*entity.OrderSummary{
		{
			StatusName:  entity.StatusNameCompleted,
			TotalCost:   decimal.NewFromInt(50),
			TotalPrice:  decimal.NewFromInt(100),
			CreatedDate: time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
		{
			StatusName:  entity.StatusNameCompleted,
			TotalCost:   decimal.NewFromInt(50),
			TotalPrice:  decimal.NewFromInt(100),
			CreatedDate: time.Date(2024, time.February, 3, 10, 0, 0, 0, time.UTC),
		},
	}
	fx.orderRepo.EXPECT().ListOrdersByStatus(ctx, "Completed").Return(completed, nil)

	result, err := fx.service.GetProfitByMonth(ctx)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, []int{1, 2}, []int{result[0].Month, result[1].Month})
	assert.True(t, decimal.NewFromInt(50).Equal(result[0].Profit))
	assert.True(t, decimal.NewFromInt(50).Equal(result[1].Profit))
}

func TestOrderService_GetProfitByMonth_NoCompletedOrders(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().ListOrdersByStatus(ctx, "Completed").Return([]*entity.OrderSummary{}, nil)

	result, err := fx.service.GetProfitByMonth(ctx)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Empty(t, result)
}

func TestOrderService_GetProfitByMonth_RepositoryError(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().ListOrdersByStatus(ctx, "Completed").Return(nil, context.DeadlineExceeded)

	result, err := fx.service.GetProfitByMonth(ctx)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
