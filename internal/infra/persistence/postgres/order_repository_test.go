package postgres

import (
	"context"
	"testing"
	"time"

	"orderservice/internal/domain/entity"
	domainerrors "orderservice/internal/domain/errors"
	"orderservice/internal/errors"
	"orderservice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_ListOrders(t *testing.T) {
	db := newTestDB(t)
	catalog := newTestCatalog(t, db)
	repo := NewOrderRepository(db)

	older := catalog.insertOrder(entity.StatusNameCompleted, day(2024, time.January, 5),
		testLine{quantity: 2, cost: 5, price: 10},
		testLine{quantity: 1, cost: 5, price: 5},
	)
	newer := catalog.insertOrder(entity.StatusNameCreated, day(2024, time.March, 1))

	summaries, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	assert.Equal(t, newer, summaries[0].ID)
	assert.Equal(t, entity.StatusNameCreated, summaries[0].StatusName)
	assert.Equal(t, 0, summaries[0].ItemCount)
	assert.True(t, summaries[0].TotalCost.IsZero())
	assert.True(t, summaries[0].TotalPrice.IsZero())

	assert.Equal(t, older, summaries[1].ID)
	assert.Equal(t, 2, summaries[1].ItemCount)
	assert.True(t, decimal.NewFromInt(15).Equal(summaries[1].TotalCost), "total cost %s", summaries[1].TotalCost)
	assert.True(t, decimal.NewFromInt(25).Equal(summaries[1].TotalPrice), "total price %s", summaries[1].TotalPrice)
	assert.True(t, day(2024, time.January, 5).Equal(summaries[1].CreatedDate))
}

func TestOrderRepository_ListOrders_Empty(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	summaries, err := repo.ListOrders(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, summaries)
	assert.Empty(t, summaries)
}

func TestOrderRepository_ListOrdersByStatus(t *testing.T) {
	db := newTestDB(t)
	catalog := newTestCatalog(t, db)
	repo := NewOrderRepository(db)

	failed := catalog.insertOrder(entity.StatusNameFailed, day(2024, time.February, 1))
	catalog.insertOrder(entity.StatusNameCompleted, day(2024, time.February, 2))
	failedLater := catalog.insertOrder(entity.StatusNameFailed, day(2024, time.February, 3))

	tests := []struct {
		name       string
		statusName string
		want       []uuid.UUID
	}{
		{
			name:       "exact name returns matching orders newest first",
			statusName: entity.StatusNameFailed,
			want:       []uuid.UUID{failedLater, failed},
		},
		{
			name:       "different case matches nothing",
			statusName: "failed",
			want:       []uuid.UUID{},
		},
		{
			name:       "unknown status is an empty result",
			statusName: "Cancelled",
			want:       []uuid.UUID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summaries, err := repo.ListOrdersByStatus(context.Background(), tt.statusName)
			require.NoError(t, err)

			got := make([]uuid.UUID, 0, len(summaries))
			for _, s := range summaries {
				got = append(got, s.ID)
				assert.Equal(t, tt.statusName, s.StatusName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderRepository_FindOrderByID(t *testing.T) {
	db := newTestDB(t)
	catalog := newTestCatalog(t, db)
	repo := NewOrderRepository(db)

	orderID := catalog.insertOrder(entity.StatusNameInProgress, day(2024, time.May, 10),
		testLine{quantity: 3, cost: 2, price: 7},
	)

	t.Run("existing order has items and totals", func(t *testing.T) {
		detail, err := repo.FindOrderByID(context.Background(), orderID)
		require.NoError(t, err)
		require.NotNil(t, detail)

		assert.Equal(t, orderID, detail.ID)
		assert.Equal(t, entity.StatusNameInProgress, detail.StatusName)
		assert.Equal(t, StatusID(entity.StatusNameInProgress), detail.StatusID)
		require.Len(t, detail.Items, 1)

		item := detail.Items[0]
		assert.Equal(t, orderID, item.OrderID)
		assert.Equal(t, 3, item.Quantity)
		assert.Equal(t, "Email", item.ServiceName)
		assert.Equal(t, "100GB Mailbox", item.ProductName)
		assert.True(t, decimal.NewFromInt(6).Equal(item.TotalCost))
		assert.True(t, decimal.NewFromInt(21).Equal(item.TotalPrice))
		assert.True(t, decimal.NewFromInt(6).Equal(detail.TotalCost))
		assert.True(t, decimal.NewFromInt(21).Equal(detail.TotalPrice))
	})

	t.Run("absent order is nil without error", func(t *testing.T) {
		detail, err := repo.FindOrderByID(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.Nil(t, detail)
	})
}

func TestOrderRepository_CreateOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		dto := &entity.OrderCreateDTO{
			ResellerID:  uuid.New(),
			CustomerID:  uuid.New(),
			StatusID:    StatusID(entity.StatusNameCreated),
			CreatedDate: day(2024, time.June, 1),
		}

		id, err := repo.CreateOrder(ctx, dto)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, id)

		detail, err := repo.FindOrderByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, detail)

		assert.Equal(t, dto.ResellerID, detail.ResellerID)
		assert.Equal(t, dto.CustomerID, detail.CustomerID)
		assert.Equal(t, dto.StatusID, detail.StatusID)
		assert.Equal(t, entity.StatusNameCreated, detail.StatusName)
		assert.True(t, dto.CreatedDate.Equal(detail.CreatedDate))
		assert.NotNil(t, detail.Items)
		assert.Empty(t, detail.Items)
		assert.True(t, detail.TotalCost.IsZero())
	})

	t.Run("every create gets a new id", func(t *testing.T) {
		dto := &entity.OrderCreateDTO{StatusID: StatusID(entity.StatusNameCreated), CreatedDate: day(2024, time.June, 2)}

		first, err := repo.CreateOrder(ctx, dto)
		require.NoError(t, err)
		second, err := repo.CreateOrder(ctx, dto)
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})

	t.Run("unknown status persists nothing", func(t *testing.T) {
		var before int64
		require.NoError(t, db.Model(&model.OrderModel{}).Count(&before).Error)

		id, err := repo.CreateOrder(ctx, &entity.OrderCreateDTO{
			ResellerID:  uuid.New(),
			CustomerID:  uuid.New(),
			StatusID:    uuid.New(),
			CreatedDate: day(2024, time.June, 3),
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrStatusNotFound))
		assert.Equal(t, uuid.Nil, id)

		var after int64
		require.NoError(t, db.Model(&model.OrderModel{}).Count(&after).Error)
		assert.Equal(t, before, after)
	})
}

func TestOrderRepository_UpdateOrderStatus(t *testing.T) {
	db := newTestDB(t)
	catalog := newTestCatalog(t, db)
	repo := NewOrderRepository(db)
	ctx := context.Background()

	statusOf := func(t *testing.T, id uuid.UUID) string {
		t.Helper()
		detail, err := repo.FindOrderByID(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, detail)

		return detail.StatusName
	}

	t.Run("matches the status name ignoring case", func(t *testing.T) {
		id := catalog.insertOrder(entity.StatusNameCreated, day(2024, time.July, 1))

		require.NoError(t, repo.UpdateOrderStatus(ctx, id, "completed"))
		assert.Equal(t, entity.StatusNameCompleted, statusOf(t, id))
	})

	t.Run("repeating an update is idempotent", func(t *testing.T) {
		id := catalog.insertOrder(entity.StatusNameCreated, day(2024, time.July, 2))

		require.NoError(t, repo.UpdateOrderStatus(ctx, id, entity.StatusNameFailed))
		require.NoError(t, repo.UpdateOrderStatus(ctx, id, entity.StatusNameFailed))
		assert.Equal(t, entity.StatusNameFailed, statusOf(t, id))
	})

	t.Run("only the status changes", func(t *testing.T) {
		id := catalog.insertOrder(entity.StatusNameCreated, day(2024, time.July, 3),
			testLine{quantity: 1, cost: 1, price: 4},
		)
		before, err := repo.FindOrderByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, repo.UpdateOrderStatus(ctx, id, entity.StatusNameInProgress))

		after, err := repo.FindOrderByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before.ResellerID, after.ResellerID)
		assert.Equal(t, before.CustomerID, after.CustomerID)
		assert.True(t, before.CreatedDate.Equal(after.CreatedDate))
		assert.Len(t, after.Items, 1)
		assert.Equal(t, entity.StatusNameInProgress, after.StatusName)
	})

	t.Run("unknown status leaves the order untouched", func(t *testing.T) {
		id := catalog.insertOrder(entity.StatusNameCreated, day(2024, time.July, 4))

		err := repo.UpdateOrderStatus(ctx, id, "Shipped")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrStatusNotFound))
		assert.Equal(t, entity.StatusNameCreated, statusOf(t, id))
	})

	t.Run("missing order", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, uuid.New(), entity.StatusNameCompleted)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
	})

	t.Run("missing order wins over unknown status", func(t *testing.T) {
		err := repo.UpdateOrderStatus(ctx, uuid.New(), "Shipped")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrOrderNotFound))
		assert.False(t, errors.Is(err, domainerrors.ErrStatusNotFound))
	})
}

func TestOrderRepository_CanceledContext(t *testing.T) {
	repo := NewOrderRepository(newTestDB(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.ListOrders(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))

	_, err = repo.CreateOrder(ctx, &entity.OrderCreateDTO{StatusID: StatusID(entity.StatusNameCreated)})
	require.Error(t, err)
}
