package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderservice/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the production schema and seed.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), nil),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Each connection to ":memory:" is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))
	require.NoError(t, SeedOrderStatuses(ctx, db))

	return db
}

type testLine struct {
	quantity int
	cost     int64
	price    int64
}

// testCatalog is one service with products created on demand.
type testCatalog struct {
	t       *testing.T
	db      *gorm.DB
	service model.ServiceModel
}

func newTestCatalog(t *testing.T, db *gorm.DB) *testCatalog {
	t.Helper()

	service := model.ServiceModel{ID: model.EncodeID(uuid.New()), Name: "Email"}
	require.NoError(t, db.Create(&service).Error)

	return &testCatalog{t: t, db: db, service: service}
}

func (c *testCatalog) product(cost, price int64) model.ProductModel {
	c.t.Helper()

	product := model.ProductModel{
		ID:        model.EncodeID(uuid.New()),
		ServiceID: c.service.ID,
		Name:      "100GB Mailbox",
		UnitCost:  decimal.NewFromInt(cost),
		UnitPrice: decimal.NewFromInt(price),
	}
	require.NoError(c.t, c.db.Create(&product).Error)

	return product
}

// insertOrder stores an order with one item per line and returns its id.
func (c *testCatalog) insertOrder(statusName string, created time.Time, lines ...testLine) uuid.UUID {
	c.t.Helper()

	orderID := uuid.New()
	items := make([]model.OrderItemModel, 0, len(lines))
	for _, line := range lines {
		product := c.product(line.cost, line.price)
		items = append(items, model.OrderItemModel{
			ID:        model.EncodeID(uuid.New()),
			OrderID:   model.EncodeID(orderID),
			ProductID: product.ID,
			ServiceID: c.service.ID,
			Quantity:  line.quantity,
		})
	}

	orderM := model.OrderModel{
		ID:          model.EncodeID(orderID),
		ResellerID:  model.EncodeID(uuid.New()),
		CustomerID:  model.EncodeID(uuid.New()),
		StatusID:    model.EncodeID(StatusID(statusName)),
		CreatedDate: created,
		Items:       items,
	}
	require.NoError(c.t, c.db.Create(&orderM).Error)

	return orderID
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 12, 0, 0, 0, time.UTC)
}
