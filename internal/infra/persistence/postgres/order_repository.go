// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"orderservice/internal/domain/entity"
	domainerrors "orderservice/internal/domain/errors"
	"orderservice/internal/domain/repository"
	"orderservice/internal/errors"
	"orderservice/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// ListOrders returns every order, newest first.
func (repo *orderRepository) ListOrders(ctx context.Context) ([]*entity.OrderSummary, error) {
	var orderModels []*model.OrderModel

	if err := repo.withOrderGraph(ctx).
		Order("created_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return toOrderSummaries(orderModels), nil
}

// ListOrdersByStatus returns orders whose status name equals statusName exactly, newest first.
// The comparison is case-sensitive here, unlike UpdateOrderStatus.
func (repo *orderRepository) ListOrdersByStatus(ctx context.Context, statusName string) ([]*entity.OrderSummary, error) {
	var orderModels []*model.OrderModel

	statusIDs := repo.db.WithContext(ctx).
		Model(&model.OrderStatusModel{}).
		Select("id").
		Where("name = ?", statusName)

	if err := repo.withOrderGraph(ctx).
		Where("status_id IN (?)", statusIDs).
		Order("created_date DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrapf(err, "failed to list orders with status %q", statusName)
	}

	return toOrderSummaries(orderModels), nil
}

// FindOrderByID returns the full order, or nil without error when it does not exist.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.OrderDetail, error) {
	var orderM model.OrderModel

	if err := repo.withOrderGraph(ctx).
		Where("id = ?", model.EncodeID(id)).
		Take(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return entity.NewOrderDetail(toOrderDomain(&orderM)), nil
}

// UpdateOrderStatus points the order at the status whose name matches newStatusName ignoring case.
//
// A missing order is reported before a missing status. The write is a single conditional
// UPDATE of status_id, so concurrent updates never overwrite other columns; the last
// writer still wins on the status itself.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, newStatusName string) error {
	orderID := model.EncodeID(id)
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Session(&gorm.Session{})

	var orderCount int64
	if err := db.Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Count(&orderCount).Error; err != nil {
		return errors.Wrap(err, "failed to check order existence")
	}
	if orderCount == 0 {
		return domainerrors.ErrOrderNotFound.WrapMessage("order " + id.String())
	}

	var statusM model.OrderStatusModel
	if err := db.Where("LOWER(name) = LOWER(?)", newStatusName).
		Take(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domainerrors.ErrStatusNotFound.WrapMessage("status " + newStatusName)
		}

		return errors.Wrap(err, "failed to find order status by name")
	}

	result := db.Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status_id", statusM.ID)

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrStatusNotFound.WrapMessage("status " + newStatusName)
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update order status")
	}

	// Deleted between the existence check and the update.
	if result.RowsAffected == 0 {
		return domainerrors.ErrOrderNotFound.WrapMessage("order " + id.String())
	}

	return nil
}

// CreateOrder persists a new order without items and returns its generated id.
// Reseller and customer ids are stored as given; only the status is checked.
func (repo *orderRepository) CreateOrder(ctx context.Context, dto *entity.OrderCreateDTO) (uuid.UUID, error) {
	newID := uuid.New()

	err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Transaction(func(tx *gorm.DB) error {
		var statusM model.OrderStatusModel
		if err := tx.Where("id = ?", model.EncodeID(dto.StatusID)).
			Take(&statusM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrStatusNotFound.WrapMessage("status " + dto.StatusID.String())
			}

			return errors.Wrap(err, "failed to find order status by ID")
		}

		orderM := &model.OrderModel{
			ID:          model.EncodeID(newID),
			ResellerID:  model.EncodeID(dto.ResellerID),
			CustomerID:  model.EncodeID(dto.CustomerID),
			StatusID:    statusM.ID,
			CreatedDate: dto.CreatedDate,
		}

		if err := tx.Create(orderM).Error; err != nil {
			if isForeignKeyConstraintViolation(err) {
				return domainerrors.ErrStatusNotFound.WrapMessage("status " + dto.StatusID.String())
			}
			if isUniqueConstraintViolation(err) {
				return domainerrors.ErrOrderCreationFailed.WrapMessage("order id collision")
			}

			return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return newID, nil
}

// withOrderGraph loads the status and every item with its product and service.
func (repo *orderRepository) withOrderGraph(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("Status").
		Preload("Items.Product").
		Preload("Items.Service")
}

// --- Mapper Functions ---

func toOrderSummaries(orderModels []*model.OrderModel) []*entity.OrderSummary {
	summaries := make([]*entity.OrderSummary, 0, len(orderModels))
	for _, orderM := range orderModels {
		summaries = append(summaries, entity.NewOrderSummary(toOrderDomain(orderM)))
	}

	return summaries
}

// toOrderDomain converts a GORM OrderModel (with its preloaded graph) to a domain Order.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:          data.ID.UUID(),
		ResellerID:  data.ResellerID.UUID(),
		CustomerID:  data.CustomerID.UUID(),
		StatusID:    data.StatusID.UUID(),
		Status:      toOrderStatusDomain(data.Status),
		CreatedDate: data.CreatedDate,
		Items:       items,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) entity.OrderItem {
	return entity.OrderItem{
		ID:        data.ID.UUID(),
		OrderID:   data.OrderID.UUID(),
		ProductID: data.ProductID.UUID(),
		ServiceID: data.ServiceID.UUID(),
		Quantity:  data.Quantity,
		Product:   toProductDomain(data.Product),
		Service:   toServiceDomain(data.Service),
	}
}

func toOrderStatusDomain(data *model.OrderStatusModel) *entity.OrderStatus {
	if data == nil {
		return nil
	}

	return &entity.OrderStatus{
		ID:   data.ID.UUID(),
		Name: data.Name,
	}
}

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:        data.ID.UUID(),
		ServiceID: data.ServiceID.UUID(),
		Name:      data.Name,
		UnitCost:  data.UnitCost,
		UnitPrice: data.UnitPrice,
	}
}

func toServiceDomain(data *model.ServiceModel) *entity.Service {
	if data == nil {
		return nil
	}

	return &entity.Service{
		ID:   data.ID.UUID(),
		Name: data.Name,
	}
}
