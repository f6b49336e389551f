// Package handler contains the echo handlers of the order API.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"orderservice/internal/delivery/api/response"
	"orderservice/internal/delivery/api/validator"
	"orderservice/internal/domain/entity"
	domainerrors "orderservice/internal/domain/errors"
	"orderservice/internal/errors"
	"orderservice/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for creating an order
type CreateOrderRequest struct {
	ResellerID  uuid.UUID  `json:"reseller_id" validate:"required"`
	CustomerID  uuid.UUID  `json:"customer_id" validate:"required"`
	StatusID    uuid.UUID  `json:"status_id" validate:"required"`
	CreatedDate *time.Time `json:"created_date"`
}

// UpdateOrderStatusRequest represents the request body for changing an order status
type UpdateOrderStatusRequest struct {
	NewStatusName string `json:"new_status_name" validate:"required,max=20"`
}

// CreateOrderResponse carries the id of the new order
type CreateOrderResponse struct {
	ID uuid.UUID `json:"id"`
}

// ListOrders handles GET /orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	orders, err := h.orderUC.ListOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListFailedOrders handles GET /orders/failed
func (h *OrderHandler) ListFailedOrders(c echo.Context) error {
	orders, err := h.orderUC.ListFailedOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// ListCompletedOrders handles GET /orders/completed
func (h *OrderHandler) ListCompletedOrders(c echo.Context) error {
	orders, err := h.orderUC.ListCompletedOrders(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders)
}

// GetProfitByMonth handles GET /orders/profit-by-month
func (h *OrderHandler) GetProfitByMonth(c echo.Context) error {
	profits, err := h.orderUC.GetProfitByMonth(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profits)
}

// GetOrder handles GET /orders/:orderId
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Order ID must be a UUID")
	}

	order, err := h.orderUC.GetOrderByID(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if order == nil {
		return response.NotFound(c, domainerrors.ErrOrderNotFound.ErrorCode(), domainerrors.ErrOrderNotFound.Message())
	}

	return response.Success(c, http.StatusOK, order)
}

// UpdateOrderStatus handles PATCH /orders/:orderId/status
func (h *OrderHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("orderId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ORDER_ID", "Order ID must be a UUID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &entity.OrderChangeStatusDTO{NewStatusName: req.NewStatusName}
	if err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, input); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "updated"})
}

// CreateOrder handles POST /orders
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	createdDate := time.Now().UTC()
	if req.CreatedDate != nil {
		createdDate = *req.CreatedDate
	}

	input := &entity.OrderCreateDTO{
		ResellerID:  req.ResellerID,
		CustomerID:  req.CustomerID,
		StatusID:    req.StatusID,
		CreatedDate: createdDate,
	}

	orderID, err := h.orderUC.CreateOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, CreateOrderResponse{ID: orderID})
}

func validationFailed(c echo.Context, err error) error {
	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		return response.BadRequestWithDetails(c,
			domainerrors.ErrValidationFailed.ErrorCode(), domainerrors.ErrValidationFailed.Message(), validationErr.Fields)
	}

	return response.BadRequest(c, domainerrors.ErrValidationFailed.ErrorCode(), err.Error())
}
