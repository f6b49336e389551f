// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"orderservice/config"
	"orderservice/internal/delivery/api/middleware"
	"orderservice/internal/delivery/api/router/handler"
	"orderservice/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
	Metrics        *metrics.ServerMetrics
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
	metrics        *metrics.ServerMetrics
	config         *config.Config
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
		metrics:        params.Metrics,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	ordersGroup := e.Group("/orders")
	{
		// Static paths are matched before /:orderId by echo's router.
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/failed", r.orderHandler.ListFailedOrders)
		ordersGroup.GET("/completed", r.orderHandler.ListCompletedOrders)
		ordersGroup.GET("/profit-by-month", r.orderHandler.GetProfitByMonth)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)

		ordersGroup.POST("", r.orderHandler.CreateOrder, r.authMiddleware.Guard)
		ordersGroup.PATCH("/:orderId/status", r.orderHandler.UpdateOrderStatus, r.authMiddleware.Guard)
	}
}

// RegisterMetricsRoutes exposes the Prometheus endpoint when metrics are enabled.
func (r *router) RegisterMetricsRoutes(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.metrics.Path(), echo.WrapHandler(r.metrics.Handler()))
}
