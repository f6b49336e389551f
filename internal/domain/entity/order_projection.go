package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSummary is the list projection of an order. Totals are recomputed on every read.
type OrderSummary struct {
	ID          uuid.UUID       `json:"id"`
	ResellerID  uuid.UUID       `json:"reseller_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	StatusID    uuid.UUID       `json:"status_id"`
	StatusName  string          `json:"status_name"`
	ItemCount   int             `json:"item_count"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	CreatedDate time.Time       `json:"created_date"`
}

// Profit is total price minus total cost.
func (s *OrderSummary) Profit() decimal.Decimal {
	return s.TotalPrice.Sub(s.TotalCost)
}

// OrderItemDetail is the item-level part of OrderDetail.
type OrderItemDetail struct {
	ID          uuid.UUID       `json:"id"`
	OrderID     uuid.UUID       `json:"order_id"`
	ServiceID   uuid.UUID       `json:"service_id"`
	ServiceName string          `json:"service_name"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalCost   decimal.Decimal `json:"total_cost"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	Quantity    int             `json:"quantity"`
}

// OrderDetail is the full projection of a single order.
type OrderDetail struct {
	ID          uuid.UUID         `json:"id"`
	ResellerID  uuid.UUID         `json:"reseller_id"`
	CustomerID  uuid.UUID         `json:"customer_id"`
	StatusID    uuid.UUID         `json:"status_id"`
	StatusName  string            `json:"status_name"`
	CreatedDate time.Time         `json:"created_date"`
	TotalCost   decimal.Decimal   `json:"total_cost"`
	TotalPrice  decimal.Decimal   `json:"total_price"`
	Items       []OrderItemDetail `json:"items"`
}

// OrderMonthlyProfit is the profit of completed orders created in one calendar month.
type OrderMonthlyProfit struct {
	Year   int             `json:"year"`
	Month  int             `json:"month"`
	Profit decimal.Decimal `json:"profit"`
}

// NewOrderSummary projects an order into its summary.
func NewOrderSummary(o *Order) *OrderSummary {
	return &OrderSummary{
		ID:          o.ID,
		ResellerID:  o.ResellerID,
		CustomerID:  o.CustomerID,
		StatusID:    o.StatusID,
		StatusName:  o.StatusName(),
		ItemCount:   o.ItemCount(),
		TotalCost:   o.TotalCost(),
		TotalPrice:  o.TotalPrice(),
		CreatedDate: o.CreatedDate,
	}
}

// NewOrderDetail projects an order and its items. Items is never nil.
func NewOrderDetail(o *Order) *OrderDetail {
	items := make([]OrderItemDetail, 0, len(o.Items))
	for i := range o.Items {
		item := &o.Items[i]
		items = append(items, OrderItemDetail{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ServiceID:   item.ServiceID,
			ServiceName: item.ServiceName(),
			ProductID:   item.ProductID,
			ProductName: item.ProductName(),
			UnitCost:    item.UnitCost(),
			UnitPrice:   item.UnitPrice(),
			TotalCost:   item.TotalCost(),
			TotalPrice:  item.TotalPrice(),
			Quantity:    item.Quantity,
		})
	}

	return &OrderDetail{
		ID:          o.ID,
		ResellerID:  o.ResellerID,
		CustomerID:  o.CustomerID,
		StatusID:    o.StatusID,
		StatusName:  o.StatusName(),
		CreatedDate: o.CreatedDate,
		TotalCost:   o.TotalCost(),
		TotalPrice:  o.TotalPrice(),
		Items:       items,
	}
}
