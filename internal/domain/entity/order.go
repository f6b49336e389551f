// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a customer order placed through a reseller.
// It owns its Items; Status is shared reference data.
type Order struct {
	ID          uuid.UUID    `json:"id"`           // Immutable once created.
	ResellerID  uuid.UUID    `json:"reseller_id"`  // Referenced by id only, not validated.
	CustomerID  uuid.UUID    `json:"customer_id"`  // Referenced by id only, not validated.
	StatusID    uuid.UUID    `json:"status_id"`    // Always resolves to an existing OrderStatus.
	Status      *OrderStatus `json:"status"`       // Loaded status, may be nil when not preloaded.
	CreatedDate time.Time    `json:"created_date"` // Supplied by the caller at creation.
	Items       []OrderItem  `json:"items"`
}

// ItemCount returns the number of item lines on the order.
func (o *Order) ItemCount() int {
	return len(o.Items)
}

// TotalCost sums quantity × unit cost over all items. An order without items costs zero.
func (o *Order) TotalCost() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalCost())
	}

	return total
}

// TotalPrice sums quantity × unit price over all items. An order without items is priced zero.
func (o *Order) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for i := range o.Items {
		total = total.Add(o.Items[i].TotalPrice())
	}

	return total
}

// StatusName returns the loaded status name or an empty string.
func (o *Order) StatusName() string {
	if o.Status == nil {
		return ""
	}

	return o.Status.Name
}
