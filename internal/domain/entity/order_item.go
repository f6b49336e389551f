package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem is a single product line of an order.
type OrderItem struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	ProductID uuid.UUID `json:"product_id"`
	ServiceID uuid.UUID `json:"service_id"`
	Quantity  int       `json:"quantity"`
	Product   *Product  `json:"product,omitempty"`
	Service   *Service  `json:"service,omitempty"`
}

// UnitCost is the referenced product's unit cost, zero when the product is not loaded.
func (i *OrderItem) UnitCost() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.UnitCost
}

// UnitPrice is the referenced product's unit price, zero when the product is not loaded.
func (i *OrderItem) UnitPrice() decimal.Decimal {
	if i.Product == nil {
		return decimal.Zero
	}

	return i.Product.UnitPrice
}

// TotalCost is quantity × unit cost.
func (i *OrderItem) TotalCost() decimal.Decimal {
	return i.UnitCost().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// TotalPrice is quantity × unit price.
func (i *OrderItem) TotalPrice() decimal.Decimal {
	return i.UnitPrice().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ProductName returns the loaded product name or an empty string.
func (i *OrderItem) ProductName() string {
	if i.Product == nil {
		return ""
	}

	return i.Product.Name
}

// ServiceName returns the loaded service name or an empty string.
func (i *OrderItem) ServiceName() string {
	if i.Service == nil {
		return ""
	}

	return i.Service.Name
}
