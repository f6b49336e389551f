package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is external reference data priced per unit. Cost <= price is not enforced.
type Product struct {
	ID        uuid.UUID       `json:"id"`
	ServiceID uuid.UUID       `json:"service_id"`
	Name      string          `json:"name"`
	UnitCost  decimal.Decimal `json:"unit_cost"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Service groups products, e.g. "Email" or "Hosting".
type Service struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
