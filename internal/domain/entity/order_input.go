package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderCreateDTO is the only externally supplied shape for creating an order.
type OrderCreateDTO struct {
	ResellerID  uuid.UUID `json:"reseller_id"`
	CustomerID  uuid.UUID `json:"customer_id"`
	StatusID    uuid.UUID `json:"status_id"`
	CreatedDate time.Time `json:"created_date"`
}

// OrderChangeStatusDTO carries the target status name of a status transition.
type OrderChangeStatusDTO struct {
	NewStatusName string `json:"new_status_name"`
}
