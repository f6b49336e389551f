package service

import (
	"context"
	"time"
)

// OrderEvent is emitted after an order mutation has been persisted.
type OrderEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	Type       string    `json:"type"`                 // constants.EventTypeOrder*
	OrderID    string    `json:"order_id"`
	StatusID   string    `json:"status_id,omitempty"`
	StatusName string    `json:"status_name,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
