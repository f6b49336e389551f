package entity

import "github.com/google/uuid"

// Well-known status names. Filtering by these is an exact, case-sensitive match.
const (
	StatusNameCreated    = "Created"
	StatusNameInProgress = "In Progress"
	StatusNameFailed     = "Failed"
	StatusNameCompleted  = "Completed"
)

// OrderStatus is pre-seeded reference data. Names are unique ignoring case.
type OrderStatus struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
