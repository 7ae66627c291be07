package asset

import (
	"time"

	"github.com/shopspring/decimal"
)

// Asset statuses
const (
	StatusAvailable     = "available"
	StatusAssigned      = "assigned"
	StatusPendingReturn = "pending_return"
	StatusRetired       = "retired"
)

type Asset struct {
	ID            string
	Name          string
	Code          string
	Category      string
	SerialNumber  *string
	PurchaseDate  *time.Time
	PurchaseCost  *decimal.Decimal
	Status        string
	AssignedTo    *string
	AssignedAt    *time.Time
	Notes         *string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Join fields
	AssignedToName *string
}

// Assignable reports whether the asset can be handed to an employee.
func (a *Asset) Assignable() bool {
	return a.Status == StatusAvailable
}

// Statistics aggregates asset counts by status.
type Statistics struct {
	Total         int64 `json:"total"`
	Available     int64 `json:"available"`
	Assigned      int64 `json:"assigned"`
	PendingReturn int64 `json:"pending_return"`
	Retired       int64 `json:"retired"`
}
