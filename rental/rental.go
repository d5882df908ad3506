// Package rental holds the operator-owned fleet available for rental and
// charter.
package rental

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID   uuid.UUID `db:"id"`
	Name string    `db:"name"`
	// Type is "car" or "bus".
	Type            string          `db:"type"`
	SeatingCapacity int             `db:"seating_capacity"`
	PricePerDay     decimal.Decimal `db:"price_per_day"`
	// Availability is free text, not an enum; the legacy dashboard wrote
	// whatever the operator typed ("available", "in service", ...).
	Availability string    `db:"availability"`
	CreatedAt    time.Time `db:"created_at"`
}
