// Package vehicle holds customer-owned vehicles used for car wash bookings.
package vehicle

import (
	"time"

	"github.com/google/uuid"
)

type Vehicle struct {
	ID      uuid.UUID `db:"id"`
	OwnerID uuid.UUID `db:"owner_id"`
	Make    string    `db:"make"`
	Model   string    `db:"model"`
	// Year is the model year. The legacy app validated neither it nor the
	// plate format; neither does this one.
	Year         int       `db:"year"`
	LicensePlate string    `db:"license_plate"`
	CreatedAt    time.Time `db:"created_at"`
}
