// Package booking holds the central transactional record: what a customer
// booked, when, with which type-specific details, and where the booking sits
// in its lifecycle.
package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return Status(s), true
	}
	return "", false
}

// Booking is the flat persisted row. The type-specific columns are nullable;
// exactly the ones relevant to ServiceType are populated, which New enforces
// at construction. Use Details to get the typed view back.
type Booking struct {
	ID         uuid.UUID `db:"id"`
	CustomerID uuid.UUID `db:"customer_id"`
	// ServiceID is null for synthetic services: bus charters are bookable
	// without a catalogue row.
	ServiceID       *uuid.UUID      `db:"service_id"`
	ServiceType     service.Type    `db:"service_type"`
	Status          Status          `db:"status"`
	ScheduledTime   time.Time       `db:"scheduled_time"`
	Price           decimal.Decimal `db:"price"`
	SpecialRequests sql.NullString  `db:"special_requests"`
	AdminNotes      sql.NullString  `db:"admin_notes"`
	CouponCode      sql.NullString  `db:"coupon_code"`

	VehicleID       *uuid.UUID     `db:"vehicle_id"`
	PickupLocation  sql.NullString `db:"pickup_location"`
	Destination     sql.NullString `db:"destination"`
	RentalDuration  sql.NullInt32  `db:"rental_duration"`
	SeatingCapacity sql.NullString `db:"seating_capacity"`

	CreatedAt time.Time `db:"created_at"`
}

// Details returns the typed view of the booking's type-specific columns.
func (b Booking) Details() Details {
	switch b.ServiceType {
	case service.CarWash:
		d := CarWashDetails{}
		if b.VehicleID != nil {
			d.VehicleID = *b.VehicleID
		}
		return d
	case service.DriverHire:
		return DriverHireDetails{
			PickupLocation: b.PickupLocation.String,
			Destination:    b.Destination.String,
		}
	case service.CarRental:
		return CarRentalDetails{
			PickupLocation:  b.PickupLocation.String,
			ReturnLocation:  b.Destination.String,
			SeatingCapacity: b.SeatingCapacity.String,
			RentalDays:      int(b.RentalDuration.Int32),
		}
	case service.BusService:
		return BusCharterDetails{
			PickupLocation: b.PickupLocation.String,
			Destination:    b.Destination.String,
			Passengers:     b.SeatingCapacity.String,
			RoundTrip:      b.RentalDuration.Int32 == 2,
		}
	}
	return nil
}
