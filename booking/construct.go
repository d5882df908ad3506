package booking

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

var (
	ErrMissingSchedule = errors.New("booking requires a scheduled time")
	ErrMissingVehicle  = errors.New("car wash booking requires a vehicle")
)

// Details is the type-specific part of a booking. Each service type has
// exactly one variant carrying exactly its fields, so a rental can never
// carry a vehicle reference and a wash can never carry a destination.
type Details interface {
	serviceType() service.Type
}

type CarWashDetails struct {
	VehicleID uuid.UUID `json:"vehicleId"`
}

// DriverHireDetails carries the pickup and drop-off locations. The legacy
// flow never required either to be non-empty before submission and that gap
// is preserved.
type DriverHireDetails struct {
	PickupLocation string `json:"pickupLocation"`
	Destination    string `json:"destination"`
}

// CarRentalDetails. ReturnLocation is persisted in the destination column;
// the legacy schema reused that column for the rental return location.
type CarRentalDetails struct {
	PickupLocation  string `json:"pickupLocation"`
	ReturnLocation  string `json:"returnLocation"`
	SeatingCapacity string `json:"seatingCapacity"`
	RentalDays      int    `json:"rentalDays"`
}

// BusCharterDetails. Passengers is a free-text count persisted in the
// seating_capacity column; a round trip persists as a rental duration of 2,
// a one-way trip as 1.
type BusCharterDetails struct {
	PickupLocation string `json:"pickupLocation"`
	Destination    string `json:"destination"`
	Passengers     string `json:"passengers"`
	RoundTrip      bool   `json:"roundTrip"`
}

func (CarWashDetails) serviceType() service.Type    { return service.CarWash }
func (DriverHireDetails) serviceType() service.Type { return service.DriverHire }
func (CarRentalDetails) serviceType() service.Type  { return service.CarRental }
func (BusCharterDetails) serviceType() service.Type { return service.BusService }

// Request is everything needed to construct a booking before it is
// persisted.
type Request struct {
	CustomerID      uuid.UUID
	Service         service.Service
	ScheduledTime   time.Time
	Price           decimal.Decimal
	SpecialRequests string
	CouponCode      string
	Details         Details
}

// New builds a pending booking from a request, populating exactly the
// columns relevant to the service type. The coupon code is carried as an
// opaque reference; no validity check gates submission.
func New(req Request) (Booking, error) {
	if req.ScheduledTime.IsZero() {
		return Booking{}, ErrMissingSchedule
	}
	if req.Details == nil || req.Details.serviceType() != req.Service.Type {
		return Booking{}, fmt.Errorf("details do not match service type %s", req.Service.Type)
	}

	b := Booking{
		ID:              uuid.New(),
		CustomerID:      req.CustomerID,
		ServiceType:     req.Service.Type,
		Status:          StatusPending,
		ScheduledTime:   req.ScheduledTime,
		Price:           req.Price,
		SpecialRequests: nullString(req.SpecialRequests),
		CouponCode:      nullString(req.CouponCode),
	}
	if req.Service.ID != uuid.Nil {
		id := req.Service.ID
		b.ServiceID = &id
	}

	switch d := req.Details.(type) {
	case CarWashDetails:
		if d.VehicleID == uuid.Nil {
			return Booking{}, ErrMissingVehicle
		}
		id := d.VehicleID
		b.VehicleID = &id
	case DriverHireDetails:
		b.PickupLocation = nullString(d.PickupLocation)
		b.Destination = nullString(d.Destination)
	case CarRentalDetails:
		days := d.RentalDays
		if days < 1 {
			days = 1
		}
		b.PickupLocation = nullString(d.PickupLocation)
		b.Destination = nullString(d.ReturnLocation)
		b.SeatingCapacity = nullString(d.SeatingCapacity)
		b.RentalDuration = sql.NullInt32{Int32: int32(days), Valid: true}
	case BusCharterDetails:
		duration := int32(1)
		if d.RoundTrip {
			duration = 2
		}
		b.PickupLocation = nullString(d.PickupLocation)
		b.Destination = nullString(d.Destination)
		b.SeatingCapacity = nullString(d.Passengers)
		b.RentalDuration = sql.NullInt32{Int32: duration, Valid: true}
	}

	return b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
