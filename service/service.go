// Package service holds the catalogue of bookable offerings.
package service

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Type int

const (
	CarWash Type = iota
	DriverHire
	CarRental
	BusService
)

// Service is a bookable offering. Administrators create and edit services;
// end users only read them.
type Service struct {
	ID          uuid.UUID
	Name        string
	Description string
	Type        Type
	// Price is the base price in the single implied currency. Type-specific
	// pricing (tiers, add-ons, per-day rates) lives in the pricing package.
	Price           decimal.Decimal
	DurationMinutes sql.NullInt32 `db:"duration_minutes"`
	ImageURL        *string       `db:"image_url"`
	CreatedAt       time.Time     `db:"created_at"`
}

func (t Type) String() string {
	return [...]string{"car_wash", "driver_hire", "car_rental", "bus_service"}[t]
}

func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *Type) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, ok := ParseType(s)
	if !ok {
		return fmt.Errorf("unknown service type %q", s)
	}
	*t = parsed
	return nil
}

func ParseType(s string) (Type, bool) {
	switch s {
	case "car_wash":
		return CarWash, true
	case "driver_hire":
		return DriverHire, true
	case "car_rental":
		return CarRental, true
	case "bus_service":
		return BusService, true
	}
	return 0, false
}

func (t *Type) Scan(i any) error {
	s, ok := i.(string)
	if !ok {
		return fmt.Errorf("cannot scan %T into service.Type", i)
	}
	parsed, ok := ParseType(s)
	if !ok {
		return fmt.Errorf("unknown service type %q", s)
	}
	*t = parsed
	return nil
}

func (t Type) Value() (driver.Value, error) {
	return t.String(), nil
}

// SyntheticBusCharter is the client-constructed bus service. Bus charters
// are bookable without a persisted catalogue row; the price here is the
// legacy nominal placeholder, the real total comes from pricing.BusCharter.
func SyntheticBusCharter() Service {
	return Service{
		Name:        "Bus Charter",
		Description: "Charter a bus with driver for group travel",
		Type:        BusService,
		Price:       decimal.NewFromInt(250),
	}
}
