// Package pricing derives booking totals for each service type.
//
// Every derivation is a pure function over an explicit input struct. None of
// them return errors: unknown tier names fall back to the cheapest tier and
// unusable quantities are clamped, so callers can always display a running
// total while the user is still typing.
package pricing

import (
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

var washPackages = map[string]decimal.Decimal{
	"basic":   decimal.NewFromInt(20),
	"deluxe":  decimal.NewFromInt(35),
	"premium": decimal.NewFromInt(50),
}

var washAddOns = struct {
	InteriorDetailing   decimal.Decimal
	WaxTreatment        decimal.Decimal
	LeatherConditioning decimal.Decimal
}{
	InteriorDetailing:   decimal.NewFromInt(25),
	WaxTreatment:        decimal.NewFromInt(15),
	LeatherConditioning: decimal.NewFromInt(20),
}

var rentalDayRates = map[string]decimal.Decimal{
	"economy": decimal.NewFromInt(45),
	"midsize": decimal.NewFromInt(65),
	"suv":     decimal.NewFromInt(85),
	"luxury":  decimal.NewFromInt(120),
}

var insuranceDayRates = map[string]decimal.Decimal{
	"basic":   decimal.NewFromInt(10),
	"premium": decimal.NewFromInt(25),
	"full":    decimal.NewFromInt(40),
}

var driverHourlyRates = map[string]decimal.Decimal{
	"standard":  decimal.NewFromInt(35),
	"executive": decimal.NewFromInt(50),
	"vip":       decimal.NewFromInt(75),
}

var busHourlyRates = map[string]decimal.Decimal{
	"standard":  decimal.NewFromInt(250),
	"executive": decimal.NewFromInt(350),
	"luxury":    decimal.NewFromInt(450),
}

// CarWashInput selects a wash package plus independently toggleable add-ons.
type CarWashInput struct {
	Package             string
	InteriorDetailing   bool
	WaxTreatment        bool
	LeatherConditioning bool
}

// CarWash returns the wash package base price plus the selected add-on
// surcharges. An unknown package name prices as "basic".
func CarWash(in CarWashInput) decimal.Decimal {
	total := lookupRate(washPackages, in.Package, "basic")
	if in.InteriorDetailing {
		total = total.Add(washAddOns.InteriorDetailing)
	}
	if in.WaxTreatment {
		total = total.Add(washAddOns.WaxTreatment)
	}
	if in.LeatherConditioning {
		total = total.Add(washAddOns.LeatherConditioning)
	}
	return total
}

// CarRentalInput selects a car type, an insurance tier and a rental length
// in days. Days comes straight from a form field, so it is typed loosely.
type CarRentalInput struct {
	CarType   string
	Insurance string
	Days      any
}

// CarRental returns (car day rate + insurance day rate) multiplied by the
// number of rental days. Unknown car types price as "economy" and unknown
// insurance tiers as "basic"; a non-numeric or non-positive day count is
// treated as a single day.
func CarRental(in CarRentalInput) decimal.Decimal {
	rate := lookupRate(rentalDayRates, in.CarType, "economy")
	rate = rate.Add(lookupRate(insuranceDayRates, in.Insurance, "basic"))
	return rate.Mul(decimal.NewFromInt(quantity(in.Days)))
}

// DriverHireInput selects a driver tier and a number of hours.
type DriverHireInput struct {
	Tier  string
	Hours any
}

// DriverHire returns the tier hourly rate multiplied by the booked hours.
func DriverHire(in DriverHireInput) decimal.Decimal {
	rate := lookupRate(driverHourlyRates, in.Tier, "standard")
	return rate.Mul(decimal.NewFromInt(quantity(in.Hours)))
}

// BusCharterInput selects a bus tier and a number of hours.
type BusCharterInput struct {
	Tier  string
	Hours any
}

// BusCharter returns the bus tier hourly rate multiplied by the chartered
// hours, mirroring DriverHire. The legacy system also carried a flat 250
// placeholder price on the synthetic bus service; the hourly formula is the
// canonical one here.
func BusCharter(in BusCharterInput) decimal.Decimal {
	rate := lookupRate(busHourlyRates, in.Tier, "standard")
	return rate.Mul(decimal.NewFromInt(quantity(in.Hours)))
}

func lookupRate(table map[string]decimal.Decimal, key, fallback string) decimal.Decimal {
	if rate, ok := table[key]; ok {
		return rate
	}
	return table[fallback]
}

// quantity coerces a form value to a whole number of billable units,
// clamping anything unusable to 1 so totals never go to zero or negative.
func quantity(v any) int64 {
	n := cast.ToInt64(v)
	if n < 1 {
		return 1
	}
	return n
}
