// Package coupon holds discount codes. A booking references a coupon by its
// code string; the lookup here is advisory only and no discount is applied
// to computed prices.
package coupon

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Akashkumar2010/caravaro-booking-simplified-sub000/service"
)

type Coupon struct {
	ID              uuid.UUID       `db:"id"`
	Code            string          `db:"code"`
	DiscountPercent decimal.Decimal `db:"discount_percent"`
	ExpiresAt       sql.NullTime    `db:"expires_at"`
	// ServiceType restricts the coupon to one service type when set.
	ServiceType sql.NullString `db:"service_type"`
	CreatedAt   time.Time      `db:"created_at"`
}

// ValidAt reports whether the coupon applies to the given service type at
// the given time. Submission never calls this; it backs the advisory lookup
// endpoint only.
func (c Coupon) ValidAt(now time.Time, t service.Type) bool {
	if c.ExpiresAt.Valid && c.ExpiresAt.Time.Before(now) {
		return false
	}
	if c.ServiceType.Valid && c.ServiceType.String != t.String() {
		return false
	}
	return true
}
