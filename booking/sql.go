package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("booking not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking. Bookings are never physically deleted;
// cancellation is a lifecycle transition.
func (r *Repository) Create(ctx context.Context, b *Booking) error {
	return r.db.GetContext(ctx, b, createBookingQuery,
		b.ID, b.CustomerID, b.ServiceID, b.ServiceType, b.Status, b.ScheduledTime, b.Price,
		b.SpecialRequests, b.CouponCode, b.VehicleID, b.PickupLocation, b.Destination,
		b.RentalDuration, b.SeatingCapacity)
}

const createBookingQuery = `
INSERT INTO bookings (id, customer_id, service_id, service_type, status, scheduled_time, price,
                      special_requests, coupon_code, vehicle_id, pickup_location, destination,
                      rental_duration, seating_capacity, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
RETURNING *
`

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Booking, error) {
	var b Booking
	err := r.db.GetContext(ctx, &b, getBookingByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	return b, err
}

const getBookingByIDQuery = `SELECT * FROM bookings WHERE id = $1`

// GetByCustomerID fetches a customer's bookings, newest schedule first,
// optionally filtered by status.
func (r *Repository) GetByCustomerID(ctx context.Context, customerID uuid.UUID, status *Status) ([]Booking, error) {
	var bookings []Booking
	if status != nil {
		err := r.db.SelectContext(ctx, &bookings, getByCustomerWithStatusQuery, customerID, *status)
		return bookings, err
	}
	err := r.db.SelectContext(ctx, &bookings, getByCustomerQuery, customerID)
	return bookings, err
}

const getByCustomerQuery = `SELECT * FROM bookings WHERE customer_id = $1 ORDER BY scheduled_time DESC`

const getByCustomerWithStatusQuery = `
SELECT * FROM bookings WHERE customer_id = $1 AND status = $2 ORDER BY scheduled_time DESC`

// List fetches all bookings for the admin dashboard, optionally filtered by
// status.
func (r *Repository) List(ctx context.Context, status *Status) ([]Booking, error) {
	var bookings []Booking
	if status != nil {
		err := r.db.SelectContext(ctx, &bookings, listBookingsWithStatusQuery, *status)
		return bookings, err
	}
	err := r.db.SelectContext(ctx, &bookings, listBookingsQuery)
	return bookings, err
}

const listBookingsQuery = `SELECT * FROM bookings ORDER BY scheduled_time DESC`

const listBookingsWithStatusQuery = `SELECT * FROM bookings WHERE status = $1 ORDER BY scheduled_time DESC`

// UpdateStatus applies a lifecycle transition. The current row is read FOR
// UPDATE so two concurrent transitions serialize and the loser is validated
// against the state the winner left behind. An optional admin note is
// written in the same update; it never gates the transition.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, target Status, adminNotes *string) (Booking, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return Booking{}, err
	}
	defer tx.Rollback()

	var b Booking
	err = tx.GetContext(ctx, &b, getBookingForUpdateQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Booking{}, ErrNotFound
	}
	if err != nil {
		return Booking{}, err
	}

	if err := Transition(b.Status, target); err != nil {
		return Booking{}, err
	}

	notes := b.AdminNotes
	if adminNotes != nil {
		notes = sql.NullString{String: *adminNotes, Valid: *adminNotes != ""}
	}

	err = tx.GetContext(ctx, &b, updateBookingStatusQuery, id, target, notes)
	if err != nil {
		return Booking{}, err
	}

	return b, tx.Commit()
}

const getBookingForUpdateQuery = `SELECT * FROM bookings WHERE id = $1 FOR UPDATE`

const updateBookingStatusQuery = `
UPDATE bookings SET status = $2, admin_notes = $3 WHERE id = $1 RETURNING *`
