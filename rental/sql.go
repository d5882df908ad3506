package rental

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("rental vehicle not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// List fetches the fleet, optionally filtered to one vehicle type.
func (r *Repository) List(ctx context.Context, vehicleType *string) ([]Vehicle, error) {
	var vehicles []Vehicle
	if vehicleType != nil {
		err := r.db.SelectContext(ctx, &vehicles, listByTypeQuery, *vehicleType)
		return vehicles, err
	}
	err := r.db.SelectContext(ctx, &vehicles, listQuery)
	return vehicles, err
}

const listQuery = `SELECT * FROM rental_vehicles ORDER BY name ASC`

const listByTypeQuery = `SELECT * FROM rental_vehicles WHERE type = $1 ORDER BY name ASC`

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Vehicle, error) {
	var v Vehicle
	err := r.db.GetContext(ctx, &v, getByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Vehicle{}, ErrNotFound
	}
	return v, err
}

const getByIDQuery = `SELECT * FROM rental_vehicles WHERE id = $1`

func (r *Repository) Create(ctx context.Context, v *Vehicle) error {
	return r.db.GetContext(ctx, v, createQuery,
		uuid.New(), v.Name, v.Type, v.SeatingCapacity, v.PricePerDay, v.Availability)
}

const createQuery = `
INSERT INTO rental_vehicles (id, name, type, seating_capacity, price_per_day, availability, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING *
`

func (r *Repository) Update(ctx context.Context, v *Vehicle) error {
	err := r.db.GetContext(ctx, v, updateQuery,
		v.ID, v.Name, v.SeatingCapacity, v.PricePerDay, v.Availability)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const updateQuery = `
UPDATE rental_vehicles
SET name = $2, seating_capacity = $3, price_per_day = $4, availability = $5
WHERE id = $1
RETURNING *
`
