package vehicle

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("vehicle not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]Vehicle, error) {
	var vehicles []Vehicle
	err := r.db.SelectContext(ctx, &vehicles, listByOwnerQuery, ownerID)
	return vehicles, err
}

const listByOwnerQuery = `SELECT * FROM vehicles WHERE owner_id = $1 ORDER BY created_at ASC`

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Vehicle, error) {
	var v Vehicle
	err := r.db.GetContext(ctx, &v, getVehicleByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Vehicle{}, ErrNotFound
	}
	return v, err
}

const getVehicleByIDQuery = `SELECT * FROM vehicles WHERE id = $1`

// Create registers a vehicle for an owner. Vehicles are never deleted
// in-app; bookings keep referencing them.
func (r *Repository) Create(ctx context.Context, v *Vehicle) error {
	return r.db.GetContext(ctx, v, createVehicleQuery,
		uuid.New(), v.OwnerID, v.Make, v.Model, v.Year, v.LicensePlate)
}

const createVehicleQuery = `
INSERT INTO vehicles (id, owner_id, make, model, year, license_plate, created_at)
VALUES ($1, $2, $3, $4, $5, $6, now())
RETURNING *
`
