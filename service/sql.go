package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("service not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.SelectContext(ctx, &services, listServicesQuery)
	return services, err
}

const listServicesQuery = `SELECT * FROM services ORDER BY name ASC`

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (Service, error) {
	var s Service
	err := r.db.GetContext(ctx, &s, getServiceByIDQuery, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Service{}, ErrNotFound
	}
	return s, err
}

const getServiceByIDQuery = `SELECT * FROM services WHERE id = $1`

// GetByType fetches the catalogue row for a service type. Reads are retried
// once on transient failure; there is no retry for writes.
func (r *Repository) GetByType(ctx context.Context, t Type) (Service, error) {
	s, err := r.getByType(ctx, t)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s, err = r.getByType(ctx, t)
	}
	return s, err
}

func (r *Repository) getByType(ctx context.Context, t Type) (Service, error) {
	var s Service
	err := r.db.GetContext(ctx, &s, getServiceByTypeQuery, t)
	if errors.Is(err, sql.ErrNoRows) {
		return Service{}, ErrNotFound
	}
	return s, err
}

const getServiceByTypeQuery = `SELECT * FROM services WHERE type = $1 LIMIT 1`

func (r *Repository) Create(ctx context.Context, s *Service) error {
	return r.db.GetContext(ctx, s, createServiceQuery,
		uuid.New(), s.Name, s.Description, s.Type, s.Price, s.DurationMinutes, s.ImageURL)
}

const createServiceQuery = `
INSERT INTO services (id, name, description, type, price, duration_minutes, image_url, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, now())
RETURNING *
`

func (r *Repository) Update(ctx context.Context, s *Service) error {
	err := r.db.GetContext(ctx, s, updateServiceQuery,
		s.ID, s.Name, s.Description, s.Price, s.DurationMinutes, s.ImageURL)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

const updateServiceQuery = `
UPDATE services
SET name = $2, description = $3, price = $4, duration_minutes = $5, image_url = $6
WHERE id = $1
RETURNING *
`
