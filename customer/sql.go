package customer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("customer not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByAuth0ID(ctx context.Context, auth0ID string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, getByAuth0IDQuery, auth0ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

const getByAuth0IDQuery = `SELECT * FROM customers WHERE auth0_id = $1`

func (r *Repository) Create(ctx context.Context, auth0ID string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, createCustomerQuery, uuid.New(), auth0ID)
	return &c, err
}

const createCustomerQuery = `INSERT INTO customers (id, auth0_id) VALUES ($1, $2) RETURNING *`

// List fetches all customers for the admin dashboard.
func (r *Repository) List(ctx context.Context) ([]Customer, error) {
	var customers []Customer
	err := r.db.SelectContext(ctx, &customers, listCustomersQuery)
	return customers, err
}

const listCustomersQuery = `SELECT * FROM customers ORDER BY created_at ASC`

func (r *Repository) UpdateProfile(ctx context.Context, auth0ID, email, name string) error {
	_, err := r.db.ExecContext(ctx, updateProfileQuery, email, name, auth0ID)
	return err
}

const updateProfileQuery = `UPDATE customers SET email = NULLIF($1, ''), name = NULLIF($2, '') WHERE auth0_id = $3`
