package coupon

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("coupon not found")

type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByCode(ctx context.Context, code string) (Coupon, error) {
	var c Coupon
	err := r.db.GetContext(ctx, &c, getByCodeQuery, code)
	if errors.Is(err, sql.ErrNoRows) {
		return Coupon{}, ErrNotFound
	}
	return c, err
}

const getByCodeQuery = `SELECT * FROM coupons WHERE code = $1`

func (r *Repository) List(ctx context.Context) ([]Coupon, error) {
	var coupons []Coupon
	err := r.db.SelectContext(ctx, &coupons, listCouponsQuery)
	return coupons, err
}

const listCouponsQuery = `SELECT * FROM coupons ORDER BY created_at DESC`

func (r *Repository) Create(ctx context.Context, c *Coupon) error {
	return r.db.GetContext(ctx, c, createCouponQuery,
		uuid.New(), c.Code, c.DiscountPercent, c.ExpiresAt, c.ServiceType)
}

const createCouponQuery = `
INSERT INTO coupons (id, code, discount_percent, expires_at, service_type, created_at)
VALUES ($1, $2, $3, $4, $5, now())
RETURNING *
`
