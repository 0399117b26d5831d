package shippers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]Shipper, error)
	Get(ctx context.Context, id int64) (Shipper, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Shipper, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, COALESCE(phone, '') FROM shippers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("shippers: list: %w", err)
	}
	defer rows.Close()

	var out []Shipper
	for rows.Next() {
		var s Shipper
		if err := rows.Scan(&s.ID, &s.Name, &s.Phone); err != nil {
			return nil, fmt.Errorf("shippers: scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Shipper, error) {
	var s Shipper
	err := r.db.QueryRow(ctx, `SELECT id, name, COALESCE(phone, '') FROM shippers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Shipper{}, httpx.ErrNotFound
		}
		return Shipper{}, fmt.Errorf("shippers: get: %w", err)
	}
	return s, nil
}
