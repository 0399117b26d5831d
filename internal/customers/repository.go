package customers

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context) ([]Customer, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	const query = `
		SELECT id, company_name, address, postal_code, city, country
		FROM customers
		ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("customers: list: %w", err)
	}
	defer rows.Close()

	var out []Customer
	for rows.Next() {
		var (
			id                          string
			name                        pgtype.Text
			address, postal, city, land pgtype.Text
		)
		if err := rows.Scan(&id, &name, &address, &postal, &city, &land); err != nil {
			return nil, fmt.Errorf("customers: scan: %w", err)
		}
		out = append(out, Customer{
			ID:          id,
			Name:        textOrEmpty(name),
			FullAddress: composeAddress(address, postal, city, land),
		})
	}
	return out, rows.Err()
}

// composeAddress joins the non-null address parts with single spaces.
// NULL parts render as empty and never produce doubled whitespace.
func composeAddress(parts ...pgtype.Text) string {
	fields := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := textOrEmpty(p); v != "" {
			fields = append(fields, v)
		}
	}
	return strings.Join(fields, " ")
}

func textOrEmpty(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}
