package employees

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	List(ctx context.Context, params ListParams) ([]Employee, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

// List assumes params.Order was already checked against the allow-list by
// the service; the column name is interpolated, never caller input.
func (r *repository) List(ctx context.Context, params ListParams) ([]Employee, error) {
	query := `SELECT id, first_name, last_name, COALESCE(city, '') FROM employees ORDER BY ` + orderColumn(params.Order)
	args := []any{}

	if params.Limit > 0 {
		args = append(args, params.Limit)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		query += ` OFFSET $` + strconv.Itoa(len(args))
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("employees: list: %w", err)
	}
	defer rows.Close()

	var out []Employee
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FirstName, &e.LastName, &e.City); err != nil {
			return nil, fmt.Errorf("employees: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func orderColumn(order string) string {
	switch order {
	case "first_name", "last_name", "city":
		return order
	default:
		return "id"
	}
}
