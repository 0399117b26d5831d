package products

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Repository interface {
	Get(ctx context.Context, id int64) (Product, error)
	OrderDetails(ctx context.Context, productID int64) ([]OrderDetail, error)
	ListExtended(ctx context.Context) ([]ProductExtended, error)
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

func (r *repository) Get(ctx context.Context, id int64) (Product, error) {
	const query = `
		SELECT id, name, COALESCE(supplier_id, 0), COALESCE(category_id, 0),
		       COALESCE(unit_price, 0), discontinued
		FROM products WHERE id = $1`

	var p Product
	err := r.db.QueryRow(ctx, query, id).
		Scan(&p.ID, &p.Name, &p.SupplierID, &p.CategoryID, &p.UnitPrice, &p.Discontinued)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Product{}, httpx.ErrNotFound
		}
		return Product{}, fmt.Errorf("products: get: %w", err)
	}
	return p, nil
}

// OrderDetails joins orders, line items and customers for one product.
// The total is priced per line: unit price x quantity x (1 - discount),
// rounded to cents.
func (r *repository) OrderDetails(ctx context.Context, productID int64) ([]OrderDetail, error) {
	const query = `
		SELECT o.id,
		       COALESCE(cu.company_name, ''),
		       od.quantity,
		       ROUND((od.unit_price * od.quantity * (1 - od.discount))::numeric, 2)
		FROM orders o
		JOIN order_details od ON od.order_id = o.id
		LEFT JOIN customers cu ON cu.id = o.customer_id
		WHERE od.product_id = $1
		ORDER BY o.id`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("products: order details: %w", err)
	}
	defer rows.Close()

	var out []OrderDetail
	for rows.Next() {
		var d OrderDetail
		if err := rows.Scan(&d.ID, &d.Customer, &d.Quantity, &d.TotalPrice); err != nil {
			return nil, fmt.Errorf("products: scan order detail: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *repository) ListExtended(ctx context.Context) ([]ProductExtended, error) {
	const query = `
		SELECT p.id, p.name, COALESCE(c.name, ''), COALESCE(s.name, '')
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		ORDER BY p.id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("products: list extended: %w", err)
	}
	defer rows.Close()

	var out []ProductExtended
	for rows.Next() {
		var p ProductExtended
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Supplier); err != nil {
			return nil, fmt.Errorf("products: scan extended: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
