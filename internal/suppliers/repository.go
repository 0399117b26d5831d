package suppliers

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/northgate-api/northgate/internal/platform/db"
	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Repository interface {
	List(ctx context.Context) ([]SupplierBrief, error)
	Get(ctx context.Context, id int64) (Supplier, error)
	Products(ctx context.Context, supplierID int64) ([]SupplierProduct, error)
	Create(ctx context.Context, req CreateSupplierRequest) (int64, error)
	Update(ctx context.Context, id int64, patch UpdateSupplierRequest) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	db *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

const supplierColumns = `id, name, contact_name, contact_title, address, city, phone`

func (r *repository) List(ctx context.Context) ([]SupplierBrief, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM suppliers ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("suppliers: list: %w", err)
	}
	defer rows.Close()

	var out []SupplierBrief
	for rows.Next() {
		var s SupplierBrief
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, fmt.Errorf("suppliers: scan: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (Supplier, error) {
	var s Supplier
	err := r.db.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id).
		Scan(&s.ID, &s.Name, &s.ContactName, &s.ContactTitle, &s.Address, &s.City, &s.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Supplier{}, httpx.ErrNotFound
		}
		return Supplier{}, fmt.Errorf("suppliers: get: %w", err)
	}
	return s, nil
}

func (r *repository) Products(ctx context.Context, supplierID int64) ([]SupplierProduct, error) {
	const query = `
		SELECT p.id, p.name, COALESCE(c.name, ''), p.discontinued
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.supplier_id = $1
		ORDER BY p.id DESC`

	rows, err := r.db.Query(ctx, query, supplierID)
	if err != nil {
		return nil, fmt.Errorf("suppliers: products: %w", err)
	}
	defer rows.Close()

	var out []SupplierProduct
	for rows.Next() {
		var p SupplierProduct
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Discontinued); err != nil {
			return nil, fmt.Errorf("suppliers: scan product: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Create allocates max(id)+1 and inserts in one statement, so concurrent
// creates cannot observe the same max. A losing insert on the id primary
// key surfaces as a duplicate.
func (r *repository) Create(ctx context.Context, req CreateSupplierRequest) (int64, error) {
	const query = `
		INSERT INTO suppliers (id, name, contact_name, contact_title, address, city, phone)
		SELECT COALESCE(MAX(id), 0) + 1, $1, $2, $3, $4, $5, $6 FROM suppliers
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, query,
		req.Name, req.ContactName, req.ContactTitle, req.Address, req.City, req.Phone).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, httpx.ErrDuplicate
		}
		return 0, fmt.Errorf("suppliers: create: %w", err)
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, id int64, patch UpdateSupplierRequest) error {
	set := make([]string, 0, 6)
	args := make([]any, 0, 7)
	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		set = append(set, column+" = $"+strconv.Itoa(len(args)))
	}
	add("name", patch.Name)
	add("contact_name", patch.ContactName)
	add("contact_title", patch.ContactTitle)
	add("address", patch.Address)
	add("city", patch.City)
	add("phone", patch.Phone)

	if len(set) == 0 {
		// Nothing to write; existence is still checked by the caller's fetch.
		return nil
	}

	args = append(args, id)
	query := "UPDATE suppliers SET "
	for i, clause := range set {
		if i > 0 {
			query += ", "
		}
		query += clause
	}
	query += " WHERE id = $" + strconv.Itoa(len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("suppliers: update: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return httpx.ErrNotFound
	}
	return nil
}

// Delete checks existence and deletes inside one transaction so the
// not-found answer and the delete observe the same state.
func (r *repository) Delete(ctx context.Context, id int64) error {
	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM suppliers WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("suppliers: delete check: %w", err)
		}
		if !exists {
			return httpx.ErrNotFound
		}
		if _, err := tx.Exec(ctx, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
			return fmt.Errorf("suppliers: delete: %w", err)
		}
		return nil
	})
}
