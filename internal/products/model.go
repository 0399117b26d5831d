package products

// Product is the raw products row.
type Product struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	SupplierID   int64   `json:"supplier_id"`
	CategoryID   int64   `json:"category_id"`
	UnitPrice    float64 `json:"unit_price"`
	Discontinued int     `json:"discontinued"`
}

// OrderDetail is the joined projection of orders, line items and
// customers for one product.
type OrderDetail struct {
	ID         int64   `json:"id"`
	Customer   string  `json:"customer"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
}

// ProductExtended resolves the category and supplier names.
type ProductExtended struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Supplier string `json:"supplier"`
}
