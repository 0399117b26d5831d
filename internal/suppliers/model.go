package suppliers

// Supplier represents a supplier entity. Contact fields are nullable in
// the dataset and stay null on the wire.
type Supplier struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	ContactName  *string `json:"contact_name"`
	ContactTitle *string `json:"contact_title"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	Phone        *string `json:"phone"`
}

// SupplierBrief is the listing projection.
type SupplierBrief struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SupplierProduct is the joined projection returned for a supplier's
// products.
type SupplierProduct struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Discontinued int    `json:"discontinued"`
}
