package shippers

// Shipper is read-only in this system.
type Shipper struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}
