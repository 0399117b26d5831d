package customers

// Customer is the listing projection: the full address is composed from
// up to four nullable columns at read time.
type Customer struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	FullAddress string `json:"full_address"`
}
