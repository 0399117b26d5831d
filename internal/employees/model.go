package employees

// Employee is a read-only listing entity.
type Employee struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	City      string `json:"city"`
}

// ListParams carries pagination and ordering for the employee listing.
// Order must be empty or one of the allow-listed columns.
type ListParams struct {
	Limit  int
	Offset int
	Order  string
}
