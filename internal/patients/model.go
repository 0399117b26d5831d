package patients

// Patient is a registered vaccination candidate. Dates are rendered as
// YYYY-MM-DD strings on the wire.
type Patient struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	RegisterDate    string `json:"register_date"`
	VaccinationDate string `json:"vaccination_date"`
}
