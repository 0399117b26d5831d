package suppliers

type CreateSupplierRequest struct {
	Name         string  `json:"name" validate:"required,max=100"`
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	ContactTitle *string `json:"contact_title,omitempty" validate:"omitempty,max=100"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=200"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

// UpdateSupplierRequest is a partial patch: only non-null fields are
// written, absent fields are left untouched.
type UpdateSupplierRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,max=100"`
	ContactName  *string `json:"contact_name,omitempty" validate:"omitempty,max=100"`
	ContactTitle *string `json:"contact_title,omitempty" validate:"omitempty,max=100"`
	Address      *string `json:"address,omitempty" validate:"omitempty,max=200"`
	City         *string `json:"city,omitempty" validate:"omitempty,max=100"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,max=50"`
}

// Empty reports whether the patch carries no fields at all.
func (u UpdateSupplierRequest) Empty() bool {
	return u.Name == nil && u.ContactName == nil && u.ContactTitle == nil &&
		u.Address == nil && u.City == nil && u.Phone == nil
}
