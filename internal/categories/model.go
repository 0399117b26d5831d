package categories

// Category ids are store-assigned (auto-increment), never computed by the
// application.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
