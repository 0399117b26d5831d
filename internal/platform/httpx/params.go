package httpx

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// IDParam extracts a positive integer path parameter. Values that do not
// parse, or parse below 1, map to ErrValidation.
func IDParam(r *http.Request, name string) (int64, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", ErrValidation, name)
	}
	if id < 1 {
		return 0, fmt.Errorf("%w: %s must be positive", ErrValidation, name)
	}
	return id, nil
}

// QueryInt parses an optional non-negative integer query parameter,
// returning fallback when the parameter is absent.
func QueryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s must be a non-negative integer", ErrValidation, name)
	}
	return v, nil
}
