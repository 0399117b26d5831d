package employees

import (
	"context"
	"fmt"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

var allowedOrders = map[string]struct{}{
	"first_name": {},
	"last_name":  {},
	"city":       {},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List validates the order column against the allow-list before the store
// is touched. Absent order falls back to the primary key.
func (s *Service) List(ctx context.Context, params ListParams) ([]Employee, error) {
	if params.Order != "" {
		if _, ok := allowedOrders[params.Order]; !ok {
			return nil, fmt.Errorf("%w: order must be one of first_name, last_name, city", httpx.ErrValidation)
		}
	}
	return s.repo.List(ctx, params)
}
