package products

import (
	"context"
	"fmt"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, id int64) (Product, error) {
	return s.repo.Get(ctx, id)
}

// OrderDetails returns the joined order view for a product. A product with
// zero order rows is not found, the same answer as an unknown product.
func (s *Service) OrderDetails(ctx context.Context, productID int64) ([]OrderDetail, error) {
	details, err := s.repo.OrderDetails(ctx, productID)
	if err != nil {
		return nil, err
	}
	if len(details) == 0 {
		return nil, fmt.Errorf("%w: no orders for product %d", httpx.ErrNotFound, productID)
	}
	return details, nil
}

func (s *Service) ListExtended(ctx context.Context) ([]ProductExtended, error) {
	return s.repo.ListExtended(ctx)
}
