package suppliers

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

func (s *Service) List(ctx context.Context) ([]SupplierBrief, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Supplier, error) {
	return s.repo.Get(ctx, id)
}

// Products returns the supplier's products, newest product id first.
// An empty result is not found, matching the read contract.
func (s *Service) Products(ctx context.Context, supplierID int64) ([]SupplierProduct, error) {
	products, err := s.repo.Products(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: supplier %d has no products", httpx.ErrNotFound, supplierID)
	}
	return products, nil
}

// Create inserts the supplier under the next free id and returns the
// freshly fetched entity.
func (s *Service) Create(ctx context.Context, req CreateSupplierRequest) (Supplier, error) {
	id, err := s.repo.Create(ctx, req)
	if err != nil {
		return Supplier{}, err
	}
	return s.repo.Get(ctx, id)
}

// Update applies a partial patch and returns the freshly fetched entity.
// An empty patch writes nothing; the fetch still answers 404 for unknown ids.
func (s *Service) Update(ctx context.Context, id int64, patch UpdateSupplierRequest) (Supplier, error) {
	if patch.Empty() {
		return s.repo.Get(ctx, id)
	}
	if err := s.repo.Update(ctx, id, patch); err != nil {
		return Supplier{}, err
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
