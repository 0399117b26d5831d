package categories

import (
	"context"
	"fmt"
	"strings"

	"github.com/northgate-api/northgate/internal/platform/httpx"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (Category, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	return s.repo.Create(ctx, name)
}

func (s *Service) Update(ctx context.Context, id int64, name string) (Category, error) {
	if strings.TrimSpace(name) == "" {
		return Category{}, fmt.Errorf("%w: category name is required", httpx.ErrValidation)
	}
	if err := s.repo.Update(ctx, id, name); err != nil {
		return Category{}, err
	}
	return s.repo.Get(ctx, id)
}

// Delete returns the number of deleted rows (always 1 on success).
func (s *Service) Delete(ctx context.Context, id int64) (int64, error) {
	return s.repo.Delete(ctx, id)
}
