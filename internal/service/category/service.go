package category

import (
	"context"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	categoryrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/category"
)

type Service struct {
	repo categoryrepo.Repository
}

func New(repo categoryrepo.Repository) *Service {
	return &Service{repo: repo}
}

type CategoryInput struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (s *Service) List(ctx context.Context, storeID string) ([]domain.Category, error) {
	return s.repo.List(ctx, storeID)
}

func (s *Service) Create(ctx context.Context, storeID string, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	return s.repo.Create(ctx, categoryrepo.CreateCategoryInput{
		StoreID: storeID,
		Name:    name,
		Icon:    strings.TrimSpace(in.Icon),
	})
}

func (s *Service) Update(ctx context.Context, storeID, id string, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	return s.repo.Update(ctx, storeID, id, name, strings.TrimSpace(in.Icon))
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.Delete(ctx, storeID, id)
}
