package supplier

import (
	"context"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	supplierrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/supplier"
)

type Service struct {
	repo supplierrepo.Repository
}

func New(repo supplierrepo.Repository) *Service {
	return &Service{repo: repo}
}

type SupplierInput struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func (s *Service) List(ctx context.Context, storeID string) ([]domain.Supplier, error) {
	return s.repo.List(ctx, storeID)
}

func (s *Service) Create(ctx context.Context, storeID string, in SupplierInput) (*domain.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	return s.repo.Create(ctx, supplierrepo.CreateSupplierInput{
		StoreID: storeID,
		Name:    name,
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	})
}

func (s *Service) Update(ctx context.Context, storeID, id string, in SupplierInput) (*domain.Supplier, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	return s.repo.Update(ctx, storeID, id, name, strings.TrimSpace(in.Phone), strings.TrimSpace(in.Address))
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.Delete(ctx, storeID, id)
}
