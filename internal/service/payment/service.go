package payment

import (
	"context"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	paymentrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/payment"
)

type Service struct {
	repo paymentrepo.Repository
}

func New(repo paymentrepo.Repository) *Service {
	return &Service{repo: repo}
}

type MethodInput struct {
	Name      string `json:"name"`
	Active    *bool  `json:"active"`
	IsDefault bool   `json:"isDefault"`
}

func (s *Service) List(ctx context.Context, storeID string, activeOnly bool) ([]domain.PaymentMethod, error) {
	return s.repo.List(ctx, storeID, activeOnly)
}

// Default returns the store's default active method, or nil when none is
// marked.
func (s *Service) Default(ctx context.Context, storeID string) (*domain.PaymentMethod, error) {
	methods, err := s.repo.List(ctx, storeID, true)
	if err != nil {
		return nil, err
	}
	for _, m := range methods {
		if m.IsDefault {
			copied := m
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *Service) Create(ctx context.Context, storeID string, in MethodInput) (*domain.PaymentMethod, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	// An inactive method cannot be the default.
	isDefault := in.IsDefault && active
	if isDefault {
		if err := s.repo.ClearDefault(ctx, storeID); err != nil {
			return nil, err
		}
	}
	return s.repo.Create(ctx, paymentrepo.CreateMethodInput{
		StoreID:   storeID,
		Name:      name,
		Active:    active,
		IsDefault: isDefault,
	})
}

func (s *Service) Update(ctx context.Context, storeID, id string, in MethodInput) (*domain.PaymentMethod, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	// Confirm the target exists before clearing the current default, so an
	// update of an unknown id cannot leave the store without one.
	if _, err := s.repo.GetByID(ctx, storeID, id); err != nil {
		return nil, err
	}
	isDefault := in.IsDefault && active
	if isDefault {
		if err := s.repo.ClearDefault(ctx, storeID); err != nil {
			return nil, err
		}
	}
	return s.repo.Update(ctx, storeID, id, paymentrepo.UpdateMethodInput{
		Name:      name,
		Active:    active,
		IsDefault: isDefault,
	})
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	return s.repo.Delete(ctx, storeID, id)
}
