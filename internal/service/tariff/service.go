// Package tariff manages the two adjustment collections of a store:
// charges (taxes, fees) and discounts. They share one record shape; the
// difference is purely how checkout applies them.
package tariff

import (
	"context"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	chargerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/charge"
)

type Service struct {
	charges   chargerepo.Repository
	discounts chargerepo.Repository
}

func New(charges, discounts chargerepo.Repository) *Service {
	return &Service{charges: charges, discounts: discounts}
}

type TariffInput struct {
	Name   string  `json:"name"`
	Kind   string  `json:"type"`
	Value  float64 `json:"value"`
	Active *bool   `json:"active"`
}

func (in TariffInput) validate() (chargerepo.CreateChargeInput, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return chargerepo.CreateChargeInput{}, domain.Validation("name required")
	}
	kind := domain.ChargeKind(strings.ToLower(strings.TrimSpace(in.Kind)))
	if !kind.Valid() {
		return chargerepo.CreateChargeInput{}, domain.Validation("type must be percent or fixed")
	}
	if in.Value < 0 {
		return chargerepo.CreateChargeInput{}, domain.Validation("value must not be negative")
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return chargerepo.CreateChargeInput{Name: name, Kind: kind, Value: in.Value, Active: active}, nil
}

func (s *Service) ListCharges(ctx context.Context, storeID string, activeOnly bool) ([]domain.Charge, error) {
	return s.charges.List(ctx, storeID, activeOnly)
}

func (s *Service) CreateCharge(ctx context.Context, storeID string, in TariffInput) (*domain.Charge, error) {
	return create(ctx, s.charges, storeID, in)
}

func (s *Service) UpdateCharge(ctx context.Context, storeID, id string, in TariffInput) (*domain.Charge, error) {
	return update(ctx, s.charges, storeID, id, in)
}

func (s *Service) DeleteCharge(ctx context.Context, storeID, id string) error {
	return s.charges.Delete(ctx, storeID, id)
}

func (s *Service) ListDiscounts(ctx context.Context, storeID string, activeOnly bool) ([]domain.Charge, error) {
	return s.discounts.List(ctx, storeID, activeOnly)
}

func (s *Service) CreateDiscount(ctx context.Context, storeID string, in TariffInput) (*domain.Charge, error) {
	return create(ctx, s.discounts, storeID, in)
}

func (s *Service) UpdateDiscount(ctx context.Context, storeID, id string, in TariffInput) (*domain.Charge, error) {
	return update(ctx, s.discounts, storeID, id, in)
}

func (s *Service) DeleteDiscount(ctx context.Context, storeID, id string) error {
	return s.discounts.Delete(ctx, storeID, id)
}

func create(ctx context.Context, repo chargerepo.Repository, storeID string, in TariffInput) (*domain.Charge, error) {
	validated, err := in.validate()
	if err != nil {
		return nil, err
	}
	validated.StoreID = storeID
	return repo.Create(ctx, validated)
}

func update(ctx context.Context, repo chargerepo.Repository, storeID, id string, in TariffInput) (*domain.Charge, error) {
	validated, err := in.validate()
	if err != nil {
		return nil, err
	}
	return repo.Update(ctx, storeID, id, chargerepo.UpdateChargeInput{
		Name:   validated.Name,
		Kind:   validated.Kind,
		Value:  validated.Value,
		Active: validated.Active,
	})
}
