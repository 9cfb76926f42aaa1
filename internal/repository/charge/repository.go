package charge

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type CreateChargeInput struct {
	StoreID string
	Name    string
	Kind    domain.ChargeKind
	Value   float64
	Active  bool
}

type UpdateChargeInput struct {
	Name   string
	Kind   domain.ChargeKind
	Value  float64
	Active bool
}

// Repository provides access to one tariff collection. Charges and
// discounts share the shape, so the same implementation serves both
// tables.
type Repository interface {
	List(ctx context.Context, storeID string, activeOnly bool) ([]domain.Charge, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.Charge, error)
	Create(ctx context.Context, in CreateChargeInput) (*domain.Charge, error)
	Update(ctx context.Context, storeID, id string, in UpdateChargeInput) (*domain.Charge, error)
	Delete(ctx context.Context, storeID, id string) error
}
