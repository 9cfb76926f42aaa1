package payment

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type CreateMethodInput struct {
	StoreID   string
	Name      string
	Active    bool
	IsDefault bool
}

type UpdateMethodInput struct {
	Name      string
	Active    bool
	IsDefault bool
}

// Repository provides access to a store's payment methods.
type Repository interface {
	List(ctx context.Context, storeID string, activeOnly bool) ([]domain.PaymentMethod, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.PaymentMethod, error)
	Create(ctx context.Context, in CreateMethodInput) (*domain.PaymentMethod, error)
	Update(ctx context.Context, storeID, id string, in UpdateMethodInput) (*domain.PaymentMethod, error)
	Delete(ctx context.Context, storeID, id string) error
	ClearDefault(ctx context.Context, storeID string) error
}
