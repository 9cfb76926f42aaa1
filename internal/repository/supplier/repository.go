package supplier

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type CreateSupplierInput struct {
	StoreID string
	Name    string
	Phone   string
	Address string
}

// Repository provides access to a store's suppliers.
type Repository interface {
	List(ctx context.Context, storeID string) ([]domain.Supplier, error)
	Create(ctx context.Context, in CreateSupplierInput) (*domain.Supplier, error)
	Update(ctx context.Context, storeID, id, name, phone, address string) (*domain.Supplier, error)
	Delete(ctx context.Context, storeID, id string) error
}
