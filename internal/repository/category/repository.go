package category

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type CreateCategoryInput struct {
	StoreID string
	Name    string
	Icon    string
}

// Repository provides access to a store's categories.
type Repository interface {
	List(ctx context.Context, storeID string) ([]domain.Category, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.Category, error)
	Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error)
	Update(ctx context.Context, storeID, id, name, icon string) (*domain.Category, error)
	Delete(ctx context.Context, storeID, id string) error
}
