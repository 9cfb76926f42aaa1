package product

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type CreateProductInput struct {
	StoreID      string
	Name         string
	Price        int64
	Unit         string
	CategoryID   string
	CategoryName string
	ImageURL     string
	Unlimited    bool
	Stock        int
}

type UpdateProductInput struct {
	Name         string
	Price        int64
	Unit         string
	CategoryID   string
	CategoryName string
	ImageURL     string
}

// Repository provides access to a store's products.
type Repository interface {
	List(ctx context.Context, storeID string) ([]domain.Product, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, storeID, id string, in UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, storeID, id string) error
	SetStock(ctx context.Context, storeID, id string, unlimited bool, stock int) (*domain.Product, error)
	Upsert(ctx context.Context, p domain.Product) (*domain.Product, error)
}
