package store

import (
	"context"
	"errors"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

var (
	// ErrKeyTaken is returned when the store key is already registered.
	ErrKeyTaken = errors.New("store key taken")
	// ErrEmailTaken is returned when the owner email is already registered.
	ErrEmailTaken = errors.New("owner email taken")
)

type CreateStoreInput struct {
	Key     string
	Name    string
	Address string
	Phone   string
	Email   string
}

type UpdateStoreInput struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Repository provides access to stores.
type Repository interface {
	// CreateWithOwner inserts the store and its owner account in one
	// transaction, so a failed signup leaves neither behind.
	CreateWithOwner(ctx context.Context, in CreateStoreInput, owner domain.Cashier) (*domain.Store, *domain.Cashier, error)
	GetByKey(ctx context.Context, key string) (*domain.Store, error)
	Update(ctx context.Context, id string, in UpdateStoreInput) (*domain.Store, error)
}
