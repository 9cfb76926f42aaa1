package cashier

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// Repository provides access to cashier accounts. Account creation happens
// alongside the store insert in the store repository.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Cashier, error)
	GetByID(ctx context.Context, id string) (*domain.Cashier, error)
}
