package settings

import (
	"context"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// Repository provides access to per-store receipt settings. Get returns
// domain.ErrNotFound for stores that never saved settings; callers fall
// back to domain.DefaultReceiptSettings.
type Repository interface {
	Get(ctx context.Context, storeID string) (*domain.ReceiptSettings, error)
	Save(ctx context.Context, storeID string, s domain.ReceiptSettings) error
}
