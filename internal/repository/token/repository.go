package token

import (
	"context"
	"time"
)

// Token is an opaque bearer credential stored server-side.
type Token struct {
	Token     string
	CashierID string
	StoreID   string
	Kind      string
	ExpiresAt time.Time
}

// Repository provides access to issued tokens.
type Repository interface {
	Create(ctx context.Context, t Token) error
	Get(ctx context.Context, token string) (*Token, error)
	Delete(ctx context.Context, token string) error
}
