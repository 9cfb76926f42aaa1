package cashier

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	tokenrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/token"
)

// kindAccess is the only token kind issued today; the kind column leaves
// room for refresh or device tokens later.
const kindAccess = "access"

type tokenMeta struct {
	CashierID string
	StoreID   string
	ExpiresAt time.Time
}

// tokenManager issues opaque bearer tokens backed by the tokens table.
// Because every token lives server-side, revoking one takes effect on the
// next request, unlike a self-contained signed token.
type tokenManager struct {
	repo tokenrepo.Repository
}

func newTokenManager(repo tokenrepo.Repository) *tokenManager {
	return &tokenManager{repo: repo}
}

func (m *tokenManager) Issue(ctx context.Context, storeID, cashierID, kind string, ttl time.Duration) (string, error) {
	expiresAt := time.Now().Add(ttl)
	for i := 0; i < 5; i++ {
		token, err := randomToken()
		if err != nil {
			return "", err
		}
		err = m.repo.Create(ctx, tokenrepo.Token{
			Token:     token,
			CashierID: cashierID,
			StoreID:   storeID,
			Kind:      kind,
			ExpiresAt: expiresAt,
		})
		if err == nil {
			return token, nil
		}
		if errors.Is(err, domain.ErrAlreadyExists) {
			continue
		}
		return "", err
	}
	return "", errors.New("token collision")
}

// Validate resolves a token of the given kind. Expired tokens are deleted
// on sight so the tokens table does not accumulate stale rows.
func (m *tokenManager) Validate(ctx context.Context, token, kind string) (tokenMeta, bool) {
	meta, err := m.repo.Get(ctx, token)
	if err != nil {
		return tokenMeta{}, false
	}
	if meta.Kind != kind {
		return tokenMeta{}, false
	}
	if time.Now().After(meta.ExpiresAt) {
		_ = m.repo.Delete(ctx, token)
		return tokenMeta{}, false
	}
	return tokenMeta{
		CashierID: meta.CashierID,
		StoreID:   meta.StoreID,
		ExpiresAt: meta.ExpiresAt,
	}, true
}

// Revoke invalidates a token immediately. Deleting an unknown token is not
// an error; logout should succeed even if the token already expired.
func (m *tokenManager) Revoke(ctx context.Context, token string) error {
	err := m.repo.Delete(ctx, token)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
