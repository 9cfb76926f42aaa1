package cashier

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	cashierrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/cashier"
	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
	tokenrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/token"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Service handles cashier signup/login and token validation.
type Service struct {
	cashiers    cashierrepo.Repository
	stores      storerepo.Repository
	tokens      *tokenManager
	accessTTL   time.Duration
	passwordMin int
}

func New(cashiers cashierrepo.Repository, stores storerepo.Repository, tokens tokenrepo.Repository) *Service {
	return &Service{
		cashiers:    cashiers,
		stores:      stores,
		tokens:      newTokenManager(tokens),
		accessTTL:   48 * time.Hour,
		passwordMin: 6,
	}
}

// SignupInput registers an owner together with their store, the way the
// onboarding flow collects both in one form.
type SignupInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	StoreKey     string `json:"storeKey"`
	StoreName    string `json:"storeName"`
	StoreAddress string `json:"storeAddress"`
	StorePhone   string `json:"storePhone"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is an authenticated cashier bound to their store.
type Session struct {
	Cashier domain.Cashier `json:"cashier"`
	StoreID string         `json:"storeId"`
	Token   string         `json:"token,omitempty"`
}

func (s *Service) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, domain.Validation("email required")
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	storeKey := strings.TrimSpace(strings.ToLower(in.StoreKey))
	if storeKey == "" {
		return nil, domain.Validation("storeKey required")
	}
	storeName := strings.TrimSpace(in.StoreName)
	if storeName == "" {
		return nil, domain.Validation("storeName required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, domain.Validationf("password must be at least %d characters", s.passwordMin)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	store, cashier, err := s.stores.CreateWithOwner(ctx, storerepo.CreateStoreInput{
		Key:     storeKey,
		Name:    storeName,
		Address: strings.TrimSpace(in.StoreAddress),
		Phone:   strings.TrimSpace(in.StorePhone),
		Email:   email,
	}, domain.Cashier{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		switch {
		case errors.Is(err, storerepo.ErrKeyTaken):
			return nil, domain.Validation("store key already taken")
		case errors.Is(err, storerepo.ErrEmailTaken):
			return nil, domain.Validation("email already registered")
		}
		return nil, err
	}

	token, err := s.tokens.Issue(ctx, store.ID, cashier.ID, kindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &Session{Cashier: *cashier, StoreID: store.ID, Token: token}, nil
}

func (s *Service) Login(ctx context.Context, in LoginInput) (*Session, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	cashier, err := s.cashiers.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cashier.PasswordHash), []byte(in.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ctx, cashier.StoreID, cashier.ID, kindAccess, s.accessTTL)
	if err != nil {
		return nil, err
	}
	return &Session{Cashier: *cashier, StoreID: cashier.StoreID, Token: token}, nil
}

// Validate resolves a bearer token to its cashier.
func (s *Service) Validate(ctx context.Context, token string) (*Session, error) {
	meta, ok := s.tokens.Validate(ctx, token, kindAccess)
	if !ok {
		return nil, ErrInvalidToken
	}
	cashier, err := s.cashiers.GetByID(ctx, meta.CashierID)
	if err != nil {
		return nil, ErrInvalidToken
	}
	return &Session{Cashier: *cashier, StoreID: meta.StoreID}, nil
}

// Logout revokes the bearer token so it stops working immediately.
func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
