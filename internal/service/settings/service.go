package settings

import (
	"context"
	"errors"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	settingsrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/settings"
)

// Service manages per-store receipt settings.
type Service struct {
	repo settingsrepo.Repository
}

func New(repo settingsrepo.Repository) *Service {
	return &Service{repo: repo}
}

// Patch is a partial update: nil fields keep their current value. This
// mirrors how the settings screen saves one toggle at a time.
type Patch struct {
	ShowLogo          *bool `json:"showLogo"`
	ShowAddress       *bool `json:"showAddress"`
	ShowPhone         *bool `json:"showPhone"`
	ShowTimestamp     *bool `json:"showTimestamp"`
	ShowCashier       *bool `json:"showCashier"`
	ShowReceiptNumber *bool `json:"showReceiptNumber"`
	ShowCharges       *bool `json:"showCharges"`
	ShowDiscount      *bool `json:"showDiscount"`
	ShowNote          *bool `json:"showNote"`

	BrandTitle          *string `json:"brandTitle"`
	Tagline             *string `json:"tagline"`
	ReceiptNumberPrefix *string `json:"receiptNumberPrefix"`
	ClosingNote         *string `json:"closingNote"`
}

// Get returns the store's settings, falling back to defaults when the
// store never saved any.
func (s *Service) Get(ctx context.Context, storeID string) (domain.ReceiptSettings, error) {
	saved, err := s.repo.Get(ctx, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultReceiptSettings(), nil
		}
		return domain.ReceiptSettings{}, err
	}
	return *saved, nil
}

// Update merges the patch over the current settings and persists the
// result.
func (s *Service) Update(ctx context.Context, storeID string, p Patch) (domain.ReceiptSettings, error) {
	current, err := s.Get(ctx, storeID)
	if err != nil {
		return domain.ReceiptSettings{}, err
	}

	applyBool(&current.ShowLogo, p.ShowLogo)
	applyBool(&current.ShowAddress, p.ShowAddress)
	applyBool(&current.ShowPhone, p.ShowPhone)
	applyBool(&current.ShowTimestamp, p.ShowTimestamp)
	applyBool(&current.ShowCashier, p.ShowCashier)
	applyBool(&current.ShowReceiptNumber, p.ShowReceiptNumber)
	applyBool(&current.ShowCharges, p.ShowCharges)
	applyBool(&current.ShowDiscount, p.ShowDiscount)
	applyBool(&current.ShowNote, p.ShowNote)

	applyString(&current.BrandTitle, p.BrandTitle)
	applyString(&current.Tagline, p.Tagline)
	applyString(&current.ReceiptNumberPrefix, p.ReceiptNumberPrefix)
	applyString(&current.ClosingNote, p.ClosingNote)

	if strings.TrimSpace(current.BrandTitle) == "" {
		current.BrandTitle = domain.DefaultReceiptSettings().BrandTitle
	}

	if err := s.repo.Save(ctx, storeID, current); err != nil {
		return domain.ReceiptSettings{}, err
	}
	return current, nil
}

func applyBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
