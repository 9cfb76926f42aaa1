package tariff

import (
	"context"
	"testing"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	chargerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/charge"
)

type stubCharges struct {
	created []chargerepo.CreateChargeInput
	updated []chargerepo.UpdateChargeInput
}

func (s *stubCharges) List(_ context.Context, _ string, _ bool) ([]domain.Charge, error) {
	return nil, nil
}

func (s *stubCharges) GetByID(_ context.Context, _, _ string) (*domain.Charge, error) {
	return nil, domain.ErrNotFound
}

func (s *stubCharges) Create(_ context.Context, in chargerepo.CreateChargeInput) (*domain.Charge, error) {
	s.created = append(s.created, in)
	return &domain.Charge{ID: "c-1", Name: in.Name, Kind: in.Kind, Value: in.Value, Active: in.Active}, nil
}

func (s *stubCharges) Update(_ context.Context, _, id string, in chargerepo.UpdateChargeInput) (*domain.Charge, error) {
	s.updated = append(s.updated, in)
	return &domain.Charge{ID: id, Name: in.Name, Kind: in.Kind, Value: in.Value, Active: in.Active}, nil
}

func (s *stubCharges) Delete(_ context.Context, _, _ string) error { return nil }

func TestCreateChargeDefaultsActive(t *testing.T) {
	charges := &stubCharges{}
	svc := New(charges, &stubCharges{})

	created, err := svc.CreateCharge(context.Background(), "s1", TariffInput{
		Name:  "PPN",
		Kind:  "percent",
		Value: 10,
	})
	if err != nil {
		t.Fatalf("CreateCharge: %v", err)
	}
	if !created.Active {
		t.Fatal("charges default to active")
	}
	if created.Kind != domain.KindPercent {
		t.Fatalf("kind = %q, want percent", created.Kind)
	}
}

func TestCreateChargeNormalizesKind(t *testing.T) {
	charges := &stubCharges{}
	svc := New(charges, &stubCharges{})

	created, err := svc.CreateCharge(context.Background(), "s1", TariffInput{
		Name:  "Biaya Layanan",
		Kind:  " Fixed ",
		Value: 2000,
	})
	if err != nil {
		t.Fatalf("CreateCharge: %v", err)
	}
	if created.Kind != domain.KindFixed {
		t.Fatalf("kind = %q, want fixed", created.Kind)
	}
}

func TestCreateChargeRejectsBadKind(t *testing.T) {
	svc := New(&stubCharges{}, &stubCharges{})

	_, err := svc.CreateCharge(context.Background(), "s1", TariffInput{Name: "X", Kind: "ratio", Value: 1})
	if err == nil {
		t.Fatal("expected error for invalid kind")
	}
}

func TestCreateChargeRejectsNegativeValue(t *testing.T) {
	svc := New(&stubCharges{}, &stubCharges{})

	_, err := svc.CreateCharge(context.Background(), "s1", TariffInput{Name: "X", Kind: "fixed", Value: -5})
	if err == nil {
		t.Fatal("expected error for negative value")
	}
}

func TestDiscountsUseTheirOwnCollection(t *testing.T) {
	charges := &stubCharges{}
	discounts := &stubCharges{}
	svc := New(charges, discounts)

	_, err := svc.CreateDiscount(context.Background(), "s1", TariffInput{Name: "Promo", Kind: "fixed", Value: 3000})
	if err != nil {
		t.Fatalf("CreateDiscount: %v", err)
	}
	if len(charges.created) != 0 {
		t.Fatal("discount landed in the charges collection")
	}
	if len(discounts.created) != 1 {
		t.Fatalf("expected 1 discount created, got %d", len(discounts.created))
	}
}
