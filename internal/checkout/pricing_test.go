package checkout

import (
	"testing"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

func percent(v float64) domain.Charge {
	return domain.Charge{Kind: domain.KindPercent, Value: v}
}

func fixed(v float64) domain.Charge {
	return domain.Charge{Kind: domain.KindFixed, Value: v}
}

func TestChargeAmountFixedIgnoresSubtotal(t *testing.T) {
	c := fixed(1500)
	for _, subtotal := range []int64{0, 100, 25000, 1_000_000} {
		if got := ChargeAmount(c, subtotal); got != 1500 {
			t.Fatalf("fixed charge on subtotal %d = %d, want 1500", subtotal, got)
		}
	}
}

func TestChargeAmountPercentBounds(t *testing.T) {
	if got := ChargeAmount(percent(0), 25000); got != 0 {
		t.Fatalf("0%% of 25000 = %d, want 0", got)
	}
	if got := ChargeAmount(percent(100), 25000); got != 25000 {
		t.Fatalf("100%% of 25000 = %d, want 25000", got)
	}
	if got := ChargeAmount(percent(10), 25000); got != 2500 {
		t.Fatalf("10%% of 25000 = %d, want 2500", got)
	}
}

func TestChargeAmountRoundsHalfUp(t *testing.T) {
	// 1% of 50 = 0.5, which rounds up to 1.
	if got := ChargeAmount(percent(1), 50); got != 1 {
		t.Fatalf("1%% of 50 = %d, want 1", got)
	}
	// 2.5% of 25 = 0.625, which rounds up to 1.
	if got := ChargeAmount(percent(2.5), 25); got != 1 {
		t.Fatalf("2.5%% of 25 = %d, want 1", got)
	}
	// 1% of 40 = 0.4, which rounds down to 0.
	if got := ChargeAmount(percent(1), 40); got != 0 {
		t.Fatalf("1%% of 40 = %d, want 0", got)
	}
}

func TestTotalChargesRoundsPerCharge(t *testing.T) {
	// Two 0.5% charges on 100 are each 0.5 -> 1, so the total is 2.
	// Rounding the sum instead would give 1.
	charges := []domain.Charge{percent(0.5), percent(0.5)}
	if got := TotalCharges(charges, 100); got != 2 {
		t.Fatalf("per-charge rounding broken: total = %d, want 2", got)
	}
}

func TestDiscountAmount(t *testing.T) {
	if got := DiscountAmount(nil, 25000); got != 0 {
		t.Fatalf("nil discount = %d, want 0", got)
	}
	d := fixed(2000)
	if got := DiscountAmount(&d, 25000); got != 2000 {
		t.Fatalf("fixed discount = %d, want 2000", got)
	}
}

func TestGrandTotalScenario(t *testing.T) {
	// Cart {10000 x2, 5000 x1}, 10% charge, fixed 2000 discount.
	subtotal := int64(25000)
	charges := TotalCharges([]domain.Charge{percent(10)}, subtotal)
	d := fixed(2000)
	discount := DiscountAmount(&d, subtotal)

	total := GrandTotal(subtotal, charges, discount)
	if total != 25500 {
		t.Fatalf("grand total = %d, want 25500", total)
	}
	if got := Change(30000, total); got != 4500 {
		t.Fatalf("change from 30000 = %d, want 4500", got)
	}
	if got := Change(20000, total); got != -5500 {
		t.Fatalf("change from 20000 = %d, want -5500", got)
	}
	if got := Change(total, total); got != 0 {
		t.Fatalf("exact payment change = %d, want 0", got)
	}
}

func TestGrandTotalNotClampedAtZero(t *testing.T) {
	// A discount exceeding subtotal plus charges goes negative; the till
	// has always behaved this way and callers must handle it.
	if got := GrandTotal(25000, 0, 30000); got != -5000 {
		t.Fatalf("grand total = %d, want -5000", got)
	}
}

func TestGrandTotalMonotonic(t *testing.T) {
	base := GrandTotal(25000, 1000, 500)
	if GrandTotal(25000, 2000, 500) < base {
		t.Fatalf("grand total must not decrease when charges grow")
	}
	if GrandTotal(25000, 1000, 1500) > base {
		t.Fatalf("grand total must not increase when discount grows")
	}
}

func TestPriceBreakdown(t *testing.T) {
	o := NewOrder()
	_ = o.AddItem(domain.Product{ID: "p1", Name: "Kopi", Price: 10000}, 2)
	_ = o.AddItem(domain.Product{ID: "p2", Name: "Teh", Price: 5000}, 1)
	o.SelectCharge(domain.Charge{ID: "c1", Name: "PPN", Kind: domain.KindPercent, Value: 10})
	o.SelectDiscount(domain.Charge{ID: "d1", Name: "Member", Kind: domain.KindFixed, Value: 2000})
	o.SetTendered(30000)

	b := Price(o)
	if b.Subtotal != 25000 {
		t.Fatalf("subtotal = %d, want 25000", b.Subtotal)
	}
	if len(b.Charges) != 1 || b.Charges[0].Amount != 2500 || b.ChargeTotal != 2500 {
		t.Fatalf("unexpected charge lines: %+v", b.Charges)
	}
	if b.Discount == nil || b.Discount.Amount != 2000 || b.DiscountTotal != 2000 {
		t.Fatalf("unexpected discount line: %+v", b.Discount)
	}
	if b.Total != 25500 {
		t.Fatalf("total = %d, want 25500", b.Total)
	}
	if b.Change != 4500 {
		t.Fatalf("change = %d, want 4500", b.Change)
	}
}
