package checkout

import (
	"testing"
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

func sampleOrder() *Order {
	o := NewOrder()
	_ = o.AddItem(domain.Product{ID: "p1", Name: "Kopi", Price: 10000}, 2)
	_ = o.AddItem(domain.Product{ID: "p2", Name: "Teh", Price: 5000}, 1)
	return o
}

func sampleContext() Context {
	return Context{
		Time:          time.Date(2026, 2, 4, 17, 56, 0, 0, time.UTC),
		CashierName:   "Admin",
		StoreName:     "Mie Bangladesh",
		StoreAddress:  "Jl. Merdeka 1",
		StorePhone:    "08123456789",
		ReceiptNumber: "TRX-001",
	}
}

func findAmount(rows []AmountRow, label string) (int64, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r.Amount, true
		}
	}
	return 0, false
}

func findMeta(rows []Row, label string) (string, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r.Value, true
		}
	}
	return "", false
}

func TestComposeFullReceipt(t *testing.T) {
	o := sampleOrder()
	o.SelectCharge(domain.Charge{ID: "c1", Name: "PPN", Kind: domain.KindPercent, Value: 10})
	o.SelectDiscount(domain.Charge{ID: "d1", Name: "Member", Kind: domain.KindFixed, Value: 2000})
	o.SetTendered(30000)
	o.SetCustomerName("Budi")
	o.SetPaymentMethod("Tunai")

	s := domain.DefaultReceiptSettings()
	s.BrandTitle = "MIE BANGLADESH"
	s.Tagline = "Pedasnya juara"

	r := Compose(o, Price(o), s, sampleContext())

	if len(r.Header) != 4 {
		t.Fatalf("expected 4 header lines, got %v", r.Header)
	}
	if r.Header[0] != "MIE BANGLADESH" || r.Header[1] != "Pedasnya juara" {
		t.Fatalf("unexpected header: %v", r.Header)
	}

	if v, ok := findMeta(r.Meta, "No. Struk"); !ok || v != "TRX-001" {
		t.Fatalf("receipt number row missing or wrong: %v", r.Meta)
	}
	if v, ok := findMeta(r.Meta, "Tanggal"); !ok || v != "04 Feb 2026 17:56" {
		t.Fatalf("timestamp row missing or wrong: %v", r.Meta)
	}
	if v, ok := findMeta(r.Meta, "Kasir"); !ok || v != "Admin" {
		t.Fatalf("cashier row missing or wrong: %v", r.Meta)
	}
	if v, ok := findMeta(r.Meta, "Pelanggan"); !ok || v != "Budi" {
		t.Fatalf("customer row missing or wrong: %v", r.Meta)
	}

	if len(r.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", r.Items)
	}
	if r.Items[0].Name != "Kopi" || r.Items[0].Total != 20000 {
		t.Fatalf("unexpected first item: %+v", r.Items[0])
	}

	for label, want := range map[string]int64{
		"Subtotal":  25000,
		"Diskon":    2000,
		"Pajak":     2500,
		"Total":     25500,
		"Dibayar":   30000,
		"Kembalian": 4500,
	} {
		if got, ok := findAmount(r.Totals, label); !ok || got != want {
			t.Fatalf("totals row %q = %d (present=%v), want %d", label, got, ok, want)
		}
	}

	if r.Footer != s.ClosingNote {
		t.Fatalf("footer = %q, want closing note", r.Footer)
	}
}

func TestComposeDiscountToggleControlsPresence(t *testing.T) {
	o := sampleOrder()
	o.SelectDiscount(domain.Charge{ID: "d1", Name: "Member", Kind: domain.KindFixed, Value: 2000})

	s := domain.DefaultReceiptSettings()
	s.ShowDiscount = false
	r := Compose(o, Price(o), s, sampleContext())
	if _, ok := findAmount(r.Totals, "Diskon"); ok {
		t.Fatalf("discount row rendered despite toggle off: %+v", r.Totals)
	}

	// Toggle on with a zero-value discount still renders a 0 row: the
	// toggle controls presence, not magnitude.
	o2 := sampleOrder()
	o2.SelectDiscount(domain.Charge{ID: "d2", Name: "Promo", Kind: domain.KindFixed, Value: 0})
	s.ShowDiscount = true
	r2 := Compose(o2, Price(o2), s, sampleContext())
	if got, ok := findAmount(r2.Totals, "Diskon"); !ok || got != 0 {
		t.Fatalf("zero discount row missing: %+v", r2.Totals)
	}
}

func TestComposeChargeToggle(t *testing.T) {
	o := sampleOrder()
	o.SelectCharge(domain.Charge{ID: "c1", Name: "PPN", Kind: domain.KindPercent, Value: 10})

	s := domain.DefaultReceiptSettings()
	s.ShowCharges = false
	r := Compose(o, Price(o), s, sampleContext())
	if _, ok := findAmount(r.Totals, "Pajak"); ok {
		t.Fatalf("charge row rendered despite toggle off")
	}
	// Subtotal and total are never gated.
	if _, ok := findAmount(r.Totals, "Subtotal"); !ok {
		t.Fatalf("subtotal row missing")
	}
	if got, ok := findAmount(r.Totals, "Total"); !ok || got != 27500 {
		t.Fatalf("total row = %d, want 27500", got)
	}
}

func TestComposeEmptyBackingValueWins(t *testing.T) {
	o := sampleOrder()
	s := domain.DefaultReceiptSettings()
	ctx := sampleContext()
	ctx.StoreAddress = ""

	r := Compose(o, Price(o), s, ctx)
	for _, h := range r.Header {
		if h == "" {
			t.Fatalf("blank header line rendered: %v", r.Header)
		}
	}
	// ShowAddress is on, but there is nothing to show.
	if len(r.Header) != 2 {
		t.Fatalf("expected title and phone only, got %v", r.Header)
	}
}

func TestComposeMissingContextDegrades(t *testing.T) {
	o := sampleOrder()
	s := domain.DefaultReceiptSettings()
	s.BrandTitle = ""
	s.ClosingNote = ""

	r := Compose(o, Price(o), s, Context{})
	if len(r.Meta) != 0 {
		t.Fatalf("expected no meta rows without context, got %v", r.Meta)
	}
	if len(r.Items) != 2 {
		t.Fatalf("items block must render regardless of context")
	}
	if r.Footer != "" {
		t.Fatalf("footer rendered without note text")
	}
}

func TestComposeBrandTitleFallsBackToStoreName(t *testing.T) {
	o := sampleOrder()
	s := domain.DefaultReceiptSettings()
	s.BrandTitle = ""

	r := Compose(o, Price(o), s, sampleContext())
	if len(r.Header) == 0 || r.Header[0] != "Mie Bangladesh" {
		t.Fatalf("expected store name fallback, got %v", r.Header)
	}
}
