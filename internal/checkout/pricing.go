package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// ChargeAmount computes the nominal amount of one charge against the
// pre-discount subtotal. Percent charges are rounded half-up to the
// nearest whole currency unit, per charge, so summing multiple charges
// never accumulates rounding drift.
func ChargeAmount(c domain.Charge, subtotal int64) int64 {
	if c.Kind == domain.KindPercent {
		return decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromFloat(c.Value)).
			Div(decimal.NewFromInt(100)).
			Round(0).
			IntPart()
	}
	return decimal.NewFromFloat(c.Value).Round(0).IntPart()
}

// TotalCharges sums ChargeAmount over all selected charges.
func TotalCharges(charges []domain.Charge, subtotal int64) int64 {
	var sum int64
	for _, c := range charges {
		sum += ChargeAmount(c, subtotal)
	}
	return sum
}

// DiscountAmount computes the selected discount's nominal amount, or zero
// when no discount is selected.
func DiscountAmount(d *domain.Charge, subtotal int64) int64 {
	if d == nil {
		return 0
	}
	return ChargeAmount(*d, subtotal)
}

// GrandTotal is subtotal plus charges minus discount. The result is not
// clamped: a discount exceeding subtotal plus charges yields a negative
// total, matching the behavior the till has always had.
func GrandTotal(subtotal, totalCharges, discountAmount int64) int64 {
	return subtotal + totalCharges - discountAmount
}

// Change is tendered minus grand total. A negative result means the
// payment was insufficient; the caller decides how to present that.
func Change(tendered, grandTotal int64) int64 {
	return tendered - grandTotal
}

// ChargeLine is one charge or discount with its computed amount.
type ChargeLine struct {
	Name   string
	Kind   domain.ChargeKind
	Value  float64
	Amount int64
}

// Breakdown is the full monetary picture of an order.
type Breakdown struct {
	Subtotal      int64
	Charges       []ChargeLine
	ChargeTotal   int64
	Discount      *ChargeLine
	DiscountTotal int64
	Total         int64
	Tendered      int64
	Change        int64
}

// Price computes the Breakdown for the order's current state.
func Price(o *Order) Breakdown {
	subtotal := o.Subtotal()

	b := Breakdown{Subtotal: subtotal, Tendered: o.Tendered()}
	for _, c := range o.Charges() {
		amount := ChargeAmount(c, subtotal)
		b.Charges = append(b.Charges, ChargeLine{Name: c.Name, Kind: c.Kind, Value: c.Value, Amount: amount})
		b.ChargeTotal += amount
	}
	if d := o.Discount(); d != nil {
		amount := ChargeAmount(*d, subtotal)
		b.Discount = &ChargeLine{Name: d.Name, Kind: d.Kind, Value: d.Value, Amount: amount}
		b.DiscountTotal = amount
	}
	b.Total = GrandTotal(subtotal, b.ChargeTotal, b.DiscountTotal)
	b.Change = Change(b.Tendered, b.Total)
	return b
}
