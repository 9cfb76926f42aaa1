package domain

import "time"

// ChargeKind selects how a charge or discount value is interpreted.
type ChargeKind string

const (
	// KindPercent applies the value as a percentage of the order subtotal.
	KindPercent ChargeKind = "percent"
	// KindFixed applies the value as a fixed currency amount.
	KindFixed ChargeKind = "fixed"
)

// Valid reports whether k is one of the two enumerated kinds.
func (k ChargeKind) Valid() bool {
	return k == KindPercent || k == KindFixed
}

// Charge is a named tax, fee or surcharge. Discounts share the same shape
// but live in their own collection and are single-select per order.
type Charge struct {
	ID        string     `json:"id"`
	StoreID   string     `json:"-"`
	Name      string     `json:"name"`
	Kind      ChargeKind `json:"type"`
	Value     float64    `json:"value"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"createdAt"`
}
