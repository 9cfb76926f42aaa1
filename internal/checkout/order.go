package checkout

import (
	"errors"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// ErrInvalidQuantity is returned when a caller tries to add a non-positive
// quantity to an order.
var ErrInvalidQuantity = errors.New("quantity must be positive")

// Line is one cart row: a product reference with a positive quantity.
type Line struct {
	ProductID string
	Name      string
	Unit      string
	UnitPrice int64
	Quantity  int
}

// Total returns quantity times unit price for this line.
func (l Line) Total() int64 {
	return int64(l.Quantity) * l.UnitPrice
}

// Order accumulates cart state for a single checkout session. It is not
// safe for concurrent use; each session owns its own Order.
type Order struct {
	lines        []Line
	charges      []domain.Charge
	discount     *domain.Charge
	customerName string
	payment      string
	tendered     int64
}

func NewOrder() *Order {
	return &Order{}
}

// AddItem adds qty units of the product. An existing line for the same
// product is incremented rather than duplicated.
func (o *Order) AddItem(p domain.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range o.lines {
		if o.lines[i].ProductID == p.ID {
			o.lines[i].Quantity += qty
			return nil
		}
	}
	o.lines = append(o.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
	return nil
}

// RemoveItem deletes the line for productID. Absent lines are a no-op.
func (o *Order) RemoveItem(productID string) {
	for i := range o.lines {
		if o.lines[i].ProductID == productID {
			o.lines = append(o.lines[:i], o.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of an existing line. A quantity of
// zero or less removes the line.
func (o *Order) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		o.RemoveItem(productID)
		return
	}
	for i := range o.lines {
		if o.lines[i].ProductID == productID {
			o.lines[i].Quantity = qty
			return
		}
	}
}

// Subtotal sums quantity times unit price over all lines.
func (o *Order) Subtotal() int64 {
	var sum int64
	for _, l := range o.lines {
		sum += l.Total()
	}
	return sum
}

// Lines returns a snapshot of the cart in insertion order. Mutating the
// returned slice does not affect the order.
func (o *Order) Lines() []Line {
	out := make([]Line, len(o.lines))
	copy(out, o.lines)
	return out
}

// Empty reports whether the cart has no lines.
func (o *Order) Empty() bool {
	return len(o.lines) == 0
}

// SelectCharge adds a charge to the order. Selecting the same charge id
// twice is a no-op.
func (o *Order) SelectCharge(c domain.Charge) {
	for _, existing := range o.charges {
		if existing.ID == c.ID {
			return
		}
	}
	o.charges = append(o.charges, c)
}

// UnselectCharge removes a selected charge by id.
func (o *Order) UnselectCharge(id string) {
	for i := range o.charges {
		if o.charges[i].ID == id {
			o.charges = append(o.charges[:i], o.charges[i+1:]...)
			return
		}
	}
}

// Charges returns a snapshot of the selected charges.
func (o *Order) Charges() []domain.Charge {
	out := make([]domain.Charge, len(o.charges))
	copy(out, o.charges)
	return out
}

// SelectDiscount sets the order's discount, replacing any previous one.
// At most one discount is active per order.
func (o *Order) SelectDiscount(d domain.Charge) {
	copied := d
	o.discount = &copied
}

// ClearDiscount removes the selected discount.
func (o *Order) ClearDiscount() {
	o.discount = nil
}

// Discount returns the selected discount, or nil.
func (o *Order) Discount() *domain.Charge {
	if o.discount == nil {
		return nil
	}
	copied := *o.discount
	return &copied
}

func (o *Order) SetCustomerName(name string) { o.customerName = name }

func (o *Order) CustomerName() string { return o.customerName }

func (o *Order) SetPaymentMethod(name string) { o.payment = name }

func (o *Order) PaymentMethod() string { return o.payment }

// SetTendered records the amount handed over by the customer.
func (o *Order) SetTendered(amount int64) { o.tendered = amount }

func (o *Order) Tendered() int64 { return o.tendered }
