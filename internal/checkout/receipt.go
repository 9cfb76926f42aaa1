package checkout

import (
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// Context carries the facts the composer cannot derive from the order
// itself. Empty fields degrade to omitted receipt lines, never errors.
type Context struct {
	Time          time.Time
	CashierName   string
	StoreName     string
	StoreAddress  string
	StorePhone    string
	ReceiptNumber string
}

// Row is a labeled text line, e.g. "Kasir: Admin".
type Row struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AmountRow is a labeled monetary line in the totals block.
type AmountRow struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Item is one rendered cart line.
type Item struct {
	Name      string `json:"name"`
	Quantity  int    `json:"qty"`
	UnitPrice int64  `json:"price"`
	Total     int64  `json:"total"`
}

// Receipt is the structured document handed to presenters. It carries no
// formatting for any particular output medium.
type Receipt struct {
	Header []string    `json:"header"`
	Meta   []Row       `json:"meta"`
	Items  []Item      `json:"items"`
	Totals []AmountRow `json:"totals"`
	Footer string      `json:"footer,omitempty"`
}

// Compose projects an order, its breakdown and the store's receipt
// settings into a Receipt. Each toggle gates its line independently;
// a line whose backing value is empty is omitted even when its toggle
// is on. The items block and the subtotal/total rows are unconditional.
func Compose(o *Order, b Breakdown, s domain.ReceiptSettings, ctx Context) Receipt {
	var r Receipt

	if s.ShowLogo {
		title := s.BrandTitle
		if title == "" {
			title = ctx.StoreName
		}
		if title != "" {
			r.Header = append(r.Header, title)
		}
		if s.Tagline != "" {
			r.Header = append(r.Header, s.Tagline)
		}
	}
	if s.ShowAddress && ctx.StoreAddress != "" {
		r.Header = append(r.Header, ctx.StoreAddress)
	}
	if s.ShowPhone && ctx.StorePhone != "" {
		r.Header = append(r.Header, ctx.StorePhone)
	}

	if s.ShowReceiptNumber && ctx.ReceiptNumber != "" {
		r.Meta = append(r.Meta, Row{Label: "No. Struk", Value: ctx.ReceiptNumber})
	}
	if s.ShowTimestamp && !ctx.Time.IsZero() {
		r.Meta = append(r.Meta, Row{Label: "Tanggal", Value: ctx.Time.Format("02 Jan 2006 15:04")})
	}
	if s.ShowCashier && ctx.CashierName != "" {
		r.Meta = append(r.Meta, Row{Label: "Kasir", Value: ctx.CashierName})
	}
	if name := o.CustomerName(); name != "" {
		r.Meta = append(r.Meta, Row{Label: "Pelanggan", Value: name})
	}
	if method := o.PaymentMethod(); method != "" {
		r.Meta = append(r.Meta, Row{Label: "Metode", Value: method})
	}

	for _, l := range o.Lines() {
		r.Items = append(r.Items, Item{
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total(),
		})
	}

	r.Totals = append(r.Totals, AmountRow{Label: "Subtotal", Amount: b.Subtotal})
	if s.ShowDiscount && b.Discount != nil {
		r.Totals = append(r.Totals, AmountRow{Label: "Diskon", Amount: b.DiscountTotal})
	}
	if s.ShowCharges && len(b.Charges) > 0 {
		r.Totals = append(r.Totals, AmountRow{Label: "Pajak", Amount: b.ChargeTotal})
	}
	r.Totals = append(r.Totals, AmountRow{Label: "Total", Amount: b.Total})
	if b.Tendered > 0 {
		r.Totals = append(r.Totals, AmountRow{Label: "Dibayar", Amount: b.Tendered})
		r.Totals = append(r.Totals, AmountRow{Label: "Kembalian", Amount: b.Change})
	}

	if s.ShowNote && s.ClosingNote != "" {
		r.Footer = s.ClosingNote
	}

	return r
}
