package domain

import (
	"fmt"
	"time"
)

// FormatReceiptNumber renders a receipt sequence with the store's prefix,
// e.g. seq 1 with prefix "TRX-" becomes "TRX-001". Sequences beyond three
// digits widen naturally.
func FormatReceiptNumber(prefix string, seq int64) string {
	return fmt.Sprintf("%s%03d", prefix, seq)
}

// Transaction is a finalized sale. It snapshots everything needed to
// re-render the receipt; later catalog edits must not change history.
type Transaction struct {
	ID            string              `json:"id"`
	StoreID       string              `json:"-"`
	ReceiptNumber string              `json:"receiptNumber"`
	CashierName   string              `json:"cashierName,omitempty"`
	CustomerName  string              `json:"customerName,omitempty"`
	PaymentMethod string              `json:"paymentMethod,omitempty"`
	Items         []TransactionItem   `json:"items"`
	Charges       []TransactionCharge `json:"charges,omitempty"`
	Discount      *TransactionCharge  `json:"discount,omitempty"`
	Subtotal      int64               `json:"subtotal"`
	ChargeTotal   int64               `json:"chargeTotal"`
	DiscountTotal int64               `json:"discountTotal"`
	Total         int64               `json:"total"`
	Tendered      int64               `json:"tendered"`
	Change        int64               `json:"change"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// TransactionItem is a cart line frozen at sale time.
type TransactionItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"qty"`
	UnitPrice int64  `json:"price"`
	Total     int64  `json:"total"`
}

// TransactionCharge is a charge or discount frozen at sale time together
// with the amount it contributed.
type TransactionCharge struct {
	Name   string     `json:"name"`
	Kind   ChargeKind `json:"type"`
	Value  float64    `json:"value"`
	Amount int64      `json:"amount"`
}
