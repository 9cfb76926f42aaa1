package transaction

import (
	"context"
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

// FinalizeInput carries everything needed to persist a closed sale. The
// receipt number is allocated inside the same database transaction as the
// insert so concurrent checkouts never share a number.
type FinalizeInput struct {
	ID            string
	StoreID       string
	ReceiptPrefix string
	CashierName   string
	CustomerName  string
	PaymentMethod string
	Items         []domain.TransactionItem
	Charges       []domain.TransactionCharge
	Discount      *domain.TransactionCharge
	Subtotal      int64
	ChargeTotal   int64
	DiscountTotal int64
	Total         int64
	Tendered      int64
	Change        int64
}

// DailyTotal is one bucket of the per-day sales report.
type DailyTotal struct {
	Date    time.Time `json:"date"`
	Count   int       `json:"count"`
	Revenue int64     `json:"revenue"`
}

// Repository provides access to finalized sales.
type Repository interface {
	Finalize(ctx context.Context, in FinalizeInput) (*domain.Transaction, error)
	ListByRange(ctx context.Context, storeID string, from, to time.Time) ([]domain.Transaction, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.Transaction, error)
	DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]DailyTotal, error)
}
