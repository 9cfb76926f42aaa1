package sale

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/rafirachmawan/kasir-pintar/internal/checkout"
	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	transactionrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/transaction"
)

// Service drives the checkout flow: it resolves catalog references,
// prices the order through the checkout package, and persists finalized
// sales.
type Service struct {
	products     productRepo
	charges      tariffRepo
	discounts    tariffRepo
	methods      methodRepo
	settings     settingsRepo
	transactions transactionrepo.Repository
	now          func() time.Time
}

type productRepo interface {
	GetByID(ctx context.Context, storeID, id string) (*domain.Product, error)
}

type tariffRepo interface {
	GetByID(ctx context.Context, storeID, id string) (*domain.Charge, error)
}

type methodRepo interface {
	GetByID(ctx context.Context, storeID, id string) (*domain.PaymentMethod, error)
}

type settingsRepo interface {
	Get(ctx context.Context, storeID string) (*domain.ReceiptSettings, error)
}

func New(products productRepo, charges, discounts tariffRepo, methods methodRepo, settings settingsRepo, transactions transactionrepo.Repository) *Service {
	return &Service{
		products:     products,
		charges:      charges,
		discounts:    discounts,
		methods:      methods,
		settings:     settings,
		transactions: transactions,
		now:          time.Now,
	}
}

type ItemInput struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"qty"`
}

// CheckoutInput is the request body of both preview and finalize.
type CheckoutInput struct {
	Items           []ItemInput `json:"items"`
	ChargeIDs       []string    `json:"chargeIds"`
	DiscountID      string      `json:"discountId"`
	PaymentMethodID string      `json:"paymentMethodId"`
	CustomerName    string      `json:"customerName"`
	Tendered        int64       `json:"tendered"`
}

// Preview is a priced but unpersisted order.
type Preview struct {
	Breakdown breakdownView    `json:"breakdown"`
	Receipt   checkout.Receipt `json:"receipt"`
}

// Result is a finalized sale.
type Result struct {
	Transaction domain.Transaction `json:"transaction"`
	Receipt     checkout.Receipt   `json:"receipt"`
}

// HistoryResult is a date-range listing with its income summary.
type HistoryResult struct {
	Transactions []domain.Transaction `json:"transactions"`
	Count        int                  `json:"count"`
	TotalIncome  int64                `json:"totalIncome"`
}

type breakdownView struct {
	Subtotal      int64 `json:"subtotal"`
	ChargeTotal   int64 `json:"chargeTotal"`
	DiscountTotal int64 `json:"discountTotal"`
	Total         int64 `json:"total"`
	Tendered      int64 `json:"tendered"`
	Change        int64 `json:"change"`
}

// buildOrder resolves every reference in the input against the store's
// catalog and assembles a checkout.Order. Validation failures surface as
// domain.ValidationError for the handler to return as 400s.
func (s *Service) buildOrder(ctx context.Context, storeID string, in CheckoutInput) (*checkout.Order, error) {
	if len(in.Items) == 0 {
		return nil, domain.Validation("items required")
	}

	order := checkout.NewOrder()
	resolved := make(map[string]domain.Product, len(in.Items))
	for _, item := range in.Items {
		if item.ProductID == "" {
			return nil, domain.Validation("productId required")
		}
		product, ok := resolved[item.ProductID]
		if !ok {
			p, err := s.products.GetByID(ctx, storeID, item.ProductID)
			if err != nil {
				if errors.Is(err, domain.ErrNotFound) {
					return nil, domain.Validationf("product %s not found", item.ProductID)
				}
				return nil, err
			}
			product = *p
			resolved[item.ProductID] = product
		}
		if err := order.AddItem(product, item.Quantity); err != nil {
			return nil, err
		}
	}
	// Stock is checked per line, after AddItem has merged repeated rows of
	// the same product into one quantity.
	for _, line := range order.Lines() {
		product := resolved[line.ProductID]
		if !product.InStock(line.Quantity) {
			return nil, domain.Validationf("insufficient stock for %s", product.Name)
		}
	}

	for _, id := range in.ChargeIDs {
		charge, err := s.charges.GetByID(ctx, storeID, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Validationf("charge %s not found", id)
			}
			return nil, err
		}
		if !charge.Active {
			return nil, domain.Validationf("charge %s is inactive", charge.Name)
		}
		order.SelectCharge(*charge)
	}

	if in.DiscountID != "" {
		discount, err := s.discounts.GetByID(ctx, storeID, in.DiscountID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Validationf("discount %s not found", in.DiscountID)
			}
			return nil, err
		}
		if !discount.Active {
			return nil, domain.Validationf("discount %s is inactive", discount.Name)
		}
		order.SelectDiscount(*discount)
	}

	if in.PaymentMethodID != "" {
		method, err := s.methods.GetByID(ctx, storeID, in.PaymentMethodID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.Validationf("payment method %s not found", in.PaymentMethodID)
			}
			return nil, err
		}
		if !method.Active {
			return nil, domain.Validationf("payment method %s is inactive", method.Name)
		}
		order.SetPaymentMethod(method.Name)
	}

	order.SetCustomerName(in.CustomerName)
	if in.Tendered < 0 {
		return nil, domain.Validation("tendered must not be negative")
	}
	order.SetTendered(in.Tendered)
	return order, nil
}

func (s *Service) receiptSettings(ctx context.Context, storeID string) (domain.ReceiptSettings, error) {
	saved, err := s.settings.Get(ctx, storeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultReceiptSettings(), nil
		}
		return domain.ReceiptSettings{}, err
	}
	return *saved, nil
}

// Preview prices the order and renders the receipt without touching the
// receipt counter, stock, or history.
func (s *Service) Preview(ctx context.Context, store *domain.Store, cashierName string, in CheckoutInput) (*Preview, error) {
	order, err := s.buildOrder(ctx, store.ID, in)
	if err != nil {
		return nil, err
	}
	cfg, err := s.receiptSettings(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	breakdown := checkout.Price(order)
	receipt := checkout.Compose(order, breakdown, cfg, checkout.Context{
		Time:         s.now(),
		CashierName:  cashierName,
		StoreName:    store.Name,
		StoreAddress: store.Address,
		StorePhone:   store.Phone,
		// No receipt number yet; it is allocated at finalization.
	})
	return &Preview{Breakdown: toView(breakdown), Receipt: receipt}, nil
}

// Checkout finalizes the sale: it allocates the next receipt number,
// deducts finite stock, and persists the immutable transaction record.
func (s *Service) Checkout(ctx context.Context, store *domain.Store, cashierName string, in CheckoutInput) (*Result, error) {
	order, err := s.buildOrder(ctx, store.ID, in)
	if err != nil {
		return nil, err
	}
	cfg, err := s.receiptSettings(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	breakdown := checkout.Price(order)

	items := make([]domain.TransactionItem, 0, len(order.Lines()))
	for _, l := range order.Lines() {
		items = append(items, domain.TransactionItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			Total:     l.Total(),
		})
	}
	charges := make([]domain.TransactionCharge, 0, len(breakdown.Charges))
	for _, c := range breakdown.Charges {
		charges = append(charges, domain.TransactionCharge{Name: c.Name, Kind: c.Kind, Value: c.Value, Amount: c.Amount})
	}
	var discount *domain.TransactionCharge
	if breakdown.Discount != nil {
		discount = &domain.TransactionCharge{
			Name:   breakdown.Discount.Name,
			Kind:   breakdown.Discount.Kind,
			Value:  breakdown.Discount.Value,
			Amount: breakdown.Discount.Amount,
		}
	}

	created, err := s.transactions.Finalize(ctx, transactionrepo.FinalizeInput{
		ID:            uuid.NewString(),
		StoreID:       store.ID,
		ReceiptPrefix: cfg.ReceiptNumberPrefix,
		CashierName:   cashierName,
		CustomerName:  order.CustomerName(),
		PaymentMethod: order.PaymentMethod(),
		Items:         items,
		Charges:       charges,
		Discount:      discount,
		Subtotal:      breakdown.Subtotal,
		ChargeTotal:   breakdown.ChargeTotal,
		DiscountTotal: breakdown.DiscountTotal,
		Total:         breakdown.Total,
		Tendered:      breakdown.Tendered,
		Change:        breakdown.Change,
	})
	if err != nil {
		return nil, err
	}

	receipt := checkout.Compose(order, breakdown, cfg, checkout.Context{
		Time:          created.CreatedAt,
		CashierName:   cashierName,
		StoreName:     store.Name,
		StoreAddress:  store.Address,
		StorePhone:    store.Phone,
		ReceiptNumber: created.ReceiptNumber,
	})
	return &Result{Transaction: *created, Receipt: receipt}, nil
}

// History lists finalized sales in a date range with the running income
// summary shown at the top of the history screen.
func (s *Service) History(ctx context.Context, storeID string, from, to time.Time) (*HistoryResult, error) {
	transactions, err := s.transactions.ListByRange(ctx, storeID, from, to)
	if err != nil {
		return nil, err
	}
	result := &HistoryResult{Transactions: transactions, Count: len(transactions)}
	for _, t := range transactions {
		result.TotalIncome += t.Total
	}
	return result, nil
}

// Detail loads one finalized sale with its items and adjustments.
func (s *Service) Detail(ctx context.Context, storeID, id string) (*domain.Transaction, error) {
	return s.transactions.GetByID(ctx, storeID, id)
}

// DailyReport aggregates revenue per day for the sales chart.
func (s *Service) DailyReport(ctx context.Context, storeID string, from, to time.Time) ([]transactionrepo.DailyTotal, error) {
	return s.transactions.DailyTotals(ctx, storeID, from, to)
}

func toView(b checkout.Breakdown) breakdownView {
	return breakdownView{
		Subtotal:      b.Subtotal,
		ChargeTotal:   b.ChargeTotal,
		DiscountTotal: b.DiscountTotal,
		Total:         b.Total,
		Tendered:      b.Tendered,
		Change:        b.Change,
	}
}
