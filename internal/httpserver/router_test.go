package httpserver

import (
	"context"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	categoryrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/category"
	chargerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/charge"
	paymentrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/payment"
	productrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/product"
	storerepo "github.com/rafirachmawan/kasir-pintar/internal/repository/store"
	supplierrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/supplier"
	tokenrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/token"
	transactionrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/transaction"
	"github.com/rafirachmawan/kasir-pintar/internal/service/cashier"
	"github.com/rafirachmawan/kasir-pintar/internal/service/catalog"
	"github.com/rafirachmawan/kasir-pintar/internal/service/category"
	"github.com/rafirachmawan/kasir-pintar/internal/service/payment"
	"github.com/rafirachmawan/kasir-pintar/internal/service/sale"
	"github.com/rafirachmawan/kasir-pintar/internal/service/settings"
	"github.com/rafirachmawan/kasir-pintar/internal/service/supplier"
	"github.com/rafirachmawan/kasir-pintar/internal/service/tariff"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// In-memory repositories backing router tests. They implement just
// enough behavior for the flows under test.

type memStores struct {
	byKey    map[string]*domain.Store
	seq      int
	cashiers *memCashiers
}

func newMemStores(cashiers *memCashiers) *memStores {
	return &memStores{byKey: map[string]*domain.Store{}, cashiers: cashiers}
}

func (m *memStores) CreateWithOwner(_ context.Context, in storerepo.CreateStoreInput, owner domain.Cashier) (*domain.Store, *domain.Cashier, error) {
	if _, exists := m.byKey[in.Key]; exists {
		return nil, nil, storerepo.ErrKeyTaken
	}
	if _, exists := m.cashiers.byEmail[owner.Email]; exists {
		return nil, nil, storerepo.ErrEmailTaken
	}
	m.seq++
	s := &domain.Store{
		ID:      "store-" + strconv.Itoa(m.seq),
		Key:     in.Key,
		Name:    in.Name,
		Address: in.Address,
		Phone:   in.Phone,
		Email:   in.Email,
	}
	m.cashiers.seq++
	owner.ID = "cashier-" + strconv.Itoa(m.cashiers.seq)
	owner.StoreID = s.ID
	m.byKey[in.Key] = s
	m.cashiers.byEmail[owner.Email] = &owner
	return s, &owner, nil
}

func (m *memStores) GetByKey(_ context.Context, key string) (*domain.Store, error) {
	s, ok := m.byKey[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *memStores) Update(_ context.Context, id string, in storerepo.UpdateStoreInput) (*domain.Store, error) {
	for _, s := range m.byKey {
		if s.ID == id {
			s.Name = in.Name
			s.Address = in.Address
			s.Phone = in.Phone
			s.Email = in.Email
			return s, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memCashiers struct {
	byEmail map[string]*domain.Cashier
	seq     int
}

func newMemCashiers() *memCashiers { return &memCashiers{byEmail: map[string]*domain.Cashier{}} }

func (m *memCashiers) GetByEmail(_ context.Context, email string) (*domain.Cashier, error) {
	c, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *memCashiers) GetByID(_ context.Context, id string) (*domain.Cashier, error) {
	for _, c := range m.byEmail {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domain.ErrNotFound
}

type memTokens struct {
	byToken map[string]tokenrepo.Token
}

func newMemTokens() *memTokens { return &memTokens{byToken: map[string]tokenrepo.Token{}} }

func (m *memTokens) Create(_ context.Context, t tokenrepo.Token) error {
	if _, exists := m.byToken[t.Token]; exists {
		return domain.ErrAlreadyExists
	}
	m.byToken[t.Token] = t
	return nil
}

func (m *memTokens) Get(_ context.Context, token string) (*tokenrepo.Token, error) {
	t, ok := m.byToken[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &t, nil
}

func (m *memTokens) Delete(_ context.Context, token string) error {
	delete(m.byToken, token)
	return nil
}

type memProducts struct {
	byID map[string]*domain.Product
	seq  int
}

func newMemProducts() *memProducts { return &memProducts{byID: map[string]*domain.Product{}} }

func (m *memProducts) List(_ context.Context, storeID string) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.byID {
		if p.StoreID == storeID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memProducts) GetByID(_ context.Context, storeID, id string) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok || p.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *memProducts) Create(_ context.Context, in productrepo.CreateProductInput) (*domain.Product, error) {
	m.seq++
	p := &domain.Product{
		ID:           "product-" + strconv.Itoa(m.seq),
		StoreID:      in.StoreID,
		Name:         in.Name,
		Price:        in.Price,
		Unit:         in.Unit,
		CategoryID:   in.CategoryID,
		CategoryName: in.CategoryName,
		ImageURL:     in.ImageURL,
		Unlimited:    in.Unlimited,
		Stock:        in.Stock,
	}
	m.byID[p.ID] = p
	return p, nil
}

func (m *memProducts) Update(_ context.Context, storeID, id string, in productrepo.UpdateProductInput) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok || p.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	p.Name = in.Name
	p.Price = in.Price
	p.Unit = in.Unit
	p.CategoryID = in.CategoryID
	p.CategoryName = in.CategoryName
	p.ImageURL = in.ImageURL
	return p, nil
}

func (m *memProducts) Delete(_ context.Context, storeID, id string) error {
	p, ok := m.byID[id]
	if !ok || p.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memProducts) SetStock(_ context.Context, storeID, id string, unlimited bool, stock int) (*domain.Product, error) {
	p, ok := m.byID[id]
	if !ok || p.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	p.Unlimited = unlimited
	p.Stock = stock
	return p, nil
}

func (m *memProducts) Upsert(_ context.Context, p domain.Product) (*domain.Product, error) {
	for _, existing := range m.byID {
		if existing.StoreID == p.StoreID && existing.Name == p.Name {
			existing.Price = p.Price
			return existing, nil
		}
	}
	m.seq++
	p.ID = "product-" + strconv.Itoa(m.seq)
	m.byID[p.ID] = &p
	return &p, nil
}

type memCategories struct {
	byID map[string]*domain.Category
	seq  int
}

func newMemCategories() *memCategories { return &memCategories{byID: map[string]*domain.Category{}} }

func (m *memCategories) List(_ context.Context, storeID string) ([]domain.Category, error) {
	var out []domain.Category
	for _, c := range m.byID {
		if c.StoreID == storeID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (m *memCategories) GetByID(_ context.Context, storeID, id string) (*domain.Category, error) {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *memCategories) Create(_ context.Context, in categoryrepo.CreateCategoryInput) (*domain.Category, error) {
	m.seq++
	c := &domain.Category{ID: "category-" + strconv.Itoa(m.seq), StoreID: in.StoreID, Name: in.Name, Icon: in.Icon}
	m.byID[c.ID] = c
	return c, nil
}

func (m *memCategories) Update(_ context.Context, storeID, id, name, icon string) (*domain.Category, error) {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	c.Name = name
	c.Icon = icon
	return c, nil
}

func (m *memCategories) Delete(_ context.Context, storeID, id string) error {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memCharges struct {
	prefix string
	byID   map[string]*domain.Charge
	seq    int
}

func newMemCharges(prefix string) *memCharges {
	return &memCharges{prefix: prefix, byID: map[string]*domain.Charge{}}
}

func (m *memCharges) List(_ context.Context, storeID string, activeOnly bool) ([]domain.Charge, error) {
	var out []domain.Charge
	for _, c := range m.byID {
		if c.StoreID != storeID {
			continue
		}
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}

func (m *memCharges) GetByID(_ context.Context, storeID, id string) (*domain.Charge, error) {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

func (m *memCharges) Create(_ context.Context, in chargerepo.CreateChargeInput) (*domain.Charge, error) {
	m.seq++
	c := &domain.Charge{
		ID:      m.prefix + "-" + strconv.Itoa(m.seq),
		StoreID: in.StoreID,
		Name:    in.Name,
		Kind:    in.Kind,
		Value:   in.Value,
		Active:  in.Active,
	}
	m.byID[c.ID] = c
	return c, nil
}

func (m *memCharges) Update(_ context.Context, storeID, id string, in chargerepo.UpdateChargeInput) (*domain.Charge, error) {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	c.Name = in.Name
	c.Kind = in.Kind
	c.Value = in.Value
	c.Active = in.Active
	return c, nil
}

func (m *memCharges) Delete(_ context.Context, storeID, id string) error {
	c, ok := m.byID[id]
	if !ok || c.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memMethods struct {
	byID map[string]*domain.PaymentMethod
	seq  int
}

func newMemMethods() *memMethods { return &memMethods{byID: map[string]*domain.PaymentMethod{}} }

func (m *memMethods) List(_ context.Context, storeID string, activeOnly bool) ([]domain.PaymentMethod, error) {
	var out []domain.PaymentMethod
	for _, pm := range m.byID {
		if pm.StoreID != storeID {
			continue
		}
		if activeOnly && !pm.Active {
			continue
		}
		out = append(out, *pm)
	}
	return out, nil
}

func (m *memMethods) GetByID(_ context.Context, storeID, id string) (*domain.PaymentMethod, error) {
	pm, ok := m.byID[id]
	if !ok || pm.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return pm, nil
}

func (m *memMethods) Create(_ context.Context, in paymentrepo.CreateMethodInput) (*domain.PaymentMethod, error) {
	m.seq++
	pm := &domain.PaymentMethod{
		ID:        "method-" + strconv.Itoa(m.seq),
		StoreID:   in.StoreID,
		Name:      in.Name,
		Active:    in.Active,
		IsDefault: in.IsDefault,
	}
	m.byID[pm.ID] = pm
	return pm, nil
}

func (m *memMethods) Update(_ context.Context, storeID, id string, in paymentrepo.UpdateMethodInput) (*domain.PaymentMethod, error) {
	pm, ok := m.byID[id]
	if !ok || pm.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	pm.Name = in.Name
	pm.Active = in.Active
	pm.IsDefault = in.IsDefault
	return pm, nil
}

func (m *memMethods) Delete(_ context.Context, storeID, id string) error {
	pm, ok := m.byID[id]
	if !ok || pm.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memMethods) ClearDefault(_ context.Context, storeID string) error {
	for _, pm := range m.byID {
		if pm.StoreID == storeID {
			pm.IsDefault = false
		}
	}
	return nil
}

type memSuppliers struct {
	byID map[string]*domain.Supplier
	seq  int
}

func newMemSuppliers() *memSuppliers { return &memSuppliers{byID: map[string]*domain.Supplier{}} }

func (m *memSuppliers) List(_ context.Context, storeID string) ([]domain.Supplier, error) {
	var out []domain.Supplier
	for _, s := range m.byID {
		if s.StoreID == storeID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memSuppliers) Create(_ context.Context, in supplierrepo.CreateSupplierInput) (*domain.Supplier, error) {
	m.seq++
	s := &domain.Supplier{ID: "supplier-" + strconv.Itoa(m.seq), StoreID: in.StoreID, Name: in.Name, Phone: in.Phone, Address: in.Address}
	m.byID[s.ID] = s
	return s, nil
}

func (m *memSuppliers) Update(_ context.Context, storeID, id, name, phone, address string) (*domain.Supplier, error) {
	s, ok := m.byID[id]
	if !ok || s.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	s.Name = name
	s.Phone = phone
	s.Address = address
	return s, nil
}

func (m *memSuppliers) Delete(_ context.Context, storeID, id string) error {
	s, ok := m.byID[id]
	if !ok || s.StoreID != storeID {
		return domain.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memSettings struct {
	byStore map[string]domain.ReceiptSettings
}

func newMemSettings() *memSettings { return &memSettings{byStore: map[string]domain.ReceiptSettings{}} }

func (m *memSettings) Get(_ context.Context, storeID string) (*domain.ReceiptSettings, error) {
	s, ok := m.byStore[storeID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &s, nil
}

func (m *memSettings) Save(_ context.Context, storeID string, s domain.ReceiptSettings) error {
	m.byStore[storeID] = s
	return nil
}

type memTransactions struct {
	byID     map[string]*domain.Transaction
	seq      int64
	products *memProducts
}

func newMemTransactions(products *memProducts) *memTransactions {
	return &memTransactions{byID: map[string]*domain.Transaction{}, products: products}
}

func (m *memTransactions) Finalize(_ context.Context, in transactionrepo.FinalizeInput) (*domain.Transaction, error) {
	m.seq++
	t := &domain.Transaction{
		ID:            in.ID,
		StoreID:       in.StoreID,
		ReceiptNumber: domain.FormatReceiptNumber(in.ReceiptPrefix, m.seq),
		CashierName:   in.CashierName,
		CustomerName:  in.CustomerName,
		PaymentMethod: in.PaymentMethod,
		Items:         in.Items,
		Charges:       in.Charges,
		Discount:      in.Discount,
		Subtotal:      in.Subtotal,
		ChargeTotal:   in.ChargeTotal,
		DiscountTotal: in.DiscountTotal,
		Total:         in.Total,
		Tendered:      in.Tendered,
		Change:        in.Change,
		CreatedAt:     time.Now(),
	}
	m.byID[t.ID] = t
	if m.products != nil {
		for _, item := range in.Items {
			if p, ok := m.products.byID[item.ProductID]; ok && !p.Unlimited {
				p.Stock -= item.Quantity
				if p.Stock < 0 {
					p.Stock = 0
				}
			}
		}
	}
	return t, nil
}

func (m *memTransactions) ListByRange(_ context.Context, storeID string, _, _ time.Time) ([]domain.Transaction, error) {
	var out []domain.Transaction
	for _, t := range m.byID {
		if t.StoreID == storeID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *memTransactions) GetByID(_ context.Context, storeID, id string) (*domain.Transaction, error) {
	t, ok := m.byID[id]
	if !ok || t.StoreID != storeID {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (m *memTransactions) DailyTotals(_ context.Context, storeID string, _, _ time.Time) ([]transactionrepo.DailyTotal, error) {
	return nil, nil
}

// testEnv bundles the in-memory repos behind a fully wired router.
type testEnv struct {
	stores       *memStores
	products     *memProducts
	charges      *memCharges
	discounts    *memCharges
	methods      *memMethods
	settings     *memSettings
	transactions *memTransactions
	deps         Deps
}

func newTestEnv() *testEnv {
	cashiers := newMemCashiers()
	stores := newMemStores(cashiers)
	tokens := newMemTokens()
	products := newMemProducts()
	categories := newMemCategories()
	charges := newMemCharges("charge")
	discounts := newMemCharges("discount")
	methods := newMemMethods()
	settingsRepo := newMemSettings()
	transactions := newMemTransactions(products)

	deps := Deps{
		Cashiers:   cashier.New(cashiers, stores, tokens),
		Catalog:    catalog.New(products, categories),
		Categories: category.New(categories),
		Tariffs:    tariff.New(charges, discounts),
		Payments:   payment.New(methods),
		Suppliers:  supplier.New(newMemSuppliers()),
		Settings:   settings.New(settingsRepo),
		Sales:      sale.New(products, charges, discounts, methods, settingsRepo, transactions),
		Stores:     stores,
	}
	return &testEnv{
		stores:       stores,
		products:     products,
		charges:      charges,
		discounts:    discounts,
		methods:      methods,
		settings:     settingsRepo,
		transactions: transactions,
		deps:         deps,
	}
}
