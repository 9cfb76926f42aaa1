package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	productrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/product"
)

// Service manages a store's sellable products.
type Service struct {
	products   productRepo
	categories categoryRepo
}

type productRepo interface {
	List(ctx context.Context, storeID string) ([]domain.Product, error)
	GetByID(ctx context.Context, storeID, id string) (*domain.Product, error)
	Create(ctx context.Context, in productrepo.CreateProductInput) (*domain.Product, error)
	Update(ctx context.Context, storeID, id string, in productrepo.UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, storeID, id string) error
	SetStock(ctx context.Context, storeID, id string, unlimited bool, stock int) (*domain.Product, error)
}

type categoryRepo interface {
	GetByID(ctx context.Context, storeID, id string) (*domain.Category, error)
}

func New(products productrepo.Repository, categories categoryRepo) *Service {
	return &Service{products: products, categories: categories}
}

type ProductInput struct {
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Unit       string `json:"unit"`
	CategoryID string `json:"categoryId"`
	ImageURL   string `json:"image"`
	Unlimited  *bool  `json:"unlimited"`
	Stock      int    `json:"stock"`
}

type StockInput struct {
	Unlimited bool `json:"unlimited"`
	Add       int  `json:"add"`
	Set       *int `json:"set"`
}

func (s *Service) List(ctx context.Context, storeID string) ([]domain.Product, error) {
	return s.products.List(ctx, storeID)
}

func (s *Service) Get(ctx context.Context, storeID, id string) (*domain.Product, error) {
	return s.products.GetByID(ctx, storeID, id)
}

func (s *Service) Create(ctx context.Context, storeID string, in ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	if in.Price < 0 {
		return nil, domain.Validation("price must not be negative")
	}
	categoryName, err := s.resolveCategory(ctx, storeID, in.CategoryID)
	if err != nil {
		return nil, err
	}

	unlimited := true
	if in.Unlimited != nil {
		unlimited = *in.Unlimited
	}
	return s.products.Create(ctx, productrepo.CreateProductInput{
		StoreID:      storeID,
		Name:         name,
		Price:        in.Price,
		Unit:         strings.TrimSpace(in.Unit),
		CategoryID:   in.CategoryID,
		CategoryName: categoryName,
		ImageURL:     strings.TrimSpace(in.ImageURL),
		Unlimited:    unlimited,
		Stock:        in.Stock,
	})
}

func (s *Service) Update(ctx context.Context, storeID, id string, in ProductInput) (*domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("name required")
	}
	if in.Price < 0 {
		return nil, domain.Validation("price must not be negative")
	}
	categoryName, err := s.resolveCategory(ctx, storeID, in.CategoryID)
	if err != nil {
		return nil, err
	}

	return s.products.Update(ctx, storeID, id, productrepo.UpdateProductInput{
		Name:         name,
		Price:        in.Price,
		Unit:         strings.TrimSpace(in.Unit),
		CategoryID:   in.CategoryID,
		CategoryName: categoryName,
		ImageURL:     strings.TrimSpace(in.ImageURL),
	})
}

func (s *Service) Delete(ctx context.Context, storeID, id string) error {
	return s.products.Delete(ctx, storeID, id)
}

// AdjustStock covers both gestures of the stock screen: flipping the
// unlimited flag and topping stock up (or setting it outright).
func (s *Service) AdjustStock(ctx context.Context, storeID, id string, in StockInput) (*domain.Product, error) {
	if in.Unlimited {
		return s.products.SetStock(ctx, storeID, id, true, 0)
	}

	current, err := s.products.GetByID(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	stock := current.Stock
	if current.Unlimited {
		stock = 0
	}
	if in.Set != nil {
		stock = *in.Set
	} else {
		stock += in.Add
	}
	if stock < 0 {
		return nil, domain.Validation("stock must not be negative")
	}
	return s.products.SetStock(ctx, storeID, id, false, stock)
}

func (s *Service) resolveCategory(ctx context.Context, storeID, categoryID string) (string, error) {
	if categoryID == "" {
		return "", nil
	}
	if s.categories == nil {
		return "", errors.New("category repository unavailable")
	}
	cat, err := s.categories.GetByID(ctx, storeID, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.Validation("category not found")
		}
		return "", err
	}
	return cat.Name, nil
}
