package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
	categoryrepo "github.com/rafirachmawan/kasir-pintar/internal/repository/category"
)

type ProductWriter interface {
	Upsert(ctx context.Context, product domain.Product) (*domain.Product, error)
}

type CategoryStore interface {
	List(ctx context.Context, storeID string) ([]domain.Category, error)
	Create(ctx context.Context, in categoryrepo.CreateCategoryInput) (*domain.Category, error)
}

// CSVImporter loads a product list exported from a spreadsheet into one
// store. Expected columns: name, price, unit, category, stock. A stock
// value of "unlimited" (or an empty cell) marks the product unlimited.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryStore
	storeID    string

	categoryIDs map[string]string
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryStore, storeID string) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
		storeID:    storeID,
	}
}

type csvRow struct {
	Name      string
	Price     int64
	Unit      string
	Category  string
	Unlimited bool
	Stock     int
}

// Run parses rows and upserts products, creating referenced categories
// on the fly. Returns the number of products imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["name"]; !ok {
		return 0, errors.New("missing name column")
	}
	if _, ok := index["price"]; !ok {
		return 0, errors.New("missing price column")
	}

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		row, err := parseRow(record, index)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}
		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}

	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	categoryID := ""
	if row.Category != "" {
		id, err := i.ensureCategory(ctx, row.Category)
		if err != nil {
			return fmt.Errorf("ensure category %q: %w", row.Category, err)
		}
		categoryID = id
	}

	_, err := i.products.Upsert(ctx, domain.Product{
		StoreID:      i.storeID,
		Name:         row.Name,
		Price:        row.Price,
		Unit:         row.Unit,
		CategoryID:   categoryID,
		CategoryName: row.Category,
		Unlimited:    row.Unlimited,
		Stock:        row.Stock,
	})
	if err != nil {
		return fmt.Errorf("upsert product %q: %w", row.Name, err)
	}
	return nil
}

func (i *CSVImporter) ensureCategory(ctx context.Context, name string) (string, error) {
	if i.categoryIDs == nil {
		i.categoryIDs = map[string]string{}
		existing, err := i.categories.List(ctx, i.storeID)
		if err != nil {
			return "", err
		}
		for _, c := range existing {
			i.categoryIDs[strings.ToLower(c.Name)] = c.ID
		}
	}

	key := strings.ToLower(name)
	if id, ok := i.categoryIDs[key]; ok {
		return id, nil
	}
	created, err := i.categories.Create(ctx, categoryrepo.CreateCategoryInput{
		StoreID: i.storeID,
		Name:    name,
	})
	if err != nil {
		return "", err
	}
	i.categoryIDs[key] = created.ID
	return created.ID, nil
}

func parseRow(record []string, index map[string]int) (*csvRow, error) {
	get := func(col string) string {
		idx, ok := index[col]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	name := get("name")
	if name == "" {
		return nil, nil
	}

	price, err := strconv.ParseInt(get("price"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price for %q: %w", name, err)
	}
	if price < 0 {
		return nil, fmt.Errorf("negative price for %q", name)
	}

	row := &csvRow{
		Name:     name,
		Price:    price,
		Unit:     get("unit"),
		Category: get("category"),
	}

	rawStock := strings.ToLower(get("stock"))
	switch rawStock {
	case "", "unlimited":
		row.Unlimited = true
	default:
		stock, err := strconv.Atoi(rawStock)
		if err != nil || stock < 0 {
			return nil, fmt.Errorf("invalid stock for %q: %s", name, rawStock)
		}
		row.Stock = stock
	}

	return row, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}
