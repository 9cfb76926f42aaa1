package product

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const productColumns = `id::text, store_id::text, name, price, unit, COALESCE(category_id::text, ''), category_name, image_url, unlimited, stock, created_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.StoreID, &p.Name, &p.Price, &p.Unit,
		&p.CategoryID, &p.CategoryName, &p.ImageURL,
		&p.Unlimited, &p.Stock, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *postgresRepo) List(ctx context.Context, storeID string) ([]domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id string) (*domain.Product, error) {
	const q = `SELECT ` + productColumns + ` FROM products WHERE store_id = $1 AND id = $2`
	return scanProduct(r.pool.QueryRow(ctx, q, storeID, id))
}

func (r *postgresRepo) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	const q = `
INSERT INTO products (store_id, name, price, unit, category_id, category_name, image_url, unlimited, stock)
VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9)
RETURNING ` + productColumns
	return scanProduct(r.pool.QueryRow(ctx, q,
		in.StoreID, in.Name, in.Price, in.Unit, in.CategoryID, in.CategoryName, in.ImageURL, in.Unlimited, in.Stock,
	))
}

func (r *postgresRepo) Update(ctx context.Context, storeID, id string, in UpdateProductInput) (*domain.Product, error) {
	const q = `
UPDATE products
SET name = $3, price = $4, unit = $5, category_id = NULLIF($6, '')::uuid, category_name = $7, image_url = $8
WHERE store_id = $1 AND id = $2
RETURNING ` + productColumns
	return scanProduct(r.pool.QueryRow(ctx, q,
		storeID, id, in.Name, in.Price, in.Unit, in.CategoryID, in.CategoryName, in.ImageURL,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetStock(ctx context.Context, storeID, id string, unlimited bool, stock int) (*domain.Product, error) {
	const q = `
UPDATE products
SET unlimited = $3, stock = $4
WHERE store_id = $1 AND id = $2
RETURNING ` + productColumns
	return scanProduct(r.pool.QueryRow(ctx, q, storeID, id, unlimited, stock))
}

// Upsert inserts or updates a product matched by store and name. Used by
// the CSV importer and the seeder, which have no stable ids to match on.
func (r *postgresRepo) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO products (store_id, name, price, unit, category_id, category_name, image_url, unlimited, stock)
VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8, $9)
ON CONFLICT (store_id, name) DO UPDATE
SET price = EXCLUDED.price,
    unit = EXCLUDED.unit,
    category_id = EXCLUDED.category_id,
    category_name = EXCLUDED.category_name,
    image_url = EXCLUDED.image_url,
    unlimited = EXCLUDED.unlimited,
    stock = EXCLUDED.stock
RETURNING ` + productColumns
	return scanProduct(r.pool.QueryRow(ctx, q,
		p.StoreID, p.Name, p.Price, p.Unit, p.CategoryID, p.CategoryName, p.ImageURL, p.Unlimited, p.Stock,
	))
}
