package category

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

const categoryColumns = `id::text, store_id::text, name, icon, created_at`

func (r *postgresRepo) List(ctx context.Context, storeID string) ([]domain.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE store_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.StoreID, &c.Name, &c.Icon, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id string) (*domain.Category, error) {
	const q = `SELECT ` + categoryColumns + ` FROM categories WHERE store_id = $1 AND id = $2`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, storeID, id).Scan(&c.ID, &c.StoreID, &c.Name, &c.Icon, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Create(ctx context.Context, in CreateCategoryInput) (*domain.Category, error) {
	const q = `
INSERT INTO categories (store_id, name, icon)
VALUES ($1, $2, $3)
RETURNING ` + categoryColumns
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, in.StoreID, in.Name, in.Icon).Scan(&c.ID, &c.StoreID, &c.Name, &c.Icon, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Update(ctx context.Context, storeID, id, name, icon string) (*domain.Category, error) {
	const q = `
UPDATE categories
SET name = $3, icon = $4
WHERE store_id = $1 AND id = $2
RETURNING ` + categoryColumns
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, storeID, id, name, icon).Scan(&c.ID, &c.StoreID, &c.Name, &c.Icon, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM categories WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
