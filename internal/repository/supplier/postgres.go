package supplier

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

const supplierColumns = `id::text, store_id::text, name, phone, address, created_at`

func (r *postgresRepo) List(ctx context.Context, storeID string) ([]domain.Supplier, error) {
	const q = `SELECT ` + supplierColumns + ` FROM suppliers WHERE store_id = $1 ORDER BY created_at`
	rows, err := r.pool.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Supplier
	for rows.Next() {
		var s domain.Supplier
		if err := rows.Scan(&s.ID, &s.StoreID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Create(ctx context.Context, in CreateSupplierInput) (*domain.Supplier, error) {
	const q = `
INSERT INTO suppliers (store_id, name, phone, address)
VALUES ($1, $2, $3, $4)
RETURNING ` + supplierColumns
	var s domain.Supplier
	err := r.pool.QueryRow(ctx, q, in.StoreID, in.Name, in.Phone, in.Address).Scan(
		&s.ID, &s.StoreID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Update(ctx context.Context, storeID, id, name, phone, address string) (*domain.Supplier, error) {
	const q = `
UPDATE suppliers
SET name = $3, phone = $4, address = $5
WHERE store_id = $1 AND id = $2
RETURNING ` + supplierColumns
	var s domain.Supplier
	err := r.pool.QueryRow(ctx, q, storeID, id, name, phone, address).Scan(
		&s.ID, &s.StoreID, &s.Name, &s.Phone, &s.Address, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM suppliers WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
