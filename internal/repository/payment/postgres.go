package payment

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

const methodColumns = `id::text, store_id::text, name, active, is_default, created_at`

func scanMethod(row pgx.Row) (*domain.PaymentMethod, error) {
	var m domain.PaymentMethod
	err := row.Scan(&m.ID, &m.StoreID, &m.Name, &m.Active, &m.IsDefault, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

func (r *postgresRepo) List(ctx context.Context, storeID string, activeOnly bool) ([]domain.PaymentMethod, error) {
	q := `SELECT ` + methodColumns + ` FROM payment_methods WHERE store_id = $1`
	if activeOnly {
		q += ` AND active`
	}
	q += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.PaymentMethod
	for rows.Next() {
		m, err := scanMethod(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *m)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id string) (*domain.PaymentMethod, error) {
	const q = `SELECT ` + methodColumns + ` FROM payment_methods WHERE store_id = $1 AND id = $2`
	return scanMethod(r.pool.QueryRow(ctx, q, storeID, id))
}

func (r *postgresRepo) Create(ctx context.Context, in CreateMethodInput) (*domain.PaymentMethod, error) {
	const q = `
INSERT INTO payment_methods (store_id, name, active, is_default)
VALUES ($1, $2, $3, $4)
RETURNING ` + methodColumns
	return scanMethod(r.pool.QueryRow(ctx, q, in.StoreID, in.Name, in.Active, in.IsDefault))
}

func (r *postgresRepo) Update(ctx context.Context, storeID, id string, in UpdateMethodInput) (*domain.PaymentMethod, error) {
	const q = `
UPDATE payment_methods
SET name = $3, active = $4, is_default = $5
WHERE store_id = $1 AND id = $2
RETURNING ` + methodColumns
	return scanMethod(r.pool.QueryRow(ctx, q, storeID, id, in.Name, in.Active, in.IsDefault))
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM payment_methods WHERE store_id = $1 AND id = $2`, storeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ClearDefault removes the default flag from every method of the store.
// Called before a new default is written so at most one remains.
func (r *postgresRepo) ClearDefault(ctx context.Context, storeID string) error {
	_, err := r.pool.Exec(ctx, `UPDATE payment_methods SET is_default = false WHERE store_id = $1 AND is_default`, storeID)
	return err
}
