package charge

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type postgresRepo struct {
	pool  *pgxpool.Pool
	table string
}

// NewChargesPostgres serves the charges (tax/fee) table.
func NewChargesPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool, table: "charges"}
}

// NewDiscountsPostgres serves the discounts table.
func NewDiscountsPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool, table: "discounts"}
}

const chargeColumns = `id::text, store_id::text, name, kind, value, active, created_at`

func scanCharge(row pgx.Row) (*domain.Charge, error) {
	var c domain.Charge
	err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Kind, &c.Value, &c.Active, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) List(ctx context.Context, storeID string, activeOnly bool) ([]domain.Charge, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE store_id = $1`, chargeColumns, r.table)
	if activeOnly {
		q += ` AND active`
	}
	q += ` ORDER BY created_at`

	rows, err := r.pool.Query(ctx, q, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Charge
	for rows.Next() {
		c, err := scanCharge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id string) (*domain.Charge, error) {
	q := fmt.Sprintf(`SELECT %s FROM %s WHERE store_id = $1 AND id = $2`, chargeColumns, r.table)
	return scanCharge(r.pool.QueryRow(ctx, q, storeID, id))
}

func (r *postgresRepo) Create(ctx context.Context, in CreateChargeInput) (*domain.Charge, error) {
	q := fmt.Sprintf(`
INSERT INTO %s (store_id, name, kind, value, active)
VALUES ($1, $2, $3, $4, $5)
RETURNING %s`, r.table, chargeColumns)
	return scanCharge(r.pool.QueryRow(ctx, q, in.StoreID, in.Name, in.Kind, in.Value, in.Active))
}

func (r *postgresRepo) Update(ctx context.Context, storeID, id string, in UpdateChargeInput) (*domain.Charge, error) {
	q := fmt.Sprintf(`
UPDATE %s
SET name = $3, kind = $4, value = $5, active = $6
WHERE store_id = $1 AND id = $2
RETURNING %s`, r.table, chargeColumns)
	return scanCharge(r.pool.QueryRow(ctx, q, storeID, id, in.Name, in.Kind, in.Value, in.Active))
}

func (r *postgresRepo) Delete(ctx context.Context, storeID, id string) error {
	q := fmt.Sprintf(`DELETE FROM %s WHERE store_id = $1 AND id = $2`, r.table)
	tag, err := r.pool.Exec(ctx, q, storeID, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
