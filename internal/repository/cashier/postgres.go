package cashier

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

const cashierColumns = `id::text, store_id::text, name, email, password_hash, created_at`

func scanCashier(row pgx.Row) (*domain.Cashier, error) {
	var c domain.Cashier
	err := row.Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) GetByEmail(ctx context.Context, email string) (*domain.Cashier, error) {
	const q = `SELECT ` + cashierColumns + ` FROM cashiers WHERE email = $1`
	return scanCashier(r.pool.QueryRow(ctx, q, email))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Cashier, error) {
	const q = `SELECT ` + cashierColumns + ` FROM cashiers WHERE id = $1`
	return scanCashier(r.pool.QueryRow(ctx, q, id))
}
