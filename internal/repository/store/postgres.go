package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rafirachmawan/kasir-pintar/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

const storeColumns = `id::text, key, name, address, phone, email, created_at`

func (r *postgresRepo) CreateWithOwner(ctx context.Context, in CreateStoreInput, owner domain.Cashier) (*domain.Store, *domain.Cashier, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback(ctx)

	var s domain.Store
	err = tx.QueryRow(ctx, `
INSERT INTO stores (key, name, address, phone, email)
VALUES ($1, $2, $3, $4, $5)
RETURNING `+storeColumns,
		in.Key, in.Name, in.Address, in.Phone, in.Email,
	).Scan(&s.ID, &s.Key, &s.Name, &s.Address, &s.Phone, &s.Email, &s.CreatedAt)
	if err != nil {
		return nil, nil, conflictErr(err)
	}

	var c domain.Cashier
	err = tx.QueryRow(ctx, `
INSERT INTO cashiers (store_id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING id::text, store_id::text, name, email, password_hash, created_at`,
		s.ID, owner.Name, owner.Email, owner.PasswordHash,
	).Scan(&c.ID, &c.StoreID, &c.Name, &c.Email, &c.PasswordHash, &c.CreatedAt)
	if err != nil {
		return nil, nil, conflictErr(err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, nil, err
	}
	return &s, &c, nil
}

// conflictErr maps unique violations to the sentinel for the table they hit.
func conflictErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.TableName {
		case "stores":
			return ErrKeyTaken
		case "cashiers":
			return ErrEmailTaken
		}
		return domain.ErrAlreadyExists
	}
	return err
}

func (r *postgresRepo) GetByKey(ctx context.Context, key string) (*domain.Store, error) {
	const q = `SELECT ` + storeColumns + ` FROM stores WHERE key = $1`
	var s domain.Store
	err := r.pool.QueryRow(ctx, q, key).Scan(
		&s.ID, &s.Key, &s.Name, &s.Address, &s.Phone, &s.Email, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateStoreInput) (*domain.Store, error) {
	const q = `
UPDATE stores
SET name = $2, address = $3, phone = $4, email = $5
WHERE id = $1
RETURNING ` + storeColumns
	var s domain.Store
	err := r.pool.QueryRow(ctx, q, id, in.Name, in.Address, in.Phone, in.Email).Scan(
		&s.ID, &s.Key, &s.Name, &s.Address, &s.Phone, &s.Email, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}
