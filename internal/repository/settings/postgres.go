package settings

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

func (r *postgresRepo) Get(ctx context.Context, storeID string) (*domain.ReceiptSettings, error) {
	const q = `
SELECT show_logo, show_address, show_phone, show_timestamp, show_cashier,
       show_receipt_number, show_charges, show_discount, show_note,
       brand_title, tagline, receipt_prefix, closing_note
FROM receipt_settings
WHERE store_id = $1
`
	var s domain.ReceiptSettings
	err := r.pool.QueryRow(ctx, q, storeID).Scan(
		&s.ShowLogo, &s.ShowAddress, &s.ShowPhone, &s.ShowTimestamp, &s.ShowCashier,
		&s.ShowReceiptNumber, &s.ShowCharges, &s.ShowDiscount, &s.ShowNote,
		&s.BrandTitle, &s.Tagline, &s.ReceiptNumberPrefix, &s.ClosingNote,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) Save(ctx context.Context, storeID string, s domain.ReceiptSettings) error {
	const q = `
INSERT INTO receipt_settings (
    store_id, show_logo, show_address, show_phone, show_timestamp, show_cashier,
    show_receipt_number, show_charges, show_discount, show_note,
    brand_title, tagline, receipt_prefix, closing_note, updated_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
ON CONFLICT (store_id) DO UPDATE SET
    show_logo = EXCLUDED.show_logo,
    show_address = EXCLUDED.show_address,
    show_phone = EXCLUDED.show_phone,
    show_timestamp = EXCLUDED.show_timestamp,
    show_cashier = EXCLUDED.show_cashier,
    show_receipt_number = EXCLUDED.show_receipt_number,
    show_charges = EXCLUDED.show_charges,
    show_discount = EXCLUDED.show_discount,
    show_note = EXCLUDED.show_note,
    brand_title = EXCLUDED.brand_title,
    tagline = EXCLUDED.tagline,
    receipt_prefix = EXCLUDED.receipt_prefix,
    closing_note = EXCLUDED.closing_note,
    updated_at = now()
`
	_, err := r.pool.Exec(ctx, q, storeID,
		s.ShowLogo, s.ShowAddress, s.ShowPhone, s.ShowTimestamp, s.ShowCashier,
		s.ShowReceiptNumber, s.ShowCharges, s.ShowDiscount, s.ShowNote,
		s.BrandTitle, s.Tagline, s.ReceiptNumberPrefix, s.ClosingNote,
	)
	return err
}
