package transaction

import (
	"context"
	"errors"
	"time"

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

const txColumns = `id::text, store_id::text, receipt_number, cashier_name, customer_name, payment_method,
       subtotal, charge_total, discount_total, total, tendered, change, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var t domain.Transaction
	err := row.Scan(
		&t.ID, &t.StoreID, &t.ReceiptNumber, &t.CashierName, &t.CustomerName, &t.PaymentMethod,
		&t.Subtotal, &t.ChargeTotal, &t.DiscountTotal, &t.Total, &t.Tendered, &t.Change, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *postgresRepo) Finalize(ctx context.Context, in FinalizeInput) (*domain.Transaction, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var seq int64
	if err := tx.QueryRow(ctx,
		`UPDATE stores SET receipt_seq = receipt_seq + 1 WHERE id = $1 RETURNING receipt_seq`,
		in.StoreID,
	).Scan(&seq); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	receiptNumber := domain.FormatReceiptNumber(in.ReceiptPrefix, seq)

	for _, item := range in.Items {
		if item.ProductID == "" {
			continue
		}
		if _, err := tx.Exec(ctx, `
UPDATE products
SET stock = GREATEST(stock - $3, 0)
WHERE store_id = $1 AND id = $2 AND NOT unlimited
`, in.StoreID, item.ProductID, item.Quantity); err != nil {
			return nil, err
		}
	}

	created, err := scanTransaction(tx.QueryRow(ctx, `
INSERT INTO transactions (id, store_id, receipt_number, cashier_name, customer_name, payment_method,
                          subtotal, charge_total, discount_total, total, tendered, change)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING `+txColumns,
		in.ID, in.StoreID, receiptNumber, in.CashierName, in.CustomerName, in.PaymentMethod,
		in.Subtotal, in.ChargeTotal, in.DiscountTotal, in.Total, in.Tendered, in.Change,
	))
	if err != nil {
		return nil, err
	}

	for i, item := range in.Items {
		if _, err := tx.Exec(ctx, `
INSERT INTO transaction_items (transaction_id, position, product_id, name, quantity, unit_price, total)
VALUES ($1, $2, NULLIF($3, '')::uuid, $4, $5, $6, $7)
`, created.ID, i, item.ProductID, item.Name, item.Quantity, item.UnitPrice, item.Total); err != nil {
			return nil, err
		}
	}

	writeCharge := func(pos int, c domain.TransactionCharge, isDiscount bool) error {
		_, err := tx.Exec(ctx, `
INSERT INTO transaction_charges (transaction_id, position, name, kind, value, amount, is_discount)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`, created.ID, pos, c.Name, c.Kind, c.Value, c.Amount, isDiscount)
		return err
	}
	for i, c := range in.Charges {
		if err := writeCharge(i, c, false); err != nil {
			return nil, err
		}
	}
	if in.Discount != nil {
		if err := writeCharge(len(in.Charges), *in.Discount, true); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	created.Items = in.Items
	created.Charges = in.Charges
	created.Discount = in.Discount
	return created, nil
}

func (r *postgresRepo) ListByRange(ctx context.Context, storeID string, from, to time.Time) ([]domain.Transaction, error) {
	const q = `
SELECT ` + txColumns + `
FROM transactions
WHERE store_id = $1 AND created_at >= $2 AND created_at <= $3
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

func (r *postgresRepo) GetByID(ctx context.Context, storeID, id string) (*domain.Transaction, error) {
	const q = `SELECT ` + txColumns + ` FROM transactions WHERE store_id = $1 AND id = $2`
	t, err := scanTransaction(r.pool.QueryRow(ctx, q, storeID, id))
	if err != nil {
		return nil, err
	}

	itemRows, err := r.pool.Query(ctx, `
SELECT COALESCE(product_id::text, ''), name, quantity, unit_price, total
FROM transaction_items
WHERE transaction_id = $1
ORDER BY position
`, t.ID)
	if err != nil {
		return nil, err
	}
	defer itemRows.Close()
	for itemRows.Next() {
		var item domain.TransactionItem
		if err := itemRows.Scan(&item.ProductID, &item.Name, &item.Quantity, &item.UnitPrice, &item.Total); err != nil {
			return nil, err
		}
		t.Items = append(t.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, err
	}

	chargeRows, err := r.pool.Query(ctx, `
SELECT name, kind, value, amount, is_discount
FROM transaction_charges
WHERE transaction_id = $1
ORDER BY position
`, t.ID)
	if err != nil {
		return nil, err
	}
	defer chargeRows.Close()
	for chargeRows.Next() {
		var c domain.TransactionCharge
		var isDiscount bool
		if err := chargeRows.Scan(&c.Name, &c.Kind, &c.Value, &c.Amount, &isDiscount); err != nil {
			return nil, err
		}
		if isDiscount {
			discount := c
			t.Discount = &discount
		} else {
			t.Charges = append(t.Charges, c)
		}
	}
	return t, chargeRows.Err()
}

func (r *postgresRepo) DailyTotals(ctx context.Context, storeID string, from, to time.Time) ([]DailyTotal, error) {
	const q = `
SELECT date_trunc('day', created_at) AS day, count(*), COALESCE(sum(total), 0)
FROM transactions
WHERE store_id = $1 AND created_at >= $2 AND created_at <= $3
GROUP BY day
ORDER BY day
`
	rows, err := r.pool.Query(ctx, q, storeID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailyTotal
	for rows.Next() {
		var d DailyTotal
		if err := rows.Scan(&d.Date, &d.Count, &d.Revenue); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
