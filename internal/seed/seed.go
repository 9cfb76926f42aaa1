package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type productSeed struct {
	Name      string
	Price     int64
	Unit      string
	Category  string
	Unlimited bool
	Stock     int
}

// Apply inserts demo data for manual testing: one store, its owner, a
// small menu, PPN, a promo discount, and two payment methods. It is
// idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	storeID, err := ensureStore(ctx, pool, "mie-bangladesh", "Mie Bangladesh", "Jl. Merdeka No. 1", "0812-0000-0000")
	if err != nil {
		return fmt.Errorf("ensure store: %w", err)
	}
	if err := ensureOwner(ctx, pool, storeID, "Pemilik", "owner@mie-bangladesh.test", "rahasia"); err != nil {
		return fmt.Errorf("ensure owner: %w", err)
	}

	minumanID, err := ensureCategory(ctx, pool, storeID, "Minuman")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}
	makananID, err := ensureCategory(ctx, pool, storeID, "Makanan")
	if err != nil {
		return fmt.Errorf("ensure category: %w", err)
	}
	categoryIDs := map[string]string{"Minuman": minumanID, "Makanan": makananID}

	products := []productSeed{
		{Name: "Kopi", Price: 5000, Unit: "gelas", Category: "Minuman", Unlimited: true},
		{Name: "Teh", Price: 3000, Unit: "gelas", Category: "Minuman", Unlimited: true},
		{Name: "Roti", Price: 7000, Unit: "pcs", Category: "Makanan", Stock: 20},
		{Name: "Air Mineral", Price: 4000, Unit: "botol", Category: "Minuman", Stock: 48},
	}
	for _, p := range products {
		if err := upsertProduct(ctx, pool, storeID, categoryIDs[p.Category], p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	if err := ensureCharge(ctx, pool, storeID, "charges", "PPN", "percent", 10); err != nil {
		return fmt.Errorf("ensure charge: %w", err)
	}
	if err := ensureCharge(ctx, pool, storeID, "discounts", "Promo Pembukaan", "fixed", 2000); err != nil {
		return fmt.Errorf("ensure discount: %w", err)
	}

	if err := ensureMethod(ctx, pool, storeID, "Tunai", true); err != nil {
		return fmt.Errorf("ensure payment method: %w", err)
	}
	if err := ensureMethod(ctx, pool, storeID, "QRIS", false); err != nil {
		return fmt.Errorf("ensure payment method: %w", err)
	}

	return nil
}

func ensureStore(ctx context.Context, pool *pgxpool.Pool, key, name, address, phone string) (string, error) {
	const q = `
INSERT INTO stores (key, name, address, phone)
VALUES ($1, $2, $3, $4)
ON CONFLICT (key) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, key, name, address, phone).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func ensureOwner(ctx context.Context, pool *pgxpool.Pool, storeID, name, email, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	const q = `
INSERT INTO cashiers (store_id, name, email, password_hash)
VALUES ($1, $2, $3, $4)
ON CONFLICT (email) DO NOTHING
`
	_, err = pool.Exec(ctx, q, storeID, name, email, string(hashed))
	return err
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, storeID, name string) (string, error) {
	const q = `
INSERT INTO categories (store_id, name)
VALUES ($1, $2)
ON CONFLICT (store_id, name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, storeID, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, storeID, categoryID string, p productSeed) error {
	const q = `
INSERT INTO products (store_id, name, price, unit, category_id, category_name, unlimited, stock)
VALUES ($1, $2, $3, $4, NULLIF($5, '')::uuid, $6, $7, $8)
ON CONFLICT (store_id, name) DO UPDATE SET
	price = EXCLUDED.price,
	unit = EXCLUDED.unit,
	category_id = EXCLUDED.category_id,
	category_name = EXCLUDED.category_name
`
	_, err := pool.Exec(ctx, q, storeID, p.Name, p.Price, p.Unit, categoryID, p.Category, p.Unlimited, p.Stock)
	return err
}

func ensureCharge(ctx context.Context, pool *pgxpool.Pool, storeID, table, name, kind string, value float64) error {
	q := fmt.Sprintf(`
INSERT INTO %s (store_id, name, kind, value, active)
SELECT $1, $2, $3, $4, TRUE
WHERE NOT EXISTS (SELECT 1 FROM %s WHERE store_id = $1 AND name = $2)
`, table, table)
	_, err := pool.Exec(ctx, q, storeID, name, kind, value)
	return err
}

func ensureMethod(ctx context.Context, pool *pgxpool.Pool, storeID, name string, isDefault bool) error {
	const q = `
INSERT INTO payment_methods (store_id, name, active, is_default)
SELECT $1, $2, TRUE, $3
WHERE NOT EXISTS (SELECT 1 FROM payment_methods WHERE store_id = $1 AND name = $2)
`
	_, err := pool.Exec(ctx, q, storeID, name, isDefault)
	return err
}
