package domain

import "time"

// PaymentMethod is how the customer settles an order. At most one method
// per store carries IsDefault.
type PaymentMethod struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"-"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	IsDefault bool      `json:"isDefault"`
	CreatedAt time.Time `json:"createdAt"`
}
