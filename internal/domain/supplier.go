package domain

import "time"

type Supplier struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"-"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
