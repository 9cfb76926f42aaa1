package domain

import "time"

type Category struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"-"`
	Name      string    `json:"name"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
