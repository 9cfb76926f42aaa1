package domain

import "time"

// Product is a sellable catalog item. Price is in whole rupiah.
type Product struct {
	ID           string    `json:"id"`
	StoreID      string    `json:"-"`
	Name         string    `json:"name"`
	Price        int64     `json:"price"`
	Unit         string    `json:"unit,omitempty"`
	CategoryID   string    `json:"categoryId,omitempty"`
	CategoryName string    `json:"categoryName,omitempty"`
	ImageURL     string    `json:"image,omitempty"`
	Unlimited    bool      `json:"unlimited"`
	Stock        int       `json:"stock"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InStock reports whether qty units can be sold.
func (p Product) InStock(qty int) bool {
	return p.Unlimited || p.Stock >= qty
}
