package domain

import "github.com/shopspring/decimal"

// Product is a read-only copy of a catalog item owned by the backend.
type Product struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	QuantityInStock int             `json:"quantity_in_stock"`
	ImageBytes      []byte          `json:"image,omitempty"`
}

// Category is read-only reference data used to filter products.
type Category struct {
	ID           string `json:"id"`
	CategoryName string `json:"category_name"`
}
