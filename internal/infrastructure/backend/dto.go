package backend

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/storefront/gateway/internal/core/domain"
)

// flexibleID accepts identifiers sent either as JSON strings or numbers.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or number: %w", err)
	}
	*f = flexibleID(n.String())
	return nil
}

// itemDTO mirrors the backend's item JSON.
type itemDTO struct {
	ID              flexibleID      `json:"id"`
	ItemID          flexibleID      `json:"itemId"`
	ItemName        string          `json:"itemName"`
	ItemDescription string          `json:"itemDescription"`
	ItemPerPrice    decimal.Decimal `json:"itemPerPrice"`
	ItemQuantity    int             `json:"itemQuantity"`
	ItemImage       string          `json:"itemImage"`
}

type categoryDTO struct {
	ID           flexibleID `json:"id"`
	CategoryName string     `json:"categoryName"`
}

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token  string     `json:"token"`
	UserID flexibleID `json:"userId"`
}

func toProduct(d itemDTO) domain.Product {
	id := string(d.ID)
	if id == "" {
		id = string(d.ItemID)
	}
	qty := d.ItemQuantity
	if qty < 0 {
		qty = 0
	}
	return domain.Product{
		ID:              id,
		Name:            d.ItemName,
		Description:     d.ItemDescription,
		UnitPrice:       d.ItemPerPrice,
		QuantityInStock: qty,
		ImageBytes:      decodeImage(d.ItemImage),
	}
}

func toProducts(items []itemDTO) []domain.Product {
	out := make([]domain.Product, 0, len(items))
	for _, it := range items {
		out = append(out, toProduct(it))
	}
	return out
}

func toCategories(items []categoryDTO) []domain.Category {
	out := make([]domain.Category, 0, len(items))
	for _, it := range items {
		out = append(out, domain.Category{ID: string(it.ID), CategoryName: it.CategoryName})
	}
	return out
}

// decodeImage reads the base64 image; an undecodable image is dropped rather
// than failing the whole listing.
func decodeImage(s string) []byte {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, payload, ok := strings.Cut(s, ";base64,"); ok {
		s = payload
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil
	}
	return b
}
