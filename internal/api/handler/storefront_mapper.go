package handler

import (
	"encoding/base64"

	"github.com/storefront/gateway/internal/core/domain"
)

func toProductResponse(p domain.Product) productResponse {
	r := productResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		UnitPrice:       p.UnitPrice.StringFixed(2),
		QuantityInStock: p.QuantityInStock,
	}
	if len(p.ImageBytes) > 0 {
		r.Image = base64.StdEncoding.EncodeToString(p.ImageBytes)
	}
	return r
}

func toProductResponses(ps []domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toCategoryResponses(cs []domain.Category) []categoryResponse {
	out := make([]categoryResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, categoryResponse{ID: c.ID, CategoryName: c.CategoryName})
	}
	return out
}

func toPageResponse(v *domain.PageView) pageResponse {
	return pageResponse{
		Mode:             string(v.Mode),
		Status:           string(v.Status),
		Primary:          toProductResponses(v.Primary),
		Secondary:        toProductResponses(v.Secondary),
		Categories:       toCategoryResponses(v.Categories),
		SelectedCategory: v.SelectedCategory,
		SearchTerm:       v.SearchTerm,
		NotFound:         v.NotFound,
		Message:          v.Message,
	}
}

// toQueryResponse never exposes the underlying error text; only a generic
// message goes out.
func toQueryResponse(r domain.QueryResult) queryResponse {
	resp := queryResponse{Key: r.Key.String(), Status: string(r.Status)}
	switch r.Key.Kind {
	case domain.KindCategories:
		resp.Categories = toCategoryResponses(r.Categories)
	default:
		resp.Products = toProductResponses(r.Products)
	}
	if r.Status == domain.StatusError {
		resp.Error = domain.MessageQueryFailed
	}
	return resp
}
