package handler

import "github.com/storefront/gateway/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type searchRequest struct {
	Term string `json:"term"`
}

type selectCategoryRequest struct {
	CategoryName string `json:"categoryName"`
}

// --- Response types ---
// These stay separate from domain types so the JSON contract is not coupled
// to internal changes.

type loginResponse struct {
	UserID   string             `json:"userId"`
	Roles    []string           `json:"roles"`
	Redirect *domain.Navigation `json:"redirect"`
}

type signOutResponse struct {
	Redirect *domain.Navigation `json:"redirect"`
}

type sessionResponse struct {
	LoggedIn bool     `json:"loggedIn"`
	UserID   string   `json:"userId,omitempty"`
	Roles    []string `json:"roles"`
}

type productResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	UnitPrice       string `json:"unitPrice"`
	QuantityInStock int    `json:"quantityInStock"`
	Image           string `json:"image,omitempty"`
}

type categoryResponse struct {
	ID           string `json:"id"`
	CategoryName string `json:"categoryName"`
}

type pageResponse struct {
	Mode             string             `json:"mode"`
	Status           string             `json:"status"`
	Primary          []productResponse  `json:"primary"`
	Secondary        []productResponse  `json:"secondary"`
	Categories       []categoryResponse `json:"categories"`
	SelectedCategory string             `json:"selectedCategory,omitempty"`
	SearchTerm       string             `json:"searchTerm,omitempty"`
	NotFound         bool               `json:"notFound"`
	Message          string             `json:"message,omitempty"`
}

type selectCategoryResponse struct {
	Navigation *domain.Navigation `json:"navigation,omitempty"`
	View       pageResponse       `json:"view"`
}

type queryResponse struct {
	Key        string             `json:"key"`
	Status     string             `json:"status"`
	Products   []productResponse  `json:"products,omitempty"`
	Categories []categoryResponse `json:"categories,omitempty"`
	Error      string             `json:"error,omitempty"`
}
