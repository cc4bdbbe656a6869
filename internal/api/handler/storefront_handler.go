package handler

import (
	"context"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

type StorefrontHandler struct {
	storefront ports.StorefrontService
}

func NewStorefrontHandler(storefront ports.StorefrontService) *StorefrontHandler {
	return &StorefrontHandler{storefront: storefront}
}

// Page renders the tab's current page view. Serves both /api/home and
// /api/dashboard.
//
// @Summary      Page view
// @Tags         storefront
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Success      200       {object}  pageResponse
// @Failure      401       {object}  errorResponse
// @Router       /api/home [get]
// @Router       /api/dashboard [get]
func (h *StorefrontHandler) Page(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	view, err := h.storefront.Page(c.Request().Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(view))
}

// Search sets the tab's search term; an empty term ends the search.
//
// @Summary      Search products by name
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        X-Tab-ID  header    string         false  "Tab identity"
// @Param        body      body      searchRequest  true   "Search term"
// @Success      200       {object}  pageResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/search [post]
func (h *StorefrontHandler) Search(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	var req searchRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	view, err := h.storefront.Search(c.Request().Context(), tab, req.Term)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(view))
}

// SelectCategory filters the listing by category; an empty name clears it.
//
// @Summary      Select a category
// @Tags         storefront
// @Accept       json
// @Produce      json
// @Param        X-Tab-ID  header    string                 false  "Tab identity"
// @Param        body      body      selectCategoryRequest  true   "Category"
// @Success      200       {object}  selectCategoryResponse
// @Failure      422       {object}  errorResponse
// @Router       /api/categories/select [post]
func (h *StorefrontHandler) SelectCategory(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	var req selectCategoryRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	nav, view, err := h.storefront.SelectCategory(c.Request().Context(), tab, req.CategoryName)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, selectCategoryResponse{Navigation: nav, View: toPageResponse(view)})
}

// OpenCategory serves a direct visit to a category route.
//
// @Summary      Category page
// @Tags         storefront
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Param        name      path      string  true   "Category name"
// @Success      200       {object}  pageResponse
// @Router       /api/categories/{name} [get]
func (h *StorefrontHandler) OpenCategory(c echo.Context) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	name := c.Param("name")
	if c.Request().URL.RawPath != "" {
		if name, err = url.PathUnescape(name); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category name")
		}
	}
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid category name")
	}

	view, err := h.storefront.OpenCategory(c.Request().Context(), tab, name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPageResponse(view))
}

// Categories lists the categories for the menu.
//
// @Summary      List categories
// @Tags         storefront
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Success      200       {object}  queryResponse
// @Router       /api/categories [get]
func (h *StorefrontHandler) Categories(c echo.Context) error {
	return h.query(c, h.storefront.Categories)
}

// AdminProducts lists every product without windowing. Admin only.
//
// @Summary      Admin product list
// @Tags         admin
// @Produce      json
// @Param        X-Tab-ID  header    string  false  "Tab identity"
// @Success      200       {object}  queryResponse
// @Failure      401       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Router       /api/admin/products [get]
func (h *StorefrontHandler) AdminProducts(c echo.Context) error {
	return h.query(c, h.storefront.AdminProducts)
}

func (h *StorefrontHandler) query(c echo.Context, fn func(ctx context.Context, tabID string) (domain.QueryResult, error)) error {
	tab, err := ctxTab(c)
	if err != nil {
		return err
	}

	res, err := fn(c.Request().Context(), tab)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toQueryResponse(res))
}
