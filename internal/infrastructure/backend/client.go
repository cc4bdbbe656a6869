// Package backend is the HTTP client for the remote catalog and
// authentication API the storefront is built on.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

const (
	pathItems           = "/item/getAll"
	pathSearchByName    = "/item/searchByName/"
	pathItemsByCategory = "/item/getItemsByCategoryName/"
	pathCategories      = "/category/getAll"
	pathAuthenticate    = "/authenticate"
)

// compile-time checks
var (
	_ ports.CatalogClient = (*Client)(nil)
	_ ports.Authenticator = (*Client)(nil)
)

// StatusError reports a non-2xx answer from the backend.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

// Client talks to the catalog backend over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout bounds every backend request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New creates a backend client rooted at baseURL, e.g. "http://localhost:8082".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) ListItems(ctx context.Context) ([]domain.Product, error) {
	return c.products(ctx, pathItems)
}

func (c *Client) SearchItemsByName(ctx context.Context, term string) ([]domain.Product, error) {
	return c.products(ctx, pathSearchByName+url.PathEscape(term))
}

func (c *Client) ItemsByCategory(ctx context.Context, categoryName string) ([]domain.Product, error) {
	return c.products(ctx, pathItemsByCategory+url.PathEscape(categoryName))
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var items []categoryDTO
	if err := c.getJSON(ctx, pathCategories, &items); err != nil {
		return nil, err
	}
	return toCategories(items), nil
}

// Authenticate posts the credentials. Every failure is a *domain.AuthError.
func (c *Client) Authenticate(ctx context.Context, creds domain.Credentials) (*ports.AuthResponse, error) {
	body, err := json.Marshal(authRequest{Email: creds.Email, Password: creds.Password})
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+pathAuthenticate, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, &domain.AuthError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &domain.AuthError{StatusCode: resp.StatusCode}
	}

	var out authResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, &domain.AuthError{Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.Token == "" {
		return nil, &domain.AuthError{Err: fmt.Errorf("response carried no token")}
	}
	return &ports.AuthResponse{Token: out.Token, UserID: string(out.UserID)}, nil
}

// Ping checks that the backend answers the category listing.
func (c *Client) Ping(ctx context.Context) error {
	var items []categoryDTO
	return c.getJSON(ctx, pathCategories, &items)
}

func (c *Client) products(ctx context.Context, path string) ([]domain.Product, error) {
	var items []itemDTO
	if err := c.getJSON(ctx, path, &items); err != nil {
		return nil, err
	}
	return toProducts(items), nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decode: %w", path, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	ev := c.log.Debug().Str("method", req.Method).Str("path", req.URL.Path).Dur("elapsed", time.Since(start))
	if err != nil {
		ev.Err(err).Msg("backend request failed")
		return nil, err
	}
	ev.Int("status", resp.StatusCode).Msg("backend request")
	return resp, nil
}
