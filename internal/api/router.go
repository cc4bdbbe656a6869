package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/storefront/gateway/internal/api/handler"
	"github.com/storefront/gateway/internal/api/middleware"
	"github.com/storefront/gateway/internal/core/domain"
	"github.com/storefront/gateway/internal/core/ports"
)

// Deps holds everything the router wires into handlers.
type Deps struct {
	Auth         ports.AuthService
	Storefront   ports.StorefrontService
	Health       map[string]handler.PingFunc
	Log          zerolog.Logger
	SecureCookie bool
	// Registry receives the HTTP metrics; nil means the default registry.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if d.Registry != nil {
		registerer, gatherer = d.Registry, d.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "storefront_http",
		Registerer: registerer,
	}))

	// --- Observability (no tab identity required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Tab-scoped API ---
	authHandler := handler.NewAuthHandler(d.Auth)
	storefrontHandler := handler.NewStorefrontHandler(d.Storefront)
	requireSession := middleware.RequireSession(d.Auth)

	api := e.Group("/api", middleware.Tab(d.SecureCookie))

	api.POST("/authenticate", authHandler.Login)
	api.POST("/signout", authHandler.SignOut)
	api.GET("/session", authHandler.Session)

	api.GET("/home", storefrontHandler.Page)
	api.GET("/dashboard", storefrontHandler.Page, requireSession)
	api.POST("/search", storefrontHandler.Search)
	api.GET("/categories", storefrontHandler.Categories)
	api.POST("/categories/select", storefrontHandler.SelectCategory)
	api.GET("/categories/:name", storefrontHandler.OpenCategory)

	admin := api.Group("/admin", requireSession, middleware.RequireRole(domain.RoleAdmin))
	admin.GET("/products", storefrontHandler.AdminProducts)

	return e
}

// requestLogger emits one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil || v.Status >= 500 {
				ev = log.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Str("tab", middleware.TabID(c)).
				Msg("request")
			return nil
		},
	})
}

// ShutdownTimeout bounds graceful shutdown of the HTTP server.
const ShutdownTimeout = 10 * time.Second
