// Command storefront runs the storefront gateway: per-tab sessions, catalog
// queries and category navigation over an HTTP API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	_ "github.com/storefront/gateway/docs"
	"github.com/storefront/gateway/internal/api"
	"github.com/storefront/gateway/internal/api/handler"
	"github.com/storefront/gateway/internal/core/ports"
	"github.com/storefront/gateway/internal/core/service"
	"github.com/storefront/gateway/internal/infrastructure/backend"
	mongostore "github.com/storefront/gateway/internal/infrastructure/db/mongo"
	redisstore "github.com/storefront/gateway/internal/infrastructure/db/redis"
	"github.com/storefront/gateway/internal/infrastructure/memory"
	"github.com/storefront/gateway/internal/infrastructure/queue"
	"github.com/storefront/gateway/internal/pkg/config"
	"github.com/storefront/gateway/pkg/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  !cfg.IsProduction(),
		Service: "storefront-gateway",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	checks := map[string]handler.PingFunc{}

	// --- Stores ---
	var rdb *goredis.Client
	if strings.EqualFold(cfg.Storefront.SessionBackend, config.BackendRedis) || strings.EqualFold(cfg.Storefront.QueryStore, config.BackendRedis) {
		client, err := redisstore.Connect(ctx, redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer func() { _ = client.Close() }()
		rdb = client
		checks["redis"] = handler.RedisPing(rdb)
	}

	var (
		sessions ports.SessionStore
		guard    ports.LoginGuard = memory.NewLoginGuard()
		results  ports.QueryStore = memory.NewQueryStore()
	)
	if rdb != nil {
		guard = redisstore.NewLoginGuard(rdb)
	}

	switch strings.ToLower(cfg.Storefront.SessionBackend) {
	case config.BackendRedis:
		sessions = redisstore.NewSessionStore(rdb, cfg.Storefront.SessionTTL)
	case config.BackendMongo:
		client, db, err := mongostore.Connect(ctx, mongostore.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to mongodb")
		}
		defer func() {
			if err := mongostore.Disconnect(context.Background(), client); err != nil {
				log.Warn().Err(err).Msg("mongodb disconnect failed")
			}
		}()
		store := mongostore.NewSessionStore(db)
		if cfg.Storefront.SessionTTL > 0 {
			if err := store.EnsureTTL(ctx, cfg.Storefront.SessionTTL); err != nil {
				log.Fatal().Err(err).Msg("failed to create session ttl index")
			}
		}
		sessions = store
		checks["mongodb"] = handler.MongoPing(db)
	default:
		sessions = memory.NewSessionStore()
	}

	if strings.EqualFold(cfg.Storefront.QueryStore, config.BackendRedis) {
		results = redisstore.NewQueryStore(rdb, cfg.Storefront.TabIdleTTL)
	}

	// --- Backend ---
	catalog := backend.New(cfg.Backend.URL,
		backend.WithTimeout(cfg.Backend.Timeout),
		backend.WithLogger(logger.Component("backend")),
	)
	checks["backend"] = catalog.Ping

	// --- Services ---
	queries := service.NewQueryService(catalog, results, logger.Component("query"))
	dispatcher := queue.NewDispatcher(cfg.Storefront.QueryWorkers, queries, logger.Component("dispatcher"))
	queries.UseQueue(dispatcher)
	dispatcher.Start(ctx)

	views := service.NewViewStates()
	navigator := service.NewNavigator(queries, views, logger.Component("navigator"))
	storefront := service.NewStorefrontService(queries, navigator, views, cfg.Storefront.DisplayWindow, logger.Component("storefront"))
	auth := service.NewAuthService(catalog, sessions, guard, storefront, logger.Component("auth"))

	go sweepIdleTabs(ctx, views, queries, cfg.Storefront.TabIdleTTL, log)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Auth:         auth,
		Storefront:   storefront,
		Health:       checks,
		Log:          logger.Component("http"),
		SecureCookie: cfg.IsProduction(),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.URL).Msg("HTTP server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), api.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	} else {
		log.Info().Msg("graceful shutdown completed")
	}
}

// sweepIdleTabs evicts view state of tabs idle for longer than ttl and drops
// their cached query results.
func sweepIdleTabs(ctx context.Context, views *service.ViewStates, queries *service.QueryService, ttl time.Duration, log zerolog.Logger) {
	if ttl <= 0 {
		return
	}
	ticker := time.NewTicker(ttl / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, tab := range views.Sweep(ttl) {
				if err := queries.Forget(ctx, tab); err != nil {
					log.Warn().Err(err).Str("tab", tab).Msg("failed to drop idle tab results")
				}
			}
		}
	}
}
