package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Port != "8080" || cfg.Backend.URL != "http://localhost:8082" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Storefront.DisplayWindow != 12 || cfg.Storefront.TabIdleTTL != 30*time.Minute {
		t.Fatalf("unexpected storefront defaults: %+v", cfg.Storefront)
	}
	if cfg.Backend.Timeout != 0 {
		t.Fatalf("expected no backend timeout by default, got %s", cfg.Backend.Timeout)
	}
	if cfg.Storefront.SessionBackend != BackendMemory {
		t.Fatalf("expected memory session backend, got %q", cfg.Storefront.SessionBackend)
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"SESSION_BACKEND": "redis",
		"QUERY_STORE":     "redis",
		"BACKEND_TIMEOUT": "3s",
		"ENV":             "production",
	}))
	if err != nil {
		t.Fatalf("LoadWith returned error: %v", err)
	}
	if cfg.Backend.Timeout != 3*time.Second || !cfg.IsProduction() {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadWith_RejectsUnknownBackend(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"QUERY_STORE": "mongo",
	}))
	if err == nil {
		t.Fatal("expected error for unsupported query store")
	}
}
