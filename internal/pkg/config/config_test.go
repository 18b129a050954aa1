package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadWith_Defaults(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" {
		t.Errorf("unexpected defaults: port=%s env=%s", cfg.Port, cfg.Env)
	}
	if cfg.Auth.JWTTTL != 24*time.Hour || cfg.Auth.JWTIssuer != "commerce-api" {
		t.Errorf("unexpected auth defaults: %+v", cfg.Auth)
	}
	if !cfg.Auth.AdminSignupEnabled {
		t.Error("admin signup should be enabled by default")
	}
	if cfg.Uploads.MaxBytes != 5<<20 {
		t.Errorf("expected 5MiB upload limit, got %d", cfg.Uploads.MaxBytes)
	}
	if cfg.IsProduction() {
		t.Error("development must not report production")
	}
	if len(cfg.CORSOrigins) != 3 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Errorf("unexpected default origins: %v", cfg.CORSOrigins)
	}
	for _, o := range cfg.CORSOrigins {
		if o == "*" {
			t.Error("default origins must not include a wildcard")
		}
	}
}

func TestLoadWith_RequiresSecret(t *testing.T) {
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{})); err == nil {
		t.Fatal("expected error without JWT_SECRET")
	}
}

func TestLoadWith_Overrides(t *testing.T) {
	cfg, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET":           "s3cret",
		"JWT_TTL":              "2h",
		"ADMIN_SIGNUP_ENABLED": "false",
		"CORS_ORIGINS":         "https://a.example,https://b.example",
		"ENV":                  "production",
		"JANITOR_WORKERS":      "4",
	}))
	if err != nil {
		t.Fatalf("LoadWith: %v", err)
	}

	if cfg.Auth.JWTTTL != 2*time.Hour {
		t.Errorf("expected 2h TTL, got %v", cfg.Auth.JWTTTL)
	}
	if cfg.Auth.AdminSignupEnabled {
		t.Error("expected admin signup disabled")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("unexpected origins: %v", cfg.CORSOrigins)
	}
	if !cfg.IsProduction() || cfg.JanitorWorkers != 4 {
		t.Errorf("unexpected env/workers: %s/%d", cfg.Env, cfg.JanitorWorkers)
	}
}

func TestLoadWith_RejectsNonPositiveTTL(t *testing.T) {
	_, err := LoadWith(context.Background(), envconfig.MapLookuper(map[string]string{
		"JWT_SECRET": "s3cret",
		"JWT_TTL":    "0s",
	}))
	if err == nil {
		t.Fatal("expected error for zero TTL")
	}
}

func TestLoadWith_RejectsWildcardOriginInProduction(t *testing.T) {
	env := map[string]string{
		"JWT_SECRET":   "s3cret",
		"CORS_ORIGINS": "https://a.example,*",
		"ENV":          "production",
	}
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err == nil {
		t.Fatal("expected error for wildcard origin in production")
	}

	env["ENV"] = "development"
	if _, err := LoadWith(context.Background(), envconfig.MapLookuper(env)); err != nil {
		t.Errorf("wildcard should be allowed outside production: %v", err)
	}
}
