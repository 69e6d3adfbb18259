package admin

import (
	"context"
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil, func(string) (string, bool) { return "", false })
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != ":8082" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if !cfg.Seed {
		t.Fatal("expected seeding enabled by default")
	}
}

func TestParseConfigEnv(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		switch key {
		case "DISPATCH_DESK_ADMIN_ADDR":
			return " env-admin:9000 ", true
		case "DISPATCH_DESK_SEED":
			return "false", true
		default:
			return "", false
		}
	}
	cfg, err := ParseConfig(fs, nil, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-admin:9000" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Seed {
		t.Fatal("expected seeding disabled by env")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		if key == "DISPATCH_DESK_ADMIN_ADDR" {
			return "env-admin", true
		}
		return "", false
	}
	cfg, err := ParseConfig(fs, []string{"-http-addr", "flag-admin", "-seed=false"}, lookup)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "flag-admin" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Seed {
		t.Fatal("expected seeding disabled by flag")
	}
}

func TestParseConfigRejectsInvalidSeed(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	lookup := func(key string) (string, bool) {
		if key == "DISPATCH_DESK_SEED" {
			return "sometimes", true
		}
		return "", false
	}
	if _, err := ParseConfig(fs, nil, lookup); err == nil {
		t.Fatal("expected error for invalid seed value")
	}
}

func TestServeRequiresAddress(t *testing.T) {
	if err := serve(context.Background(), Config{}); err == nil {
		t.Fatal("expected error for missing http addr")
	}
}

func TestServeStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := serve(ctx, Config{HTTPAddr: "127.0.0.1:0", Seed: true}); err != nil {
		t.Fatalf("serve: %v", err)
	}
}
