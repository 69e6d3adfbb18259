package admin

import (
	"context"
	"flag"
	"fmt"
	"strings"

	platformcmd "github.com/louisbranch/dispatchdesk/internal/platform/cmd"
	"github.com/louisbranch/dispatchdesk/internal/platform/config"
	"github.com/louisbranch/dispatchdesk/internal/services/admin"
)

const (
	envHTTPAddr = "DISPATCH_DESK_ADMIN_ADDR"
	envSeed     = "DISPATCH_DESK_SEED"
	envHTMXSrc  = "DISPATCH_DESK_HTMX_SRC"
)

// Config holds the admin command configuration.
type Config struct {
	HTTPAddr string `env:"DISPATCH_DESK_ADMIN_ADDR" envDefault:":8082"`
	Seed     bool   `env:"DISPATCH_DESK_SEED" envDefault:"true"`
	HTMXSrc  string `env:"DISPATCH_DESK_HTMX_SRC"`
}

// EnvLookup returns the value for a key when present.
type EnvLookup func(string) (string, bool)

// ParseConfig reads environment defaults through lookup, then flags.
func ParseConfig(fs *flag.FlagSet, args []string, lookup EnvLookup) (Config, error) {
	var cfg Config
	if err := config.ParseEnvFrom(&cfg, environment(lookup, envHTTPAddr, envSeed, envHTMXSrc)); err != nil {
		return Config{}, err
	}
	if fs == nil {
		return cfg, nil
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.BoolVar(&cfg.Seed, "seed", cfg.Seed, "load sample managers, drivers, and orders on startup")
	fs.StringVar(&cfg.HTMXSrc, "htmx-src", cfg.HTMXSrc, "htmx script URL (defaults to the vendored copy when present)")
	if err := platformcmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the admin dashboard server.
func Run(ctx context.Context, cfg Config) error {
	return platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceAdmin, func(ctx context.Context) error {
		return serve(ctx, cfg)
	})
}

func serve(ctx context.Context, cfg Config) error {
	server, err := admin.NewServer(admin.Config{
		HTTPAddr: cfg.HTTPAddr,
		Seed:     cfg.Seed,
		HTMXSrc:  cfg.HTMXSrc,
	})
	if err != nil {
		return fmt.Errorf("init admin server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve admin: %w", err)
	}
	return nil
}

// environment snapshots the non-blank values of keys.
func environment(lookup EnvLookup, keys ...string) map[string]string {
	values := make(map[string]string, len(keys))
	if lookup == nil {
		return values
	}
	for _, key := range keys {
		if value, ok := lookup(key); ok {
			if trimmed := strings.TrimSpace(value); trimmed != "" {
				values[key] = trimmed
			}
		}
	}
	return values
}
