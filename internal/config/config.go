// Package config loads docstore server configuration from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/nainya/docstore/pkg/storage/sqlstore"
)

// Config holds docstore server configuration.
type Config struct {
	Port        int `env:"DOCSTORE_PORT"         envDefault:"9097"`
	MetricsPort int `env:"DOCSTORE_METRICS_PORT" envDefault:"9098"`

	DBDriver string `env:"DOCSTORE_DB_DRIVER" envDefault:"sqlite"`
	DBDSN    string `env:"DOCSTORE_DB_DSN"    envDefault:"data/docstore.db"`

	LogLevel  string `env:"DOCSTORE_LOG_LEVEL"  envDefault:"info"`
	LogPretty bool   `env:"DOCSTORE_LOG_PRETTY" envDefault:"false"`

	DefaultPageSize  int `env:"DOCSTORE_DEFAULT_PAGE_SIZE"  envDefault:"50"`
	MaxPageSize      int `env:"DOCSTORE_MAX_PAGE_SIZE"      envDefault:"500"`
	BatchConcurrency int `env:"DOCSTORE_BATCH_CONCURRENCY"  envDefault:"4"`
	MaxMsgBytes      int `env:"DOCSTORE_MAX_MSG_BYTES"      envDefault:"104857600"`

	OTelEndpoint string `env:"DOCSTORE_OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"DOCSTORE_OTEL_ENABLED" envDefault:"true"`
}

// Parse loads Config from the environment, then applies flag overrides from args.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Port, "port", cfg.Port, "gRPC listen port")
	fs.IntVar(&cfg.MetricsPort, "metrics-port", cfg.MetricsPort, "metrics/health HTTP port (0 disables)")
	fs.StringVar(&cfg.DBDriver, "db-driver", cfg.DBDriver, "storage driver: sqlite or postgres")
	fs.StringVar(&cfg.DBDSN, "db", cfg.DBDSN, "sqlite file path or postgres connection URL")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.LogPretty, "log-pretty", cfg.LogPretty, "human readable console logs")
	fs.IntVar(&cfg.DefaultPageSize, "default-page-size", cfg.DefaultPageSize, "page size used when a request sets none")
	fs.IntVar(&cfg.MaxPageSize, "max-page-size", cfg.MaxPageSize, "largest page size a request may ask for")
	fs.IntVar(&cfg.BatchConcurrency, "batch-concurrency", cfg.BatchConcurrency, "documents written in parallel per batch")
	fs.IntVar(&cfg.MaxMsgBytes, "max-msg-bytes", cfg.MaxMsgBytes, "largest gRPC message accepted or sent")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint URL (empty disables tracing)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	cfg.DBDriver, _ = sqlstore.NormalizeDriver(cfg.DBDriver)
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if _, err := sqlstore.NormalizeDriver(c.DBDriver); err != nil {
		return err
	}
	if c.DBDSN == "" {
		return errors.New("db dsn is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.MetricsPort < 0 || c.MetricsPort > 65535 {
		return fmt.Errorf("invalid metrics port %d", c.MetricsPort)
	}
	if c.DefaultPageSize <= 0 || c.MaxPageSize < c.DefaultPageSize {
		return fmt.Errorf("page sizes must satisfy 0 < default (%d) <= max (%d)", c.DefaultPageSize, c.MaxPageSize)
	}
	if c.BatchConcurrency <= 0 {
		return fmt.Errorf("batch concurrency must be positive, got %d", c.BatchConcurrency)
	}
	if c.MaxMsgBytes <= 0 {
		return fmt.Errorf("max message size must be positive, got %d", c.MaxMsgBytes)
	}
	return nil
}

// TracingEnabled reports whether spans should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && c.OTelEndpoint != ""
}
