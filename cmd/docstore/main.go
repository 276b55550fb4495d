// docstore gRPC server
// Serves versioned documents, tag state and the tag audit trail
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/nainya/docstore/internal/config"
	"github.com/nainya/docstore/internal/logger"
	"github.com/nainya/docstore/internal/metrics"
	"github.com/nainya/docstore/internal/server"
	"github.com/nainya/docstore/internal/tracing"
	"github.com/nainya/docstore/pkg/keylock"
	"github.com/nainya/docstore/pkg/ledger"
	"github.com/nainya/docstore/pkg/session"
	"github.com/nainya/docstore/pkg/storage/sqlstore"
	"github.com/nainya/docstore/pkg/tags"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "docstore: %v\n", err)
		os.Exit(2)
	}

	log := logger.InitGlobalLogger(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("docstore server failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *logger.Logger) error {
	log.LogServerStart(cfg.Port, cfg.DBDriver)

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:  cfg.TracingEnabled(),
		Endpoint: cfg.OTelEndpoint,
		Version:  server.Version,
	})
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			log.Warn().Err(err).Msg("flush traces")
		}
	}()

	m := metrics.NewMetrics(prometheus.DefaultRegisterer)

	store, err := sqlstore.Open(ctx, cfg.DBDriver, cfg.DBDSN,
		sqlstore.WithObserver(server.NewStoreObserver(m, log)))
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("close store")
		}
	}()

	locks := keylock.New()
	l := ledger.New(store, locks,
		ledger.WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize),
		ledger.WithBatchConcurrency(cfg.BatchConcurrency),
	)
	srv := server.NewServer(server.Options{
		Store:    store,
		Ledger:   l,
		Tags:     tags.New(store, locks, tags.WithPageSizes(cfg.DefaultPageSize, cfg.MaxPageSize)),
		Sessions: session.New(l),
		Metrics:  m,
		Logger:   log,
	})

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	app := server.NewApp(lis, srv, cfg.MaxMsgBytes)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.Serve(ctx)
	})

	if cfg.MetricsPort > 0 {
		obs := server.NewObservabilityServer(cfg.MetricsPort, prometheus.DefaultGatherer, store.Ping, log)
		g.Go(obs.Start)
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return obs.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
