package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/CropProfit_Go/internal/calculator"
	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/config"
	"github.com/osse101/CropProfit_Go/internal/handler"
	"github.com/osse101/CropProfit_Go/internal/pricing"
	"github.com/osse101/CropProfit_Go/internal/scheduler"
	"github.com/osse101/CropProfit_Go/internal/server"
	"github.com/osse101/CropProfit_Go/internal/validation"
	"github.com/osse101/CropProfit_Go/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second
	jobQueueSize    = 8
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	initLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Application exited with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	schemas := validation.NewSchemaValidatorAt(cfg.SchemaDir)

	cat, err := catalog.NewLoader(cfg.DataDir, schemas).Load(ctx)
	if err != nil {
		return err
	}

	seeds, pool, err := openSeedSource(ctx, cfg, schemas)
	if err != nil {
		return err
	}
	deps := server.Dependencies{}
	if pool != nil {
		defer pool.Close()
		deps.DB = pool
	}

	clock := pricing.NewDayClock(cfg.GameID, cfg.DaysPlayed)
	accessor, err := pricing.NewAccessor(ctx, seeds, cat, cat.Items, clock, pricing.Options{
		LookupCacheSize: cfg.PriceLookupCacheSize,
	})
	if err != nil {
		return err
	}

	calc := calculator.New(accessor)
	count, err := cat.Populate(ctx, calc)
	if err != nil {
		return err
	}
	slog.Info("Plants registered", "count", count)

	workers := worker.NewPool(cfg.WorkerCount, jobQueueSize)
	workers.Start(ctx)
	defer workers.Stop()

	sched := scheduler.New(ctx, workers)
	sched.Schedule(cfg.DayRolloverInterval, pricing.NewDayRolloverJob(accessor))
	defer sched.Stop()

	deps.Crops = calc
	deps.Registrar = catalog.NewAPI(calc, cat.Items)
	deps.Prices = accessor
	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		Version:        versionOf(cfg),
	}, deps)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// versionOf prefers a version stamped at link time over the configured one.
func versionOf(cfg *config.Config) string {
	if handler.GitCommit != "unset" && cfg.Version == config.DefaultVersion {
		return cfg.Version + "+" + handler.GitCommit
	}
	return cfg.Version
}
