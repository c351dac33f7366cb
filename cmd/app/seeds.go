package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CropProfit_Go/internal/catalog"
	"github.com/osse101/CropProfit_Go/internal/config"
	"github.com/osse101/CropProfit_Go/internal/database"
	"github.com/osse101/CropProfit_Go/internal/database/postgres"
	"github.com/osse101/CropProfit_Go/internal/pricing"
	"github.com/osse101/CropProfit_Go/internal/validation"
)

// openSeedSource returns the configured static seed price table. For the
// postgres source it migrates the schema and imports the file table into an
// empty database. The returned pool is nil for the file source.
func openSeedSource(ctx context.Context, cfg *config.Config, schemas validation.SchemaValidator) (pricing.SeedPriceSource, *pgxpool.Pool, error) {
	file := catalog.NewFileSeedPriceSource(cfg.SeedPricesPath, schemas)
	if !cfg.UsesPostgres() {
		return file, nil, nil
	}

	dsn := cfg.GetDBConnString()
	if err := database.RunMigrations(ctx, dsn); err != nil {
		return nil, nil, err
	}
	pool, err := database.NewPool(ctx, dsn, database.PoolConfig{
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
	})
	if err != nil {
		return nil, nil, err
	}

	repo := postgres.NewSeedPriceRepository(pool)
	if err := importIfEmpty(ctx, repo, file); err != nil {
		pool.Close()
		return nil, nil, err
	}
	return repo, pool, nil
}

func importIfEmpty(ctx context.Context, repo *postgres.SeedPriceRepository, file pricing.SeedPriceSource) error {
	existing, err := repo.LoadSeedPrices(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	prices, err := file.LoadSeedPrices(ctx)
	if err != nil {
		return fmt.Errorf("import seed prices: %w", err)
	}
	if err := repo.UpsertSeedPrices(ctx, prices, postgres.SeedPriceSourceImport); err != nil {
		return err
	}
	slog.Info("Imported seed prices into database", "count", len(prices))
	return nil
}
