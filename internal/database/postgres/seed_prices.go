package postgres

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
)

const (
	querySelectSeedPrices = `SELECT seed_id, price FROM seed_prices`
	queryUpsertSeedPrice  = `
		INSERT INTO seed_prices (seed_id, price, source, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (seed_id) DO UPDATE
		SET price = EXCLUDED.price, source = EXCLUDED.source, updated_at = NOW()`
	queryDeleteSeedPrice = `DELETE FROM seed_prices WHERE seed_id = $1`
)

// SeedPriceRepository stores the static seed price table in PostgreSQL.
// It satisfies pricing.SeedPriceSource.
type SeedPriceRepository struct {
	db *pgxpool.Pool
}

// NewSeedPriceRepository creates a new SeedPriceRepository
func NewSeedPriceRepository(db *pgxpool.Pool) *SeedPriceRepository {
	return &SeedPriceRepository{db: db}
}

// LoadSeedPrices returns every stored price keyed by bare seed id.
func (r *SeedPriceRepository) LoadSeedPrices(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.Query(ctx, querySelectSeedPrices)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySeedPrices, err)
	}
	defer rows.Close()

	prices := make(map[string]int)
	for rows.Next() {
		var id string
		var price int32
		if err := rows.Scan(&id, &price); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanSeedPrice, err)
		}
		prices[domain.UnqualifiedID(id)] = int(price)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQuerySeedPrices, err)
	}
	return prices, nil
}

// UpsertSeedPrices writes prices in one transaction, tagging each row with
// source.
func (r *SeedPriceRepository) UpsertSeedPrices(ctx context.Context, prices map[string]int, source string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, id := range slices.Sorted(maps.Keys(prices)) {
		price := prices[id]
		if price < 0 {
			return fmt.Errorf("%w: %s %s: %d", domain.ErrInvalidInput, ErrMsgFailedToUpsertSeedPrice, id, price)
		}
		batch.Queue(queryUpsertSeedPrice, domain.UnqualifiedID(id), price, source)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToUpsertSeedPrice, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommit, err)
	}

	logger.FromContext(ctx).Info(LogMsgSeedPricesImported, "count", len(prices), "source", source)
	return nil
}

// DeleteSeedPrice removes one seed's price. Unknown ids are not an error.
func (r *SeedPriceRepository) DeleteSeedPrice(ctx context.Context, seedID string) error {
	if _, err := r.db.Exec(ctx, queryDeleteSeedPrice, domain.UnqualifiedID(seedID)); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSeedPrice, err)
	}
	return nil
}
