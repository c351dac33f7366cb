// Package pricing resolves seed purchase prices from a static price table
// and from the day's shop stock, each held in its own lazily rebuilt cache.
package pricing

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CropProfit_Go/internal/domain"
	"github.com/osse101/CropProfit_Go/internal/logger"
	"github.com/osse101/CropProfit_Go/internal/metrics"
)

// SeedPriceSource loads the static seed price table, keyed by unqualified id.
type SeedPriceSource interface {
	LoadSeedPrices(ctx context.Context) (map[string]int, error)
}

// ShopProvider supplies the shop definitions the stock table is built from.
type ShopProvider interface {
	Shops(ctx context.Context) ([]domain.Shop, error)
}

// Options tunes the lookup memo.
type Options struct {
	LookupCacheSize int
	LookupTTL       time.Duration
}

// Accessor is the price cache used by plant evaluation and the API.
type Accessor struct {
	// mu orders memo fills against invalidation so no lookup computed from a
	// stale table survives a purge.
	mu sync.RWMutex

	seedPrices *Cache[map[string]int]
	shopStock  *Cache[StockTable]
	lookups    *expirable.LRU[string, int]
	clock      *DayClock
}

// NewAccessor wires both caches and builds them once so that a broken
// source is reported at startup.
func NewAccessor(ctx context.Context, seeds SeedPriceSource, shops ShopProvider, items ItemLookup, clock *DayClock, opts Options) (*Accessor, error) {
	if opts.LookupCacheSize <= 0 {
		opts.LookupCacheSize = DefaultLookupCacheSize
	}
	if opts.LookupTTL <= 0 {
		opts.LookupTTL = DefaultLookupTTL
	}
	if clock == nil {
		clock = NewDayClock(0, 0)
	}

	a := &Accessor{
		lookups: expirable.NewLRU[string, int](opts.LookupCacheSize, nil, opts.LookupTTL),
		clock:   clock,
	}
	a.seedPrices = NewCache(CacheNameSeedPrices, func(ctx context.Context) (map[string]int, error) {
		prices, err := seeds.LoadSeedPrices(ctx)
		if err != nil {
			return nil, err
		}
		metrics.CacheEntries.WithLabelValues(CacheNameSeedPrices).Set(float64(len(prices)))
		return prices, nil
	})
	a.shopStock = NewCache(CacheNameShopStock, func(ctx context.Context) (StockTable, error) {
		defs, err := shops.Shops(ctx)
		if err != nil {
			return StockTable{}, err
		}
		table := ResolveStock(ctx, defs, items, a.clock.Rand())
		metrics.CacheEntries.WithLabelValues(CacheNameShopStock).Set(float64(table.Len()))
		return table, nil
	})

	if err := a.ForceRebuildCache(ctx); err != nil {
		return nil, err
	}
	return a, nil
}

// Clock returns the day clock seeding shop randomness.
func (a *Accessor) Clock() *DayClock {
	return a.clock
}

// CheapestSeedPrice returns the static price of itemID, or else the lowest
// positive price any shop asks for it. Zero means no known price.
func (a *Accessor) CheapestSeedPrice(ctx context.Context, itemID string) (int, error) {
	return a.lookup(ctx, lookupKindCheapest, itemID, slices.Min[[]int])
}

// ExpensiveSeedPrice is CheapestSeedPrice taking the highest shop price.
func (a *Accessor) ExpensiveSeedPrice(ctx context.Context, itemID string) (int, error) {
	return a.lookup(ctx, lookupKindExpensive, itemID, slices.Max[[]int])
}

func (a *Accessor) lookup(ctx context.Context, kind, itemID string, pick func([]int) int) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	key := kind + ":" + itemID
	if price, ok := a.lookups.Get(key); ok {
		metrics.PriceLookups.WithLabelValues(kind, metrics.ResultHit).Inc()
		return price, nil
	}
	metrics.PriceLookups.WithLabelValues(kind, metrics.ResultMiss).Inc()

	static, err := a.seedPrices.Get(ctx)
	if err != nil {
		return 0, err
	}
	if price, ok := static[domain.UnqualifiedID(itemID)]; ok {
		a.lookups.Add(key, price)
		return price, nil
	}

	stock, err := a.shopStock.Get(ctx)
	if err != nil {
		return 0, err
	}
	price := 0
	if prices := stock.Prices(domain.QualifiedObjectID(itemID)); len(prices) > 0 {
		price = pick(prices)
	}
	a.lookups.Add(key, price)
	return price, nil
}

// SpecificShopPrice returns the first price shopID asks for itemID, or
// NoShopPrice when the shop does not stock it or does not exist.
func (a *Accessor) SpecificShopPrice(ctx context.Context, itemID, shopID string) (int, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stock, err := a.shopStock.Get(ctx)
	if err != nil {
		return 0, err
	}
	entries, ok := stock.Shop(shopID)
	if !ok {
		logger.FromContext(ctx).Warn(LogMsgShopUnknown, "shop_id", shopID, "item_id", itemID)
		return NoShopPrice, nil
	}
	qualified := domain.QualifiedObjectID(itemID)
	for _, e := range entries {
		if e.ItemID == qualified {
			return e.Price, nil
		}
	}
	return NoShopPrice, nil
}

// ShopStock returns the resolved stock of one shop.
func (a *Accessor) ShopStock(ctx context.Context, shopID string) ([]domain.StockEntry, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	stock, err := a.shopStock.Get(ctx)
	if err != nil {
		return nil, err
	}
	entries, ok := stock.Shop(shopID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrShopNotFound, shopID)
	}
	return slices.Clone(entries), nil
}

// InvalidateCaches marks both caches stale; the next read rebuilds them.
func (a *Accessor) InvalidateCaches(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.seedPrices.Invalidate()
	a.shopStock.Invalidate()
	a.lookups.Purge()
	logger.FromContext(ctx).Info(LogMsgCachesInvalidated)
}

// InvalidateShopStock marks only the shop stock stale.
func (a *Accessor) InvalidateShopStock(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.shopStock.Invalidate()
	a.lookups.Purge()
	logger.FromContext(ctx).Info(LogMsgCachesInvalidated, "cache", CacheNameShopStock)
}

// ForceRebuildCache rebuilds both caches now.
func (a *Accessor) ForceRebuildCache(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lookups.Purge()
	if _, err := a.seedPrices.Rebuild(ctx); err != nil {
		return err
	}
	if _, err := a.shopStock.Rebuild(ctx); err != nil {
		return err
	}
	return nil
}
