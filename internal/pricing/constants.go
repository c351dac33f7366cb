package pricing

import "time"

// Cache names, used in logs and metric labels
const (
	CacheNameSeedPrices = "seed_prices"
	CacheNameShopStock  = "shop_stock"
)

// Lookup memo defaults
const (
	DefaultLookupCacheSize = 512
	DefaultLookupTTL       = 24 * time.Hour

	lookupKindCheapest  = "cheapest"
	lookupKindExpensive = "expensive"
)

// NoShopPrice is returned by SpecificShopPrice when the shop does not sell the item.
const NoShopPrice = -1

// Log message constants
const (
	LogMsgCacheRebuilt       = "Price cache rebuilt"
	LogMsgCacheRebuildFailed = "Price cache rebuild failed"
	LogMsgCachesInvalidated  = "Price caches invalidated"
	LogMsgDuplicateShopEntry = "Duplicate shop entry id, skipping"
	LogMsgShopItemUnknown    = "Shop entry references unknown item, skipping"
	LogMsgShopUnknown        = "Price requested from unknown shop"
	LogMsgSkippingShop       = "Skipping shop with non-money currency"
	LogMsgDayRollover        = "Day rollover, rebuilding price caches"
)
