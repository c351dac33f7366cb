package config

import "time"

// Seed price sources
const (
	SeedSourceFile     = "file"
	SeedSourcePostgres = "postgres"
)

// Defaults
const (
	DefaultPort                 = 8080
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultEnvironment          = "dev"
	DefaultServiceName          = "crop-profit"
	DefaultVersion              = "dev"
	DefaultDataDir              = "configs/data"
	DefaultSeedPricesPath       = "configs/data/seed_prices.json"
	DefaultDayRolloverInterval  = 24 * time.Hour
	DefaultPriceLookupCacheSize = 512
	DefaultWorkerCount          = 2
	DefaultDBMaxConns           = 20
	DefaultDBMaxConnIdleTime    = 5 * time.Minute
	DefaultDBMaxConnLifetime    = 30 * time.Minute
)

// Error message constants
const (
	ErrMsgInvalidPort       = "invalid PORT value"
	ErrMsgInvalidSeedSource = "invalid SEED_PRICE_SOURCE"
	ErrMsgInvalidInterval   = "DAY_ROLLOVER_INTERVAL must be positive"
	ErrMsgInvalidCacheSize  = "PRICE_LOOKUP_CACHE_SIZE must be positive"
	ErrMsgInvalidWorkers    = "WORKER_COUNT must be positive"
	ErrMsgInvalidGameID     = "invalid GAME_ID value"
	ErrMsgInvalidDaysPlayed = "invalid DAYS_PLAYED value"
)
