package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string
	APIKey      string // mutating routes require it when set

	TrustedProxies []string

	DataDir              string
	SchemaDir            string
	SeedPriceSource      string
	SeedPricesPath       string
	DayRolloverInterval  time.Duration
	GameID               uint64
	DaysPlayed           uint64
	PriceLookupCacheSize int
	WorkerCount          int

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		ServiceName: getEnv("SERVICE_NAME", DefaultServiceName),
		Version:     getEnv("VERSION", DefaultVersion),
		APIKey:      getEnv("API_KEY", ""),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),

		DataDir:              getEnv("DATA_DIR", DefaultDataDir),
		SchemaDir:            getEnv("SCHEMA_DIR", ""),
		SeedPriceSource:      getEnv("SEED_PRICE_SOURCE", SeedSourceFile),
		SeedPricesPath:       getEnv("SEED_PRICES_PATH", DefaultSeedPricesPath),
		DayRolloverInterval:  getEnvAsDuration("DAY_ROLLOVER_INTERVAL", DefaultDayRolloverInterval),
		PriceLookupCacheSize: getEnvAsInt("PRICE_LOOKUP_CACHE_SIZE", DefaultPriceLookupCacheSize),
		WorkerCount:          getEnvAsInt("WORKER_COUNT", DefaultWorkerCount),

		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "cropprofit"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.GameID, err = getEnvAsUint64("GAME_ID", 0); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidGameID, err)
	}
	if cfg.DaysPlayed, err = getEnvAsUint64("DAYS_PLAYED", 0); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidDaysPlayed, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values that would only fail later at startup.
func (c *Config) Validate() error {
	var errs []error
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s: %d", ErrMsgInvalidPort, c.Port))
	}
	if c.SeedPriceSource != SeedSourceFile && c.SeedPriceSource != SeedSourcePostgres {
		errs = append(errs, fmt.Errorf("%s: %q", ErrMsgInvalidSeedSource, c.SeedPriceSource))
	}
	if c.DayRolloverInterval <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidInterval))
	}
	if c.PriceLookupCacheSize <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidCacheSize))
	}
	if c.WorkerCount <= 0 {
		errs = append(errs, errors.New(ErrMsgInvalidWorkers))
	}
	return errors.Join(errs...)
}

// UsesPostgres reports whether the seed price table lives in the database.
func (c *Config) UsesPostgres() bool {
	return c.SeedPriceSource == SeedSourcePostgres
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma-separated variable, dropping empty entries.
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func getEnvAsUint64(key string, defaultValue uint64) (uint64, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	return strconv.ParseUint(raw, 10, 64)
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
