package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperVar = "CROP_PROFIT_TEST_VAR"

func TestGetEnvAsInt(t *testing.T) {
	tests := []struct {
		name  string
		value *string
		want  int
	}{
		{"unset", nil, 42},
		{"valid", ptr("100"), 100},
		{"negative", ptr("-10"), -10},
		{"zero", ptr("0"), 0},
		{"empty", ptr(""), 42},
		{"float", ptr("42.5"), 42},
		{"garbage", ptr("lots"), 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(helperVar, 42))
		})
	}
}

func TestGetEnvAsDuration(t *testing.T) {
	const fallback = 24 * time.Hour

	tests := []struct {
		name  string
		value *string
		want  time.Duration
	}{
		{"unset", nil, fallback},
		{"minutes", ptr("10m"), 10 * time.Minute},
		{"compound", ptr("1h30m45s"), time.Hour + 30*time.Minute + 45*time.Second},
		{"milliseconds", ptr("500ms"), 500 * time.Millisecond},
		{"bare number", ptr("100"), fallback},
		{"garbage", ptr("daily"), fallback},
		{"empty", ptr(""), fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setOrUnset(t, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(helperVar, fallback))
		})
	}
}

func TestGetEnvAsUint64(t *testing.T) {
	t.Run("unset uses default", func(t *testing.T) {
		setOrUnset(t, nil)
		v, err := getEnvAsUint64(helperVar, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), v)
	})

	t.Run("large value", func(t *testing.T) {
		setOrUnset(t, ptr("18446744073709551615"))
		v, err := getEnvAsUint64(helperVar, 0)
		require.NoError(t, err)
		assert.Equal(t, uint64(1<<64-1), v)
	})

	t.Run("negative is an error", func(t *testing.T) {
		setOrUnset(t, ptr("-1"))
		_, err := getEnvAsUint64(helperVar, 0)
		assert.Error(t, err)
	})
}

func TestGetEnvAsList(t *testing.T) {
	setOrUnset(t, nil)
	assert.Empty(t, getEnvAsList(helperVar))

	setOrUnset(t, ptr("10.0.0.1, 10.0.0.2,,"))
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, getEnvAsList(helperVar))
}

func TestLoad_DatabasePoolConfig(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantConns    int
		wantIdle     time.Duration
		wantLifetime time.Duration
	}{
		{
			name:         "defaults",
			wantConns:    DefaultDBMaxConns,
			wantIdle:     DefaultDBMaxConnIdleTime,
			wantLifetime: DefaultDBMaxConnLifetime,
		},
		{
			name: "custom",
			env: map[string]string{
				"DB_MAX_CONNS":          "50",
				"DB_MAX_CONN_IDLE_TIME": "10m",
				"DB_MAX_CONN_LIFETIME":  "1h",
			},
			wantConns:    50,
			wantIdle:     10 * time.Minute,
			wantLifetime: time.Hour,
		},
		{
			name: "malformed values fall back",
			env: map[string]string{
				"DB_MAX_CONNS":          "many",
				"DB_MAX_CONN_IDLE_TIME": "invalid",
				"DB_MAX_CONN_LIFETIME":  "forever",
			},
			wantConns:    DefaultDBMaxConns,
			wantIdle:     DefaultDBMaxConnIdleTime,
			wantLifetime: DefaultDBMaxConnLifetime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			require.NoError(t, err)
			assert.Equal(t, tt.wantConns, cfg.DBMaxConns)
			assert.Equal(t, tt.wantIdle, cfg.DBMaxConnIdleTime)
			assert.Equal(t, tt.wantLifetime, cfg.DBMaxConnLifetime)
		})
	}
}

func ptr(s string) *string { return &s }

// setOrUnset sets helperVar for the test, or unsets it when value is nil.
func setOrUnset(t *testing.T, value *string) {
	t.Helper()
	t.Setenv(helperVar, "")
	if value == nil {
		require.NoError(t, os.Unsetenv(helperVar))
		return
	}
	t.Setenv(helperVar, *value)
}
