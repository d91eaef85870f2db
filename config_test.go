package hypixel

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultHypixelBaseURL, cfg.HypixelBaseURL)
	assert.Equal(t, DefaultMojangBaseURL, cfg.MojangBaseURL)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.Hypixel.TTL)
	assert.False(t, cfg.Cache.Hypixel.Enabled)
	assert.False(t, cfg.Cache.Mojang.Enabled)
	assert.True(t, cfg.RateLimit.Hypixel)
	assert.True(t, cfg.RateLimit.Mojang)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{RateLimit: RateLimitConfig{Mojang: true}}.withDefaults()

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.Mojang.TTL)
	assert.NotNil(t, cfg.Logger)
	assert.False(t, cfg.RateLimit.Hypixel)
	assert.True(t, cfg.RateLimit.Mojang)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) { c.Keys = []string{testKey} },
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: "timeout must be >= 0",
		},
		{
			name:    "negative cache size",
			mutate:  func(c *Config) { c.Cache.Mojang.Size = -1 },
			wantErr: "mojang cache size must be >= 0",
		},
		{
			name: "negative ttl",
			mutate: func(c *Config) {
				c.Cache.Hypixel = CacheSettings{Enabled: true, TTL: -time.Second}
			},
			wantErr: "hypixel cache ttl must be >= 0",
		},
		{
			name:    "negative backoff",
			mutate:  func(c *Config) { c.Backoff.Base = -1 },
			wantErr: "backoff base must be >= 0",
		},
		{
			name:    "negative rate",
			mutate:  func(c *Config) { c.RequestsPerMinute = -5 },
			wantErr: "requests per minute must be >= 0",
		},
		{
			name:    "malformed key",
			mutate:  func(c *Config) { c.Keys = []string{testKey, "short"} },
			wantErr: "not a valid uuid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	var nilCfg *Config
	assert.Error(t, nilCfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "config.yaml")
	data := `keys:
  - ` + testKey + `
timeout: 3s
cache:
  hypixel:
    enabled: true
    size: 256
rate_limit:
  mojang: false
requests_per_minute: 120
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{testKey}, cfg.Keys)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.True(t, cfg.Cache.Hypixel.Enabled)
	assert.Equal(t, 256, cfg.Cache.Hypixel.Size)
	assert.Equal(t, DefaultCacheTTL, cfg.Cache.Hypixel.TTL)
	assert.True(t, cfg.RateLimit.Hypixel)
	assert.False(t, cfg.RateLimit.Mojang)
	assert.Equal(t, 120, cfg.RequestsPerMinute)
	assert.Equal(t, DefaultHypixelBaseURL, cfg.HypixelBaseURL)

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("keys: [\n"), 0o600))
	_, err = LoadConfig(bad)
	assert.ErrorContains(t, err, "failed to parse config file")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("timeout: -1s\n"), 0o600))
	_, err = LoadConfig(invalid)
	assert.ErrorContains(t, err, "invalid config")
}
