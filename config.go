package hypixel

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/steviee/go-hypixel/internal/backoff"
	"github.com/steviee/go-hypixel/internal/transport"
)

const (
	// DefaultHypixelBaseURL is the statistics API base URL.
	DefaultHypixelBaseURL = "https://api.hypixel.net"

	// DefaultMojangBaseURL is the identity API base URL.
	DefaultMojangBaseURL = "https://api.mojang.com"

	// DefaultTimeout bounds network waits and rate limit sleeps.
	DefaultTimeout = 10 * time.Second

	// DefaultCacheTTL is the width of a cache time bucket.
	DefaultCacheTTL = 60 * time.Second

	// DefaultUserAgent is sent with every request.
	DefaultUserAgent = "go-hypixel/dev (https://github.com/steviee/go-hypixel)"
)

// Config configures a Client.
type Config struct {
	// Keys are the Hypixel API keys used round-robin.
	Keys []string `json:"keys" yaml:"keys" mapstructure:"keys"`
	// VerifyKeys validates every key when the client is opened.
	VerifyKeys bool          `json:"verify_keys" yaml:"verify_keys" mapstructure:"verify_keys"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	HypixelBaseURL string `json:"hypixel_base_url" yaml:"hypixel_base_url" mapstructure:"hypixel_base_url"`
	MojangBaseURL  string `json:"mojang_base_url" yaml:"mojang_base_url" mapstructure:"mojang_base_url"`
	UserAgent      string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	Cache     CacheConfig     `json:"cache" yaml:"cache" mapstructure:"cache"`
	RateLimit RateLimitConfig `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`
	Backoff   BackoffConfig   `json:"backoff" yaml:"backoff" mapstructure:"backoff"`

	// RequestsPerMinute throttles Hypixel requests client side. 0 disables it.
	RequestsPerMinute int `json:"requests_per_minute" yaml:"requests_per_minute" mapstructure:"requests_per_minute"`

	// Logger receives debug and warning messages. Defaults to slog.Default().
	Logger *slog.Logger `json:"-" yaml:"-" mapstructure:"-"`
	// Registerer enables Prometheus metrics when set.
	Registerer prometheus.Registerer `json:"-" yaml:"-" mapstructure:"-"`
}

// CacheConfig holds the cache settings of both APIs.
type CacheConfig struct {
	Hypixel CacheSettings `json:"hypixel" yaml:"hypixel" mapstructure:"hypixel"`
	Mojang  CacheSettings `json:"mojang" yaml:"mojang" mapstructure:"mojang"`
}

// CacheSettings configures one response cache.
type CacheSettings struct {
	Enabled bool `json:"enabled" yaml:"enabled" mapstructure:"enabled"`
	// Size is the maximum number of entries, 0 for unbounded.
	Size int           `json:"size" yaml:"size" mapstructure:"size"`
	TTL  time.Duration `json:"ttl" yaml:"ttl" mapstructure:"ttl"`
}

// RateLimitConfig selects which APIs have 429 responses handled in the
// client. When disabled a 429 fails with ErrRateLimited.
type RateLimitConfig struct {
	Hypixel bool `json:"hypixel" yaml:"hypixel" mapstructure:"hypixel"`
	Mojang  bool `json:"mojang" yaml:"mojang" mapstructure:"mojang"`
}

// BackoffConfig configures the Mojang retry loop.
type BackoffConfig struct {
	Base time.Duration `json:"base" yaml:"base" mapstructure:"base"`
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Timeout:        DefaultTimeout,
		HypixelBaseURL: DefaultHypixelBaseURL,
		MojangBaseURL:  DefaultMojangBaseURL,
		UserAgent:      DefaultUserAgent,
		Cache: CacheConfig{
			Hypixel: CacheSettings{TTL: DefaultCacheTTL},
			Mojang:  CacheSettings{TTL: DefaultCacheTTL},
		},
		RateLimit: RateLimitConfig{
			Hypixel: true,
			Mojang:  true,
		},
		Backoff: BackoffConfig{
			Base: backoff.DefaultBase,
		},
	}
}

// withDefaults returns a copy of cfg with zero fields filled in.
// Boolean switches are left as given.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()

	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.HypixelBaseURL == "" {
		cfg.HypixelBaseURL = def.HypixelBaseURL
	}
	if cfg.MojangBaseURL == "" {
		cfg.MojangBaseURL = def.MojangBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	if cfg.Cache.Hypixel.TTL == 0 {
		cfg.Cache.Hypixel.TTL = def.Cache.Hypixel.TTL
	}
	if cfg.Cache.Mojang.TTL == 0 {
		cfg.Cache.Mojang.TTL = def.Cache.Mojang.TTL
	}
	if cfg.Backoff.Base == 0 {
		cfg.Backoff.Base = def.Backoff.Base
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return cfg
}

// Validate checks the configuration.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", cfg.Timeout)
	}

	for name, c := range map[string]CacheSettings{"hypixel": cfg.Cache.Hypixel, "mojang": cfg.Cache.Mojang} {
		if c.Size < 0 {
			return fmt.Errorf("%s cache size must be >= 0, got %d", name, c.Size)
		}
		if c.Enabled && c.TTL < 0 {
			return fmt.Errorf("%s cache ttl must be >= 0, got %v", name, c.TTL)
		}
	}

	if cfg.Backoff.Base < 0 {
		return fmt.Errorf("backoff base must be >= 0, got %v", cfg.Backoff.Base)
	}

	if cfg.RequestsPerMinute < 0 {
		return fmt.Errorf("requests per minute must be >= 0, got %d", cfg.RequestsPerMinute)
	}

	for _, key := range cfg.Keys {
		if err := transport.CheckKey(key); err != nil {
			return err
		}
	}

	return nil
}

// LoadConfig reads a YAML config file on top of DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
