// Package mojang resolves player names to uuids and back through the Mojang
// API.
package mojang

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	"github.com/steviee/go-hypixel/internal/apierr"
	"github.com/steviee/go-hypixel/internal/backoff"
	"github.com/steviee/go-hypixel/internal/cache"
	"github.com/steviee/go-hypixel/internal/metrics"
	"github.com/steviee/go-hypixel/internal/transport"
)

const (
	// DefaultBaseURL is the default Mojang API base URL.
	DefaultBaseURL = "https://api.mojang.com"

	// DefaultTimeout bounds the backoff loop.
	DefaultTimeout = 10 * time.Second
)

// Config holds client configuration.
type Config struct {
	BaseURL string
	// Timeout is the longest allowed gap between two backoff delays.
	Timeout time.Duration
	// HandleRateLimit retries 429 responses with exponential backoff.
	HandleRateLimit bool
	BackoffBase     time.Duration

	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// Client is a Mojang API client for name and uuid lookups. Both directions
// are cached independently.
type Client struct {
	session *transport.Session
	cfg     Config
	log     *slog.Logger
	byName  *cache.Cache[Profile]
	byID    *cache.Cache[Profile]
	sleep   func(ctx context.Context, d time.Duration) error
	backoff []backoff.Option
}

// NewClient creates a client that sends its requests through session.
func NewClient(session *transport.Session, config *Config) *Client {
	if config == nil {
		config = &Config{}
	}
	cfg := *config

	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	c := &Client{
		session: session,
		cfg:     cfg,
		log:     cfg.Logger,
		sleep:   transport.Sleep,
	}

	if cfg.CacheEnabled {
		observe := cache.WithObserver(cfg.Metrics.CacheObserver(apierr.APIMojang))
		c.byName = cache.New(func(ctx context.Context, args cache.Args) (Profile, error) {
			return c.queryName(ctx, args["name"])
		}, cfg.CacheTTL, cfg.CacheSize, observe)
		c.byID = cache.New(func(ctx context.Context, args cache.Args) (Profile, error) {
			return c.queryID(ctx, args["uuid"])
		}, cfg.CacheTTL, cfg.CacheSize, observe)
	}

	c.log.Debug("creating Mojang API client",
		"base_url", cfg.BaseURL,
		"timeout", cfg.Timeout,
		"cache_enabled", cfg.CacheEnabled)

	return c
}

// Profile looks up the identity for a player name.
func (c *Client) Profile(ctx context.Context, name string) (Profile, error) {
	if err := validateUsername(name); err != nil {
		return Profile{}, apierr.InvalidArgument("invalid username: %v", err)
	}
	if c.byName == nil {
		return c.queryName(ctx, name)
	}
	return c.byName.Get(ctx, cache.Args{"name": name})
}

// UUID returns the undashed uuid for a player name.
func (c *Client) UUID(ctx context.Context, name string) (string, error) {
	p, err := c.Profile(ctx, name)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

// Name returns the current name for a uuid, dashed or not.
func (c *Client) Name(ctx context.Context, id string) (string, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", apierr.InvalidArgument("invalid uuid %q: %v", id, err)
	}
	undashed := strings.ReplaceAll(parsed.String(), "-", "")

	var p Profile
	if c.byID == nil {
		p, err = c.queryID(ctx, undashed)
	} else {
		p, err = c.byID.Get(ctx, cache.Args{"uuid": undashed})
	}
	if err != nil {
		return "", err
	}
	return p.Name, nil
}

// UUIDCacheInfo returns the statistics of the name to uuid cache.
func (c *Client) UUIDCacheInfo() cache.Info {
	if c.byName == nil {
		return cache.Info{}
	}
	return c.byName.Info()
}

// NameCacheInfo returns the statistics of the uuid to name cache.
func (c *Client) NameCacheInfo() cache.Info {
	if c.byID == nil {
		return cache.Info{}
	}
	return c.byID.Info()
}

// ClearCache clears both lookup caches.
func (c *Client) ClearCache() {
	if c.byName != nil {
		c.byName.Clear()
	}
	if c.byID != nil {
		c.byID.Clear()
	}
}

func (c *Client) queryName(ctx context.Context, name string) (Profile, error) {
	url := fmt.Sprintf("%s/users/profiles/minecraft/%s", strings.TrimRight(c.cfg.BaseURL, "/"), name)
	p, err := c.query(ctx, "uuid", url, name)
	if err != nil {
		return Profile{}, err
	}
	if p.ID == "" {
		return Profile{}, notFound(name)
	}
	return p, nil
}

func (c *Client) queryID(ctx context.Context, id string) (Profile, error) {
	url := fmt.Sprintf("%s/user/profile/%s", strings.TrimRight(c.cfg.BaseURL, "/"), id)
	p, err := c.query(ctx, "name", url, id)
	if err != nil {
		return Profile{}, err
	}
	if p.Name == "" {
		return Profile{}, notFound(id)
	}
	return p, nil
}

// query performs one lookup, retrying rate limited responses with
// exponential backoff until the calculator gives up.
func (c *Client) query(ctx context.Context, endpoint, url, subject string) (Profile, error) {
	call := transport.Call{API: apierr.APIMojang, Endpoint: endpoint, URL: url}

	resp, err := c.session.Get(ctx, call)
	if err != nil {
		return Profile{}, err
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		c.cfg.Metrics.RecordRateLimited(apierr.APIMojang)
		if !c.cfg.HandleRateLimit {
			return Profile{}, apierr.RateLimited(apierr.APIMojang, 0)
		}

		opts := append([]backoff.Option{
			backoff.WithBase(c.cfg.BackoffBase),
			backoff.WithAPI(apierr.APIMojang),
		}, c.backoff...)
		calc := backoff.New(c.cfg.Timeout, opts...)

		for resp.StatusCode() == http.StatusTooManyRequests {
			delay, err := calc.Delay()
			if err != nil {
				return Profile{}, err
			}

			c.log.Warn("mojang API rate limit exceeded, backing off",
				"subject", subject,
				"attempt", calc.Exponent(),
				"delay", delay)
			c.cfg.Metrics.RecordRetryWait(apierr.APIMojang, delay)

			if err := c.sleep(ctx, delay); err != nil {
				return Profile{}, fmt.Errorf("wait for rate limit: %w", err)
			}
			if resp, err = c.session.Get(ctx, call); err != nil {
				return Profile{}, err
			}
		}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		body := resp.Body()
		if len(strings.TrimSpace(string(body))) == 0 {
			return Profile{}, notFound(subject)
		}
		var pr profileResponse
		if err := sonic.Unmarshal(body, &pr); err != nil {
			return Profile{}, apierr.Transport(apierr.APIMojang, http.StatusOK, "could not decode the mojang API response", err)
		}
		c.log.Debug("mojang lookup success", "subject", subject, "id", pr.ID, "name", pr.Name)
		return Profile{ID: pr.ID, Name: pr.Name}, nil

	case http.StatusNoContent, http.StatusNotFound:
		c.log.Debug("mojang player not found", "subject", subject)
		return Profile{}, notFound(subject)

	default:
		return Profile{}, unexpectedStatus(resp.StatusCode(), resp.Body())
	}
}

// validateUsername validates a Minecraft username.
// Rules:
// - Must be 1-16 characters long
// - Must contain only alphanumeric characters and underscores
func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}

	if len(username) > 16 {
		return fmt.Errorf("username must be 16 characters or less, got %d", len(username))
	}

	for _, ch := range username {
		isAlpha := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
		isDigit := ch >= '0' && ch <= '9'
		isUnderscore := ch == '_'

		if !isAlpha && !isDigit && !isUnderscore {
			return fmt.Errorf("username must contain only alphanumeric characters and underscores: %q", username)
		}
	}

	return nil
}
