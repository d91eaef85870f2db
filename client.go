package hypixel

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/steviee/go-hypixel/internal/apierr"
	"github.com/steviee/go-hypixel/internal/cache"
	"github.com/steviee/go-hypixel/internal/metrics"
	"github.com/steviee/go-hypixel/internal/mojang"
	"github.com/steviee/go-hypixel/internal/normalize"
	"github.com/steviee/go-hypixel/internal/transport"
)

// CacheInfo reports cache statistics.
type CacheInfo = cache.Info

// Client talks to the Hypixel and Mojang APIs. It is safe for concurrent
// use.
type Client struct {
	cfg     Config
	log     *slog.Logger
	metrics *metrics.Collector
	session *transport.Session
	keys    *transport.Ring
	fetcher *transport.Fetcher
	mojang  *mojang.Client
}

// New creates a client with an open session. A nil config uses
// DefaultConfig. Zero durations and URLs are filled with their defaults.
func New(config *Config) (*Client, error) {
	if config == nil {
		config = DefaultConfig()
	}
	cfg := config.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	c := &Client{
		cfg:     cfg,
		log:     cfg.Logger,
		metrics: metrics.New(cfg.Registerer),
		keys:    transport.NewRing(cfg.Keys),
	}

	c.session = transport.NewSession(transport.SessionConfig{
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    c.log,
		Metrics:   c.metrics,
	})

	c.fetcher = transport.NewFetcher(c.session, c.keys, transport.FetcherConfig{
		BaseURL:           cfg.HypixelBaseURL,
		Timeout:           cfg.Timeout,
		HandleRateLimit:   cfg.RateLimit.Hypixel,
		RequestsPerMinute: cfg.RequestsPerMinute,
		CacheEnabled:      cfg.Cache.Hypixel.Enabled,
		CacheSize:         cfg.Cache.Hypixel.Size,
		CacheTTL:          cfg.Cache.Hypixel.TTL,
		Logger:            c.log,
		Metrics:           c.metrics,
	})

	c.mojang = mojang.NewClient(c.session, &mojang.Config{
		BaseURL:         cfg.MojangBaseURL,
		Timeout:         cfg.Timeout,
		HandleRateLimit: cfg.RateLimit.Mojang,
		BackoffBase:     cfg.Backoff.Base,
		CacheEnabled:    cfg.Cache.Mojang.Enabled,
		CacheSize:       cfg.Cache.Mojang.Size,
		CacheTTL:        cfg.Cache.Mojang.TTL,
		Logger:          c.log,
		Metrics:         c.metrics,
	})

	c.log.Debug("created hypixel client",
		"keys", c.keys.Len(),
		"timeout", cfg.Timeout,
		"hypixel_cache", cfg.Cache.Hypixel.Enabled,
		"mojang_cache", cfg.Cache.Mojang.Enabled)

	return c, nil
}

// Open reopens a closed session. With Config.VerifyKeys set it then
// validates every key.
func (c *Client) Open(ctx context.Context) error {
	c.session.Open()
	if c.cfg.VerifyKeys {
		return c.ValidateKeys(ctx)
	}
	return nil
}

// Close releases the session. Later calls fail with ErrClosedSession unless
// they are answered from the cache. It always returns nil.
func (c *Client) Close() error {
	c.session.Close()
	return nil
}

// Closed reports whether the session is closed.
func (c *Client) Closed() bool {
	return c.session.Closed()
}

// Keys returns a copy of the configured API keys.
func (c *Client) Keys() []string {
	return c.keys.Keys()
}

// AddKey appends a key to the rotation. Rotation restarts at the first key.
func (c *Client) AddKey(key string) error {
	if err := transport.CheckKey(key); err != nil {
		return err
	}
	c.keys.Add(key)
	return nil
}

// RemoveKey removes a key from the rotation and reports whether it was
// present. Rotation restarts at the first key.
func (c *Client) RemoveKey(key string) bool {
	return c.keys.Remove(key)
}

// ValidateKeys checks that every key is uuid shaped, then asks the API about
// each one. It stops at the first bad key.
func (c *Client) ValidateKeys(ctx context.Context) error {
	keys := c.keys.Keys()
	for _, key := range keys {
		if err := transport.CheckKey(key); err != nil {
			return c.fail(err)
		}
	}
	for _, key := range keys {
		if _, err := c.fetcher.Get(ctx, transport.Request{Path: "key", Key: key}); err != nil {
			return c.fail(err)
		}
	}
	return nil
}

// HypixelCacheInfo returns the statistics of the Hypixel response cache.
func (c *Client) HypixelCacheInfo() CacheInfo {
	return c.fetcher.CacheInfo()
}

// MojangCacheInfo returns the statistics of the name to uuid cache.
func (c *Client) MojangCacheInfo() CacheInfo {
	return c.mojang.UUIDCacheInfo()
}

// MojangNameCacheInfo returns the statistics of the uuid to name cache.
func (c *Client) MojangNameCacheInfo() CacheInfo {
	return c.mojang.NameCacheInfo()
}

// ClearCache clears both API caches.
func (c *Client) ClearCache() {
	c.ClearHypixelCache()
	c.ClearMojangCache()
}

// ClearHypixelCache clears the Hypixel response cache.
func (c *Client) ClearHypixelCache() {
	c.fetcher.ClearCache()
}

// ClearMojangCache clears both Mojang lookup caches.
func (c *Client) ClearMojangCache() {
	c.mojang.ClearCache()
}

// UUID returns the undashed uuid of a player name.
func (c *Client) UUID(ctx context.Context, name string) (string, error) {
	id, err := c.mojang.UUID(ctx, name)
	return id, c.fail(err)
}

// Name returns the current name of a player uuid.
func (c *Client) Name(ctx context.Context, id string) (string, error) {
	name, err := c.mojang.Name(ctx, id)
	return name, c.fail(err)
}

// Player returns the profile of a player given by name or uuid.
func (c *Client) Player(ctx context.Context, player string) (*Player, error) {
	id, err := c.canonicalID(ctx, player)
	if err != nil {
		return nil, c.fail(err)
	}

	resp, err := c.get(ctx, "player", cache.Args{"uuid": id})
	if err != nil {
		return nil, c.fail(err)
	}
	if !normalize.Truthy(resp["player"]) {
		return nil, c.fail(apierr.PlayerNotFound(apierr.APIHypixel, player))
	}
	return newPlayer(c.log, resp), nil
}

// PlayerCount returns the number of players online.
func (c *Client) PlayerCount(ctx context.Context) (int, error) {
	resp, err := c.get(ctx, "playerCount", nil)
	if err != nil {
		return 0, c.fail(err)
	}

	v, ok := resp["playerCount"]
	if !ok || v == nil {
		return 0, c.fail(apierr.Transport(apierr.APIHypixel, 200, "response has no playerCount", nil))
	}
	switch n := v.(type) {
	case float64, int, int64, bool:
		return normalize.Int(n), nil
	case string:
		count, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 0, c.fail(apierr.Transport(apierr.APIHypixel, 200, fmt.Sprintf("invalid playerCount %q", n), err))
		}
		return count, nil
	default:
		return 0, c.fail(apierr.Transport(apierr.APIHypixel, 200, fmt.Sprintf("invalid playerCount of type %T", v), nil))
	}
}

// Key returns information about an API key. The key does not need to be one
// of the client's keys.
func (c *Client) Key(ctx context.Context, key string) (*Key, error) {
	if err := transport.CheckKey(key); err != nil {
		return nil, c.fail(err)
	}

	resp, err := c.fetcher.Get(ctx, transport.Request{Path: "key", Key: key})
	if err != nil {
		return nil, c.fail(err)
	}
	if !normalize.Truthy(resp["record"]) {
		return nil, c.fail(apierr.KeyNotFound(key))
	}
	return newKey(c.log, resp), nil
}

// Bans returns the current ban counters.
func (c *Client) Bans(ctx context.Context) (*Bans, error) {
	resp, err := c.get(ctx, "watchdogstats", nil)
	if err != nil {
		return nil, c.fail(err)
	}
	return newBans(c.log, resp), nil
}

// Status returns the online status of a player given by name or uuid.
func (c *Client) Status(ctx context.Context, player string) (*Status, error) {
	id, err := c.canonicalID(ctx, player)
	if err != nil {
		return nil, c.fail(err)
	}

	resp, err := c.get(ctx, "status", cache.Args{"uuid": id})
	if err != nil {
		return nil, c.fail(err)
	}
	if !normalize.Truthy(resp["session"]) {
		return nil, c.fail(apierr.PlayerNotFound(apierr.APIHypixel, player))
	}
	return newStatus(c.log, resp), nil
}

// GuildByID returns the guild with the given id.
func (c *Client) GuildByID(ctx context.Context, id string) (*Guild, error) {
	if id == "" {
		return nil, c.fail(apierr.InvalidArgument("guild id cannot be empty"))
	}
	return c.guild(ctx, cache.Args{"id": id}, id)
}

// GuildByPlayer returns the guild of a player given by name or uuid.
func (c *Client) GuildByPlayer(ctx context.Context, player string) (*Guild, error) {
	id, err := c.canonicalID(ctx, player)
	if err != nil {
		return nil, c.fail(err)
	}
	return c.guild(ctx, cache.Args{"player": id}, player)
}

// GuildByName returns the guild with the given name.
func (c *Client) GuildByName(ctx context.Context, name string) (*Guild, error) {
	if name == "" {
		return nil, c.fail(apierr.InvalidArgument("guild name cannot be empty"))
	}
	return c.guild(ctx, cache.Args{"name": name}, name)
}

func (c *Client) guild(ctx context.Context, params cache.Args, subject string) (*Guild, error) {
	resp, err := c.get(ctx, "guild", params)
	if err != nil {
		return nil, c.fail(err)
	}
	if !normalize.Truthy(resp["guild"]) {
		return nil, c.fail(apierr.GuildNotFound(subject))
	}
	return newGuild(c.log, resp), nil
}

// Leaderboards returns the lobby leaderboards keyed by game type name.
func (c *Client) Leaderboards(ctx context.Context) (map[string][]Leaderboard, error) {
	resp, err := c.get(ctx, "leaderboards", nil)
	if err != nil {
		return nil, c.fail(err)
	}
	if !normalize.Truthy(resp["leaderboards"]) {
		return nil, c.fail(apierr.Transport(apierr.APIHypixel, 200, "", nil))
	}
	return newLeaderboards(c.log, resp), nil
}

func (c *Client) get(ctx context.Context, path string, params cache.Args) (map[string]any, error) {
	return c.fetcher.Get(ctx, transport.Request{Path: path, Params: params})
}

// canonicalID returns player unchanged when it is a uuid and looks the name
// up otherwise.
func (c *Client) canonicalID(ctx context.Context, player string) (string, error) {
	if _, err := uuid.Parse(player); err == nil {
		return player, nil
	}
	return c.mojang.UUID(ctx, player)
}

// fail counts err by kind and returns it unchanged.
func (c *Client) fail(err error) error {
	var e *apierr.Error
	if errors.As(err, &e) {
		c.metrics.RecordError(e.API, e.Kind.String())
	}
	return err
}
