package transport

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/steviee/go-hypixel/internal/apierr"
	"github.com/steviee/go-hypixel/internal/cache"
	"github.com/steviee/go-hypixel/internal/metrics"
)

// Request is one call to the statistics API.
type Request struct {
	// Path is relative to the base URL, e.g. "player".
	Path   string
	Params cache.Args
	// Key forces a specific key instead of the next one in the ring.
	Key string
	// NoKey sends the request without a key unless Key is set.
	NoKey bool
}

// Reserved argument names carrying the request shape through the cache.
// They cannot clash with query parameters, which never start with ':'.
const (
	argPath  = ":path"
	argKey   = ":key"
	argNoKey = ":nokey"
)

func (r Request) args() cache.Args {
	args := r.Params.Clone()
	args[argPath] = r.Path
	if r.Key != "" {
		args[argKey] = r.Key
	}
	if r.NoKey {
		args[argNoKey] = "1"
	}
	return args
}

func requestFromArgs(args cache.Args) Request {
	req := Request{
		Path:   args[argPath],
		Key:    args[argKey],
		NoKey:  args[argNoKey] != "",
		Params: make(cache.Args, len(args)),
	}
	for k, v := range args {
		if !strings.HasPrefix(k, ":") {
			req.Params[k] = v
		}
	}
	return req
}

// FetcherConfig configures a Fetcher.
type FetcherConfig struct {
	BaseURL string
	// Timeout bounds the cumulative rate limit wait of one call.
	Timeout time.Duration
	// HandleRateLimit waits out 429 responses instead of failing.
	HandleRateLimit bool
	// RequestsPerMinute throttles outgoing requests when positive.
	RequestsPerMinute int

	CacheEnabled bool
	CacheSize    int
	CacheTTL     time.Duration

	Logger  *slog.Logger
	Metrics *metrics.Collector
}

// Fetcher performs authenticated GETs against the statistics API.
type Fetcher struct {
	session *Session
	keys    *Ring
	cfg     FetcherConfig
	limiter *rate.Limiter
	cache   *cache.Cache[map[string]any]
	log     *slog.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// NewFetcher creates a Fetcher. The cache, when enabled, sits in front of
// key selection so rotated keys share entries.
func NewFetcher(session *Session, keys *Ring, cfg FetcherConfig) *Fetcher {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	f := &Fetcher{
		session: session,
		keys:    keys,
		cfg:     cfg,
		log:     cfg.Logger,
		sleep:   Sleep,
	}
	if cfg.RequestsPerMinute > 0 {
		f.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMinute)), 1)
	}
	if cfg.CacheEnabled {
		f.cache = cache.New(
			func(ctx context.Context, args cache.Args) (map[string]any, error) {
				return f.fetch(ctx, requestFromArgs(args))
			},
			cfg.CacheTTL,
			cfg.CacheSize,
			cache.WithObserver(cfg.Metrics.CacheObserver(apierr.APIHypixel)),
		)
	}
	return f
}

// Get returns the decoded response document for req.
func (f *Fetcher) Get(ctx context.Context, req Request) (map[string]any, error) {
	if f.cache == nil {
		return f.fetch(ctx, req)
	}
	return f.cache.Get(ctx, req.args())
}

// CacheInfo returns the cache statistics, zero when caching is off.
func (f *Fetcher) CacheInfo() cache.Info {
	if f.cache == nil {
		return cache.Info{}
	}
	return f.cache.Info()
}

// ClearCache drops all cached responses.
func (f *Fetcher) ClearCache() {
	if f.cache != nil {
		f.cache.Clear()
	}
}

// Keys returns the key ring.
func (f *Fetcher) Keys() *Ring {
	return f.keys
}

func (f *Fetcher) fetch(ctx context.Context, req Request) (map[string]any, error) {
	query := make(map[string]string, len(req.Params)+1)
	for k, v := range req.Params {
		query[k] = v
	}

	switch {
	case req.Key != "":
		query["key"] = req.Key
	case !req.NoKey:
		key, ok := f.keys.Next()
		if !ok {
			return nil, apierr.CredentialRequired(req.Path)
		}
		query["key"] = key
	}

	call := Call{
		API:      apierr.APIHypixel,
		Endpoint: req.Path,
		URL:      strings.TrimRight(f.cfg.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/"),
		Query:    query,
	}

	resp, err := f.do(ctx, call)
	if err != nil {
		return nil, err
	}

	var waited time.Duration
	for resp.StatusCode() == http.StatusTooManyRequests {
		f.cfg.Metrics.RecordRateLimited(apierr.APIHypixel)
		retryAfter := parseRetryAfter(resp.Header().Get("Retry-After"))
		if !f.cfg.HandleRateLimit {
			return nil, apierr.RateLimited(apierr.APIHypixel, retryAfter)
		}

		// One extra second, the header only has second precision.
		wait := retryAfter + time.Second
		if f.cfg.Timeout > 0 && waited+wait > f.cfg.Timeout {
			return nil, apierr.Timeout(apierr.APIHypixel, fmt.Errorf("rate limit wait of %s exceeds the %s budget", waited+wait, f.cfg.Timeout))
		}

		f.log.Warn("rate limited, waiting", "api", apierr.APIHypixel, "path", req.Path, "wait", wait)
		f.cfg.Metrics.RecordRetryWait(apierr.APIHypixel, wait)
		if err := f.sleep(ctx, wait); err != nil {
			return nil, fmt.Errorf("wait for rate limit: %w", err)
		}
		waited += wait

		if resp, err = f.do(ctx, call); err != nil {
			return nil, err
		}
	}

	switch resp.StatusCode() {
	case http.StatusOK:
		var doc map[string]any
		if err := sonic.Unmarshal(resp.Body(), &doc); err != nil {
			return nil, apierr.Transport(apierr.APIHypixel, http.StatusOK, "could not decode the hypixel API response", err)
		}
		if doc == nil {
			doc = map[string]any{}
		}
		return doc, nil

	case http.StatusForbidden:
		if query["key"] == "" {
			return nil, apierr.CredentialRequired(req.Path)
		}
		return nil, apierr.InvalidCredential(query["key"])

	default:
		return nil, apierr.Transport(apierr.APIHypixel, resp.StatusCode(), causeMessage(resp.Body()), nil)
	}
}

func (f *Fetcher) do(ctx context.Context, call Call) (*resty.Response, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("wait for request slot: %w", err)
		}
	}
	return f.session.Get(ctx, call)
}

// causeMessage extracts the upstream "cause" field. It returns "" when the
// body is not a JSON object.
func causeMessage(body []byte) string {
	var doc map[string]any
	if err := sonic.Unmarshal(body, &doc); err != nil || doc == nil {
		return ""
	}
	cause, ok := doc["cause"]
	if !ok || cause == nil {
		return "an unexpected error occurred with the hypixel API"
	}
	return fmt.Sprintf("an unexpected error occurred with the hypixel API: %v", cause)
}

// parseRetryAfter reads a Retry-After header in whole seconds. Missing or
// malformed values are treated as zero.
func parseRetryAfter(v string) time.Duration {
	secs, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
