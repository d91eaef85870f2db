package mojang

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/go-hypixel/internal/apierr"
	"github.com/steviee/go-hypixel/internal/backoff"
	"github.com/steviee/go-hypixel/internal/transport"
)

const (
	testUUID = "b423f64699f94694ad2366aa9647c606"
	testName = "duhby"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, cfg Config) (*Client, *transport.Session) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	session := transport.NewSession(transport.SessionConfig{Timeout: 5 * time.Second, Logger: logger})
	cfg.BaseURL = server.URL
	cfg.Logger = logger

	c := NewClient(session, &cfg)
	c.sleep = func(context.Context, time.Duration) error { return nil }
	return c, session
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		config      *Config
		wantBaseURL string
		wantTimeout time.Duration
		wantCache   bool
	}{
		{
			name:        "nil config uses defaults",
			config:      nil,
			wantBaseURL: DefaultBaseURL,
			wantTimeout: DefaultTimeout,
		},
		{
			name: "custom config",
			config: &Config{
				BaseURL: "https://custom.api.example.com",
				Timeout: 5 * time.Second,
			},
			wantBaseURL: "https://custom.api.example.com",
			wantTimeout: 5 * time.Second,
		},
		{
			name:        "cache enabled",
			config:      &Config{CacheEnabled: true, CacheTTL: time.Minute},
			wantBaseURL: DefaultBaseURL,
			wantTimeout: DefaultTimeout,
			wantCache:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewClient(transport.NewSession(transport.SessionConfig{}), tt.config)

			assert.Equal(t, tt.wantBaseURL, got.cfg.BaseURL)
			assert.Equal(t, tt.wantTimeout, got.cfg.Timeout)
			assert.Equal(t, tt.wantCache, got.byName != nil)
			assert.Equal(t, tt.wantCache, got.byID != nil)
		})
	}
}

func TestClient_UUID(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		statusCode int
		response   any
		wantUUID   string
		wantErr    error
	}{
		{
			name:       "successful lookup",
			username:   testName,
			statusCode: http.StatusOK,
			response:   profileResponse{ID: testUUID, Name: testName},
			wantUUID:   testUUID,
		},
		{
			name:       "empty id",
			username:   testName,
			statusCode: http.StatusOK,
			response:   map[string]any{"name": testName},
			wantErr:    apierr.ErrPlayerNotFound,
		},
		{
			name:       "empty body",
			username:   testName,
			statusCode: http.StatusOK,
			wantErr:    apierr.ErrPlayerNotFound,
		},
		{
			name:       "not found 204",
			username:   "NonExistUser123",
			statusCode: http.StatusNoContent,
			wantErr:    apierr.ErrPlayerNotFound,
		},
		{
			name:       "not found 404",
			username:   "NonExistUser123",
			statusCode: http.StatusNotFound,
			wantErr:    apierr.ErrNotFound,
		},
		{
			name:       "rate limited without handling",
			username:   testName,
			statusCode: http.StatusTooManyRequests,
			wantErr:    apierr.ErrRateLimited,
		},
		{
			name:       "server error",
			username:   testName,
			statusCode: http.StatusInternalServerError,
			response:   map[string]any{"error": "boom"},
			wantErr:    apierr.ErrTransport,
		},
		{
			name:     "invalid username - empty",
			username: "",
			wantErr:  apierr.ErrInvalidArgument,
		},
		{
			name:     "invalid username - too long",
			username: "ThisUsernameIsWayTooLongForMinecraft",
			wantErr:  apierr.ErrInvalidArgument,
		},
		{
			name:     "invalid username - special chars",
			username: "User@Name",
			wantErr:  apierr.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/profiles/minecraft/"+tt.username, r.URL.Path)
				assert.Equal(t, "application/json", r.Header.Get("Accept"))

				w.WriteHeader(tt.statusCode)
				if tt.response != nil {
					require.NoError(t, json.NewEncoder(w).Encode(tt.response))
				}
			}, Config{})

			id, err := client.UUID(context.Background(), tt.username)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUUID, id)
		})
	}
}

func TestClient_RateLimitedCarriesNoRetryAfter(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "30")
		w.WriteHeader(http.StatusTooManyRequests)
	}, Config{HandleRateLimit: false})

	_, err := client.UUID(context.Background(), testName)

	var e *apierr.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, apierr.KindRateLimited, e.Kind)
	assert.Equal(t, apierr.APIMojang, e.API)
	assert.Zero(t, e.RetryAfter)
}

func TestClient_Name(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/profile/"+testUUID, r.URL.Path)
		require.NoError(t, json.NewEncoder(w).Encode(profileResponse{ID: testUUID, Name: testName}))
	}, Config{})

	for _, id := range []string{testUUID, "b423f646-99f9-4694-ad23-66aa9647c606"} {
		name, err := client.Name(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, testName, name)
	}

	_, err := client.Name(context.Background(), "duhby")
	assert.ErrorIs(t, err, apierr.ErrInvalidArgument)
}

func TestClient_NameNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"id": "b423f64699f94694ad2366aa9647c606"}`)
	}, Config{})

	_, err := client.Name(context.Background(), testUUID)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrPlayerNotFound)
}

func TestClient_Retry(t *testing.T) {
	var requestCount atomic.Int32

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if requestCount.Add(1) <= 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(profileResponse{ID: testUUID, Name: testName}))
	}, Config{HandleRateLimit: true, BackoffBase: time.Millisecond})

	var delays []time.Duration
	client.sleep = func(_ context.Context, d time.Duration) error {
		delays = append(delays, d)
		return nil
	}

	id, err := client.UUID(context.Background(), testName)
	require.NoError(t, err)
	assert.Equal(t, testUUID, id)
	assert.Equal(t, int32(3), requestCount.Load(), "should retry after rate limit")
	require.Len(t, delays, 2)
	assert.Less(t, delays[0], 2*time.Millisecond)
	assert.Less(t, delays[1], 4*time.Millisecond)
}

func TestClient_RetryTimesOut(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, Config{HandleRateLimit: true, Timeout: 10 * time.Second, BackoffBase: time.Millisecond})

	// The gap between clock reads grows by two seconds each time, so the
	// loop ends once a gap passes ten seconds.
	now := time.Unix(0, 0)
	var calls int
	client.backoff = []backoff.Option{backoff.WithClock(func() time.Time {
		calls++
		return now.Add(time.Duration(calls*calls) * time.Second)
	})}

	_, err := client.UUID(context.Background(), testName)
	require.Error(t, err)
	assert.ErrorIs(t, err, apierr.ErrTimeout)
}

func TestClient_Cache(t *testing.T) {
	var requestCount atomic.Int32

	client, session := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)
		require.NoError(t, json.NewEncoder(w).Encode(profileResponse{ID: testUUID, Name: testName}))
	}, Config{CacheEnabled: true, CacheSize: 10, CacheTTL: time.Hour})

	ctx := context.Background()

	id1, err := client.UUID(ctx, testName)
	require.NoError(t, err)
	id2, err := client.UUID(ctx, testName)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Equal(t, int32(1), requestCount.Load(), "should not make another API request")

	// The reverse direction has its own cache.
	_, err = client.Name(ctx, testUUID)
	require.NoError(t, err)
	assert.Equal(t, int32(2), requestCount.Load())

	// Cached results are served after the session is closed.
	session.Close()
	_, err = client.UUID(ctx, testName)
	assert.NoError(t, err)
	_, err = client.UUID(ctx, "someoneelse")
	assert.ErrorIs(t, err, apierr.ErrClosedSession)

	assert.Equal(t, uint64(2), client.UUIDCacheInfo().Hits)
	assert.Equal(t, uint64(2), client.UUIDCacheInfo().Misses)
	assert.Equal(t, 1, client.UUIDCacheInfo().CurrSize)
	assert.Equal(t, 1, client.NameCacheInfo().CurrSize)

	client.ClearCache()
	assert.Zero(t, client.UUIDCacheInfo().CurrSize)
	assert.Zero(t, client.NameCacheInfo().CurrSize)
}

func TestClient_ContextCancel(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}, Config{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	id, err := client.UUID(ctx, testName)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, id)
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"valid", "Notch", false},
		{"underscore and digits", "a_b_123", false},
		{"single char", "x", false},
		{"sixteen chars", "abcdefghijklmnop", false},
		{"empty", "", true},
		{"seventeen chars", "abcdefghijklmnopq", true},
		{"space", "bad name", true},
		{"dash", "bad-name", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
