// Package transport owns the HTTP session shared by both upstream APIs, the
// credential ring, and the request loop against the statistics API.
package transport

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/steviee/go-hypixel/internal/apierr"
	"github.com/steviee/go-hypixel/internal/metrics"
)

// SessionConfig configures a Session.
type SessionConfig struct {
	Timeout   time.Duration
	UserAgent string
	Logger    *slog.Logger
	Metrics   *metrics.Collector
}

// Session is a closable HTTP client. After Close every Get fails with
// apierr.ErrClosedSession until Open is called.
type Session struct {
	mu     sync.RWMutex
	cfg    SessionConfig
	client *resty.Client
}

// NewSession creates an open session.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	s := &Session{cfg: cfg}
	s.client = s.newClient()
	return s
}

func (s *Session) newClient() *resty.Client {
	return resty.New().
		SetTimeout(s.cfg.Timeout).
		SetHeader("User-Agent", s.cfg.UserAgent).
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{log: s.cfg.Logger})
}

// Open replaces a closed client with a fresh one. It is a no-op on an open
// session.
func (s *Session) Open() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		s.client = s.newClient()
		s.cfg.Logger.Debug("session opened")
	}
}

// Close releases idle connections. Requests already in flight finish.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return
	}
	s.client.GetClient().CloseIdleConnections()
	s.client = nil
	s.cfg.Logger.Debug("session closed")
}

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.client == nil
}

// Call describes one GET request.
type Call struct {
	// API names the upstream for errors and metrics.
	API string
	// Endpoint is a low cardinality label for metrics.
	Endpoint string
	URL      string
	Query    map[string]string
}

// Get performs one GET. Network failures are returned as Timeout or
// Transport errors; any HTTP status is returned as a response.
func (s *Session) Get(ctx context.Context, call Call) (*resty.Response, error) {
	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	if client == nil {
		return nil, apierr.ErrClosedSession
	}

	s.cfg.Logger.Debug("upstream request", "api", call.API, "url", call.URL)

	start := time.Now()
	resp, err := client.R().
		SetContext(ctx).
		SetQueryParams(call.Query).
		Get(call.URL)
	if err != nil {
		if isTimeout(err) {
			return nil, apierr.Timeout(call.API, err)
		}
		return nil, apierr.Transport(call.API, 0, fmt.Sprintf("request to the %s API failed", call.API), err)
	}

	s.cfg.Metrics.RecordRequest(call.API, call.Endpoint, resp.StatusCode(), time.Since(start))
	return resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// restyLogger routes resty's own messages to slog.
type restyLogger struct {
	log *slog.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn(fmt.Sprintf(format, v...), "component", "resty")
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug(fmt.Sprintf(format, v...), "component", "resty")
}
