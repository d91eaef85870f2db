// Package backoff computes jittered exponential delays for retry loops against
// APIs that do not tell us how long to wait.
package backoff

import (
	"math/rand/v2"
	"time"

	"github.com/steviee/go-hypixel/internal/apierr"
)

const (
	// DefaultBase is the base delay multiplied by 2^exp.
	DefaultBase = 2 * time.Second

	// MaxExponent caps the exponent, so the largest span is base*2^10.
	MaxExponent = 10
)

// Calculator hands out exponentially growing random delays.
// It is not safe for concurrent use; create one per retry loop.
type Calculator struct {
	base    time.Duration
	timeout time.Duration
	api     string
	exp     int
	last    time.Time
	now     func() time.Time
	rng     *rand.Rand
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithBase sets the base delay.
func WithBase(base time.Duration) Option {
	return func(c *Calculator) {
		if base > 0 {
			c.base = base
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) {
		c.now = now
	}
}

// WithRand sets the random source.
func WithRand(r *rand.Rand) Option {
	return func(c *Calculator) {
		c.rng = r
	}
}

// WithAPI sets the API name reported on timeout.
func WithAPI(api string) Option {
	return func(c *Calculator) {
		c.api = api
	}
}

// New creates a Calculator. A timeout <= 0 disables the interval check.
func New(timeout time.Duration, opts ...Option) *Calculator {
	c := &Calculator{
		base:    DefaultBase,
		timeout: timeout,
		api:     apierr.APIMojang,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		seed := uint64(c.now().UnixNano())
		c.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	c.last = c.now()
	return c
}

// Delay returns the next delay in [0, base*2^exp).
// It fails with a timeout error when more than the timeout has passed since
// the previous call, or since construction for the first call.
func (c *Calculator) Delay() (time.Duration, error) {
	now := c.now()
	interval := now.Sub(c.last)
	c.last = now

	if c.timeout > 0 && interval > c.timeout {
		return 0, apierr.Timeout(c.api, nil)
	}

	if c.exp < MaxExponent {
		c.exp++
	}

	span := c.base << c.exp
	return time.Duration(c.rng.Int64N(int64(span))), nil
}

// Exponent returns the exponent used by the last Delay call.
func (c *Calculator) Exponent() int {
	return c.exp
}
