// Package cache memoizes request functions. Entries are keyed by the call
// arguments plus a coarse time bucket, floor(now/ttl), so an entry lives
// between ttl and 2*ttl without any background expiry. Values are futures:
// concurrent callers with the same key share one in-flight call.
package cache

import (
	"container/list"
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Args are the call parameters. Key order never affects the cache key.
type Args map[string]string

// Key returns a canonical encoding of a, sorted by parameter name.
func (a Args) Key() string {
	if len(a) == 0 {
		return ""
	}

	names := make([]string, 0, len(a))
	for name := range a {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(strconv.Quote(name))
		b.WriteByte('=')
		b.WriteString(strconv.Quote(a[name]))
	}
	return b.String()
}

// Clone returns a copy of a that callers may modify.
func (a Args) Clone() Args {
	out := make(Args, len(a)+1)
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Func is the function being cached.
type Func[V any] func(ctx context.Context, args Args) (V, error)

// Info reports cache statistics.
type Info struct {
	Hits     uint64
	Misses   uint64
	MaxSize  int // 0 means unbounded
	CurrSize int
}

var epoch = time.Now()

// monotonic returns the time elapsed since process start on the monotonic clock.
func monotonic() time.Duration {
	return time.Since(epoch)
}

type options struct {
	clock    func() time.Duration
	observer func(hit bool)
}

// Option configures a Cache.
type Option func(*options)

// WithClock replaces the monotonic clock used for bucketing.
func WithClock(clock func() time.Duration) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// WithObserver registers a callback invoked on every cached lookup.
func WithObserver(fn func(hit bool)) Option {
	return func(o *options) {
		o.observer = fn
	}
}

// Cache is a thread-safe LRU of futures keyed by (args, time bucket).
type Cache[V any] struct {
	mu      sync.Mutex
	fn      Func[V]
	ttl     time.Duration
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
	hits    uint64
	misses  uint64
	opts    options
}

type cacheItem[V any] struct {
	key    string
	future *future[V]
}

type future[V any] struct {
	done chan struct{}
	val  V
	err  error
}

func (f *future[V]) wait(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// New wraps fn. With ttl <= 0 every call goes straight to fn.
// maxSize <= 0 means the cache is unbounded.
func New[V any](fn Func[V], ttl time.Duration, maxSize int, opts ...Option) *Cache[V] {
	o := options{clock: monotonic}
	for _, opt := range opts {
		opt(&o)
	}
	if maxSize < 0 {
		maxSize = 0
	}

	return &Cache[V]{
		fn:      fn,
		ttl:     ttl,
		maxSize: maxSize,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
		opts:    o,
	}
}

// Get returns the cached result for args, calling fn on a miss.
// The call runs detached from ctx cancellation so other waiters are not
// affected when the first caller gives up; ctx only bounds this caller's wait.
func (c *Cache[V]) Get(ctx context.Context, args Args) (V, error) {
	if c.ttl <= 0 {
		return c.fn(ctx, args)
	}

	key := c.bucketKey(args)

	c.mu.Lock()
	if elem, ok := c.items[key]; ok {
		c.hits++
		c.lru.MoveToFront(elem)
		f := elem.Value.(*cacheItem[V]).future
		c.mu.Unlock()
		c.observe(true)
		return f.wait(ctx)
	}

	c.misses++
	f := &future[V]{done: make(chan struct{})}
	c.items[key] = c.lru.PushFront(&cacheItem[V]{key: key, future: f})
	if c.maxSize > 0 && c.lru.Len() > c.maxSize {
		c.evictOldest()
	}
	c.mu.Unlock()
	c.observe(false)

	go c.run(context.WithoutCancel(ctx), key, f, args.Clone())

	return f.wait(ctx)
}

func (c *Cache[V]) run(ctx context.Context, key string, f *future[V], args Args) {
	defer close(f.done)

	f.val, f.err = c.fn(ctx, args)
	if f.err == nil {
		return
	}

	// Drop failures so the next call retries.
	c.mu.Lock()
	if elem, ok := c.items[key]; ok && elem.Value.(*cacheItem[V]).future == f {
		c.lru.Remove(elem)
		delete(c.items, key)
	}
	c.mu.Unlock()
}

func (c *Cache[V]) bucketKey(args Args) string {
	salt := int64(c.opts.clock() / c.ttl)
	return strconv.FormatInt(salt, 10) + "|" + args.Key()
}

func (c *Cache[V]) observe(hit bool) {
	if c.opts.observer != nil {
		c.opts.observer(hit)
	}
}

// evictOldest removes the least recently used entry. Caller holds c.mu.
func (c *Cache[V]) evictOldest() {
	elem := c.lru.Back()
	if elem == nil {
		return
	}
	c.lru.Remove(elem)
	delete(c.items, elem.Value.(*cacheItem[V]).key)
}

// Info returns the current statistics.
func (c *Cache[V]) Info() Info {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Info{
		Hits:     c.hits,
		Misses:   c.misses,
		MaxSize:  c.maxSize,
		CurrSize: c.lru.Len(),
	}
}

// Clear drops all entries and resets the statistics.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.lru.Init()
	c.hits = 0
	c.misses = 0
}

// TTL returns the bucket width.
func (c *Cache[V]) TTL() time.Duration {
	return c.ttl
}
