package transport

import (
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/steviee/go-hypixel/internal/apierr"
)

// Ring hands out API keys round-robin. Adding or removing a key resets the
// cursor to the first key.
type Ring struct {
	mu     sync.Mutex
	keys   []string
	cursor int
}

// NewRing creates a ring over a copy of keys.
func NewRing(keys []string) *Ring {
	return &Ring{keys: slices.Clone(keys)}
}

// Next returns the next key, wrapping at the end. ok is false when the ring
// is empty.
func (r *Ring) Next() (key string, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.keys) == 0 {
		return "", false
	}
	key = r.keys[r.cursor%len(r.keys)]
	r.cursor = (r.cursor + 1) % len(r.keys)
	return key, true
}

// Add appends key.
func (r *Ring) Add(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.keys = append(r.keys, key)
	r.cursor = 0
}

// Remove deletes the first occurrence of key. It reports whether the key
// was present; the cursor is only reset when it was.
func (r *Ring) Remove(key string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.Index(r.keys, key)
	if i < 0 {
		return false
	}
	r.keys = slices.Delete(r.keys, i, i+1)
	r.cursor = 0
	return true
}

// Keys returns a copy of the keys in rotation order.
func (r *Ring) Keys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.keys)
}

// Len returns the number of keys.
func (r *Ring) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.keys)
}

// CheckKey verifies that key is uuid shaped.
func CheckKey(key string) error {
	if _, err := uuid.Parse(key); err != nil {
		return apierr.MalformedCredential(key, err)
	}
	return nil
}
