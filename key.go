package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Key describes an API key and its usage.
type Key struct {
	Raw map[string]any `json:"-" mapstructure:"-"`

	Key string `json:"key" mapstructure:"key"`
	// Owner is the uuid of the player who owns the key.
	Owner string `json:"owner" mapstructure:"owner"`
	// Limit is the number of requests allowed per minute.
	Limit   int `json:"limit" mapstructure:"limit"`
	Queries int `json:"queries" mapstructure:"queries"`
	// RecentQueries counts the requests of the past minute.
	RecentQueries int `json:"recent_queries" mapstructure:"recent_queries"`
}

func newKey(log *slog.Logger, raw map[string]any) *Key {
	k := &Key{Raw: raw}
	build(log, normalize.Map(raw["record"]), normalize.SchemaKey, nil, k)
	return k
}
