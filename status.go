package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Status is the online status of a player. Players can hide it, in which
// case Online is false and the other fields are empty.
type Status struct {
	Raw map[string]any `json:"-" mapstructure:"-"`

	Online bool `json:"online" mapstructure:"online"`
	// Game is nil when offline or when the game is not in the catalog.
	Game *Game  `json:"game,omitempty" mapstructure:"-"`
	Mode string `json:"mode,omitempty" mapstructure:"mode"`
	Map  string `json:"map,omitempty" mapstructure:"map"`
}

func newStatus(log *slog.Logger, raw map[string]any) *Status {
	s := &Status{Raw: raw}
	doc := build(log, normalize.Map(raw["session"]), normalize.SchemaStatus, nil, s)
	s.Game, _ = doc["game"].(*Game)
	return s
}
