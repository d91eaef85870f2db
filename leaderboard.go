package hypixel

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Leaderboard is one leaderboard shown in a lobby.
type Leaderboard struct {
	Path   string `json:"path" mapstructure:"path"`
	Prefix string `json:"prefix" mapstructure:"prefix"`
	Title  string `json:"title" mapstructure:"title"`
	// Location is the x, y, z position of the board in the lobby.
	Location [3]int `json:"location" mapstructure:"-"`
	// RawLocation is the unparsed location, e.g. "-2,70,-21".
	RawLocation string `json:"raw_location" mapstructure:"location"`
	// Leaders are player uuids, best first.
	Leaders []string `json:"leaders" mapstructure:"leaders"`
}

func newLeaderboard(log *slog.Logger, raw map[string]any) Leaderboard {
	var lb Leaderboard
	build(log, raw, normalize.SchemaLeaderboard, nil, &lb)
	lb.Location = parseLocation(lb.RawLocation)
	return lb
}

// parseLocation reads "x,y,z". Missing or malformed parts are 0.
func parseLocation(s string) [3]int {
	var loc [3]int
	for i, part := range strings.SplitN(s, ",", 3) {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err == nil {
			loc[i] = n
		}
	}
	return loc
}

// newLeaderboards builds the leaderboards of every game, keyed by game
// type name.
func newLeaderboards(log *slog.Logger, raw map[string]any) map[string][]Leaderboard {
	games := normalize.Map(raw["leaderboards"])
	out := make(map[string][]Leaderboard, len(games))
	for game, boards := range games {
		list := normalize.Slice(boards)
		lbs := make([]Leaderboard, 0, len(list))
		for _, b := range list {
			lbs = append(lbs, newLeaderboard(log, normalize.Map(b)))
		}
		out[game] = lbs
	}
	return out
}
