package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// WoolGamesMode holds the stats of one Wool Games mode.
type WoolGamesMode struct {
	Kills   int `json:"kills" mapstructure:"kills"`
	Deaths  int `json:"deaths" mapstructure:"deaths"`
	Assists int `json:"assists" mapstructure:"assists"`
	Wins    int `json:"wins" mapstructure:"wins"`
	// Losses is Games - Wins.
	Losses       int `json:"losses" mapstructure:"-"`
	Games        int `json:"games" mapstructure:"games"`
	BlocksBroken int `json:"blocks_broken" mapstructure:"blocks_broken"`
	WoolPlaced   int `json:"wool_placed" mapstructure:"wool_placed"`
	// SelectedClass is e.g. "TANK" or "ARCHER", empty if never chosen.
	SelectedClass string  `json:"selected_class,omitempty" mapstructure:"selected_class"`
	KDR           float64 `json:"kdr" mapstructure:"-"`
	WLR           float64 `json:"wlr" mapstructure:"-"`
}

// WoolGames holds Wool Games stats.
type WoolGames struct {
	Level float64 `json:"level" mapstructure:"-"`
	Coins int     `json:"coins" mapstructure:"coins"`
	Exp   int     `json:"exp" mapstructure:"exp"`

	WoolWars WoolGamesMode `json:"wool_wars" mapstructure:"-"`
}

func newWoolGames(log *slog.Logger, player map[string]any) WoolGames {
	var w WoolGames
	data := source(build(log, player, normalize.SchemaWoolGames, nil, &w))
	w.Level = normalize.WoolWarsLevel(w.Exp)

	ww := &w.WoolWars
	build(log, data, normalize.SchemaWoolWars, nil, ww)
	ww.Losses = ww.Games - ww.Wins
	ww.KDR = ratio(ww.Kills, ww.Deaths)
	ww.WLR = ratio(ww.Wins, ww.Losses)
	return w
}
