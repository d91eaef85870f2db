package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Blitz holds Blitz Survival Games stats.
type Blitz struct {
	Coins        int `json:"coins" mapstructure:"-"`
	Kills        int `json:"kills" mapstructure:"kills"`
	Deaths       int `json:"deaths" mapstructure:"deaths"`
	Wins         int `json:"wins" mapstructure:"wins"`
	WinsSolo     int `json:"wins_solo" mapstructure:"wins_solo"`
	WinsTeam     int `json:"wins_team" mapstructure:"wins_team"`
	ArrowsHit    int `json:"arrows_hit" mapstructure:"arrows_hit"`
	ArrowsShot   int `json:"arrows_shot" mapstructure:"arrows_shot"`
	ChestsOpened int `json:"chests_opened" mapstructure:"chests_opened"`
	Games        int `json:"games" mapstructure:"games"`

	KDR float64 `json:"kdr" mapstructure:"-"`
	// WLR divides wins by deaths; losses are not tracked.
	WLR float64 `json:"wlr" mapstructure:"-"`
	AR  float64 `json:"ar" mapstructure:"-"`
}

func newBlitz(log *slog.Logger, player map[string]any) Blitz {
	var b Blitz
	doc := build(log, player, normalize.SchemaBlitz, nil, &b)

	b.Coins = normalize.Int(doc["coins"])
	b.KDR = ratio(b.Kills, b.Deaths)
	b.WLR = ratio(b.Wins, b.Deaths)
	b.AR = ratio(b.ArrowsHit, b.ArrowsShot-b.ArrowsHit)
	return b
}
