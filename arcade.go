package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Arcade holds arcade stats and the tracked arcade minigames.
type Arcade struct {
	Coins int `json:"coins" mapstructure:"-"`

	CaptureTheWool CaptureTheWool `json:"ctw" mapstructure:"-"`
	HypixelSays    HypixelSays    `json:"hypixel_says" mapstructure:"-"`
	MiniWalls      MiniWalls      `json:"mini_walls" mapstructure:"-"`
	PartyGames     PartyGames     `json:"party_games" mapstructure:"-"`
}

// CaptureTheWool stats come from the player's achievement counters.
type CaptureTheWool struct {
	Captures     int `json:"captures" mapstructure:"captures"`
	KillsAssists int `json:"kills_assists" mapstructure:"kills_assists"`
}

// HypixelSays stats. Every round that is not a win counts as a loss.
type HypixelSays struct {
	Rounds   int     `json:"rounds" mapstructure:"rounds"`
	Wins     int     `json:"wins" mapstructure:"wins"`
	TopScore int     `json:"top_score" mapstructure:"top_score"`
	Losses   int     `json:"losses" mapstructure:"-"`
	WLR      float64 `json:"wlr" mapstructure:"-"`
}

// MiniWalls stats.
type MiniWalls struct {
	Kills        int     `json:"kills" mapstructure:"kills"`
	Deaths       int     `json:"deaths" mapstructure:"deaths"`
	Wins         int     `json:"wins" mapstructure:"wins"`
	FinalKills   int     `json:"final_kills" mapstructure:"final_kills"`
	WitherKills  int     `json:"wither_kills" mapstructure:"wither_kills"`
	WitherDamage int     `json:"wither_damage" mapstructure:"wither_damage"`
	ArrowsHit    int     `json:"arrows_hit" mapstructure:"arrows_hit"`
	ArrowsShot   int     `json:"arrows_shot" mapstructure:"arrows_shot"`
	KDR          float64 `json:"kdr" mapstructure:"-"`
}

// PartyGames stats. Wins2 and Wins3 count the retired Party Games 2 and 3.
type PartyGames struct {
	Wins      int `json:"wins" mapstructure:"wins"`
	Wins2     int `json:"wins_2" mapstructure:"wins_2"`
	Wins3     int `json:"wins_3" mapstructure:"wins_3"`
	TotalWins int `json:"total_wins" mapstructure:"-"`
}

// newArcade builds the arcade stats from a player document.
func newArcade(log *slog.Logger, player map[string]any) Arcade {
	var a Arcade
	doc := build(log, player, normalize.SchemaArcade, nil, &a)
	data := source(doc)

	// Coins are stored as a float upstream.
	a.Coins = normalize.Int(doc["coins"])

	build(log, data, normalize.SchemaCaptureTheWool, nil, &a.CaptureTheWool)

	hs := &a.HypixelSays
	build(log, data, normalize.SchemaHypixelSays, nil, hs)
	hs.Losses = hs.Rounds - hs.Wins
	hs.WLR = ratio(hs.Wins, hs.Losses)

	mw := &a.MiniWalls
	build(log, data, normalize.SchemaMiniWalls, nil, mw)
	mw.KDR = ratio(mw.Kills, mw.Deaths)

	pg := &a.PartyGames
	build(log, data, normalize.SchemaPartyGames, nil, pg)
	pg.TotalWins = pg.Wins + pg.Wins2 + pg.Wins3

	return a
}
