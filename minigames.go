package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Paintball stats.
type Paintball struct {
	Coins       int     `json:"coins" mapstructure:"coins"`
	Wins        int     `json:"wins" mapstructure:"wins"`
	Kills       int     `json:"kills" mapstructure:"kills"`
	Deaths      int     `json:"deaths" mapstructure:"deaths"`
	Killstreaks int     `json:"killstreaks" mapstructure:"killstreaks"`
	ShotsFired  int     `json:"shots_fired" mapstructure:"shots_fired"`
	KDR         float64 `json:"kdr" mapstructure:"-"`
	// SKR is shots fired per kill.
	SKR float64 `json:"skr" mapstructure:"-"`
}

func newPaintball(log *slog.Logger, player map[string]any) Paintball {
	var p Paintball
	build(log, player, normalize.SchemaPaintball, nil, &p)
	p.KDR = ratio(p.Kills, p.Deaths)
	p.SKR = ratio(p.ShotsFired, p.Kills)
	return p
}

// TurboKartRacers stats.
type TurboKartRacers struct {
	Coins           int `json:"coins" mapstructure:"coins"`
	Laps            int `json:"laps" mapstructure:"laps"`
	Gold            int `json:"gold" mapstructure:"gold"`
	Silver          int `json:"silver" mapstructure:"silver"`
	Bronze          int `json:"bronze" mapstructure:"bronze"`
	BlueTorpedoHits int `json:"blue_torpedo_hits" mapstructure:"blue_torpedo_hits"`
	BananaHits      int `json:"banana_hits" mapstructure:"banana_hits"`
	BananasReceived int `json:"bananas_received" mapstructure:"bananas_received"`
	// Wins counts top three finishes.
	Wins int `json:"wins" mapstructure:"wins"`
	// BR is bananas hit per banana received.
	BR float64 `json:"br" mapstructure:"-"`
}

func newTKR(log *slog.Logger, player map[string]any) TurboKartRacers {
	var t TurboKartRacers
	build(log, player, normalize.SchemaTKR, nil, &t)
	t.BR = ratio(t.BananaHits, t.BananasReceived)
	return t
}

// TNTGames stats.
type TNTGames struct {
	Coins int `json:"coins" mapstructure:"coins"`
}

func newTNTGames(log *slog.Logger, player map[string]any) TNTGames {
	var t TNTGames
	build(log, player, normalize.SchemaTNTGames, nil, &t)
	return t
}
