package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// DuelsMode holds the stats of one duel type.
type DuelsMode struct {
	Kills       int `json:"kills" mapstructure:"kills"`
	Deaths      int `json:"deaths" mapstructure:"deaths"`
	Wins        int `json:"wins" mapstructure:"wins"`
	Losses      int `json:"losses" mapstructure:"losses"`
	MeleeHits   int `json:"melee_hits" mapstructure:"melee_hits"`
	MeleeSwings int `json:"melee_swings" mapstructure:"melee_swings"`
	ArrowsHit   int `json:"arrows_hit" mapstructure:"arrows_hit"`
	ArrowsShot  int `json:"arrows_shot" mapstructure:"arrows_shot"`

	WLR float64 `json:"wlr" mapstructure:"-"`
	// MR is the melee hit to miss ratio, 0 for modes without melee.
	MR float64 `json:"mr" mapstructure:"-"`
	// AR is the arrow hit to miss ratio, 0 for modes without bows.
	AR float64 `json:"ar" mapstructure:"-"`
	// Title is the lobby title, "Rookie I" when none is unlocked.
	Title string `json:"title" mapstructure:"-"`
}

func (m *DuelsMode) derive(data map[string]any, mode string) {
	m.WLR = ratio(m.Wins, m.Losses)
	m.MR = ratio(m.MeleeHits, m.MeleeSwings-m.MeleeHits)
	m.AR = ratio(m.ArrowsHit, m.ArrowsShot-m.ArrowsHit)
	m.Title = normalize.Title(data, mode)
}

// Duels holds overall duels stats. Overall kills and deaths do not include
// the bridge.
type Duels struct {
	DuelsMode `mapstructure:",squash"`

	Coins int `json:"coins" mapstructure:"coins"`

	Blitz     DuelsMode `json:"blitz" mapstructure:"-"`
	Bow       DuelsMode `json:"bow" mapstructure:"-"`
	Boxing    DuelsMode `json:"boxing" mapstructure:"-"`
	Bridge    DuelsMode `json:"bridge" mapstructure:"-"`
	Classic   DuelsMode `json:"classic" mapstructure:"-"`
	Combo     DuelsMode `json:"combo" mapstructure:"-"`
	MegaWalls DuelsMode `json:"mega_walls" mapstructure:"-"`
	NoDebuff  DuelsMode `json:"no_debuff" mapstructure:"-"`
	OP        DuelsMode `json:"op" mapstructure:"-"`
	Parkour   DuelsMode `json:"parkour" mapstructure:"-"`
	Skywars   DuelsMode `json:"skywars" mapstructure:"-"`
	Sumo      DuelsMode `json:"sumo" mapstructure:"-"`
	TNTGames  DuelsMode `json:"tnt_games" mapstructure:"-"`
	UHC       DuelsMode `json:"uhc" mapstructure:"-"`
}

func newDuels(log *slog.Logger, player map[string]any) Duels {
	var d Duels
	data := source(build(log, player, normalize.SchemaDuels, nil, &d))
	d.derive(data, "all_modes")

	modes := []struct {
		schema normalize.Schema
		name   string
		dst    *DuelsMode
	}{
		{normalize.SchemaDuelsBlitz, "blitz", &d.Blitz},
		{normalize.SchemaDuelsBow, "bow", &d.Bow},
		{normalize.SchemaDuelsBoxing, "boxing", &d.Boxing},
		{normalize.SchemaDuelsBridge, "bridge", &d.Bridge},
		{normalize.SchemaDuelsClassic, "classic", &d.Classic},
		{normalize.SchemaDuelsCombo, "combo", &d.Combo},
		{normalize.SchemaDuelsMegaWalls, "mega_walls", &d.MegaWalls},
		{normalize.SchemaDuelsNoDebuff, "no_debuff", &d.NoDebuff},
		{normalize.SchemaDuelsOP, "op", &d.OP},
		{normalize.SchemaDuelsParkour, "parkour", &d.Parkour},
		{normalize.SchemaDuelsSkywars, "skywars", &d.Skywars},
		{normalize.SchemaDuelsSumo, "sumo", &d.Sumo},
		{normalize.SchemaDuelsTNTGames, "tnt_games", &d.TNTGames},
		{normalize.SchemaDuelsUHC, "uhc", &d.UHC},
	}
	for _, m := range modes {
		build(log, data, m.schema, nil, m.dst)
		m.dst.derive(data, m.name)
	}
	return d
}
