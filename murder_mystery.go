package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// MurderMysteryMode holds the stats of one Murder Mystery mode.
type MurderMysteryMode struct {
	Games            int `json:"games" mapstructure:"games"`
	Wins             int `json:"wins" mapstructure:"wins"`
	Kills            int `json:"kills" mapstructure:"kills"`
	Deaths           int `json:"deaths" mapstructure:"deaths"`
	BowKills         int `json:"bow_kills" mapstructure:"bow_kills"`
	KnifeKills       int `json:"knife_kills" mapstructure:"knife_kills"`
	ThrownKnifeKills int `json:"thrown_knife_kills" mapstructure:"thrown_knife_kills"`
	// Removed marks modes that are no longer playable.
	Removed bool    `json:"removed" mapstructure:"removed"`
	KDR     float64 `json:"kdr" mapstructure:"-"`
}

// MurderMystery holds overall Murder Mystery stats.
type MurderMystery struct {
	Coins            int     `json:"coins" mapstructure:"coins"`
	Games            int     `json:"games" mapstructure:"games"`
	Wins             int     `json:"wins" mapstructure:"wins"`
	Kills            int     `json:"kills" mapstructure:"kills"`
	Deaths           int     `json:"deaths" mapstructure:"deaths"`
	BowKills         int     `json:"bow_kills" mapstructure:"bow_kills"`
	KnifeKills       int     `json:"knife_kills" mapstructure:"knife_kills"`
	ThrownKnifeKills int     `json:"thrown_knife_kills" mapstructure:"thrown_knife_kills"`
	MurdererWins     int     `json:"murderer_wins" mapstructure:"murderer_wins"`
	DetectiveWins    int     `json:"detective_wins" mapstructure:"detective_wins"`
	KDR              float64 `json:"kdr" mapstructure:"-"`

	Assassins MurderMysteryMode `json:"assassins" mapstructure:"-"`
	Classic   MurderMysteryMode `json:"classic" mapstructure:"-"`
	DoubleUp  MurderMysteryMode `json:"double_up" mapstructure:"-"`
	Hardcore  MurderMysteryMode `json:"hardcore" mapstructure:"-"`
	Showdown  MurderMysteryMode `json:"showdown" mapstructure:"-"`
}

func newMurderMystery(log *slog.Logger, player map[string]any) MurderMystery {
	var mm MurderMystery
	data := source(build(log, player, normalize.SchemaMurderMystery, nil, &mm))
	mm.KDR = ratio(mm.Kills, mm.Deaths)

	modes := map[normalize.Schema]*MurderMysteryMode{
		normalize.SchemaMurderMysteryAssassins: &mm.Assassins,
		normalize.SchemaMurderMysteryClassic:   &mm.Classic,
		normalize.SchemaMurderMysteryDoubleUp:  &mm.DoubleUp,
		normalize.SchemaMurderMysteryHardcore:  &mm.Hardcore,
		normalize.SchemaMurderMysteryShowdown:  &mm.Showdown,
	}
	for schema, dst := range modes {
		build(log, data, schema, nil, dst)
		dst.KDR = ratio(dst.Kills, dst.Deaths)
	}
	return mm
}
