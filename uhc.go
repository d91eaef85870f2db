package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// UHCMode holds the stats of one UHC Champions mode.
type UHCMode struct {
	Wins             int     `json:"wins" mapstructure:"wins"`
	Kills            int     `json:"kills" mapstructure:"kills"`
	Deaths           int     `json:"deaths" mapstructure:"deaths"`
	HeadsEaten       int     `json:"heads_eaten" mapstructure:"heads_eaten"`
	UltimatesCrafted int     `json:"ultimates_crafted" mapstructure:"ultimates_crafted"`
	KDR              float64 `json:"kdr" mapstructure:"-"`
}

// UHC holds UHC Champions stats. The overall counters are the sums of the
// tracked modes.
type UHC struct {
	Level    int  `json:"level" mapstructure:"-"`
	Coins    int  `json:"coins" mapstructure:"coins"`
	Score    int  `json:"score" mapstructure:"score"`
	Parkour1 bool `json:"parkour_1" mapstructure:"parkour_1"`
	Parkour2 bool `json:"parkour_2" mapstructure:"parkour_2"`

	UHCMode `mapstructure:"-"`

	Solo  UHCMode `json:"solo" mapstructure:"-"`
	Team  UHCMode `json:"team" mapstructure:"-"`
	Brawl UHCMode `json:"brawl" mapstructure:"-"`
}

func newUHC(log *slog.Logger, player map[string]any) UHC {
	var u UHC
	data := source(build(log, player, normalize.SchemaUHC, nil, &u))
	u.Level = normalize.UHCLevel(float64(u.Score))

	modes := []struct {
		schema normalize.Schema
		dst    *UHCMode
	}{
		{normalize.SchemaUHCSolo, &u.Solo},
		{normalize.SchemaUHCTeam, &u.Team},
		{normalize.SchemaUHCBrawl, &u.Brawl},
	}
	for _, m := range modes {
		build(log, data, m.schema, nil, m.dst)
		m.dst.KDR = ratio(m.dst.Kills, m.dst.Deaths)

		u.Wins += m.dst.Wins
		u.Kills += m.dst.Kills
		u.Deaths += m.dst.Deaths
		u.HeadsEaten += m.dst.HeadsEaten
		u.UltimatesCrafted += m.dst.UltimatesCrafted
	}
	u.KDR = ratio(u.Kills, u.Deaths)
	return u
}
