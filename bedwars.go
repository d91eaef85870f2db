package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// BedwarsMode holds the stats of one Bed Wars mode.
type BedwarsMode struct {
	Kills      int `json:"kills" mapstructure:"kills"`
	Deaths     int `json:"deaths" mapstructure:"deaths"`
	FallDeaths int `json:"fall_deaths" mapstructure:"fall_deaths"`
	VoidDeaths int `json:"void_deaths" mapstructure:"void_deaths"`
	Wins       int `json:"wins" mapstructure:"wins"`
	Losses     int `json:"losses" mapstructure:"losses"`
	// Games is tracked separately upstream and is usually a bit higher
	// than Wins + Losses.
	Games           int `json:"games" mapstructure:"games"`
	FinalKills      int `json:"final_kills" mapstructure:"final_kills"`
	FinalDeaths     int `json:"final_deaths" mapstructure:"final_deaths"`
	FallFinalDeaths int `json:"fall_final_deaths" mapstructure:"fall_final_deaths"`
	VoidFinalDeaths int `json:"void_final_deaths" mapstructure:"void_final_deaths"`
	BedsBroken      int `json:"beds_broken" mapstructure:"beds_broken"`
	BedsLost        int `json:"beds_lost" mapstructure:"beds_lost"`

	KDR  float64 `json:"kdr" mapstructure:"-"`
	WLR  float64 `json:"wlr" mapstructure:"-"`
	FKDR float64 `json:"fkdr" mapstructure:"-"`
	BBLR float64 `json:"bblr" mapstructure:"-"`
}

func (m *BedwarsMode) derive() {
	m.KDR = ratio(m.Kills, m.Deaths)
	m.WLR = ratio(m.Wins, m.Losses)
	m.FKDR = ratio(m.FinalKills, m.FinalDeaths)
	m.BBLR = ratio(m.BedsBroken, m.BedsLost)
}

// Bedwars holds overall Bed Wars stats. Overall counters only include the
// core modes.
type Bedwars struct {
	BedwarsMode `mapstructure:",squash"`

	Level int `json:"level" mapstructure:"level"`
	Coins int `json:"coins" mapstructure:"coins"`
	// Winstreak is nil when the player hides winstreaks.
	Winstreak *int `json:"winstreak" mapstructure:"winstreak"`
	Exp       int  `json:"exp" mapstructure:"exp"`

	Solo    BedwarsMode `json:"solo" mapstructure:"-"`
	Doubles BedwarsMode `json:"doubles" mapstructure:"-"`
	Threes  BedwarsMode `json:"threes" mapstructure:"-"`
	Fours   BedwarsMode `json:"fours" mapstructure:"-"`
	Teams   BedwarsMode `json:"teams" mapstructure:"-"`
}

func newBedwars(log *slog.Logger, player map[string]any) Bedwars {
	var b Bedwars
	data := source(build(log, player, normalize.SchemaBedwars, nil, &b))
	b.derive()

	modes := []struct {
		schema normalize.Schema
		dst    *BedwarsMode
	}{
		{normalize.SchemaBedwarsSolo, &b.Solo},
		{normalize.SchemaBedwarsDoubles, &b.Doubles},
		{normalize.SchemaBedwarsThrees, &b.Threes},
		{normalize.SchemaBedwarsFours, &b.Fours},
		{normalize.SchemaBedwarsTeams, &b.Teams},
	}
	for _, m := range modes {
		build(log, data, m.schema, nil, m.dst)
		m.dst.derive()
	}
	return b
}
