package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// SkywarsMode holds the stats of one SkyWars mode.
type SkywarsMode struct {
	Kills  int     `json:"kills" mapstructure:"kills"`
	Deaths int     `json:"deaths" mapstructure:"deaths"`
	Wins   int     `json:"wins" mapstructure:"wins"`
	Losses int     `json:"losses" mapstructure:"losses"`
	KDR    float64 `json:"kdr" mapstructure:"-"`
	WLR    float64 `json:"wlr" mapstructure:"-"`
}

// Skywars holds overall SkyWars stats.
type Skywars struct {
	Level      float64 `json:"level" mapstructure:"-"`
	Coins      int     `json:"coins" mapstructure:"coins"`
	Kills      int     `json:"kills" mapstructure:"kills"`
	Deaths     int     `json:"deaths" mapstructure:"deaths"`
	Wins       int     `json:"wins" mapstructure:"wins"`
	Losses     int     `json:"losses" mapstructure:"losses"`
	Games      int     `json:"games" mapstructure:"games"`
	ArrowsHit  int     `json:"arrows_hit" mapstructure:"arrows_hit"`
	ArrowsShot int     `json:"arrows_shot" mapstructure:"arrows_shot"`
	// Winstreak is nil when the player hides winstreaks.
	Winstreak *int    `json:"winstreak" mapstructure:"winstreak"`
	Souls     int     `json:"souls" mapstructure:"souls"`
	Exp       int     `json:"exp" mapstructure:"exp"`
	KDR       float64 `json:"kdr" mapstructure:"-"`
	WLR       float64 `json:"wlr" mapstructure:"-"`
	AR        float64 `json:"ar" mapstructure:"-"`

	Ranked      SkywarsMode `json:"ranked" mapstructure:"-"`
	SoloNormal  SkywarsMode `json:"solo_normal" mapstructure:"-"`
	SoloInsane  SkywarsMode `json:"solo_insane" mapstructure:"-"`
	TeamNormal  SkywarsMode `json:"team_normal" mapstructure:"-"`
	TeamInsane  SkywarsMode `json:"team_insane" mapstructure:"-"`
	MegaNormal  SkywarsMode `json:"mega_normal" mapstructure:"-"`
	MegaDoubles SkywarsMode `json:"mega_doubles" mapstructure:"-"`
}

func newSkywars(log *slog.Logger, player map[string]any) Skywars {
	var s Skywars
	data := source(build(log, player, normalize.SchemaSkywars, nil, &s))

	s.Level = normalize.SkywarsLevel(float64(s.Exp))
	s.KDR = ratio(s.Kills, s.Deaths)
	s.WLR = ratio(s.Wins, s.Losses)
	s.AR = ratio(s.ArrowsHit, s.ArrowsShot-s.ArrowsHit)

	modes := map[normalize.Schema]*SkywarsMode{
		normalize.SchemaSkywarsRanked:      &s.Ranked,
		normalize.SchemaSkywarsSoloNormal:  &s.SoloNormal,
		normalize.SchemaSkywarsSoloInsane:  &s.SoloInsane,
		normalize.SchemaSkywarsTeamNormal:  &s.TeamNormal,
		normalize.SchemaSkywarsTeamInsane:  &s.TeamInsane,
		normalize.SchemaSkywarsMegaNormal:  &s.MegaNormal,
		normalize.SchemaSkywarsMegaDoubles: &s.MegaDoubles,
	}
	for schema, dst := range modes {
		build(log, data, schema, nil, dst)
		dst.KDR = ratio(dst.Kills, dst.Deaths)
		dst.WLR = ratio(dst.Wins, dst.Losses)
	}
	return s
}
