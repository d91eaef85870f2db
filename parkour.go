package hypixel

import (
	"log/slog"
	"time"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// ParkourLobby is the first recorded completion of a lobby parkour.
type ParkourLobby struct {
	// Completed is when the run finished.
	Completed time.Time     `json:"completed" mapstructure:"completed"`
	Time      time.Duration `json:"time" mapstructure:"time"`
}

// Parkour holds lobby parkour completions. Lobbies the player never
// finished are nil.
type Parkour struct {
	Arcade        *ParkourLobby `json:"arcade,omitempty"`
	Bedwars       *ParkourLobby `json:"bedwars,omitempty"`
	Blitz         *ParkourLobby `json:"blitz,omitempty"`
	BuildBattle   *ParkourLobby `json:"build_battle,omitempty"`
	CopsAndCrims  *ParkourLobby `json:"cops_and_crims,omitempty"`
	Duels         *ParkourLobby `json:"duels,omitempty"`
	Main          *ParkourLobby `json:"main,omitempty"`
	MegaWalls     *ParkourLobby `json:"mega_walls,omitempty"`
	MurderMystery *ParkourLobby `json:"murder_mystery,omitempty"`
	Skywars       *ParkourLobby `json:"skywars,omitempty"`
	Smash         *ParkourLobby `json:"smash,omitempty"`
	TNT           *ParkourLobby `json:"tnt,omitempty"`
	UHC           *ParkourLobby `json:"uhc,omitempty"`
	Warlords      *ParkourLobby `json:"warlords,omitempty"`
}

// Lobbies returns the completions in a fixed order, nil entries included.
func (p *Parkour) Lobbies() []*ParkourLobby {
	return []*ParkourLobby{
		p.Arcade, p.Bedwars, p.Blitz, p.BuildBattle, p.CopsAndCrims,
		p.Duels, p.Main, p.MegaWalls, p.MurderMystery, p.Skywars,
		p.Smash, p.TNT, p.UHC, p.Warlords,
	}
}

func newParkour(log *slog.Logger, player map[string]any) Parkour {
	doc := normalize.Normalize(player, normalize.SchemaParkour, nil)

	lobby := func(name string) *ParkourLobby {
		runs := normalize.Slice(doc[name])
		if len(runs) == 0 {
			return nil
		}
		var l ParkourLobby
		build(log, normalize.Map(runs[0]), normalize.SchemaParkourLobby, nil, &l)
		// The upstream stores the start time.
		l.Completed = l.Completed.Add(l.Time)
		return &l
	}

	return Parkour{
		Arcade:        lobby("arcade"),
		Bedwars:       lobby("bedwars"),
		Blitz:         lobby("blitz"),
		BuildBattle:   lobby("build_battle"),
		CopsAndCrims:  lobby("cops_and_crims"),
		Duels:         lobby("duels"),
		Main:          lobby("main"),
		MegaWalls:     lobby("mega_walls"),
		MurderMystery: lobby("murder_mystery"),
		Skywars:       lobby("skywars"),
		Smash:         lobby("smash"),
		TNT:           lobby("tnt"),
		UHC:           lobby("uhc"),
		Warlords:      lobby("warlords"),
	}
}
