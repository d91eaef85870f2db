// Package catalog holds read-only reference tables for game types, chat colors
// and achievements. Lookups return nil when nothing matches; upstream adds new
// entries faster than the tables are updated, so a miss is not an error.
package catalog

import "sync"

// Game is a Hypixel game type.
type Game struct {
	ID int `json:"id" yaml:"id"`
	// TypeName is the name used by the status and guild endpoints.
	TypeName string `json:"type_name" yaml:"type_name"`
	// DatabaseName is the key used under player stats.
	DatabaseName string `json:"database_name" yaml:"database_name"`
	CleanName    string `json:"clean_name" yaml:"clean_name"`
	StandardName string `json:"standard_name" yaml:"standard_name"`
	LobbyName    string `json:"lobby_name,omitempty" yaml:"lobby_name,omitempty"`
	Legacy       bool   `json:"legacy" yaml:"legacy"`
}

var games = []Game{
	{ID: 2, TypeName: "QUAKECRAFT", DatabaseName: "Quake", CleanName: "Quake", StandardName: "Quake", Legacy: true},
	{ID: 3, TypeName: "WALLS", DatabaseName: "Walls", CleanName: "Walls", StandardName: "Walls", Legacy: true},
	{ID: 4, TypeName: "PAINTBALL", DatabaseName: "Paintball", CleanName: "Paintball", StandardName: "Paintball", Legacy: true},
	{ID: 5, TypeName: "SURVIVAL_GAMES", DatabaseName: "HungerGames", LobbyName: "blitz", CleanName: "Blitz Survival Games", StandardName: "Blitz"},
	{ID: 6, TypeName: "TNTGAMES", DatabaseName: "TNTGames", LobbyName: "tnt", CleanName: "TNT Games", StandardName: "TNT"},
	{ID: 7, TypeName: "VAMPIREZ", DatabaseName: "VampireZ", CleanName: "VampireZ", StandardName: "VampireZ", Legacy: true},
	{ID: 13, TypeName: "WALLS3", DatabaseName: "Walls3", LobbyName: "megawalls", CleanName: "Mega Walls", StandardName: "MegaWalls"},
	{ID: 14, TypeName: "ARCADE", DatabaseName: "Arcade", LobbyName: "arcade", CleanName: "Arcade", StandardName: "Arcade"},
	{ID: 17, TypeName: "ARENA", DatabaseName: "Arena", CleanName: "Arena", StandardName: "Arena", Legacy: true},
	{ID: 20, TypeName: "UHC", DatabaseName: "UHC", LobbyName: "uhc", CleanName: "UHC Champions", StandardName: "UHC"},
	{ID: 21, TypeName: "MCGO", DatabaseName: "MCGO", LobbyName: "mcgo", CleanName: "Cops and Crims", StandardName: "CvC"},
	{ID: 23, TypeName: "BATTLEGROUND", DatabaseName: "Battleground", LobbyName: "bg", CleanName: "Warlords", StandardName: "Warlords"},
	{ID: 24, TypeName: "SUPER_SMASH", DatabaseName: "SuperSmash", LobbyName: "smash", CleanName: "Smash Heroes", StandardName: "Smash"},
	{ID: 25, TypeName: "GINGERBREAD", DatabaseName: "GingerBread", CleanName: "Turbo Kart Racers", StandardName: "TKR", Legacy: true},
	{ID: 26, TypeName: "HOUSING", DatabaseName: "Housing", CleanName: "Housing", StandardName: "Housing"},
	{ID: 51, TypeName: "SKYWARS", DatabaseName: "SkyWars", LobbyName: "sw", CleanName: "SkyWars", StandardName: "SkyWars"},
	{ID: 52, TypeName: "TRUE_COMBAT", DatabaseName: "TrueCombat", LobbyName: "Truepvp", CleanName: "Crazy Walls", StandardName: "CrazyWalls"},
	{ID: 54, TypeName: "SPEED_UHC", DatabaseName: "SpeedUHC", LobbyName: "speeduhc", CleanName: "Speed UHC", StandardName: "SpeedUHC"},
	{ID: 55, TypeName: "SKYCLASH", DatabaseName: "SkyClash", LobbyName: "skyclash", CleanName: "SkyClash", StandardName: "SkyClash"},
	{ID: 56, TypeName: "LEGACY", DatabaseName: "Legacy", LobbyName: "legacy", CleanName: "Classic Games", StandardName: "Classic", Legacy: true},
	{ID: 57, TypeName: "PROTOTYPE", DatabaseName: "Prototype", LobbyName: "prototype", CleanName: "Prototype", StandardName: "Prototype"},
	{ID: 58, TypeName: "BEDWARS", DatabaseName: "Bedwars", LobbyName: "bedwars", CleanName: "Bed Wars", StandardName: "BedWars"},
	{ID: 59, TypeName: "MURDER_MYSTERY", DatabaseName: "MurderMystery", LobbyName: "mm", CleanName: "Murder Mystery", StandardName: "MurderMystery"},
	{ID: 60, TypeName: "BUILD_BATTLE", DatabaseName: "BuildBattle", LobbyName: "bb", CleanName: "Build Battle", StandardName: "BuildBattle"},
	{ID: 61, TypeName: "DUELS", DatabaseName: "Duels", LobbyName: "duels", CleanName: "Duels", StandardName: "Duels"},
	{ID: 63, TypeName: "SKYBLOCK", DatabaseName: "SkyBlock", CleanName: "SkyBlock", StandardName: "SkyBlock"},
	{ID: 64, TypeName: "PIT", DatabaseName: "Pit", CleanName: "Pit", StandardName: "Pit"},
	{ID: 65, TypeName: "REPLAY", DatabaseName: "Replay", CleanName: "Replay", StandardName: "Replay"},
	{ID: 67, TypeName: "SMP", DatabaseName: "SMP", CleanName: "SMP", StandardName: "SMP"},
	{ID: 68, TypeName: "WOOL_GAMES", DatabaseName: "WoolGames", CleanName: "Wool Games", StandardName: "Wool Games"},
}

type gameIndex struct {
	byType     map[string]*Game
	byID       map[int]*Game
	byDatabase map[string]*Game
}

var loadGames = sync.OnceValue(func() gameIndex {
	idx := gameIndex{
		byType:     make(map[string]*Game, len(games)),
		byID:       make(map[int]*Game, len(games)),
		byDatabase: make(map[string]*Game, len(games)),
	}
	for i := range games {
		g := &games[i]
		idx.byType[g.TypeName] = g
		idx.byID[g.ID] = g
		idx.byDatabase[g.DatabaseName] = g
	}
	return idx
})

// GameByTypeName looks up a game by type name, e.g. "BEDWARS".
// The returned value is shared and must not be modified.
func GameByTypeName(typeName string) *Game {
	return loadGames().byType[typeName]
}

// GameByID looks up a game by numeric id.
func GameByID(id int) *Game {
	return loadGames().byID[id]
}

// GameByDatabaseName looks up a game by the key it has under player stats,
// e.g. "Bedwars".
func GameByDatabaseName(name string) *Game {
	return loadGames().byDatabase[name]
}

// Games returns a copy of the game table.
func Games() []Game {
	out := make([]Game, len(games))
	copy(out, games)
	return out
}
