package hypixel

import (
	"github.com/steviee/go-hypixel/internal/catalog"
	"github.com/steviee/go-hypixel/internal/normalize"
)

// Game is a game type from the static catalog.
type Game = catalog.Game

// Color is a chat color from the static catalog.
type Color = catalog.Color

// Achievement is a one-time achievement from the static catalog.
type Achievement struct {
	TypeName    string `json:"type_name" mapstructure:"type_name"`
	Points      int    `json:"points" mapstructure:"points"`
	Name        string `json:"name" mapstructure:"name"`
	Description string `json:"description" mapstructure:"description"`
	// GlobalUnlocked is nil for legacy achievements.
	GlobalUnlocked *float64 `json:"global_unlocked,omitempty" mapstructure:"global_unlocked"`
	// GameUnlocked is nil for achievements without a game.
	GameUnlocked *float64 `json:"game_unlocked,omitempty" mapstructure:"game_unlocked"`
	Legacy       bool     `json:"legacy" mapstructure:"legacy"`
}

// GameByTypeName looks up a game by the name used in status and guild
// responses, e.g. "BEDWARS".
func GameByTypeName(typeName string) *Game {
	return catalog.GameByTypeName(typeName)
}

// GameByID looks up a game by its numeric id.
func GameByID(id int) *Game {
	return catalog.GameByID(id)
}

// GameByDatabaseName looks up a game by its stats key, e.g. "Bedwars".
func GameByDatabaseName(name string) *Game {
	return catalog.GameByDatabaseName(name)
}

// Games returns every known game.
func Games() []Game {
	return catalog.Games()
}

// ColorByTypeName looks up a color by its type name, e.g. "DARK_RED".
func ColorByTypeName(typeName string) *Color {
	return catalog.ColorByTypeName(typeName)
}

// ColorByChatCode looks up a color by its chat code, e.g. "§4".
func ColorByChatCode(code string) *Color {
	return catalog.ColorByChatCode(code)
}

// AchievementByTypeName looks up a one-time achievement by the name found in
// Player.Achievements. It returns nil for unknown achievements.
func AchievementByTypeName(typeName string) *Achievement {
	data := catalog.AchievementData(typeName)
	if data == nil {
		return nil
	}

	a := &Achievement{}
	_ = normalize.Decode(normalize.Normalize(data, normalize.SchemaAchievement, nil), a)
	return a
}
