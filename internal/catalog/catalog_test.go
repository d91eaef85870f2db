package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameLookups(t *testing.T) {
	tests := []struct {
		name   string
		lookup func() *Game
		wantID int
	}{
		{"by type name", func() *Game { return GameByTypeName("BEDWARS") }, 58},
		{"by id", func() *Game { return GameByID(68) }, 68},
		{"by database name", func() *Game { return GameByDatabaseName("HungerGames") }, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.lookup()
			require.NotNil(t, g)
			assert.Equal(t, tt.wantID, g.ID)
		})
	}
}

func TestGameMisses(t *testing.T) {
	assert.Nil(t, GameByTypeName("NOT_A_GAME"))
	assert.Nil(t, GameByID(1))
	assert.Nil(t, GameByDatabaseName(""))
}

func TestGameFields(t *testing.T) {
	g := GameByTypeName("GINGERBREAD")
	require.NotNil(t, g)
	assert.Equal(t, "GingerBread", g.DatabaseName)
	assert.Equal(t, "Turbo Kart Racers", g.CleanName)
	assert.Equal(t, "TKR", g.StandardName)
	assert.True(t, g.Legacy)

	assert.False(t, GameByTypeName("SKYWARS").Legacy)
}

func TestGamesIsACopy(t *testing.T) {
	all := Games()
	require.NotEmpty(t, all)
	all[0].CleanName = "changed"
	assert.NotEqual(t, "changed", GameByID(all[0].ID).CleanName)
}

func TestColorLookups(t *testing.T) {
	c := ColorByTypeName("DARK_AQUA")
	require.NotNil(t, c)
	assert.Equal(t, "§3", c.ChatCode)
	assert.Equal(t, "00AAAA", c.Hex)

	assert.Equal(t, "GOLD", ColorByChatCode("§6").TypeName)
	assert.Equal(t, "AQUA", ColorByChatCode("b").TypeName)
	assert.Equal(t, "AQUA", ColorByChatCode("B").TypeName)
	assert.Nil(t, ColorByTypeName("PINK"))
	assert.Nil(t, ColorByChatCode("§z"))
}

func TestAchievementData(t *testing.T) {
	tests := []struct {
		typeName string
		wantName string
	}{
		{"bedwars_not_a_scratch", "Not a Scratch"},
		{"bedwars_bedwars_killstreak_5", "Slayer"},
		{"skywars_you_re_a_star", "You're a Star"},
		{"bridge_goal", "Goal!"},
		{"general_FIRST_JOIN", "Welcome to Hypixel!"},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			data := AchievementData(tt.typeName)
			require.NotNil(t, data)
			assert.Equal(t, tt.wantName, data["name"])
			assert.Equal(t, tt.typeName, data["type_name"])
		})
	}
}

func TestAchievementDataMisses(t *testing.T) {
	assert.Nil(t, AchievementData("bedwars_unknown"))
	assert.Nil(t, AchievementData("nocategory"))
	assert.Nil(t, AchievementData(""))
}

func TestAchievementDataIsACopy(t *testing.T) {
	data := AchievementData("general_vip")
	require.NotNil(t, data)
	data["name"] = "changed"
	assert.Equal(t, "VIP", AchievementData("general_vip")["name"])
}
