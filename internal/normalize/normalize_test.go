package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/steviee/go-hypixel/internal/catalog"
)

func TestEverySchemaHasARule(t *testing.T) {
	for s := Schema(0); s < schemaCount; s++ {
		r := rules[s]
		assert.NotEmpty(t, r.name, "schema %d has no name", s)
		assert.NotEmpty(t, r.aliases, "schema %s has no aliases", r.name)
	}
}

func TestSchemaString(t *testing.T) {
	assert.Equal(t, "BEDWARS", SchemaBedwars.String())
	assert.Equal(t, "MM_HARDCORE", SchemaMurderMysteryHardcore.String())
	assert.Equal(t, "Schema(-1)", Schema(-1).String())
}

func TestNormalizeAllowList(t *testing.T) {
	junk := map[string]any{
		"junk":         1,
		"moreJunk":     "x",
		"stats":        map[string]any{"Bedwars": map[string]any{"junk": 1, "kills_bedwars": 3}},
		"kills":        5,
		"displayname":  "duhby",
		"gameType":     "BEDWARS",
		"staff_total":  10,
		"timeStart":    1,
		"DISCORD":      "duhby#0001",
		"_id":          "abc",
		"achievements": map[string]any{"bedwars_level": 100},
	}

	for s := Schema(0); s < schemaCount; s++ {
		t.Run(s.String(), func(t *testing.T) {
			allowed := make(map[string]bool)
			for _, v := range Aliases(s) {
				allowed[v] = true
			}
			for k := range Normalize(junk, s, nil) {
				assert.True(t, allowed[k], "unexpected key %q", k)
			}
		})
	}
}

func TestNormalizeDoesNotMutateInput(t *testing.T) {
	raw := map[string]any{
		"achievements": map[string]any{"bedwars_level": 42},
		"stats": map[string]any{
			"Bedwars":       map[string]any{"kills_bedwars": 1},
			"MurderMystery": map[string]any{"kills": 2},
		},
	}

	player := Normalize(raw, SchemaPlayer, nil)
	data := Map(player[DataKey])
	require.NotNil(t, data)
	assert.Contains(t, data, "achievement_stats")
	assert.Contains(t, raw, "achievements")
	assert.NotContains(t, raw, "achievement_stats")

	bedwars := Normalize(data, SchemaBedwars, nil)
	assert.Equal(t, 42, bedwars["level"])
	assert.NotContains(t, Map(Map(raw["stats"])["Bedwars"]), "bedwars_level")

	mm := Normalize(raw, SchemaMurderMystery, nil)
	hardcore := Normalize(Map(mm[DataKey]), SchemaMurderMysteryHardcore, nil)
	assert.Equal(t, true, hardcore["removed"])
	assert.NotContains(t, Map(mm[DataKey]), "removed")
}

func TestNormalizeBans(t *testing.T) {
	raw := map[string]any{
		"success":               true,
		"staff_rollingDaily":    1084.0,
		"staff_total":           3355129.0,
		"watchdog_lastMinute":   0.0,
		"watchdog_rollingDaily": 1555.0,
		"watchdog_total":        8167376.0,
	}

	got := Normalize(raw, SchemaBans, nil)
	assert.Equal(t, map[string]any{
		"staff_day":       1084.0,
		"staff_total":     3355129.0,
		"watchdog_recent": 0.0,
		"watchdog_day":    1555.0,
		"watchdog_total":  8167376.0,
	}, got)
}

func TestNormalizeBedwarsLevelDefault(t *testing.T) {
	got := Normalize(map[string]any{}, SchemaBedwars, nil)
	assert.Equal(t, 1, got["level"])
	assert.Equal(t, map[string]any{"bedwars_level": 1}, got[DataKey])
}

func TestNormalizeBedwarsMode(t *testing.T) {
	data := map[string]any{
		"eight_one_kills_bedwars":        10.0,
		"eight_one_games_played_bedwars": 4.0,
		"eight_two_kills_bedwars":        99.0,
	}
	got := Normalize(data, SchemaBedwarsSolo, nil)
	assert.Equal(t, map[string]any{"kills": 10.0, "games": 4.0}, got)
}

func TestNormalizeDuelsModes(t *testing.T) {
	data := map[string]any{
		"bow_duel_melee_hits":       5.0,
		"bow_duel_bow_hits":         7.0,
		"tnt_games_duel_bow_shots":  3.0,
		"tnt_games_duel_bow_hits":   1.0,
		"parkour_duel_wins":         2.0,
		"parkour_duel_melee_swings": 9.0,
	}

	assert.Equal(t, map[string]any{"arrows_hit": 7.0}, Normalize(data, SchemaDuelsBow, nil))
	assert.Equal(t, map[string]any{"arrows_shot": 3.0}, Normalize(data, SchemaDuelsTNTGames, nil))
	assert.Equal(t, map[string]any{"wins": 2.0}, Normalize(data, SchemaDuelsParkour, nil))
}

func TestNormalizeArcadeKeepsInput(t *testing.T) {
	raw := map[string]any{
		"stats": map[string]any{"Arcade": map[string]any{"coins": 12.7, "wins_party": 3.0}},
	}
	got := Normalize(raw, SchemaArcade, nil)
	assert.Equal(t, 12.7, got["coins"])
	assert.Equal(t, raw, got[DataKey])

	party := Normalize(raw, SchemaPartyGames, nil)
	assert.Equal(t, 3.0, party["wins"])
}

func TestNormalizeStatusResolvesGame(t *testing.T) {
	got := Normalize(map[string]any{"online": true, "gameType": "BEDWARS", "mode": "LOBBY"}, SchemaStatus, nil)
	assert.Equal(t, catalog.GameByTypeName("BEDWARS"), got["game"])

	got = Normalize(map[string]any{"online": true, "gameType": "SOMETHING_NEW"}, SchemaStatus, nil)
	assert.NotContains(t, got, "game")
}

func TestNormalizeGuildAchievements(t *testing.T) {
	raw := map[string]any{
		"_id":          "5363aa",
		"achievements": map[string]any{"WINNERS": 10.0, "EXPERIENCE_KINGS": 20.0, "ONLINE_PLAYERS": 30.0},
	}
	got := Normalize(raw, SchemaGuild, nil)
	assert.Equal(t, "5363aa", got["id"])
	assert.Equal(t, 10.0, got["winners"])
	assert.Equal(t, 20.0, got["experience_kings"])
	assert.Equal(t, 30.0, got["most_online_players"])
	assert.NotContains(t, got, "achievements")
}

func TestNormalizeGuildMemberRank(t *testing.T) {
	resolve := RankResolver(func(name string) any { return "resolved:" + name })
	got := Normalize(map[string]any{"uuid": "u", "rank": "Officer"}, SchemaGuildMember, resolve)
	assert.Equal(t, "resolved:Officer", got["rank"])

	got = Normalize(map[string]any{"uuid": "u", "rank": "Officer"}, SchemaGuildMember, nil)
	assert.Equal(t, "Officer", got["rank"])
}

func TestNormalizeWoolGames(t *testing.T) {
	raw := map[string]any{
		"stats": map[string]any{"WoolGames": map[string]any{
			"coins":       50.0,
			"progression": map[string]any{"experience": 12345.6},
			"wool_wars": map[string]any{
				"selected_class": "TANK",
				"stats":          map[string]any{"kills": 3.0, "games_played": 9.0},
			},
		}},
	}

	wg := Normalize(raw, SchemaWoolGames, nil)
	assert.Equal(t, 12346, wg["exp"])
	assert.Equal(t, 50.0, wg["coins"])

	ww := Normalize(Map(wg[DataKey]), SchemaWoolWars, nil)
	assert.Equal(t, map[string]any{"kills": 3.0, "games": 9.0, "selected_class": "TANK"}, ww)
}

func TestNormalizeParkour(t *testing.T) {
	raw := map[string]any{
		"parkourCompletions": map[string]any{
			"mainLobby2017": []any{map[string]any{"timeStart": 1.0, "timeTook": 2.0}},
			"NewLobby2030":  []any{},
		},
	}
	got := Normalize(raw, SchemaParkour, nil)
	assert.Contains(t, got, "main")
	assert.Len(t, got, 1)
}

func TestNormalizeUnknownSchema(t *testing.T) {
	assert.Empty(t, Normalize(map[string]any{"a": 1}, schemaCount, nil))
}

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{13098, 21200, 0.62},
		{2219, 2939, 0.76},
		{7051, 2948, 2.39},
		{4275, 3202, 1.34},
		{5, 0, 5},
		{0, 0, 0},
		{12, 828, 0.01},
		{388, 475, 0.82},
		// Quotients just off a decimal tie round by their binary value.
		{1, 40, 0.03},
		{3, 40, 0.07},
		{7, 40, 0.17},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SafeDiv(tt.a, tt.b), "%v/%v", tt.a, tt.b)
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		x      float64
		places int
		want   float64
	}{
		{0.025, 2, 0.03},
		{0.125, 2, 0.12},
		{4.055, 2, 4.05},
		{2.5, 0, 2},
		{-1.005, 2, -1},
		{1.23456, 3, 1.235},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Round(tt.x, tt.places), "round(%v, %d)", tt.x, tt.places)
	}
}

func TestNetworkLevel(t *testing.T) {
	assert.Equal(t, 1.0, NetworkLevel(0))
	assert.Equal(t, 2.0, NetworkLevel(10000))
	assert.Greater(t, NetworkLevel(5_000_000), NetworkLevel(4_000_000))
}

func TestGuildLevel(t *testing.T) {
	tests := []struct {
		exp  float64
		want float64
	}{
		{0, 0},
		{50000, 0.5},
		{100000, 1},
		{175000, 1.5},
		{2750000, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GuildLevel(tt.exp), "exp %v", tt.exp)
	}

	// The 15 tabulated levels cost 23,000,000; later levels cost 3,000,000.
	assert.Equal(t, 16.0, GuildLevel(26_000_000))
	assert.Equal(t, float64(MaxGuildLevel), GuildLevel(1e12))
}

func TestSkywarsLevel(t *testing.T) {
	tests := []struct {
		exp  float64
		want float64
	}{
		{0, 1},
		{10, 1.5},
		{20, 2},
		{14999, 11 + 4999.0/5000},
		{15000, 12},
		{25000, 13},
		{-5, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, SkywarsLevel(tt.exp), 1e-9, "exp %v", tt.exp)
	}
}

func TestUHCLevel(t *testing.T) {
	assert.Equal(t, 1, UHCLevel(0))
	assert.Equal(t, 1, UHCLevel(9))
	assert.Equal(t, 2, UHCLevel(10))
	assert.Equal(t, 4, UHCLevel(459))
	assert.Equal(t, 5, UHCLevel(460))
	assert.Equal(t, 15, UHCLevel(1_000_000))
	assert.Equal(t, 0, UHCLevel(-1))
}

func TestWoolWarsLevel(t *testing.T) {
	tests := []struct {
		exp  int
		want float64
	}{
		{0, 0},
		{250, 0.5},
		{500, 1},
		{1500, 2},
		{7000, 4},
		{9500, 4.5},
		{12000, 5},
		{487000, 100},
		{487250, 100.5},
		{7275, 4.05},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WoolWarsLevel(tt.exp), "exp %d", tt.exp)
	}
}

func TestRomanize(t *testing.T) {
	want := []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}
	for i, w := range want {
		assert.Equal(t, w, Romanize(i+1))
	}
	assert.Equal(t, "", Romanize(0))
	assert.Equal(t, "XIV", Romanize(14))
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		data map[string]any
		want string
	}{
		{"default", map[string]any{}, "Rookie I"},
		{"single", map[string]any{"all_modes_gold_title_prestige": 3.0}, "Gold III"},
		{
			"highest wins",
			map[string]any{
				"all_modes_rookie_title_prestige":  5.0,
				"all_modes_iron_title_prestige":    5.0,
				"all_modes_diamond_title_prestige": 2.0,
			},
			"Diamond II",
		},
		{"falsy ignored", map[string]any{"all_modes_legend_title_prestige": 0.0}, "Rookie I"},
		{"world's best", map[string]any{"all_modes_worlds_best_title_prestige": 1.0}, "WORLD'S BEST I"},
		{"other mode", map[string]any{"sumo_gold_title_prestige": 1.0}, "Rookie I"},
		{"bool prestige", map[string]any{"all_modes_iron_title_prestige": true}, "Iron I"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.data, "all_modes"))
		})
	}
}

func TestRank(t *testing.T) {
	tests := []struct {
		name   string
		player map[string]any
		want   string
	}{
		{"prefix wins", map[string]any{"prefix": "§c[OWNER]", "rank": "ADMIN"}, "OWNER"},
		{"youtuber", map[string]any{"rank": "YOUTUBER", "packageRank": "MVP_PLUS"}, "YOUTUBE"},
		{"old package rank", map[string]any{"rank": "HELPER", "packageRank": "VIP_PLUS"}, "VIP+"},
		{"normal", map[string]any{"rank": "NORMAL"}, ""},
		{"staff rank", map[string]any{"rank": "GAME_MASTER"}, "GAME MASTER"},
		{"superstar", map[string]any{"monthlyPackageRank": "SUPERSTAR", "newPackageRank": "MVP_PLUS"}, "MVP++"},
		{"new package rank", map[string]any{"newPackageRank": "MVP_PLUS", "monthlyPackageRank": "NONE"}, "MVP+"},
		{"none sentinel", map[string]any{"newPackageRank": "NONE"}, ""},
		{"nothing", map[string]any{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Rank(map[string]any{"player": tt.player}))
		})
	}

	assert.Equal(t, "", Rank(map[string]any{}))
}

func TestStripColor(t *testing.T) {
	assert.Equal(t, "MVP++", StripColor("§6[MVP§c++§6]"))
	assert.Equal(t, "plain", StripColor("plain"))
}

type decodeTarget struct {
	Name     string         `mapstructure:"name"`
	Kills    int            `mapstructure:"kills"`
	Ratio    float64        `mapstructure:"ratio"`
	Streak   *int           `mapstructure:"winstreak"`
	Joined   time.Time      `mapstructure:"joined"`
	Created  *time.Time     `mapstructure:"created"`
	Took     time.Duration  `mapstructure:"took"`
	Online   bool           `mapstructure:"online"`
	Data     map[string]any `mapstructure:"_data"`
	Children []string       `mapstructure:"children"`
}

func TestDecode(t *testing.T) {
	in := map[string]any{
		"name":      "duhby",
		"kills":     13098.0,
		"ratio":     1,
		"winstreak": 4.0,
		"joined":    1609459200000.0,
		"created":   1609459200000.0,
		"took":      1500.0,
		"online":    true,
		"_data":     map[string]any{"x": 1},
		"children":  []any{"a", "b"},
	}

	var out decodeTarget
	require.NoError(t, Decode(in, &out))

	assert.Equal(t, "duhby", out.Name)
	assert.Equal(t, 13098, out.Kills)
	assert.Equal(t, 1.0, out.Ratio)
	require.NotNil(t, out.Streak)
	assert.Equal(t, 4, *out.Streak)
	assert.Equal(t, time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC), out.Joined)
	require.NotNil(t, out.Created)
	assert.Equal(t, out.Joined, *out.Created)
	assert.Equal(t, 1500*time.Millisecond, out.Took)
	assert.True(t, out.Online)
	assert.Equal(t, map[string]any{"x": 1}, out.Data)
	assert.Equal(t, []string{"a", "b"}, out.Children)
}

func TestDecodeDefaultsAndBadFields(t *testing.T) {
	var out decodeTarget
	err := Decode(map[string]any{"kills": "lots", "name": "ok", "winstreak": nil}, &out)
	assert.Error(t, err)
	assert.Equal(t, "ok", out.Name)
	assert.Equal(t, 0, out.Kills)
	assert.Nil(t, out.Streak)
	assert.True(t, out.Joined.IsZero())
}

func TestValueHelpers(t *testing.T) {
	assert.Equal(t, 3, Int(3.9))
	assert.Equal(t, 3, Int("3"))
	assert.Equal(t, 0, Int(nil))
	assert.Equal(t, 2.5, Float(2.5))
	assert.Equal(t, 1, Int(true))
	assert.Equal(t, 0.0, Float(false))
	assert.Equal(t, "", String(1))
	assert.Nil(t, Map("x"))
	assert.NotNil(t, Clone(nil))
	assert.True(t, Truthy(1.0))
	assert.False(t, Truthy(0))
	assert.False(t, Truthy(""))
}
