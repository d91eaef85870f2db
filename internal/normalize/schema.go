// Package normalize reshapes raw upstream documents into flat maps keyed by
// entity field names. Each Schema has one rule: where its fragment lives in
// the input, which fields survive and under which names, and which synthetic
// fields are injected first.
package normalize

import (
	"fmt"
	"math"

	"github.com/steviee/go-hypixel/internal/catalog"
)

// DataKey holds an unaliased copy of a fragment so nested entities can be
// normalized again from the same source.
const DataKey = "_data"

// Schema identifies a normalization rule.
type Schema int

const (
	SchemaPlayer Schema = iota
	SchemaStatus
	SchemaGuild
	SchemaGuildMember
	SchemaGuildRank
	SchemaKey
	SchemaBans
	SchemaLeaderboard
	SchemaAchievement

	SchemaArcade
	SchemaCaptureTheWool
	SchemaHypixelSays
	SchemaMiniWalls
	SchemaPartyGames

	SchemaBedwars
	SchemaBedwarsSolo
	SchemaBedwarsDoubles
	SchemaBedwarsThrees
	SchemaBedwarsFours
	SchemaBedwarsTeams

	SchemaBlitz

	SchemaDuels
	SchemaDuelsBlitz
	SchemaDuelsBow
	SchemaDuelsBoxing
	SchemaDuelsBridge
	SchemaDuelsClassic
	SchemaDuelsCombo
	SchemaDuelsMegaWalls
	SchemaDuelsNoDebuff
	SchemaDuelsOP
	SchemaDuelsParkour
	SchemaDuelsSkywars
	SchemaDuelsSumo
	SchemaDuelsTNTGames
	SchemaDuelsUHC

	SchemaMurderMystery
	SchemaMurderMysteryAssassins
	SchemaMurderMysteryClassic
	SchemaMurderMysteryDoubleUp
	SchemaMurderMysteryHardcore
	SchemaMurderMysteryShowdown

	SchemaPaintball
	SchemaParkour
	SchemaParkourLobby

	SchemaSkywars
	SchemaSkywarsRanked
	SchemaSkywarsSoloNormal
	SchemaSkywarsSoloInsane
	SchemaSkywarsTeamNormal
	SchemaSkywarsTeamInsane
	SchemaSkywarsMegaNormal
	SchemaSkywarsMegaDoubles

	SchemaSocials
	SchemaTKR
	SchemaTNTGames

	SchemaUHC
	SchemaUHCSolo
	SchemaUHCTeam
	SchemaUHCBrawl

	SchemaWoolGames
	SchemaWoolWars

	schemaCount
)

// String returns the rule name.
func (s Schema) String() string {
	if s < 0 || s >= schemaCount {
		return fmt.Sprintf("Schema(%d)", int(s))
	}
	return rules[s].name
}

// RankResolver maps a guild rank name to the rank value stored on a member.
type RankResolver func(name string) any

// rule describes how one schema is normalized.
type rule struct {
	name string
	// path is navigated in the input before aliasing.
	path []string
	// keepInput stores a copy of the whole input under DataKey.
	keepInput bool
	// keepFragment stores a copy of the extracted fragment, after
	// injection, under DataKey.
	keepFragment bool
	// inject adds synthetic fields to doc. input is the original input.
	inject  func(input, doc map[string]any, extra any)
	aliases map[string]string
}

var rules = [schemaCount]rule{
	SchemaPlayer: {
		name:         "PLAYER",
		keepFragment: true,
		inject: func(input, doc map[string]any, _ any) {
			// Renamed so it does not clash with achievementsOneTime.
			doc["achievement_stats"] = Map(doc["achievements"])
			delete(doc, "achievements")
		},
		aliases: playerAliases,
	},
	SchemaStatus: {
		name: "STATUS",
		inject: func(input, doc map[string]any, _ any) {
			if g := catalog.GameByTypeName(String(doc["gameType"])); g != nil {
				doc["gameType"] = g
			} else {
				delete(doc, "gameType")
			}
		},
		aliases: statusAliases,
	},
	SchemaGuild: {
		name: "GUILD",
		inject: func(input, doc map[string]any, _ any) {
			achievements := Map(doc["achievements"])
			doc["winners"] = achievements["WINNERS"]
			doc["experience_kings"] = achievements["EXPERIENCE_KINGS"]
			doc["most_online_players"] = achievements["ONLINE_PLAYERS"]
		},
		aliases: guildAliases,
	},
	SchemaGuildMember: {
		name: "GUILD_MEMBER",
		inject: func(input, doc map[string]any, extra any) {
			if resolve, ok := extra.(RankResolver); ok {
				doc["rank"] = resolve(String(doc["rank"]))
			}
		},
		aliases: guildMemberAliases,
	},
	SchemaGuildRank:   {name: "GUILD_RANK", aliases: guildRankAliases},
	SchemaKey:         {name: "KEY", aliases: keyAliases},
	SchemaBans:        {name: "BANS", aliases: bansAliases},
	SchemaLeaderboard: {name: "LB", aliases: leaderboardAliases},
	SchemaAchievement: {name: "ACHIEVEMENT", aliases: achievementAliases},

	SchemaArcade:         {name: "ARCADE", path: []string{"stats", "Arcade"}, keepInput: true, aliases: arcadeAliases},
	SchemaCaptureTheWool: {name: "CTW", path: []string{"achievement_stats"}, aliases: ctwAliases},
	SchemaHypixelSays:    {name: "HYPIXEL_SAYS", path: []string{"stats", "Arcade"}, keepInput: true, aliases: hypixelSaysAliases},
	SchemaMiniWalls:      {name: "MINI_WALLS", path: []string{"stats", "Arcade"}, keepInput: true, aliases: miniWallsAliases},
	SchemaPartyGames:     {name: "PARTY_GAMES", path: []string{"stats", "Arcade"}, keepInput: true, aliases: partyGamesAliases},

	SchemaBedwars: {
		name:         "BEDWARS",
		path:         []string{"stats", "Bedwars"},
		keepFragment: true,
		inject: func(input, doc map[string]any, _ any) {
			level, ok := Map(input["achievement_stats"])["bedwars_level"]
			if !ok {
				level = 1
			}
			doc["bedwars_level"] = level
		},
		aliases: bedwarsAliases,
	},
	SchemaBedwarsSolo:    {name: "BEDWARS_SOLO", aliases: bedwarsMode("eight_one")},
	SchemaBedwarsDoubles: {name: "BEDWARS_DOUBLES", aliases: bedwarsMode("eight_two")},
	SchemaBedwarsThrees:  {name: "BEDWARS_THREES", aliases: bedwarsMode("four_three")},
	SchemaBedwarsFours:   {name: "BEDWARS_FOURS", aliases: bedwarsMode("four_four")},
	SchemaBedwarsTeams:   {name: "BEDWARS_TEAMS", aliases: bedwarsMode("two_four")},

	SchemaBlitz: {name: "BLITZ", path: []string{"stats", "HungerGames"}, aliases: blitzAliases},

	SchemaDuels:          {name: "DUELS", path: []string{"stats", "Duels"}, keepFragment: true, aliases: duelsAliases},
	SchemaDuelsBlitz:     {name: "BLITZ_DUELS", aliases: duelsMode("blitz", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsBow:       {name: "BOW_DUELS", aliases: duelsMode("bow", duelsBase, duelsBow)},
	SchemaDuelsBoxing:    {name: "BOXING_DUELS", aliases: duelsMode("boxing", duelsBase, duelsMelee)},
	SchemaDuelsBridge:    {name: "BRIDGE_DUELS", aliases: duelsMode("bridge", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsClassic:   {name: "CLASSIC_DUELS", aliases: duelsMode("classic", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsCombo:     {name: "COMBO_DUELS", aliases: duelsMode("combo", duelsBase, duelsMelee)},
	SchemaDuelsMegaWalls: {name: "MEGA_WALLS_DUELS", aliases: duelsMode("mega_walls", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsNoDebuff:  {name: "NO_DEBUFF_DUELS", aliases: duelsMode("no_debuff", duelsBase, duelsMelee)},
	SchemaDuelsOP:        {name: "OP_DUELS", aliases: duelsMode("op", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsParkour:   {name: "PARKOUR_DUELS", aliases: duelsMode("parkour", duelsBase)},
	SchemaDuelsSkywars:   {name: "SKYWARS_DUELS", aliases: duelsMode("skywars", duelsBase, duelsMelee, duelsBow)},
	SchemaDuelsSumo:      {name: "SUMO_DUELS", aliases: duelsMode("sumo", duelsBase, duelsMelee)},
	SchemaDuelsTNTGames:  {name: "TNT_GAMES_DUELS", aliases: duelsMode("tnt_games", duelsBase, []string{"bow_shots"})},
	SchemaDuelsUHC:       {name: "UHC_DUELS", aliases: duelsMode("uhc", duelsBase, duelsMelee, duelsBow)},

	SchemaMurderMystery:          {name: "MURDER_MYSTERY", path: []string{"stats", "MurderMystery"}, keepFragment: true, aliases: murderMysteryAliases},
	SchemaMurderMysteryAssassins: {name: "MM_ASSASSINS", aliases: murderMysteryMode("ASSASSINS", false)},
	SchemaMurderMysteryClassic:   {name: "MM_CLASSIC", aliases: murderMysteryMode("CLASSIC", false)},
	SchemaMurderMysteryDoubleUp:  {name: "MM_DOUBLE_UP", aliases: murderMysteryMode("DOUBLE_UP", false)},
	SchemaMurderMysteryHardcore:  {name: "MM_HARDCORE", inject: markRemoved, aliases: murderMysteryMode("HARDCORE", true)},
	SchemaMurderMysteryShowdown:  {name: "MM_SHOWDOWN", inject: markRemoved, aliases: murderMysteryMode("SHOWDOWN", true)},

	SchemaPaintball:    {name: "PAINTBALL", path: []string{"stats", "Paintball"}, aliases: paintballAliases},
	SchemaParkour:      {name: "PARKOUR", path: []string{"parkourCompletions"}, aliases: parkourAliases},
	SchemaParkourLobby: {name: "PARKOUR_LOBBY", aliases: parkourLobbyAliases},

	SchemaSkywars:            {name: "SKYWARS", path: []string{"stats", "SkyWars"}, keepFragment: true, aliases: skywarsAliases},
	SchemaSkywarsRanked:      {name: "SKYWARS_RANKED", aliases: skywarsMode("ranked")},
	SchemaSkywarsSoloNormal:  {name: "SKYWARS_SOLO_NORMAL", aliases: skywarsMode("solo_normal")},
	SchemaSkywarsSoloInsane:  {name: "SKYWARS_SOLO_INSANE", aliases: skywarsMode("solo_insane")},
	SchemaSkywarsTeamNormal:  {name: "SKYWARS_TEAM_NORMAL", aliases: skywarsMode("team_normal")},
	SchemaSkywarsTeamInsane:  {name: "SKYWARS_TEAM_INSANE", aliases: skywarsMode("team_insane")},
	SchemaSkywarsMegaNormal:  {name: "SKYWARS_MEGA_NORMAL", aliases: skywarsMode("mega_normal")},
	SchemaSkywarsMegaDoubles: {name: "SKYWARS_MEGA_DOUBLES", aliases: skywarsMode("mega_doubles")},

	SchemaSocials:  {name: "SOCIALS", path: []string{"socialMedia", "links"}, aliases: socialsAliases},
	SchemaTKR:      {name: "TKR", path: []string{"stats", "GingerBread"}, aliases: tkrAliases},
	SchemaTNTGames: {name: "TNT_GAMES", path: []string{"stats", "TNTGames"}, aliases: tntGamesAliases},

	SchemaUHC:      {name: "UHC", path: []string{"stats", "UHC"}, keepFragment: true, aliases: uhcAliases},
	SchemaUHCSolo:  {name: "UHC_SOLO", aliases: suffixed("_solo", uhcModeStats...)},
	SchemaUHCTeam:  {name: "UHC_TEAM", aliases: suffixed("", uhcModeStats...)},
	SchemaUHCBrawl: {name: "UHC_BRAWL", aliases: suffixed("_brawl", uhcModeStats...)},

	SchemaWoolGames: {
		name:         "WOOL_GAMES",
		path:         []string{"stats", "WoolGames"},
		keepFragment: true,
		inject: func(input, doc map[string]any, _ any) {
			exp := Float(Map(doc["progression"])["experience"])
			doc["experience"] = int(math.RoundToEven(exp))
		},
		aliases: woolGamesAliases,
	},
	SchemaWoolWars: {
		name: "WOOL_GAMES_WOOL_WARS",
		path: []string{"wool_wars", "stats"},
		inject: func(input, doc map[string]any, _ any) {
			if class, ok := Map(input["wool_wars"])["selected_class"]; ok {
				doc["selected_class"] = class
			}
		},
		aliases: woolWarsAliases,
	},
}

func markRemoved(_, doc map[string]any, _ any) {
	doc["removed"] = true
}

// Aliases returns a copy of the alias table for s, including DataKey when
// the schema keeps a source copy.
func Aliases(s Schema) map[string]string {
	r := rules[s]
	out := make(map[string]string, len(r.aliases)+1)
	for k, v := range r.aliases {
		out[k] = v
	}
	if r.keepInput || r.keepFragment {
		out[DataKey] = DataKey
	}
	return out
}

// Normalize returns the fields of raw that schema s allows, renamed to entity
// field names. raw is never modified. extra carries schema specific context,
// a RankResolver for SchemaGuildMember.
func Normalize(raw map[string]any, s Schema, extra any) map[string]any {
	if s < 0 || s >= schemaCount {
		return map[string]any{}
	}
	r := rules[s]

	var input map[string]any
	if r.keepInput {
		input = Clone(raw)
	}

	doc := raw
	for _, key := range r.path {
		doc = Map(doc[key])
	}
	doc = Clone(doc)

	if r.inject != nil {
		r.inject(raw, doc, extra)
	}
	if r.keepFragment {
		doc[DataKey] = Clone(doc)
	}
	if r.keepInput {
		doc[DataKey] = input
	}

	aliases := Aliases(s)
	out := make(map[string]any, len(aliases))
	for k, v := range doc {
		if name, ok := aliases[k]; ok {
			out[name] = v
		}
	}
	return out
}
