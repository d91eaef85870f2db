package normalize

// Alias tables map upstream field names to entity field names. Only the
// fields listed survive normalization.

var playerAliases = map[string]string{
	"_id":                 "id",
	"uuid":                "uuid",
	"firstLogin":          "first_login",
	"displayname":         "name",
	"lastLogin":           "last_login",
	"lastLogout":          "last_logout",
	"knownAliases":        "known_aliases",
	"achievementsOneTime": "achievements",
	"achievementPoints":   "achievement_points",
	"networkExp":          "network_exp",
	"karma":               "karma",
	"currentGadget":       "current_gadget",
	"channel":             "channel",
	"rankPlusColor":       "rank_plus_color",
	"mostRecentGameType":  "most_recent_game_type",
}

var statusAliases = map[string]string{
	"online":   "online",
	"gameType": "game",
	"mode":     "mode",
	"map":      "map",
}

var guildAliases = map[string]string{
	"_id":                 "id",
	"name":                "name",
	"exp":                 "exp",
	"created":             "created",
	"winners":             "winners",
	"experience_kings":    "experience_kings",
	"most_online_players": "most_online_players",
	"legacyRanking":       "legacy_rank",
	"members":             "members",
	"ranks":               "ranks",
	"joinable":            "joinable",
	"tag":                 "tag",
	"tagColor":            "tag_color",
	"description":         "description",
	"preferredGames":      "preferred_games",
	"publiclyListed":      "publicly_listed",
	"guildExpByGameType":  "game_exp",
}

var guildMemberAliases = map[string]string{
	"uuid":               "uuid",
	"rank":               "rank",
	"joined":             "joined",
	"expHistory":         "exp_history",
	"questParticipation": "quest_participation",
	"name":               "name",
}

var guildRankAliases = map[string]string{
	"name":     "name",
	"default":  "default",
	"created":  "created",
	"priority": "priority",
	"tag":      "tag",
}

var keyAliases = map[string]string{
	"key":              "key",
	"owner":            "owner",
	"limit":            "limit",
	"totalQueries":     "queries",
	"queriesInPastMin": "recent_queries",
}

var bansAliases = map[string]string{
	"staff_rollingDaily":    "staff_day",
	"staff_total":           "staff_total",
	"watchdog_lastMinute":   "watchdog_recent",
	"watchdog_rollingDaily": "watchdog_day",
	"watchdog_total":        "watchdog_total",
}

var leaderboardAliases = map[string]string{
	"path":     "path",
	"prefix":   "prefix",
	"title":    "title",
	"location": "location",
	"leaders":  "leaders",
}

var achievementAliases = map[string]string{
	"type_name":             "type_name",
	"points":                "points",
	"name":                  "name",
	"description":           "description",
	"globalPercentUnlocked": "global_unlocked",
	"gamePercentUnlocked":   "game_unlocked",
	"legacy":                "legacy",
}

var arcadeAliases = map[string]string{
	"coins": "coins",
}

var ctwAliases = map[string]string{
	"arcade_ctw_oh_sheep": "captures",
	"arcade_ctw_slayer":   "kills_assists",
}

var hypixelSaysAliases = map[string]string{
	"rounds_simon_says":    "rounds",
	"wins_simon_says":      "wins",
	"top_score_simon_says": "top_score",
}

var miniWallsAliases = suffixed("_mini_walls",
	"kills", "deaths", "wins", "final_kills", "wither_kills", "wither_damage",
	"arrows_hit", "arrows_shot")

var partyGamesAliases = map[string]string{
	"wins_party":   "wins",
	"wins_party_2": "wins_2",
	"wins_party_3": "wins_3",
}

var bedwarsAliases = map[string]string{
	"bedwars_level":             "level",
	"coins":                     "coins",
	"kills_bedwars":             "kills",
	"deaths_bedwars":            "deaths",
	"fall_deaths_bedwars":       "fall_deaths",
	"void_deaths_bedwars":       "void_deaths",
	"wins_bedwars":              "wins",
	"losses_bedwars":            "losses",
	"games_played_bedwars":      "games",
	"final_kills_bedwars":       "final_kills",
	"final_deaths_bedwars":      "final_deaths",
	"fall_final_deaths_bedwars": "fall_final_deaths",
	"void_final_deaths_bedwars": "void_final_deaths",
	"beds_broken_bedwars":       "beds_broken",
	"beds_lost_bedwars":         "beds_lost",
	"winstreak":                 "winstreak",
	"Experience":                "exp",
}

var bedwarsModeStats = []string{
	"kills", "deaths", "fall_deaths", "void_deaths", "wins", "losses",
	"games_played", "final_kills", "final_deaths", "fall_final_deaths",
	"void_final_deaths", "beds_broken", "beds_lost",
}

// bedwarsMode builds the table for a mode prefix such as "eight_one".
func bedwarsMode(prefix string) map[string]string {
	out := make(map[string]string, len(bedwarsModeStats))
	for _, stat := range bedwarsModeStats {
		name := stat
		if stat == "games_played" {
			name = "games"
		}
		out[prefix+"_"+stat+"_bedwars"] = name
	}
	return out
}

var blitzAliases = map[string]string{
	"coins":            "coins",
	"kills":            "kills",
	"deaths":           "deaths",
	"wins":             "wins",
	"wins_solo_normal": "wins_solo",
	"wins_team_normal": "wins_team",
	"arrows_hit":       "arrows_hit",
	"arrows_fired":     "arrows_shot",
	"chests_opened":    "chests_opened",
	"games_played":     "games",
}

var duelsAliases = map[string]string{
	"coins":        "coins",
	"kills":        "kills",
	"deaths":       "deaths",
	"wins":         "wins",
	"losses":       "losses",
	"melee_hits":   "melee_hits",
	"melee_swings": "melee_swings",
	"bow_hits":     "arrows_hit",
	"bow_shots":    "arrows_shot",
}

var (
	duelsBase  = []string{"kills", "deaths", "wins", "losses"}
	duelsMelee = []string{"melee_hits", "melee_swings"}
	duelsBow   = []string{"bow_hits", "bow_shots"}
)

// duelsMode builds the table for a duel mode such as "classic".
func duelsMode(mode string, groups ...[]string) map[string]string {
	out := make(map[string]string)
	for _, group := range groups {
		for _, stat := range group {
			out[mode+"_duel_"+stat] = duelsAliases[stat]
		}
	}
	return out
}

var murderMysteryAliases = map[string]string{
	"coins":              "coins",
	"games":              "games",
	"wins":               "wins",
	"kills":              "kills",
	"deaths":             "deaths",
	"bow_kills":          "bow_kills",
	"knife_kills":        "knife_kills",
	"thrown_knife_kills": "thrown_knife_kills",
	"murderer_wins":      "murderer_wins",
	"detective_wins":     "detective_wins",
}

// murderMysteryMode builds the table for a mode such as "CLASSIC".
func murderMysteryMode(mode string, removed bool) map[string]string {
	out := make(map[string]string)
	for _, stat := range []string{"games", "wins", "kills", "deaths", "bow_kills", "knife_kills", "thrown_knife_kills"} {
		out[stat+"_MURDER_"+mode] = stat
	}
	if removed {
		out["removed"] = "removed"
	}
	return out
}

var paintballAliases = map[string]string{
	"coins":       "coins",
	"wins":        "wins",
	"kills":       "kills",
	"deaths":      "deaths",
	"killstreaks": "killstreaks",
	"shots_fired": "shots_fired",
}

var parkourAliases = map[string]string{
	"ArcadeGames":    "arcade",
	"Bedwars":        "bedwars",
	"BlitzLobby":     "blitz",
	"BuildBattle":    "build_battle",
	"CopsnCrims":     "cops_and_crims",
	"Duels":          "duels",
	"mainLobby2017":  "main",
	"MegaWalls":      "mega_walls",
	"MurderMystery":  "murder_mystery",
	"SkywarsAug2017": "skywars",
	"SuperSmash":     "smash",
	"TNT":            "tnt",
	"uhc":            "uhc",
	"Warlords":       "warlords",
}

var parkourLobbyAliases = map[string]string{
	"timeStart": "completed",
	"timeTook":  "time",
}

var skywarsAliases = map[string]string{
	"coins":              "coins",
	"kills":              "kills",
	"deaths":             "deaths",
	"wins":               "wins",
	"losses":             "losses",
	"games":              "games",
	"arrows_hit":         "arrows_hit",
	"arrows_shot":        "arrows_shot",
	"win_streak":         "winstreak",
	"souls":              "souls",
	"skywars_experience": "exp",
}

// skywarsMode builds the table for a mode such as "solo_insane".
func skywarsMode(mode string) map[string]string {
	return suffixed("_"+mode, "kills", "deaths", "wins", "losses")
}

var socialsAliases = map[string]string{
	"DISCORD":   "discord",
	"YOUTUBE":   "youtube",
	"TWITTER":   "twitter",
	"TWITCH":    "twitch",
	"INSTAGRAM": "instagram",
	"HYPIXEL":   "hypixel_forums",
}

var tkrAliases = map[string]string{
	"coins":                "coins",
	"laps_completed":       "laps",
	"gold_trophy":          "gold",
	"silver_trophy":        "silver",
	"bronze_trophy":        "bronze",
	"blue_torpedo_hit":     "blue_torpedo_hits",
	"banana_hits_sent":     "banana_hits",
	"banana_hits_received": "bananas_received",
	"wins":                 "wins",
}

var tntGamesAliases = map[string]string{
	"coins": "coins",
}

var uhcAliases = map[string]string{
	"coins":         "coins",
	"score":         "score",
	"uhc_parkour_1": "parkour_1",
	"uhc_parkour_2": "parkour_2",
}

var uhcModeStats = []string{"wins", "kills", "deaths", "heads_eaten", "ultimates_crafted"}

var woolGamesAliases = map[string]string{
	"level":      "level",
	"coins":      "coins",
	"experience": "exp",
}

var woolWarsAliases = map[string]string{
	"kills":          "kills",
	"deaths":         "deaths",
	"assists":        "assists",
	"wins":           "wins",
	"games_played":   "games",
	"blocks_broken":  "blocks_broken",
	"wool_placed":    "wool_placed",
	"selected_class": "selected_class",
}

// suffixed maps stat+suffix to stat for each stat.
func suffixed(suffix string, stats ...string) map[string]string {
	out := make(map[string]string, len(stats))
	for _, stat := range stats {
		out[stat+suffix] = stat
	}
	return out
}
