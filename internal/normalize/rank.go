package normalize

import "strings"

var romanValues = []struct {
	value  int
	symbol string
}{
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// Romanize converts n to a roman numeral. Values outside 1-10 are still
// converted greedily; zero and negatives give "".
func Romanize(n int) string {
	var b strings.Builder
	for _, rv := range romanValues {
		for n >= rv.value {
			b.WriteString(rv.symbol)
			n -= rv.value
		}
	}
	return b.String()
}

// titleDivisions are ordered from lowest to highest.
var titleDivisions = []struct {
	key   string
	label string
}{
	{"rookie", "Rookie"},
	{"iron", "Iron"},
	{"gold", "Gold"},
	{"diamond", "Diamond"},
	{"master", "Master"},
	{"legend", "Legend"},
	{"grandmaster", "Grandmaster"},
	{"godlike", "Godlike"},
	{"world_elite", "WORLD ELITE"},
	{"world_master", "WORLD MASTER"},
	{"worlds_best", "WORLD'S BEST"},
}

// DefaultTitle is the title of a player with no prestige flags.
const DefaultTitle = "Rookie I"

// Title resolves the prestige title for mode from the
// {mode}_{division}_title_prestige flags in data. Lower divisions stay set
// after a promotion, so the highest division present wins.
func Title(data map[string]any, mode string) string {
	title := DefaultTitle
	for _, d := range titleDivisions {
		prestige := data[mode+"_"+d.key+"_title_prestige"]
		if Truthy(prestige) {
			title = d.label + " " + Romanize(Int(prestige))
		}
	}
	return title
}

var colorCodes = strings.NewReplacer(
	"§0", "", "§1", "", "§2", "", "§3", "", "§4", "", "§5", "", "§6", "", "§7", "",
	"§8", "", "§9", "", "§a", "", "§b", "", "§c", "", "§d", "", "§e", "", "§f", "",
	"[", "", "]", "",
)

// StripColor removes chat color codes and brackets from a rank prefix.
func StripColor(s string) string {
	return colorCodes.Replace(s)
}

func packageRankLabel(rank string) string {
	return strings.ReplaceAll(strings.ReplaceAll(rank, "_", ""), "PLUS", "+")
}

// Rank resolves the display rank of a player response document, the one
// holding the "player" object. It returns "" when the player has no rank.
//
// Checked in order: a custom prefix, the staff rank (with a fallback to
// the old packageRank field), a monthly SUPERSTAR package, newPackageRank.
func Rank(raw map[string]any) string {
	player := Map(raw["player"])

	if prefix := String(player["prefix"]); prefix != "" {
		return StripColor(prefix)
	}

	if rank := String(player["rank"]); rank != "" {
		if rank == "YOUTUBER" {
			return "YOUTUBE"
		}
		// Old accounts may carry packageRank next to rank.
		if pr := String(player["packageRank"]); pr != "" {
			return packageRankLabel(pr)
		}
		if rank == "NORMAL" {
			return ""
		}
		return strings.ReplaceAll(rank, "_", " ")
	}

	if String(player["monthlyPackageRank"]) == "SUPERSTAR" {
		return "MVP++"
	}

	if npr := String(player["newPackageRank"]); npr != "" && npr != "NONE" {
		return packageRankLabel(npr)
	}
	return ""
}
