package normalize

import (
	"math"
	"strconv"
)

// Round rounds the exact binary value of x to the given number of decimal
// places. Scaling by 10^places first would turn 0.025 into an exact tie.
func Round(x float64, places int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(x, 'f', places, 64), 64)
	return f
}

// SafeDiv returns a/b rounded to two places. A zero divisor yields a.
func SafeDiv(a, b float64) float64 {
	if b == 0 {
		return a
	}
	return Round(a/b, 2)
}

// NetworkLevel converts network experience to a level.
func NetworkLevel(exp float64) float64 {
	return Round(1+(-8750.0+math.Sqrt(8750*8750+5000*exp))/2500, 2)
}

// guildLevelCosts is the experience needed per guild level. Past the end
// of the table the last cost repeats.
var guildLevelCosts = []float64{
	100000, 150000, 250000, 500000, 750000, 1000000, 1250000, 1500000,
	2000000, 2500000, 2500000, 2500000, 2500000, 2500000, 3000000,
}

// MaxGuildLevel caps GuildLevel.
const MaxGuildLevel = 1000

// GuildLevel converts guild experience to a fractional level.
func GuildLevel(exp float64) float64 {
	return TieredLevel(exp, guildLevelCosts, MaxGuildLevel)
}

// TieredLevel walks costs, consuming exp per level, and returns the level
// plus progress into the next one. The last cost repeats past the table.
func TieredLevel(exp float64, costs []float64, maxLevel int) float64 {
	if len(costs) == 0 {
		return 0
	}
	level := 0
	for i := 0; i <= maxLevel; i++ {
		need := costs[len(costs)-1]
		if i < len(costs) {
			need = costs[i]
		}
		if exp < need {
			return math.RoundToEven((float64(level)+exp/need)*100) / 100
		}
		level++
		exp -= need
	}
	return float64(maxLevel)
}

var skywarsLevelExp = []float64{0, 20, 70, 150, 250, 500, 1000, 2000, 3500, 6000, 10000, 15000}

// SkywarsLevel interpolates between level breakpoints below 15000 exp and
// grows linearly, one level per 10000 exp, above it.
func SkywarsLevel(exp float64) float64 {
	if exp >= 15000 {
		return (exp-15000)/10000 + 12
	}
	if exp < 0 {
		exp = 0
	}
	for i := 1; i < len(skywarsLevelExp); i++ {
		if exp < skywarsLevelExp[i] {
			lo, hi := skywarsLevelExp[i-1], skywarsLevelExp[i]
			return float64(i) + (exp-lo)/(hi-lo)
		}
	}
	return 12
}

var uhcLevelScores = []float64{0, 10, 60, 210, 460, 960, 1710, 2710, 5210, 10210, 13210, 16210, 19210, 22210, 25210}

// UHCLevel counts the score thresholds met, stopping at the first one missed.
func UHCLevel(score float64) int {
	level := 0
	for _, need := range uhcLevelScores {
		if score < need {
			break
		}
		level++
	}
	return level
}

// woolWarsPrestigeCosts are the costs of the first levels of each prestige.
var woolWarsPrestigeCosts = map[int]int{1: 500, 2: 1000, 3: 2000, 4: 3500}

const (
	woolWarsPrestigeExp = 487000
	woolWarsLevelExp    = 5000
)

// WoolWarsLevel converts wool games experience to a fractional level.
// Each prestige is 100 levels; its first four levels are cheaper.
func WoolWarsLevel(exp int) float64 {
	if exp < 0 {
		exp = 0
	}
	levels := (exp / woolWarsPrestigeExp) * 100
	exp %= woolWarsPrestigeExp

	for i := 1; i <= 4; i++ {
		cost := woolWarsPrestigeCosts[i]
		if exp < cost {
			break
		}
		levels++
		exp -= cost
	}

	levels += exp / woolWarsLevelExp
	exp %= woolWarsLevelExp

	next := woolWarsLevelExp
	if cost, ok := woolWarsPrestigeCosts[(levels+1)%100]; ok {
		next = cost
	}
	return Round(float64(levels)+float64(exp)/float64(next), 2)
}
