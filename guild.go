package hypixel

import (
	"log/slog"
	"sort"
	"time"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// GuildRank is a custom guild rank.
type GuildRank struct {
	Name string `json:"name" mapstructure:"name"`
	// Default is unreliable, some guilds have no default rank.
	Default bool      `json:"default" mapstructure:"default"`
	Created time.Time `json:"created" mapstructure:"created"`
	// Priority orders ranks, higher is more senior. Nil when unset.
	Priority *int   `json:"priority,omitempty" mapstructure:"priority"`
	Tag      string `json:"tag,omitempty" mapstructure:"tag"`
}

// GuildMember is a member of a guild.
type GuildMember struct {
	UUID string `json:"uuid" mapstructure:"uuid"`
	// Rank points into Guild.Ranks when the name matches one of them.
	Rank   *GuildRank `json:"rank" mapstructure:"-"`
	Joined time.Time  `json:"joined" mapstructure:"joined"`
	// ExpHistory maps UTC days to guild experience earned on that day.
	ExpHistory         map[time.Time]int `json:"exp_history" mapstructure:"-"`
	QuestParticipation int               `json:"quest_participation" mapstructure:"quest_participation"`
	// Name is only set on legacy guilds.
	Name string `json:"name,omitempty" mapstructure:"name"`
}

// GameExp is the guild experience earned in one game.
type GameExp struct {
	Game *Game `json:"game"`
	Exp  int   `json:"exp"`
}

// Guild is a Hypixel guild.
type Guild struct {
	Raw map[string]any `json:"-" mapstructure:"-"`

	ID      string    `json:"id" mapstructure:"id"`
	Name    string    `json:"name" mapstructure:"name"`
	Exp     int       `json:"exp" mapstructure:"exp"`
	Created time.Time `json:"created" mapstructure:"created"`
	Level   float64   `json:"level" mapstructure:"-"`
	// LegacyRank is the position on the legacy leaderboard, nil if unranked.
	LegacyRank        *int          `json:"legacy_rank,omitempty" mapstructure:"legacy_rank"`
	Members           []GuildMember `json:"members" mapstructure:"-"`
	Ranks             []*GuildRank  `json:"ranks" mapstructure:"-"`
	Winners           int           `json:"winners" mapstructure:"winners"`
	ExperienceKings   int           `json:"experience_kings" mapstructure:"experience_kings"`
	MostOnlinePlayers int           `json:"most_online_players" mapstructure:"most_online_players"`
	Joinable          bool          `json:"joinable" mapstructure:"joinable"`
	Tag               string        `json:"tag,omitempty" mapstructure:"tag"`
	TagColor          *Color        `json:"tag_color,omitempty" mapstructure:"-"`
	Description       string        `json:"description,omitempty" mapstructure:"description"`
	// PreferredGames skips games missing from the catalog.
	PreferredGames []*Game `json:"preferred_games" mapstructure:"-"`
	PubliclyListed bool    `json:"publicly_listed" mapstructure:"publicly_listed"`
	// GameExp is sorted by experience, highest first. Games missing from
	// the catalog are skipped.
	GameExp []GameExp `json:"game_exp" mapstructure:"-"`
}

func newGuild(log *slog.Logger, raw map[string]any) *Guild {
	g := &Guild{Raw: raw}
	doc := build(log, normalize.Map(raw["guild"]), normalize.SchemaGuild, nil, g)

	g.Level = normalize.GuildLevel(float64(g.Exp))
	g.TagColor = ColorByTypeName(normalize.String(doc["tag_color"]))

	for _, name := range normalize.Slice(doc["preferred_games"]) {
		if game := GameByTypeName(normalize.String(name)); game != nil {
			g.PreferredGames = append(g.PreferredGames, game)
		}
	}

	for name, exp := range normalize.Map(doc["game_exp"]) {
		if game := GameByTypeName(name); game != nil {
			g.GameExp = append(g.GameExp, GameExp{Game: game, Exp: normalize.Int(exp)})
		}
	}
	sort.Slice(g.GameExp, func(i, j int) bool {
		if g.GameExp[i].Exp != g.GameExp[j].Exp {
			return g.GameExp[i].Exp > g.GameExp[j].Exp
		}
		return g.GameExp[i].Game.ID < g.GameExp[j].Game.ID
	})

	// Ranks first, members reference them.
	for _, r := range normalize.Slice(doc["ranks"]) {
		rank := &GuildRank{}
		build(log, normalize.Map(r), normalize.SchemaGuildRank, nil, rank)
		g.Ranks = append(g.Ranks, rank)
	}

	resolve := normalize.RankResolver(func(name string) any {
		if rank := g.Rank(name); rank != nil {
			return rank
		}
		// Built-in ranks such as "Guild Master" are not listed.
		return &GuildRank{Name: name}
	})
	for _, m := range normalize.Slice(doc["members"]) {
		g.Members = append(g.Members, newGuildMember(log, normalize.Map(m), resolve))
	}

	return g
}

func newGuildMember(log *slog.Logger, raw map[string]any, resolve normalize.RankResolver) GuildMember {
	var m GuildMember
	doc := build(log, raw, normalize.SchemaGuildMember, resolve, &m)
	m.Rank, _ = doc["rank"].(*GuildRank)

	history := normalize.Map(doc["exp_history"])
	m.ExpHistory = make(map[time.Time]int, len(history))
	for day, exp := range history {
		t, err := time.ParseInLocation(time.DateOnly, day, time.UTC)
		if err != nil {
			continue
		}
		m.ExpHistory[t] = normalize.Int(exp)
	}
	return m
}

// Rank returns the custom rank called name, or nil.
func (g *Guild) Rank(name string) *GuildRank {
	for _, r := range g.Ranks {
		if r.Name == name {
			return r
		}
	}
	return nil
}

// SortedRanks returns the ranks by priority, highest first. Ranks without a
// priority come last in their original order.
func (g *Guild) SortedRanks() []*GuildRank {
	out := make([]*GuildRank, len(g.Ranks))
	copy(out, g.Ranks)
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Priority, out[j].Priority
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return *pi > *pj
		}
	})
	return out
}

// Member returns the member with the given uuid, or nil.
func (g *Guild) Member(uuid string) *GuildMember {
	for i := range g.Members {
		if g.Members[i].UUID == uuid {
			return &g.Members[i]
		}
	}
	return nil
}
