package hypixel

import (
	"log/slog"
	"time"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Player is a Hypixel player profile.
type Player struct {
	// Raw is the whole response document.
	Raw map[string]any `json:"-" mapstructure:"-"`

	// ID is the Hypixel identifier, UUID the Mojang one.
	ID         string    `json:"id" mapstructure:"id"`
	UUID       string    `json:"uuid" mapstructure:"uuid"`
	Name       string    `json:"name" mapstructure:"name"`
	FirstLogin time.Time `json:"first_login" mapstructure:"first_login"`
	LastLogin  time.Time `json:"last_login" mapstructure:"last_login"`
	LastLogout time.Time `json:"last_logout" mapstructure:"last_logout"`
	// KnownAliases are previous names the account joined with.
	KnownAliases []string `json:"known_aliases" mapstructure:"known_aliases"`
	// Achievements holds one-time achievement type names. See
	// AchievementDetails.
	Achievements      []string `json:"achievements" mapstructure:"-"`
	NetworkExp        int      `json:"network_exp" mapstructure:"network_exp"`
	Karma             int      `json:"karma" mapstructure:"karma"`
	AchievementPoints int      `json:"achievement_points" mapstructure:"achievement_points"`
	CurrentGadget     string   `json:"current_gadget" mapstructure:"current_gadget"`
	// Channel is empty when the player hides their online status.
	Channel string `json:"channel" mapstructure:"channel"`

	// Rank is the display rank, e.g. "MVP+", or "" for no rank.
	Rank      string  `json:"rank" mapstructure:"-"`
	PlusColor *Color  `json:"plus_color" mapstructure:"-"`
	Level     float64 `json:"level" mapstructure:"-"`
	// MostRecentGame is nil when recent games are hidden.
	MostRecentGame *Game `json:"most_recent_game" mapstructure:"-"`

	Arcade        Arcade          `json:"arcade" mapstructure:"-"`
	Bedwars       Bedwars         `json:"bedwars" mapstructure:"-"`
	Blitz         Blitz           `json:"blitz" mapstructure:"-"`
	Duels         Duels           `json:"duels" mapstructure:"-"`
	MurderMystery MurderMystery   `json:"murder_mystery" mapstructure:"-"`
	Paintball     Paintball       `json:"paintball" mapstructure:"-"`
	Parkour       Parkour         `json:"parkour" mapstructure:"-"`
	Skywars       Skywars         `json:"skywars" mapstructure:"-"`
	Socials       Socials         `json:"socials" mapstructure:"-"`
	TKR           TurboKartRacers `json:"tkr" mapstructure:"-"`
	TNTGames      TNTGames        `json:"tnt_games" mapstructure:"-"`
	UHC           UHC             `json:"uhc" mapstructure:"-"`
	WoolGames     WoolGames       `json:"wool_games" mapstructure:"-"`
}

// newPlayer builds a Player from a player response document.
func newPlayer(log *slog.Logger, raw map[string]any) *Player {
	p := &Player{Raw: raw}
	doc := build(log, normalize.Map(raw["player"]), normalize.SchemaPlayer, nil, p)
	data := source(doc)

	// Some entries are blank objects instead of names.
	for _, a := range normalize.Slice(doc["achievements"]) {
		if s, ok := a.(string); ok {
			p.Achievements = append(p.Achievements, s)
		}
	}

	p.NetworkExp = normalize.Int(doc["network_exp"])
	p.Level = normalize.NetworkLevel(float64(p.NetworkExp))
	p.Rank = normalize.Rank(raw)
	p.MostRecentGame = GameByTypeName(normalize.String(doc["most_recent_game_type"]))
	p.PlusColor = ColorByTypeName(normalize.String(doc["rank_plus_color"]))

	p.Arcade = newArcade(log, data)
	p.Bedwars = newBedwars(log, data)
	p.Blitz = newBlitz(log, data)
	p.Duels = newDuels(log, data)
	p.MurderMystery = newMurderMystery(log, data)
	p.Paintball = newPaintball(log, data)
	p.Parkour = newParkour(log, data)
	p.Skywars = newSkywars(log, data)
	p.Socials = newSocials(log, data)
	p.TKR = newTKR(log, data)
	p.TNTGames = newTNTGames(log, data)
	p.UHC = newUHC(log, data)
	p.WoolGames = newWoolGames(log, data)

	return p
}

// Equal reports whether both players are the same account.
func (p *Player) Equal(other *Player) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.UUID == other.UUID
}

// AchievementDetails resolves Achievements against the achievement catalog.
// Unknown achievements are skipped.
func (p *Player) AchievementDetails() []Achievement {
	out := make([]Achievement, 0, len(p.Achievements))
	for _, name := range p.Achievements {
		if a := AchievementByTypeName(name); a != nil {
			out = append(out, *a)
		}
	}
	return out
}

// Socials holds the linked social media accounts. Unlinked ones are empty.
type Socials struct {
	Discord       string `json:"discord,omitempty" mapstructure:"discord"`
	YouTube       string `json:"youtube,omitempty" mapstructure:"youtube"`
	Twitter       string `json:"twitter,omitempty" mapstructure:"twitter"`
	Twitch        string `json:"twitch,omitempty" mapstructure:"twitch"`
	Instagram     string `json:"instagram,omitempty" mapstructure:"instagram"`
	HypixelForums string `json:"hypixel_forums,omitempty" mapstructure:"hypixel_forums"`
}

func newSocials(log *slog.Logger, data map[string]any) Socials {
	var s Socials
	build(log, data, normalize.SchemaSocials, nil, &s)
	return s
}
