// Package players implements the player lookup commands.
package players

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// NewPlayerCommand creates the player command
func NewPlayerCommand(opts *cmdutil.Options) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "player <name|uuid>",
		Short: "Show a player's profile and stats",
		Long: `Show a player's network profile and a summary of their game stats.

The player can be given by name or by uuid, dashed or not. Names are
resolved through the Mojang API first.`,
		Example: `  # Show a player by name
  go-hypixel player duhby

  # Include every game summary
  go-hypixel player duhby --full

  # JSON output for scripting
  go-hypixel player b423f64699f94694ad2366aa9647c606 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlayer(cmd.Context(), cmd.OutOrStdout(), opts, args[0], full)
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Show every game summary")

	return cmd
}

func runPlayer(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, query string, full bool) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	p, err := client.Player(ctx, query)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get player: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, p)
	}
	return cmdutil.WriteSections(stdout, displayName(p), playerSections(p, full)...)
}

func displayName(p *hypixel.Player) string {
	if p.Rank == "" {
		return p.Name
	}
	return fmt.Sprintf("[%s] %s", p.Rank, p.Name)
}

func playerSections(p *hypixel.Player, full bool) []cmdutil.Section {
	var recent string
	if p.MostRecentGame != nil {
		recent = p.MostRecentGame.CleanName
	}

	sections := []cmdutil.Section{
		{Fields: []cmdutil.Field{
			{Key: "UUID", Value: p.UUID},
			{Key: "Level", Value: p.Level},
			{Key: "Network exp", Value: cmdutil.FormatCount(p.NetworkExp)},
			{Key: "Karma", Value: cmdutil.FormatCount(p.Karma)},
			{Key: "Achievement points", Value: p.AchievementPoints},
			{Key: "First login", Value: p.FirstLogin},
			{Key: "Last login", Value: p.LastLogin},
			{Key: "Most recent game", Value: recent},
			{Key: "Discord", Value: p.Socials.Discord},
		}},
		{Title: "Bed Wars", Fields: []cmdutil.Field{
			{Key: "Level", Value: p.Bedwars.Level},
			{Key: "Wins", Value: p.Bedwars.Wins},
			{Key: "WLR", Value: p.Bedwars.WLR},
			{Key: "FKDR", Value: p.Bedwars.FKDR},
			{Key: "BBLR", Value: p.Bedwars.BBLR},
			{Key: "Winstreak", Value: p.Bedwars.Winstreak},
		}},
		{Title: "SkyWars", Fields: []cmdutil.Field{
			{Key: "Level", Value: p.Skywars.Level},
			{Key: "Wins", Value: p.Skywars.Wins},
			{Key: "KDR", Value: p.Skywars.KDR},
			{Key: "WLR", Value: p.Skywars.WLR},
		}},
		{Title: "Duels", Fields: []cmdutil.Field{
			{Key: "Title", Value: p.Duels.Title},
			{Key: "Wins", Value: p.Duels.Wins},
			{Key: "WLR", Value: p.Duels.WLR},
			{Key: "Melee ratio", Value: p.Duels.MR},
		}},
	}
	if !full {
		return sections
	}

	sections = append(sections,
		cmdutil.Section{Title: "Arcade", Fields: []cmdutil.Field{
			{Key: "Coins", Value: p.Arcade.Coins},
			{Key: "Party Games wins", Value: p.Arcade.PartyGames.TotalWins},
			{Key: "Mini Walls KDR", Value: p.Arcade.MiniWalls.KDR},
		}},
		cmdutil.Section{Title: "Blitz", Fields: []cmdutil.Field{
			{Key: "Wins", Value: p.Blitz.Wins},
			{Key: "KDR", Value: p.Blitz.KDR},
		}},
		cmdutil.Section{Title: "Murder Mystery", Fields: []cmdutil.Field{
			{Key: "Wins", Value: p.MurderMystery.Wins},
			{Key: "KDR", Value: p.MurderMystery.KDR},
		}},
		cmdutil.Section{Title: "Paintball", Fields: []cmdutil.Field{
			{Key: "Kills", Value: p.Paintball.Kills},
			{Key: "KDR", Value: p.Paintball.KDR},
		}},
		cmdutil.Section{Title: "Turbo Kart Racers", Fields: []cmdutil.Field{
			{Key: "Wins", Value: p.TKR.Wins},
			{Key: "Banana ratio", Value: p.TKR.BR},
		}},
		cmdutil.Section{Title: "UHC Champions", Fields: []cmdutil.Field{
			{Key: "Level", Value: p.UHC.Level},
			{Key: "Wins", Value: p.UHC.Wins},
			{Key: "KDR", Value: p.UHC.KDR},
		}},
		cmdutil.Section{Title: "Wool Games", Fields: []cmdutil.Field{
			{Key: "Level", Value: p.WoolGames.Level},
			{Key: "Wool Wars wins", Value: p.WoolGames.WoolWars.Wins},
			{Key: "Wool Wars KDR", Value: p.WoolGames.WoolWars.KDR},
		}},
		parkourSection(p.Parkour),
	)
	return sections
}

func parkourSection(pk hypixel.Parkour) cmdutil.Section {
	lobbies := []struct {
		name  string
		lobby *hypixel.ParkourLobby
	}{
		{"Main lobby", pk.Main},
		{"Arcade", pk.Arcade},
		{"Bed Wars", pk.Bedwars},
		{"Blitz", pk.Blitz},
		{"Duels", pk.Duels},
		{"Murder Mystery", pk.MurderMystery},
		{"SkyWars", pk.Skywars},
		{"UHC", pk.UHC},
	}

	s := cmdutil.Section{Title: "Parkour"}
	for _, l := range lobbies {
		if l.lobby != nil {
			s.Fields = append(s.Fields, cmdutil.Field{Key: l.name, Value: l.lobby.Time})
		}
	}
	return s
}
