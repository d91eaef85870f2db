// Package guilds implements the guild lookup command.
package guilds

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// GuildFlags holds all flags for the guild command
type GuildFlags struct {
	ByID     bool
	ByPlayer bool
	Members  bool
}

// NewCommand creates the guild command
func NewCommand(opts *cmdutil.Options) *cobra.Command {
	flags := &GuildFlags{}

	cmd := &cobra.Command{
		Use:   "guild <name>",
		Short: "Show a guild",
		Long: `Show a guild's level, ranks and experience by game.

By default the argument is the guild name. Use --id to look a guild up by
its id, or --player to find the guild of a player name or uuid.`,
		Example: `  # Look up a guild by name
  go-hypixel guild "Mini Squid"

  # Find the guild of a player
  go-hypixel guild duhby --player

  # List the members too
  go-hypixel guild "Mini Squid" --members`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGuild(cmd.Context(), cmd.OutOrStdout(), opts, args[0], flags)
		},
	}

	cmd.Flags().BoolVar(&flags.ByID, "id", false, "Treat the argument as a guild id")
	cmd.Flags().BoolVar(&flags.ByPlayer, "player", false, "Treat the argument as a player name or uuid")
	cmd.Flags().BoolVar(&flags.Members, "members", false, "List the guild members")
	cmd.MarkFlagsMutuallyExclusive("id", "player")

	return cmd
}

func runGuild(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, query string, flags *GuildFlags) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	var g *hypixel.Guild
	switch {
	case flags.ByID:
		g, err = client.GuildByID(ctx, query)
	case flags.ByPlayer:
		g, err = client.GuildByPlayer(ctx, query)
	default:
		g, err = client.GuildByName(ctx, query)
	}
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get guild: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, g)
	}
	return cmdutil.WriteSections(stdout, title(g), guildSections(g, flags.Members)...)
}

func title(g *hypixel.Guild) string {
	if g.Tag == "" {
		return g.Name
	}
	return fmt.Sprintf("%s [%s]", g.Name, g.Tag)
}

func guildSections(g *hypixel.Guild, members bool) []cmdutil.Section {
	info := cmdutil.Section{Fields: []cmdutil.Field{
		{Key: "ID", Value: g.ID},
		{Key: "Level", Value: g.Level},
		{Key: "Exp", Value: cmdutil.FormatCount(g.Exp)},
		{Key: "Created", Value: g.Created},
		{Key: "Members", Value: len(g.Members)},
		{Key: "Joinable", Value: g.Joinable},
		{Key: "Description", Value: g.Description},
	}}

	ranks := cmdutil.Section{Title: "Ranks"}
	for _, r := range g.SortedRanks() {
		ranks.Fields = append(ranks.Fields, cmdutil.Field{Key: r.Name, Value: r.Tag})
	}

	games := cmdutil.Section{Title: "Experience by game"}
	for _, ge := range g.GameExp {
		games.Fields = append(games.Fields, cmdutil.Field{Key: ge.Game.CleanName, Value: cmdutil.FormatCount(ge.Exp)})
	}

	sections := []cmdutil.Section{info, ranks, games}
	if members {
		list := cmdutil.Section{Title: "Members"}
		for _, m := range g.Members {
			var rank string
			if m.Rank != nil {
				rank = m.Rank.Name
			}
			list.Fields = append(list.Fields, cmdutil.Field{Key: m.UUID, Value: rank})
		}
		sections = append(sections, list)
	}
	return sections
}
