// Package network implements the commands that are not about a single
// player or guild.
package network

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// NewKeyCommand creates the key command
func NewKeyCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key [key]",
		Short: "Show information about an API key",
		Long: `Show the owner, limit and usage of an API key.

Without an argument the first configured key is shown.`,
		Example: `  # Show the configured key
  go-hypixel key

  # Show another key
  go-hypixel key 4a1c5e32-8f2b-4d1a-9c7e-2b3f4a5d6e7f`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var key string
			if len(args) == 1 {
				key = args[0]
			}
			return runKey(cmd.Context(), cmd.OutOrStdout(), opts, key)
		},
	}

	return cmd
}

func runKey(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, key string) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	if key == "" {
		keys := client.Keys()
		if len(keys) == 0 {
			return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("no API key configured, pass one or set HYPIXEL_KEYS"))
		}
		key = keys[0]
	}

	k, err := client.Key(ctx, key)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get key: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, k)
	}
	return cmdutil.WriteSections(stdout, "API key", cmdutil.Section{Fields: []cmdutil.Field{
		{Key: "Key", Value: k.Key},
		{Key: "Owner", Value: k.Owner},
		{Key: "Limit", Value: k.Limit},
		{Key: "Recent queries", Value: k.RecentQueries},
		{Key: "Total queries", Value: cmdutil.FormatCount(k.Queries)},
	}})
}

// NewBansCommand creates the bans command
func NewBansCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bans",
		Short: "Show the ban counters",
		Long:  "Show how many players staff and the anticheat banned recently and in total.",
		Example: `  # Show ban counters
  go-hypixel bans`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBans(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	return cmd
}

func runBans(ctx context.Context, stdout io.Writer, opts *cmdutil.Options) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	b, err := client.Bans(ctx)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get bans: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, b)
	}
	return cmdutil.WriteSections(stdout, "Bans",
		cmdutil.Section{Title: "Staff", Fields: []cmdutil.Field{
			{Key: "Last day", Value: b.StaffDay},
			{Key: "Total", Value: cmdutil.FormatCount(b.StaffTotal)},
		}},
		cmdutil.Section{Title: "Watchdog", Fields: []cmdutil.Field{
			{Key: "Last minute", Value: b.WatchdogRecent},
			{Key: "Last day", Value: b.WatchdogDay},
			{Key: "Total", Value: cmdutil.FormatCount(b.WatchdogTotal)},
		}},
	)
}

// NewCountCommand creates the count command
func NewCountCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Show the number of players online",
		Example: `  # Show the player count
  go-hypixel count`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCount(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	return cmd
}

func runCount(ctx context.Context, stdout io.Writer, opts *cmdutil.Options) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	n, err := client.PlayerCount(ctx)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get player count: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, map[string]int{"player_count": n})
	}
	_, err = fmt.Fprintln(stdout, n)
	return err
}

// NewLeaderboardsCommand creates the leaderboards command
func NewLeaderboardsCommand(opts *cmdutil.Options) *cobra.Command {
	var game string

	cmd := &cobra.Command{
		Use:   "leaderboards",
		Short: "Show the lobby leaderboards",
		Long: `Show the lobby leaderboards with their top players.

Use --game to limit the output to one game type, e.g. BEDWARS.`,
		Example: `  # Show every leaderboard
  go-hypixel leaderboards

  # Show the Bed Wars leaderboards
  go-hypixel leaderboards --game BEDWARS`,
		Aliases: []string{"lb"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLeaderboards(cmd.Context(), cmd.OutOrStdout(), opts, game)
		},
	}

	cmd.Flags().StringVar(&game, "game", "", "Only show this game type")

	return cmd
}

func runLeaderboards(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, game string) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	all, err := client.Leaderboards(ctx)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get leaderboards: %w", err))
	}
	if game != "" {
		boards, ok := all[game]
		if !ok {
			return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("no leaderboards for game %q", game))
		}
		all = map[string][]hypixel.Leaderboard{game: boards}
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, all)
	}

	games := make([]string, 0, len(all))
	for g := range all {
		games = append(games, g)
	}
	sort.Strings(games)

	var sections []cmdutil.Section
	for _, g := range games {
		for _, lb := range all[g] {
			s := cmdutil.Section{Title: fmt.Sprintf("%s: %s %s", g, lb.Prefix, lb.Title)}
			for i, leader := range lb.Leaders {
				s.Fields = append(s.Fields, cmdutil.Field{Key: fmt.Sprintf("#%d", i+1), Value: leader})
			}
			sections = append(sections, s)
		}
	}
	return cmdutil.WriteSections(stdout, "Leaderboards", sections...)
}
