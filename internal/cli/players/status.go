package players

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// NewStatusCommand creates the status command
func NewStatusCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <name|uuid>",
		Short: "Show whether a player is online",
		Long: `Show a player's online status and, when online, the game, mode and map.

Players can hide their session in the API settings. Such players always
show as offline.`,
		Example: `  # Check if a player is online
  go-hypixel status duhby`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), cmd.OutOrStdout(), opts, args[0])
		},
	}

	return cmd
}

func runStatus(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, query string) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	s, err := client.Status(ctx, query)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get status: %w", err))
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, s)
	}

	fields := []cmdutil.Field{{Key: "Online", Value: s.Online}}
	if s.Online {
		var game string
		if s.Game != nil {
			game = s.Game.CleanName
		}
		fields = append(fields,
			cmdutil.Field{Key: "Game", Value: game},
			cmdutil.Field{Key: "Mode", Value: s.Mode},
			cmdutil.Field{Key: "Map", Value: s.Map},
		)
	}
	return cmdutil.WriteSections(stdout, query, cmdutil.Section{Fields: fields})
}
