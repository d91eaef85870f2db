package players

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// NewUUIDCommand creates the uuid command
func NewUUIDCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uuid <name>",
		Short: "Look up the uuid of a player name",
		Long:  "Look up the undashed uuid of a player name through the Mojang API.",
		Example: `  # Print the uuid of a player
  go-hypixel uuid duhby`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), opts, args[0], "uuid")
		},
	}

	return cmd
}

// NewNameCommand creates the name command
func NewNameCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "name <uuid>",
		Short: "Look up the current name of a player uuid",
		Long:  "Look up the current name of a player uuid through the Mojang API.",
		Example: `  # Print the name of a player
  go-hypixel name b423f64699f94694ad2366aa9647c606`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(cmd.Context(), cmd.OutOrStdout(), opts, args[0], "name")
		},
	}

	return cmd
}

// runLookup resolves query in the given direction and prints the bare
// result, or {"uuid": ..., "name": ...} with --json.
func runLookup(ctx context.Context, stdout io.Writer, opts *cmdutil.Options, query, want string) error {
	client, err := opts.Client()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}
	defer func() { _ = client.Close() }()

	var result map[string]string
	switch want {
	case "uuid":
		id, err := client.UUID(ctx, query)
		if err != nil {
			return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to look up uuid: %w", err))
		}
		result = map[string]string{"name": query, "uuid": id}
	default:
		name, err := client.Name(ctx, query)
		if err != nil {
			return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to look up name: %w", err))
		}
		result = map[string]string{"name": name, "uuid": query}
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, result)
	}
	_, err = fmt.Fprintln(stdout, result[want])
	return err
}
