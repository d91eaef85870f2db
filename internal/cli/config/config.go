// Package config implements the config command group.
package config

import (
	"github.com/spf13/cobra"

	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

// NewCommand creates the config command group
func NewCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long: `View and create the go-hypixel configuration.

Configuration is read from ~/.config/go-hypixel/config.yaml by default,
then from HYPIXEL_* environment variables, which may also be set in a .env
file in the working directory or next to the config file. Flags win over
both.`,
		Example: `  # Write a config file with your API key
  go-hypixel config init --key 4a1c5e32-8f2b-4d1a-9c7e-2b3f4a5d6e7f

  # Show the effective configuration
  go-hypixel config show

  # Show configuration file path
  go-hypixel config path`,
		Aliases: []string{"cfg"},
	}

	cmd.AddCommand(NewInitCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))

	return cmd
}
