package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
	"github.com/steviee/go-hypixel/internal/state"
)

// NewShowCommand creates the config show subcommand
func NewShowCommand(opts *cmdutil.Options) *cobra.Command {
	var reveal bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show the configuration after merging the file, environment and flags.

API keys are masked unless --reveal is given.`,
		Example: `  # Show the configuration
  go-hypixel config show`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.OutOrStdout(), opts, reveal)
		},
	}

	cmd.Flags().BoolVar(&reveal, "reveal", false, "Print API keys in full")

	return cmd
}

func runShow(stdout io.Writer, opts *cmdutil.Options, reveal bool) error {
	cfg, err := opts.ClientConfig()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}

	out := *cfg
	if !reveal {
		out.Keys = make([]string, len(cfg.Keys))
		for i, k := range cfg.Keys {
			out.Keys[i] = state.MaskKey(k)
		}
	}

	if opts.JSON {
		return cmdutil.WriteJSON(stdout, &out)
	}

	data, err := yaml.Marshal(&out)
	if err != nil {
		return cmdutil.WriteError(stdout, false, fmt.Errorf("failed to marshal config: %w", err))
	}
	_, err = stdout.Write(data)
	return err
}

// NewPathCommand creates the config path subcommand
func NewPathCommand(opts *cmdutil.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configPath(opts)
			if err != nil {
				return cmdutil.WriteError(cmd.OutOrStdout(), opts.JSON, err)
			}
			if opts.JSON {
				return cmdutil.WriteJSON(cmd.OutOrStdout(), map[string]string{"path": path})
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), path)
			return err
		},
	}

	return cmd
}
