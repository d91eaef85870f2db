package config

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
	"github.com/steviee/go-hypixel/internal/state"
)

// NewInitCommand creates the config init subcommand
func NewInitCommand(opts *cmdutil.Options) *cobra.Command {
	var (
		force bool
		env   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Write a configuration file with default values and the API keys given
with --key.

With --env the keys are written as HYPIXEL_KEYS to the .env file next to
the config file instead, so they stay out of config.yaml.

An existing file is only replaced with --force, and its previous content
is then kept with a .bak suffix.`,
		Example: `  # Create the config file
  go-hypixel config init --key 4a1c5e32-8f2b-4d1a-9c7e-2b3f4a5d6e7f

  # Replace an existing file
  go-hypixel config init --key <key> --force

  # Keep the key in ~/.config/go-hypixel/.env
  go-hypixel config init --key <key> --env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if env {
				return runInitEnv(cmd.OutOrStdout(), opts, force)
			}
			return runInit(cmd.OutOrStdout(), opts, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.Flags().BoolVar(&env, "env", false, "Write the keys to the .env file instead")

	return cmd
}

func runInit(stdout io.Writer, opts *cmdutil.Options, force bool) error {
	path, err := configPath(opts)
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, err)
	}

	cfg := hypixel.DefaultConfig()
	cfg.Keys = opts.Keys
	if err := state.SaveConfig(path, cfg, force); err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to write config: %w", err))
	}
	opts.Log().Debug("wrote config file", "path", path, "keys", len(cfg.Keys))

	return reportWritten(stdout, opts, path)
}

func runInitEnv(stdout io.Writer, opts *cmdutil.Options, force bool) error {
	if len(opts.Keys) == 0 {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("--env needs at least one --key"))
	}

	path, err := state.GetEnvPath()
	if err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to get env path: %w", err))
	}

	if err := state.SaveEnv(path, opts.Keys, force); err != nil {
		return cmdutil.WriteError(stdout, opts.JSON, fmt.Errorf("failed to write env file: %w", err))
	}
	opts.Log().Debug("wrote env file", "path", path, "keys", len(opts.Keys))

	return reportWritten(stdout, opts, path)
}

func reportWritten(stdout io.Writer, opts *cmdutil.Options, path string) error {
	if opts.JSON {
		return cmdutil.WriteJSON(stdout, map[string]string{"path": path})
	}
	if !opts.Quiet {
		_, _ = fmt.Fprintf(stdout, "Wrote %s\n", path)
	}
	return nil
}

func configPath(opts *cmdutil.Options) (string, error) {
	if opts.ConfigFile != "" {
		return opts.ConfigFile, nil
	}
	path, err := state.GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}
	return path, nil
}
