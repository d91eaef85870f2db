package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
	"github.com/steviee/go-hypixel/internal/cli/config"
	"github.com/steviee/go-hypixel/internal/cli/guilds"
	"github.com/steviee/go-hypixel/internal/cli/network"
	"github.com/steviee/go-hypixel/internal/cli/players"
	"github.com/steviee/go-hypixel/internal/state"
)

// EnvPrefix prefixes every environment variable the CLI reads.
const EnvPrefix = "HYPIXEL"

var (
	// Global flags
	cfgFile string
	jsonOut bool
	quiet   bool
	verbose bool
	keys    []string
	timeout time.Duration

	// Global logger
	logger *slog.Logger

	// Shared with the command groups
	opts = &cmdutil.Options{}
)

// NewRootCommand creates and returns the root cobra command
func NewRootCommand(version, commit, date, builtBy string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "go-hypixel",
		Short: "Query the Hypixel and Mojang APIs",
		Long: `go-hypixel is a CLI tool for the Hypixel network's public API.

It provides a simple interface for:
  - Player profiles and game stats
  - Guilds, their ranks and members
  - Online status, player count and ban counters
  - Name and uuid lookups through the Mojang API

API keys are read from the config file, the HYPIXEL_KEYS environment
variable (also from a .env file) or the --key flag.`,
		Example: `  # Write a config file with your API key
  go-hypixel config init --key <key>

  # Show a player
  go-hypixel player duhby

  # Show a guild as JSON
  go-hypixel guild "Mini Squid" --json

  # Look up a uuid
  go-hypixel uuid duhby`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize logger based on flags
			if err := initLogger(cmd.ErrOrStderr()); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			// Initialize config
			if err := initConfig(); err != nil {
				logger.Error("failed to initialize config", "error", err)
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			opts.JSON = jsonOut
			opts.Quiet = quiet
			opts.Logger = logger
			opts.ConfigFile = cfgFile
			opts.Keys = keys
			opts.Config = loadClientConfig
			opts.NewClient = newClient

			return nil
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/go-hypixel/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringSliceVar(&keys, "key", nil, "Hypixel API key, repeatable (env: HYPIXEL_KEYS)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "request timeout (default: 10s)")

	// Mark json and quiet as mutually exclusive
	rootCmd.MarkFlagsMutuallyExclusive("json", "quiet")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Add version command
	rootCmd.AddCommand(NewVersionCommand(version, commit, date, builtBy))

	// Lookups
	rootCmd.AddCommand(players.NewPlayerCommand(opts))
	rootCmd.AddCommand(players.NewStatusCommand(opts))
	rootCmd.AddCommand(players.NewUUIDCommand(opts))
	rootCmd.AddCommand(players.NewNameCommand(opts))
	rootCmd.AddCommand(guilds.NewCommand(opts))
	rootCmd.AddCommand(network.NewKeyCommand(opts))
	rootCmd.AddCommand(network.NewBansCommand(opts))
	rootCmd.AddCommand(network.NewCountCommand(opts))
	rootCmd.AddCommand(network.NewLeaderboardsCommand(opts))

	rootCmd.AddCommand(config.NewCommand(opts))

	return rootCmd
}

// initLogger initializes the global logger based on flags
func initLogger(out io.Writer) error {
	var level slog.Level
	var handler slog.Handler

	// Determine log level
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	default:
		level = slog.LevelWarn
	}

	handlerOpts := &slog.HandlerOptions{
		Level: level,
	}

	if jsonOut {
		handler = slog.NewJSONHandler(out, handlerOpts)
	} else {
		handler = slog.NewTextHandler(out, handlerOpts)
	}

	logger = slog.New(handler)
	slog.SetDefault(logger)

	return nil
}

// initConfig loads .env files, then reads the config file and environment
// variables into viper.
func initConfig() error {
	if err := loadEnvFiles(); err != nil {
		return err
	}

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		configDir, err := state.GetConfigDir()
		if err != nil {
			return fmt.Errorf("get config directory: %w", err)
		}
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	setDefaults(hypixel.DefaultConfig())

	// HYPIXEL_CACHE_HYPIXEL_ENABLED maps to cache.hypixel.enabled
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	} else {
		logger.Debug("using config file", "path", viper.ConfigFileUsed())
	}

	return nil
}

// loadEnvFiles loads ./.env and the .env next to the config file. Variables
// already set in the environment win, and the first file wins over the
// second.
func loadEnvFiles() error {
	files := []string{".env"}
	if path, err := state.GetEnvPath(); err == nil {
		files = append(files, path)
	}

	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
		logger.Debug("loaded env file", "path", f)
	}
	return nil
}

// setDefaults registers every config key so that AutomaticEnv applies to
// viper.Unmarshal.
func setDefaults(def *hypixel.Config) {
	viper.SetDefault("keys", def.Keys)
	viper.SetDefault("verify_keys", def.VerifyKeys)
	viper.SetDefault("timeout", def.Timeout)
	viper.SetDefault("hypixel_base_url", def.HypixelBaseURL)
	viper.SetDefault("mojang_base_url", def.MojangBaseURL)
	viper.SetDefault("user_agent", def.UserAgent)
	viper.SetDefault("requests_per_minute", def.RequestsPerMinute)
	viper.SetDefault("backoff.base", def.Backoff.Base)
	viper.SetDefault("rate_limit.hypixel", def.RateLimit.Hypixel)
	viper.SetDefault("rate_limit.mojang", def.RateLimit.Mojang)
	for name, c := range map[string]hypixel.CacheSettings{"hypixel": def.Cache.Hypixel, "mojang": def.Cache.Mojang} {
		viper.SetDefault("cache."+name+".enabled", c.Enabled)
		viper.SetDefault("cache."+name+".size", c.Size)
		viper.SetDefault("cache."+name+".ttl", c.TTL)
	}
}

// loadClientConfig merges viper's view with the --key and --timeout flags.
func loadClientConfig() (*hypixel.Config, error) {
	cfg := hypixel.DefaultConfig()
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if len(keys) > 0 {
		cfg.Keys = keys
	}
	if timeout > 0 {
		cfg.Timeout = timeout
	}
	cfg.Logger = logger

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func newClient() (*hypixel.Client, error) {
	cfg, err := loadClientConfig()
	if err != nil {
		return nil, err
	}
	return hypixel.New(cfg)
}

// IsJSONOutput returns true if JSON output is enabled
func IsJSONOutput() bool {
	return jsonOut
}
