// Package cmdutil holds what the command groups share: global flag values,
// client construction and output rendering.
package cmdutil

import (
	"errors"
	"log/slog"

	hypixel "github.com/steviee/go-hypixel"
)

// Options carries the global flags into subcommands. The root command fills
// it in before any subcommand runs.
type Options struct {
	JSON   bool
	Quiet  bool
	Logger *slog.Logger
	// ConfigFile is the --config value, empty for the default location.
	ConfigFile string
	// Keys are the --key values.
	Keys []string

	// Config returns the effective client configuration.
	Config func() (*hypixel.Config, error)
	// NewClient builds a client from the loaded configuration.
	NewClient func() (*hypixel.Client, error)
}

// ClientConfig returns the effective client configuration.
func (o *Options) ClientConfig() (*hypixel.Config, error) {
	if o == nil || o.Config == nil {
		return nil, errors.New("config loader not configured")
	}
	return o.Config()
}

// Client builds a new client. Callers close it when done.
func (o *Options) Client() (*hypixel.Client, error) {
	if o == nil || o.NewClient == nil {
		return nil, errors.New("client factory not configured")
	}
	return o.NewClient()
}

// Log returns the configured logger or slog.Default().
func (o *Options) Log() *slog.Logger {
	if o == nil || o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}
