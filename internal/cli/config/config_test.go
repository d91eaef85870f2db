package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

const testKey = "4a1c5e32-8f2b-4d1a-9c7e-2b3f4a5d6e7f"

func execute(cmd *cobra.Command, args ...string) (string, error) {
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	err := cmd.Execute()
	return out.String(), err
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand(&cmdutil.Options{})

	assert.Equal(t, "config", cmd.Use)
	assert.Equal(t, "Manage configuration", cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotEmpty(t, cmd.Example)
	assert.Contains(t, cmd.Aliases, "cfg")

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"init", "show", "path"}, names)
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	opts := &cmdutil.Options{ConfigFile: path, Keys: []string{testKey}}

	out, err := execute(NewCommand(opts), "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	cfg, err := hypixel.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{testKey}, cfg.Keys)

	_, err = execute(NewCommand(opts), "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	_, err = execute(NewCommand(opts), "init", "--force")
	require.NoError(t, err)
	assert.FileExists(t, path+".bak")

	opts.Keys = []string{"nope"}
	_, err = execute(NewCommand(opts), "init", "--force")
	assert.Error(t, err)
}

func TestInitCommand_DefaultPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	out, err := execute(NewCommand(&cmdutil.Options{JSON: true}), "init")
	require.NoError(t, err)

	want := filepath.Join(xdg, "go-hypixel", "config.yaml")
	assert.Contains(t, out, want)
	_, err = os.Stat(want)
	assert.NoError(t, err)
}

func TestInitCommand_Env(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	_, err := execute(NewCommand(&cmdutil.Options{}), "init", "--env")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--key")

	opts := &cmdutil.Options{Keys: []string{testKey}}
	out, err := execute(NewCommand(opts), "init", "--env")
	require.NoError(t, err)

	want := filepath.Join(xdg, "go-hypixel", ".env")
	assert.Contains(t, out, "Wrote "+want)
	env, err := godotenv.Read(want)
	require.NoError(t, err)
	assert.Equal(t, testKey, env["HYPIXEL_KEYS"])
	assert.NoFileExists(t, filepath.Join(xdg, "go-hypixel", "config.yaml"))
}

func TestShowCommand(t *testing.T) {
	opts := &cmdutil.Options{
		Config: func() (*hypixel.Config, error) {
			cfg := hypixel.DefaultConfig()
			cfg.Keys = []string{testKey}
			return cfg, nil
		},
	}

	out, err := execute(NewCommand(opts), "show")
	require.NoError(t, err)
	assert.Contains(t, out, "****6e7f")
	assert.NotContains(t, out, testKey)
	assert.Contains(t, out, "timeout: 10s")

	out, err = execute(NewCommand(opts), "show", "--reveal")
	require.NoError(t, err)
	assert.Contains(t, out, testKey)

	opts.JSON = true
	out, err = execute(NewCommand(opts), "show")
	require.NoError(t, err)
	assert.Contains(t, out, `"hypixel_base_url": "https://api.hypixel.net"`)
}

func TestPathCommand(t *testing.T) {
	out, err := execute(NewCommand(&cmdutil.Options{ConfigFile: "/tmp/custom.yaml"}), "path")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml\n", out)
}
