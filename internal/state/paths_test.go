package state

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetConfigDir(t *testing.T) {
	tests := []struct {
		name    string
		xdg     string
		home    string
		wantDir string
	}{
		{
			name:    "uses XDG_CONFIG_HOME when set",
			xdg:     "/tmp/xdg",
			home:    "/tmp/home",
			wantDir: "/tmp/xdg/go-hypixel",
		},
		{
			name:    "falls back to ~/.config",
			home:    "/tmp/home",
			wantDir: "/tmp/home/.config/go-hypixel",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdg)
			t.Setenv("HOME", tt.home)

			dir, err := GetConfigDir()
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.wantDir), dir)
		})
	}
}

func TestConfigFilePaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	path, err := GetConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/xdg/go-hypixel/config.yaml"), path)

	env, err := GetEnvPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("/tmp/xdg/go-hypixel/.env"), env)
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureDir(dir))
	assert.DirExists(t, dir)
	require.NoError(t, EnsureDir(dir))
}
