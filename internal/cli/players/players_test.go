package players

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	hypixel "github.com/steviee/go-hypixel"
	"github.com/steviee/go-hypixel/internal/cli/cmdutil"
)

const (
	testKey  = "4a1c5e32-8f2b-4d1a-9c7e-2b3f4a5d6e7f"
	testUUID = "b423f64699f94694ad2366aa9647c606"
)

const playerBody = `{
  "success": true,
  "player": {
    "uuid": "b423f64699f94694ad2366aa9647c606",
    "displayname": "duhby",
    "networkExp": 1000000,
    "newPackageRank": "MVP_PLUS",
    "mostRecentGameType": "BEDWARS",
    "parkourCompletions": {"Bedwars": [{"timeStart": 1600000000000, "timeTook": 45500}]},
    "stats": {"Bedwars": {"final_kills_bedwars": 200, "wins_bedwars": 80, "losses_bedwars": 20}}
  }
}`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/users/profiles/minecraft/duhby":
			_, _ = io.WriteString(w, `{"id":"`+testUUID+`","name":"duhby"}`)
		case "/user/profile/" + testUUID:
			_, _ = io.WriteString(w, `{"id":"`+testUUID+`","name":"duhby"}`)
		case "/player":
			_, _ = io.WriteString(w, playerBody)
		case "/status":
			_, _ = io.WriteString(w, `{"success":true,"session":{"online":true,"gameType":"SKYWARS","mode":"solo_normal","map":"Aegis"}}`)
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func testOptions(t *testing.T, jsonMode bool) *cmdutil.Options {
	t.Helper()
	server := testServer(t)
	return &cmdutil.Options{
		JSON: jsonMode,
		NewClient: func() (*hypixel.Client, error) {
			cfg := hypixel.DefaultConfig()
			cfg.Keys = []string{testKey}
			cfg.HypixelBaseURL = server.URL
			cfg.MojangBaseURL = server.URL
			cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			return hypixel.New(cfg)
		},
	}
}

func TestPlayerCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		jsonMode bool
		want     []string
		notWant  []string
	}{
		{
			name:    "text summary",
			args:    []string{"duhby"},
			want:    []string{"[MVP+] duhby", testUUID, "Bed Wars", "FKDR", "200"},
			notWant: []string{"Parkour"},
		},
		{
			name: "full text",
			args: []string{testUUID, "--full"},
			want: []string{"Parkour", "45.5s", "Wool Games"},
		},
		{
			name:     "json",
			args:     []string{"duhby"},
			jsonMode: true,
			want:     []string{`"status": "success"`, `"network_exp": 1000000`, `"rank": "MVP+"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewPlayerCommand(testOptions(t, tt.jsonMode))
			cmd.SetArgs(tt.args)

			var out bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			require.NoError(t, cmd.Execute())
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out.String(), w)
			}
		})
	}
}

func TestPlayerCommand_NotFound(t *testing.T) {
	cmd := NewPlayerCommand(testOptions(t, false))
	cmd.SetArgs([]string{"nobody"})

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, hypixel.ErrPlayerNotFound)
	assert.Contains(t, out.String(), "failed to get player")
}

func TestPlayerCommand_RequiresArg(t *testing.T) {
	cmd := NewPlayerCommand(testOptions(t, false))
	cmd.SetArgs(nil)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)

	assert.Error(t, cmd.Execute())
}

func TestStatusCommand(t *testing.T) {
	cmd := NewStatusCommand(testOptions(t, false))
	cmd.SetArgs([]string{testUUID})

	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Online")
	assert.Contains(t, out.String(), "yes")
	assert.Contains(t, out.String(), "Aegis")
}

func TestIdentityCommands(t *testing.T) {
	tests := []struct {
		name     string
		cmd      func(*cmdutil.Options) *cobra.Command
		args     []string
		jsonMode bool
		want     string
	}{
		{name: "uuid", cmd: NewUUIDCommand, args: []string{"duhby"}, want: testUUID + "\n"},
		{name: "name", cmd: NewNameCommand, args: []string{testUUID}, want: "duhby\n"},
		{name: "uuid json", cmd: NewUUIDCommand, args: []string{"duhby"}, jsonMode: true, want: `"uuid": "` + testUUID + `"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := tt.cmd(testOptions(t, tt.jsonMode))
			cmd.SetArgs(tt.args)

			var out bytes.Buffer
			cmd.SetOut(&out)

			require.NoError(t, cmd.Execute())
			if tt.jsonMode {
				assert.Contains(t, out.String(), tt.want)
			} else {
				assert.Equal(t, tt.want, out.String())
			}
		})
	}
}
