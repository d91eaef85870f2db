package hypixel

import (
	"log/slog"

	"github.com/steviee/go-hypixel/internal/normalize"
)

// Bans is a snapshot of the network ban counters.
type Bans struct {
	Raw map[string]any `json:"-" mapstructure:"-"`

	StaffDay   int `json:"staff_day" mapstructure:"staff_day"`
	StaffTotal int `json:"staff_total" mapstructure:"staff_total"`
	// WatchdogRecent counts the bans of the past minute.
	WatchdogRecent int `json:"watchdog_recent" mapstructure:"watchdog_recent"`
	WatchdogDay    int `json:"watchdog_day" mapstructure:"watchdog_day"`
	WatchdogTotal  int `json:"watchdog_total" mapstructure:"watchdog_total"`
}

func newBans(log *slog.Logger, raw map[string]any) *Bans {
	b := &Bans{Raw: raw}
	build(log, raw, normalize.SchemaBans, nil, b)
	return b
}
