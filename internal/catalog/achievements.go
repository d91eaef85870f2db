package catalog

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed achievements.yaml
var achievementsYAML []byte

// achievementTable maps category -> lowercased name -> raw fields.
type achievementTable map[string]map[string]map[string]any

type achievementDoc map[string]struct {
	OneTime map[string]map[string]any `yaml:"one_time"`
}

var loadAchievements = sync.OnceValues(func() (achievementTable, error) {
	var doc achievementDoc
	if err := yaml.Unmarshal(achievementsYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse achievements: %w", err)
	}

	table := make(achievementTable, len(doc))
	for category, group := range doc {
		byName := make(map[string]map[string]any, len(group.OneTime))
		for name, fields := range group.OneTime {
			byName[strings.ToLower(name)] = fields
		}
		table[strings.ToLower(category)] = byName
	}
	return table, nil
})

// splitAchievement splits "bedwars_not_a_scratch" into its category and
// lowercased name. Bridge achievements are filed under duels.
func splitAchievement(typeName string) (category, name string) {
	category, name, _ = strings.Cut(typeName, "_")
	category = strings.ToLower(category)
	if category == "bridge" {
		category = "duels"
	}
	return category, strings.ToLower(name)
}

// AchievementData returns a copy of the raw catalog fields for a one-time
// achievement type name as found in a player's achievementsOneTime list,
// with "type_name" set. It returns nil when the achievement is unknown.
func AchievementData(typeName string) map[string]any {
	table, err := loadAchievements()
	if err != nil {
		return nil
	}

	category, name := splitAchievement(typeName)
	fields, ok := table[category][name]
	if !ok {
		return nil
	}

	out := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		out[k] = v
	}
	out["type_name"] = typeName
	return out
}
