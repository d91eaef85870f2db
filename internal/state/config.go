package state

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	hypixel "github.com/steviee/go-hypixel"
)

// EnvKeys is the variable the CLI reads API keys from.
const EnvKeys = "HYPIXEL_KEYS"

// ErrConfigExists is returned by SaveConfig and SaveEnv when the file exists
// and overwrite is false.
var ErrConfigExists = errors.New("config file already exists")

// SaveConfig writes cfg as YAML to path with owner-only permissions, since
// it holds API keys. With overwrite set an existing file is kept as
// path.bak.
func SaveConfig(path string, cfg *hypixel.Config, overwrite bool) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	exists, err := checkExisting(path, overwrite)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := writeFile(path, data, 0o600, exists); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveEnv writes keys as HYPIXEL_KEYS to a dotenv file at path. Other
// variables already in the file are kept.
func SaveEnv(path string, keys []string, overwrite bool) error {
	for _, key := range keys {
		cfg := hypixel.Config{Keys: []string{key}}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid key: %w", err)
		}
	}

	exists, err := checkExisting(path, overwrite)
	if err != nil {
		return err
	}

	env := map[string]string{}
	if exists {
		if env, err = godotenv.Read(path); err != nil {
			return fmt.Errorf("failed to read env file: %w", err)
		}
	}
	env[EnvKeys] = strings.Join(keys, ",")

	content, err := godotenv.Marshal(env)
	if err != nil {
		return fmt.Errorf("failed to marshal env file: %w", err)
	}

	if err := writeFile(path, []byte(content+"\n"), 0o600, exists); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}
	return nil
}

func checkExisting(path string, overwrite bool) (bool, error) {
	_, err := os.Stat(path)
	switch {
	case err == nil && !overwrite:
		return true, fmt.Errorf("%w: %s", ErrConfigExists, path)
	case err == nil:
		return true, nil
	case os.IsNotExist(err):
		return false, nil
	default:
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
}

// MaskKey hides all but the last four characters of an API key.
func MaskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
