package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wahlandcase/giti/internal/models"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the config file location
const EnvConfigPath = "GITI_CONFIG"

// Config is the optional TOML file holding defaults for the command line
type Config struct {
	Language string         `toml:"language"`
	Color    bool           `toml:"color"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig mirrors the invocation flags. Empty values leave the flag unset.
type DefaultsConfig struct {
	SourceType  models.SourceType `toml:"source_type"`
	Pattern     string            `toml:"pattern"`
	Template    string            `toml:"template"`
	SkipPattern string            `toml:"skip_pattern"`
}

func DefaultConfig() *Config {
	return &Config{
		Color: true,
		Defaults: DefaultsConfig{
			SourceType: models.HeadFriendlyName,
		},
	}
}

// Path resolves the config file: explicit path, then $GITI_CONFIG, then the
// user config dir
func Path(explicit string) (string, error) {
	if explicit != "" {
		return expandTilde(explicit), nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return expandTilde(env), nil
	}
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "giti.toml"), nil
}

// Load reads the config file. A missing file (or no resolvable config dir)
// yields DefaultConfig. The file is never created: this runs inside a hook.
func Load(explicit string) (*Config, error) {
	path, err := Path(explicit)
	if err != nil {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && explicit == "" {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return cfg, nil
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
