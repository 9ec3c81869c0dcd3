// Package config loads optional user defaults for hearthplan.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries user-overridable defaults for the propose flags. Zero
// values mean "not set"; callers fall back to the built-in defaults.
type Config struct {
	Rooms       []string `toml:"rooms"`
	PlotWidth   float64  `toml:"plot_width"`
	PlotDepth   float64  `toml:"plot_depth"`
	Slope       string   `toml:"slope"`
	Climate     string   `toml:"climate"`
	Orientation string   `toml:"orientation"`
}

const appDir = "hearthplan"

const DefaultConfigToml = `# hearthplan configuration
# Values here replace the built-in flag defaults. Flags set on the
# command line always win.

# rooms = ["3 bedrooms", "2 bathrooms", "open kitchen", "living room"]
# plot_width = 15.0
# plot_depth = 30.0
# slope = "flat"
# climate = "temperate"
# orientation = "north-facing street"
`

// Load reads the user config file if present. A missing file is not an
// error; it yields the zero Config.
func Load() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, nil
	}
	return LoadFromPath(path)
}

// LoadFromPath reads a config file at an explicit path.
func LoadFromPath(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	var cfg Config
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func configPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDir, "config.toml"), nil
}
