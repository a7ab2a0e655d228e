package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

type Config struct {
	ExportRoot       string `toml:"export_root"       validate:"required"`
	StopWordsFile    string `toml:"stop_words_file"`
	MediaPlaceholder string `toml:"media_placeholder" validate:"required"`
	TopWords         int    `toml:"top_words"         validate:"min=1,max=200"`
	TopUsers         int    `toml:"top_users"         validate:"min=1,max=50"`
	TopEmojis        int    `toml:"top_emojis"        validate:"min=1,max=50"`
	CenturyPivot     int    `toml:"century_pivot"     validate:"min=0,max=100"`
	LogLevel         string `toml:"log_level"         validate:"oneof=debug info warn error"`

	path string
}

// Path returns the config file the values were read from, or the location
// that was checked when no file exists.
func (c *Config) Path() string {
	return c.path
}

// DefaultPath is ~/.config/wcs/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "wcs", "config.toml"), nil
}

// Load reads the config at path over the defaults. An empty path means
// DefaultPath; a missing file is not an error.
func Load(path string) (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	if path == "" {
		if path, err = DefaultPath(); err != nil {
			return nil, err
		}
	}
	return loadFrom(path, home)
}

func loadFrom(cfgPath, home string) (*Config, error) {
	cfg := &Config{
		ExportRoot:       filepath.Join(home, "Downloads"),
		MediaPlaceholder: "<Media omitted>",
		TopWords:         20,
		TopUsers:         5,
		TopEmojis:        5,
		CenturyPivot:     69,
		LogLevel:         "warn",
		path:             cfgPath,
	}

	if _, err := os.Stat(cfgPath); err == nil {
		if _, err := toml.DecodeFile(cfgPath, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", cfgPath, err)
		}
	}

	// expand ~ in paths
	cfg.ExportRoot = expandHome(cfg.ExportRoot, home)
	cfg.StopWordsFile = expandHome(cfg.StopWordsFile, home)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgPath, err)
	}
	return cfg, nil
}

func expandHome(path, home string) string {
	if len(path) > 1 && path[0] == '~' && path[1] == '/' {
		return filepath.Join(home, path[2:])
	}
	return path
}
