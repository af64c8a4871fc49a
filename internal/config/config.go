// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Options OptionsConfig `toml:"options"`
	UI      UIConfig      `toml:"ui"`
	History HistoryConfig `toml:"history"`
	Shell   ShellConfig   `toml:"shell"`
}

// OptionsConfig holds the startup values of the editor options.
type OptionsConfig struct {
	AutoIndent  bool `toml:"autoindent"`
	Highlight   bool `toml:"highlight"`
	LineMarker  bool `toml:"line_marker"`
	LineNumbers bool `toml:"line_numbers"`
	ReadOnly    bool `toml:"readonly"`
	Debug       bool `toml:"debug"`
}

// UIConfig holds user-interface settings.
type UIConfig struct {
	// SyntaxTheme is the Chroma style used for highlighting. Status bar
	// colors are derived from it via highlight.ThemePalette.
	// Defaults to "monokai" if unset.
	SyntaxTheme string `toml:"syntax_theme"`
	TabWidth    int    `toml:"tab_width"`
}

// SyntaxThemeOrDefault returns the configured syntax theme or "monokai" if unset.
func (u UIConfig) SyntaxThemeOrDefault() string {
	if u.SyntaxTheme == "" {
		return "monokai"
	}
	return u.SyntaxTheme
}

// HistoryConfig controls the session store.
type HistoryConfig struct {
	Enabled bool `toml:"enabled"`
	Limit   int  `toml:"limit"`
	// PositionTTLDays drops saved cursor positions untouched for longer.
	// Zero keeps them forever.
	PositionTTLDays int `toml:"position_ttl_days"`
}

// ShellConfig controls the ! prompt command.
type ShellConfig struct {
	Enabled bool     `toml:"enabled"`
	Blocked []string `toml:"blocked"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Options: OptionsConfig{
			AutoIndent: true,
			Highlight:  true,
			LineMarker: true,
		},
		UI: UIConfig{
			SyntaxTheme: "monokai",
			TabWidth:    4,
		},
		History: HistoryConfig{
			Enabled:         true,
			Limit:           500,
			PositionTTLDays: 90,
		},
		Shell: ShellConfig{
			Enabled: true,
			Blocked: []string{"sudo", "su", "doas"},
		},
	}
}

// Load reads configuration from a TOML file and applies environment variable
// overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		_, err := toml.DecodeFile(path, cfg)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if c.UI.TabWidth < 1 || c.UI.TabWidth > 16 {
		errs = append(errs, fmt.Errorf("ui.tab_width=%d must be between 1 and 16", c.UI.TabWidth))
	}
	if c.History.Limit < 0 {
		errs = append(errs, fmt.Errorf("history.limit=%d must not be negative", c.History.Limit))
	}
	if c.History.PositionTTLDays < 0 {
		errs = append(errs, fmt.Errorf("history.position_ttl_days=%d must not be negative", c.History.PositionTTLDays))
	}
	for i, cmd := range c.Shell.Blocked {
		if cmd == "" {
			errs = append(errs, fmt.Errorf("shell.blocked[%d] is empty", i))
		}
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	var errs []error
	atoi := func(env string, dst *int) func(string) {
		return func(v string) {
			if v == "" {
				return
			}
			n, err := strconv.Atoi(v)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s=%q: %w", env, v, err))
				return
			}
			*dst = n
		}
	}

	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"NATRIUM_SYNTAX_THEME", func(v string) {
			if v != "" {
				cfg.UI.SyntaxTheme = v
			}
		}},
		{"NATRIUM_TAB_WIDTH", atoi("NATRIUM_TAB_WIDTH", &cfg.UI.TabWidth)},
		{"NATRIUM_HISTORY_LIMIT", atoi("NATRIUM_HISTORY_LIMIT", &cfg.History.Limit)},
	} {
		setter.apply(os.Getenv(setter.env))
	}
	return errors.Join(errs...)
}

// DataDir returns the path to the Natrium data directory (~/.config/natrium).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "natrium"), nil
}

// EnsureDataDir creates the data directory if it doesn't exist.
func EnsureDataDir() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", err
	}
	return dir, nil
}
