// Package config loads the browser configuration: key bindings, the
// opener and editor commands, tab count, and pane layout. Missing files
// fall back to the built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Keymap holds the single-rune bindings for navigation actions.
type Keymap struct {
	Up           string `yaml:"up"`
	Down         string `yaml:"down"`
	Backward     string `yaml:"backward"`
	Forward      string `yaml:"forward"`
	Open         string `yaml:"open"`
	Edit         string `yaml:"edit"`
	ToggleHidden string `yaml:"toggle_hidden"`
	Quit         string `yaml:"quit"`
}

// Config is the full application configuration.
type Config struct {
	Keys       Keymap  `yaml:"keys"`
	Opener     string  `yaml:"opener"`
	Editor     string  `yaml:"editor"`
	Tabs       int     `yaml:"tabs"`
	PaneRatio  float64 `yaml:"pane_ratio"`
	ShowHidden bool    `yaml:"show_hidden"`
}

// Default returns the built-in configuration. The editor honors
// $VISUAL and $EDITOR before falling back to nvim.
func Default() Config {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "nvim"
	}

	return Config{
		Keys: Keymap{
			Up:           "k",
			Down:         "j",
			Backward:     "h",
			Forward:      "l",
			Edit:         "e",
			ToggleHidden: "H",
			Quit:         "q",
		},
		Opener:    "xdg-open",
		Editor:    editor,
		Tabs:      4,
		PaneRatio: 0.6,
	}
}

// Path returns the default config file location.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "sf", "config.yaml"), nil
}

// Load reads the config at path. A missing file yields the defaults;
// any present field overrides its default.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Tabs < 1 {
		c.Tabs = 1
	}
	if c.Tabs > 9 {
		c.Tabs = 9
	}
	if c.PaneRatio < 0.2 {
		c.PaneRatio = 0.2
	}
	if c.PaneRatio > 0.8 {
		c.PaneRatio = 0.8
	}
	if c.Opener == "" {
		c.Opener = Default().Opener
	}
	if c.Editor == "" {
		c.Editor = Default().Editor
	}
}

// OpenerCommand splits the opener into program and leading arguments.
func (c Config) OpenerCommand() []string {
	return strings.Fields(c.Opener)
}

// EditorCommand splits the editor into program and leading arguments.
func (c Config) EditorCommand() []string {
	return strings.Fields(c.Editor)
}
