// Package config loads plotrc's own configuration file: the default
// context/style/palette/font selection plus a free-form rc table applied
// on top. Configuration is TOML with environment-variable overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"

	"gitlab.com/tinyland/lab/plotrc"
	"gitlab.com/tinyland/lab/plotrc/pkg/params"
)

// Config is the on-disk configuration shape.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
	RC       map[string]any `toml:"rc"`
}

// DefaultsConfig selects the presets applied at startup.
type DefaultsConfig struct {
	Context string `toml:"context"`
	Style   string `toml:"style"`
	Palette string `toml:"palette"`
	Font    string `toml:"font"`
	NColors int    `toml:"n_colors"`
}

// Load reads configuration from the standard config path.
// Search order:
//  1. $XDG_CONFIG_HOME/plotrc/config.toml
//  2. ~/.config/plotrc/config.toml
//
// If no file exists, returns DefaultConfig().
func Load() (*Config, error) {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return LoadFromFile(p)
		}
	}
	return DefaultConfig(), nil
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Defaults: DefaultsConfig{
			Context: plotrc.DefaultContext,
			Style:   plotrc.DefaultStyle,
			Palette: plotrc.DefaultPalette,
			Font:    plotrc.DefaultFont,
			NColors: plotrc.DefaultNColors,
		},
	}
}

// Apply drives the facade with cfg's selections and rc table.
func Apply(cfg *Config, ps *params.Store) error {
	var rc params.Params
	if len(cfg.RC) > 0 {
		rc = params.CanonicalParams(params.Params(cfg.RC).Clone())
	}
	return plotrc.Set(ps, plotrc.Options{
		Context: cfg.Defaults.Context,
		Style:   cfg.Defaults.Style,
		Palette: cfg.Defaults.Palette,
		Font:    cfg.Defaults.Font,
		NColors: cfg.Defaults.NColors,
		RC:      rc,
	})
}

// applyEnvOverrides checks environment variables and overrides config values.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PLOTRC_CONTEXT"); v != "" {
		cfg.Defaults.Context = v
	}
	if v := os.Getenv("PLOTRC_STYLE"); v != "" {
		cfg.Defaults.Style = v
	}
	if v := os.Getenv("PLOTRC_PALETTE"); v != "" {
		cfg.Defaults.Palette = v
	}
	if v := os.Getenv("PLOTRC_FONT"); v != "" {
		cfg.Defaults.Font = v
	}
	if v := os.Getenv("PLOTRC_N_COLORS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Defaults.NColors = n
		}
	}
}

// configSearchPaths returns the ordered list of config file paths to try.
func configSearchPaths() []string {
	home, _ := os.UserHomeDir()
	var paths []string

	xdg := xdgConfigHome(home)
	paths = append(paths, filepath.Join(xdg, "plotrc", "config.toml"))

	// If XDG_CONFIG_HOME was explicitly set, also try the fallback default.
	defaultXDG := filepath.Join(home, ".config")
	if xdg != defaultXDG {
		paths = append(paths, filepath.Join(defaultXDG, "plotrc", "config.toml"))
	}

	return paths
}

// xdgConfigHome returns XDG_CONFIG_HOME or ~/.config as fallback.
func xdgConfigHome(home string) string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	return filepath.Join(home, ".config")
}
