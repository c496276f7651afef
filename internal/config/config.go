// Package config loads startup options from defaults, an optional YAML file,
// ORRERY_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"orrery/quarkgl"
	"orrery/world"
)

// EnvPrefix prefixes every environment override, e.g. ORRERY_THEME=light.
const EnvPrefix = "ORRERY"

// Config holds the startup options. Nothing here is written back at runtime.
type Config struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
	Scale  int `mapstructure:"scale"`
	TPS    int `mapstructure:"tps"`

	Theme      string `mapstructure:"theme"`
	RenderMode string `mapstructure:"render_mode"`
	Stars      int    `mapstructure:"stars"`
	Seed       uint64 `mapstructure:"seed"`

	Hz    int    `mapstructure:"hz"`
	Ticks uint64 `mapstructure:"ticks"`

	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:  640,
		Height: 400,
		Scale:  2,
		TPS:    60,
		Theme:      "dark",
		RenderMode: "flat",
		Stars:      1000,
		Seed:       1,
		Hz:         60,
	}
}

// SetDefaults registers every key on v so that environment overrides apply.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("width", d.Width)
	v.SetDefault("height", d.Height)
	v.SetDefault("scale", d.Scale)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("render_mode", d.RenderMode)
	v.SetDefault("stars", d.Stars)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("hz", d.Hz)
	v.SetDefault("ticks", d.Ticks)
	v.SetDefault("metrics_addr", d.MetricsAddr)
}

// Init prepares v: defaults, environment, and the config file. An explicit file
// must exist; the search path (./orrery.yaml, $HOME/.orrery/orrery.yaml) may not.
func Init(v *viper.Viper, file string) error {
	SetDefaults(v)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".orrery"))
		}
		v.SetConfigName("orrery")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("config: read: %w", err)
	}
	return nil
}

// Load decodes and validates the configuration held by v.
func Load(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: framebuffer %dx%d must be positive", c.Width, c.Height)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("config: scale %d must be positive", c.Scale)
	}
	if c.TPS <= 0 || c.Hz <= 0 {
		return fmt.Errorf("config: tps=%d hz=%d must be positive", c.TPS, c.Hz)
	}
	if c.Stars < 0 {
		return fmt.Errorf("config: stars %d must not be negative", c.Stars)
	}
	if _, err := world.ParseTheme(c.Theme); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := quarkgl.ParseRenderMode(c.RenderMode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ThemeValue returns the parsed theme. Validate has already rejected bad names.
func (c Config) ThemeValue() world.Theme {
	t, _ := world.ParseTheme(c.Theme)
	return t
}

// RenderModeValue returns the parsed render mode.
func (c Config) RenderModeValue() quarkgl.RenderMode {
	m, _ := quarkgl.ParseRenderMode(c.RenderMode)
	return m
}
