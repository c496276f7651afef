package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"

	"orrery/quarkgl"
	"orrery/world"
)

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	defer os.Chdir(wd)

	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Fatalf("config=%+v want defaults", c)
	}
	if c.ThemeValue() != world.ThemeDark || c.RenderModeValue() != quarkgl.RenderSolidFlat {
		t.Fatalf("theme=%v render=%v", c.ThemeValue(), c.RenderModeValue())
	}
}

func TestFileAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "orrery.yaml")
	doc := "width: 320\nheight: 200\ntheme: light\nrender_mode: wireframe\nmetrics_addr: 127.0.0.1:9100\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("ORRERY_STARS", "250")

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	c, err := Load(v)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Width != 320 || c.Height != 200 || c.MetricsAddr != "127.0.0.1:9100" {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Stars != 250 {
		t.Fatalf("env override not applied: stars=%d", c.Stars)
	}
	if c.ThemeValue() != world.ThemeLight {
		t.Fatalf("theme=%v", c.ThemeValue())
	}
	if c.RenderModeValue() != quarkgl.RenderWireframe {
		t.Fatalf("render mode=%v", c.RenderModeValue())
	}
}

func TestMissingExplicitFile(t *testing.T) {
	v := viper.New()
	if err := Init(v, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}

func TestValidate(t *testing.T) {
	bad := []func(*Config){
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Scale = -1 },
		func(c *Config) { c.Hz = 0 },
		func(c *Config) { c.Stars = -5 },
		func(c *Config) { c.Theme = "sepia" },
		func(c *Config) { c.RenderMode = "phong" },
	}
	for i, mut := range bad {
		c := Default()
		mut(&c)
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, c)
		}
	}
}
