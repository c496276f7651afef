package world

import (
	_ "embed"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// Hex is a 0xRRGGBB color literal in the catalog.
type Hex uint32

func (h *Hex) UnmarshalYAML(value *yaml.Node) error {
	v, err := strconv.ParseUint(value.Value, 0, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", value.Value, err)
	}
	*h = Hex(v)
	return nil
}

// Record is the descriptive text shown for a planet. Read only.
type Record struct {
	Description string `yaml:"description"`
	Distance    string `yaml:"distance"`
	Diameter    string `yaml:"diameter"`
	Day         string `yaml:"day"`
	Year        string `yaml:"year"`
}

type PlanetSpec struct {
	Name     string  `yaml:"name"`
	Size     float32 `yaml:"size"`
	Distance float32 `yaml:"distance"`
	Speed    float64 `yaml:"speed"`
	Color    Hex     `yaml:"color"`
	Info     Record  `yaml:"info"`
}

type SunSpec struct {
	Radius      float32 `yaml:"radius"`
	Color       Hex     `yaml:"color"`
	GlowRadius  float32 `yaml:"glow_radius"`
	GlowOpacity float32 `yaml:"glow_opacity"`
}

type OrbitStyle struct {
	Color   Hex     `yaml:"color"`
	Opacity float32 `yaml:"opacity"`
}

type OrbitSpec struct {
	Segments int        `yaml:"segments"`
	Dark     OrbitStyle `yaml:"dark"`
	Light    OrbitStyle `yaml:"light"`
}

type StarSpec struct {
	Count    int     `yaml:"count"`
	Spread   float32 `yaml:"spread"`
	Size     float32 `yaml:"size"`
	MinScale float32 `yaml:"min_scale"`
	MaxScale float32 `yaml:"max_scale"`
}

// Catalog is the static description of the system.
type Catalog struct {
	Sun     SunSpec      `yaml:"sun"`
	Orbits  OrbitSpec    `yaml:"orbits"`
	Stars   StarSpec     `yaml:"stars"`
	Planets []PlanetSpec `yaml:"planets"`
}

// ParseCatalog decodes and validates a catalog document.
func ParseCatalog(b []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("world: parse catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("world: %w", err)
	}
	return &c, nil
}

// LoadCatalog returns the embedded catalog.
func LoadCatalog() (*Catalog, error) {
	return ParseCatalog(catalogYAML)
}

// MustLoadCatalog is LoadCatalog for callers that treat a bad embed as fatal.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) validate() error {
	if c.Sun.Radius <= 0 {
		return fmt.Errorf("sun radius must be positive")
	}
	if c.Orbits.Segments < 3 {
		return fmt.Errorf("orbit segments %d < 3", c.Orbits.Segments)
	}
	if c.Stars.MaxScale < c.Stars.MinScale {
		return fmt.Errorf("star scale range [%v, %v) is empty", c.Stars.MinScale, c.Stars.MaxScale)
	}
	seen := make(map[string]bool, len(c.Planets))
	for _, p := range c.Planets {
		if p.Name == "" {
			return fmt.Errorf("planet without name")
		}
		if seen[p.Name] {
			return fmt.Errorf("duplicate planet %q", p.Name)
		}
		seen[p.Name] = true
		if p.Size <= 0 || p.Distance <= 0 {
			return fmt.Errorf("planet %q: size and distance must be positive", p.Name)
		}
	}
	return nil
}
