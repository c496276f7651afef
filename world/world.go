// Package world holds the solar system model: planets with their transform
// nodes, orbit paths, the starfield and the descriptive records.
package world

import (
	"math/rand/v2"

	"orrery/quarkgl"
)

// Planet is an orbiting body.
//
// Pivot carries the revolution angle around the sun; Body is its child, offset
// along +X by OrbitRadius, and carries the spin.
type Planet struct {
	Name        string
	Radius      float32
	OrbitRadius float32
	Color       quarkgl.Color

	BaseSpeed  float64
	Multiplier float64

	currentSpeed float64

	Pivot *quarkgl.Node
	Body  *quarkgl.Node
}

// CurrentSpeed is BaseSpeed * global * Multiplier as of the last recompute.
func (p *Planet) CurrentSpeed() float64 { return p.currentSpeed }

// Center returns the body center in world space.
func (p *Planet) Center() quarkgl.Vec3 { return p.Body.WorldPosition() }

// OrbitPath is the decorative ring drawn at a planet's orbit radius.
type OrbitPath struct {
	Planet  string
	Radius  float32
	Points  []quarkgl.Vec3
	Color   quarkgl.Color
	Opacity float32
	Visible bool
}

// Star is a background point. Position and scale never change after creation.
type Star struct {
	Position quarkgl.Vec3
	Scale    float32
	Opacity  float32
	Visible  bool
}

// Sun is the central emissive body with its glow shell.
type Sun struct {
	Radius      float32
	Color       quarkgl.Color
	GlowRadius  float32
	GlowOpacity float32
}

// Options tune world construction.
type Options struct {
	StarCount int    // zero uses the catalog count
	Seed      uint64 // starfield seed
}

// World is the mutable model. It is owned by a single goroutine.
type World struct {
	Catalog *Catalog

	Sun     Sun
	Planets []*Planet
	Orbits  []*OrbitPath
	Stars   []Star

	byName map[string]*Planet
}

// New builds the world from a catalog and applies the initial state.
func New(c *Catalog, st State, opts Options) *World {
	w := &World{
		Catalog: c,
		Sun: Sun{
			Radius:      c.Sun.Radius,
			Color:       quarkgl.Hex(uint32(c.Sun.Color)),
			GlowRadius:  c.Sun.GlowRadius,
			GlowOpacity: c.Sun.GlowOpacity,
		},
		byName: make(map[string]*Planet, len(c.Planets)),
	}

	for _, ps := range c.Planets {
		pivot := quarkgl.NewNode(nil)
		body := quarkgl.NewNode(pivot)
		body.Position = quarkgl.V3(ps.Distance, 0, 0)

		p := &Planet{
			Name:        ps.Name,
			Radius:      ps.Size,
			OrbitRadius: ps.Distance,
			Color:       quarkgl.Hex(uint32(ps.Color)),
			BaseSpeed:   ps.Speed,
			Multiplier:  1,
			Pivot:       pivot,
			Body:        body,
		}
		w.Planets = append(w.Planets, p)
		w.byName[p.Name] = p

		w.Orbits = append(w.Orbits, &OrbitPath{
			Planet:  p.Name,
			Radius:  ps.Distance,
			Points:  quarkgl.CirclePoints(ps.Distance, c.Orbits.Segments),
			Visible: st.ShowOrbits,
		})
	}

	n := opts.StarCount
	if n <= 0 {
		n = c.Stars.Count
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	spread := c.Stars.Spread
	span := c.Stars.MaxScale - c.Stars.MinScale
	w.Stars = make([]Star, n)
	for i := range w.Stars {
		w.Stars[i] = Star{
			Position: quarkgl.V3(
				(rng.Float32()-0.5)*spread,
				(rng.Float32()-0.5)*spread,
				(rng.Float32()-0.5)*spread,
			),
			Scale:   c.Stars.MinScale + rng.Float32()*span,
			Opacity: 0.8,
			Visible: st.ShowStars,
		}
	}

	w.ApplyTheme(st.Theme)
	w.RecomputeSpeeds(st)
	return w
}

// Planet looks up a planet by name.
func (w *World) Planet(name string) (*Planet, bool) {
	p, ok := w.byName[name]
	return p, ok
}

// Record looks up the descriptive record for a planet.
func (w *World) Record(name string) (Record, bool) {
	for _, ps := range w.Catalog.Planets {
		if ps.Name == name {
			return ps.Info, true
		}
	}
	return Record{}, false
}

// PlanetNames returns names in catalog order.
func (w *World) PlanetNames() []string {
	out := make([]string, len(w.Planets))
	for i, p := range w.Planets {
		out[i] = p.Name
	}
	return out
}

// RecomputeSpeeds is the only writer of Planet.CurrentSpeed.
func (w *World) RecomputeSpeeds(st State) {
	for _, p := range w.Planets {
		p.currentSpeed = p.BaseSpeed * st.GlobalMultiplier * p.Multiplier
	}
}

// OrbitStyle returns the orbit color and opacity for a theme.
func (w *World) OrbitStyle(t Theme) (quarkgl.Color, float32) {
	s := w.Catalog.Orbits.Dark
	if t == ThemeLight {
		s = w.Catalog.Orbits.Light
	}
	return quarkgl.Hex(uint32(s.Color)), s.Opacity
}

// ApplyTheme recolors every orbit path.
func (w *World) ApplyTheme(t Theme) {
	c, a := w.OrbitStyle(t)
	for _, o := range w.Orbits {
		o.Color = c
		o.Opacity = a
	}
}

func (w *World) SetOrbitsVisible(v bool) {
	for _, o := range w.Orbits {
		o.Visible = v
	}
}

func (w *World) SetStarsVisible(v bool) {
	for i := range w.Stars {
		w.Stars[i].Visible = v
	}
}

// ObjectCount is the number of celestial bodies: the sun plus the planets.
func (w *World) ObjectCount() int { return 1 + len(w.Planets) }
