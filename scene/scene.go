// Package scene turns the world model into quarkgl renderables and keeps them in
// step with it.
package scene

import (
	"math"

	"orrery/quarkgl"
	"orrery/world"
)

const (
	sunSegments    = 32
	sunRings       = 20
	planetSegments = 20
	planetRings    = 14
)

// Camera defaults for the initial overview.
var (
	DefaultEye    = quarkgl.V3(30, 30, 50)
	DefaultTarget = quarkgl.V3(0, 0, 0)
)

// Background colors per theme.
var (
	darkBackground  = quarkgl.RGB(0x02, 0x03, 0x0A)
	lightBackground = quarkgl.RGB(0xE8, 0xEC, 0xF2)
)

// Background returns the clear color for a theme.
func Background(t world.Theme) quarkgl.Color {
	if t == world.ThemeLight {
		return lightBackground
	}
	return darkBackground
}

// DefaultCamera is a 75 degree perspective camera at (30, 30, 50) looking at the sun.
func DefaultCamera() quarkgl.Camera {
	return quarkgl.Camera{
		Type:     quarkgl.CameraPerspective,
		Position: DefaultEye,
		Target:   DefaultTarget,
		Up:       quarkgl.V3(0, 1, 0),
		FOVYRad:  75 * math.Pi / 180,
		Near:     0.1,
		Far:      1000,
	}
}

// Bindings maps world entities to scene handles.
type Bindings struct {
	Scene *quarkgl.Scene

	Sun    int
	Glow   int
	Bodies map[string]int
	Orbits []int // parallel to World.Orbits
	Stars  int
}

// Build creates every renderable once. Later frames only call Sync.
func Build(w *world.World) *Bindings {
	s := quarkgl.CreateScene(2 + len(w.Planets))
	s.Camera = DefaultCamera()
	s.Light = quarkgl.Light{
		Mode:        quarkgl.LightAmbientPoint,
		Ambient:     0.12,
		Dir:         quarkgl.Normalize(quarkgl.V3(-50, -50, -50)),
		DirAmount:   0.25,
		Point:       quarkgl.V3(0, 0, 0),
		PointAmount: 0.9,
		PointRange:  200,
	}

	b := &Bindings{
		Scene:  s,
		Bodies: make(map[string]int, len(w.Planets)),
	}

	sun := quarkgl.NewSphereMesh(w.Sun.Radius, sunSegments, sunRings)
	sun.Material = quarkgl.Material{BaseColor: w.Sun.Color, Unlit: true}
	b.Sun = s.AddMesh(sun)

	glow := quarkgl.NewSphereMesh(w.Sun.GlowRadius, sunSegments, sunRings)
	glow.Material = quarkgl.Material{
		BaseColor: w.Sun.Color,
		Opacity:   quarkgl.OpacityByte(w.Sun.GlowOpacity),
		Unlit:     true,
	}
	b.Glow = s.AddMesh(glow)

	for _, p := range w.Planets {
		m := quarkgl.NewSphereMesh(p.Radius, planetSegments, planetRings)
		m.Material = quarkgl.Material{BaseColor: p.Color}
		m.Transform = p.Body.World()
		b.Bodies[p.Name] = s.AddMesh(m)
	}

	for _, o := range w.Orbits {
		b.Orbits = append(b.Orbits, s.AddLine(quarkgl.LineLoop{
			Closed:  true,
			Points:  o.Points,
			Color:   o.Color,
			Opacity: quarkgl.OpacityByte(o.Opacity),
		}))
	}

	stars := quarkgl.PointCloud{
		Points: make([]quarkgl.Vec3, len(w.Stars)),
		Sizes:  make([]quarkgl.Scalar, len(w.Stars)),
		Color:  quarkgl.RGB(0xFF, 0xFF, 0xFF),
	}
	for i, st := range w.Stars {
		stars.Points[i] = st.Position
		stars.Sizes[i] = w.Catalog.Stars.Size * st.Scale
	}
	b.Stars = s.AddPoints(stars)

	b.Sync(w)
	return b
}

// Sync pushes transforms, styles and visibility from the world into the scene.
func (b *Bindings) Sync(w *world.World) {
	s := b.Scene
	for _, p := range w.Planets {
		if id, ok := b.Bodies[p.Name]; ok {
			s.UpdateMeshTransform(id, p.Body.World())
		}
	}
	for i, o := range w.Orbits {
		if i >= len(b.Orbits) {
			break
		}
		s.SetLineStyle(b.Orbits[i], o.Color, quarkgl.OpacityByte(o.Opacity))
		s.SetLineEnabled(b.Orbits[i], o.Visible)
	}
	for i := range w.Stars {
		st := &w.Stars[i]
		s.SetPointAlpha(b.Stars, i, quarkgl.OpacityByte(st.Opacity))
		s.SetPointHidden(b.Stars, i, !st.Visible)
	}
}
