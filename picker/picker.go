// Package picker resolves a pointer position to the planet under it.
package picker

import (
	"orrery/quarkgl"
	"orrery/world"
)

// Target is a pickable bounding sphere.
type Target struct {
	Name   string
	Center quarkgl.Vec3
	Radius quarkgl.Scalar
}

// Hit is the nearest intersection along the ray.
type Hit struct {
	Name string
	T    quarkgl.Scalar
}

// NDC maps a pixel inside a w*h viewport to normalized device coordinates,
// with y growing upwards.
func NDC(px, py, w, h int) (x, y quarkgl.Scalar) {
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	x = quarkgl.Scalar(px)/quarkgl.Scalar(w)*2 - 1
	y = -(quarkgl.Scalar(py)/quarkgl.Scalar(h))*2 + 1
	return x, y
}

// Nearest intersects the ray with every target and keeps the smallest positive t.
func Nearest(r quarkgl.Ray, targets []Target) (Hit, bool) {
	var (
		best  Hit
		found bool
	)
	for _, tg := range targets {
		t, ok := r.IntersectSphere(tg.Center, tg.Radius)
		if !ok {
			continue
		}
		if !found || t < best.T {
			best = Hit{Name: tg.Name, T: t}
			found = true
		}
	}
	return best, found
}

// Picker tests planet bodies only. The sun, glow, orbits and stars are never hit.
type Picker struct {
	world   *world.World
	targets []Target
}

func New(w *world.World) *Picker {
	return &Picker{world: w, targets: make([]Target, 0, len(w.Planets))}
}

// Targets returns the current planet bounding spheres in world space.
func (p *Picker) Targets() []Target {
	p.targets = p.targets[:0]
	for _, pl := range p.world.Planets {
		m := pl.Body.World()
		p.targets = append(p.targets, Target{
			Name:   pl.Name,
			Center: quarkgl.TransformPoint(m, quarkgl.Vec3{}),
			Radius: pl.Radius * quarkgl.MaxScale(m),
		})
	}
	return p.targets
}

// Pick returns the name of the nearest planet under pixel (px, py).
func (p *Picker) Pick(cam quarkgl.Camera, px, py, w, h int) (string, bool) {
	if w <= 0 || h <= 0 {
		return "", false
	}
	x, y := NDC(px, py, w, h)
	ray := cam.RayFromNDC(x, y, quarkgl.Scalar(w)/quarkgl.Scalar(h))
	hit, ok := Nearest(ray, p.Targets())
	return hit.Name, ok
}
