package world

import (
	"math"
	"testing"

	"orrery/quarkgl"
)

func newTestWorld(t *testing.T) (*World, State) {
	t.Helper()
	c, err := LoadCatalog()
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	st := NewState(ThemeDark)
	return New(c, st, Options{Seed: 7}), st
}

func TestCatalogContents(t *testing.T) {
	w, _ := newTestWorld(t)
	if len(w.Planets) != 8 {
		t.Fatalf("planets=%d want 8", len(w.Planets))
	}
	want := []string{"Mercury", "Venus", "Earth", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune"}
	for i, name := range want {
		if w.Planets[i].Name != name {
			t.Fatalf("planet[%d]=%q want %q", i, w.Planets[i].Name, name)
		}
	}
	earth, ok := w.Planet("Earth")
	if !ok {
		t.Fatalf("Earth missing")
	}
	if earth.OrbitRadius != 16 || earth.Radius != 1 || earth.BaseSpeed != 0.01 {
		t.Fatalf("earth=%+v", earth)
	}
	if earth.Color != quarkgl.Hex(0x6b93d6) {
		t.Fatalf("earth color=%+v", earth.Color)
	}
	if w.Sun.Radius != 5 || w.Sun.Color != quarkgl.Hex(0xff6b35) {
		t.Fatalf("sun=%+v", w.Sun)
	}
	if w.ObjectCount() != 9 {
		t.Fatalf("objects=%d want 9", w.ObjectCount())
	}
}

func TestRecords(t *testing.T) {
	w, _ := newTestWorld(t)
	r, ok := w.Record("Mars")
	if !ok {
		t.Fatalf("Mars record missing")
	}
	if r.Distance != "227.9 million km from Sun" || r.Year != "687 Earth days" || r.Diameter != "6,792 km" {
		t.Fatalf("mars=%+v", r)
	}
	r, _ = w.Record("Earth")
	if r.Description != "Our home planet, the only known world to harbor life. Has one natural satellite: the Moon." {
		t.Fatalf("earth description=%q", r.Description)
	}
	if _, ok := w.Record("Pluto"); ok {
		t.Fatalf("unexpected Pluto record")
	}
	for _, p := range w.Planets {
		r, ok := w.Record(p.Name)
		if !ok || r.Description == "" || r.Day == "" || r.Year == "" {
			t.Fatalf("incomplete record for %s: %+v", p.Name, r)
		}
	}
}

func TestBodyHierarchy(t *testing.T) {
	w, _ := newTestWorld(t)
	mars, _ := w.Planet("Mars")
	if mars.Body.Parent != mars.Pivot {
		t.Fatalf("body is not a child of its pivot")
	}
	c := mars.Center()
	if math.Abs(float64(c.X-20)) > 1e-4 || c.Y != 0 || math.Abs(float64(c.Z)) > 1e-4 {
		t.Fatalf("mars center=%+v", c)
	}
}

func TestRecomputeSpeedsInvariant(t *testing.T) {
	w, st := newTestWorld(t)
	st.GlobalMultiplier = 2.5
	jup, _ := w.Planet("Jupiter")
	jup.Multiplier = 0.4
	w.RecomputeSpeeds(st)
	for _, p := range w.Planets {
		want := p.BaseSpeed * st.GlobalMultiplier * p.Multiplier
		if p.CurrentSpeed() != want {
			t.Fatalf("%s current=%v want %v", p.Name, p.CurrentSpeed(), want)
		}
	}
}

func TestOrbitsAndTheme(t *testing.T) {
	w, _ := newTestWorld(t)
	if len(w.Orbits) != len(w.Planets) {
		t.Fatalf("orbits=%d", len(w.Orbits))
	}
	o := w.Orbits[2]
	if o.Radius != 16 || len(o.Points) != 64 || !o.Visible {
		t.Fatalf("earth orbit=%+v", o)
	}
	if o.Color != quarkgl.Hex(0xffffff) || o.Opacity != 0.2 {
		t.Fatalf("dark orbit style=%+v/%v", o.Color, o.Opacity)
	}
	w.ApplyTheme(ThemeLight)
	if o.Color != quarkgl.Hex(0x333333) || o.Opacity != 0.3 {
		t.Fatalf("light orbit style=%+v/%v", o.Color, o.Opacity)
	}
}

func TestStarfield(t *testing.T) {
	w, _ := newTestWorld(t)
	if len(w.Stars) != 1000 {
		t.Fatalf("stars=%d want 1000", len(w.Stars))
	}
	for i, s := range w.Stars {
		for _, v := range []float32{s.Position.X, s.Position.Y, s.Position.Z} {
			if v < -200 || v >= 200 {
				t.Fatalf("star %d outside cube: %+v", i, s.Position)
			}
		}
		if s.Scale < 0.5 || s.Scale >= 1.0 {
			t.Fatalf("star %d scale=%v", i, s.Scale)
		}
	}

	again := New(w.Catalog, NewState(ThemeDark), Options{Seed: 7})
	if again.Stars[123].Position != w.Stars[123].Position {
		t.Fatalf("starfield not reproducible for a fixed seed")
	}
}

func TestParseCatalogRejectsDuplicates(t *testing.T) {
	doc := []byte(`
sun: {radius: 1, color: 0xffffff}
orbits: {segments: 8}
planets:
  - {name: A, size: 1, distance: 2, speed: 0.1, color: 0x010203}
  - {name: A, size: 1, distance: 3, speed: 0.1, color: 0x010203}
`)
	if _, err := ParseCatalog(doc); err == nil {
		t.Fatalf("expected duplicate planet error")
	}
}

func TestParseTheme(t *testing.T) {
	if th, err := ParseTheme("light"); err != nil || th != ThemeLight {
		t.Fatalf("light -> %v, %v", th, err)
	}
	if _, err := ParseTheme("sepia"); err == nil {
		t.Fatalf("expected error for unknown theme")
	}
}
