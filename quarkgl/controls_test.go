package quarkgl

import "testing"

func TestOrbitControllerRoundTrip(t *testing.T) {
	var c OrbitController
	c.SetFromPosition(V3(0, 0, 0), V3(30, 30, 50))

	var cam Camera
	c.Apply(&cam)
	if !near(cam.Position.X, 30) || !near(cam.Position.Y, 30) || !near(cam.Position.Z, 50) {
		t.Fatalf("position=%+v want (30,30,50)", cam.Position)
	}
	if cam.Target != (Vec3{}) {
		t.Fatalf("target=%+v", cam.Target)
	}
}

func TestOrbitControllerLimits(t *testing.T) {
	c := OrbitController{Radius: 10, MinRadius: 5, MaxRadius: 20}
	c.Zoom(-100)
	if c.Radius != 5 {
		t.Fatalf("radius=%v want 5", c.Radius)
	}
	c.Zoom(100)
	if c.Radius != 20 {
		t.Fatalf("radius=%v want 20", c.Radius)
	}
	c.Rotate(0, 10)
	if c.Pitch != pitchLimit {
		t.Fatalf("pitch=%v want clamp", c.Pitch)
	}
}
