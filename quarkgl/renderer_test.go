package quarkgl

import "testing"

func newTestTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func testScene() *Scene {
	s := CreateScene(4)
	s.Camera.Position = V3(0, 0, 10)
	s.Camera.Near = 0.1
	s.Camera.Far = 100
	return s
}

func TestRenderUnlitSphereCoversCenter(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := testScene()
	m := NewSphereMesh(2, 16, 12)
	m.Material = Material{BaseColor: RGB(0xFF, 0x6B, 0x35), Unlit: true}
	s.AddMesh(m)

	r := NewRenderer(64, 64, true)
	r.ClearColor = RGB(0, 0, 0)
	r.Render(tgt, s)

	if got := tgt.Pixel(32, 32); got.R < 0xF0 || got.B > 0x40 {
		t.Fatalf("center pixel=%+v want sun color", got)
	}
	if got := tgt.Pixel(0, 0); got != RGB(0, 0, 0) {
		t.Fatalf("corner pixel=%+v want clear color", got)
	}
}

func TestRenderDisabledMeshIsSkipped(t *testing.T) {
	tgt := newTestTarget(32, 32)
	s := testScene()
	id := s.AddMesh(NewSphereMesh(2, 8, 6))
	s.SetMeshEnabled(id, false)

	NewRenderer(32, 32, true).Render(tgt, s)
	if got := tgt.Pixel(16, 16); got != RGB(0, 0, 0) {
		t.Fatalf("disabled mesh drawn: %+v", got)
	}
}

func TestRenderTranslucentMeshBlends(t *testing.T) {
	tgt := newTestTarget(32, 32)
	s := testScene()
	m := NewSphereMesh(2, 11, 7)
	m.Material = Material{BaseColor: RGB(0xFF, 0xFF, 0xFF), Opacity: 0x80, Unlit: true}
	s.AddMesh(m)

	NewRenderer(32, 32, true).Render(tgt, s)
	got := tgt.Pixel(16, 16)
	if got.R < 0x60 || got.R > 0xF0 {
		t.Fatalf("blended pixel=%+v want partial intensity", got)
	}
}

func TestRenderLineLoopRespectsEnabled(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := testScene()
	s.Camera.Position = V3(0, 20, 0.001)
	id := s.AddLine(LineLoop{Closed: true, Points: CirclePoints(4, 32), Color: RGB(0xFF, 0xFF, 0xFF), Opacity: 0xFF})

	r := NewRenderer(64, 64, true)
	r.Render(tgt, s)
	if countLit(tgt) == 0 {
		t.Fatalf("line loop not drawn")
	}

	s.SetLineEnabled(id, false)
	r.Render(tgt, s)
	if n := countLit(tgt); n != 0 {
		t.Fatalf("hidden line drew %d pixels", n)
	}
}

func TestRenderPointCloudHiddenPoints(t *testing.T) {
	tgt := newTestTarget(32, 32)
	s := testScene()
	id := s.AddPoints(PointCloud{Points: []Vec3{V3(0, 0, 0)}, Color: RGB(0xFF, 0xFF, 0xFF)})

	r := NewRenderer(32, 32, true)
	r.Render(tgt, s)
	if countLit(tgt) == 0 {
		t.Fatalf("point not drawn")
	}
	s.SetPointHidden(id, 0, true)
	r.Render(tgt, s)
	if countLit(tgt) != 0 {
		t.Fatalf("hidden point drawn")
	}
}

func TestRenderDepthOccludesFarSphere(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := testScene()
	front := NewSphereMesh(2, 16, 12)
	front.Material = Material{BaseColor: RGB(0, 0xFF, 0), Unlit: true}
	front.Transform = Mat4Translate(V3(0, 0, 2))
	back := NewSphereMesh(3, 16, 12)
	back.Material = Material{BaseColor: RGB(0xFF, 0, 0), Unlit: true}
	back.Transform = Mat4Translate(V3(0, 0, -4))
	s.AddMesh(back)
	s.AddMesh(front)

	NewRenderer(64, 64, true).Render(tgt, s)
	if got := tgt.Pixel(32, 32); got.G < 0xF0 || got.R != 0 {
		t.Fatalf("center=%+v want front sphere", got)
	}
}

func countLit(t *RGB565Target) int {
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.Pixel(x, y) != RGB(0, 0, 0) {
				n++
			}
		}
	}
	return n
}

func TestRenderSmoothUsesVertexColors(t *testing.T) {
	s := testScene()
	m := NewSphereMesh(2, 16, 12)
	m.Material = Material{BaseColor: RGB(0xFF, 0, 0), Unlit: true}
	for i := range m.Vertices {
		m.Vertices[i].Color = RGB(0, 0xFF, 0)
	}
	s.AddMesh(m)

	r := NewRenderer(64, 64, true)
	flat := newTestTarget(64, 64)
	r.Render(flat, s)
	if got := flat.Pixel(32, 32); got.R < 0xF0 || got.G != 0 {
		t.Fatalf("flat center=%+v want material color", got)
	}

	r.SetRenderMode(RenderSolidSmooth)
	smooth := newTestTarget(64, 64)
	r.Render(smooth, s)
	if got := smooth.Pixel(32, 32); got.G < 0xF0 || got.R != 0 {
		t.Fatalf("smooth center=%+v want vertex color", got)
	}
}

func TestRenderSmoothLightsPerVertex(t *testing.T) {
	tgt := newTestTarget(64, 64)
	s := testScene()
	s.Light = Light{Mode: LightAmbientDirectional, Ambient: 0.25, Dir: V3(0, 0, -1), DirAmount: 0.75}
	m := NewSphereMesh(2, 16, 12)
	m.Material = Material{BaseColor: RGB(0xFF, 0xFF, 0xFF)}
	s.AddMesh(m)

	r := NewRenderer(64, 64, true)
	r.SetRenderMode(RenderSolidSmooth)
	r.Render(tgt, s)

	center, edge := tgt.Pixel(32, 32), tgt.Pixel(42, 32)
	if center.R < 0xE0 {
		t.Fatalf("center=%+v want fully lit", center)
	}
	if edge == RGB(0, 0, 0) || int(edge.R)+0x20 > int(center.R) {
		t.Fatalf("edge=%+v center=%+v want darker limb", edge, center)
	}
}

func TestRenderWireframeDrawsEdgesOnly(t *testing.T) {
	s := testScene()
	m := NewSphereMesh(2, 16, 12)
	m.Material = Material{BaseColor: RGB(0xFF, 0xFF, 0xFF), Unlit: true}
	s.AddMesh(m)

	r := NewRenderer(64, 64, true)
	solid := newTestTarget(64, 64)
	r.Render(solid, s)

	r.SetRenderMode(RenderWireframe)
	wire := newTestTarget(64, 64)
	r.Render(wire, s)

	n, full := countLit(wire), countLit(solid)
	if n == 0 || n >= full {
		t.Fatalf("wireframe lit %d pixels, solid %d", n, full)
	}
}

func TestRenderModeNames(t *testing.T) {
	for _, name := range []string{"flat", "smooth", "wireframe"} {
		m, err := ParseRenderMode(name)
		if err != nil || m.String() != name {
			t.Fatalf("ParseRenderMode(%q)=%v, %v", name, m, err)
		}
	}
	if m, err := ParseRenderMode(""); err != nil || m != RenderSolidFlat {
		t.Fatalf("empty: %v, %v", m, err)
	}
	if _, err := ParseRenderMode("phong"); err == nil {
		t.Fatalf("expected error for unknown mode")
	}
	m := RenderSolidFlat
	for _, want := range []RenderMode{RenderSolidSmooth, RenderWireframe, RenderSolidFlat} {
		if m = m.Next(); m != want {
			t.Fatalf("Next: got %v want %v", m, want)
		}
	}
}
