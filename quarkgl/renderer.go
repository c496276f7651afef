package quarkgl

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float32

	world []Vec3
	clip  []Vec4
	shade []Color
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		Depth:      enableDepth,
		ClearColor: RGB(0, 0, 0),
	}
	if enableDepth && w > 0 && h > 0 {
		r.depthBuf = make([]float32, w*h)
	}
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on {
		r.depthBuf = nil
		return
	}
	if w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = 1e9
	}
}

// frame holds the per-render constants.
type frame struct {
	t     Target
	w, h  int
	vp    Mat4
	projY Scalar
	eye   Vec3
	light Light
}

// Render renders a scene into the target.
//
// Opaque meshes are drawn first and write depth. Point clouds, line loops and
// translucent meshes follow, depth-tested and blended without writing depth.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		r.clearDepth()
	}

	aspect := Scalar(1)
	if h != 0 {
		aspect = Scalar(w) / Scalar(h)
	}
	proj := s.Camera.Projection(aspect)
	f := frame{
		t:     t,
		w:     w,
		h:     h,
		vp:    Mat4Mul(proj, s.Camera.View()),
		projY: proj[5],
		eye:   s.Camera.Position,
		light: s.Light,
	}

	s.eachMesh(func(m *Mesh) {
		if m.Enabled && m.Material.Opacity == 0xFF {
			r.renderMesh(&f, m)
		}
	})
	for i := range s.points {
		if s.points[i].Enabled {
			r.renderPoints(&f, &s.points[i])
		}
	}
	for i := range s.lines {
		if s.lines[i].Enabled {
			r.renderLine(&f, &s.lines[i])
		}
	}
	s.eachMesh(func(m *Mesh) {
		if m.Enabled && m.Material.Opacity != 0xFF {
			r.renderMesh(&f, m)
		}
	})
}

func (r *Renderer) project(f *frame, pts []Vec3, model Mat4) {
	if cap(r.world) < len(pts) {
		r.world = make([]Vec3, len(pts))
		r.clip = make([]Vec4, len(pts))
	}
	r.world = r.world[:len(pts)]
	r.clip = r.clip[:len(pts)]
	for i, p := range pts {
		wp := TransformPoint(model, p)
		r.world[i] = wp
		r.clip[i] = Mat4MulV4(f.vp, Vec4{X: wp.X, Y: wp.Y, Z: wp.Z, W: 1})
	}
}

func (r *Renderer) renderMesh(f *frame, m *Mesh) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	model := m.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}

	if cap(r.world) < len(m.Vertices) {
		r.world = make([]Vec3, len(m.Vertices))
		r.clip = make([]Vec4, len(m.Vertices))
	}
	r.world = r.world[:len(m.Vertices)]
	r.clip = r.clip[:len(m.Vertices)]
	for i := range m.Vertices {
		wp := TransformPoint(model, m.Vertices[i].Pos)
		r.world[i] = wp
		r.clip[i] = Mat4MulV4(f.vp, Vec4{X: wp.X, Y: wp.Y, Z: wp.Z, W: 1})
	}

	opaque := m.Material.Opacity == 0xFF
	lit := !m.Material.Unlit && f.light.Mode != LightOff
	// Translucent shells stay flat so they blend instead of writing depth.
	smooth := r.Mode == RenderSolidSmooth && opaque
	if smooth {
		r.shadeVertices(f, m, model, lit)
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(m.Vertices) || i1 >= len(m.Vertices) || i2 >= len(m.Vertices) {
			continue
		}

		w0, w1, w2 := r.world[i0], r.world[i1], r.world[i2]
		n := triangleNormal(w0, w1, w2)
		center := w0.Add(w1).Add(w2).Mul(1.0 / 3)
		if m.CullBack && Dot(n, f.eye.Sub(center)) < 0 {
			continue
		}

		// Trivial clip: drop triangles with any vertex behind the camera.
		ndc0, ok0 := clipToNDC(r.clip[i0])
		ndc1, ok1 := clipToNDC(r.clip[i1])
		ndc2, ok2 := clipToNDC(r.clip[i2])
		if !ok0 || !ok1 || !ok2 {
			continue
		}

		x0, y0 := ndcToScreen(ndc0, f.w, f.h)
		x1, y1 := ndcToScreen(ndc1, f.w, f.h)
		x2, y2 := ndcToScreen(ndc2, f.w, f.h)

		if smooth {
			r.fillTriangle(f.t, f.w, f.h, x0, y0, ndc0.Z, r.shade[i0], x1, y1, ndc1.Z, r.shade[i1], x2, y2, ndc2.Z, r.shade[i2])
			continue
		}

		base := m.Material.BaseColor
		if lit {
			base = base.MulScalar(lightAt(f.light, n, center))
		}
		base.A = m.Material.Opacity

		if r.Mode == RenderWireframe {
			r.drawLine(f.t, x0, y0, x1, y1, base)
			r.drawLine(f.t, x1, y1, x2, y2, base)
			r.drawLine(f.t, x2, y2, x0, y0, base)
			continue
		}
		r.fillTriangleFlat(f.t, f.w, f.h, x0, y0, ndc0.Z, x1, y1, ndc1.Z, x2, y2, ndc2.Z, base, opaque)
	}
}

// shadeVertices lights every vertex of m for smooth shading. r.world must
// already hold the transformed positions.
func (r *Renderer) shadeVertices(f *frame, m *Mesh, model Mat4, lit bool) {
	if cap(r.shade) < len(m.Vertices) {
		r.shade = make([]Color, len(m.Vertices))
	}
	r.shade = r.shade[:len(m.Vertices)]
	origin := TransformPoint(model, Vec3{})
	for i := range m.Vertices {
		c := m.Material.BaseColor
		if vc := m.Vertices[i].Color; vc != (Color{}) {
			c = vc
		}
		if lit {
			n := Normalize(TransformPoint(model, m.Vertices[i].Normal).Sub(origin))
			c = c.MulScalar(lightAt(f.light, n, r.world[i]))
		}
		c.A = 0xFF
		r.shade[i] = c
	}
}

func (r *Renderer) renderLine(f *frame, l *LineLoop) {
	if len(l.Points) < 2 || l.Opacity == 0 {
		return
	}
	model := l.Transform
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	r.project(f, l.Points, model)
	c := l.Color
	c.A = l.Opacity

	n := len(l.Points)
	segs := n - 1
	if l.Closed {
		segs = n
	}
	for i := 0; i < segs; i++ {
		a, okA := clipToNDC(r.clip[i])
		b, okB := clipToNDC(r.clip[(i+1)%n])
		if !okA || !okB {
			continue
		}
		r.drawLineDepth(f, a, b, c)
	}
}

func (r *Renderer) renderPoints(f *frame, p *PointCloud) {
	for i, pt := range p.Points {
		if p.Hidden[i] || p.Alpha[i] == 0 {
			continue
		}
		cp := Mat4MulV4(f.vp, Vec4{X: pt.X, Y: pt.Y, Z: pt.Z, W: 1})
		ndc, ok := clipToNDC(cp)
		if !ok || ndc.X < -1 || ndc.X > 1 || ndc.Y < -1 || ndc.Y > 1 || ndc.Z > 1 {
			continue
		}
		x, y := ndcToScreen(ndc, f.w, f.h)
		c := p.Color.WithAlpha(p.Alpha[i])

		rad := int(p.Sizes[i]*f.projY*Scalar(f.h)/2/cp.W + 0.5)
		if rad > 4 {
			rad = 4
		}
		for dy := -rad; dy <= rad; dy++ {
			for dx := -rad; dx <= rad; dx++ {
				if !r.depthTest(f.w, x+dx, y+dy, ndc.Z, false) {
					continue
				}
				f.t.BlendPixel(x+dx, y+dy, c)
			}
		}
	}
}

type ndcPoint struct {
	X, Y, Z float32
}

// clipToNDC divides by w. Points at or behind the eye plane are rejected.
func clipToNDC(p Vec4) (ndcPoint, bool) {
	w := float32(p.W)
	if w <= 0 {
		return ndcPoint{}, false
	}
	invW := 1.0 / w
	return ndcPoint{
		X: float32(p.X) * invW,
		Y: float32(p.Y) * invW,
		Z: float32(p.Z) * invW,
	}, true
}

func ndcToScreen(p ndcPoint, w, h int) (x, y int) {
	sx := (p.X*0.5 + 0.5) * float32(w-1)
	sy := (1 - (p.Y*0.5 + 0.5)) * float32(h-1)
	return int(sx + 0.5), int(sy + 0.5)
}

func triangleNormal(a, b, c Vec3) Vec3 {
	return Normalize(Cross(b.Sub(a), c.Sub(a)))
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	dir := Clamp01(l.DirAmount)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	d := Dot(n, ld.Mul(-1))
	if d < 0 {
		d = 0
	}
	return Clamp01(amb + d*dir)
}

// lightAt shades a surface point p with world normal n.
func lightAt(l Light, n, p Vec3) Scalar {
	switch l.Mode {
	case LightAmbientDirectional:
		return lightIntensity(l, n)
	case LightAmbientPoint:
		v := lightIntensity(l, n)
		toLight := l.Point.Sub(p)
		d := Dot(n, Normalize(toLight))
		if d <= 0 {
			return v
		}
		att := Scalar(1)
		if l.PointRange > 0 {
			att = Clamp01(1 - Len(toLight)/l.PointRange)
		}
		return Clamp01(v + d*Clamp01(l.PointAmount)*att)
	default:
		return 1
	}
}

// depthTest reports whether z passes at (x, y); when write is set it also stores z.
func (r *Renderer) depthTest(w int, x, y int, z float32, write bool) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	if x < 0 || y < 0 || x >= w {
		return false
	}
	idx := y*w + x
	if idx < 0 || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is typically in [-1,1]. Map to [0,1].
	d := (z*0.5 + 0.5)
	if d < 0 {
		d = 0
	}
	if d > 1 {
		d = 1
	}
	if d >= r.depthBuf[idx] {
		return false
	}
	if write {
		r.depthBuf[idx] = d
	}
	return true
}

// drawLine draws an unclipped Bresenham segment, blending when c is translucent.
func (r *Renderer) drawLine(t Target, x0, y0, x1, y1 int, c Color) {
	plot := t.SetPixel
	if c.A != 0xFF {
		plot = t.BlendPixel
	}
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// drawLineDepth draws a blended, depth-tested segment clipped to the NDC square.
func (r *Renderer) drawLineDepth(f *frame, a, b ndcPoint, c Color) {
	a, b, ok := clipSegment(a, b)
	if !ok {
		return
	}
	x0, y0 := ndcToScreen(a, f.w, f.h)
	x1, y1 := ndcToScreen(b, f.w, f.h)
	steps := absInt(x1 - x0)
	if dy := absInt(y1 - y0); dy > steps {
		steps = dy
	}
	if steps == 0 {
		if r.depthTest(f.w, x0, y0, a.Z, false) {
			f.t.BlendPixel(x0, y0, c)
		}
		return
	}
	inv := 1 / float32(steps)
	for i := 0; i <= steps; i++ {
		s := float32(i) * inv
		x := int(float32(x0) + float32(x1-x0)*s + 0.5)
		y := int(float32(y0) + float32(y1-y0)*s + 0.5)
		z := a.Z + (b.Z-a.Z)*s
		if !r.depthTest(f.w, x, y, z, false) {
			continue
		}
		f.t.BlendPixel(x, y, c)
	}
}

// clipSegment clips a segment to x,y in [-1,1] (Liang-Barsky).
func clipSegment(a, b ndcPoint) (ndcPoint, ndcPoint, bool) {
	t0, t1 := float32(0), float32(1)
	dx, dy := b.X-a.X, b.Y-a.Y
	edges := [4][2]float32{
		{-dx, a.X + 1},
		{dx, 1 - a.X},
		{-dy, a.Y + 1},
		{dy, 1 - a.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return a, b, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}
	lerp := func(t float32) ndcPoint {
		return ndcPoint{X: a.X + dx*t, Y: a.Y + dy*t, Z: a.Z + (b.Z-a.Z)*t}
	}
	return lerp(t0), lerp(t1), true
}

func (r *Renderer) fillTriangleFlat(t Target, w, h int, x0, y0 int, z0 float32, x1, y1 int, z1 float32, x2, y2 int, z2 float32, c Color, opaque bool) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	// Accept either winding in screen space.
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1.0 / float32(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y) * sign
			w1 := edgeFn(x2, y2, x0, y0, x, y) * sign
			w2 := edgeFn(x0, y0, x1, y1, x, y) * sign
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0*sign) * invArea
			a1 := float32(w1*sign) * invArea
			a2 := float32(w2*sign) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z, opaque) {
				continue
			}
			if opaque {
				t.SetPixel(x, y, c)
			} else {
				t.BlendPixel(x, y, c)
			}
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, x0, y0 int, z0 float32, c0 Color, x1, y1 int, z1 float32, c1 Color, x2, y2 int, z2 float32, c2 Color) {
	minX, maxX := min3(x0, x1, x2), max3(x0, x1, x2)
	minY, maxY := min3(y0, y1, y2), max3(y0, y1, y2)
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= w {
		maxX = w - 1
	}
	if maxY >= h {
		maxY = h - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(x0, y0, x1, y1, x2, y2)
	if area == 0 {
		return
	}
	sign := 1
	if area < 0 {
		sign = -1
	}
	invArea := 1.0 / float32(area)

	r0, g0, b0 := float32(c0.R), float32(c0.G), float32(c0.B)
	r1, g1, b1 := float32(c1.R), float32(c1.G), float32(c1.B)
	r2, g2, b2 := float32(c2.R), float32(c2.G), float32(c2.B)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(x1, y1, x2, y2, x, y) * sign
			w1 := edgeFn(x2, y2, x0, y0, x, y) * sign
			w2 := edgeFn(x0, y0, x1, y1, x, y) * sign
			if (w0 | w1 | w2) < 0 {
				continue
			}
			a0 := float32(w0*sign) * invArea
			a1 := float32(w1*sign) * invArea
			a2 := float32(w2*sign) * invArea
			z := a0*z0 + a1*z1 + a2*z2
			if !r.depthTest(w, x, y, z, true) {
				continue
			}
			rr := uint8(clampF32(a0*r0+a1*r1+a2*r2, 0, 255))
			gg := uint8(clampF32(a0*g0+a1*g1+a2*g2, 0, 255))
			bb := uint8(clampF32(a0*b0+a1*b1+a2*b2, 0, 255))
			t.SetPixel(x, y, Color{R: rr, G: gg, B: bb, A: 0xFF})
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y int) int {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
