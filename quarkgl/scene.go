package quarkgl

// Material is a minimal surface description.
type Material struct {
	BaseColor Color
	Opacity   uint8 // 0..255. 255 means opaque.
	Unlit     bool  // BaseColor is emitted as-is
}

// LightMode defines minimal lighting options.
type LightMode uint8

const (
	LightOff LightMode = iota
	LightAmbientDirectional
	LightAmbientPoint // ambient + point + optional directional
)

// Light is a minimal light setup.
type Light struct {
	Mode      LightMode
	Ambient   Scalar // 0..1
	Dir       Vec3   // direction *towards* the scene
	DirAmount Scalar // 0..1

	Point       Vec3
	PointAmount Scalar // 0..1
	PointRange  Scalar // zero means unbounded
}

// CameraType selects camera projection.
type CameraType uint8

const (
	CameraPerspective CameraType = iota
	CameraOrtho
)

// Camera describes the viewing transform.
type Camera struct {
	Type CameraType

	Position Vec3
	Target   Vec3
	Up       Vec3

	// Perspective.
	FOVYRad Scalar

	// Orthographic (half-height).
	OrthoSize Scalar

	Near Scalar
	Far  Scalar
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// Projection returns the projection matrix for a target aspect.
func (c Camera) Projection(aspect Scalar) Mat4 {
	switch c.Type {
	case CameraOrtho:
		size := c.OrthoSize
		if size == 0 {
			size = 1
		}
		top := size
		bottom := -size
		right := size * aspect
		left := -right
		return Mat4Ortho(left, right, bottom, top, c.Near, c.Far)
	default:
		fov := c.FOVYRad
		if fov == 0 {
			fov = Scalar(1.0)
		}
		return Mat4Perspective(fov, aspect, c.Near, c.Far)
	}
}

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	Color  Color
}

// Mesh is a triangle mesh with an object transform.
type Mesh struct {
	Enabled bool

	Vertices []Vertex
	Indices  []uint16 // triangle list

	Transform Mat4
	Material  Material

	// CullBack skips triangles facing away from the camera. Requires outward winding.
	CullBack bool
	// Bound is the object-space bounding sphere radius around the origin.
	Bound Scalar
}

// LineLoop is a polyline drawn with a single color and opacity.
type LineLoop struct {
	Enabled bool
	Closed  bool

	Points    []Vec3
	Transform Mat4
	Color     Color
	Opacity   uint8
}

// PointCloud is a set of world-space points with per-point size and alpha.
type PointCloud struct {
	Enabled bool

	Points []Vec3
	Sizes  []Scalar // world-space radius per point
	Alpha  []uint8
	Hidden []bool
	Color  Color
}

// Scene is a collection of objects to render.
type Scene struct {
	Camera Camera
	Light  Light

	meshes []Mesh
	alive  []bool

	lines  []LineLoop
	points []PointCloud
}

// CreateScene allocates a scene with a fixed mesh capacity.
func CreateScene(maxMeshes int) *Scene {
	if maxMeshes < 0 {
		maxMeshes = 0
	}
	return &Scene{
		Camera: Camera{
			Type:      CameraPerspective,
			Position:  V3(0, 0, 3),
			Target:    V3(0, 0, 0),
			Up:        V3(0, 1, 0),
			FOVYRad:   Scalar(1.0),
			Near:      Scalar(0.05),
			Far:       Scalar(100),
			OrthoSize: Scalar(1),
		},
		Light: Light{
			Mode:      LightAmbientDirectional,
			Ambient:   Scalar(0.25),
			Dir:       Normalize(V3(1, 1, 1)),
			DirAmount: Scalar(0.75),
		},
		meshes: make([]Mesh, maxMeshes),
		alive:  make([]bool, maxMeshes),
	}
}

// AddMesh adds a mesh to the scene and returns its id or -1 if full.
func (s *Scene) AddMesh(m Mesh) int {
	if s == nil {
		return -1
	}
	for i := range s.meshes {
		if s.alive[i] {
			continue
		}
		if m.Transform == (Mat4{}) {
			m.Transform = Mat4Identity()
		}
		if m.Material.Opacity == 0 {
			m.Material.Opacity = 0xFF
		}
		if m.Material.BaseColor == (Color{}) {
			m.Material.BaseColor = RGB(0xCC, 0xCC, 0xCC)
		}
		m.Enabled = true
		s.meshes[i] = m
		s.alive[i] = true
		return i
	}
	return -1
}

// RemoveMesh removes a mesh by id.
func (s *Scene) RemoveMesh(id int) {
	if s == nil || id < 0 || id >= len(s.meshes) {
		return
	}
	s.alive[id] = false
	s.meshes[id] = Mesh{}
}

// SetMeshEnabled enables/disables a mesh by id.
func (s *Scene) SetMeshEnabled(id int, enabled bool) {
	if m := s.mesh(id); m != nil {
		m.Enabled = enabled
	}
}

// UpdateMeshTransform updates a mesh transform by id.
func (s *Scene) UpdateMeshTransform(id int, m Mat4) {
	if mm := s.mesh(id); mm != nil {
		mm.Transform = m
	}
}

// Mesh returns a copy of a live mesh.
func (s *Scene) Mesh(id int) (Mesh, bool) {
	if m := s.mesh(id); m != nil {
		return *m, true
	}
	return Mesh{}, false
}

// MeshCount returns the number of live meshes.
func (s *Scene) MeshCount() int {
	n := 0
	s.eachMesh(func(*Mesh) { n++ })
	return n
}

func (s *Scene) mesh(id int) *Mesh {
	if s == nil || id < 0 || id >= len(s.meshes) || !s.alive[id] {
		return nil
	}
	return &s.meshes[id]
}

func (s *Scene) eachMesh(fn func(m *Mesh)) {
	if s == nil {
		return
	}
	for i := range s.meshes {
		if !s.alive[i] {
			continue
		}
		fn(&s.meshes[i])
	}
}

// AddLine adds a line loop and returns its id.
func (s *Scene) AddLine(l LineLoop) int {
	if s == nil {
		return -1
	}
	if l.Transform == (Mat4{}) {
		l.Transform = Mat4Identity()
	}
	l.Enabled = true
	s.lines = append(s.lines, l)
	return len(s.lines) - 1
}

// SetLineStyle updates a line color and opacity.
func (s *Scene) SetLineStyle(id int, c Color, opacity uint8) {
	if s == nil || id < 0 || id >= len(s.lines) {
		return
	}
	s.lines[id].Color = c
	s.lines[id].Opacity = opacity
}

// SetLineEnabled enables/disables a line by id.
func (s *Scene) SetLineEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.lines) {
		return
	}
	s.lines[id].Enabled = enabled
}

// Line returns a copy of a line loop.
func (s *Scene) Line(id int) (LineLoop, bool) {
	if s == nil || id < 0 || id >= len(s.lines) {
		return LineLoop{}, false
	}
	return s.lines[id], true
}

// AddPoints adds a point cloud and returns its id. Missing sizes and alphas are filled.
func (s *Scene) AddPoints(p PointCloud) int {
	if s == nil {
		return -1
	}
	n := len(p.Points)
	for len(p.Sizes) < n {
		p.Sizes = append(p.Sizes, 0)
	}
	for len(p.Alpha) < n {
		p.Alpha = append(p.Alpha, 0xFF)
	}
	for len(p.Hidden) < n {
		p.Hidden = append(p.Hidden, false)
	}
	p.Enabled = true
	s.points = append(s.points, p)
	return len(s.points) - 1
}

// SetPointAlpha updates one point's alpha.
func (s *Scene) SetPointAlpha(id, i int, a uint8) {
	if s == nil || id < 0 || id >= len(s.points) {
		return
	}
	if i < 0 || i >= len(s.points[id].Alpha) {
		return
	}
	s.points[id].Alpha[i] = a
}

// SetPointHidden shows or hides one point.
func (s *Scene) SetPointHidden(id, i int, hidden bool) {
	if s == nil || id < 0 || id >= len(s.points) {
		return
	}
	if i < 0 || i >= len(s.points[id].Hidden) {
		return
	}
	s.points[id].Hidden[i] = hidden
}

// SetPointsEnabled enables/disables a point cloud by id.
func (s *Scene) SetPointsEnabled(id int, enabled bool) {
	if s == nil || id < 0 || id >= len(s.points) {
		return
	}
	s.points[id].Enabled = enabled
}

// Points returns the point cloud by id. The slices are shared with the scene.
func (s *Scene) Points(id int) (PointCloud, bool) {
	if s == nil || id < 0 || id >= len(s.points) {
		return PointCloud{}, false
	}
	return s.points[id], true
}
