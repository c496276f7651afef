package quarkgl

import "math"

// NewSphereMesh builds a UV sphere centered on the origin with outward winding.
func NewSphereMesh(radius Scalar, segments, rings int) Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	cols := segments + 1
	verts := make([]Vertex, 0, cols*(rings+1))
	indices := make([]uint16, 0, segments*rings*6)

	for i := 0; i <= rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		st, ct := math.Sin(theta), math.Cos(theta)
		for j := 0; j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			n := V3(Scalar(st*math.Cos(phi)), Scalar(ct), Scalar(st*math.Sin(phi)))
			verts = append(verts, Vertex{Pos: n.Mul(radius), Normal: n})
		}
	}

	idx := func(i, j int) uint16 { return uint16(i*cols + j) }
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			a := idx(i, j)
			b := idx(i+1, j)
			c := idx(i, j+1)
			d := idx(i+1, j+1)
			if i != 0 {
				indices = append(indices, a, c, b)
			}
			if i != rings-1 {
				indices = append(indices, b, c, d)
			}
		}
	}

	return Mesh{
		Vertices: verts,
		Indices:  indices,
		CullBack: true,
		Bound:    radius,
	}
}

// CirclePoints returns segments points of a circle of the given radius on the XZ plane.
func CirclePoints(radius Scalar, segments int) []Vec3 {
	if segments < 3 {
		segments = 3
	}
	pts := make([]Vec3, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = V3(Scalar(math.Cos(a))*radius, 0, Scalar(math.Sin(a))*radius)
	}
	return pts
}
