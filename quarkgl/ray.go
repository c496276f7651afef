package quarkgl

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// At returns the point at parameter t.
func (r Ray) At(t Scalar) Vec3 { return r.Origin.Add(r.Dir.Mul(t)) }

// RayFromNDC unprojects normalized device coordinates into a world-space ray.
//
// Perspective rays start at the camera position; orthographic rays start on the
// near plane.
func (c Camera) RayFromNDC(x, y, aspect Scalar) Ray {
	vp := Mat4Mul(c.Projection(aspect), c.View())
	inv := mgl32.Mat4(vp).Inv()
	if c.Type == CameraOrtho {
		near := unproject(inv, x, y, -1)
		far := unproject(inv, x, y, 1)
		return Ray{Origin: near, Dir: Normalize(far.Sub(near))}
	}
	p := unproject(inv, x, y, 0.5)
	return Ray{Origin: c.Position, Dir: Normalize(p.Sub(c.Position))}
}

func unproject(inv mgl32.Mat4, x, y, z Scalar) Vec3 {
	v := inv.Mul4x1(mgl32.Vec4{x, y, z, 1})
	if v[3] != 0 {
		v = v.Mul(1 / v[3])
	}
	return V3(v[0], v[1], v[2])
}

// IntersectSphere returns the smallest positive ray parameter at which the ray
// meets the sphere. A ray starting inside the sphere reports the exit point.
func (r Ray) IntersectSphere(center Vec3, radius Scalar) (Scalar, bool) {
	L := center.Sub(r.Origin)
	tca := Dot(L, r.Dir)
	d2 := Dot(L, L) - tca*tca
	r2 := radius * radius
	if d2 > r2 {
		return 0, false
	}
	thc := Scalar(math.Sqrt(float64(r2 - d2)))
	const eps = 1e-6
	if t := tca - thc; t > eps {
		return t, true
	}
	if t := tca + thc; t > eps {
		return t, true
	}
	return 0, false
}
