package quarkgl

import "fmt"

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates. BlendPixel composites c
// over the current pixel using c.A.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	BlendPixel(x, y int, c Color)
	Clear(c Color)
}

// RenderMode selects the rasterization mode. The zero value is RenderSolidFlat.
type RenderMode uint8

const (
	RenderSolidFlat RenderMode = iota
	RenderWireframe
	// RenderSolidSmooth lights each vertex and interpolates across the triangle.
	// A non-zero Vertex.Color replaces the material color for that vertex.
	RenderSolidSmooth
)

var renderModeNames = [...]string{
	RenderSolidFlat:   "flat",
	RenderWireframe:   "wireframe",
	RenderSolidSmooth: "smooth",
}

func (m RenderMode) String() string {
	if int(m) < len(renderModeNames) {
		return renderModeNames[m]
	}
	return fmt.Sprintf("RenderMode(%d)", m)
}

// Next cycles flat -> smooth -> wireframe -> flat.
func (m RenderMode) Next() RenderMode {
	switch m {
	case RenderSolidFlat:
		return RenderSolidSmooth
	case RenderSolidSmooth:
		return RenderWireframe
	default:
		return RenderSolidFlat
	}
}

// ParseRenderMode accepts "flat", "smooth" or "wireframe". Empty means flat.
func ParseRenderMode(s string) (RenderMode, error) {
	if s == "" {
		return RenderSolidFlat, nil
	}
	for i, name := range renderModeNames {
		if name == s {
			return RenderMode(i), nil
		}
	}
	return RenderSolidFlat, fmt.Errorf("unknown render mode %q", s)
}
