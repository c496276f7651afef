package quarkgl

// RGB565Target renders into an RGB565 framebuffer buffer.
//
// Callers provide the backing buffer and layout (stride).
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) Clear(c Color) {
	if !t.ok() {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	lo := byte(p)
	hi := byte(p >> 8)
	for y := 0; y < t.H; y++ {
		row := y * t.Stride
		for x := 0; x < t.W; x++ {
			off := row + x*2
			if off < 0 || off+1 >= len(t.Buf) {
				continue
			}
			t.Buf[off] = lo
			t.Buf[off+1] = hi
		}
	}
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	p := rgb565From888(c.R, c.G, c.B)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Target) BlendPixel(x, y int, c Color) {
	if c.A == 0 {
		return
	}
	off, ok := t.offset(x, y)
	if !ok {
		return
	}
	dst := rgb888From565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
	p := c.Over(dst)
	v := rgb565From888(p.R, p.G, p.B)
	t.Buf[off] = byte(v)
	t.Buf[off+1] = byte(v >> 8)
}

// Pixel reads back a pixel. Out-of-range reads return zero.
func (t *RGB565Target) Pixel(x, y int) Color {
	off, ok := t.offset(x, y)
	if !ok {
		return Color{}
	}
	return rgb888From565(uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8)
}

func (t *RGB565Target) ok() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) offset(x, y int) (int, bool) {
	if !t.ok() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return 0, false
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return 0, false
	}
	return off, true
}

func rgb565From888(r, g, b uint8) uint16 {
	return uint16((uint16(r>>3)&0x1F)<<11 | (uint16(g>>2)&0x3F)<<5 | (uint16(b>>3) & 0x1F))
}

func rgb888From565(p uint16) Color {
	r := uint8((p >> 11) & 0x1F)
	g := uint8((p >> 5) & 0x3F)
	b := uint8(p & 0x1F)
	return RGB((r<<3)|(r>>2), (g<<2)|(g>>4), (b<<3)|(b>>2))
}
