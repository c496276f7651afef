package hal

import (
	"image"
	"image/png"
	"io"
)

// ToRGBA converts an RGB565 framebuffer into an opaque RGBA image.
func ToRGBA(fb Framebuffer) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height()))
	expandRGB565(img.Pix, fb.Buffer(), fb.Width(), fb.Height(), fb.StrideBytes())
	return img
}

// WritePNG encodes the framebuffer contents as PNG.
func WritePNG(w io.Writer, fb Framebuffer) error {
	return png.Encode(w, ToRGBA(fb))
}

func expandRGB565(dst, src []byte, w, h, stride int) {
	for y := 0; y < h; y++ {
		row := y * stride
		for x := 0; x < w; x++ {
			i := row + x*2
			j := (y*w + x) * 4
			if i+1 >= len(src) || j+3 >= len(dst) {
				return
			}
			r, g, b := rgb888From565(uint16(src[i]) | uint16(src[i+1])<<8)
			dst[j+0] = r
			dst[j+1] = g
			dst[j+2] = b
			dst[j+3] = 0xFF
		}
	}
}
