// Package ui draws the control panel and the HUD overlays onto the RGB565
// framebuffer and maps pointer input on them to control actions.
package ui

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"orrery/hal"
	"orrery/quarkgl"
)

const (
	// LineHeight is the text row pitch in pixels.
	LineHeight = 12
	// baseline is the offset from a row top to the tinyfont baseline.
	baseline = 9
)

var font tinyfont.Fonter = &proggy.TinySZ8pt7b

var _ drivers.Displayer = (*Display)(nil)

// Display adapts a framebuffer to the tinyfont/drivers pixel interface and adds
// rectangle and translucent fill helpers.
type Display struct {
	fb hal.Framebuffer
	t  quarkgl.RGB565Target
}

func NewDisplay(fb hal.Framebuffer) *Display {
	d := &Display{fb: fb}
	d.sync()
	return d
}

// sync picks up a reallocated buffer.
func (d *Display) sync() {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		d.t = quarkgl.RGB565Target{}
		return
	}
	d.t = quarkgl.RGB565Target{
		Buf:    d.fb.Buffer(),
		Stride: d.fb.StrideBytes(),
		W:      d.fb.Width(),
		H:      d.fb.Height(),
	}
}

// Target exposes the framebuffer as a quarkgl render target.
func (d *Display) Target() *quarkgl.RGB565Target {
	d.sync()
	return &d.t
}

func (d *Display) Size() (x, y int16) {
	return int16(d.t.W), int16(d.t.H)
}

func (d *Display) SetPixel(x, y int16, c color.RGBA) {
	if c.A != 0xFF {
		d.t.BlendPixel(int(x), int(y), toColor(c))
		return
	}
	d.t.SetPixel(int(x), int(y), toColor(c))
}

// Display is a no-op; the app presents the framebuffer once per frame.
func (d *Display) Display() error { return nil }

func (d *Display) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	r := Rect{X: int(x), Y: int(y), W: int(width), H: int(height)}.clip(d.t.W, d.t.H)
	qc := toColor(c)
	blend := c.A != 0xFF
	for py := r.Y; py < r.Y+r.H; py++ {
		for px := r.X; px < r.X+r.W; px++ {
			if blend {
				d.t.BlendPixel(px, py, qc)
			} else {
				d.t.SetPixel(px, py, qc)
			}
		}
	}
	return nil
}

func (d *Display) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

// Fill paints r with c, blending when c is translucent.
func (d *Display) Fill(r Rect, c color.RGBA) {
	_ = d.FillRectangle(int16(r.X), int16(r.Y), int16(r.W), int16(r.H), c)
}

// Outline draws a one pixel border inside r.
func (d *Display) Outline(r Rect, c color.RGBA) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	d.Fill(Rect{X: r.X, Y: r.Y, W: r.W, H: 1}, c)
	d.Fill(Rect{X: r.X, Y: r.Y + r.H - 1, W: r.W, H: 1}, c)
	d.Fill(Rect{X: r.X, Y: r.Y, W: 1, H: r.H}, c)
	d.Fill(Rect{X: r.X + r.W - 1, Y: r.Y, W: 1, H: r.H}, c)
}

// Text writes s with its row top at (x, y).
func (d *Display) Text(x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(d, font, int16(x), int16(y+baseline), s, c)
}

// TextWidth is the rendered width of s in pixels.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(font, s)
	return int(outbox)
}

// Wrap breaks s into lines no wider than width pixels, splitting on spaces.
// A single word wider than width gets its own line.
func Wrap(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 || width <= 0 {
		return nil
	}
	var (
		out  []string
		line string
	)
	for _, w := range words {
		next := w
		if line != "" {
			next = line + " " + w
		}
		if line != "" && TextWidth(next) > width {
			out = append(out, line)
			line = w
			continue
		}
		line = next
	}
	if line != "" {
		out = append(out, line)
	}
	return out
}

// Fit trims whole runes from the right of s until it is no wider than width
// pixels.
func Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	for s != "" && TextWidth(s) > width {
		_, size := utf8.DecodeLastRuneInString(s)
		s = s[:len(s)-size]
	}
	return s
}

func toColor(c color.RGBA) quarkgl.Color {
	return quarkgl.RGBA(c.R, c.G, c.B, c.A)
}
