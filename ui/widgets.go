package ui

import (
	"image/color"
	"math"

	"orrery/world"
)

// Rect is a pixel rectangle; X and Y are inclusive, W and H are sizes.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) clip(w, h int) Rect {
	x0 := clampInt(r.X, 0, w)
	y0 := clampInt(r.Y, 0, h)
	x1 := clampInt(r.X+r.W, 0, w)
	y1 := clampInt(r.Y+r.H, 0, h)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Palette is the HUD color set for one theme.
type Palette struct {
	PanelBG  color.RGBA
	Border   color.RGBA
	FG       color.RGBA
	Dim      color.RGBA
	Accent   color.RGBA
	Track    color.RGBA
	ButtonBG color.RGBA
	ActiveBG color.RGBA
	ActiveFG color.RGBA
}

var (
	darkPalette = Palette{
		PanelBG:  color.RGBA{R: 0x0A, G: 0x0E, B: 0x1E, A: 0xD0},
		Border:   color.RGBA{R: 0x30, G: 0x3A, B: 0x58, A: 0xFF},
		FG:       color.RGBA{R: 0xE0, G: 0xE8, B: 0xFF, A: 0xFF},
		Dim:      color.RGBA{R: 0x90, G: 0xA0, B: 0xB8, A: 0xFF},
		Accent:   color.RGBA{R: 0x4A, G: 0x9E, B: 0xFF, A: 0xFF},
		Track:    color.RGBA{R: 0x30, G: 0x38, B: 0x50, A: 0xFF},
		ButtonBG: color.RGBA{R: 0x1C, G: 0x24, B: 0x3C, A: 0xFF},
		ActiveBG: color.RGBA{R: 0x2E, G: 0x6B, B: 0xD6, A: 0xFF},
		ActiveFG: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	lightPalette = Palette{
		PanelBG:  color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xD8},
		Border:   color.RGBA{R: 0xB0, G: 0xB8, B: 0xC8, A: 0xFF},
		FG:       color.RGBA{R: 0x1A, G: 0x1F, B: 0x2E, A: 0xFF},
		Dim:      color.RGBA{R: 0x55, G: 0x60, B: 0x70, A: 0xFF},
		Accent:   color.RGBA{R: 0x2A, G: 0x6E, B: 0xD8, A: 0xFF},
		Track:    color.RGBA{R: 0xC0, G: 0xC8, B: 0xD4, A: 0xFF},
		ButtonBG: color.RGBA{R: 0xE4, G: 0xE8, B: 0xF0, A: 0xFF},
		ActiveBG: color.RGBA{R: 0x2A, G: 0x6E, B: 0xD8, A: 0xFF},
		ActiveFG: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
)

// PaletteFor returns the HUD colors for a theme.
func PaletteFor(t world.Theme) Palette {
	if t == world.ThemeLight {
		return lightPalette
	}
	return darkPalette
}

// Button is a clickable label. Active buttons are drawn highlighted.
type Button struct {
	ID     string
	Bounds Rect
	Label  string
	Active bool
}

func (b *Button) draw(d *Display, p Palette) {
	bg, fg := p.ButtonBG, p.FG
	if b.Active {
		bg, fg = p.ActiveBG, p.ActiveFG
	}
	d.Fill(b.Bounds, bg)
	d.Outline(b.Bounds, p.Border)
	label := Fit(b.Label, b.Bounds.W-4)
	x := b.Bounds.X + (b.Bounds.W-TextWidth(label))/2
	y := b.Bounds.Y + (b.Bounds.H-LineHeight)/2 + 1
	d.Text(x, y, label, fg)
}

// Slider range and resolution shared by every speed slider.
const (
	SliderMin  = 0.0
	SliderMax  = 5.0
	SliderStep = 0.1
)

// Slider is a horizontal track with a label on its left and a value readout on
// its right.
type Slider struct {
	ID     string
	Label  string
	Track  Rect
	Value  float64
	Text   string
	labelX int
	textX  int
}

// ValueAt maps a pointer x coordinate on the track to a stepped value.
func (s *Slider) ValueAt(px int) float64 {
	span := s.Track.W - 1
	if span <= 0 {
		return SliderMin
	}
	f := float64(px-s.Track.X) / float64(span)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	v := SliderMin + f*(SliderMax-SliderMin)
	v = math.Round(v/SliderStep) * SliderStep
	return math.Round(v*10) / 10
}

// knobX is the pixel column of the current value.
func (s *Slider) knobX() int {
	f := (s.Value - SliderMin) / (SliderMax - SliderMin)
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return s.Track.X + int(math.Round(f*float64(s.Track.W-1)))
}

func (s *Slider) draw(d *Display, p Palette) {
	textY := s.Track.Y + (s.Track.H-LineHeight)/2 + 1
	d.Text(s.labelX, textY, s.Label, p.Dim)

	mid := s.Track.Y + s.Track.H/2
	d.Fill(Rect{X: s.Track.X, Y: mid - 1, W: s.Track.W, H: 2}, p.Track)
	kx := s.knobX()
	d.Fill(Rect{X: s.Track.X, Y: mid - 1, W: kx - s.Track.X, H: 2}, p.Accent)
	d.Fill(Rect{X: kx - 2, Y: s.Track.Y + 1, W: 5, H: s.Track.H - 2}, p.Accent)

	d.Text(s.textX, textY, s.Text, p.FG)
}
