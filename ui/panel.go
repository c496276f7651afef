package ui

import (
	"orrery/controls"
	"orrery/hal"
)

const (
	panelWidth  = 204
	panelMargin = 6
	panelPad    = 6
	rowHeight   = 14
	labelWidth  = 50
	readoutW    = 30
	buttonGap   = 4
)

// Panel is the speed and toggle control panel in the top right corner.
// It implements controls.Display.
type Panel struct {
	Bounds    Rect
	collapsed bool

	x, y     int
	full     Rect
	collapse Button

	sliders []*Slider
	planet  map[*Slider]string
	buttons []*Button

	drag *Slider
}

var _ controls.Display = (*Panel)(nil)

// NewPanel lays out the panel for a viewW-wide view with one slider per planet.
func NewPanel(viewW int, planets []string) *Panel {
	p := &Panel{
		x:      viewW - panelWidth - panelMargin,
		y:      panelMargin,
		planet: make(map[*Slider]string, len(planets)),
	}
	p.collapse = Button{
		ID:     "collapse",
		Bounds: Rect{X: p.x + panelWidth - panelPad - 14, Y: p.y + panelPad - 1, W: 14, H: 12},
	}

	y := p.y + panelPad + rowHeight + 2
	p.sliders = append(p.sliders, p.newSlider(controls.GlobalSpeedID, "Global", y))
	y += rowHeight + 6
	for _, name := range planets {
		s := p.newSlider(controls.PlanetSpeedID(name), name, y)
		p.planet[s] = name
		p.sliders = append(p.sliders, s)
		y += rowHeight
	}
	y += 6

	rows := [][]string{
		{controls.PauseID, controls.ThemeID, controls.ResetID},
		{controls.OrbitsID, controls.LabelsID, controls.StarsID},
	}
	labels := map[string]string{
		controls.PauseID:  "Pause",
		controls.ThemeID:  "Light Mode",
		controls.ResetID:  "Reset",
		controls.OrbitsID: "Orbits",
		controls.LabelsID: "Labels",
		controls.StarsID:  "Stars",
	}
	bw := (panelWidth - 2*panelPad - 2*buttonGap) / 3
	for _, row := range rows {
		x := p.x + panelPad
		for _, id := range row {
			p.buttons = append(p.buttons, &Button{
				ID:     id,
				Label:  labels[id],
				Bounds: Rect{X: x, Y: y, W: bw, H: rowHeight},
			})
			x += bw + buttonGap
		}
		y += rowHeight + buttonGap
	}

	p.full = Rect{X: p.x, Y: p.y, W: panelWidth, H: y - p.y + panelPad - buttonGap}
	p.setCollapsed(false)
	return p
}

func (p *Panel) newSlider(id, label string, y int) *Slider {
	trackX := p.x + panelPad + labelWidth
	trackW := panelWidth - 2*panelPad - labelWidth - readoutW
	return &Slider{
		ID:     id,
		Label:  label,
		Track:  Rect{X: trackX, Y: y, W: trackW, H: rowHeight - 2},
		Value:  1,
		Text:   controls.FormatMultiplier(1),
		labelX: p.x + panelPad,
		textX:  trackX + trackW + 4,
	}
}

func (p *Panel) Collapsed() bool { return p.collapsed }

// ToggleCollapsed shows or hides everything below the panel title.
func (p *Panel) ToggleCollapsed() { p.setCollapsed(!p.collapsed) }

func (p *Panel) setCollapsed(v bool) {
	p.collapsed = v
	p.drag = nil
	if v {
		p.collapse.Label = "+"
		p.Bounds = Rect{X: p.x, Y: p.y, W: panelWidth, H: 2*panelPad + rowHeight}
		return
	}
	p.collapse.Label = "-"
	p.Bounds = p.full
}

// Slider returns the slider bound to id.
func (p *Panel) Slider(id string) (*Slider, bool) {
	for _, s := range p.sliders {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}

// Button returns the button bound to id.
func (p *Panel) Button(id string) (*Button, bool) {
	for _, b := range p.buttons {
		if b.ID == id {
			return b, true
		}
	}
	return nil, false
}

func (p *Panel) SetSliderValue(id string, v float64) {
	if s, ok := p.Slider(id); ok {
		s.Value = v
	}
}

func (p *Panel) SetValueText(id, text string) {
	if s, ok := p.Slider(id); ok {
		s.Text = text
	}
}

func (p *Panel) SetButtonLabel(id, label string) {
	if b, ok := p.Button(id); ok {
		b.Label = label
	}
}

func (p *Panel) SetButtonActive(id string, on bool) {
	if b, ok := p.Button(id); ok {
		b.Active = on
	}
}

// HandlePointer routes a pointer event to the panel. consumed reports whether
// the event landed on the panel (or continues a slider drag) and must not reach
// the 3D view.
func (p *Panel) HandlePointer(ev hal.PointerEvent) (a controls.Action, consumed bool) {
	switch ev.Kind {
	case hal.PointerDown:
		if p.collapse.Bounds.Contains(ev.X, ev.Y) {
			p.ToggleCollapsed()
			return a, true
		}
		if p.collapsed {
			return a, p.Bounds.Contains(ev.X, ev.Y)
		}
		for _, s := range p.sliders {
			hit := Rect{X: s.Track.X - 3, Y: s.Track.Y, W: s.Track.W + 6, H: s.Track.H}
			if hit.Contains(ev.X, ev.Y) {
				p.drag = s
				return p.slide(s, ev.X), true
			}
		}
		for _, b := range p.buttons {
			if b.Bounds.Contains(ev.X, ev.Y) {
				return controls.Action{Kind: buttonAction(b.ID)}, true
			}
		}
	case hal.PointerMove:
		if p.drag != nil {
			s := p.drag
			if v := s.ValueAt(ev.X); v != s.Value {
				return p.slide(s, ev.X), true
			}
			return a, true
		}
	case hal.PointerUp, hal.PointerCancel:
		if p.drag != nil {
			p.drag = nil
			return a, true
		}
	}
	return a, p.Bounds.Contains(ev.X, ev.Y)
}

// Dragging reports whether a slider holds the pointer.
func (p *Panel) Dragging() bool { return p.drag != nil }

func (p *Panel) slide(s *Slider, x int) controls.Action {
	s.Value = s.ValueAt(x)
	if name, ok := p.planet[s]; ok {
		return controls.Action{Kind: controls.ActionPlanetSpeed, Planet: name, Value: s.Value}
	}
	return controls.Action{Kind: controls.ActionGlobalSpeed, Value: s.Value}
}

func buttonAction(id string) controls.ActionKind {
	switch id {
	case controls.PauseID:
		return controls.ActionTogglePause
	case controls.ThemeID:
		return controls.ActionToggleTheme
	case controls.ResetID:
		return controls.ActionReset
	case controls.OrbitsID:
		return controls.ActionToggleOrbits
	case controls.LabelsID:
		return controls.ActionToggleLabels
	case controls.StarsID:
		return controls.ActionToggleStars
	}
	return controls.ActionNone
}

func (p *Panel) Draw(d *Display, pal Palette) {
	d.Fill(p.Bounds, pal.PanelBG)
	d.Outline(p.Bounds, pal.Border)
	d.Text(p.x+panelPad, p.y+panelPad, "Controls", pal.FG)
	p.collapse.draw(d, pal)
	if p.collapsed {
		return
	}
	for _, s := range p.sliders {
		s.draw(d, pal)
	}
	for _, b := range p.buttons {
		b.draw(d, pal)
	}
}
