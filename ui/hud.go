package ui

import (
	"fmt"

	"orrery/presenter"
)

const (
	infoWidth   = 260
	infoMargin  = 8
	tooltipPad  = 4
	closeSize   = 12
	statsWidth  = 92
	statsHeight = 2*LineHeight + 6
)

// HUD draws the stats box, the tooltip and the info panel.
type HUD struct {
	W, H int

	FPS     int
	Objects int
}

func NewHUD(w, h, objects int) *HUD {
	return &HUD{W: w, H: h, Objects: objects}
}

// StatsText returns the two stats lines as displayed.
func (h *HUD) StatsText() (fps, objects string) {
	return fmt.Sprintf("FPS: %d", h.FPS), fmt.Sprintf("Objects: %d", h.Objects)
}

func (h *HUD) Draw(d *Display, pal Palette, p *presenter.Presenter) {
	h.drawStats(d, pal)
	if p == nil {
		return
	}
	if p.Info.Open {
		h.drawInfo(d, pal, p.Info)
	}
	if p.Tooltip.Visible {
		h.drawTooltip(d, pal, p.Tooltip)
	}
}

func (h *HUD) drawStats(d *Display, pal Palette) {
	r := Rect{X: infoMargin, Y: infoMargin, W: statsWidth, H: statsHeight}
	d.Fill(r, pal.PanelBG)
	fps, objects := h.StatsText()
	d.Text(r.X+tooltipPad, r.Y+3, fps, pal.FG)
	d.Text(r.X+tooltipPad, r.Y+3+LineHeight, objects, pal.Dim)
}

// TooltipBounds sizes the tooltip box at its anchor, shifted left or up when it
// would leave the view.
func (h *HUD) TooltipBounds(t presenter.Tooltip) Rect {
	w := TextWidth(t.Title)
	if dw := TextWidth(t.Detail); dw > w {
		w = dw
	}
	r := Rect{X: t.X, Y: t.Y, W: w + 2*tooltipPad, H: 2*LineHeight + 2*tooltipPad}
	if r.X+r.W > h.W {
		r.X = h.W - r.W
	}
	if r.Y+r.H > h.H {
		r.Y = h.H - r.H
	}
	if r.X < 0 {
		r.X = 0
	}
	if r.Y < 0 {
		r.Y = 0
	}
	return r
}

func (h *HUD) drawTooltip(d *Display, pal Palette, t presenter.Tooltip) {
	r := h.TooltipBounds(t)
	d.Fill(r, pal.PanelBG)
	d.Outline(r, pal.Accent)
	d.Text(r.X+tooltipPad, r.Y+tooltipPad, t.Title, pal.FG)
	d.Text(r.X+tooltipPad, r.Y+tooltipPad+LineHeight, t.Detail, pal.Dim)
}

// infoLayout is the info panel geometry for one Info value.
type infoLayout struct {
	box   Rect
	close Rect
	desc  []string
}

func (h *HUD) layoutInfo(info presenter.Info) infoLayout {
	textW := infoWidth - 2*infoMargin
	desc := Wrap(info.Description, textW)
	rows := 1 + len(desc) + 1 + 2*len(info.Fields)
	boxH := rows*LineHeight + 2*infoMargin
	box := Rect{X: infoMargin, Y: h.H - infoMargin - boxH, W: infoWidth, H: boxH}
	if box.Y < infoMargin+statsHeight+infoMargin {
		box.Y = infoMargin + statsHeight + infoMargin
	}
	return infoLayout{
		box:   box,
		close: Rect{X: box.X + box.W - infoMargin - closeSize, Y: box.Y + infoMargin - 2, W: closeSize, H: closeSize},
		desc:  desc,
	}
}

// InfoHit reports whether (x, y) falls on the open info panel and whether it
// hit the close button.
func (h *HUD) InfoHit(info presenter.Info, x, y int) (inside, onClose bool) {
	if !info.Open {
		return false, false
	}
	l := h.layoutInfo(info)
	return l.box.Contains(x, y), l.close.Contains(x, y)
}

func (h *HUD) drawInfo(d *Display, pal Palette, info presenter.Info) {
	l := h.layoutInfo(info)
	d.Fill(l.box, pal.PanelBG)
	d.Outline(l.box, pal.Border)

	x := l.box.X + infoMargin
	y := l.box.Y + infoMargin
	d.Text(x, y, info.Title, pal.Accent)

	d.Outline(l.close, pal.Border)
	d.Text(l.close.X+(closeSize-TextWidth("x"))/2, l.close.Y+1, "x", pal.FG)

	y += LineHeight
	for _, line := range l.desc {
		d.Text(x, y, line, pal.FG)
		y += LineHeight
	}
	y += LineHeight
	for _, f := range info.Fields {
		d.Text(x, y, f.Label, pal.Dim)
		y += LineHeight
		d.Text(x+8, y, Fit(f.Value, infoWidth-2*infoMargin-8), pal.FG)
		y += LineHeight
	}
}
