// Package presenter keeps the tooltip and info panel state for picked planets.
package presenter

import "orrery/world"

const (
	// TooltipOffset is the pointer-to-tooltip offset in pixels on both axes.
	TooltipOffset = 15
	TooltipDetail = "Click for more information"
)

// Records is the lookup used to fill the info panel.
type Records interface {
	Record(name string) (world.Record, bool)
}

// Tooltip follows the pointer while it hovers a planet.
type Tooltip struct {
	Visible bool
	X, Y    int
	Title   string
	Detail  string
}

// Field is one labelled line of the info panel.
type Field struct {
	Label string
	Value string
}

// Info is the open info panel.
type Info struct {
	Open        bool
	Title       string
	Description string
	Fields      []Field
}

type Presenter struct {
	records Records

	Tooltip Tooltip
	Info    Info
}

func New(r Records) *Presenter {
	return &Presenter{records: r}
}

// ShowTooltip places the tooltip for name next to pointer (px, py).
func (p *Presenter) ShowTooltip(name string, px, py int) {
	p.Tooltip = Tooltip{
		Visible: true,
		X:       px + TooltipOffset,
		Y:       py + TooltipOffset,
		Title:   name,
		Detail:  TooltipDetail,
	}
}

func (p *Presenter) HideTooltip() {
	p.Tooltip.Visible = false
}

// OpenInfo fills the info panel for name. Unknown names leave the panel untouched.
func (p *Presenter) OpenInfo(name string) bool {
	r, ok := p.records.Record(name)
	if !ok {
		return false
	}
	p.Info = Info{
		Open:        true,
		Title:       name,
		Description: r.Description,
		Fields: []Field{
			{Label: "Distance from Sun:", Value: r.Distance},
			{Label: "Diameter:", Value: r.Diameter},
			{Label: "Day Length:", Value: r.Day},
			{Label: "Year Length:", Value: r.Year},
		},
	}
	return true
}

func (p *Presenter) CloseInfo() {
	p.Info.Open = false
}

// Hover applies a picker result for a pointer move.
func (p *Presenter) Hover(name string, hit bool, px, py int) {
	if hit {
		p.ShowTooltip(name, px, py)
		return
	}
	p.HideTooltip()
}

// Select applies a picker result for a click or tap.
func (p *Presenter) Select(name string, hit bool) {
	if hit {
		p.OpenInfo(name)
		return
	}
	p.CloseInfo()
}
