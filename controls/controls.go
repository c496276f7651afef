// Package controls applies user controls to the world and simulation state and
// writes the resulting values back to the UI.
package controls

import (
	"fmt"

	"orrery/world"
)

// Control ids shared with the UI.
const (
	GlobalSpeedID = "globalSpeed"
	PauseID       = "pause"
	ThemeID       = "theme"
	OrbitsID      = "orbits"
	LabelsID      = "labels"
	StarsID       = "stars"
	ResetID       = "reset"
)

// PlanetSpeedID is the slider id bound to a planet.
func PlanetSpeedID(name string) string { return "speed:" + name }

// Display is the UI surface controls write back to.
type Display interface {
	SetSliderValue(id string, v float64)
	SetValueText(id, text string)
	SetButtonLabel(id, label string)
	SetButtonActive(id string, on bool)
}

// Logger receives one line per state change.
type Logger interface {
	WriteLineString(s string)
}

type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionGlobalSpeed
	ActionPlanetSpeed
	ActionTogglePause
	ActionToggleTheme
	ActionToggleOrbits
	ActionToggleLabels
	ActionToggleStars
	ActionReset
)

// Action is a queued control input.
type Action struct {
	Kind   ActionKind
	Planet string
	Value  float64
}

// FormatMultiplier renders a multiplier the way the speed readouts show it.
func FormatMultiplier(v float64) string { return fmt.Sprintf("%.1fx", v) }

// Surface owns no state of its own. Every operation mutates the world or state
// immediately and then refreshes the affected UI elements.
type Surface struct {
	world *world.World
	state *world.State
	disp  Display
	log   Logger

	// OnReset runs after Reset, e.g. to restore the camera.
	OnReset func()
}

func New(w *world.World, st *world.State, d Display, log Logger) *Surface {
	s := &Surface{world: w, state: st, disp: d, log: log}
	s.Refresh()
	return s
}

// Refresh writes every displayed value from the current state.
func (s *Surface) Refresh() {
	s.writeSlider(GlobalSpeedID, s.state.GlobalMultiplier)
	for _, p := range s.world.Planets {
		s.writeSlider(PlanetSpeedID(p.Name), p.Multiplier)
	}
	s.writePause()
	s.writeTheme()
	s.writeToggle(OrbitsID, s.state.ShowOrbits)
	s.writeToggle(LabelsID, s.state.ShowLabels)
	s.writeToggle(StarsID, s.state.ShowStars)
}

func (s *Surface) SetGlobalSpeed(v float64) {
	s.state.GlobalMultiplier = v
	s.world.RecomputeSpeeds(*s.state)
	s.disp.SetValueText(GlobalSpeedID, FormatMultiplier(v))
}

// SetPlanetSpeed changes only the named planet's multiplier.
func (s *Surface) SetPlanetSpeed(name string, v float64) bool {
	p, ok := s.world.Planet(name)
	if !ok {
		return false
	}
	p.Multiplier = v
	s.world.RecomputeSpeeds(*s.state)
	s.disp.SetValueText(PlanetSpeedID(name), FormatMultiplier(v))
	return true
}

func (s *Surface) TogglePause() {
	s.state.Paused = !s.state.Paused
	s.writePause()
	s.logf("controls: paused=%t", s.state.Paused)
}

func (s *Surface) ToggleTheme() {
	if s.state.Theme == world.ThemeLight {
		s.state.Theme = world.ThemeDark
	} else {
		s.state.Theme = world.ThemeLight
	}
	s.world.ApplyTheme(s.state.Theme)
	s.writeTheme()
	s.logf("controls: theme=%s", s.state.Theme)
}

func (s *Surface) ToggleOrbits() {
	s.state.ShowOrbits = !s.state.ShowOrbits
	s.world.SetOrbitsVisible(s.state.ShowOrbits)
	s.writeToggle(OrbitsID, s.state.ShowOrbits)
}

// ToggleLabels flips the reserved labels flag.
func (s *Surface) ToggleLabels() {
	s.state.ShowLabels = !s.state.ShowLabels
	s.writeToggle(LabelsID, s.state.ShowLabels)
}

func (s *Surface) ToggleStars() {
	s.state.ShowStars = !s.state.ShowStars
	s.world.SetStarsVisible(s.state.ShowStars)
	s.writeToggle(StarsID, s.state.ShowStars)
}

// Reset restores every multiplier to 1. Pause and theme are left alone.
func (s *Surface) Reset() {
	s.state.GlobalMultiplier = 1
	for _, p := range s.world.Planets {
		p.Multiplier = 1
	}
	s.world.RecomputeSpeeds(*s.state)

	s.writeSlider(GlobalSpeedID, 1)
	for _, p := range s.world.Planets {
		s.writeSlider(PlanetSpeedID(p.Name), 1)
	}
	if s.OnReset != nil {
		s.OnReset()
	}
	s.logf("controls: reset")
}

// Apply dispatches a queued action.
func (s *Surface) Apply(a Action) {
	switch a.Kind {
	case ActionGlobalSpeed:
		s.SetGlobalSpeed(a.Value)
	case ActionPlanetSpeed:
		s.SetPlanetSpeed(a.Planet, a.Value)
	case ActionTogglePause:
		s.TogglePause()
	case ActionToggleTheme:
		s.ToggleTheme()
	case ActionToggleOrbits:
		s.ToggleOrbits()
	case ActionToggleLabels:
		s.ToggleLabels()
	case ActionToggleStars:
		s.ToggleStars()
	case ActionReset:
		s.Reset()
	}
}

func (s *Surface) writeSlider(id string, v float64) {
	s.disp.SetSliderValue(id, v)
	s.disp.SetValueText(id, FormatMultiplier(v))
}

func (s *Surface) writePause() {
	if s.state.Paused {
		s.disp.SetButtonLabel(PauseID, "Resume")
	} else {
		s.disp.SetButtonLabel(PauseID, "Pause")
	}
	s.disp.SetButtonActive(PauseID, s.state.Paused)
}

// writeTheme labels the button with the theme it switches to.
func (s *Surface) writeTheme() {
	if s.state.Theme == world.ThemeLight {
		s.disp.SetButtonLabel(ThemeID, "Dark Mode")
	} else {
		s.disp.SetButtonLabel(ThemeID, "Light Mode")
	}
}

func (s *Surface) writeToggle(id string, on bool) {
	s.disp.SetButtonActive(id, on)
}

func (s *Surface) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
