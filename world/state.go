package world

import "fmt"

// Theme selects the color scheme.
type Theme uint8

const (
	ThemeDark Theme = iota
	ThemeLight
)

func (t Theme) String() string {
	if t == ThemeLight {
		return "light"
	}
	return "dark"
}

// ParseTheme accepts "dark" or "light".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "", "dark":
		return ThemeDark, nil
	case "light":
		return ThemeLight, nil
	default:
		return ThemeDark, fmt.Errorf("unknown theme %q", s)
	}
}

// State is the global simulation state shared by controls, the picker and the loop.
type State struct {
	Paused           bool
	GlobalMultiplier float64

	ShowOrbits bool
	ShowLabels bool // reserved; no visual effect
	ShowStars  bool

	Theme Theme
}

// NewState returns the startup state: running at 1x with everything visible.
func NewState(theme Theme) State {
	return State{
		GlobalMultiplier: 1,
		ShowOrbits:       true,
		ShowLabels:       true,
		ShowStars:        true,
		Theme:            theme,
	}
}
