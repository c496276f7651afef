package app

import (
	"orrery/controls"
	"orrery/hal"
	"orrery/quarkgl"
)

const (
	minZoom = 10
	maxZoom = 300

	keyRotate  = 0.05 // radians per arrow press
	keyZoom    = 4    // units per +/- press
	wheelZoom  = 4    // units per wheel notch
	dragRotate = 0.01 // radians per dragged pixel

	// clickSlop is how far a mouse press may travel and still count as a click.
	clickSlop = 4
)

// inputState tracks the pointer between events.
type inputState struct {
	down     bool
	downX    int
	downY    int
	lastX    int
	lastY    int
	dragged  bool
	captured bool // the press started on an overlay
}

// pollKeyboard drains pending key events without blocking.
func (a *App) pollKeyboard() {
	if a.kbd == nil {
		return
	}
	ch := a.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				a.handleKey(ev)
			}
		default:
			return
		}
	}
}

func (a *App) handleKey(ev hal.KeyEvent) {
	switch ev.Code {
	case hal.KeyUp:
		a.orbit.Rotate(0, -keyRotate)
		return
	case hal.KeyDown:
		a.orbit.Rotate(0, keyRotate)
		return
	case hal.KeyLeft:
		a.orbit.Rotate(-keyRotate, 0)
		return
	case hal.KeyRight:
		a.orbit.Rotate(keyRotate, 0)
		return
	case hal.KeyEscape:
		a.pres.CloseInfo()
		return
	}

	switch ev.Rune {
	case ' ':
		a.enqueue(controls.Action{Kind: controls.ActionTogglePause})
	case 't', 'T':
		a.enqueue(controls.Action{Kind: controls.ActionToggleTheme})
	case 'r', 'R':
		a.enqueue(controls.Action{Kind: controls.ActionReset})
	case 'o', 'O':
		a.enqueue(controls.Action{Kind: controls.ActionToggleOrbits})
	case 'l', 'L':
		a.enqueue(controls.Action{Kind: controls.ActionToggleLabels})
	case 's', 'S':
		a.enqueue(controls.Action{Kind: controls.ActionToggleStars})
	case 'p', 'P':
		a.panel.ToggleCollapsed()
	case 'w', 'W':
		a.renderer.SetRenderMode(a.renderer.Mode.Next())
		a.logf("orrery: render=%s", a.renderer.Mode)
	case '+', '=':
		a.orbit.Zoom(-keyZoom)
	case '-', '_':
		a.orbit.Zoom(keyZoom)
	case 'q', 'Q':
		a.quit = true
	}
}

// pollPointer drains pending pointer events without blocking.
func (a *App) pollPointer() {
	if a.ptr == nil {
		return
	}
	ch := a.ptr.Events()
	for {
		select {
		case ev := <-ch:
			a.handlePointer(ev)
		default:
			return
		}
	}
}

// handlePointer gives the panel and the info panel the first look at every
// event; whatever they leave goes to the 3D view.
//
// A mouse click selects on release unless the press was dragged to orbit the
// camera. Hover keeps picking until a mouse drag starts. A touch selects on
// contact, and a touch drag both orbits and hovers. A cancelled contact selects
// nothing and releases the pointer.
func (a *App) handlePointer(ev hal.PointerEvent) {
	in := &a.input

	if ev.Kind == hal.PointerCancel {
		a.panel.HandlePointer(ev)
		*in = inputState{}
		return
	}

	if ev.Kind == hal.PointerWheel {
		if _, consumed := a.panel.HandlePointer(ev); !consumed {
			a.orbit.Zoom(quarkgl.Scalar(-ev.WheelY * wheelZoom))
		}
		return
	}

	if ev.Kind == hal.PointerDown || in.captured || a.panel.Dragging() {
		act, consumed := a.panel.HandlePointer(ev)
		a.enqueue(act)
		switch {
		case ev.Kind == hal.PointerDown && consumed:
			in.captured = true
			a.pres.HideTooltip()
			return
		case ev.Kind == hal.PointerUp && in.captured:
			in.captured = false
			return
		case in.captured:
			return
		}
	}

	switch ev.Kind {
	case hal.PointerDown:
		if inside, onClose := a.hud.InfoHit(a.pres.Info, ev.X, ev.Y); inside {
			if onClose {
				a.pres.CloseInfo()
			}
			in.captured = true
			return
		}
		in.down = true
		in.dragged = false
		in.downX, in.downY = ev.X, ev.Y
		in.lastX, in.lastY = ev.X, ev.Y
		if ev.Touch {
			a.selectAt(ev.X, ev.Y)
		}

	case hal.PointerMove:
		if in.down {
			dx, dy := ev.X-in.lastX, ev.Y-in.lastY
			in.lastX, in.lastY = ev.X, ev.Y
			if absInt(ev.X-in.downX) > clickSlop || absInt(ev.Y-in.downY) > clickSlop {
				in.dragged = true
			}
			if in.dragged {
				a.orbit.Rotate(quarkgl.Scalar(-dx)*dragRotate, quarkgl.Scalar(-dy)*dragRotate)
				if !ev.Touch {
					a.pres.HideTooltip()
					return
				}
			}
		}
		if _, consumed := a.panel.HandlePointer(ev); consumed {
			a.pres.HideTooltip()
			return
		}
		if inside, _ := a.hud.InfoHit(a.pres.Info, ev.X, ev.Y); inside {
			a.pres.HideTooltip()
			return
		}
		a.hoverAt(ev.X, ev.Y)

	case hal.PointerUp:
		if in.down && !in.dragged && !ev.Touch {
			a.selectAt(ev.X, ev.Y)
		}
		in.down = false
		in.dragged = false
	}
}

func (a *App) hoverAt(x, y int) {
	name, hit := a.picker.Pick(a.Camera(), x, y, a.fb.Width(), a.fb.Height())
	a.pres.Hover(name, hit, x, y)
}

func (a *App) selectAt(x, y int) {
	name, hit := a.picker.Pick(a.Camera(), x, y, a.fb.Width(), a.fb.Height())
	a.pres.Select(name, hit)
	if a.metrics != nil {
		a.metrics.ObservePick(hit)
	}
	if hit {
		a.logf("orrery: selected %s", name)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
