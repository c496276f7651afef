package hal

type hostPointer struct {
	ch    chan PointerEvent
	track pointerTracker
}

func newHostPointer() *hostPointer {
	return &hostPointer{ch: make(chan PointerEvent, 64)}
}

func (p *hostPointer) Events() <-chan PointerEvent { return p.ch }

func (p *hostPointer) emit(ev PointerEvent) {
	select {
	case p.ch <- ev:
	default:
	}
}

// touchPoint is one active contact.
type touchPoint struct {
	ID   int
	X, Y int
}

// pointerSnapshot is the raw input state sampled once per tick.
type pointerSnapshot struct {
	X, Y     int
	Pressed  bool // left button went down this tick
	Released bool // left button went up this tick
	WheelY   float64

	Touches      []touchPoint
	TouchStarted []int
	TouchEnded   []int
}

// pointerTracker turns snapshots into events. Only a lone touch contact is
// followed; a second finger cancels tracking until all contacts lift.
type pointerTracker struct {
	mouseSeen    bool
	lastX, lastY int

	touchID     int
	touchActive bool
	touchX      int
	touchY      int
}

func (t *pointerTracker) update(s pointerSnapshot, emit func(PointerEvent)) {
	if len(s.Touches) == 0 && !t.touchActive {
		if !t.mouseSeen || s.X != t.lastX || s.Y != t.lastY {
			t.mouseSeen = true
			t.lastX, t.lastY = s.X, s.Y
			emit(PointerEvent{Kind: PointerMove, X: s.X, Y: s.Y})
		}
		if s.Pressed {
			emit(PointerEvent{Kind: PointerDown, X: s.X, Y: s.Y})
		}
		if s.Released {
			emit(PointerEvent{Kind: PointerUp, X: s.X, Y: s.Y})
		}
		if s.WheelY != 0 {
			emit(PointerEvent{Kind: PointerWheel, X: s.X, Y: s.Y, WheelY: s.WheelY})
		}
	}

	if t.touchActive {
		if contains(s.TouchEnded, t.touchID) {
			t.touchActive = false
			emit(PointerEvent{Kind: PointerUp, X: t.touchX, Y: t.touchY, Touch: true})
			return
		}
		if len(s.Touches) > 1 {
			t.touchActive = false
			emit(PointerEvent{Kind: PointerCancel, X: t.touchX, Y: t.touchY, Touch: true})
			return
		}
		for _, tp := range s.Touches {
			if tp.ID == t.touchID && (tp.X != t.touchX || tp.Y != t.touchY) {
				t.touchX, t.touchY = tp.X, tp.Y
				emit(PointerEvent{Kind: PointerMove, X: tp.X, Y: tp.Y, Touch: true})
			}
		}
		return
	}

	if len(s.Touches) == 1 && contains(s.TouchStarted, s.Touches[0].ID) {
		tp := s.Touches[0]
		t.touchActive = true
		t.touchID = tp.ID
		t.touchX, t.touchY = tp.X, tp.Y
		emit(PointerEvent{Kind: PointerDown, X: tp.X, Y: tp.Y, Touch: true})
	}
}

func contains(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
