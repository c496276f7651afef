package hal

import "testing"

func collect(tr *pointerTracker, s pointerSnapshot) []PointerEvent {
	var out []PointerEvent
	tr.update(s, func(ev PointerEvent) { out = append(out, ev) })
	return out
}

func TestPointerTrackerMouse(t *testing.T) {
	var tr pointerTracker
	evs := collect(&tr, pointerSnapshot{X: 10, Y: 20})
	if len(evs) != 1 || evs[0].Kind != PointerMove {
		t.Fatalf("first sample: %+v", evs)
	}
	if evs := collect(&tr, pointerSnapshot{X: 10, Y: 20}); len(evs) != 0 {
		t.Fatalf("unchanged sample emitted %+v", evs)
	}
	evs = collect(&tr, pointerSnapshot{X: 11, Y: 20, Pressed: true})
	if len(evs) != 2 || evs[0].Kind != PointerMove || evs[1].Kind != PointerDown || evs[1].X != 11 {
		t.Fatalf("press: %+v", evs)
	}
	evs = collect(&tr, pointerSnapshot{X: 11, Y: 20, Released: true, WheelY: -1})
	if len(evs) != 2 || evs[0].Kind != PointerUp || evs[1].Kind != PointerWheel || evs[1].WheelY != -1 {
		t.Fatalf("release: %+v", evs)
	}
}

func TestPointerTrackerSingleTouch(t *testing.T) {
	var tr pointerTracker
	tr.mouseSeen = true

	evs := collect(&tr, pointerSnapshot{Touches: []touchPoint{{ID: 3, X: 5, Y: 6}}, TouchStarted: []int{3}})
	if len(evs) != 1 || evs[0].Kind != PointerDown || !evs[0].Touch || evs[0].X != 5 {
		t.Fatalf("touch start: %+v", evs)
	}
	evs = collect(&tr, pointerSnapshot{Touches: []touchPoint{{ID: 3, X: 7, Y: 6}}})
	if len(evs) != 1 || evs[0].Kind != PointerMove || evs[0].X != 7 {
		t.Fatalf("touch move: %+v", evs)
	}
	evs = collect(&tr, pointerSnapshot{TouchEnded: []int{3}})
	if len(evs) != 1 || evs[0].Kind != PointerUp || !evs[0].Touch {
		t.Fatalf("touch end: %+v", evs)
	}
}

func TestPointerTrackerIgnoresMultiTouch(t *testing.T) {
	var tr pointerTracker
	tr.mouseSeen = true

	two := []touchPoint{{ID: 1, X: 1, Y: 1}, {ID: 2, X: 9, Y: 9}}
	if evs := collect(&tr, pointerSnapshot{Touches: two, TouchStarted: []int{1, 2}}); len(evs) != 0 {
		t.Fatalf("two-finger start emitted %+v", evs)
	}

	collect(&tr, pointerSnapshot{Touches: two[:1], TouchStarted: []int{1}})
	evs := collect(&tr, pointerSnapshot{Touches: two, TouchStarted: []int{2}})
	if len(evs) != 1 || evs[0].Kind != PointerCancel || !evs[0].Touch || evs[0].X != 1 {
		t.Fatalf("second finger: %+v want one cancel at the tracked contact", evs)
	}
	if tr.touchActive {
		t.Fatalf("tracking survived a second finger")
	}

	if evs := collect(&tr, pointerSnapshot{Touches: two[1:], TouchEnded: []int{1}}); len(evs) != 0 {
		t.Fatalf("lifting the first finger emitted %+v", evs)
	}
	if evs := collect(&tr, pointerSnapshot{TouchEnded: []int{2}}); len(evs) != 0 {
		t.Fatalf("lifting the last finger emitted %+v", evs)
	}
}
