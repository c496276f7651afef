//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (p *hostPointer) poll() {
	var s pointerSnapshot
	s.X, s.Y = ebiten.CursorPosition()
	s.Pressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.Released = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	_, s.WheelY = ebiten.Wheel()

	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		s.Touches = append(s.Touches, touchPoint{ID: int(id), X: x, Y: y})
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		s.TouchStarted = append(s.TouchStarted, int(id))
	}
	for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
		s.TouchEnded = append(s.TouchEnded, int(id))
	}

	p.track.update(s, p.emit)
}
