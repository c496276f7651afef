package hal

import (
	"errors"
	"time"
)

// ErrQuit is returned by an app step to end the run cleanly.
var ErrQuit = errors.New("quit")

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier. Printable keys arrive as runes.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyTab
)

// KeyEvent is a keyboard event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// PointerKind classifies pointer events.
type PointerKind uint8

const (
	PointerMove PointerKind = iota + 1
	PointerDown
	PointerUp
	PointerWheel
	// PointerCancel ends a touch contact without a release, e.g. when a second
	// finger lands. Nothing should be selected.
	PointerCancel
)

// PointerEvent carries framebuffer pixel coordinates.
//
// Touch input is reduced to a single contact: a touch start is a PointerDown,
// a drag is a PointerMove and a lift is a PointerUp, all with Touch set. A
// second finger cancels the contact with a PointerCancel.
type PointerEvent struct {
	Kind   PointerKind
	X, Y   int
	WheelY float64
	Touch  bool
}

// Pointer provides mouse and touch events.
type Pointer interface {
	Events() <-chan PointerEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
	Pointer() Pointer
}

// Clock is a monotonic time source measured from the start of the run.
type Clock interface {
	Now() time.Duration
}

// HAL is the only contact point between the app and the host.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Clock() Clock
}
