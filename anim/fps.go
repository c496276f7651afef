package anim

import (
	"math"
	"time"
)

// FPSCounter reports frames per second at most once per elapsed second.
type FPSCounter struct {
	frames int
	last   time.Duration
	fps    int
}

// Frame counts one frame at monotonic time now. It returns the latest value and
// whether it was recomputed on this call.
func (c *FPSCounter) Frame(now time.Duration) (int, bool) {
	c.frames++
	elapsed := now - c.last
	if elapsed < time.Second {
		return c.fps, false
	}
	ms := float64(elapsed) / float64(time.Millisecond)
	c.fps = int(math.Round(float64(c.frames) * 1000 / ms))
	c.frames = 0
	c.last = now
	return c.fps, true
}

// FPS returns the last reported value.
func (c *FPSCounter) FPS() int { return c.fps }
