// Package anim drives the per-frame update: timing, the FPS counter, planet
// motion and star twinkle.
package anim

import (
	"math"
	"time"

	"orrery/quarkgl"
	"orrery/world"
)

const (
	// orbitScale converts a current speed into radians per second of revolution.
	orbitScale = 100
	// spinRate is the body spin in radians per second.
	spinRate = 2

	twinkleGroups = 10
)

// Frame summarizes one Step.
type Frame struct {
	Delta      float64 // seconds since the previous step
	FPS        int
	FPSUpdated bool
	Advanced   bool
}

// Loop is stepped once per frame by the host.
type Loop struct {
	world  *world.World
	state  *world.State
	render func()

	OnFPS func(fps int)

	fps     FPSCounter
	last    time.Duration
	started bool
}

// New returns a loop that calls render at the end of every step.
func New(w *world.World, st *world.State, render func()) *Loop {
	return &Loop{world: w, state: st, render: render}
}

// Step runs one frame at monotonic time now. Rendering happens in every mode;
// only motion and twinkle stop while paused.
func (l *Loop) Step(now time.Duration) Frame {
	var f Frame
	if l.started && now > l.last {
		f.Delta = (now - l.last).Seconds()
	}
	l.started = true
	l.last = now

	f.FPS, f.FPSUpdated = l.fps.Frame(now)
	if f.FPSUpdated && l.OnFPS != nil {
		l.OnFPS(f.FPS)
	}

	if !l.state.Paused {
		Advance(l.world, f.Delta)
		Twinkle(l.world.Stars, float64(now)/float64(time.Millisecond))
		f.Advanced = true
	}

	if l.render != nil {
		l.render()
	}
	return f
}

// Advance revolves every planet by its current speed and spins its body.
func Advance(w *world.World, delta float64) {
	for _, p := range w.Planets {
		p.Pivot.RotationY += quarkgl.Scalar(p.CurrentSpeed() * delta * orbitScale)
		p.Body.RotationY += quarkgl.Scalar(delta * spinRate)
	}
}

// Twinkle updates the star group selected by the current 100 ms slot.
func Twinkle(stars []world.Star, nowMs float64) {
	group := int(math.Floor(nowMs/100)) % twinkleGroups
	if group < 0 {
		group += twinkleGroups
	}
	for i := group; i < len(stars); i += twinkleGroups {
		stars[i].Opacity = float32(0.5 + 0.3*math.Sin(nowMs*0.01+float64(i)))
	}
}
