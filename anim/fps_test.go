package anim

import (
	"testing"
	"time"
)

func TestFPSCounterWaitsForASecond(t *testing.T) {
	var c FPSCounter
	for i := 1; i < 30; i++ {
		if _, ok := c.Frame(time.Duration(i) * 30 * time.Millisecond); ok {
			t.Fatalf("report before one second at frame %d", i)
		}
	}
}

func TestFPSCounterRounds(t *testing.T) {
	var c FPSCounter
	// 45 frames reported at 1.3 s: 45*1000/1300 = 34.6
	for i := 1; i < 45; i++ {
		c.Frame(time.Duration(i) * 20 * time.Millisecond)
	}
	fps, ok := c.Frame(1300 * time.Millisecond)
	if !ok || fps != 35 {
		t.Fatalf("fps=%d ok=%v want 35", fps, ok)
	}
	if c.FPS() != 35 {
		t.Fatalf("FPS()=%d", c.FPS())
	}
}
