package hal

import "time"

// hostClock is either wall time since start or a manually stepped clock.
type hostClock struct {
	start   time.Time
	stepped bool
	now     time.Duration
}

func newWallClock() *hostClock {
	return &hostClock{start: time.Now()}
}

func newSteppedClock() *hostClock {
	return &hostClock{stepped: true}
}

func (c *hostClock) Now() time.Duration {
	if c.stepped {
		return c.now
	}
	return time.Since(c.start)
}

// step advances a stepped clock. Wall clocks ignore it.
func (c *hostClock) step(d time.Duration) {
	if c.stepped {
		c.now += d
	}
}
