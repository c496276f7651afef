package hal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz     int
	Ticks  uint64 // stop after N ticks (0 = until ctx is done)
	Width  int
	Height int

	// Unthrottled steps as fast as possible instead of waiting for a ticker.
	Unthrottled bool
	// WallClock uses real elapsed time instead of advancing 1/Hz per tick.
	WallClock bool

	LogOutput io.Writer

	// OnExit runs with the final HAL state after the last tick, on quit, and
	// when ctx is canceled.
	OnExit func(HAL) error
}

// RunHeadless runs the app without opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	clock := newSteppedClock()
	if cfg.WallClock {
		clock = newWallClock()
	}
	out := cfg.LogOutput
	if out == nil {
		out = os.Stdout
	}
	h := newHostHAL(cfg.Width, cfg.Height, clock, out)
	step := newApp(h)

	finish := func() error {
		if cfg.OnExit != nil {
			return cfg.OnExit(h)
		}
		return nil
	}
	canceled := func(err error) error {
		if ferr := finish(); ferr != nil {
			return errors.Join(err, ferr)
		}
		return err
	}

	var tickC <-chan time.Time
	if !cfg.Unthrottled {
		t := time.NewTicker(d)
		defer t.Stop()
		tickC = t.C
	}

	var tick uint64
	for {
		if tickC != nil {
			select {
			case <-ctx.Done():
				return canceled(ctx.Err())
			case <-tickC:
			}
		} else if err := ctx.Err(); err != nil {
			return canceled(err)
		}

		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrQuit) {
					return finish()
				}
				return err
			}
		}
		clock.step(d)
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return finish()
		}
	}
}
