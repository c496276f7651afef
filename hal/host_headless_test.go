package hal

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"testing"
	"time"
)

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	var (
		steps int
		times []time.Duration
		out   bytes.Buffer
	)
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		h.Logger().WriteLineString("hello")
		return func() error {
			steps++
			times = append(times, h.Clock().Now())
			return nil
		}
	}, HeadlessConfig{Hz: 50, Ticks: 3, Unthrottled: true, Width: 8, Height: 4, LogOutput: &out})
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps=%d want 3", steps)
	}
	want := []time.Duration{0, 20 * time.Millisecond, 40 * time.Millisecond}
	for i := range want {
		if times[i] != want[i] {
			t.Fatalf("clock at step %d = %v want %v", i, times[i], want[i])
		}
	}
	if out.String() != "hello\n" {
		t.Fatalf("log=%q", out.String())
	}
}

func TestRunHeadlessQuitRunsOnExit(t *testing.T) {
	exited := false
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		return func() error { return ErrQuit }
	}, HeadlessConfig{Unthrottled: true, LogOutput: &bytes.Buffer{}, OnExit: func(HAL) error {
		exited = true
		return nil
	}})
	if err != nil || !exited {
		t.Fatalf("err=%v exited=%v", err, exited)
	}
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{
		Unthrottled: true,
		LogOutput:   &out,
		OnExit: func(h HAL) error {
			h.Logger().WriteLineString("bye")
			return nil
		},
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
	if out.String() != "bye\n" {
		t.Fatalf("OnExit output on cancel: %q", out.String())
	}
}

func TestRunHeadlessCanceledReportsExitError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	boom := errors.New("boom")
	err := RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{
		Unthrottled: true,
		LogOutput:   &bytes.Buffer{},
		OnExit:      func(HAL) error { return boom },
	})
	if !errors.Is(err, context.Canceled) || !errors.Is(err, boom) {
		t.Fatalf("err=%v want both cancel and exit errors", err)
	}
}

func TestWritePNGRoundTrip(t *testing.T) {
	fb := newHostFramebuffer(4, 2)
	fb.ClearRGB(0xFF, 0, 0)

	var buf bytes.Buffer
	if err := WritePNG(&buf, fb); err != nil {
		t.Fatalf("WritePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	r, g, b, a := img.At(3, 1).RGBA()
	if r>>8 != 0xFF || g != 0 || b != 0 || a>>8 != 0xFF {
		t.Fatalf("pixel=(%x,%x,%x,%x)", r, g, b, a)
	}
}
