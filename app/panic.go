package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orrery/hal"
	"orrery/ui"
)

// crash logs a recovered frame panic, paints it over the framebuffer and
// returns it as the run error.
func (a *App) crash(v any) error {
	stack := debug.Stack()
	a.logf("orrery: panic: %v", v)
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		a.logf("%s", line)
	}

	lines := []string{
		"Orrery crashed:",
		fmt.Sprintf("panic: %v", v),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	drawCrashScreen(a.fb, lines)

	return fmt.Errorf("orrery: panic: %v", v)
}

// drawCrashScreen wraps lines to the framebuffer width and draws as many as fit.
func drawCrashScreen(fb hal.Framebuffer, lines []string) {
	if fb == nil {
		return
	}
	fb.ClearRGB(255, 255, 255)

	d := ui.NewDisplay(fb)
	fg := color.RGBA{R: 0, G: 0, B: 0, A: 255}

	cellW := ui.TextWidth("0")
	if cellW <= 0 {
		_ = fb.Present()
		return
	}
	cols := (fb.Width() - 4) / cellW
	if cols <= 0 {
		cols = 1
	}

	y := 2
	maxH := fb.Height()
	for _, line := range lines {
		for len(line) > 0 {
			if y+ui.LineHeight > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			d.Text(2, y, chunk, fg)
			y += ui.LineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
