package hal

import (
	"io"
	"os"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Title  string
	Width  int // framebuffer size
	Height int
	Scale  int // initial window size multiplier
	TPS    int

	LogOutput io.Writer // defaults to stdout
}

func (c WindowConfig) withDefaults() WindowConfig {
	if c.Title == "" {
		c.Title = "Orrery"
	}
	if c.Scale <= 0 {
		c.Scale = 1
	}
	if c.TPS <= 0 {
		c.TPS = 60
	}
	return c
}

func (c WindowConfig) logOut() io.Writer {
	if c.LogOutput != nil {
		return c.LogOutput
	}
	return os.Stdout
}
