// Package driver is the toolkit's boundary with the host platform. A
// Driver creates one native window, delivers a serialized stream of input
// events to an App on a single goroutine, ticks it at the configured
// rate, and hands it the visible frame buffer to paint.
package driver

import (
	"image"
	"time"
)

// App is the toolkit-side consumer of a Driver. All three methods are
// called from the driver's event loop goroutine, never concurrently.
type App interface {
	// HandleEvent processes one input event.
	HandleEvent(ev Event)

	// Tick advances time-driven state (animations, caret blink).
	Tick(now time.Time)

	// Paint renders the current frame into dst, which is sized to the
	// window's client area.
	Paint(dst *image.RGBA)
}

// Config describes the native window to create.
type Config struct {
	Width  int
	Height int
	Title  string
	FPS    int
}

// Driver runs a native window around an App. Run blocks until the window
// closes or the platform fails.
type Driver interface {
	Run(cfg Config, app App) error
}
