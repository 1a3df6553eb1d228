package driver

import (
	"image"
	"time"
)

// Headless drives an App without a native window: it replays a scripted
// event stream, ticking and painting between events. Used by tests and by
// hosts that render off-screen.
type Headless struct {
	Width  int
	Height int
	Script []Event

	// TicksPerEvent inserts this many timer ticks after each scripted
	// event (default 1).
	TicksPerEvent int

	// TrailingTicks runs the timer after the script drains, letting
	// animations settle (default 0).
	TrailingTicks int

	// Frame receives the painted buffer after every tick when set.
	Frame func(*image.RGBA)
}

// Run replays the script synchronously and returns when it drains.
func (d *Headless) Run(cfg Config, app App) error {
	width, height := d.Width, d.Height
	if width == 0 {
		width = cfg.Width
	}
	if height == 0 {
		height = cfg.Height
	}
	fps := cfg.FPS
	if fps <= 0 {
		fps = 60
	}
	step := time.Second / time.Duration(fps)
	ticks := d.TicksPerEvent
	if ticks <= 0 {
		ticks = 1
	}

	buf := image.NewRGBA(image.Rect(0, 0, width, height))
	now := time.Now()

	runTicks := func(n int) {
		for i := 0; i < n; i++ {
			now = now.Add(step)
			app.Tick(now)
			app.Paint(buf)
			if d.Frame != nil {
				d.Frame(buf)
			}
		}
	}

	for _, ev := range d.Script {
		if ev.Type == EventClose {
			return nil
		}
		app.HandleEvent(ev)
		runTicks(ticks)
	}
	runTicks(d.TrailingTicks)
	return nil
}
