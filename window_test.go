package softgui

import (
	"image"
	"testing"

	"github.com/agiangrant/softgui/internal/driver"
)

// runScript runs the window headlessly against a scripted event stream.
func runScript(t *testing.T, win *Window, script []driver.Event, trailing int) *image.RGBA {
	t.Helper()
	var last *image.RGBA
	hd := &driver.Headless{
		Width:         win.width,
		Height:        win.height,
		Script:        script,
		TrailingTicks: trailing,
		Frame: func(frame *image.RGBA) {
			last = image.NewRGBA(frame.Bounds())
			copy(last.Pix, frame.Pix)
		},
	}
	win.drv = hd
	if err := win.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return last
}

func click(x, y int) []driver.Event {
	return []driver.Event{
		{Type: driver.EventPointerDown, X: x, Y: y},
		{Type: driver.EventPointerUp, X: x, Y: y},
	}
}

func TestHeadlessClickThrough(t *testing.T) {
	win := newTestWindow(t)
	var pressed int
	win.NewButton("go").SetBounds(10, 10, 80, 24).SetCommand(func() { pressed++ })

	frame := runScript(t, win, click(20, 20), 0)
	if pressed != 1 {
		t.Fatalf("pressed = %d, want 1", pressed)
	}
	if frame == nil {
		t.Fatal("no frame painted")
	}
	// Background shows through outside the button.
	if got := frame.RGBAAt(395, 295); got != win.theme.Background {
		t.Errorf("background pixel = %v, want %v", got, win.theme.Background)
	}
	// The button face covers its geometry.
	if got := frame.RGBAAt(50, 22); got == win.theme.Background {
		t.Error("button area still shows the background")
	}
}

func TestHeadlessTypingIntoEntry(t *testing.T) {
	fixedMeasure(t)
	win := newTestWindow(t)
	e := win.NewEntry().SetBounds(10, 10, 150, 24)

	script := append(click(20, 20),
		driver.Event{Type: driver.EventChar, Char: 'h'},
		driver.Event{Type: driver.EventChar, Char: 'i'},
		driver.Event{Type: driver.EventKeyDown, Key: driver.KeyLeft},
		driver.Event{Type: driver.EventChar, Char: '!'},
	)
	runScript(t, win, script, 0)
	if e.Text() != "h!i" {
		t.Errorf("text = %q, want %q", e.Text(), "h!i")
	}
}

func TestHeadlessResizeRelayouts(t *testing.T) {
	win := newTestWindow(t)
	e := win.NewEntry()
	win.Pack(e, PackOptions{Side: SideTop, Fill: FillX})

	runScript(t, win, []driver.Event{
		{Type: driver.EventResize, Width: 500, Height: 400},
	}, 0)
	if got := e.Geometry().W; got != 480 {
		t.Errorf("width after resize event = %d, want 480", got)
	}
	if w, h := win.Size(); w != 500 || h != 400 {
		t.Errorf("window size = %dx%d, want 500x400", w, h)
	}
}

func TestHeadlessSliderDragSettles(t *testing.T) {
	win := newTestWindow(t)
	s := win.NewHSlider(0, 100).SetBounds(10, 10, 110, 20)

	script := []driver.Event{
		{Type: driver.EventPointerDown, X: 15, Y: 20},
		{Type: driver.EventPointerMove, X: 120, Y: 20},
		{Type: driver.EventPointerUp, X: 120, Y: 20},
	}
	runScript(t, win, script, 5)
	if s.Value() != 100 {
		t.Errorf("value = %d, want 100", s.Value())
	}
}

func TestHeadlessCaretBlinks(t *testing.T) {
	fixedMeasure(t)
	win := newTestWindow(t)
	e := win.NewEntry().SetBounds(10, 10, 150, 24)

	// 500ms blink at 60fps: 40 trailing ticks crosses one interval.
	runScript(t, win, click(20, 20), 40)
	if e.caretVisible {
		t.Error("caret should have toggled off after a blink interval")
	}
}

func TestNewRejectsDegenerateSize(t *testing.T) {
	if _, err := New(0, 100, "x"); err == nil {
		t.Error("zero width should error")
	}
	if _, err := New(100, -5, "x"); err == nil {
		t.Error("negative height should error")
	}
}

func TestPaintDegenerateBufferIsNoop(t *testing.T) {
	win := newTestWindow(t)
	win.NewLabel("x")
	app := (*windowApp)(win)
	app.Paint(image.NewRGBA(image.Rect(0, 0, 0, 0))) // must not panic
}

func TestPaintClearsDirtyFlags(t *testing.T) {
	win := newTestWindow(t)
	l := win.NewLabel("x")
	if !l.Dirty() {
		t.Fatal("new widget should start dirty")
	}
	app := (*windowApp)(win)
	app.Paint(image.NewRGBA(image.Rect(0, 0, 400, 300)))
	if l.Dirty() {
		t.Error("paint should clear the dirty flag")
	}
}

func TestCanvasPaintsPixels(t *testing.T) {
	win := newTestWindow(t)
	c := win.NewCanvas(2, 2).SetBounds(0, 0, 20, 20)
	c.Clear(win.theme.Accent)

	buf := image.NewRGBA(image.Rect(0, 0, 400, 300))
	(*windowApp)(win).Paint(buf)
	// The 2x2 buffer stretches across the 20x20 geometry.
	if got := buf.RGBAAt(10, 10); got != win.theme.Accent {
		t.Errorf("canvas pixel = %v, want accent %v", got, win.theme.Accent)
	}
}
