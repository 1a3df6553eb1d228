package softgui

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/agiangrant/softgui/internal/driver"
	"github.com/agiangrant/softgui/render"
)

// Window owns the widget tree and the event loop. It registers widgets in
// creation order, routes input to them, packs them, and repaints the whole
// tree each frame.
//
// Everything on a Window happens on the driver's event loop goroutine:
// input, ticks, painting, and every callback into application code. State
// mutated from callbacks is therefore safe without locks, and blocking in
// a callback blocks the whole UI.
type Window struct {
	width  int
	height int
	title  string
	theme  Theme

	widgets   []*Widget // registration order; later entries draw and hit-test on top
	packOrder []*Widget
	focused   *Widget // Entry receiving character input, nil when none
	captured  *Widget // widget holding the pointer between down and up

	drv      driver.Driver
	log      *slog.Logger
	lastTick time.Time
	closed   bool
}

// Option configures a Window at construction.
type Option func(*Window)

// WithTheme replaces the default theme.
func WithTheme(th Theme) Option {
	return func(win *Window) { win.theme = th }
}

// WithLogger replaces the default structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(win *Window) { win.log = log }
}

// New creates a window with the given client-area size and title. The
// native window does not open until Run.
func New(width, height int, title string, opts ...Option) (*Window, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("softgui: invalid window size %dx%d", width, height)
	}
	if err := render.Init(); err != nil {
		return nil, fmt.Errorf("softgui: %w", err)
	}
	win := &Window{
		width:  width,
		height: height,
		title:  title,
		theme:  DefaultTheme(),
		drv:    driver.NewEbiten(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(win)
	}
	return win, nil
}

// Size returns the client-area dimensions.
func (win *Window) Size() (int, int) { return win.width, win.height }

// Title returns the window title.
func (win *Window) Title() string { return win.title }

// Theme returns the active theme.
func (win *Window) Theme() Theme { return win.theme }

// SetTitle renames the window, live when the driver supports it.
func (win *Window) SetTitle(title string) {
	win.title = title
	if d, ok := win.drv.(interface{ SetTitle(string) }); ok {
		d.SetTitle(title)
	}
}

// Resize changes the client-area size and relayouts. Live when the driver
// supports it; a driver-originated resize arrives back as an event either
// way.
func (win *Window) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	win.width, win.height = width, height
	if d, ok := win.drv.(interface{ Resize(int, int) }); ok {
		d.Resize(width, height)
	}
	win.Layout()
}

// Focused returns the Entry holding keyboard focus, nil when none.
func (win *Window) Focused() *Widget { return win.focused }

// Widgets returns the registered widgets in registration order.
func (win *Window) Widgets() []*Widget {
	out := make([]*Widget, len(win.widgets))
	copy(out, win.widgets)
	return out
}

// ============================================================================
// Widget factories
// ============================================================================
//
// Widgets are created through the window so registration order, ownership,
// and themed font defaults are never the application's problem. The handle
// comes back for fluent configuration.

func (win *Window) register(w *Widget) *Widget {
	w.win = win
	w.fontName = win.theme.FontName
	w.fontSize = win.theme.FontSize
	win.widgets = append(win.widgets, w)
	return w
}

// NewLabel creates a static text widget.
func (win *Window) NewLabel(text string) *Widget {
	return win.register(newWidget(KindLabel).SetText(text))
}

// NewEntry creates a single-line text input.
func (win *Window) NewEntry() *Widget {
	return win.register(newWidget(KindEntry))
}

// NewButton creates a push button.
func (win *Window) NewButton(text string) *Widget {
	return win.register(newWidget(KindButton).SetText(text))
}

// NewCheckbox creates an independent toggle.
func (win *Window) NewCheckbox(text string) *Widget {
	return win.register(newWidget(KindCheckbox).SetText(text))
}

// NewRadioButton creates an exclusive toggle in the given group. Exclusion
// is scoped to the widget's immediate container.
func (win *Window) NewRadioButton(text string, group int) *Widget {
	w := newWidget(KindRadio)
	w.group = group
	return win.register(w.SetText(text))
}

// NewHSlider creates a horizontal slider over [min, max], starting at min.
func (win *Window) NewHSlider(min, max int) *Widget {
	return win.newSlider(KindHSlider, min, max)
}

// NewVSlider creates a vertical slider over [min, max], starting at min.
// Minimum is at the top.
func (win *Window) NewVSlider(min, max int) *Widget {
	return win.newSlider(KindVSlider, min, max)
}

func (win *Window) newSlider(kind WidgetKind, min, max int) *Widget {
	w := newWidget(kind)
	w.min, w.max = min, max
	w.value = min
	w.current = float32(min)
	w.target = float32(min)
	return win.register(w)
}

// NewListBox creates a single-selection list.
func (win *Window) NewListBox() *Widget {
	return win.register(newWidget(KindListBox))
}

// NewMultiListBox creates a list whose rows toggle independently.
func (win *Window) NewMultiListBox() *Widget {
	w := newWidget(KindMultiListBox)
	w.multiSel = make(map[int]bool)
	return win.register(w)
}

// NewComboBox creates a collapsed dropdown selector.
func (win *Window) NewComboBox() *Widget {
	return win.register(newWidget(KindComboBox))
}

// NewCanvas creates a raw pixel widget with a buffer of the given pixel
// dimensions, independent of the widget geometry.
func (win *Window) NewCanvas(pixelWidth, pixelHeight int) *Widget {
	w := newWidget(KindCanvas)
	w.canvas = render.NewPixmap(pixelWidth, pixelHeight)
	return win.register(w)
}

// NewFrame creates a grouping container. Frames scope radio groups and
// relay dirty marks; they draw nothing and claim no input.
func (win *Window) NewFrame() *Widget {
	return win.register(newWidget(KindFrame))
}

// ============================================================================
// Placement
// ============================================================================

// Pack adds the widget to the sequential flow layout and relayouts.
// Packing again with new options just updates them; flow position is
// fixed by first-pack order.
func (win *Window) Pack(w *Widget, opts PackOptions) {
	w.packOpts = opts
	if !w.packed {
		w.packed = true
		win.packOrder = append(win.packOrder, w)
	}
	win.Layout()
}

// Place removes the widget from the flow and pins it at an explicit
// geometry.
func (win *Window) Place(w *Widget, x, y, width, height int) {
	if w.packed {
		w.packed = false
		for i, p := range win.packOrder {
			if p == w {
				win.packOrder = append(win.packOrder[:i], win.packOrder[i+1:]...)
				break
			}
		}
	}
	w.SetBounds(x, y, width, height)
	win.Layout()
}

// ============================================================================
// Lifecycle
// ============================================================================

// Run opens the native window and blocks on the event loop until the
// window closes.
func (win *Window) Run() error {
	win.log.Debug("window starting",
		"title", win.title, "width", win.width, "height", win.height)
	win.Layout()
	err := win.drv.Run(driver.Config{
		Width:  win.width,
		Height: win.height,
		Title:  win.title,
		FPS:    win.theme.FPS,
	}, (*windowApp)(win))
	win.Close()
	if err != nil {
		return fmt.Errorf("softgui: %w", err)
	}
	return nil
}

// Close releases the window's share of the toolkit's font resources.
// Idempotent; called automatically when Run returns.
func (win *Window) Close() {
	if win.closed {
		return
	}
	win.closed = true
	render.Shutdown()
	win.log.Debug("window closed", "title", win.title)
}

// ============================================================================
// Event loop
// ============================================================================

// windowApp adapts Window to the driver's App without exporting the
// driver types on the public surface.
type windowApp Window

func (a *windowApp) win() *Window { return (*Window)(a) }

func (a *windowApp) HandleEvent(ev driver.Event) {
	win := a.win()
	switch ev.Type {
	case driver.EventPointerDown:
		win.pointerDown(ev.X, ev.Y)
	case driver.EventPointerMove:
		win.pointerMove(ev.X, ev.Y)
	case driver.EventPointerUp:
		win.pointerUp(ev.X, ev.Y)
	case driver.EventChar:
		if win.focused != nil {
			win.focused.handleKey(ev.Char)
		}
	case driver.EventKeyDown:
		win.keyDown(ev.Key)
	case driver.EventResize:
		win.width, win.height = ev.Width, ev.Height
		win.Layout()
	case driver.EventClose:
		win.Close()
	}
}

// pointerDown hit-tests in reverse registration order so the most
// recently created widget wins overlaps, captures the hit widget for the
// rest of the drag, moves Entry focus, and dispatches the click.
func (win *Window) pointerDown(x, y int) {
	var target *Widget
	for i := len(win.widgets) - 1; i >= 0; i-- {
		w := win.widgets[i]
		if !w.visible || w.kind == KindFrame {
			continue
		}
		if w.hitBounds().Contains(x, y) {
			target = w
			break
		}
	}

	// Focus follows the click: an Entry takes it, anything else (including
	// empty space) drops it.
	if win.focused != nil && win.focused != target {
		win.focused.focused = false
		win.focused.MarkDirty()
		win.focused = nil
	}
	if target == nil {
		return
	}
	if target.kind == KindEntry {
		target.focused = true
		win.focused = target
	}

	win.captured = target
	g := target.geom
	target.handleClick(x-g.X, y-g.Y)
}

// pointerMove feeds drags to the captured widget. Moves without a capture
// are ignored; the toolkit has no hover state outside an expanded
// ComboBox drag.
func (win *Window) pointerMove(x, y int) {
	w := win.captured
	if w == nil {
		return
	}
	g := w.geom
	switch w.kind {
	case KindHSlider, KindVSlider:
		if w.dragging {
			w.retargetFromPointer(x-g.X, y-g.Y)
		}
	case KindComboBox:
		w.comboHover(y - g.Y)
	}
}

// pointerUp ends the capture. Sliders snap to the drag's final target so
// the committed value matches where the pointer stopped; an expanded
// ComboBox commits or keeps its dropdown per release position.
func (win *Window) pointerUp(x, y int) {
	w := win.captured
	if w == nil {
		return
	}
	win.captured = nil
	switch w.kind {
	case KindHSlider, KindVSlider:
		w.snapSlider()
	case KindComboBox:
		w.comboRelease(y - w.geom.Y)
	}
}

// keyDown routes caret navigation to the focused Entry.
func (win *Window) keyDown(key driver.Key) {
	w := win.focused
	if w == nil {
		return
	}
	switch key {
	case driver.KeyLeft:
		w.caretLeft()
	case driver.KeyRight:
		w.caretRight()
	case driver.KeyHome:
		w.SetCaret(0)
	case driver.KeyEnd:
		w.SetCaret(len([]rune(w.text)))
	}
}

// Tick advances slider easing and the caret blink. dt comes from wall
// time so animation speed survives dropped frames.
func (a *windowApp) Tick(now time.Time) {
	win := a.win()
	var dt float32
	if !win.lastTick.IsZero() {
		dt = float32(now.Sub(win.lastTick).Seconds())
	}
	win.lastTick = now

	blink := float32(win.theme.BlinkInterval.Seconds())
	for _, w := range win.widgets {
		switch w.kind {
		case KindHSlider, KindVSlider:
			w.stepSlider(win.theme.EaseFactor)
		case KindEntry:
			w.blinkTick(dt, blink)
		}
	}
}

// Paint renders the full tree into a pooled off-screen surface and
// presents it to dst in one copy. Dirty flags are advisory; every frame
// repaints everything, which is what keeps overlap and z-order trivially
// correct.
func (a *windowApp) Paint(dst *image.RGBA) {
	win := a.win()
	b := dst.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return
	}
	s := render.Acquire(b.Dx(), b.Dy())
	defer render.Release(s)

	s.Fill(win.theme.Background)
	for _, w := range win.widgets {
		if !w.visible {
			continue
		}
		win.drawWidget(s, w)
		w.dirty = false
	}
	s.CopyTo(dst)
}
