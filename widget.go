// Package softgui is a retained-mode desktop widget toolkit. A Window owns
// a flat list of widgets, routes pointer and keyboard input to them, packs
// them with a sequential box layout, and repaints the whole tree into an
// off-screen surface on a frame timer before presenting it in one blit.
//
// The widget set is a closed tagged variant: every widget is a *Widget
// carrying a WidgetKind, and drawing and input dispatch switch over the
// kind. Application code holds *Widget handles returned by the Window's
// factory methods and wires behavior through callback slots.
package softgui

import (
	"github.com/agiangrant/softgui/render"
)

// WidgetKind identifies the concrete widget variant.
type WidgetKind string

const (
	KindLabel        WidgetKind = "label"
	KindEntry        WidgetKind = "entry"
	KindButton       WidgetKind = "button"
	KindCheckbox     WidgetKind = "checkbox"
	KindRadio        WidgetKind = "radio"
	KindHSlider      WidgetKind = "hslider"
	KindVSlider      WidgetKind = "vslider"
	KindListBox      WidgetKind = "listbox"
	KindMultiListBox WidgetKind = "multilistbox"
	KindComboBox     WidgetKind = "combobox"
	KindCanvas       WidgetKind = "canvas"
	KindFrame        WidgetKind = "frame"
)

// ClickHandler is invoked after a widget has processed a pointer click.
type ClickHandler func(*Widget)

// KeyHandler is invoked when a non-Entry widget would receive a character.
type KeyHandler func(*Widget, rune)

// FocusHandler is invoked when an Entry gains keyboard focus.
type FocusHandler func(*Widget)

// ChangeHandler is invoked when a widget's value state changes.
type ChangeHandler func(*Widget)

// Widget is a positioned, drawable, optionally interactive UI unit.
//
// All widget state is owned by the event loop goroutine; the toolkit is
// single-threaded by construction and widgets carry no locks. The parent
// back-reference is structural only: it scopes radio groups and carries
// dirty-marks upward, never ownership. The Window that created a widget
// owns its lifetime.
type Widget struct {
	kind    WidgetKind
	geom    Geometry
	visible bool
	text    string
	dirty   bool

	parent *Widget // owning Frame, nil for top-level widgets
	win    *Window

	fontName string
	fontSize int

	onClick  ClickHandler
	onKey    KeyHandler
	onFocus  FocusHandler
	onChange ChangeHandler

	packed   bool
	packOpts PackOptions

	// Entry state
	focused      bool
	caret        int // rune index in [0, len(text runes)]
	caretVisible bool
	blinkElapsed float32 // seconds since the caret last toggled

	// Button state
	command func()

	// Checkbox / RadioButton state
	checked bool
	group   int

	// Slider state
	min, max int
	value    int
	current  float32 // animated position, in value units
	target   float32 // pointer-driven goal, in value units
	dragging bool

	// ListBox / MultiListBox / ComboBox state
	items      []string
	selected   int // -1 = none
	itemHeight int
	multiSel   map[int]bool
	expanded   bool
	hoverIndex int // option under the pointer while an expanded ComboBox drags

	// Canvas state
	canvas *render.Pixmap

	// Frame state
	children []*Widget
}

func newWidget(kind WidgetKind) *Widget {
	return &Widget{
		kind:         kind,
		geom:         Geometry{W: 100, H: 24},
		visible:      true,
		dirty:        true,
		fontSize:     12,
		selected:     -1,
		hoverIndex:   -1,
		itemHeight:   defaultItemHeight,
		caretVisible: true,
	}
}

// Kind returns the widget's variant tag.
func (w *Widget) Kind() WidgetKind { return w.kind }

// Geometry returns the widget's current placement.
func (w *Widget) Geometry() Geometry { return w.geom }

// SetBounds assigns an explicit geometry. Widgets that are packed will be
// repositioned by the next layout pass; only their size survives.
func (w *Widget) SetBounds(x, y, width, height int) *Widget {
	w.geom = Geometry{X: x, Y: y, W: width, H: height}
	w.MarkDirty()
	return w
}

// SetSize assigns an explicit size, keeping the current position.
func (w *Widget) SetSize(width, height int) *Widget {
	w.geom.W, w.geom.H = width, height
	w.MarkDirty()
	return w
}

// Visible reports whether the widget is drawn and hit-tested.
func (w *Widget) Visible() bool { return w.visible }

// SetVisible toggles drawing and hit-testing of the widget.
func (w *Widget) SetVisible(visible bool) *Widget {
	if w.visible != visible {
		w.visible = visible
		w.MarkDirty()
	}
	return w
}

// Text returns the widget's display text.
func (w *Widget) Text() string { return w.text }

// SetText replaces the display text. For an Entry the caret is clamped to
// the new text length.
func (w *Widget) SetText(text string) *Widget {
	w.text = text
	if n := len([]rune(text)); w.caret > n {
		w.caret = n
	}
	w.MarkDirty()
	return w
}

// SetFont overrides the themed font name and size for this widget.
func (w *Widget) SetFont(name string, size int) *Widget {
	w.fontName = name
	w.fontSize = size
	w.MarkDirty()
	return w
}

// OnClick registers the generic click callback, fired after the widget's
// own click handling.
func (w *Widget) OnClick(fn ClickHandler) *Widget {
	w.onClick = fn
	return w
}

// OnKey registers the generic key callback. Entries consume characters
// themselves; other focused-widget input lands here.
func (w *Widget) OnKey(fn KeyHandler) *Widget {
	w.onKey = fn
	return w
}

// OnFocus registers the focus callback, fired when an Entry gains focus.
func (w *Widget) OnFocus(fn FocusHandler) *Widget {
	w.onFocus = fn
	return w
}

// OnChange registers the change callback, fired when the widget's value
// state mutates (text edits, toggles, selections, slider value crossings).
func (w *Widget) OnChange(fn ChangeHandler) *Widget {
	w.onChange = fn
	return w
}

// MarkDirty flags the widget as visually stale and propagates the mark to
// its owning container. Painting is always full-tree, so the flag is an
// advisory hint, not a correctness mechanism.
func (w *Widget) MarkDirty() {
	w.dirty = true
	if w.parent != nil {
		w.parent.MarkDirty()
	}
}

// Dirty reports whether the widget was marked since the last paint.
func (w *Widget) Dirty() bool { return w.dirty }

func (w *Widget) fireChange() {
	if w.onChange != nil {
		w.onChange(w)
	}
}

// hitBounds returns the rectangle used for hit-testing. An expanded
// ComboBox extends past its geometry to cover the dropdown list.
func (w *Widget) hitBounds() Geometry {
	g := w.geom
	if w.kind == KindComboBox && w.expanded {
		g.H += len(w.items) * w.itemHeight
	}
	return g
}

// handleClick dispatches a pointer-down at widget-local coordinates.
// Each variant updates its own state first; the generic click callback
// fires last.
func (w *Widget) handleClick(localX, localY int) {
	switch w.kind {
	case KindEntry:
		w.entryClick(localX)
	case KindButton:
		if w.command != nil {
			w.command()
		}
	case KindCheckbox:
		w.checked = !w.checked
		w.MarkDirty()
		w.fireChange()
	case KindRadio:
		w.selectRadio()
	case KindHSlider, KindVSlider:
		w.dragging = true
		w.retargetFromPointer(localX, localY)
	case KindListBox:
		w.listClick(localY)
	case KindMultiListBox:
		w.multiListClick(localY)
	case KindComboBox:
		w.comboClick(localY)
	}
	if w.onClick != nil {
		w.onClick(w)
	}
}

// handleKey delivers a typed character. Entries edit their text; every
// other kind forwards to the generic key callback.
func (w *Widget) handleKey(ch rune) {
	if w.kind == KindEntry {
		w.entryKey(ch)
		return
	}
	if w.onKey != nil {
		w.onKey(w, ch)
	}
}

// measureText is the text measurement hook used for caret placement and
// drawing. Swappable so widget logic stays testable without a font stack.
var measureText = func(text, fontName string, size int) int {
	return render.MeasureText(text, fontName, size)
}

// SetMeasureTextFunc replaces the text measurement function. Intended for
// tests and for hosts that bring their own font metrics.
func SetMeasureTextFunc(fn func(text, fontName string, size int) int) {
	measureText = fn
}
