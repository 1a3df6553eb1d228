package softgui

import (
	"testing"
)

// fixedMeasure makes text width a deterministic 7px per rune so caret and
// hit tests never depend on real font metrics.
func fixedMeasure(t *testing.T) {
	t.Helper()
	prev := measureText
	measureText = func(text, fontName string, size int) int {
		return 7 * len([]rune(text))
	}
	t.Cleanup(func() { measureText = prev })
}

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	win, err := New(400, 300, "test")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(win.Close)
	return win
}

func TestFactoryDefaults(t *testing.T) {
	win := newTestWindow(t)

	tests := []struct {
		name   string
		widget *Widget
		kind   WidgetKind
	}{
		{"Label", win.NewLabel("hi"), KindLabel},
		{"Entry", win.NewEntry(), KindEntry},
		{"Button", win.NewButton("ok"), KindButton},
		{"Checkbox", win.NewCheckbox("c"), KindCheckbox},
		{"RadioButton", win.NewRadioButton("r", 1), KindRadio},
		{"HSlider", win.NewHSlider(0, 10), KindHSlider},
		{"VSlider", win.NewVSlider(0, 10), KindVSlider},
		{"ListBox", win.NewListBox(), KindListBox},
		{"MultiListBox", win.NewMultiListBox(), KindMultiListBox},
		{"ComboBox", win.NewComboBox(), KindComboBox},
		{"Canvas", win.NewCanvas(32, 32), KindCanvas},
		{"Frame", win.NewFrame(), KindFrame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.widget.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", tt.widget.Kind(), tt.kind)
			}
			if !tt.widget.Visible() {
				t.Error("new widget should be visible")
			}
			g := tt.widget.Geometry()
			if g.W != 100 || g.H != 24 {
				t.Errorf("default geometry = %dx%d, want 100x24", g.W, g.H)
			}
		})
	}

	if got := len(win.Widgets()); got != len(tests) {
		t.Errorf("registered %d widgets, want %d", got, len(tests))
	}
}

func TestHitTestTopmostWins(t *testing.T) {
	win := newTestWindow(t)

	var clicked []string
	a := win.NewButton("a").SetBounds(10, 10, 100, 50)
	a.OnClick(func(*Widget) { clicked = append(clicked, "a") })
	b := win.NewButton("b").SetBounds(50, 30, 100, 50)
	b.OnClick(func(*Widget) { clicked = append(clicked, "b") })

	// (60, 40) is inside both; b registered later so it is on top.
	win.pointerDown(60, 40)
	win.pointerUp(60, 40)
	if len(clicked) != 1 || clicked[0] != "b" {
		t.Fatalf("clicked = %v, want [b]", clicked)
	}

	// (20, 20) only hits a.
	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	if len(clicked) != 2 || clicked[1] != "a" {
		t.Fatalf("clicked = %v, want [b a]", clicked)
	}
}

func TestHitTestSkipsInvisible(t *testing.T) {
	win := newTestWindow(t)

	var hits int
	under := win.NewButton("under").SetBounds(10, 10, 80, 30)
	under.OnClick(func(*Widget) { hits++ })
	top := win.NewButton("top").SetBounds(10, 10, 80, 30)
	top.OnClick(func(*Widget) { t.Error("hidden widget received click") })
	top.SetVisible(false)

	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	if hits != 1 {
		t.Errorf("visible widget hits = %d, want 1", hits)
	}
}

func TestHitTestEdgesExclusive(t *testing.T) {
	g := Geometry{X: 10, Y: 10, W: 20, H: 20}
	tests := []struct {
		name string
		x, y int
		in   bool
	}{
		{"top-left corner", 10, 10, true},
		{"interior", 19, 19, true},
		{"right edge", 30, 15, false},
		{"bottom edge", 15, 30, false},
		{"just inside right", 29, 15, true},
		{"outside left", 9, 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Contains(tt.x, tt.y); got != tt.in {
				t.Errorf("Contains(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.in)
			}
		})
	}
}

func TestEntryFocusFollowsClick(t *testing.T) {
	fixedMeasure(t)
	win := newTestWindow(t)

	e1 := win.NewEntry().SetBounds(10, 10, 100, 24)
	e2 := win.NewEntry().SetBounds(10, 50, 100, 24)
	btn := win.NewButton("b").SetBounds(10, 90, 100, 24)
	_ = btn

	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	if win.Focused() != e1 || !e1.Focused() {
		t.Fatal("first entry should be focused after click")
	}

	win.pointerDown(20, 60)
	win.pointerUp(20, 60)
	if win.Focused() != e2 {
		t.Fatal("focus should move to second entry")
	}
	if e1.Focused() {
		t.Error("first entry should have lost focus")
	}

	// Clicking a non-entry drops focus entirely.
	win.pointerDown(20, 100)
	win.pointerUp(20, 100)
	if win.Focused() != nil {
		t.Error("clicking a button should clear entry focus")
	}

	// So does clicking empty space.
	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	win.pointerDown(390, 290)
	win.pointerUp(390, 290)
	if win.Focused() != nil {
		t.Error("clicking empty space should clear entry focus")
	}
}

func TestMarkDirtyPropagatesToFrame(t *testing.T) {
	win := newTestWindow(t)

	frame := win.NewFrame()
	child := win.NewLabel("x")
	frame.AddChild(child)

	frame.dirty = false
	child.dirty = false
	child.MarkDirty()
	if !frame.Dirty() {
		t.Error("dirty mark should propagate to the owning frame")
	}
}

func TestSetTextClampsCaret(t *testing.T) {
	win := newTestWindow(t)
	e := win.NewEntry().SetText("hello")
	e.SetCaret(5)
	e.SetText("hi")
	if e.Caret() != 2 {
		t.Errorf("caret = %d, want 2 after shortening text", e.Caret())
	}
}
