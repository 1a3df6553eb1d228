package softgui

import "github.com/chewxy/math32"

// Control widgets: Button, Checkbox, RadioButton, and the two sliders.
// Click handling lives in Widget.handleClick; this file carries the
// per-variant state transitions and the slider animation.

// ============================================================================
// Button
// ============================================================================

// SetCommand assigns the zero-argument action fired on click, before the
// generic click callback.
func (w *Widget) SetCommand(fn func()) *Widget {
	w.command = fn
	return w
}

// ============================================================================
// Checkbox / RadioButton
// ============================================================================

// Checked reports the Checkbox or RadioButton state.
func (w *Widget) Checked() bool { return w.checked }

// SetChecked sets the checked state directly. For a RadioButton this does
// not touch siblings; use Select for exclusive selection.
func (w *Widget) SetChecked(checked bool) *Widget {
	if w.checked != checked {
		w.checked = checked
		w.MarkDirty()
	}
	return w
}

// Group returns the RadioButton's group id.
func (w *Widget) Group() int { return w.group }

// Select marks a RadioButton selected and deselects every sibling sharing
// its group id within the same immediate container. Siblings in other
// containers keep their state.
func (w *Widget) Select() *Widget {
	w.selectRadio()
	return w
}

func (w *Widget) selectRadio() {
	if w.checked {
		return
	}
	w.checked = true
	w.MarkDirty()
	for _, sib := range w.siblings() {
		if sib == w || sib.kind != KindRadio || sib.group != w.group {
			continue
		}
		if sib.checked {
			sib.checked = false
			sib.MarkDirty()
		}
	}
	w.fireChange()
}

// siblings returns the widgets sharing this widget's immediate container:
// the owning Frame's children, or the window's unparented top-level
// widgets when the widget has no Frame.
func (w *Widget) siblings() []*Widget {
	if w.parent != nil {
		return w.parent.children
	}
	if w.win == nil {
		return nil
	}
	top := make([]*Widget, 0, len(w.win.widgets))
	for _, other := range w.win.widgets {
		if other.parent == nil {
			top = append(top, other)
		}
	}
	return top
}

// ============================================================================
// Sliders
// ============================================================================

const (
	sliderThumb = 10   // thumb span in pixels along the travel axis
	easeEpsilon = 0.01 // remaining distance treated as arrived
)

// Value returns the slider's committed integer value.
func (w *Widget) Value() int { return w.value }

// SetValue sets the slider value, clamped to [min, max], without
// animating and without firing the change callback.
func (w *Widget) SetValue(v int) *Widget {
	v = clampInt(v, w.min, w.max)
	w.value = v
	w.current = float32(v)
	w.target = float32(v)
	w.MarkDirty()
	return w
}

// Range returns the slider's bounds.
func (w *Widget) Range() (min, max int) { return w.min, w.max }

// SetRange adjusts the slider bounds, clamping the current value.
func (w *Widget) SetRange(min, max int) *Widget {
	w.min, w.max = min, max
	return w.SetValue(w.value)
}

// retargetFromPointer maps the pointer's position along the travel axis
// into [min, max] and sets it as the animation target. The traversable
// span is clamped to at least one pixel so a degenerate geometry never
// divides by zero; positions past either end clamp to the bounds.
func (w *Widget) retargetFromPointer(localX, localY int) {
	var pos, span int
	if w.kind == KindVSlider {
		pos = localY - sliderThumb/2
		span = w.geom.H - sliderThumb
	} else {
		pos = localX - sliderThumb/2
		span = w.geom.W - sliderThumb
	}
	if span < 1 {
		span = 1
	}
	ratio := float32(pos) / float32(span)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	w.target = float32(w.min) + ratio*float32(w.max-w.min)
	w.MarkDirty()
}

// stepSlider advances the animated position toward the target by an
// exponential ease, snapping once the remaining distance is negligible.
// When the rounded integer value moves, it is committed and the change
// callback fires exactly once.
func (w *Widget) stepSlider(factor float32) {
	if w.current == w.target {
		return
	}
	w.current += (w.target - w.current) * factor
	if math32.Abs(w.target-w.current) < easeEpsilon {
		w.current = w.target
	}
	w.commitSliderValue()
	w.MarkDirty()
}

// snapSlider jumps the animated position straight to the target. Used on
// pointer release so the committed value matches where the drag ended.
func (w *Widget) snapSlider() {
	w.current = w.target
	w.commitSliderValue()
	w.dragging = false
	w.MarkDirty()
}

func (w *Widget) commitSliderValue() {
	v := clampInt(int(math32.Round(w.current)), w.min, w.max)
	if v != w.value {
		w.value = v
		w.fireChange()
	}
}

// sliderRatio returns the animated position as a fraction of the range,
// for drawing the thumb.
func (w *Widget) sliderRatio() float32 {
	span := w.max - w.min
	if span <= 0 {
		return 0
	}
	r := (w.current - float32(w.min)) / float32(span)
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
