package softgui

// Entry editing: a single-line left-to-right text input with a caret.
// Content is addressed in runes so multi-byte input behaves.

const (
	entryTextInset = 4 // pixels between the border and the first glyph
)

// Caret returns the Entry's caret position as a rune index.
func (w *Widget) Caret() int { return w.caret }

// Focused reports whether the Entry currently receives character input.
func (w *Widget) Focused() bool { return w.focused }

// SetCaret moves the caret, clamped to [0, text length].
func (w *Widget) SetCaret(pos int) *Widget {
	w.caret = clampInt(pos, 0, len([]rune(w.text)))
	w.MarkDirty()
	return w
}

// entryClick positions the caret from the pointer's x offset and fires the
// focus callback. The Window flips the focus flags around this call.
func (w *Widget) entryClick(localX int) {
	w.caret = w.caretFromX(localX)
	w.caretVisible = true
	w.blinkElapsed = 0
	if w.onFocus != nil {
		w.onFocus(w)
	}
	w.MarkDirty()
}

// caretFromX maps a widget-local x offset to the rune index whose prefix
// width first reaches the offset.
func (w *Widget) caretFromX(localX int) int {
	runes := []rune(w.text)
	offset := localX - entryTextInset
	if offset <= 0 {
		return 0
	}
	for i := 1; i <= len(runes); i++ {
		if measureText(string(runes[:i]), w.fontName, w.fontSize) >= offset {
			return i
		}
	}
	return len(runes)
}

// entryKey applies one typed character: backspace deletes before the
// caret, carriage return drops focus, any other printable rune is
// inserted at the caret. Every text mutation fires the change callback.
func (w *Widget) entryKey(ch rune) {
	switch {
	case ch == '\b':
		if w.caret > 0 {
			runes := []rune(w.text)
			w.text = string(runes[:w.caret-1]) + string(runes[w.caret:])
			w.caret--
			w.fireChange()
		}
	case ch == '\r' || ch == '\n':
		w.focused = false
		if w.win != nil && w.win.focused == w {
			w.win.focused = nil
		}
		w.fireChange()
	case ch >= ' ':
		runes := []rune(w.text)
		w.text = string(runes[:w.caret]) + string(ch) + string(runes[w.caret:])
		w.caret++
		w.fireChange()
	default:
		return
	}
	w.caretVisible = true
	w.blinkElapsed = 0
	w.MarkDirty()
}

// caretLeft moves the caret one rune left, stopping at 0.
func (w *Widget) caretLeft() {
	if w.caret > 0 {
		w.caret--
		w.caretVisible = true
		w.blinkElapsed = 0
		w.MarkDirty()
	}
}

// caretRight moves the caret one rune right, stopping at the text end.
func (w *Widget) caretRight() {
	if w.caret < len([]rune(w.text)) {
		w.caret++
		w.caretVisible = true
		w.blinkElapsed = 0
		w.MarkDirty()
	}
}

// blinkTick advances the caret blink clock and toggles visibility each
// time the themed interval elapses. Reports whether visibility flipped.
func (w *Widget) blinkTick(dt float32, interval float32) bool {
	if !w.focused {
		return false
	}
	w.blinkElapsed += dt
	if w.blinkElapsed >= interval {
		w.blinkElapsed = 0
		w.caretVisible = !w.caretVisible
		w.MarkDirty()
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
