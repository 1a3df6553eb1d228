package softgui

import (
	"image"
	"image/color"

	"github.com/agiangrant/softgui/render"
)

// Widget drawing. One switch per frame per widget; every variant paints
// its full geometry so stacking order alone resolves overlap.

const (
	checkBoxSpan  = 14 // checkbox square / radio circle diameter
	comboArrowBox = 16 // width reserved for the dropdown arrow
)

func (win *Window) drawWidget(s *render.Surface, w *Widget) {
	th := win.theme
	r := w.geom.Rect()
	switch w.kind {
	case KindLabel:
		s.Text(r.Min.X, textTop(w, r), w.text, w.fontName, w.fontSize, th.Text)

	case KindEntry:
		s.FillRect(r, th.Surface)
		s.StrokeRect(r, borderColor(th, w.focused))
		tx := r.Min.X + entryTextInset
		s.Text(tx, textTop(w, r), w.text, w.fontName, w.fontSize, th.Text)
		if w.focused && w.caretVisible {
			runes := []rune(w.text)
			cx := tx + measureText(string(runes[:w.caret]), w.fontName, w.fontSize)
			s.Line(cx, r.Min.Y+3, cx, r.Max.Y-4, th.Text)
		}

	case KindButton:
		s.FillRoundedRect(r, 3, th.Face)
		s.StrokeRect(r, th.Border)
		s.TextCentered(r, w.text, w.fontName, w.fontSize, th.Text)

	case KindCheckbox:
		box := leadingBox(r)
		s.FillRect(box, th.Surface)
		s.StrokeRect(box, th.Border)
		if w.checked {
			s.FillRect(box.Inset(3), th.Accent)
		}
		s.Text(box.Max.X+6, textTop(w, r), w.text, w.fontName, w.fontSize, th.Text)

	case KindRadio:
		box := leadingBox(r)
		s.FillEllipse(box, th.Surface)
		s.StrokeEllipse(box, th.Border)
		if w.checked {
			s.FillEllipse(box.Inset(4), th.Accent)
		}
		s.Text(box.Max.X+6, textTop(w, r), w.text, w.fontName, w.fontSize, th.Text)

	case KindHSlider:
		cy := r.Min.Y + r.Dy()/2
		s.FillRect(image.Rect(r.Min.X, cy-1, r.Max.X, cy+1), th.Accent)
		tx := r.Min.X + int(w.sliderRatio()*float32(w.geom.W-sliderThumb))
		s.FillRoundedRect(image.Rect(tx, r.Min.Y, tx+sliderThumb, r.Max.Y), 3, th.Face)
		s.StrokeRect(image.Rect(tx, r.Min.Y, tx+sliderThumb, r.Max.Y), th.Border)

	case KindVSlider:
		cx := r.Min.X + r.Dx()/2
		s.FillRect(image.Rect(cx-1, r.Min.Y, cx+1, r.Max.Y), th.Accent)
		ty := r.Min.Y + int(w.sliderRatio()*float32(w.geom.H-sliderThumb))
		s.FillRoundedRect(image.Rect(r.Min.X, ty, r.Max.X, ty+sliderThumb), 3, th.Face)
		s.StrokeRect(image.Rect(r.Min.X, ty, r.Max.X, ty+sliderThumb), th.Border)

	case KindListBox:
		win.drawList(s, w, r, func(i int) bool { return i == w.selected })

	case KindMultiListBox:
		win.drawList(s, w, r, func(i int) bool { return w.multiSel[i] })

	case KindComboBox:
		win.drawCombo(s, w, r)

	case KindCanvas:
		s.Blit(r, w.canvasPixmap().Image())
		s.StrokeRect(r, th.Border)

	case KindFrame:
		// Frames are structure, not pixels; their children draw themselves
		// from the window's flat list.
	}
}

// drawList paints a list body: surface, border, and one row per item with
// the given predicate deciding highlight. Rows past the geometry clip.
func (win *Window) drawList(s *render.Surface, w *Widget, r image.Rectangle, selected func(int) bool) {
	th := win.theme
	s.FillRect(r, th.Surface)
	s.StrokeRect(r, th.Border)
	for i, item := range w.items {
		rowTop := r.Min.Y + i*w.itemHeight
		if rowTop >= r.Max.Y {
			break
		}
		row := image.Rect(r.Min.X+1, rowTop, r.Max.X-1, minInt(rowTop+w.itemHeight, r.Max.Y-1))
		fg := th.Text
		if selected(i) {
			s.FillRect(row, th.Accent)
			fg = th.AccentText
		}
		s.Text(row.Min.X+4, rowTop+(w.itemHeight-render.TextHeight(w.fontName, w.fontSize))/2,
			item, w.fontName, w.fontSize, fg)
	}
}

// drawCombo paints the trigger box and, when expanded, the dropdown list
// below it with the hover preview highlighted.
func (win *Window) drawCombo(s *render.Surface, w *Widget, r image.Rectangle) {
	th := win.theme
	s.FillRect(r, th.Surface)
	s.StrokeRect(r, th.Border)
	if w.selected >= 0 && w.selected < len(w.items) {
		s.Text(r.Min.X+4, textTop(w, r), w.items[w.selected], w.fontName, w.fontSize, th.Text)
	}

	// Down-pointing arrow in the trailing box.
	ax := r.Max.X - comboArrowBox
	cy := r.Min.Y + r.Dy()/2
	s.FillPolygon([]image.Point{
		{X: ax + 3, Y: cy - 2},
		{X: ax + comboArrowBox - 5, Y: cy - 2},
		{X: ax + (comboArrowBox-2)/2, Y: cy + 3},
	}, th.Text)

	if !w.expanded {
		return
	}
	drop := image.Rect(r.Min.X, r.Max.Y, r.Max.X, r.Max.Y+len(w.items)*w.itemHeight)
	s.FillRect(drop, th.Surface)
	s.StrokeRect(drop, th.Border)
	for i, item := range w.items {
		rowTop := drop.Min.Y + i*w.itemHeight
		row := image.Rect(drop.Min.X+1, rowTop, drop.Max.X-1, rowTop+w.itemHeight)
		fg := th.Text
		if i == w.hoverIndex {
			s.FillRect(row, th.Accent)
			fg = th.AccentText
		}
		s.Text(row.Min.X+4, rowTop+(w.itemHeight-render.TextHeight(w.fontName, w.fontSize))/2,
			item, w.fontName, w.fontSize, fg)
	}
}

// textTop returns the y at which a single line of the widget's text sits
// vertically centered in the rectangle.
func textTop(w *Widget, r image.Rectangle) int {
	return r.Min.Y + (r.Dy()-render.TextHeight(w.fontName, w.fontSize))/2
}

// borderColor picks the accent border for a focused widget.
func borderColor(th Theme, focused bool) color.Color {
	if focused {
		return th.Accent
	}
	return th.Border
}

// leadingBox returns the check/radio glyph square at the leading edge of
// the widget, vertically centered.
func leadingBox(r image.Rectangle) image.Rectangle {
	top := r.Min.Y + (r.Dy()-checkBoxSpan)/2
	return image.Rect(r.Min.X, top, r.Min.X+checkBoxSpan, top+checkBoxSpan)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
