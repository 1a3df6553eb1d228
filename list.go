package softgui

// List widgets: ListBox (single selection), MultiListBox (selection set),
// and ComboBox (collapsible option list with live hover preview).

const defaultItemHeight = 20

// Items returns the widget's item strings.
func (w *Widget) Items() []string { return w.items }

// SetItems replaces the item list. Selections pointing past the new end
// are cleared.
func (w *Widget) SetItems(items []string) *Widget {
	w.items = items
	if w.selected >= len(items) {
		w.selected = -1
	}
	for i := range w.multiSel {
		if i >= len(items) {
			delete(w.multiSel, i)
		}
	}
	w.MarkDirty()
	return w
}

// AppendItem adds one item to the end of the list.
func (w *Widget) AppendItem(item string) *Widget {
	w.items = append(w.items, item)
	w.MarkDirty()
	return w
}

// RemoveItem deletes the item at index; out-of-range indices are ignored.
// A selection on the removed item is cleared.
func (w *Widget) RemoveItem(index int) *Widget {
	if index < 0 || index >= len(w.items) {
		return w
	}
	w.items = append(w.items[:index], w.items[index+1:]...)
	switch {
	case w.selected == index:
		w.selected = -1
	case w.selected > index:
		w.selected--
	}
	if w.multiSel != nil {
		next := make(map[int]bool, len(w.multiSel))
		for i := range w.multiSel {
			switch {
			case i == index:
			case i > index:
				next[i-1] = true
			default:
				next[i] = true
			}
		}
		w.multiSel = next
	}
	w.MarkDirty()
	return w
}

// Selected returns the selected index, -1 when nothing is selected.
func (w *Widget) Selected() int { return w.selected }

// SetSelected sets the selected index without firing the change callback.
// Indices outside [-1, len) are ignored.
func (w *Widget) SetSelected(index int) *Widget {
	if index >= -1 && index < len(w.items) {
		w.selected = index
		w.MarkDirty()
	}
	return w
}

// SelectedItems returns the MultiListBox selection as sorted-order
// membership over the item indices.
func (w *Widget) SelectedItems() []int {
	out := make([]int, 0, len(w.multiSel))
	for i := range w.items {
		if w.multiSel[i] {
			out = append(out, i)
		}
	}
	return out
}

// SetItemHeight overrides the per-row height used for hit mapping and
// drawing.
func (w *Widget) SetItemHeight(h int) *Widget {
	if h > 0 {
		w.itemHeight = h
		w.MarkDirty()
	}
	return w
}

// Expanded reports whether a ComboBox dropdown is open.
func (w *Widget) Expanded() bool { return w.expanded }

// listClick maps a widget-local y offset to a row. Clicks past the end of
// the list leave the selection untouched and fire nothing; that silence
// is deliberate UX, not an error.
func (w *Widget) listClick(localY int) {
	idx := localY / w.itemHeight
	if idx < 0 || idx >= len(w.items) {
		return
	}
	w.selected = idx
	w.MarkDirty()
	w.fireChange()
}

// multiListClick toggles the clicked row's membership in the selection
// set. Out-of-range clicks are ignored.
func (w *Widget) multiListClick(localY int) {
	idx := localY / w.itemHeight
	if idx < 0 || idx >= len(w.items) {
		return
	}
	if w.multiSel == nil {
		w.multiSel = make(map[int]bool)
	}
	if w.multiSel[idx] {
		delete(w.multiSel, idx)
	} else {
		w.multiSel[idx] = true
	}
	w.MarkDirty()
	w.fireChange()
}

// comboClick toggles the dropdown on the closed box and commits an option
// when the press lands inside the open list.
func (w *Widget) comboClick(localY int) {
	if !w.expanded {
		w.expanded = true
		w.hoverIndex = -1
		w.MarkDirty()
		return
	}
	if localY >= w.geom.H {
		idx := (localY - w.geom.H) / w.itemHeight
		if idx >= 0 && idx < len(w.items) {
			w.commitCombo(idx)
			return
		}
	}
	// Press on the trigger area while open collapses without committing.
	w.expanded = false
	w.hoverIndex = -1
	w.MarkDirty()
}

// comboHover updates the live preview of the option under the pointer
// while the expanded ComboBox holds the capture. Visual only; nothing is
// committed until release.
func (w *Widget) comboHover(localY int) {
	if !w.expanded {
		return
	}
	idx := -1
	if localY >= w.geom.H {
		i := (localY - w.geom.H) / w.itemHeight
		if i >= 0 && i < len(w.items) {
			idx = i
		}
	}
	if idx != w.hoverIndex {
		w.hoverIndex = idx
		w.MarkDirty()
	}
}

// comboRelease commits the hovered option and collapses the dropdown.
// Called on pointer-up while the ComboBox holds the capture. A release
// back over the trigger area keeps the dropdown open, so a plain click
// opens the list; a press-drag-release over an option commits it.
func (w *Widget) comboRelease(localY int) {
	if !w.expanded {
		return
	}
	if localY < w.geom.H {
		return
	}
	if w.hoverIndex >= 0 && w.hoverIndex < len(w.items) {
		w.commitCombo(w.hoverIndex)
		return
	}
	w.expanded = false
	w.hoverIndex = -1
	w.MarkDirty()
}

func (w *Widget) commitCombo(idx int) {
	w.selected = idx
	w.expanded = false
	w.hoverIndex = -1
	w.MarkDirty()
	w.fireChange()
}
