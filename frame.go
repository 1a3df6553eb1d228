package softgui

// Frame is a structural container. It draws nothing itself: children stay
// in the Window's flat ownership list and are painted and hit-tested from
// there. The parent link a Frame establishes scopes radio groups and
// routes dirty-marks, nothing more.

// AddChild attaches a widget to the frame. The widget keeps its place in
// the Window's ownership list; only the structural back-reference moves.
func (w *Widget) AddChild(child *Widget) *Widget {
	if w.kind != KindFrame || child == nil || child == w {
		return w
	}
	if child.parent != nil {
		child.parent.removeChild(child)
	}
	child.parent = w
	w.children = append(w.children, child)
	w.MarkDirty()
	return w
}

// RemoveChild detaches a child, leaving it top-level. Returns true when
// the widget was actually a child of this frame.
func (w *Widget) RemoveChild(child *Widget) bool {
	if w.kind != KindFrame {
		return false
	}
	return w.removeChild(child)
}

func (w *Widget) removeChild(child *Widget) bool {
	for i, c := range w.children {
		if c == child {
			w.children = append(w.children[:i], w.children[i+1:]...)
			child.parent = nil
			w.MarkDirty()
			return true
		}
	}
	return false
}

// Children returns a copy of the frame's child list.
func (w *Widget) Children() []*Widget {
	out := make([]*Widget, len(w.children))
	copy(out, w.children)
	return out
}
