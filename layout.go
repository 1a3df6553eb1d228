package softgui

// The pack layout is a single O(n) pass over packed widgets in
// registration order. Top-side and left-side widgets advance two
// independent offsets, so the two flows never interleave: they are
// separate stacks, not a shared flex container.

const (
	layoutInset  = 10 // outer margin on every side
	layoutGap    = 8  // fixed gap between consecutive packed widgets
	defaultPackW = 100
	defaultPackH = 24
)

// Layout recomputes geometry for every packed widget. Runs in full on
// each Pack/Place call and on resize; widget counts are small enough that
// partial relayout would buy nothing.
func (win *Window) Layout() {
	top := layoutInset
	left := layoutInset
	for _, w := range win.packOrder {
		if !w.packed {
			continue
		}
		o := w.packOpts
		switch o.Side {
		case SideTop:
			if o.Fill == FillX || o.Fill == FillBoth {
				w.geom.X = layoutInset + o.PadX
				w.geom.W = win.width - 2*layoutInset - 2*o.PadX
				if w.geom.W < 0 {
					w.geom.W = 0
				}
			} else {
				if w.geom.W == 0 {
					w.geom.W = defaultPackW
				}
				w.geom.X = layoutInset + o.PadX
			}
			if w.geom.H == 0 {
				w.geom.H = defaultPackH
			}
			w.geom.Y = top + o.PadY
			top += w.geom.H + o.PadY + layoutGap
		case SideLeft:
			if o.Fill == FillY || o.Fill == FillBoth {
				w.geom.Y = layoutInset + o.PadY
				w.geom.H = win.height - 2*layoutInset - 2*o.PadY
				if w.geom.H < 0 {
					w.geom.H = 0
				}
			} else {
				if w.geom.H == 0 {
					w.geom.H = defaultPackH
				}
				w.geom.Y = layoutInset + o.PadY
			}
			if w.geom.W == 0 {
				w.geom.W = defaultPackW
			}
			w.geom.X = left + o.PadX
			left += w.geom.W + o.PadX + layoutGap
		}
		w.MarkDirty()
	}
}
