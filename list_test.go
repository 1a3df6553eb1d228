package softgui

import "testing"

func TestListBoxClickSelection(t *testing.T) {
	win := newTestWindow(t)
	lb := win.NewListBox().SetBounds(0, 0, 100, 80)
	lb.SetItems([]string{"alpha", "beta", "gamma"})

	var changes int
	lb.OnChange(func(*Widget) { changes++ })

	// Rows are 20px: y=25 lands in row 1.
	lb.listClick(25)
	if lb.Selected() != 1 {
		t.Errorf("selected = %d, want 1", lb.Selected())
	}
	if changes != 1 {
		t.Errorf("change callbacks = %d, want 1", changes)
	}

	// y=65 maps to row 3, past the last item: selection and callback
	// count must not move.
	lb.listClick(65)
	if lb.Selected() != 1 || changes != 1 {
		t.Errorf("after out-of-range click: selected=%d changes=%d, want 1 1",
			lb.Selected(), changes)
	}

	// Re-clicking the selected row still fires.
	lb.listClick(25)
	if changes != 2 {
		t.Errorf("change callbacks = %d, want 2 after re-click", changes)
	}
}

func TestListBoxItemMutation(t *testing.T) {
	win := newTestWindow(t)
	lb := win.NewListBox()
	lb.SetItems([]string{"a", "b", "c"})
	lb.SetSelected(2)

	lb.RemoveItem(0)
	if lb.Selected() != 1 {
		t.Errorf("selected = %d, want 1 after removing an earlier item", lb.Selected())
	}

	lb.RemoveItem(1)
	if lb.Selected() != -1 {
		t.Errorf("selected = %d, want -1 after removing the selected item", lb.Selected())
	}

	lb.AppendItem("d")
	if got := len(lb.Items()); got != 2 {
		t.Errorf("items = %d, want 2", got)
	}

	lb.SetSelected(1)
	lb.SetItems([]string{"only"})
	if lb.Selected() != -1 {
		t.Errorf("selected = %d, want -1 after SetItems shrank past it", lb.Selected())
	}
}

func TestMultiListBoxToggles(t *testing.T) {
	win := newTestWindow(t)
	ml := win.NewMultiListBox().SetBounds(0, 0, 100, 80)
	ml.SetItems([]string{"a", "b", "c"})

	var changes int
	ml.OnChange(func(*Widget) { changes++ })

	ml.multiListClick(5)  // row 0 on
	ml.multiListClick(45) // row 2 on
	got := ml.SelectedItems()
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Errorf("SelectedItems = %v, want [0 2]", got)
	}

	ml.multiListClick(5) // row 0 off
	got = ml.SelectedItems()
	if len(got) != 1 || got[0] != 2 {
		t.Errorf("SelectedItems = %v, want [2]", got)
	}
	if changes != 3 {
		t.Errorf("change callbacks = %d, want 3", changes)
	}

	ml.RemoveItem(0)
	got = ml.SelectedItems()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("SelectedItems = %v, want [1] after removal shifts indices", got)
	}
}

func TestComboBoxClickOpensAndCommits(t *testing.T) {
	win := newTestWindow(t)
	cb := win.NewComboBox().SetBounds(10, 10, 100, 24)
	cb.SetItems([]string{"red", "green", "blue"})

	var changes int
	cb.OnChange(func(*Widget) { changes++ })

	// Click on the closed trigger: opens, commits nothing.
	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	if !cb.Expanded() {
		t.Fatal("click on closed trigger should expand")
	}
	if changes != 0 {
		t.Fatalf("opening fired %d changes, want 0", changes)
	}

	// Hit bounds now cover the dropdown: 24 + 3*20 below the trigger.
	hb := cb.hitBounds()
	if hb.H != 24+3*20 {
		t.Fatalf("expanded hit height = %d, want 84", hb.H)
	}

	// Click row 1 of the dropdown (widget-local y in [44, 64)).
	win.pointerDown(20, 10+24+25)
	win.pointerUp(20, 10+24+25)
	if cb.Expanded() {
		t.Error("commit should collapse the dropdown")
	}
	if cb.Selected() != 1 {
		t.Errorf("selected = %d, want 1", cb.Selected())
	}
	if changes != 1 {
		t.Errorf("change callbacks = %d, want 1", changes)
	}
}

func TestComboBoxDragPreviewCommitsOnRelease(t *testing.T) {
	win := newTestWindow(t)
	cb := win.NewComboBox().SetBounds(10, 10, 100, 24)
	cb.SetItems([]string{"red", "green", "blue"})

	var changes int
	cb.OnChange(func(*Widget) { changes++ })

	// Press opens; dragging over options previews without committing.
	win.pointerDown(20, 20)
	win.pointerMove(20, 10+24+5) // over row 0
	if cb.hoverIndex != 0 {
		t.Fatalf("hoverIndex = %d, want 0", cb.hoverIndex)
	}
	win.pointerMove(20, 10+24+45) // over row 2
	if cb.hoverIndex != 2 {
		t.Fatalf("hoverIndex = %d, want 2", cb.hoverIndex)
	}
	if changes != 0 {
		t.Fatal("hover preview must not fire changes")
	}

	win.pointerUp(20, 10+24+45)
	if cb.Selected() != 2 || cb.Expanded() {
		t.Errorf("selected=%d expanded=%v, want 2 false", cb.Selected(), cb.Expanded())
	}
	if changes != 1 {
		t.Errorf("change callbacks = %d, want 1", changes)
	}
}

func TestComboBoxReleaseOverTriggerKeepsOpen(t *testing.T) {
	win := newTestWindow(t)
	cb := win.NewComboBox().SetBounds(10, 10, 100, 24)
	cb.SetItems([]string{"red", "green"})

	win.pointerDown(20, 20)
	win.pointerUp(20, 20) // plain click: press and release on the trigger
	if !cb.Expanded() {
		t.Error("release over the trigger should leave the dropdown open")
	}
	if cb.Selected() != -1 {
		t.Errorf("selected = %d, want -1", cb.Selected())
	}
}

func TestComboBoxSecondTriggerClickCollapses(t *testing.T) {
	win := newTestWindow(t)
	cb := win.NewComboBox().SetBounds(10, 10, 100, 24)
	cb.SetItems([]string{"red", "green"})

	win.pointerDown(20, 20)
	win.pointerUp(20, 20)
	win.pointerDown(20, 20) // second press on the trigger while open
	if cb.Expanded() {
		t.Error("second trigger press should collapse without committing")
	}
}
