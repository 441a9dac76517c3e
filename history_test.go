package annotate

import "testing"

// historyElements builds a collection with a single rectangle at (x, x).
func historyElements(x int32) []*DrawingElement {
	el := NewElement(ToolRectangle, NewConfig())
	el.ID = 1
	el.AddPoint(x, x)
	el.AddPoint(x+10, x+10)
	el.UpdateBoundingRect()
	return []*DrawingElement{el}
}

func TestHistory_UndoRedoLinear(t *testing.T) {
	h := NewHistoryManager(10)
	h.SaveState(historyElements(1), 0)
	h.SaveState(historyElements(2), 0)

	snap, ok := h.Undo()
	if !ok {
		t.Fatal("Undo at cursor 1 should succeed")
	}
	if snap.Elements[0].Points[0] != (Point{1, 1}) {
		t.Errorf("Undo returned %+v, want the first state", snap.Elements[0].Points[0])
	}

	snap, ok = h.Redo()
	if !ok {
		t.Fatal("Redo after Undo should succeed")
	}
	if snap.Elements[0].Points[0] != (Point{2, 2}) {
		t.Errorf("Redo returned %+v, want the second state", snap.Elements[0].Points[0])
	}
}

func TestHistory_BranchTruncation(t *testing.T) {
	h := NewHistoryManager(10)
	h.SaveState(historyElements(1), -1)
	h.SaveState(historyElements(2), -1)

	if _, ok := h.Undo(); !ok {
		t.Fatal("Undo should succeed")
	}
	// A new edit after an undo discards the redo branch.
	h.SaveState(historyElements(3), -1)

	if _, ok := h.Redo(); ok {
		t.Error("Redo after branch truncation should be a no-op")
	}
	snap, ok := h.Undo()
	if !ok || snap.Elements[0].Points[0] != (Point{1, 1}) {
		t.Errorf("Undo should step back to the first state, got %+v ok=%v", snap, ok)
	}
}

func TestHistory_BoundaryNoOps(t *testing.T) {
	h := NewHistoryManager(10)

	if _, ok := h.Undo(); ok {
		t.Error("Undo on empty history should report false")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on empty history should report false")
	}

	h.SaveState(historyElements(1), -1)
	if h.CanUndo() {
		t.Error("a single snapshot has nothing to undo to")
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo at the oldest snapshot should report false")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo at the newest snapshot should report false")
	}
}

func TestHistory_CapacityDropsOldest(t *testing.T) {
	h := NewHistoryManager(3)
	for i := int32(1); i <= 5; i++ {
		h.SaveState(historyElements(i), -1)
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	// Undo as far as possible: the oldest reachable state is now 3.
	var last Snapshot
	for {
		snap, ok := h.Undo()
		if !ok {
			break
		}
		last = snap
	}
	if last.Elements[0].Points[0] != (Point{3, 3}) {
		t.Errorf("oldest surviving state = %+v, want {3 3}", last.Elements[0].Points[0])
	}
}

func TestHistory_SnapshotsAreDeepCopies(t *testing.T) {
	h := NewHistoryManager(10)
	elements := historyElements(1)
	h.SaveState(elements, 0)

	elements[0].MoveBy(50, 50)

	h.SaveState(elements, 0)
	snap, _ := h.Undo()
	if snap.Elements[0].Points[0] != (Point{1, 1}) {
		t.Error("stored snapshot was aliased by live mutation")
	}
}

func TestHistory_SelectionIndexTravels(t *testing.T) {
	h := NewHistoryManager(10)
	h.SaveState(historyElements(1), -1)
	h.SaveState(historyElements(2), 0)
	h.SaveState(historyElements(3), -1)

	snap, _ := h.Undo()
	if snap.Selected != 0 {
		t.Errorf("Selected = %d, want 0", snap.Selected)
	}
}

func TestHistory_Clear(t *testing.T) {
	h := NewHistoryManager(10)
	h.SaveState(historyElements(1), -1)
	h.Clear()
	if h.Len() != 0 || h.CanUndo() || h.CanRedo() {
		t.Error("Clear should reset the stack and cursor")
	}
}
