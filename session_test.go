package annotate

import "testing"

// recordingInvalidator captures cache invalidation calls for assertions.
type recordingInvalidator struct {
	dirty       []int64
	removed     []int64
	invalidated int
}

var _ Invalidator = (*recordingInvalidator)(nil)

func (r *recordingInvalidator) MarkDirty(id int64)         { r.dirty = append(r.dirty, id) }
func (r *recordingInvalidator) MarkDirtyBatch(ids []int64) { r.dirty = append(r.dirty, ids...) }
func (r *recordingInvalidator) Remove(id int64)            { r.removed = append(r.removed, id) }
func (r *recordingInvalidator) RemoveBatch(ids []int64)    { r.removed = append(r.removed, ids...) }
func (r *recordingInvalidator) InvalidateAll()             { r.invalidated++ }

func newTestSession(t *testing.T) (*Session, *recordingInvalidator) {
	t.Helper()
	inv := &recordingInvalidator{}
	s := NewSession(NewConfig(),
		WithBounds(XYWH(0, 0, 1000, 1000)),
		WithInvalidator(inv))
	return s, inv
}

func TestSession_DrawRectangleGesture(t *testing.T) {
	s, inv := newTestSession(t)
	s.SetTool(ToolRectangle)

	s.PointerDown(10, 10)
	if s.DragMode() != DragDrawingShape {
		t.Fatalf("DragMode = %v, want DragDrawingShape", s.DragMode())
	}
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	if s.Elements().Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Elements().Len())
	}
	el := s.Elements().At(0)
	if el.Rect != (Rect{10, 10, 100, 100}) {
		t.Errorf("rect = %+v", el.Rect)
	}
	if !el.Selected {
		t.Error("a freshly drawn element should be selected")
	}
	if len(inv.dirty) == 0 || inv.dirty[len(inv.dirty)-1] != el.ID {
		t.Errorf("cache not dirtied for the new element: %v", inv.dirty)
	}
	if s.DragMode() != DragNone {
		t.Error("gesture state should reset on pointer up")
	}
}

func TestSession_ClickWithoutDragCreatesNothing(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)

	s.PointerDown(10, 10)
	s.PointerMove(11, 11) // under the drag threshold
	s.PointerUp(11, 11)

	if s.Elements().Len() != 0 {
		t.Errorf("a click should not create an element, got %d", s.Elements().Len())
	}
	if s.History().CanUndo() {
		t.Error("no snapshot should be taken for an uncommitted gesture")
	}
}

func TestSession_PenAccumulatesPoints(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolPen)

	s.PointerDown(10, 10)
	s.PointerMove(20, 20)
	s.PointerMove(30, 15)
	s.PointerMove(40, 40)
	s.PointerUp(40, 40)

	el := s.Elements().At(0)
	if el == nil || el.Tool != ToolPen {
		t.Fatalf("pen element not created: %+v", el)
	}
	if len(el.Points) < 4 {
		t.Errorf("pen should accumulate points, got %d", len(el.Points))
	}
}

func TestSession_SelectAndMove(t *testing.T) {
	s, inv := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	s.SetTool(ToolNone)
	s.PointerDown(50, 50) // inside the rectangle, not on the selection handles
	if s.DragMode() != DragMovingElement {
		t.Fatalf("DragMode = %v, want DragMovingElement", s.DragMode())
	}
	s.PointerMove(70, 60)
	s.PointerUp(70, 60)

	el := s.Elements().At(0)
	if el.Rect != (Rect{30, 20, 120, 110}) {
		t.Errorf("rect after move = %+v, want {30 20 120 110}", el.Rect)
	}
	if len(inv.dirty) == 0 {
		t.Error("moving must dirty the cache entry")
	}
}

func TestSession_MoveBelowThresholdIsIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)
	before := s.Elements().At(0).Rect

	s.SetTool(ToolNone)
	s.PointerDown(50, 50)
	s.PointerMove(51, 51)
	s.PointerUp(51, 51)

	if got := s.Elements().At(0).Rect; got != before {
		t.Errorf("micro-move changed the rect: %+v -> %+v", before, got)
	}
}

func TestSession_ResizeByHandle(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	s.SetTool(ToolNone)
	// Grab the bottom-right handle of the selected rectangle.
	s.PointerDown(100, 100)
	if s.DragMode() != DragResizingBottomRight {
		t.Fatalf("DragMode = %v, want DragResizingBottomRight", s.DragMode())
	}
	s.PointerMove(150, 130)
	s.PointerUp(150, 130)

	if got := s.Elements().At(0).Rect; got != (Rect{10, 10, 150, 130}) {
		t.Errorf("rect after resize = %+v, want {10 10 150 130}", got)
	}
}

func TestSession_ArrowEndpointDrag(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolArrow)
	s.PointerDown(10, 10)
	s.PointerMove(200, 200)
	s.PointerUp(200, 200)

	s.SetTool(ToolNone)
	// Grab the tip endpoint and drag it.
	s.PointerDown(200, 200)
	if s.DragMode() != DragResizingBottomRight {
		t.Fatalf("DragMode = %v, want the tip handle", s.DragMode())
	}
	s.PointerMove(300, 150)
	s.PointerUp(300, 150)

	el := s.Elements().At(0)
	if el.Points[1] != (Point{300, 150}) {
		t.Errorf("tip = %+v, want {300 150}", el.Points[1])
	}
	if el.Points[0] != (Point{10, 10}) {
		t.Errorf("tail moved: %+v", el.Points[0])
	}
}

func TestSession_UndoRedo(t *testing.T) {
	s, inv := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	if !s.Undo() {
		t.Fatal("Undo after one commit should succeed")
	}
	if s.Elements().Len() != 0 {
		t.Errorf("Len() after undo = %d, want 0", s.Elements().Len())
	}
	if inv.invalidated == 0 {
		t.Error("undo must invalidate the whole cache")
	}

	if !s.Redo() {
		t.Fatal("Redo should succeed")
	}
	if s.Elements().Len() != 1 {
		t.Errorf("Len() after redo = %d, want 1", s.Elements().Len())
	}
	if s.Redo() {
		t.Error("Redo at the newest state should be a no-op")
	}
	if !s.Undo() {
		t.Error("Undo should still work after redo")
	}
	if s.Undo() {
		t.Error("Undo past the baseline should be a no-op")
	}
}

func TestSession_CancelGestureRestoresElement(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)
	before := s.Elements().At(0).Rect
	undoable := s.History().CanUndo()

	s.SetTool(ToolNone)
	s.PointerDown(50, 50)
	s.PointerMove(200, 200)
	s.CancelGesture()

	if got := s.Elements().At(0).Rect; got != before {
		t.Errorf("rect after cancel = %+v, want %+v", got, before)
	}
	if s.History().CanUndo() != undoable {
		t.Error("a cancelled gesture must not touch history")
	}
	if s.DragMode() != DragNone {
		t.Error("cancel should reset the gesture")
	}
}

func TestSession_CancelDrawDiscardsDraft(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolCircle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.CancelGesture()

	if s.Elements().Len() != 0 {
		t.Error("cancelled draw should leave no element behind")
	}
}

func TestSession_DeleteSelected(t *testing.T) {
	s, inv := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)
	id := s.Elements().At(0).ID

	if !s.DeleteSelected() {
		t.Fatal("DeleteSelected with a selection should succeed")
	}
	if s.Elements().Len() != 0 {
		t.Error("element not removed")
	}
	if len(inv.removed) != 1 || inv.removed[0] != id {
		t.Errorf("cache entries not evicted for id %d: %v", id, inv.removed)
	}
	if s.DeleteSelected() {
		t.Error("DeleteSelected with no selection should report false")
	}

	// The deletion is undoable.
	if !s.Undo() {
		t.Fatal("Undo after delete should succeed")
	}
	if s.Elements().Len() != 1 || s.Elements().At(0).ID != id {
		t.Error("undo should bring the element back with its original id")
	}
}

func TestSession_MutateSelected(t *testing.T) {
	s, inv := newTestSession(t)
	if s.MutateSelected(func(*DrawingElement) {}) {
		t.Error("MutateSelected with no selection should report false")
	}

	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	ok := s.MutateSelected(func(el *DrawingElement) {
		el.Color = Blue
		el.Thickness = 7
	})
	if !ok {
		t.Fatal("MutateSelected should succeed")
	}
	el := s.Elements().At(0)
	if el.Color != Blue || el.Thickness != 7 {
		t.Errorf("mutation not applied: %+v", el)
	}
	if len(inv.dirty) == 0 || inv.dirty[len(inv.dirty)-1] != el.ID {
		t.Error("mutation must dirty the cache entry")
	}

	// Style change is undoable independently of the draw.
	s.Undo()
	if got := s.Elements().At(0).Thickness; got == 7 {
		t.Error("undo should revert the style change")
	}
}

func TestSession_ClickEmptySpaceClearsSelection(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)

	s.SetTool(ToolNone)
	s.PointerDown(500, 500)
	s.PointerUp(500, 500)

	if s.Elements().SelectedIndex() != -1 {
		t.Error("clicking empty space should clear the selection")
	}
}

func TestSession_CursorMode(t *testing.T) {
	s, _ := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(100, 100)
	s.PointerUp(100, 100)
	s.SetTool(ToolNone)

	if got := s.CursorMode(100, 100); got != DragResizingBottomRight {
		t.Errorf("over the handle = %v", got)
	}
	if got := s.CursorMode(50, 50); got != DragMovingElement {
		t.Errorf("over the body = %v", got)
	}
	if got := s.CursorMode(500, 500); got != DragNone {
		t.Errorf("over empty space = %v", got)
	}
	s.SetTool(ToolPen)
	if got := s.CursorMode(500, 500); got != DragDrawingShape {
		t.Errorf("with a draw tool = %v", got)
	}
}

func TestSession_BoundsClampDrawing(t *testing.T) {
	inv := &recordingInvalidator{}
	s := NewSession(NewConfig(), WithBounds(XYWH(0, 0, 100, 100)), WithInvalidator(inv))
	s.SetTool(ToolRectangle)

	s.PointerDown(50, 50)
	s.PointerMove(400, 400) // clamped to (100, 100)
	s.PointerUp(400, 400)

	if got := s.Elements().At(0).Rect; got != (Rect{50, 50, 100, 100}) {
		t.Errorf("rect = %+v, want clamped to bounds", got)
	}
}

func TestSession_Clear(t *testing.T) {
	s, inv := newTestSession(t)
	s.SetTool(ToolRectangle)
	s.PointerDown(10, 10)
	s.PointerMove(50, 50)
	s.PointerUp(50, 50)
	s.PointerDown(60, 60)
	s.PointerMove(90, 90)
	s.PointerUp(90, 90)

	s.Clear()
	if s.Elements().Len() != 0 {
		t.Error("Clear should remove all elements")
	}
	if len(inv.removed) != 2 {
		t.Errorf("Clear should evict every id, got %v", inv.removed)
	}
	if !s.Undo() || s.Elements().Len() != 2 {
		t.Error("Clear should be undoable")
	}
}
