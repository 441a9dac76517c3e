package annotate

import "log/slog"

// Invalidator receives cache invalidation for element geometry. The
// cache.Geometry type implements it; a nil Invalidator is allowed and
// turns invalidation into a no-op for hosts that rebuild everything each
// frame.
type Invalidator interface {
	MarkDirty(id int64)
	MarkDirtyBatch(ids []int64)
	Remove(id int64)
	RemoveBatch(ids []int64)
	InvalidateAll()
}

// nopInvalidator is used when no cache is attached.
type nopInvalidator struct{}

func (nopInvalidator) MarkDirty(int64)        {}
func (nopInvalidator) MarkDirtyBatch([]int64) {}
func (nopInvalidator) Remove(int64)           {}
func (nopInvalidator) RemoveBatch([]int64)    {}
func (nopInvalidator) InvalidateAll()         {}

// Session is the commit facade over the element manager, the geometry
// cache and the history manager. Every mutating entry point sequences the
// three causally-consistent effects itself — mutate the collection, dirty
// the cache, snapshot history on commit — so the host's event loop is a
// straight-line translation of pointer events into calls with no hidden
// ordering rules.
//
// Pointer events are expected in capture-area pixel coordinates;
// out-of-bounds positions are clamped.
type Session struct {
	cfg      Config
	bounds   Rect
	tool     DrawingTool
	elements *ElementManager
	history  *HistoryManager
	cache    Invalidator
	gesture  gestureState
}

// SessionOption configures a Session during creation.
type SessionOption func(*Session)

// WithBounds sets the capture-area bounds that drawing and resizing are
// clamped to.
func WithBounds(r Rect) SessionOption {
	return func(s *Session) { s.bounds = r.Normalized() }
}

// WithInvalidator attaches the geometry cache (or anything else that wants
// dirty notifications) to the session.
func WithInvalidator(inv Invalidator) SessionOption {
	return func(s *Session) {
		if inv != nil {
			s.cache = inv
		}
	}
}

// NewSession creates a session with an empty element collection and a
// baseline history snapshot, so the first edit can be undone back to an
// empty canvas.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		cfg:      cfg,
		bounds:   XYWH(0, 0, 1<<30, 1<<30),
		elements: NewElementManager(cfg),
		history:  NewHistoryManager(cfg.HistoryLimit),
		cache:    nopInvalidator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gesture.reset()
	s.history.SaveState(nil, -1)
	return s
}

// Elements returns the element manager. Read access (enumeration for
// rendering, hit queries) is fine; direct mutation bypasses cache and
// history sequencing.
func (s *Session) Elements() *ElementManager { return s.elements }

// History returns the history manager, mainly so hosts can wire CanUndo/
// CanRedo to button state.
func (s *Session) History() *HistoryManager { return s.history }

// SetTool selects the active drawing tool. ToolNone switches to
// select/move/resize behavior.
func (s *Session) SetTool(tool DrawingTool) { s.tool = tool }

// Tool returns the active drawing tool.
func (s *Session) Tool() DrawingTool { return s.tool }

// DragMode returns the phase of the gesture in progress, DragNone when
// idle.
func (s *Session) DragMode() DragMode { return s.gesture.mode }

// CursorMode returns the drag mode a press at (x, y) would start, letting
// the host pick a cursor shape: a resize mode over a handle of the
// selected element, DragMovingElement over an element body, DragNone over
// empty space (or DragDrawingShape when a draw tool is active).
func (s *Session) CursorMode(x, y int32) DragMode {
	if sel := s.elements.SelectedElement(); sel != nil {
		if mode := s.handleAt(sel, x, y); mode != DragNone {
			return mode
		}
	}
	if s.tool.CanDraw() {
		return DragDrawingShape
	}
	if s.elements.ElementAt(x, y) >= 0 {
		return DragMovingElement
	}
	return DragNone
}

// PointerDown starts a gesture. Priority order: a handle of the selected
// element wins, then a draw tool, then element selection for moving.
func (s *Session) PointerDown(x, y int32) {
	x, y = ClampToRect(x, y, s.bounds)
	s.gesture.begin(x, y)

	if sel := s.elements.SelectedElement(); sel != nil {
		if mode := s.handleAt(sel, x, y); mode != DragNone {
			s.gesture.mode = mode
			s.gesture.index = s.elements.SelectedIndex()
			s.gesture.originRect = sel.Rect
			s.gesture.originFontSize = sel.EffectiveFontSize()
			s.gesture.backup = sel.Clone()
			return
		}
	}

	if s.tool.CanDraw() {
		draft := s.elements.NewElement(s.tool)
		draft.AddPoint(x, y)
		draft.UpdateBoundingRect()
		s.gesture.draft = draft
		s.gesture.mode = DragDrawingShape
		return
	}

	if i := s.elements.ElementAt(x, y); i >= 0 {
		s.elements.Select(i)
		s.gesture.mode = DragMovingElement
		s.gesture.index = i
		s.gesture.backup = s.elements.At(i).Clone()
		return
	}

	s.elements.ClearSelection()
}

// PointerMove advances the gesture. Moves before the drag threshold is
// exceeded are ignored, so a selection click cannot nudge an element by a
// pixel. Once dragging, each event mutates the target element and dirties
// its cache entry.
func (s *Session) PointerMove(x, y int32) {
	if !s.gesture.pressed {
		return
	}
	x, y = ClampToRect(x, y, s.bounds)

	if !s.gesture.started {
		if !DragExceedsThreshold(s.gesture.pressX, s.gesture.pressY, x, y, s.cfg.DragThreshold) {
			return
		}
		s.gesture.started = true
	}

	dx, dy := s.gesture.track(x, y)

	switch {
	case s.gesture.mode == DragDrawingShape:
		s.updateDraft(x, y)

	case s.gesture.mode == DragMovingElement:
		if el := s.elements.At(s.gesture.index); el != nil {
			el.MoveBy(dx, dy)
			s.cache.MarkDirty(el.ID)
		}

	case s.gesture.mode.IsResizing():
		s.applyResize()
	}
}

// PointerUp finishes the gesture. Completed draws, moves and resizes are
// committed: the collection is final, the cache entry is dirty, and a
// history snapshot is taken. A press that never became a drag commits
// nothing (the draft is discarded, the selection click stands).
func (s *Session) PointerUp(x, y int32) {
	if !s.gesture.pressed {
		return
	}
	s.PointerMove(x, y)

	committed := false
	if s.gesture.started {
		switch {
		case s.gesture.mode == DragDrawingShape:
			if draft := s.gesture.draft; draft != nil {
				id := s.elements.Add(draft)
				s.elements.Select(s.elements.Len() - 1)
				s.cache.MarkDirty(id)
				committed = true
			}

		case s.gesture.mode == DragMovingElement, s.gesture.mode.IsResizing():
			committed = true
		}
	}

	if committed {
		s.saveHistory()
		Logger().Debug("gesture committed",
			slog.String("mode", s.gesture.mode.String()),
			slog.String("tool", s.tool.String()))
	}
	s.gesture.reset()
}

// CancelGesture aborts the gesture in progress, e.g. on Escape. The draft
// is dropped and a moved or resized element is restored from its press-time
// state. History is untouched: snapshots are only taken on commit, so an
// aborted gesture is invisible to undo.
func (s *Session) CancelGesture() {
	if !s.gesture.pressed {
		return
	}
	if s.gesture.backup != nil {
		if el := s.elements.At(s.gesture.index); el != nil && el.ID == s.gesture.backup.ID {
			*el = *s.gesture.backup
			s.cache.MarkDirty(el.ID)
		}
	}
	s.gesture.reset()
}

// DeleteSelected removes the selected element, evicts its cache entries
// and commits a snapshot. It reports whether anything was deleted.
func (s *Session) DeleteSelected() bool {
	el := s.elements.RemoveAt(s.elements.SelectedIndex())
	if el == nil {
		return false
	}
	s.cache.Remove(el.ID)
	s.saveHistory()
	return true
}

// Clear removes every element, evicts the whole cache and commits a
// snapshot of the now-empty canvas.
func (s *Session) Clear() {
	if s.elements.Len() == 0 {
		return
	}
	s.cache.RemoveBatch(s.elements.Clear())
	s.saveHistory()
}

// MutateSelected applies fn to the selected element and commits: the cache
// entry is dirtied and a snapshot is taken. Use it for out-of-band edits
// such as changing color, thickness or text from a toolbar. It reports
// false (and calls nothing) when no element is selected.
func (s *Session) MutateSelected(fn func(*DrawingElement)) bool {
	el := s.elements.SelectedElement()
	if el == nil {
		return false
	}
	fn(el)
	el.UpdateBoundingRect()
	s.cache.MarkDirty(el.ID)
	s.saveHistory()
	return true
}

// Undo restores the previous snapshot. The whole collection is replaced,
// selection is re-applied from the snapshot, and the cache is invalidated
// wholesale. At the history boundary it is a no-op and reports false.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

// Redo restores the next snapshot, the inverse of Undo.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.restore(snap)
	return true
}

func (s *Session) restore(snap Snapshot) {
	s.gesture.reset()
	s.elements.RestoreState(snap.Elements)
	s.elements.Select(snap.Selected)
	s.cache.InvalidateAll()
}

func (s *Session) saveHistory() {
	s.history.SaveState(s.elements.Elements(), s.elements.SelectedIndex())
}

// handleAt hit-tests the element's handles at the configured radius.
// Arrows expose their two endpoints; every other tool exposes the eight
// bounding-rect handles.
func (s *Session) handleAt(el *DrawingElement, x, y int32) DragMode {
	if el.Tool == ToolArrow && len(el.Points) >= 2 {
		return ArrowHandleAt(x, y, el.Points[0], el.Points[1], s.cfg.HandleRadius)
	}
	return HandleAt(x, y, el.Rect, HandlesAll, s.cfg.HandleRadius)
}

// updateDraft extends the draft during a draw drag: pens accumulate
// points, two-point tools track the moving end point.
func (s *Session) updateDraft(x, y int32) {
	draft := s.gesture.draft
	if draft == nil {
		return
	}
	if draft.Tool.IsFreeform() {
		draft.AddPoint(x, y)
	} else {
		draft.SetEndPoint(x, y)
	}
	draft.UpdateBoundingRect()
}

// applyResize recomputes the manipulated element's rect from the total
// drag delta against the press-time rect. Text resizes proportionally:
// the font scales with the height ratio instead of the glyphs stretching.
func (s *Session) applyResize() {
	el := s.elements.At(s.gesture.index)
	if el == nil {
		return
	}
	if el.Tool == ToolArrow {
		// Arrow handles are its literal endpoints: dragging one moves
		// that endpoint to the pointer, the other stays put.
		i := 0
		if s.gesture.mode == DragResizingBottomRight {
			i = 1
		}
		if i < len(el.Points) {
			el.Points[i] = Point{X: s.gesture.lastX, Y: s.gesture.lastY}
			el.UpdateBoundingRect()
			s.cache.MarkDirty(el.ID)
		}
		return
	}

	dx, dy := s.gesture.totalDelta()
	if el.Tool.IsText() {
		rect, size := TextProportionalResize(
			s.gesture.originRect, s.gesture.mode, dx, dy, s.gesture.originFontSize)
		el.Resize(rect)
		el.SetFontSize(size)
	} else {
		el.Resize(ResizedRect(s.gesture.originRect, s.gesture.mode, dx, dy))
	}
	s.cache.MarkDirty(el.ID)
}
