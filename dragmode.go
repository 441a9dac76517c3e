package annotate

// DragMode is the current phase of a pointer-down-to-pointer-up gesture.
//
// The eight resizing variants correspond to the eight handles of a bounding
// rectangle: four corners plus four edge midpoints. For arrows only the
// TopLeft (tail) and BottomRight (tip) variants occur; see ArrowHandleAt.
type DragMode int

// Drag modes.
const (
	// DragNone means no gesture is in progress.
	DragNone DragMode = iota
	// DragDrawing means the selection box is being dragged out.
	DragDrawing
	// DragDrawingShape means a new element is being dragged out.
	DragDrawingShape
	// DragMoving means the whole selection box is being moved.
	DragMoving
	// DragMovingElement means a single element is being moved.
	DragMovingElement

	DragResizingTopLeft
	DragResizingTopCenter
	DragResizingTopRight
	DragResizingMiddleRight
	DragResizingBottomRight
	DragResizingBottomCenter
	DragResizingBottomLeft
	DragResizingMiddleLeft
)

// String returns the drag mode name for logging and diagnostics.
func (m DragMode) String() string {
	switch m {
	case DragNone:
		return "none"
	case DragDrawing:
		return "drawing"
	case DragDrawingShape:
		return "drawing-shape"
	case DragMoving:
		return "moving"
	case DragMovingElement:
		return "moving-element"
	case DragResizingTopLeft:
		return "resizing-top-left"
	case DragResizingTopCenter:
		return "resizing-top-center"
	case DragResizingTopRight:
		return "resizing-top-right"
	case DragResizingMiddleRight:
		return "resizing-middle-right"
	case DragResizingBottomRight:
		return "resizing-bottom-right"
	case DragResizingBottomCenter:
		return "resizing-bottom-center"
	case DragResizingBottomLeft:
		return "resizing-bottom-left"
	case DragResizingMiddleLeft:
		return "resizing-middle-left"
	default:
		return "unknown"
	}
}

// IsResizing reports whether the mode is one of the eight resize variants.
func (m DragMode) IsResizing() bool {
	return m >= DragResizingTopLeft && m <= DragResizingMiddleLeft
}

// IsDrawing reports whether a selection box or a new element is being
// dragged out.
func (m DragMode) IsDrawing() bool {
	return m == DragDrawing || m == DragDrawingShape
}

// IsMoving reports whether the selection box or an element is being moved.
func (m DragMode) IsMoving() bool {
	return m == DragMoving || m == DragMovingElement
}

// IsActive reports whether any gesture is in progress.
func (m DragMode) IsActive() bool {
	return m != DragNone
}

// InteractionKind classifies how a drag mode acts on an individual element.
type InteractionKind int

// Interaction kinds.
const (
	// InteractNone: the gesture does not mutate an individual element
	// (idle, selection-box drawing, selection-box moving).
	InteractNone InteractionKind = iota
	// InteractDrawing: a new element is being dragged out.
	InteractDrawing
	// InteractMovingElement: an existing element is being translated.
	InteractMovingElement
	// InteractResizingElement: an existing element is being resized by
	// a specific handle.
	InteractResizingElement
)

// InteractionMode is the reduced projection of DragMode that elements see:
// only the variants that mutate a single element, with the resize handle
// carried along.
type InteractionMode struct {
	Kind InteractionKind
	// Handle is the specific resize variant when Kind is
	// InteractResizingElement, DragNone otherwise.
	Handle DragMode
}

// Interaction maps a drag mode to the element-level interaction it implies.
// Selection-box gestures (DragDrawing, DragMoving) collapse to InteractNone
// since they never mutate an individual element.
func (m DragMode) Interaction() InteractionMode {
	switch {
	case m == DragDrawingShape:
		return InteractionMode{Kind: InteractDrawing}
	case m == DragMovingElement:
		return InteractionMode{Kind: InteractMovingElement}
	case m.IsResizing():
		return InteractionMode{Kind: InteractResizingElement, Handle: m}
	default:
		return InteractionMode{}
	}
}
