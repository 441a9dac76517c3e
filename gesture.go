package annotate

// gestureState tracks one pointer-down-to-pointer-up interaction. A single
// gesture owns the drag-mode state machine for its duration; the session
// resets it on pointer up or cancellation.
type gestureState struct {
	pressed bool
	mode    DragMode

	// Position of the initial press and of the last processed move.
	pressX, pressY int32
	lastX, lastY   int32

	// started flips once the pointer travels beyond the drag threshold,
	// separating a click from the start of a drag.
	started bool

	// index is the z-order index of the element being moved or resized.
	index int

	// originRect and originFontSize capture the manipulated element's
	// geometry at press time; resize deltas are applied against these,
	// not against intermediate states.
	originRect     Rect
	originFontSize float64

	// backup is a deep copy of the manipulated element taken at press
	// time, restored if the gesture is cancelled.
	backup *DrawingElement

	// draft is the element being dragged out by a draw gesture. It is
	// not in the manager's collection until the gesture commits.
	draft *DrawingElement
}

func (g *gestureState) reset() {
	*g = gestureState{index: -1}
}

// begin records the press position and arms the gesture.
func (g *gestureState) begin(x, y int32) {
	g.reset()
	g.pressed = true
	g.pressX, g.pressY = x, y
	g.lastX, g.lastY = x, y
}

// track updates the last pointer position and returns the step delta
// since the previous move.
func (g *gestureState) track(x, y int32) (dx, dy int32) {
	dx, dy = x-g.lastX, y-g.lastY
	g.lastX, g.lastY = x, y
	return dx, dy
}

// totalDelta returns the accumulated delta since the press.
func (g *gestureState) totalDelta() (dx, dy int32) {
	return g.lastX - g.pressX, g.lastY - g.pressY
}
