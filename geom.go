package annotate

// Interaction algorithms: handle detection, resize transforms and the
// shape-aware containment test. These are free functions over plain
// coordinates so the same code serves both the top-level selection box and
// per-element handles, differing only in rect, radius and handle subset.

// HandleSet selects which of the eight bounding-rect handles are active
// for hit-testing. Most tools expose all eight; a tool may restrict the
// set (text boxes, for instance, only expose the corners).
type HandleSet uint8

// Handle bits, one per bounding-rect handle.
const (
	HandleTopLeft HandleSet = 1 << iota
	HandleTopCenter
	HandleTopRight
	HandleMiddleRight
	HandleBottomRight
	HandleBottomCenter
	HandleBottomLeft
	HandleMiddleLeft
)

// Predefined handle subsets.
const (
	// HandlesAll enables all eight handles.
	HandlesAll = HandleTopLeft | HandleTopCenter | HandleTopRight |
		HandleMiddleRight | HandleBottomRight | HandleBottomCenter |
		HandleBottomLeft | HandleMiddleLeft
	// HandlesCorners enables only the four corner handles.
	HandlesCorners = HandleTopLeft | HandleTopRight | HandleBottomRight | HandleBottomLeft
)

// handleOrder fixes the hit-test priority: corners and edges in the same
// order as the DragResizing* constants.
var handleOrder = [8]struct {
	bit  HandleSet
	mode DragMode
}{
	{HandleTopLeft, DragResizingTopLeft},
	{HandleTopCenter, DragResizingTopCenter},
	{HandleTopRight, DragResizingTopRight},
	{HandleMiddleRight, DragResizingMiddleRight},
	{HandleBottomRight, DragResizingBottomRight},
	{HandleBottomCenter, DragResizingBottomCenter},
	{HandleBottomLeft, DragResizingBottomLeft},
	{HandleMiddleLeft, DragResizingMiddleLeft},
}

// HandlePosition returns the position of a handle on the normalized rect.
// It reports false for modes that are not resize variants.
func HandlePosition(r Rect, mode DragMode) (Point, bool) {
	n := r.Normalized()
	cx := (n.Left + n.Right) / 2
	cy := (n.Top + n.Bottom) / 2
	switch mode {
	case DragResizingTopLeft:
		return Point{n.Left, n.Top}, true
	case DragResizingTopCenter:
		return Point{cx, n.Top}, true
	case DragResizingTopRight:
		return Point{n.Right, n.Top}, true
	case DragResizingMiddleRight:
		return Point{n.Right, cy}, true
	case DragResizingBottomRight:
		return Point{n.Right, n.Bottom}, true
	case DragResizingBottomCenter:
		return Point{cx, n.Bottom}, true
	case DragResizingBottomLeft:
		return Point{n.Left, n.Bottom}, true
	case DragResizingMiddleLeft:
		return Point{n.Left, cy}, true
	default:
		return Point{}, false
	}
}

// HandleAt tests (x, y) against the handles of r enabled in set, using a
// square hit region of the given radius around each handle. It returns the
// matching resize mode, or DragNone when no handle is hit.
func HandleAt(x, y int32, r Rect, set HandleSet, radius int32) DragMode {
	for _, h := range handleOrder {
		if set&h.bit == 0 {
			continue
		}
		p, _ := HandlePosition(r, h.mode)
		if abs32(x-p.X) <= radius && abs32(y-p.Y) <= radius {
			return h.mode
		}
	}
	return DragNone
}

// HandleAtWithMoving is HandleAt extended for the top-level selection box:
// when no handle is hit but the point falls inside the rect, it returns
// DragMoving so the whole box can be dragged.
func HandleAtWithMoving(x, y int32, r Rect, set HandleSet, radius int32) DragMode {
	if mode := HandleAt(x, y, r, set, radius); mode != DragNone {
		return mode
	}
	if r.Contains(x, y) {
		return DragMoving
	}
	return DragNone
}

// ArrowHandleAt tests (x, y) against an arrow's two literal endpoints. An
// arrow's grab targets are its tail and tip, not bounding-rect corners, so
// the tail maps to the top-left resize mode and the tip to the
// bottom-right one.
func ArrowHandleAt(x, y int32, tail, tip Point, radius int32) DragMode {
	if abs32(x-tail.X) <= radius && abs32(y-tail.Y) <= radius {
		return DragResizingTopLeft
	}
	if abs32(x-tip.X) <= radius && abs32(y-tip.Y) <= radius {
		return DragResizingBottomRight
	}
	return DragNone
}

// ResizedRect computes the rect that results from dragging the given
// handle by (dx, dy) from the original rect. Each handle moves only its
// own edge(s); the opposite edge(s) stay fixed. Degenerate results are
// clamped so width and height never drop below MinElementSize.
func ResizedRect(orig Rect, handle DragMode, dx, dy int32) Rect {
	r := orig.Normalized()
	switch handle {
	case DragResizingTopLeft:
		r.Left += dx
		r.Top += dy
	case DragResizingTopCenter:
		r.Top += dy
	case DragResizingTopRight:
		r.Right += dx
		r.Top += dy
	case DragResizingMiddleRight:
		r.Right += dx
	case DragResizingBottomRight:
		r.Right += dx
		r.Bottom += dy
	case DragResizingBottomCenter:
		r.Bottom += dy
	case DragResizingBottomLeft:
		r.Left += dx
		r.Bottom += dy
	case DragResizingMiddleLeft:
		r.Left += dx
	default:
		return r
	}

	// Clamp the moved edge against the fixed one rather than letting the
	// rect invert.
	switch handle {
	case DragResizingTopLeft, DragResizingBottomLeft, DragResizingMiddleLeft:
		if r.Left > r.Right-MinElementSize {
			r.Left = r.Right - MinElementSize
		}
	case DragResizingTopRight, DragResizingBottomRight, DragResizingMiddleRight:
		if r.Right < r.Left+MinElementSize {
			r.Right = r.Left + MinElementSize
		}
	}
	switch handle {
	case DragResizingTopLeft, DragResizingTopCenter, DragResizingTopRight:
		if r.Top > r.Bottom-MinElementSize {
			r.Top = r.Bottom - MinElementSize
		}
	case DragResizingBottomLeft, DragResizingBottomCenter, DragResizingBottomRight:
		if r.Bottom < r.Top+MinElementSize {
			r.Bottom = r.Top + MinElementSize
		}
	}
	return r
}

// TextProportionalResize computes the resized rect for a text box along
// with the font size scaled by the height ratio, clamped to the font-size
// bounds. Scaling the font with the box keeps text legible instead of
// geometrically stretching the glyphs.
func TextProportionalResize(orig Rect, handle DragMode, dx, dy int32, fontSize float64) (Rect, float64) {
	r := ResizedRect(orig, handle, dx, dy)
	oldH := orig.Height()
	if oldH <= 0 {
		return r, fontSize
	}
	size := fontSize * float64(r.Height()) / float64(oldH)
	if size < MinFontSize {
		size = MinFontSize
	} else if size > MaxFontSize {
		size = MaxFontSize
	}
	return r, size
}

// PointInElement is the shape-aware containment test behind
// DrawingElement.ContainsPoint. It assumes the element's cached rect is
// up to date.
func PointInElement(e *DrawingElement, x, y int32) bool {
	switch e.Tool {
	case ToolRectangle, ToolText:
		return e.Rect.Contains(x, y)

	case ToolCircle:
		n := e.Rect.Normalized()
		rx := float64(n.Width()) / 2
		ry := float64(n.Height()) / 2
		if rx == 0 || ry == 0 {
			return false
		}
		c := n.Center()
		nx := float64(x-c.X) / rx
		ny := float64(y-c.Y) / ry
		return nx*nx+ny*ny <= 1

	case ToolArrow:
		if len(e.Points) < 2 {
			return false
		}
		return distanceToSegment(Point{x, y}, e.Points[0], e.Points[1]) <= e.hitSlop()

	case ToolPen:
		if len(e.Points) == 0 {
			return false
		}
		if len(e.Points) == 1 {
			return Point{x, y}.Distance(e.Points[0]) <= e.hitSlop()
		}
		p := Point{x, y}
		for i := 0; i < len(e.Points)-1; i++ {
			if distanceToSegment(p, e.Points[i], e.Points[i+1]) <= e.hitSlop() {
				return true
			}
		}
		return false

	default:
		return false
	}
}

// hitSlop is the distance from a stroke's center line within which a click
// counts as a hit.
func (e *DrawingElement) hitSlop() float64 {
	return e.Thickness/2 + penHitSlop
}

// DragExceedsThreshold reports whether the pointer has travelled far
// enough from (x0, y0) to (x1, y1) for a press to count as a drag rather
// than a click. Prevents accidental micro-moves on selection clicks.
func DragExceedsThreshold(x0, y0, x1, y1, threshold int32) bool {
	return Point{x0, y0}.Distance(Point{x1, y1}) > float64(threshold)
}

// ClampToRect clamps a point to lie within bounds, keeping drawing and
// resizing inside the capture area.
func ClampToRect(x, y int32, bounds Rect) (int32, int32) {
	n := bounds.Normalized()
	if x < n.Left {
		x = n.Left
	} else if x > n.Right {
		x = n.Right
	}
	if y < n.Top {
		y = n.Top
	} else if y > n.Bottom {
		y = n.Bottom
	}
	return x, y
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
