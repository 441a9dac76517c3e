package annotate

// DrawingTool identifies which annotation tool an element was drawn with.
// The set is closed: renderer dispatch and hit-testing switch over it.
type DrawingTool int

// Drawing tools.
const (
	// ToolNone means no tool is active; no element can be drawn.
	ToolNone DrawingTool = iota
	// ToolRectangle draws an axis-aligned rectangle between two corners.
	ToolRectangle
	// ToolCircle draws an ellipse inscribed in the rect between two corners.
	ToolCircle
	// ToolArrow draws a line with an arrowhead from tail to tip.
	ToolArrow
	// ToolPen draws a freehand polyline of arbitrarily many points.
	ToolPen
	// ToolText places a text box between two corners.
	ToolText
)

// String returns the tool name for logging and diagnostics.
func (t DrawingTool) String() string {
	switch t {
	case ToolNone:
		return "none"
	case ToolRectangle:
		return "rectangle"
	case ToolCircle:
		return "circle"
	case ToolArrow:
		return "arrow"
	case ToolPen:
		return "pen"
	case ToolText:
		return "text"
	default:
		return "unknown"
	}
}

// IsShape reports whether the tool draws a two-point geometric shape.
func (t DrawingTool) IsShape() bool {
	return t == ToolRectangle || t == ToolCircle || t == ToolArrow
}

// IsFreeform reports whether the tool draws a freehand polyline.
func (t DrawingTool) IsFreeform() bool {
	return t == ToolPen
}

// IsText reports whether the tool places text.
func (t DrawingTool) IsText() bool {
	return t == ToolText
}

// CanDraw reports whether the tool can create elements.
// Only ToolNone cannot.
func (t DrawingTool) CanDraw() bool {
	return t != ToolNone
}
