// Package render maps each drawing tool to the renderer that knows how to
// draw it, its selection border, and its interaction handles. The actual
// rasterization lives behind the Context interface, implemented by the
// platform backend; this package only decides WHAT to draw for each tool.
package render

import "github.com/snapmark/annotate"

// Context is the opaque drawing surface renderers draw onto. The platform
// backend implements it with its vector-graphics API. All coordinates are
// device-space pixels.
//
// Implementations are not required to be safe for concurrent use; the
// engine renders from a single thread.
type Context interface {
	// StrokeLine strokes a straight line segment.
	StrokeLine(from, to annotate.Point, color annotate.RGBA, thickness float64)

	// StrokeRect strokes the outline of a rectangle.
	StrokeRect(r annotate.Rect, color annotate.RGBA, thickness float64)

	// StrokeEllipse strokes the ellipse inscribed in r.
	StrokeEllipse(r annotate.Rect, color annotate.RGBA, thickness float64)

	// StrokePolyline strokes connected line segments through pts.
	StrokePolyline(pts []annotate.Point, color annotate.RGBA, thickness float64)

	// FillPolygon fills the polygon described by pts.
	FillPolygon(pts []annotate.Point, color annotate.RGBA)

	// FillHandle draws one interaction handle centered at p. Backends
	// typically draw a small filled square with a contrasting border.
	FillHandle(p annotate.Point, radius int32, color annotate.RGBA)

	// DrawText lays out and draws the element's text inside its rect,
	// using the element's font attributes and effective font size.
	// Backends are expected to serve the layout from the geometry cache.
	DrawText(el *annotate.DrawingElement)
}

// Default chrome colors for selection borders and handles.
var (
	SelectionColor = annotate.Hex("#3498db")
	HandleColor    = annotate.Hex("#2ecc71")
)

// selectionMargin is how far the selection border is drawn outside the
// element's bounding rect, in pixels.
const selectionMargin = 2
