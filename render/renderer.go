package render

import (
	"math"

	"github.com/snapmark/annotate"
)

// Renderer draws one tool kind. Implementations are stateless; the same
// renderer instance serves every element of its tool.
type Renderer interface {
	// Render draws the element's geometry.
	Render(ctx Context, el *annotate.DrawingElement)

	// RenderSelection draws the selection border around the element.
	RenderSelection(ctx Context, el *annotate.DrawingElement)

	// RenderHandles draws the element's interaction handles.
	RenderHandles(ctx Context, el *annotate.DrawingElement)
}

// boxSelection is the shared selection-border and eight-handle rendering
// used by every rect-bounded tool. Arrow overrides the handle placement.
type boxSelection struct {
	handleRadius int32
}

func (b boxSelection) RenderSelection(ctx Context, el *annotate.DrawingElement) {
	ctx.StrokeRect(el.Rect.Inflated(selectionMargin), SelectionColor, 1)
}

func (b boxSelection) RenderHandles(ctx Context, el *annotate.DrawingElement) {
	for _, mode := range [8]annotate.DragMode{
		annotate.DragResizingTopLeft, annotate.DragResizingTopCenter,
		annotate.DragResizingTopRight, annotate.DragResizingMiddleRight,
		annotate.DragResizingBottomRight, annotate.DragResizingBottomCenter,
		annotate.DragResizingBottomLeft, annotate.DragResizingMiddleLeft,
	} {
		p, _ := annotate.HandlePosition(el.Rect, mode)
		ctx.FillHandle(p, b.handleRadius, HandleColor)
	}
}

// rectangleRenderer strokes the element's normalized bounding rect.
type rectangleRenderer struct{ boxSelection }

func (rectangleRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	ctx.StrokeRect(el.Rect.Normalized(), el.Color, el.Thickness)
}

// circleRenderer strokes the ellipse inscribed in the bounding rect.
type circleRenderer struct{ boxSelection }

func (circleRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	ctx.StrokeEllipse(el.Rect.Normalized(), el.Color, el.Thickness)
}

// arrowRenderer draws the shaft plus a filled arrowhead at the tip. Its
// handles sit on the two literal endpoints, not the bounding-rect corners:
// an arrow's grab targets are its tail and tip.
type arrowRenderer struct {
	boxSelection
}

func (arrowRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	if len(el.Points) < 2 {
		return
	}
	tail, tip := el.Points[0], el.Points[1]
	ctx.StrokeLine(tail, tip, el.Color, el.Thickness)
	if wings, ok := arrowhead(tail, tip, el.Thickness); ok {
		ctx.FillPolygon([]annotate.Point{tip, wings[0], wings[1]}, el.Color)
	}
}

func (a arrowRenderer) RenderHandles(ctx Context, el *annotate.DrawingElement) {
	if len(el.Points) < 2 {
		return
	}
	ctx.FillHandle(el.Points[0], a.handleRadius, HandleColor)
	ctx.FillHandle(el.Points[1], a.handleRadius, HandleColor)
}

// arrowhead returns the two wing points of the arrowhead at tip. It
// reports false for degenerate zero-length arrows.
func arrowhead(tail, tip annotate.Point, thickness float64) ([2]annotate.Point, bool) {
	dx := float64(tip.X - tail.X)
	dy := float64(tip.Y - tail.Y)
	length := math.Hypot(dx, dy)
	if length == 0 {
		return [2]annotate.Point{}, false
	}

	// Head length scales with stroke width but never exceeds the shaft.
	head := 8 + thickness*2
	if head > length {
		head = length
	}
	const wingAngle = math.Pi / 6 // 30 degrees off the shaft

	ux, uy := dx/length, dy/length
	sin, cos := math.Sin(wingAngle), math.Cos(wingAngle)
	left := annotate.Point{
		X: tip.X - int32(math.Round(head*(ux*cos-uy*sin))),
		Y: tip.Y - int32(math.Round(head*(uy*cos+ux*sin))),
	}
	right := annotate.Point{
		X: tip.X - int32(math.Round(head*(ux*cos+uy*sin))),
		Y: tip.Y - int32(math.Round(head*(uy*cos-ux*sin))),
	}
	return [2]annotate.Point{left, right}, true
}

// penRenderer strokes the freehand polyline.
type penRenderer struct{ boxSelection }

func (penRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	switch len(el.Points) {
	case 0:
	case 1:
		// A tap leaves a dot.
		ctx.StrokeLine(el.Points[0], el.Points[0], el.Color, el.Thickness)
	default:
		ctx.StrokePolyline(el.Points, el.Color, el.Thickness)
	}
}

// textRenderer delegates glyph layout and drawing to the backend.
type textRenderer struct{ boxSelection }

func (textRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	ctx.DrawText(el)
}

// fallbackRenderer draws the bounding rect only. It should never be
// reached for the closed tool set; it exists so an unmapped tool degrades
// to something visible instead of nothing.
type fallbackRenderer struct{ boxSelection }

func (fallbackRenderer) Render(ctx Context, el *annotate.DrawingElement) {
	ctx.StrokeRect(el.Rect.Normalized(), el.Color, el.Thickness)
}
