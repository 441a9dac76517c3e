package annotate

// DrawingElement is one annotation drawn on top of the captured image.
//
// Point semantics depend on the tool: Rectangle, Circle and Text store the
// two opposite corners dragged out by the user, Arrow stores tail then tip,
// and Pen stores the full polyline. The cached bounding Rect is NOT kept in
// sync automatically; callers must invoke UpdateBoundingRect after mutating
// Points directly.
type DrawingElement struct {
	// ID is assigned by the ElementManager, is unique for the lifetime of
	// the session, and keys the geometry cache. Zero means unassigned.
	ID int64

	Tool   DrawingTool
	Points []Point

	// Rect is the cached bounding box, recomputed by UpdateBoundingRect.
	Rect Rect

	Color     RGBA
	Thickness float64
	Selected  bool

	// Text payload, meaningful only when Tool is ToolText.
	Text          string
	FontName      string
	FontWeight    int
	FontItalic    bool
	FontUnderline bool
	FontStrikeout bool

	// fontSize of 0 means "unset": EffectiveFontSize falls back to the
	// session default captured at creation time.
	fontSize        float64
	defaultFontSize float64
}

// NewElement creates an element for the given tool with style defaults
// taken from cfg. The ID is left zero; the ElementManager assigns it on add.
func NewElement(tool DrawingTool, cfg Config) *DrawingElement {
	return &DrawingElement{
		Tool:            tool,
		Color:           cfg.Color,
		Thickness:       cfg.Thickness,
		FontName:        cfg.FontName,
		FontWeight:      cfg.FontWeight,
		defaultFontSize: cfg.FontSize,
	}
}

// AddPoint appends a point. The bounding rect is not recomputed; call
// UpdateBoundingRect once the mutation is complete.
func (e *DrawingElement) AddPoint(x, y int32) {
	e.Points = append(e.Points, Point{X: x, Y: y})
}

// SetEndPoint replaces the second point of a two-point element, used while
// a shape or text box is being dragged out. If fewer than two points exist
// the point is appended instead, so the first motion event after pointer
// down behaves the same as later ones.
func (e *DrawingElement) SetEndPoint(x, y int32) {
	if len(e.Points) < 2 {
		e.AddPoint(x, y)
		return
	}
	e.Points[1] = Point{X: x, Y: y}
}

// UpdateBoundingRect recomputes the cached Rect as the min/max envelope of
// all points. For Pen this is an O(n) scan over the whole stroke, which is
// why rendering artifacts are cached per element rather than rebuilt each
// frame.
func (e *DrawingElement) UpdateBoundingRect() {
	if len(e.Points) == 0 {
		e.Rect = Rect{}
		return
	}
	r := Rect{
		Left: e.Points[0].X, Top: e.Points[0].Y,
		Right: e.Points[0].X, Bottom: e.Points[0].Y,
	}
	for _, p := range e.Points[1:] {
		if p.X < r.Left {
			r.Left = p.X
		}
		if p.X > r.Right {
			r.Right = p.X
		}
		if p.Y < r.Top {
			r.Top = p.Y
		}
		if p.Y > r.Bottom {
			r.Bottom = p.Y
		}
	}
	e.Rect = r
}

// ContainsPoint is the tool-aware hit test. It must agree with what the
// user sees: a pen stroke is hit near any of its segments, an arrow near
// its shaft, a circle inside its ellipse, rectangles and text boxes inside
// their bounds.
func (e *DrawingElement) ContainsPoint(x, y int32) bool {
	return PointInElement(e, x, y)
}

// MoveBy translates every point and the cached rect by the same delta.
func (e *DrawingElement) MoveBy(dx, dy int32) {
	for i := range e.Points {
		e.Points[i].X += dx
		e.Points[i].Y += dy
	}
	e.Rect = e.Rect.Translated(dx, dy)
}

// Resize re-maps every point from the element's current bounding rect into
// newRect (independent linear scale and offset per axis) and updates the
// cached rect.
//
// For Text the box corners are replaced outright and the font size scales
// with the height ratio so glyphs stay legible instead of being stretched;
// that scaling is lossy under round-tripping, unlike the pure integer
// remapping used for every other tool.
func (e *DrawingElement) Resize(newRect Rect) {
	old := e.Rect.Normalized()
	nr := newRect.Normalized()

	if e.Tool.IsText() {
		if h := old.Height(); h > 0 {
			e.scaleFontBy(float64(nr.Height()) / float64(h))
		}
		e.Points = []Point{{X: nr.Left, Y: nr.Top}, {X: nr.Right, Y: nr.Bottom}}
		e.Rect = nr
		return
	}

	sx, sy := 1.0, 1.0
	if w := old.Width(); w > 0 {
		sx = float64(nr.Width()) / float64(w)
	}
	if h := old.Height(); h > 0 {
		sy = float64(nr.Height()) / float64(h)
	}
	for i, p := range e.Points {
		e.Points[i] = Point{
			X: nr.Left + int32(float64(p.X-old.Left)*sx+0.5),
			Y: nr.Top + int32(float64(p.Y-old.Top)*sy+0.5),
		}
	}
	e.UpdateBoundingRect()
}

// SetFontSize stores an explicit font size. Out-of-range values are kept
// as stored but never escape EffectiveFontSize unclamped.
func (e *DrawingElement) SetFontSize(size float64) {
	e.fontSize = size
}

// FontSize returns the explicitly stored font size and whether one is set.
func (e *DrawingElement) FontSize() (float64, bool) {
	return e.fontSize, e.fontSize != 0
}

// EffectiveFontSize returns the font size used for layout and rendering:
// the stored size, or the session default when unset, always clamped to
// [MinFontSize, MaxFontSize].
func (e *DrawingElement) EffectiveFontSize() float64 {
	size := e.fontSize
	if size == 0 {
		size = e.defaultFontSize
	}
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

// scaleFontBy multiplies the effective font size by ratio and stores the
// result as an explicit size.
func (e *DrawingElement) scaleFontBy(ratio float64) {
	if ratio <= 0 {
		return
	}
	e.fontSize = e.EffectiveFontSize() * ratio
}

// Clone returns a deep copy. History snapshots rely on clones being fully
// independent of the originals.
func (e *DrawingElement) Clone() *DrawingElement {
	dup := *e
	dup.Points = make([]Point, len(e.Points))
	copy(dup.Points, e.Points)
	return &dup
}
