package annotate

// Rect is an axis-aligned rectangle in device-space pixels.
//
// The Left <= Right, Top <= Bottom invariant is not maintained eagerly:
// shape tools store the raw drag endpoints, so a rectangle dragged
// up-and-left is temporarily inverted. Call Normalized before any
// geometric test.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// XYWH creates a Rect from an origin and a size.
func XYWH(x, y, w, h int32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// RectFromPoints returns the rectangle spanned by two opposite corners,
// already normalized.
func RectFromPoints(a, b Point) Rect {
	return Rect{Left: a.X, Top: a.Y, Right: b.X, Bottom: b.Y}.Normalized()
}

// Normalized returns the rect with Left <= Right and Top <= Bottom,
// swapping edges as needed.
func (r Rect) Normalized() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Width returns the width of the normalized rect.
func (r Rect) Width() int32 {
	n := r.Normalized()
	return n.Right - n.Left
}

// Height returns the height of the normalized rect.
func (r Rect) Height() int32 {
	n := r.Normalized()
	return n.Bottom - n.Top
}

// Center returns the center point of the rect.
func (r Rect) Center() Point {
	n := r.Normalized()
	return Point{X: (n.Left + n.Right) / 2, Y: (n.Top + n.Bottom) / 2}
}

// IsEmpty reports whether the normalized rect has zero area.
func (r Rect) IsEmpty() bool {
	n := r.Normalized()
	return n.Left == n.Right || n.Top == n.Bottom
}

// Contains reports whether (x, y) lies inside the normalized rect,
// boundary inclusive.
func (r Rect) Contains(x, y int32) bool {
	n := r.Normalized()
	return x >= n.Left && x <= n.Right && y >= n.Top && y <= n.Bottom
}

// Translated returns the rect shifted by (dx, dy).
func (r Rect) Translated(dx, dy int32) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Inflated returns the rect grown by d on every side (shrunk for negative d).
func (r Rect) Inflated(d int32) Rect {
	n := r.Normalized()
	return Rect{Left: n.Left - d, Top: n.Top - d, Right: n.Right + d, Bottom: n.Bottom + d}
}

// Union returns the smallest rect containing both r and s.
func (r Rect) Union(s Rect) Rect {
	a, b := r.Normalized(), s.Normalized()
	if a.Left > b.Left {
		a.Left = b.Left
	}
	if a.Top > b.Top {
		a.Top = b.Top
	}
	if a.Right < b.Right {
		a.Right = b.Right
	}
	if a.Bottom < b.Bottom {
		a.Bottom = b.Bottom
	}
	return a
}
