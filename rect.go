package overlay

// Rect is an axis-aligned rectangle with normalized corners
// (Min.X <= Max.X, Min.Y <= Max.Y when built via RectFromPoints).
type Rect struct {
	Min, Max Point
}

// RectFromPoints builds the axis-aligned rectangle spanned by two
// arbitrary corner points, normalizing min/max per axis. Projection can
// flip axis order (negative scale, flipped views), so callers must
// re-normalize after projecting corners rather than trusting input order.
func RectFromPoints(a, b Point) Rect {
	r := Rect{Min: a, Max: b}
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the rectangle center point.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Corners returns the four corners in clockwise order starting at Min:
// top-left, top-right, bottom-right, bottom-left in screen orientation.
func (r Rect) Corners() [4]Point {
	return [4]Point{
		{X: r.Min.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Min.Y},
		{X: r.Max.X, Y: r.Max.Y},
		{X: r.Min.X, Y: r.Max.Y},
	}
}

// Union returns the smallest rectangle containing both r and s.
func (r Rect) Union(s Rect) Rect {
	out := r
	if s.Min.X < out.Min.X {
		out.Min.X = s.Min.X
	}
	if s.Min.Y < out.Min.Y {
		out.Min.Y = s.Min.Y
	}
	if s.Max.X > out.Max.X {
		out.Max.X = s.Max.X
	}
	if s.Max.Y > out.Max.Y {
		out.Max.Y = s.Max.Y
	}
	return out
}

// Empty reports whether the rectangle has zero or negative area.
func (r Rect) Empty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}
