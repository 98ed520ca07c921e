package overlay

// Item is a single overlay drawable in screen space.
//
// The concrete types are PathItem, RectItem, EllipseItem, MarkerItem and
// LabelItem. Hosts type-switch over them to paint; Bounds supports
// testing and damage estimation.
type Item interface {
	Bounds() Rect
}

// PathItem is an open or closed vector path through screen-space points.
// Closed paths connect the last point back to the first.
type PathItem struct {
	Points []Point
	Closed bool
	Stroke Stroke
}

// Bounds returns the axis-aligned bounds of the path points.
func (p PathItem) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	r := Rect{Min: p.Points[0], Max: p.Points[0]}
	for _, pt := range p.Points[1:] {
		r = r.Union(Rect{Min: pt, Max: pt})
	}
	return r
}

// RectItem is an axis-aligned rectangle, optionally filled. A
// transparent Fill paints outline only.
type RectItem struct {
	Rect   Rect
	Stroke Stroke
	Fill   RGBA
}

// Bounds returns the rectangle itself.
func (r RectItem) Bounds() Rect { return r.Rect }

// EllipseItem is an axis-aligned ellipse. Circles use Rx == Ry.
type EllipseItem struct {
	Center Point
	Rx, Ry float64
	Stroke Stroke
}

// Bounds returns the bounding rectangle of the ellipse.
func (e EllipseItem) Bounds() Rect {
	return Rect{
		Min: Point{X: e.Center.X - e.Rx, Y: e.Center.Y - e.Ry},
		Max: Point{X: e.Center.X + e.Rx, Y: e.Center.Y + e.Ry},
	}
}

// MarkerItem is a filled square handle marker centered on a point.
// Size is the side length in pixels, independent of zoom.
type MarkerItem struct {
	Center Point
	Size   float64
	Fill   RGBA
	Stroke Stroke
}

// Bounds returns the square covered by the marker.
func (m MarkerItem) Bounds() Rect {
	h := m.Size / 2
	return Rect{
		Min: Point{X: m.Center.X - h, Y: m.Center.Y - h},
		Max: Point{X: m.Center.X + h, Y: m.Center.Y + h},
	}
}

// LabelItem is a short advisory text label with a filled rounded
// background, horizontally centered on Anchor with the background's top
// edge at Anchor.Y. Width and Height are the background extents computed
// from the label measurer.
type LabelItem struct {
	Text       string
	Anchor     Point
	Width      float64
	Height     float64
	Corner     float64
	Color      RGBA
	Background RGBA
}

// Bounds returns the background rectangle of the label.
func (l LabelItem) Bounds() Rect {
	return Rect{
		Min: Point{X: l.Anchor.X - l.Width/2, Y: l.Anchor.Y},
		Max: Point{X: l.Anchor.X + l.Width/2, Y: l.Anchor.Y + l.Height},
	}
}

// Scene is the composed overlay for one frame: an ordered list of
// screen-space drawables, recomputed wholesale on every input change.
// A nil or empty Scene paints nothing.
type Scene struct {
	Items []Item
}

// Empty reports whether the scene paints nothing.
func (s *Scene) Empty() bool {
	return s == nil || len(s.Items) == 0
}

func (s *Scene) add(items ...Item) {
	s.Items = append(s.Items, items...)
}

// PathsOf returns the PathItems of the scene, in order.
// Helper for hosts and tests that care about one drawable class.
func (s *Scene) PathsOf() []PathItem {
	if s == nil {
		return nil
	}
	var out []PathItem
	for _, it := range s.Items {
		if p, ok := it.(PathItem); ok {
			out = append(out, p)
		}
	}
	return out
}

// MarkersOf returns the MarkerItems of the scene, in order.
func (s *Scene) MarkersOf() []MarkerItem {
	if s == nil {
		return nil
	}
	var out []MarkerItem
	for _, it := range s.Items {
		if m, ok := it.(MarkerItem); ok {
			out = append(out, m)
		}
	}
	return out
}
