package overlay

import (
	"github.com/cadkit/overlay/engine"
	"github.com/cadkit/overlay/label"
)

// DraftKind identifies the shape kind of an in-progress draft.
type DraftKind uint8

// Draft shape kinds.
const (
	DraftLine DraftKind = iota
	DraftArrow
	DraftConduit
	DraftRect
	DraftText
	DraftEllipse
	DraftPolygon
	DraftPolyline
)

// Draft is the in-progress shape being authored by a pointer gesture,
// as a sum type with one variant per kind. A nil Draft means no draft.
// All coordinates are world space.
type Draft interface {
	DraftKind() DraftKind
}

// LineDraft previews as a straight segment.
type LineDraft struct{ Start, Current Point }

// ArrowDraft previews as a straight segment (the head is applied on
// commit, not in the preview).
type ArrowDraft struct{ Start, Current Point }

// ConduitDraft previews as a dashed segment.
type ConduitDraft struct{ Start, Current Point }

// RectDraft previews as the axis-aligned rectangle spanning
// Start..Current.
type RectDraft struct{ Start, Current Point }

// TextDraft previews as a dashed axis-aligned rectangle.
type TextDraft struct{ Start, Current Point }

// EllipseDraft previews as the ellipse inscribed in the Start..Current
// bounding rectangle.
type EllipseDraft struct{ Start, Current Point }

// PolygonDraft previews as a circle centered in the Start..Current
// bounding rectangle with radius half the shorter side. A circle, not a
// true regular polygon: the approximation is deliberate and kept for
// behavioral parity.
type PolygonDraft struct{ Start, Current Point }

// PolylineDraft carries the committed points plus an optional trailing
// point under the cursor.
type PolylineDraft struct {
	Points  []Point
	Current *Point
}

func (LineDraft) DraftKind() DraftKind     { return DraftLine }
func (ArrowDraft) DraftKind() DraftKind    { return DraftArrow }
func (ConduitDraft) DraftKind() DraftKind  { return DraftConduit }
func (RectDraft) DraftKind() DraftKind     { return DraftRect }
func (TextDraft) DraftKind() DraftKind     { return DraftText }
func (EllipseDraft) DraftKind() DraftKind  { return DraftEllipse }
func (PolygonDraft) DraftKind() DraftKind  { return DraftPolygon }
func (PolylineDraft) DraftKind() DraftKind { return DraftPolyline }

// draftsEqual reports whether two drafts are the same variant with the
// same coordinates. Used by the compose memo key.
func draftsEqual(a, b Draft) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case LineDraft:
		y, ok := b.(LineDraft)
		return ok && x == y
	case ArrowDraft:
		y, ok := b.(ArrowDraft)
		return ok && x == y
	case ConduitDraft:
		y, ok := b.(ConduitDraft)
		return ok && x == y
	case RectDraft:
		y, ok := b.(RectDraft)
		return ok && x == y
	case TextDraft:
		y, ok := b.(TextDraft)
		return ok && x == y
	case EllipseDraft:
		y, ok := b.(EllipseDraft)
		return ok && x == y
	case PolygonDraft:
		y, ok := b.(PolygonDraft)
		return ok && x == y
	case PolylineDraft:
		y, ok := b.(PolylineDraft)
		if !ok || len(x.Points) != len(y.Points) {
			return false
		}
		for i := range x.Points {
			if x.Points[i] != y.Points[i] {
				return false
			}
		}
		if x.Current == nil || y.Current == nil {
			return x.Current == nil && y.Current == nil
		}
		return *x.Current == *y.Current
	default:
		return false
	}
}

// renderDraftPreview emits the live shape preview for the draft kind.
// Everything is computed in screen space after per-point projection.
func (c *Composer) renderDraftPreview(s *Scene, d Draft, v View) {
	if d == nil {
		return
	}
	t := c.cfg.theme
	solid := t.solid(t.Draft)
	dashed := t.dashed(t.Draft)

	segment := func(a, b Point, st Stroke) {
		s.add(PathItem{
			Points: []Point{v.WorldToScreen(a), v.WorldToScreen(b)},
			Stroke: st,
		})
	}
	span := func(a, b Point) Rect {
		return RectFromPoints(v.WorldToScreen(a), v.WorldToScreen(b))
	}

	switch d := d.(type) {
	case LineDraft:
		segment(d.Start, d.Current, solid)
	case ArrowDraft:
		segment(d.Start, d.Current, solid)
	case ConduitDraft:
		segment(d.Start, d.Current, dashed)
	case RectDraft:
		s.add(RectItem{Rect: span(d.Start, d.Current), Stroke: solid})
	case TextDraft:
		s.add(RectItem{Rect: span(d.Start, d.Current), Stroke: dashed})
	case EllipseDraft:
		r := span(d.Start, d.Current)
		s.add(EllipseItem{
			Center: r.Center(),
			Rx:     r.Width() / 2,
			Ry:     r.Height() / 2,
			Stroke: solid,
		})
	case PolygonDraft:
		r := span(d.Start, d.Current)
		radius := min(r.Width(), r.Height()) / 2
		s.add(EllipseItem{
			Center: r.Center(),
			Rx:     radius,
			Ry:     radius,
			Stroke: solid,
		})
	case PolylineDraft:
		if len(d.Points) == 0 {
			return
		}
		pts := make([]Point, 0, len(d.Points)+1)
		for _, p := range d.Points {
			pts = append(pts, v.WorldToScreen(p))
		}
		if d.Current != nil {
			pts = append(pts, v.WorldToScreen(*d.Current))
		}
		if len(pts) < 2 {
			return
		}
		s.add(PathItem{Points: pts, Stroke: solid})
	}
}

// renderDraftBounds emits the fixed-style bounding box, corner handles
// and live dimension label for the engine-reported draft bounds. It
// composes with renderDraftPreview: both render for the same draft.
func (c *Composer) renderDraftBounds(s *Scene, dims engine.DraftDimensions, v View) {
	if !dims.Active {
		return
	}
	t := c.cfg.theme

	r := RectFromPoints(
		v.WorldToScreen(Pt(dims.MinX, dims.MinY)),
		v.WorldToScreen(Pt(dims.MaxX, dims.MaxY)),
	)
	s.add(RectItem{Rect: r, Stroke: t.solid(t.DraftBounds)})
	for _, corner := range r.Corners() {
		s.add(MarkerItem{
			Center: corner,
			Size:   HandleSize,
			Fill:   t.HandleFill,
			Stroke: t.solid(t.HandleStroke),
		})
	}

	text := label.FormatDimensions(dims.Width, dims.Height)
	s.add(LabelItem{
		Text:       text,
		Anchor:     Pt(r.Center().X, r.Max.Y+LabelGap),
		Width:      c.cfg.measurer.Measure(text, LabelTextSize),
		Height:     LabelHeight,
		Corner:     LabelCorner,
		Color:      t.LabelText,
		Background: t.LabelBackground,
	})
}
