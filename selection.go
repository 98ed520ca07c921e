package overlay

import (
	"github.com/cadkit/overlay/engine"
)

// renderSelection emits the selection overlay: per-entity outline and
// handles for a single selection, or the aggregate bounding box with
// corner handles for a multi selection.
//
// Mutual exclusion with the draft overlay and the appearance-editing
// suppression are enforced by the caller (Compose); this method only
// looks at engine selection state.
func (c *Composer) renderSelection(s *Scene, eng engine.Engine, mem []byte, v View) {
	count := eng.SelectionCount()
	if count <= 0 {
		return
	}
	t := c.cfg.theme

	if count == 1 {
		outline := engine.Decode(mem, eng.SelectionOutlineMeta())
		c.addPrimitives(s, outline, v, t.solid(t.Selection))

		if !c.nativeHandles(eng) {
			handles := engine.Decode(mem, eng.SelectionHandleMeta())
			for _, prim := range handles.Primitives {
				for _, pt := range handles.Points(prim) {
					s.add(MarkerItem{
						Center: v.WorldToScreen(Pt(pt[0], pt[1])),
						Size:   HandleSize,
						Fill:   t.HandleFill,
						Stroke: t.solid(t.HandleStroke),
					})
				}
			}
		}
		return
	}

	b := eng.SelectionBounds()
	if !b.Valid {
		return
	}
	// Re-normalize after projection: a flipped view can swap axis order.
	r := RectFromPoints(
		v.WorldToScreen(Pt(b.MinX, b.MinY)),
		v.WorldToScreen(Pt(b.MaxX, b.MaxY)),
	)
	s.add(RectItem{Rect: r, Stroke: t.solid(t.Selection)})
	for _, corner := range r.Corners() {
		s.add(MarkerItem{
			Center: corner,
			Size:   HandleSize,
			Fill:   t.HandleFill,
			Stroke: t.solid(t.HandleStroke),
		})
	}
}

// renderSnapGuides emits snap guide geometry. Guides are decoded and
// projected independently of selection state, whenever an interaction
// is in flight.
func (c *Composer) renderSnapGuides(s *Scene, eng engine.Engine, mem []byte, v View) {
	if !eng.InteractionActive() {
		return
	}
	guides := engine.Decode(mem, eng.SnapOverlayMeta())
	c.addPrimitives(s, guides, v, c.cfg.theme.solid(c.cfg.theme.Guide))
}

// addPrimitives projects decoded buffer primitives into path items.
// Two-point Segment primitives become straight lines, Polygon
// primitives closed paths, everything else an open path. Primitives
// with fewer than two points are degenerate and skipped.
func (c *Composer) addPrimitives(s *Scene, buf engine.Buffer, v View, stroke Stroke) {
	for _, prim := range buf.Primitives {
		if prim.Count < 2 {
			continue
		}
		pts := make([]Point, 0, prim.Count)
		for _, pt := range buf.Points(prim) {
			pts = append(pts, v.WorldToScreen(Pt(pt[0], pt[1])))
		}
		s.add(PathItem{
			Points: pts,
			Closed: prim.Kind == engine.KindPolygon,
			Stroke: stroke,
		})
	}
}

// nativeHandles reports whether handle markers should be left to the
// engine: only when the host opted in and the engine's capability mask
// advertises native handle rendering. Without both, handles are always
// rendered here.
func (c *Composer) nativeHandles(eng engine.Engine) bool {
	return c.cfg.nativeHandles && eng.Features().Has(engine.FeatureNativeHandles)
}
