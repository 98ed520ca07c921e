package overlay

// MarqueeMode distinguishes window from crossing selection. The mode is
// decided once at drag start (window when the drag moves left to right,
// crossing when right to left) and stays fixed for the gesture's
// lifetime.
type MarqueeMode uint32

// Marquee modes, matching the engine protocol values.
const (
	ModeWindow   MarqueeMode = 0
	ModeCrossing MarqueeMode = 1
)

// Marquee is an active rubber-band selection gesture in world space.
type Marquee struct {
	Start, Current Point
	Mode           MarqueeMode
}

// renderMarquee emits the rubber-band rectangle: a translucent fill
// with a solid stroke for window selection and a dashed stroke for
// crossing selection. The stroke-style distinction is a fixed
// convention; the geometry is identical for both modes.
func (c *Composer) renderMarquee(s *Scene, m *Marquee, v View) {
	if m == nil {
		return
	}
	t := c.cfg.theme

	stroke := t.solid(t.Marquee)
	if m.Mode == ModeCrossing {
		stroke = t.dashed(t.Marquee)
	}

	s.add(RectItem{
		Rect: RectFromPoints(
			v.WorldToScreen(m.Start),
			v.WorldToScreen(m.Current),
		),
		Stroke: stroke,
		Fill:   t.MarqueeFill,
	})
}
