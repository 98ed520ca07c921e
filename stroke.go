package overlay

// Stroke defines how an overlay outline is painted: color, width in
// screen pixels, and an optional dash pattern. Widths are fixed pixel
// values independent of zoom, so overlay chrome stays legible at any
// scale.
type Stroke struct {
	Color RGBA

	// Width is the line width in pixels. Default: 1.0
	Width float64

	// Dash is the dash pattern for the stroke.
	// nil means a solid line (no dashing).
	Dash *Dash
}

// SolidStroke returns a solid 1 pixel stroke in the given color.
func SolidStroke(c RGBA) Stroke {
	return Stroke{Color: c, Width: 1}
}

// WithWidth returns a copy of the Stroke with the given width.
func (s Stroke) WithWidth(w float64) Stroke {
	s.Width = w
	return s
}

// WithDash returns a copy of the Stroke with the given dash pattern.
// Pass nil to remove dashing and return to solid lines.
func (s Stroke) WithDash(dash *Dash) Stroke {
	if dash == nil {
		s.Dash = nil
	} else {
		s.Dash = dash.Clone()
	}
	return s
}

// WithDashPattern returns a copy of the Stroke with a dash pattern
// created from the given lengths.
func (s Stroke) WithDashPattern(lengths ...float64) Stroke {
	s.Dash = NewDash(lengths...)
	return s
}

// IsDashed reports whether this stroke has a dash pattern.
func (s Stroke) IsDashed() bool {
	return s.Dash.IsDashed()
}
