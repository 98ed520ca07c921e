package overlay

// Fixed overlay metrics, in screen pixels. These mirror the engine's
// interaction constants and stay constant across zoom levels.
const (
	// HandleSize is the side length of square handle markers.
	HandleSize = 8.0

	// SelectionStrokeWidth is the stroke width of selection chrome.
	SelectionStrokeWidth = 1.0

	// LabelHeight is the dimension label background height.
	LabelHeight = 18.0

	// LabelCorner is the dimension label background corner radius.
	LabelCorner = 4.0

	// LabelGap is the vertical gap between a draft bounding box and its
	// dimension label.
	LabelGap = 6.0

	// LabelTextSize is the dimension label font size used for
	// measurement.
	LabelTextSize = 12.0
)

// Theme holds the fixed colors and dash patterns of the overlay. The
// zero value is unusable; start from DefaultTheme.
type Theme struct {
	// Selection outline and handle colors.
	Selection    RGBA
	HandleFill   RGBA
	HandleStroke RGBA

	// Snap guide color, distinct from selection chrome.
	Guide RGBA

	// Draft preview stroke and bounding box colors.
	Draft       RGBA
	DraftBounds RGBA

	// Marquee stroke and translucent fill.
	Marquee     RGBA
	MarqueeFill RGBA

	// Dimension label text and background colors.
	LabelText       RGBA
	LabelBackground RGBA

	// DashPattern is the dash/gap pattern for dashed overlay strokes
	// (crossing marquee, text and conduit previews).
	DashPattern []float64
}

// DefaultTheme returns the stock overlay theme.
func DefaultTheme() Theme {
	return Theme{
		Selection:    RGB(0.13, 0.53, 0.97),
		HandleFill:   RGB(1, 1, 1),
		HandleStroke: RGB(0.13, 0.53, 0.97),

		Guide: RGB(0.93, 0.28, 0.60),

		Draft:       RGB(0.35, 0.38, 0.42),
		DraftBounds: RGB(0.13, 0.53, 0.97),

		Marquee:     RGB(0.13, 0.53, 0.97),
		MarqueeFill: RGB(0.13, 0.53, 0.97).WithAlpha(0.12),

		LabelText:       RGB(1, 1, 1),
		LabelBackground: RGB(0.13, 0.13, 0.15).WithAlpha(0.85),

		DashPattern: []float64{4, 4},
	}
}

// solid returns a 1 px solid selection-weight stroke in the given color.
func (t Theme) solid(c RGBA) Stroke {
	return SolidStroke(c).WithWidth(SelectionStrokeWidth)
}

// dashed returns a 1 px dashed selection-weight stroke in the given color.
func (t Theme) dashed(c RGBA) Stroke {
	return t.solid(c).WithDashPattern(t.DashPattern...)
}
