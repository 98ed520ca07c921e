package label

import (
	"golang.org/x/image/font"
)

// FaceMeasurer measures labels with a concrete x/image font face. The
// face's own size is used; the size argument to Measure only scales the
// result relative to the face size when both are known.
//
// font.Face is not safe for concurrent use; neither is FaceMeasurer.
type FaceMeasurer struct {
	Face font.Face

	// FaceSize is the point size Face was created at. Zero disables
	// rescaling and the face's native advance is returned.
	FaceSize float64

	// Padding is added once to the measured width.
	Padding float64
}

// Measure implements Measurer using font.MeasureString.
func (m FaceMeasurer) Measure(text string, size float64) float64 {
	if m.Face == nil {
		return Approx{}.Measure(text, size)
	}
	advance := float64(font.MeasureString(m.Face, text)) / 64
	if m.FaceSize > 0 && size > 0 {
		advance *= size / m.FaceSize
	}
	return advance + m.Padding
}
