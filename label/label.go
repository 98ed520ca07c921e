// Package label formats and measures the overlay's dimension labels.
//
// Measurement is pluggable the way the text shaping stack is in most
// renderers: a cheap built-in approximation that needs no font at all,
// plus adapters for hosts that already carry an x/image font.Face or a
// go-text/typesetting face. The label is advisory UI, so approximate
// widths are acceptable; exact glyph metrics are a bonus, not a
// requirement.
package label

import (
	"fmt"
	"math"

	"golang.org/x/text/unicode/norm"
)

// FormatDimensions renders a draft's world-unit size as the overlay
// label text, e.g. "30 × 20". Dimensions are rounded to whole units.
func FormatDimensions(width, height float64) string {
	return fmt.Sprintf("%d × %d", int(math.Round(width)), int(math.Round(height)))
}

// Measurer computes the advance width in pixels of a single-line label
// rendered at the given font size.
type Measurer interface {
	Measure(text string, size float64) float64
}

// Approx estimates label width as character count times an em factor.
// Characters are counted after NFC normalization so combining sequences
// count once. This is the default measurer.
type Approx struct {
	// EmFactor is the assumed average advance per character as a
	// fraction of the font size. Zero means DefaultEmFactor.
	EmFactor float64

	// Padding is added once to the measured width. Zero means
	// DefaultPadding.
	Padding float64
}

// Approximation defaults, tuned for the stock label font size.
const (
	DefaultEmFactor = 0.58
	DefaultPadding  = 12.0
)

// Measure implements Measurer.
func (a Approx) Measure(text string, size float64) float64 {
	em := a.EmFactor
	if em == 0 {
		em = DefaultEmFactor
	}
	pad := a.Padding
	if pad == 0 {
		pad = DefaultPadding
	}

	n := 0
	for range norm.NFC.String(text) {
		n++
	}
	return float64(n)*em*size + pad
}
