package label

import (
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// GoTextMeasurer measures labels by shaping them with go-text's
// HarfBuzz implementation, giving kerning-accurate widths for hosts
// that already carry a typesetting font.
//
// GoTextMeasurer is safe for concurrent use: font.Font is read-only and
// the per-call HarfbuzzShaper instances are pooled since they are not
// concurrent-safe themselves.
type GoTextMeasurer struct {
	fnt     *font.Font
	padding float64
	pool    sync.Pool
}

// NewGoTextMeasurer wraps a parsed typesetting font. Use font.ParseTTF
// to obtain one from raw font data.
func NewGoTextMeasurer(fnt *font.Font, padding float64) *GoTextMeasurer {
	return &GoTextMeasurer{
		fnt:     fnt,
		padding: padding,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

// Measure implements Measurer: the summed glyph advance of a single
// left-to-right run at the given size, plus padding.
func (m *GoTextMeasurer) Measure(text string, size float64) float64 {
	if m == nil || m.fnt == nil || text == "" {
		return Approx{}.Measure(text, size)
	}

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.fnt),
		Size:      fixed.Int26_6(size * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	shaper := m.pool.Get().(*shaping.HarfbuzzShaper)
	output := shaper.Shape(input)
	m.pool.Put(shaper)

	return float64(output.Advance)/64 + m.padding
}
