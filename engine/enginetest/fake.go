// Package enginetest provides a configurable in-memory Engine fake and
// a shared-memory buffer builder that lays out overlay buffers exactly
// the way the engine does. It backs the decoder and renderer tests.
package enginetest

import (
	"encoding/binary"
	"math"

	"github.com/cadkit/overlay/engine"
)

// Fake is an in-memory engine.Engine with settable state.
// The zero value reports the overlay-queries feature, no selection, no
// draft and an empty memory region.
type Fake struct {
	FeatureMask engine.Feature
	Gen         uint64
	Interaction bool

	Count   int
	Bounds  engine.Bounds
	Outline engine.BufferMeta
	Handles engine.BufferMeta
	Snap    engine.BufferMeta
	Draft   engine.DraftDimensions

	Mem []byte
}

// New returns a Fake with the overlay-queries feature set.
func New() *Fake {
	return &Fake{FeatureMask: engine.FeatureProtocol | engine.FeatureOverlayQueries}
}

func (f *Fake) Features() engine.Feature { return f.FeatureMask }
func (f *Fake) Generation() uint64 { return f.Gen }
func (f *Fake) InteractionActive() bool { return f.Interaction }
func (f *Fake) SelectionCount() int { return f.Count }
func (f *Fake) SelectionBounds() engine.Bounds { return f.Bounds }
func (f *Fake) SelectionOutlineMeta() engine.BufferMeta { return f.Outline }
func (f *Fake) SelectionHandleMeta() engine.BufferMeta { return f.Handles }
func (f *Fake) SnapOverlayMeta() engine.BufferMeta { return f.Snap }
func (f *Fake) DraftDimensions() engine.DraftDimensions { return f.Draft }
func (f *Fake) Memory() []byte { return f.Mem }

// Bump increments the generation counter, simulating an engine mutation.
func (f *Fake) Bump() { f.Gen++ }

// Prim is one primitive for BuildBuffer: a kind plus its points.
type Prim struct {
	Kind   engine.PrimitiveKind
	Points [][2]float64
}

// BuildBuffer appends an engine-layout overlay buffer (primitive table
// followed by the float32 coordinate array) to f.Mem and returns the
// BufferMeta describing it. Multiple buffers can share one region.
func (f *Fake) BuildBuffer(gen uint32, prims ...Prim) engine.BufferMeta {
	var floats []float32
	records := make([]engine.Primitive, 0, len(prims))
	for _, p := range prims {
		records = append(records, engine.Primitive{
			Kind:   p.Kind,
			Count:  uint32(len(p.Points)),
			Offset: uint32(len(floats)),
		})
		for _, pt := range p.Points {
			floats = append(floats, float32(pt[0]), float32(pt[1]))
		}
	}

	primPtr := uintptr(len(f.Mem))
	for _, r := range records {
		var rec [12]byte
		binary.LittleEndian.PutUint16(rec[0:], uint16(r.Kind))
		binary.LittleEndian.PutUint16(rec[2:], r.Flags)
		binary.LittleEndian.PutUint32(rec[4:], r.Count)
		binary.LittleEndian.PutUint32(rec[8:], r.Offset)
		f.Mem = append(f.Mem, rec[:]...)
	}

	dataPtr := uintptr(len(f.Mem))
	for _, v := range floats {
		var word [4]byte
		binary.LittleEndian.PutUint32(word[:], math.Float32bits(v))
		f.Mem = append(f.Mem, word[:]...)
	}

	return engine.BufferMeta{
		Generation:     gen,
		PrimitiveCount: uint32(len(records)),
		FloatCount:     uint32(len(floats)),
		PrimitivesPtr:  primPtr,
		DataPtr:        dataPtr,
	}
}
