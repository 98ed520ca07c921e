package engine

import (
	"encoding/binary"
	"log/slog"
	"math"
)

// Buffer is a decoded overlay buffer: an ordered primitive list over a
// flat coordinate array (2 float32 per point). Both slices are copies;
// a Buffer stays valid after the engine mutates, but decoding is cheap
// enough to run once per frame, so nothing caches Buffers across frames.
type Buffer struct {
	Primitives []Primitive
	Data       []float32
}

// Empty reports whether the buffer contains no drawable primitives.
func (b Buffer) Empty() bool {
	return len(b.Primitives) == 0
}

// PointAt returns point i of primitive p as world-space coordinates.
// ok is false when i is outside the primitive's range. Decode already
// dropped primitives whose runs exceed the data array, so in-range
// indices never read out of bounds.
func (b Buffer) PointAt(p Primitive, i int) (x, y float64, ok bool) {
	if i < 0 || uint32(i) >= p.Count {
		return 0, 0, false
	}
	base := int(p.Offset) + i*2
	return float64(b.Data[base]), float64(b.Data[base+1]), true
}

// Points returns all points of primitive p as a fresh slice of (x, y)
// pairs.
func (b Buffer) Points(p Primitive) [][2]float64 {
	out := make([][2]float64, 0, p.Count)
	for i := 0; uint32(i) < p.Count; i++ {
		x, y, ok := b.PointAt(p, i)
		if !ok {
			break
		}
		out = append(out, [2]float64{x, y})
	}
	return out
}

// Decode parses the overlay buffer described by meta out of the engine's
// shared memory region in a single linear scan.
//
// An empty buffer (zero primitive or float counts) is a valid
// zero-primitive result, not an error. Metadata whose pointers or counts
// fall outside mem yields an empty Buffer with a warning log; individual
// primitives violating offset+count*2 <= floatCount are dropped. Decode
// performs no coordinate transformation, so one decoded Buffer can be
// reused across view transform changes within a frame.
func Decode(mem []byte, meta BufferMeta) Buffer {
	if meta.PrimitiveCount == 0 || meta.FloatCount == 0 {
		return Buffer{}
	}

	primBytes, ok := slice(mem, meta.PrimitivesPtr, int(meta.PrimitiveCount)*primitiveWireSize)
	if !ok {
		logger().Warn("overlay buffer primitive table out of range",
			slog.Uint64("ptr", uint64(meta.PrimitivesPtr)),
			slog.Uint64("count", uint64(meta.PrimitiveCount)))
		return Buffer{}
	}
	dataBytes, ok := slice(mem, meta.DataPtr, int(meta.FloatCount)*4)
	if !ok {
		logger().Warn("overlay buffer data array out of range",
			slog.Uint64("ptr", uint64(meta.DataPtr)),
			slog.Uint64("floats", uint64(meta.FloatCount)))
		return Buffer{}
	}

	data := make([]float32, meta.FloatCount)
	for i := range data {
		data[i] = math.Float32frombits(binary.LittleEndian.Uint32(dataBytes[i*4:]))
	}

	prims := make([]Primitive, 0, meta.PrimitiveCount)
	for i := 0; i < int(meta.PrimitiveCount); i++ {
		rec := primBytes[i*primitiveWireSize:]
		p := Primitive{
			Kind:   PrimitiveKind(binary.LittleEndian.Uint16(rec[0:])),
			Flags:  binary.LittleEndian.Uint16(rec[2:]),
			Count:  binary.LittleEndian.Uint32(rec[4:]),
			Offset: binary.LittleEndian.Uint32(rec[8:]),
		}
		if uint64(p.Offset)+uint64(p.Count)*2 > uint64(meta.FloatCount) {
			logger().Debug("dropping overlay primitive exceeding data array",
				slog.Int("index", i),
				slog.Uint64("offset", uint64(p.Offset)),
				slog.Uint64("count", uint64(p.Count)))
			continue
		}
		prims = append(prims, p)
	}

	return Buffer{Primitives: prims, Data: data}
}

// slice bounds-checks a pointer+length window into mem.
func slice(mem []byte, ptr uintptr, length int) ([]byte, bool) {
	if length < 0 {
		return nil, false
	}
	off := int(ptr)
	if off < 0 || off > len(mem) || length > len(mem)-off {
		return nil, false
	}
	return mem[off : off+length], true
}
