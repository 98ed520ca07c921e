// Package engine defines the query contract of the external computation
// engine and the binary decoding of its shared-memory overlay buffers.
//
// The engine owns all document geometry and interaction math. This
// package consumes it read-only: scalar queries plus flat binary buffers
// (primitive descriptor records over a float32 coordinate array) that
// remain valid only until the engine next mutates. Decoded buffers must
// not outlive the render pass that requested them.
package engine

// Feature is the capability bitmask reported by the engine handshake.
// Optional renderer behavior (engine-native handle rendering, for one)
// must be gated on the mask and fall back when the bit is absent.
type Feature uint32

// Engine capability bits.
const (
	FeatureProtocol Feature = 1 << iota
	FeatureLayersFlags
	FeatureSelectionOrder
	FeatureSnapshotVNext
	FeatureEventStream
	FeatureOverlayQueries
	FeatureInteractiveTransform
	FeatureEngineHistory
	FeatureEngineDocumentSOT

	// FeatureNativeHandles reports that the engine renders resize
	// handles itself, letting the overlay skip its own handle markers.
	FeatureNativeHandles
)

// Has reports whether all bits of want are present in the mask.
func (f Feature) Has(want Feature) bool {
	return f&want == want
}

// PrimitiveKind classifies an overlay primitive.
type PrimitiveKind uint16

// Overlay primitive kinds, matching the engine protocol values.
const (
	KindPolyline PrimitiveKind = 1
	KindPolygon  PrimitiveKind = 2
	KindSegment  PrimitiveKind = 3
	KindRect     PrimitiveKind = 4
	KindPoint    PrimitiveKind = 5
)

// Primitive describes a contiguous run of Count points starting at
// float index Offset in the buffer's coordinate array (2 floats per
// point). The wire record is 12 bytes, little-endian.
type Primitive struct {
	Kind   PrimitiveKind
	Flags  uint16
	Count  uint32
	Offset uint32
}

// primitiveWireSize is the encoded size of one Primitive record.
const primitiveWireSize = 12

// BufferMeta locates an overlay buffer inside the engine's shared
// memory region: a primitive descriptor table and a flat float32
// coordinate array. Generation increments on every engine mutation.
type BufferMeta struct {
	Generation     uint32
	PrimitiveCount uint32
	FloatCount     uint32
	PrimitivesPtr  uintptr
	DataPtr        uintptr
}

// Bounds is an axis-aligned bounding box in world space. Valid is false
// when no bounded result exists (zero entities selected, for one).
type Bounds struct {
	MinX, MinY float64
	MaxX, MaxY float64
	Valid      bool
}

// DraftDimensions describes the in-progress draft shape as the engine
// measures it: world-space bounds plus derived readouts. Active false
// means no draft exists and every other field is meaningless.
type DraftDimensions struct {
	Active bool
	Kind   uint32

	MinX, MinY float64
	MaxX, MaxY float64

	Width, Height    float64
	CenterX, CenterY float64

	// Line/arrow drafts report total and last-segment lengths plus the
	// segment angle; circle drafts report radius and diameter.
	Length        float64
	SegmentLength float64
	AngleDeg      float64
	Radius        float64
	Diameter      float64
}

// Engine is the synchronous, side-effect-free query contract consumed
// by the overlay. All methods are cheap shared-memory reads; none block.
type Engine interface {
	// Features returns the capability bitmask from the handshake.
	Features() Feature

	// Generation is the overlay change tick: it increments whenever any
	// overlay-relevant engine state mutates, invalidating memoized
	// scenes and previously decoded buffers.
	Generation() uint64

	// InteractionActive reports whether a drag/transform interaction is
	// in flight. Snap guides render only while one is.
	InteractionActive() bool

	SelectionCount() int
	SelectionBounds() Bounds
	SelectionOutlineMeta() BufferMeta
	SelectionHandleMeta() BufferMeta
	SnapOverlayMeta() BufferMeta

	DraftDimensions() DraftDimensions

	// Memory exposes the engine's byte-addressable shared region that
	// BufferMeta pointers index into. The slice contents are only valid
	// until the next engine mutation; callers must not retain it.
	Memory() []byte
}
