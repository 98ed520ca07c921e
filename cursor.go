package overlay

import "math"

// HandleKind identifies a resize handle by compass direction.
type HandleKind uint8

// Resize handle directions. Base angles increase clockwise in 45 degree
// steps starting at East = 0.
const (
	HandleE HandleKind = iota
	HandleNE
	HandleN
	HandleNW
	HandleW
	HandleSW
	HandleS
	HandleSE
)

// BaseAngle returns the handle's compass direction in degrees
// (E: 0, NE: 45, N: 90, NW: 135, W: 180, SW: 225, S: 270, SE: 315).
func (h HandleKind) BaseAngle() float64 {
	return float64(h) * 45
}

// String returns the compass name of the handle.
func (h HandleKind) String() string {
	switch h {
	case HandleE:
		return "e"
	case HandleNE:
		return "ne"
	case HandleN:
		return "n"
	case HandleNW:
		return "nw"
	case HandleW:
		return "w"
	case HandleSW:
		return "sw"
	case HandleS:
		return "s"
	case HandleSE:
		return "se"
	default:
		return "unknown"
	}
}

// Cursor glyph calibration, defined once for the process. The resize
// cursor asset is authored on the 135 degree diagonal, the rotate cursor
// asset pointing straight up; the offsets normalize both to 0 degrees.
const (
	// ResizeCursorOffset corrects the resize cursor glyph orientation.
	ResizeCursorOffset = -135.0

	// RotateCursorOffset corrects the rotate cursor glyph orientation.
	RotateCursorOffset = 90.0
)

// diagonalOrder is the legacy numeric-index order for the four diagonal
// resize handles.
var diagonalOrder = [4]HandleKind{HandleNE, HandleNW, HandleSW, HandleSE}

// ResizeCursorAngle returns the rotation in degrees to apply to the
// resize cursor glyph for the given handle, normalized to (-180, 180].
func ResizeCursorAngle(h HandleKind) float64 {
	return NormalizeAngle(h.BaseAngle() + ResizeCursorOffset)
}

// ResizeCursorAngleIndex is a deliberately permissive compatibility
// alias for callers that still pass numeric diagonal-handle indices.
// Index 0..3 maps to {NE, NW, SW, SE}; out-of-domain indices wrap
// modulo 4 rather than failing. New callers should use HandleKind and
// ResizeCursorAngle directly.
func ResizeCursorAngleIndex(i int) float64 {
	i %= len(diagonalOrder)
	if i < 0 {
		i += len(diagonalOrder)
	}
	return ResizeCursorAngle(diagonalOrder[i])
}

// RotationCursorAngle returns the rotation in degrees for the rotate
// cursor glyph while the mouse orbits the selection center. Both points
// must already be in screen space.
func RotationCursorAngle(center, mouse Point) float64 {
	deg := math.Atan2(mouse.Y-center.Y, mouse.X-center.X) * 180 / math.Pi
	return NormalizeAngle(deg + RotateCursorOffset)
}

// NormalizeAngle wraps an angle in degrees into (-180, 180].
// Idempotent: NormalizeAngle(NormalizeAngle(x)) == NormalizeAngle(x)
// for all finite x.
func NormalizeAngle(angle float64) float64 {
	for angle > 180 {
		angle -= 360
	}
	for angle <= -180 {
		angle += 360
	}
	return angle
}
