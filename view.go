package overlay

// View is the pan/zoom transform between world and screen space:
//
//	screen = world*Scale + Offset
//
// Scale must be positive; a zero or negative scale is a caller contract
// violation guarded upstream, and Valid reports it for gating.
//
// View is the single source of truth for the conversion. Renderers in
// this package never compute their own scale/offset arithmetic; they
// call WorldToScreen for every point they emit.
type View struct {
	OffsetX, OffsetY float64
	Scale            float64
}

// IdentityView returns the view that maps world space 1:1 onto screen
// space with no pan.
func IdentityView() View {
	return View{Scale: 1}
}

// Valid reports whether the view has a usable positive scale.
func (v View) Valid() bool {
	return v.Scale > 0
}

// Matrix returns the world-to-screen transform as an affine matrix.
func (v View) Matrix() Matrix {
	return Translate(v.OffsetX, v.OffsetY).Multiply(Scale(v.Scale, v.Scale))
}

// WorldToScreen projects a world-space point into screen space.
// Pure and total; with Scale == 0 the result is degenerate by contract.
func (v View) WorldToScreen(p Point) Point {
	return v.Matrix().TransformPoint(p)
}

// ScreenToWorld is the exact mathematical inverse of WorldToScreen.
func (v View) ScreenToWorld(p Point) Point {
	return v.Matrix().Invert().TransformPoint(p)
}

// CanvasSize holds the viewport pixel dimensions. The overlay is
// suppressed entirely when either dimension is not positive.
type CanvasSize struct {
	Width, Height float64
}

// Empty reports whether the canvas cannot display an overlay.
func (c CanvasSize) Empty() bool {
	return c.Width <= 0 || c.Height <= 0
}
