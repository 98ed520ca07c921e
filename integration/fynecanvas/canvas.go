package fynecanvas

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/cadkit/overlay"
)

// Overlay is a transparent Fyne widget that paints a composed overlay
// scene on top of the host's drawing surface. Stack it above the canvas
// widget in a container.Stack and call Refresh whenever the scene
// inputs change; the widget re-queries Source and rebuilds its canvas
// objects.
//
// Overlay is not safe for concurrent use; drive it from the Fyne main
// loop like any other widget.
type Overlay struct {
	widget.BaseWidget

	// Source produces the current scene, typically a closure over an
	// overlay.Composer and the host's view state. A nil Source or nil
	// scene paints nothing.
	Source func() *overlay.Scene
}

// NewOverlay creates an overlay widget over the given scene source.
func NewOverlay(source func() *overlay.Scene) *Overlay {
	o := &Overlay{Source: source}
	o.ExtendBaseWidget(o)
	return o
}

// CreateRenderer implements fyne.Widget.
func (o *Overlay) CreateRenderer() fyne.WidgetRenderer {
	return &overlayRenderer{widget: o}
}

type overlayRenderer struct {
	widget  *Overlay
	objects []fyne.CanvasObject
}

func (r *overlayRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *overlayRenderer) Refresh() {
	var scene *overlay.Scene
	if r.widget.Source != nil {
		scene = r.widget.Source()
	}
	r.objects = Objects(scene)
	canvas.Refresh(r.widget)
}

// Layout is a no-op: scene items carry absolute screen positions.
func (r *overlayRenderer) Layout(fyne.Size) {}

func (r *overlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *overlayRenderer) Destroy() {}
