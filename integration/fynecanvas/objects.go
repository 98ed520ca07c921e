// Package fynecanvas adapts composed overlay scenes to Fyne canvas
// objects, for hosts that paint their drawing surface with
// fyne.io/fyne/v2.
//
// Fyne has no native dashed stroke, so dashed paths and outlines are
// flattened into their "on" runs via overlay.Dash.Flatten and painted
// as plain line segments.
package fynecanvas

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"github.com/cadkit/overlay"
)

// Objects converts a composed scene into Fyne canvas objects, in paint
// order. A nil or empty scene yields no objects.
func Objects(s *overlay.Scene) []fyne.CanvasObject {
	if s.Empty() {
		return nil
	}
	var out []fyne.CanvasObject
	for _, item := range s.Items {
		switch it := item.(type) {
		case overlay.PathItem:
			out = appendPath(out, it.Points, it.Closed, it.Stroke)
		case overlay.RectItem:
			out = appendRect(out, it)
		case overlay.EllipseItem:
			out = append(out, ellipse(it))
		case overlay.MarkerItem:
			out = append(out, marker(it))
		case overlay.LabelItem:
			out = append(out, labelObjects(it)...)
		}
	}
	return out
}

// appendPath paints a polyline as consecutive line segments, splitting
// dashed strokes into their on-runs first.
func appendPath(out []fyne.CanvasObject, pts []overlay.Point, closed bool, stroke overlay.Stroke) []fyne.CanvasObject {
	if len(pts) < 2 {
		return out
	}
	for _, run := range stroke.Dash.Flatten(pts, closed) {
		for i := 0; i+1 < len(run); i++ {
			out = append(out, segment(run[i], run[i+1], stroke))
		}
	}
	return out
}

func segment(a, b overlay.Point, stroke overlay.Stroke) *canvas.Line {
	line := canvas.NewLine(stroke.Color.Color())
	line.StrokeWidth = float32(stroke.Width)
	line.Position1 = fyne.NewPos(float32(a.X), float32(a.Y))
	line.Position2 = fyne.NewPos(float32(b.X), float32(b.Y))
	return line
}

func appendRect(out []fyne.CanvasObject, it overlay.RectItem) []fyne.CanvasObject {
	r := it.Rect
	if !it.Fill.IsTransparent() {
		fill := canvas.NewRectangle(it.Fill.Color())
		fill.Move(fyne.NewPos(float32(r.Min.X), float32(r.Min.Y)))
		fill.Resize(fyne.NewSize(float32(r.Width()), float32(r.Height())))
		out = append(out, fill)
	}

	if it.Stroke.IsDashed() {
		corners := r.Corners()
		return appendPath(out, corners[:], true, it.Stroke)
	}

	outline := canvas.NewRectangle(nil)
	outline.StrokeColor = it.Stroke.Color.Color()
	outline.StrokeWidth = float32(it.Stroke.Width)
	outline.Move(fyne.NewPos(float32(r.Min.X), float32(r.Min.Y)))
	outline.Resize(fyne.NewSize(float32(r.Width()), float32(r.Height())))
	return append(out, outline)
}

// ellipse maps to canvas.Circle, which Fyne renders as the ellipse
// inscribed in its bounding box.
func ellipse(it overlay.EllipseItem) *canvas.Circle {
	c := canvas.NewCircle(nil)
	c.StrokeColor = it.Stroke.Color.Color()
	c.StrokeWidth = float32(it.Stroke.Width)
	b := it.Bounds()
	c.Position1 = fyne.NewPos(float32(b.Min.X), float32(b.Min.Y))
	c.Position2 = fyne.NewPos(float32(b.Max.X), float32(b.Max.Y))
	return c
}

func marker(it overlay.MarkerItem) *canvas.Rectangle {
	rect := canvas.NewRectangle(it.Fill.Color())
	rect.StrokeColor = it.Stroke.Color.Color()
	rect.StrokeWidth = float32(it.Stroke.Width)
	b := it.Bounds()
	rect.Move(fyne.NewPos(float32(b.Min.X), float32(b.Min.Y)))
	rect.Resize(fyne.NewSize(float32(it.Size), float32(it.Size)))
	return rect
}

func labelObjects(it overlay.LabelItem) []fyne.CanvasObject {
	b := it.Bounds()

	bg := canvas.NewRectangle(it.Background.Color())
	bg.CornerRadius = float32(it.Corner)
	bg.Move(fyne.NewPos(float32(b.Min.X), float32(b.Min.Y)))
	bg.Resize(fyne.NewSize(float32(b.Width()), float32(b.Height())))

	text := canvas.NewText(it.Text, it.Color.Color())
	text.TextSize = float32(overlay.LabelTextSize)
	text.Alignment = fyne.TextAlignCenter
	text.Move(fyne.NewPos(float32(b.Min.X), float32(b.Min.Y)))
	text.Resize(fyne.NewSize(float32(b.Width()), float32(b.Height())))

	return []fyne.CanvasObject{bg, text}
}
