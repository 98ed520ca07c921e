// Command overlaydemo shows the overlay compositor over a fake engine:
// a selected rectangle with its handles plus a crossing marquee, painted
// through the Fyne integration.
package main

import (
	"flag"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"github.com/cadkit/overlay"
	"github.com/cadkit/overlay/engine"
	"github.com/cadkit/overlay/engine/enginetest"
	"github.com/cadkit/overlay/integration/fynecanvas"
)

func main() {
	var (
		width   = flag.Int("width", 800, "window width")
		height  = flag.Int("height", 600, "window height")
		verbose = flag.Bool("v", false, "log composition diagnostics")
	)
	flag.Parse()

	if *verbose {
		overlay.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	eng := buildFakeEngine()
	composer := overlay.NewComposer(engine.Resolved(eng))

	marquee := &overlay.Marquee{
		Start:   overlay.Pt(420, 80),
		Current: overlay.Pt(620, 220),
		Mode:    overlay.ModeCrossing,
	}

	source := func() *overlay.Scene {
		return composer.Compose(overlay.Inputs{
			View:    overlay.IdentityView(),
			Canvas:  overlay.CanvasSize{Width: float64(*width), Height: float64(*height)},
			Marquee: marquee,
			Tick:    eng.Generation(),
		})
	}

	a := app.New()
	w := a.NewWindow("overlay demo")
	w.Resize(fyne.NewSize(float32(*width), float32(*height)))

	ov := fynecanvas.NewOverlay(source)
	w.SetContent(container.NewStack(ov))
	ov.Refresh()

	w.ShowAndRun()
}

// buildFakeEngine assembles an in-memory engine with one selected
// rectangle outline and its four corner handles.
func buildFakeEngine() *enginetest.Fake {
	f := enginetest.New()
	f.Count = 1
	f.Outline = f.BuildBuffer(1, enginetest.Prim{
		Kind:   engine.KindPolygon,
		Points: [][2]float64{{120, 120}, {320, 120}, {320, 260}, {120, 260}},
	})
	f.Handles = f.BuildBuffer(1, enginetest.Prim{
		Kind:   engine.KindPoint,
		Points: [][2]float64{{120, 120}, {320, 120}, {320, 260}, {120, 260}},
	})
	return f
}
