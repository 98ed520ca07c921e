// Package overlay renders the interactive overlay of a CAD canvas:
// selection outlines and handles, snap guides, in-progress draft shape
// previews with live dimension labels, and the rubber-band marquee.
//
// # Overview
//
// The geometry being overlaid is owned by an external computation engine
// and exposed through the query contract in the engine subpackage: flat
// binary buffers of overlay primitives plus a handful of scalar queries
// (selection count, aggregate bounds, draft dimensions). This package
// decodes those buffers, projects world-space coordinates to screen
// space under the current pan/zoom view transform, and emits a Scene of
// drawables for the host canvas to paint.
//
//	c := overlay.NewComposer(engine.Resolved(eng))
//	scene := c.Compose(overlay.Inputs{
//	    View:   overlay.View{Scale: 1},
//	    Canvas: overlay.CanvasSize{Width: 800, Height: 600},
//	})
//
// # Coordinate Spaces
//
// World space is the coordinate system of the persisted document,
// independent of zoom and pan. Screen space is viewport pixels. The View
// type owns the conversion in both directions; every renderer in this
// package projects through it and never does its own scale/offset
// arithmetic.
//
// # Purity
//
// Compose is pure over its inputs and the engine generation counter:
// identical inputs yield the identical (memoized) Scene. All failure
// modes (empty buffers, degenerate primitives, invalid bounds, a not
// yet resolved engine) degrade to rendering nothing; overlay absence is
// always visually safe.
package overlay
