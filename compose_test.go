package overlay

import (
	"context"
	"testing"

	"github.com/cadkit/overlay/engine"
	"github.com/cadkit/overlay/engine/enginetest"
)

func testInputs() Inputs {
	return Inputs{
		View:   IdentityView(),
		Canvas: CanvasSize{Width: 800, Height: 600},
	}
}

func TestCompose_Memoization(t *testing.T) {
	f := enginetest.New()
	f.Count = 2
	f.Bounds = engine.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10, Valid: true}
	c := NewComposer(engine.Resolved(f))

	in := testInputs()
	first := c.Compose(in)
	second := c.Compose(in)
	if first != second {
		t.Error("identical inputs should return the identical memoized scene")
	}

	bumped := in
	bumped.Tick++
	third := c.Compose(bumped)
	if third == first {
		t.Error("bumping Tick should recompute the scene")
	}

	c.Invalidate()
	fourth := c.Compose(bumped)
	if fourth == third {
		t.Error("Invalidate should force recomputation")
	}
}

func TestCompose_MemoKeyFields(t *testing.T) {
	f := enginetest.New()
	c := NewComposer(engine.Resolved(f))

	base := testInputs()
	first := c.Compose(base)

	tests := []struct {
		name   string
		mutate func(in *Inputs)
	}{
		{"view pan", func(in *Inputs) { in.View.OffsetX += 5 }},
		{"view zoom", func(in *Inputs) { in.View.Scale *= 2 }},
		{"canvas resize", func(in *Inputs) { in.Canvas.Width += 1 }},
		{"draft appears", func(in *Inputs) { in.Draft = LineDraft{Start: Pt(0, 0), Current: Pt(1, 1)} }},
		{"marquee appears", func(in *Inputs) { in.Marquee = &Marquee{Start: Pt(0, 0), Current: Pt(1, 1)} }},
		{"editing appearance", func(in *Inputs) { in.EditingAppearance = true }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			if got := c.Compose(in); got == first {
				t.Error("changed input should not hit the memo")
			}
			// Restore the baseline memo for the next case.
			first = c.Compose(base)
		})
	}
}

func TestCompose_EmptyGates(t *testing.T) {
	f := enginetest.New()
	f.Count = 1
	f.Outline = f.BuildBuffer(1, enginetest.Prim{
		Kind:   engine.KindPolygon,
		Points: [][2]float64{{0, 0}, {10, 0}, {10, 10}},
	})

	tests := []struct {
		name   string
		handle *engine.Handle
		in     Inputs
	}{
		{
			"unresolved engine",
			engine.Open(context.Background(), func(ctx context.Context) (engine.Engine, error) {
				select {} // never resolves
			}),
			testInputs(),
		},
		{
			"empty canvas",
			engine.Resolved(f),
			Inputs{View: IdentityView()},
		},
		{
			"invalid view scale",
			engine.Resolved(f),
			Inputs{View: View{Scale: 0}, Canvas: CanvasSize{Width: 800, Height: 600}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewComposer(tt.handle)
			if s := c.Compose(tt.in); !s.Empty() {
				t.Errorf("scene has %d items, want empty", len(s.Items))
			}
		})
	}
}

func TestCompose_SelectionDraftMutualExclusion(t *testing.T) {
	f := enginetest.New()
	f.Count = 2
	f.Bounds = engine.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10, Valid: true}
	c := NewComposer(engine.Resolved(f))

	in := testInputs()
	if s := c.Compose(in); s.Empty() {
		t.Fatal("selection overlay should render without a draft")
	}

	in.Draft = LineDraft{Start: Pt(0, 0), Current: Pt(5, 5)}
	s := c.Compose(in)
	// The draft segment renders; the selection rect and markers do not.
	if got := len(s.MarkersOf()); got != 0 {
		t.Errorf("got %d selection markers during draft, want 0", got)
	}
	if got := len(s.PathsOf()); got != 1 {
		t.Errorf("got %d paths, want the draft segment only", got)
	}
}

func TestCompose_EditingAppearanceSuppressesSelection(t *testing.T) {
	f := enginetest.New()
	f.Count = 2
	f.Bounds = engine.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10, Valid: true}
	c := NewComposer(engine.Resolved(f))

	in := testInputs()
	in.EditingAppearance = true
	if s := c.Compose(in); !s.Empty() {
		t.Errorf("scene has %d items, want none while editing appearance", len(s.Items))
	}
}

func TestCompose_SnapGuidesDuringInteraction(t *testing.T) {
	f := enginetest.New()
	f.Snap = f.BuildBuffer(1, enginetest.Prim{
		Kind:   engine.KindSegment,
		Points: [][2]float64{{0, 0}, {100, 0}},
	})
	c := NewComposer(engine.Resolved(f))

	in := testInputs()
	if s := c.Compose(in); !s.Empty() {
		t.Error("snap guides should not render while no interaction is active")
	}

	f.Interaction = true
	in.Tick++
	s := c.Compose(in)
	if got := len(s.PathsOf()); got != 1 {
		t.Errorf("got %d guide paths, want 1", got)
	}
}
