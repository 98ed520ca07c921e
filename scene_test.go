package overlay

import "testing"

func TestItem_Bounds(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want Rect
	}{
		{
			"empty path",
			PathItem{},
			Rect{},
		},
		{
			"path",
			PathItem{Points: []Point{Pt(1, 2), Pt(5, -3), Pt(0, 4)}},
			Rect{Min: Pt(0, -3), Max: Pt(5, 4)},
		},
		{
			"rect",
			RectItem{Rect: RectFromPoints(Pt(1, 1), Pt(4, 6))},
			Rect{Min: Pt(1, 1), Max: Pt(4, 6)},
		},
		{
			"ellipse",
			EllipseItem{Center: Pt(10, 10), Rx: 4, Ry: 2},
			Rect{Min: Pt(6, 8), Max: Pt(14, 12)},
		},
		{
			"marker",
			MarkerItem{Center: Pt(5, 5), Size: 8},
			Rect{Min: Pt(1, 1), Max: Pt(9, 9)},
		},
		{
			"label hangs below anchor",
			LabelItem{Anchor: Pt(50, 100), Width: 40, Height: 18},
			Rect{Min: Pt(30, 100), Max: Pt(70, 118)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Bounds(); got != tt.want {
				t.Errorf("Bounds() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScene_Empty(t *testing.T) {
	var nilScene *Scene
	if !nilScene.Empty() {
		t.Error("nil scene should be empty")
	}
	if !(&Scene{}).Empty() {
		t.Error("scene with no items should be empty")
	}

	s := &Scene{}
	s.add(MarkerItem{Center: Pt(0, 0), Size: 8})
	if s.Empty() {
		t.Error("scene with an item should not be empty")
	}
}

func TestScene_Filters(t *testing.T) {
	s := &Scene{}
	s.add(
		PathItem{Points: []Point{Pt(0, 0), Pt(1, 0)}},
		MarkerItem{Center: Pt(0, 0), Size: 8},
		RectItem{Rect: RectFromPoints(Pt(0, 0), Pt(1, 1))},
		PathItem{Points: []Point{Pt(2, 0), Pt(3, 0)}},
	)

	if got := s.PathsOf(); len(got) != 2 {
		t.Errorf("PathsOf() returned %d paths, want 2", len(got))
	}
	if got := s.MarkersOf(); len(got) != 1 {
		t.Errorf("MarkersOf() returned %d markers, want 1", len(got))
	}

	var nilScene *Scene
	if nilScene.PathsOf() != nil || nilScene.MarkersOf() != nil {
		t.Error("filters on nil scene should return nil")
	}
}
