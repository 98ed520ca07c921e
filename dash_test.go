package overlay

import (
	"math"
	"testing"
)

func TestNewDash(t *testing.T) {
	tests := []struct {
		name    string
		lengths []float64
		wantNil bool
	}{
		{"empty", nil, true},
		{"all zero", []float64{0, 0}, true},
		{"simple", []float64{5, 3}, false},
		{"single", []float64{4}, false},
		{"negative normalized", []float64{-5, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDash(tt.lengths...)
			if (d == nil) != tt.wantNil {
				t.Fatalf("NewDash(%v) = %v, wantNil = %v", tt.lengths, d, tt.wantNil)
			}
			if d == nil {
				return
			}
			for i, l := range d.Array {
				if l < 0 {
					t.Errorf("Array[%d] = %v, want non-negative", i, l)
				}
			}
		})
	}
}

func TestDash_IsDashed(t *testing.T) {
	var nilDash *Dash
	if nilDash.IsDashed() {
		t.Error("nil Dash should not be dashed")
	}
	if (&Dash{}).IsDashed() {
		t.Error("empty Dash should not be dashed")
	}
	if (&Dash{Array: []float64{0, 0}}).IsDashed() {
		t.Error("all-zero Dash should not be dashed")
	}
	if !NewDash(5, 3).IsDashed() {
		t.Error("NewDash(5, 3) should be dashed")
	}
}

func TestDash_PatternLength(t *testing.T) {
	tests := []struct {
		name string
		dash *Dash
		want float64
	}{
		{"nil", nil, 0},
		{"even", NewDash(5, 3), 8},
		{"odd doubles", NewDash(4), 8},
		{"odd triple doubles", NewDash(2, 1, 3), 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dash.PatternLength(); got != tt.want {
				t.Errorf("PatternLength() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDash_NormalizedOffset(t *testing.T) {
	d := NewDash(5, 3)

	tests := []struct {
		name   string
		offset float64
		want   float64
	}{
		{"zero", 0, 0},
		{"in cycle", 6, 6},
		{"wraps", 10, 2},
		{"negative wraps", -2, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d.Offset = tt.offset
			if got := d.NormalizedOffset(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NormalizedOffset() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDash_Clone(t *testing.T) {
	d := NewDash(5, 3)
	d.Offset = 2

	c := d.Clone()
	if c == d {
		t.Fatal("Clone returned the same pointer")
	}
	c.Array[0] = 99
	if d.Array[0] == 99 {
		t.Error("Clone shares the pattern array")
	}

	var nilDash *Dash
	if nilDash.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestDash_Flatten(t *testing.T) {
	line := []Point{Pt(0, 0), Pt(10, 0)}

	t.Run("solid single run", func(t *testing.T) {
		var solid *Dash
		runs := solid.Flatten(line, false)
		if len(runs) != 1 {
			t.Fatalf("got %d runs, want 1", len(runs))
		}
		if len(runs[0]) != 2 || !runs[0][0].Approx(Pt(0, 0), 1e-9) || !runs[0][1].Approx(Pt(10, 0), 1e-9) {
			t.Errorf("run = %v, want original polyline", runs[0])
		}
	})

	t.Run("solid closed appends start", func(t *testing.T) {
		var solid *Dash
		tri := []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}
		runs := solid.Flatten(tri, true)
		if len(runs) != 1 {
			t.Fatalf("got %d runs, want 1", len(runs))
		}
		if got := runs[0][len(runs[0])-1]; !got.Approx(Pt(0, 0), 1e-9) {
			t.Errorf("closing point = %v, want (0, 0)", got)
		}
	})

	t.Run("even pattern", func(t *testing.T) {
		runs := NewDash(2, 3).Flatten(line, false)
		// On [0,2], off (2,5), on [5,7], off (7,10).
		if len(runs) != 2 {
			t.Fatalf("got %d runs, want 2: %v", len(runs), runs)
		}
		wantStarts := []float64{0, 5}
		wantEnds := []float64{2, 7}
		for i, run := range runs {
			first, last := run[0], run[len(run)-1]
			if math.Abs(first.X-wantStarts[i]) > 1e-9 || math.Abs(last.X-wantEnds[i]) > 1e-9 {
				t.Errorf("run %d spans [%v, %v], want [%v, %v]", i, first.X, last.X, wantStarts[i], wantEnds[i])
			}
		}
	})

	t.Run("too short", func(t *testing.T) {
		if runs := NewDash(2, 3).Flatten([]Point{Pt(0, 0)}, false); runs != nil {
			t.Errorf("got %v, want nil", runs)
		}
	})
}
