package overlay

import "testing"

func TestMatrix_Identity(t *testing.T) {
	m := Identity()
	if !m.IsIdentity() {
		t.Error("Identity() is not identity")
	}
	p := Pt(5, -3)
	if got := m.TransformPoint(p); got != p {
		t.Errorf("identity transform moved %v to %v", p, got)
	}
}

func TestMatrix_Multiply(t *testing.T) {
	// Translate(10, 20) * Scale(2, 2) applied to a point scales first,
	// then translates.
	m := Translate(10, 20).Multiply(Scale(2, 2))
	got := m.TransformPoint(Pt(3, 4))
	want := Pt(16, 28)
	if !got.Approx(want, 1e-12) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestMatrix_Invert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(-40, 7)},
		{"scale", Scale(0.25, 0.25)},
		{"combined", Translate(12, -9).Multiply(Scale(3, 3))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.m.Multiply(tt.m.Invert()).IsIdentity() {
				t.Errorf("m * m^-1 is not identity for %+v", tt.m)
			}
		})
	}
}

func TestMatrix_InvertSingular(t *testing.T) {
	if !Scale(0, 0).Invert().IsIdentity() {
		t.Error("singular matrix inverse should fall back to identity")
	}
}
