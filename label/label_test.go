package label

import "testing"

func TestFormatDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		want          string
	}{
		{"integers", 30, 20, "30 × 20"},
		{"rounds down", 30.4, 20.4, "30 × 20"},
		{"rounds up", 29.5, 19.6, "30 × 20"},
		{"zero", 0, 0, "0 × 0"},
		{"large", 12345.2, 6789.9, "12345 × 6790"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDimensions(tt.width, tt.height); got != tt.want {
				t.Errorf("FormatDimensions(%v, %v) = %q, want %q", tt.width, tt.height, got, tt.want)
			}
		})
	}
}

func TestApprox_Measure(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var m Approx
		want := 5*DefaultEmFactor*12 + DefaultPadding
		if got := m.Measure("30×20", 12); got != want {
			t.Errorf("Measure = %v, want %v", got, want)
		}
	})

	t.Run("custom factors", func(t *testing.T) {
		m := Approx{EmFactor: 0.5, Padding: 4}
		if got := m.Measure("ab", 10); got != 0.5*2*10+4 {
			t.Errorf("Measure = %v, want 14", got)
		}
	})

	t.Run("empty text is padding only", func(t *testing.T) {
		var m Approx
		if got := m.Measure("", 12); got != DefaultPadding {
			t.Errorf("Measure(\"\") = %v, want %v", got, DefaultPadding)
		}
	})

	t.Run("combining sequences count once", func(t *testing.T) {
		var m Approx
		composed := m.Measure("é", 12)   // é precomposed
		combining := m.Measure("é", 12) // e + combining acute
		if composed != combining {
			t.Errorf("composed %v != combining %v", composed, combining)
		}
	})

	t.Run("width grows with size", func(t *testing.T) {
		var m Approx
		if m.Measure("abc", 24) <= m.Measure("abc", 12) {
			t.Error("larger size should measure wider")
		}
	})
}
