package overlay

import (
	"image/color"
	"testing"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		in   RGBA
		want color.NRGBA
	}{
		{"opaque white", RGB(1, 1, 1), color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"opaque black", RGB(0, 0, 0), color.NRGBA{A: 255}},
		{"half alpha", RGB(1, 0, 0).WithAlpha(0.5), color.NRGBA{R: 255, A: 127}},
		{"clamps high", RGBA{R: 2, G: 1, B: 1, A: 1}, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{"clamps low", RGBA{R: -1, A: 1}, color.NRGBA{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RGBA
	}{
		{"rrggbb", "#2287f7", RGBA{R: 0x22 / 255.0, G: 0x87 / 255.0, B: 0xf7 / 255.0, A: 1}},
		{"no hash", "ffffff", RGB(1, 1, 1)},
		{"short rgb", "#fff", RGB(1, 1, 1)},
		{"rrggbbaa", "#ff000080", RGBA{R: 1, A: 0x80 / 255.0}},
		{"invalid length falls back to black", "bogus", RGB(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBA_IsTransparent(t *testing.T) {
	if RGB(1, 1, 1).IsTransparent() {
		t.Error("opaque color should not be transparent")
	}
	if !RGB(1, 1, 1).WithAlpha(0).IsTransparent() {
		t.Error("zero-alpha color should be transparent")
	}
	var zero RGBA
	if !zero.IsTransparent() {
		t.Error("zero value should be transparent")
	}
}
