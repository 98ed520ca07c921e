package overlay

import (
	"testing"

	"github.com/cadkit/overlay/label"
)

type fixedMeasurer struct{ w float64 }

func (m fixedMeasurer) Measure(string, float64) float64 { return m.w }

func TestOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := defaultConfig()
		if cfg.theme.Selection != DefaultTheme().Selection {
			t.Errorf("default theme selection = %v, want stock", cfg.theme.Selection)
		}
		if _, ok := cfg.measurer.(label.Approx); !ok {
			t.Errorf("default measurer = %T, want label.Approx", cfg.measurer)
		}
		if cfg.nativeHandles {
			t.Error("nativeHandles should default to false")
		}
	})

	t.Run("with theme", func(t *testing.T) {
		custom := DefaultTheme()
		custom.Selection = RGB(1, 0, 0)
		cfg := defaultConfig()
		WithTheme(custom)(&cfg)
		if cfg.theme.Selection != RGB(1, 0, 0) {
			t.Errorf("theme selection = %v, want red", cfg.theme.Selection)
		}
	})

	t.Run("with measurer", func(t *testing.T) {
		cfg := defaultConfig()
		WithMeasurer(fixedMeasurer{w: 42})(&cfg)
		if got := cfg.measurer.Measure("x", 12); got != 42 {
			t.Errorf("Measure = %v, want 42", got)
		}
	})

	t.Run("nil measurer keeps default", func(t *testing.T) {
		cfg := defaultConfig()
		WithMeasurer(nil)(&cfg)
		if _, ok := cfg.measurer.(label.Approx); !ok {
			t.Errorf("measurer = %T, want the default approximation", cfg.measurer)
		}
	})

	t.Run("with native handles", func(t *testing.T) {
		cfg := defaultConfig()
		WithNativeHandles(true)(&cfg)
		if !cfg.nativeHandles {
			t.Error("nativeHandles should be set")
		}
	})
}
