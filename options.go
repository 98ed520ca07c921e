package overlay

import "github.com/cadkit/overlay/label"

// Option configures a Composer during creation.
//
// Example:
//
//	c := overlay.NewComposer(handle,
//	    overlay.WithTheme(myTheme),
//	    overlay.WithNativeHandles(true),
//	)
type Option func(*config)

// config holds optional Composer configuration.
type config struct {
	theme         Theme
	measurer      label.Measurer
	nativeHandles bool
}

func defaultConfig() config {
	return config{
		theme:    DefaultTheme(),
		measurer: label.Approx{},
	}
}

// WithTheme replaces the stock overlay theme.
func WithTheme(t Theme) Option {
	return func(c *config) {
		c.theme = t
	}
}

// WithMeasurer replaces the dimension label measurer. The default is
// the font-free approximation; hosts with a real font face can supply
// label.FaceMeasurer or label.GoTextMeasurer for exact widths.
func WithMeasurer(m label.Measurer) Option {
	return func(c *config) {
		if m != nil {
			c.measurer = m
		}
	}
}

// WithNativeHandles opts in to engine-native resize-handle rendering.
// The markers are only actually suppressed when the engine's capability
// mask also advertises the feature; otherwise handles keep rendering
// here regardless of this option.
func WithNativeHandles(enabled bool) Option {
	return func(c *config) {
		c.nativeHandles = enabled
	}
}
