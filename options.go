package gg

// RenderOption configures a call to Render.
//
// Example:
//
//	pixmap := gg.Render(scene, gg.WithTolerance(0.1))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	tolerance float64
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		tolerance: defaultFlattenTolerance,
	}
}

// WithTolerance records a maximum flattening error, in device pixels, in
// the render options. Render receives shapes that Document has already
// flattened with Document.Tolerance, so this value does not change
// Render's output.
func WithTolerance(t float64) RenderOption {
	return func(o *renderOptions) {
		if t > 0 {
			o.tolerance = t
		}
	}
}
