package matshow

// Option configures a Renderer during creation.
// Use functional options to customize how the matrix is drawn.
//
// Example:
//
//	// Defaults: gray colormap, no interpolation, values in [0, 1]
//	r := matshow.NewRenderer(display)
//
//	// Signed data centered on zero, 8x8 pixels per cell
//	r := matshow.NewRenderer(display,
//	    matshow.WithRange(-1, 1),
//	    matshow.WithCellSize(8))
type Option func(*renderOptions)

// renderOptions holds the display configuration of a Renderer.
type renderOptions struct {
	colormap      Colormap
	interpolation Interpolation
	valueRange    Range
	cellSize      int // pixels per cell; 0 picks a size from the matrix shape
	title         string
}

// defaultOptions returns the default render options.
func defaultOptions() renderOptions {
	return renderOptions{
		colormap:      Gray,
		interpolation: InterpolationNone,
		valueRange:    UnitRange,
		cellSize:      0,
		title:         "matshow",
	}
}

// WithColormap sets the colormap. Gray is the only colormap.
func WithColormap(c Colormap) Option {
	return func(o *renderOptions) {
		o.colormap = c
	}
}

// WithInterpolation sets how cells are resampled when scaled.
func WithInterpolation(i Interpolation) Option {
	return func(o *renderOptions) {
		o.interpolation = i
	}
}

// WithRange sets the value range mapped onto the colormap.
// Values below min render as the first colormap entry, values above max
// as the last. The range is checked when rendering.
func WithRange(lo, hi float64) Option {
	return func(o *renderOptions) {
		o.valueRange = Range{Min: lo, Max: hi}
	}
}

// WithCellSize sets the number of pixels per matrix cell along each axis.
// Zero or a negative value picks a size that fits the default view.
func WithCellSize(px int) Option {
	return func(o *renderOptions) {
		if px < 0 {
			px = 0
		}
		o.cellSize = px
	}
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(o *renderOptions) {
		o.title = title
	}
}
