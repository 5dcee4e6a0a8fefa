package matshow

import (
	"fmt"
	"image/color"
	"math"
	"strings"
)

// Colormap maps a normalized value in [0, 1] to a pixel color.
type Colormap int

const (
	// Gray renders 0 as black, 1 as white and intermediate values as
	// proportional gray levels.
	Gray Colormap = iota
)

// ParseColormap resolves a colormap name. "gray" and "grey" are accepted.
func ParseColormap(name string) (Colormap, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "gray", "grey":
		return Gray, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
}

// String returns the canonical name of the colormap.
func (c Colormap) String() string {
	switch c {
	case Gray:
		return "gray"
	default:
		return fmt.Sprintf("Colormap(%d)", int(c))
	}
}

// Gray returns the gray level for a normalized value t.
// Values outside [0, 1] are clamped.
func (c Colormap) Gray(t float64) color.Gray {
	if math.IsNaN(t) {
		return color.Gray{}
	}
	return color.Gray{Y: uint8(math.Round(clamp255(t * 255)))}
}

// Interpolation selects how cells are resampled when the raster is scaled.
type Interpolation int

const (
	// InterpolationNone draws every cell as a solid block of its raw value.
	InterpolationNone Interpolation = iota
)

// ParseInterpolation resolves an interpolation name. "none" and "nearest"
// are accepted; both mean nearest-neighbour sampling.
func ParseInterpolation(name string) (Interpolation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none", "nearest", "":
		return InterpolationNone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownInterpolation, name)
	}
}

// String returns the canonical name of the interpolation.
func (i Interpolation) String() string {
	switch i {
	case InterpolationNone:
		return "none"
	default:
		return fmt.Sprintf("Interpolation(%d)", int(i))
	}
}

// Range is the value interval mapped onto the colormap.
// Min renders as the first colormap entry and Max as the last.
type Range struct {
	Min, Max float64
}

// UnitRange is the default [0, 1] value range.
var UnitRange = Range{Min: 0, Max: 1}

// Validate checks that the range is finite and non-empty.
func (r Range) Validate() error {
	if math.IsNaN(r.Min) || math.IsNaN(r.Max) || math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) {
		return fmt.Errorf("%w: [%g, %g] is not finite", ErrInvalidRange, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: min %g must be below max %g", ErrInvalidRange, r.Min, r.Max)
	}
	return nil
}

// Normalize maps v into [0, 1]. Values outside the range are clamped and
// NaN maps to 0.
func (r Range) Normalize(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	t := (v - r.Min) / (r.Max - r.Min)
	switch {
	case t < 0:
		return 0
	case t > 1:
		return 1
	}
	return t
}

// Contains reports whether v lies inside the closed range.
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}
