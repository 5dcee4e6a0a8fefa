package matshow

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// defaultViewSize is the longest side, in pixels, targeted when no cell
// size is configured.
const defaultViewSize = 512

// MaxFrameSide bounds the width and height of a scaled frame in pixels.
const MaxFrameSide = 16384

// Rasterize draws m as a grayscale image with one pixel per cell.
// Row 0 is the top row of the image. m must be rectangular and non-empty.
func Rasterize(m Matrix, opts ...Option) (*image.Gray, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return rasterize(m, o)
}

func rasterize(m Matrix, o renderOptions) (*image.Gray, error) {
	rows, cols, err := m.Shape()
	if err != nil {
		return nil, err
	}
	if err := o.valueRange.Validate(); err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, cols, rows))
	for y, row := range m {
		off := y * img.Stride
		for x, v := range row {
			img.Pix[off+x] = o.colormap.Gray(o.valueRange.Normalize(v)).Y
		}
	}

	Logger().Debug("matrix rasterized",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Float64("vmin", o.valueRange.Min),
		zap.Float64("vmax", o.valueRange.Max))
	return img, nil
}

// autoCellSize picks the largest whole number of pixels per cell that keeps
// the longest side within defaultViewSize, and at least one.
func autoCellSize(rows, cols int) int {
	n := max(rows, cols)
	if n <= 0 || n >= defaultViewSize {
		return 1
	}
	return defaultViewSize / n
}

// Scale resamples src to a width×height image with nearest-neighbour
// sampling, so every cell stays a solid block.
func Scale(src image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Fit scales src into a width×height image, preserving its aspect ratio
// and centering it on a bg background.
func Fit(src image.Image, width, height int, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	sw, sh := src.Bounds().Dx(), src.Bounds().Dy()
	if sw == 0 || sh == 0 || width == 0 || height == 0 {
		return dst
	}
	w, h := width, sh*width/sw
	if h > height {
		w, h = sw*height/sh, height
	}
	w, h = max(w, 1), max(h, 1)
	x0, y0 := (width-w)/2, (height-h)/2
	draw.NearestNeighbor.Scale(dst, image.Rect(x0, y0, x0+w, y0+h), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Format is an output image encoding.
type Format int

// Supported output formats.
const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

// String returns the lowercase name of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks an encoder from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// SaveImage encodes img to path, choosing the format from the extension.
func SaveImage(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	out, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Encode(out, img, f); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
