package matshow

import (
	"context"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"
)

// Display presents rendered frames to the user.
//
// Show receives the first frame on frames before it is called and blocks
// until the presentation ends: for a window, when the user closes it; for
// a headless display, when frames is closed. Later frames replace the
// visible one.
type Display interface {
	Show(title string, frames <-chan image.Image) error
}

// Renderer turns matrices into grayscale frames and hands them to a Display.
type Renderer struct {
	opts    renderOptions
	display Display
}

// NewRenderer creates a Renderer that presents frames on d.
func NewRenderer(d Display, opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{opts: o, display: d}
}

// Frame rasterizes m and scales every cell to a square block of the
// configured cell size.
func (r *Renderer) Frame(m Matrix) (image.Image, error) {
	img, err := rasterize(m, r.opts)
	if err != nil {
		return nil, err
	}
	rows, cols := img.Rect.Dy(), img.Rect.Dx()
	cs := r.opts.cellSize
	if cs == 0 {
		cs = autoCellSize(rows, cols)
	}
	if cs == 1 {
		return img, nil
	}
	if cs > MaxFrameSide/max(rows, cols) {
		return nil, fmt.Errorf("%w: %d×%d cells at %d px per cell exceeds %d px",
			ErrFrameTooLarge, rows, cols, cs, MaxFrameSide)
	}
	return Scale(img, cols*cs, rows*cs), nil
}

// Render shows m and blocks until the display is dismissed.
// Shape and range problems are reported before the display is touched.
func (r *Renderer) Render(m Matrix) error {
	frame, err := r.Frame(m)
	if err != nil {
		return err
	}
	frames := make(chan image.Image, 1)
	frames <- frame
	close(frames)
	return r.display.Show(r.opts.title, frames)
}

// RenderUpdates shows m like Render, then replaces the displayed frame with
// every matrix received on updates until the display is dismissed, updates
// is closed or ctx is cancelled. An update that cannot be rendered is logged
// and skipped; the previous frame stays on screen.
func (r *Renderer) RenderUpdates(ctx context.Context, m Matrix, updates <-chan Matrix) error {
	first, err := r.Frame(m)
	if err != nil {
		return err
	}

	frames := make(chan image.Image, 1)
	frames <- first

	done := make(chan struct{})
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		defer close(frames)
		r.forward(ctx, updates, frames, done)
	}()

	err = r.display.Show(r.opts.title, frames)
	close(done)
	<-stopped
	return err
}

func (r *Renderer) forward(ctx context.Context, updates <-chan Matrix, frames chan<- image.Image, done <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-done:
			return
		case next, ok := <-updates:
			if !ok {
				return
			}
			img, err := r.Frame(next)
			if err != nil {
				Logger().Warn("update skipped", zap.Error(err))
				continue
			}
			select {
			case frames <- img:
			case <-ctx.Done():
				return
			case <-done:
				return
			}
		}
	}
}

// errNoFrame is returned by FileDisplay when frames closes before any frame.
var errNoFrame = errors.New("matshow: no frame to write")

// FileDisplay is a headless Display that encodes every frame it receives
// to Path, overwriting the previous one. The format follows the extension
// of Path (.png, .bmp, .tif or .tiff).
type FileDisplay struct {
	Path string
}

// Show writes frames to the file until frames is closed.
func (d FileDisplay) Show(title string, frames <-chan image.Image) error {
	if _, err := FormatFromPath(d.Path); err != nil {
		return err
	}
	n := 0
	for img := range frames {
		if err := SaveImage(d.Path, img); err != nil {
			return err
		}
		n++
		Logger().Info("frame written",
			zap.String("title", title),
			zap.String("path", d.Path),
			zap.Int("frame", n))
	}
	if n == 0 {
		return errNoFrame
	}
	return nil
}
