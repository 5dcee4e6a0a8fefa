// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuview

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"runtime"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"go.uber.org/zap"

	"github.com/gogpu/matshow"
)

// Window size limits applied to the first frame when opening the window.
const (
	minWindowSize = 128
	maxWindowSize = 1600
)

// ErrInvalidRenderer is returned when the draw context cannot create textures.
var ErrInvalidRenderer = errors.New("gogpuview: draw context has no texture creator")

// errNoFrame is returned when the frames channel closes before the first frame.
var errNoFrame = errors.New("gogpuview: no frame to show")

// Window is a matshow.Display backed by a gogpu window.
// Show blocks until the user closes the window.
type Window struct {
	// Background fills the part of the window not covered by the matrix.
	Background color.Color

	goos   string
	getenv func(string) string
}

// NewWindow returns a Window with a white background.
func NewWindow() *Window {
	return &Window{
		Background: color.White,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
	}
}

// Show opens a window titled title, displays the first frame and replaces
// it with each later frame as it arrives. It returns when the window is
// closed. Without a graphical session it fails with
// matshow.ErrDisplayUnavailable before anything is opened.
func (w *Window) Show(title string, frames <-chan image.Image) error {
	goos, getenv := w.goos, w.getenv
	if goos == "" {
		goos = runtime.GOOS
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := checkDisplay(goos, getenv); err != nil {
		return err
	}

	first, ok := <-frames
	if !ok {
		return errNoFrame
	}
	width, height := windowSize(first.Bounds())

	canvas, err := NewCanvas(width, height, w.Background)
	if err != nil {
		return err
	}
	_ = canvas.SetFrame(first)

	log := matshow.Logger().Named("window")
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(title).
		WithSize(width, height))

	// While more frames may arrive, an animation token keeps OnDraw
	// polling at VSync; after the stream closes drawing is event-driven.
	var (
		frame     int
		animToken *gogpu.AnimationToken
	)
	app.OnDraw(func(dc *gogpu.Context) {
		if frame == 0 {
			log.Info("window opened",
				zap.String("backend", fmt.Sprint(dc.Backend())),
				zap.Int("width", width),
				zap.Int("height", height))
		}
		frame++

		select {
		case img, ok := <-frames:
			if ok {
				_ = canvas.SetFrame(img)
				log.Debug("frame replaced", zap.Int("draw", frame))
			} else {
				frames = nil
			}
		default:
		}
		switch {
		case frames != nil && animToken == nil:
			animToken = app.StartAnimation()
		case frames == nil && animToken != nil:
			animToken.Stop()
			animToken = nil
		}

		cw, ch := dc.Width(), dc.Height()
		if cw <= 0 || ch <= 0 {
			return
		}
		if err := canvas.Resize(cw, ch); err != nil {
			log.Warn("resize", zap.Error(err))
			return
		}
		if err := canvas.RenderTo(gpuTarget{dc: dc.AsTextureDrawer()}); err != nil {
			log.Warn("render", zap.Int("draw", frame), zap.Error(err))
		}
	})

	app.OnClose(func() {
		if animToken != nil {
			animToken.Stop()
		}
		_ = canvas.Close()
		log.Info("window closed")
	})

	if err := app.Run(); err != nil {
		return fmt.Errorf("%w: %w", matshow.ErrDisplayUnavailable, err)
	}
	return nil
}

// checkDisplay reports ErrDisplayUnavailable on Unix-like systems without
// an X11 or Wayland session.
func checkDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", matshow.ErrDisplayUnavailable)
		}
	}
	return nil
}

// windowSize picks the initial window size for a frame, keeping its aspect
// ratio within the window size limits.
func windowSize(r image.Rectangle) (width, height int) {
	width, height = max(r.Dx(), 1), max(r.Dy(), 1)
	if longest := max(width, height); longest > maxWindowSize {
		width = width * maxWindowSize / longest
		height = height * maxWindowSize / longest
	}
	return max(width, minWindowSize), max(height, minWindowSize)
}

// gpuTarget adapts a gogpu texture drawer to the canvas target interface.
type gpuTarget struct {
	dc gpucontext.TextureDrawer
}

func (g gpuTarget) NewTexture(width, height int, rgba []byte) (texture, error) {
	creator := g.dc.TextureCreator()
	if creator == nil {
		return nil, ErrInvalidRenderer
	}
	tex, err := creator.NewTextureFromRGBA(width, height, rgba)
	if err != nil {
		return nil, fmt.Errorf("NewTextureFromRGBA failed: %w", err)
	}
	return &gpuTexture{tex: tex}, nil
}

func (g gpuTarget) Draw(t texture, x, y float32) error {
	gt, ok := t.(*gpuTexture)
	if !ok {
		return ErrInvalidTexture
	}
	tex, ok := gt.tex.(gpucontext.Texture)
	if !ok {
		return ErrInvalidTexture
	}
	return g.dc.DrawTexture(tex, x, y)
}

// gpuTexture wraps the texture returned by gogpu.
type gpuTexture struct {
	tex any
}

func (t *gpuTexture) Update(rgba []byte) error {
	if u, ok := t.tex.(gpucontext.TextureUpdater); ok {
		return u.UpdateData(rgba)
	}
	return nil
}

func (t *gpuTexture) Destroy() {
	if d, ok := t.tex.(interface{ Destroy() }); ok {
		d.Destroy()
	}
}
