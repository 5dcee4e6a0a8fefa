// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpuview

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/matshow"
)

// Common errors returned by Canvas operations.
var (
	// ErrCanvasClosed is returned when operations are attempted on a closed canvas.
	ErrCanvasClosed = errors.New("gogpuview: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("gogpuview: invalid dimensions")

	// ErrInvalidTexture is returned when a target is asked to draw a texture
	// it did not create.
	ErrInvalidTexture = errors.New("gogpuview: texture was not created by this target")
)

// texture is a GPU texture holding the canvas pixels.
type texture interface {
	Update(rgba []byte) error
	Destroy()
}

// target creates and draws textures. The gogpu implementation is gpuTarget.
type target interface {
	NewTexture(width, height int, rgba []byte) (texture, error)
	Draw(tex texture, x, y float32) error
}

// Canvas keeps the latest matrix frame fitted to the window size and
// manages the texture that presents it.
//
// Canvas is NOT safe for concurrent use. It is driven from the draw callback.
type Canvas struct {
	frame       image.Image // latest frame at its own resolution
	background  color.Color
	pixels      *image.RGBA // frame fitted to width×height
	texture     texture     // lazily created on first RenderTo
	oldTexture  texture     // previous texture awaiting deferred destruction
	dirty       bool        // pixels must be refitted and uploaded
	sizeChanged bool        // texture must be recreated
	width       int
	height      int
	closed      bool
}

// NewCanvas creates a width×height canvas filled with bg.
func NewCanvas(width, height int, bg color.Color) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if bg == nil {
		bg = color.White
	}
	return &Canvas{
		background: bg,
		width:      width,
		height:     height,
		dirty:      true,
	}, nil
}

// Size returns the canvas width and height in pixels.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// IsDirty reports whether the canvas has changes not yet uploaded.
func (c *Canvas) IsDirty() bool {
	return c.dirty
}

// SetFrame replaces the displayed frame.
func (c *Canvas) SetFrame(img image.Image) error {
	if c.closed {
		return ErrCanvasClosed
	}
	c.frame = img
	c.dirty = true
	return nil
}

// Resize changes the canvas dimensions. It is a no-op when the size is
// unchanged.
func (c *Canvas) Resize(width, height int) error {
	if c.closed {
		return ErrCanvasClosed
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}
	if c.width == width && c.height == height {
		return nil
	}
	c.width = width
	c.height = height
	c.sizeChanged = true
	c.dirty = true
	return nil
}

// Pixels returns the frame fitted to the canvas, refitting it if needed.
func (c *Canvas) Pixels() (*image.RGBA, error) {
	if c.closed {
		return nil, ErrCanvasClosed
	}
	if c.pixels == nil || c.dirty {
		src := c.frame
		if src == nil {
			src = image.NewGray(image.Rectangle{}) // background only
		}
		c.pixels = matshow.Fit(src, c.width, c.height, c.background)
	}
	return c.pixels, nil
}

// RenderTo uploads the canvas if it changed and draws it at (0, 0).
func (c *Canvas) RenderTo(t target) error {
	if c.closed {
		return ErrCanvasClosed
	}

	// The old texture may still be referenced by in-flight GPU work, so it
	// is destroyed only after its replacement has been created.
	if c.sizeChanged {
		if c.texture != nil {
			if c.oldTexture != nil {
				c.oldTexture.Destroy()
			}
			c.oldTexture = c.texture
			c.texture = nil
		}
		c.sizeChanged = false
	}

	if c.dirty || c.texture == nil {
		pix, err := c.Pixels()
		if err != nil {
			return err
		}
		if c.texture == nil {
			tex, err := t.NewTexture(c.width, c.height, pix.Pix)
			if err != nil {
				return fmt.Errorf("gogpuview: create texture: %w", err)
			}
			c.texture = tex
			if c.oldTexture != nil {
				c.oldTexture.Destroy()
				c.oldTexture = nil
			}
		} else if err := c.texture.Update(pix.Pix); err != nil {
			return fmt.Errorf("gogpuview: texture update failed: %w", err)
		}
		c.dirty = false
	}

	return t.Draw(c.texture, 0, 0)
}

// Close releases the textures. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	if c.oldTexture != nil {
		c.oldTexture.Destroy()
		c.oldTexture = nil
	}
	if c.texture != nil {
		c.texture.Destroy()
		c.texture = nil
	}
	c.frame = nil
	c.pixels = nil
	return nil
}
