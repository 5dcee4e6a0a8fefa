// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpuview shows matshow frames in a gogpu window.
//
// The data flow is:
//
//	matshow.Renderer (frame) -> Canvas (fit to window, CPU) -> GPU Texture -> Window
//
// # Usage
//
//	m, err := matshow.Load("data/matrix.txt")
//	if err != nil {
//	    return err
//	}
//	r := matshow.NewRenderer(gogpuview.NewWindow())
//	return r.Render(m) // blocks until the window is closed
//
// The frame keeps its aspect ratio when the window is resized and every
// matrix cell stays a solid block: scaling is nearest-neighbour.
//
// # Display availability
//
// On Linux and the BSDs, Show fails with matshow.ErrDisplayUnavailable when
// neither DISPLAY nor WAYLAND_DISPLAY is set. Failures to start the gogpu
// application are reported with the same sentinel.
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Window.Show must be called from
// the main goroutine, as gogpu requires for its event loop.
package gogpuview
