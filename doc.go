// Package matshow loads a numeric matrix from a text file and shows it as a
// grayscale raster image.
//
// # Overview
//
// A matrix file is plain text: one row per line, values separated by
// whitespace. Load reads it into a Matrix, and a Renderer draws the Matrix
// with the gray colormap (0 is black, 1 is white), no interpolation between
// cells, and a fixed value range that defaults to [0, 1].
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/matshow"
//	    "github.com/gogpu/matshow/integration/gogpuview"
//	)
//
//	m, err := matshow.Load("data/matrix.txt")
//	if err != nil {
//	    return err
//	}
//
//	// Opens a window and blocks until it is closed.
//	r := matshow.NewRenderer(gogpuview.NewWindow())
//	return r.Render(m)
//
// Without a graphical session, render to a file instead:
//
//	r := matshow.NewRenderer(matshow.FileDisplay{Path: "matrix.png"})
//
// # Shape
//
// The loader accepts rows of any length. Rendering requires a rectangular,
// non-empty matrix and fails with ErrShapeMismatch otherwise, before
// anything is displayed.
//
// # Diagnostics
//
// Asymmetries lists the cells of a square matrix that differ from their
// mirror across the diagonal. Summarize reports the shape and value
// distribution.
package matshow
