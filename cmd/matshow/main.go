// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command matshow displays a whitespace-delimited numeric matrix as a
// grayscale image.
//
// Usage:
//
//	matshow [path]              show the matrix in a window
//	matshow -o out.png [path]   render to an image file instead
//	matshow symmetry [path]     list cells where m[i][j] != m[j][i]
//	matshow info [path]         print shape and value statistics
//	matshow gen [path]          write a sample matrix
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	c := newCLI()
	err := c.execute(ctx, c.command())
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "matshow:", err)
		os.Exit(1)
	}
}
