// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io/fs"
	"math"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gogpu/matshow"
)

// generators build symmetric n×n sample matrices with values in [0, 1].
var generators = map[string]func(n int, rng *rand.Rand) matshow.Matrix{
	// band: 1 on the diagonal fading linearly to 0 at the corners.
	"band": func(n int, _ *rand.Rand) matshow.Matrix {
		return symmetric(n, func(i, j int) float64 {
			if n == 1 {
				return 1
			}
			return 1 - math.Abs(float64(i-j))/float64(n-1)
		})
	},
	// identity: 1 on the diagonal, 0 elsewhere.
	"identity": func(n int, _ *rand.Rand) matshow.Matrix {
		return symmetric(n, func(i, j int) float64 {
			if i == j {
				return 1
			}
			return 0
		})
	},
	// random: uniform values mirrored across the diagonal.
	"random": func(n int, rng *rand.Rand) matshow.Matrix {
		return symmetric(n, func(int, int) float64 { return rng.Float64() })
	},
}

// symmetric fills the upper triangle with f and mirrors it.
func symmetric(n int, f func(i, j int) float64) matshow.Matrix {
	m := make(matshow.Matrix, n)
	for i := range m {
		m[i] = make([]float64, n)
	}
	for i := range n {
		for j := i; j < n; j++ {
			v := f(i, j)
			m[i][j], m[j][i] = v, v
		}
	}
	return m
}

func newGenCmd(c *cli) *cobra.Command {
	var (
		size int
		kind string
		seed  uint64
		force bool
	)
	cmd := &cobra.Command{
		Use:   "gen [path]",
		Short: "Write a symmetric sample matrix",
		Long: `gen writes a symmetric sample matrix to path, or to the configured
matrix path when none is given. An existing file is kept unless --force is set.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			gen, ok := generators[kind]
			if !ok {
				return fmt.Errorf("unknown kind %q (band, identity, random)", kind)
			}
			if size <= 0 {
				return fmt.Errorf("size must be positive, got %d", size)
			}
			path := c.cfg.Path
			if !force {
				if _, err := os.Stat(path); err == nil {
					return fmt.Errorf("%s: %w (use --force to overwrite)", path, fs.ErrExist)
				}
			}
			m := gen(size, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
			if err := matshow.Save(path, m); err != nil {
				return err
			}
			matshow.Logger().Info("sample written",
				zap.String("path", path),
				zap.String("kind", kind),
				zap.Int("size", size))
			return nil
		},
	}
	cmd.Flags().IntVarP(&size, "size", "n", 32, "rows and columns")
	cmd.Flags().StringVar(&kind, "kind", "band", "band, identity or random")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "seed for the random kind")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")
	return cmd
}
