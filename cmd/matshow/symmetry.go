// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/matshow"
)

// errAsymmetric is returned by symmetry --strict when any cell differs.
var errAsymmetric = errors.New("matrix is not symmetric")

func newSymmetryCmd(c *cli) *cobra.Command {
	var (
		limit  int
		strict bool
	)
	cmd := &cobra.Command{
		Use:   "symmetry [path]",
		Short: "List cells (i, j) where m[i][j] != m[j][i]",
		Long: `symmetry prints one "i, j" line per cell of a square matrix that differs
from its mirror across the diagonal. Both (i, j) and (j, i) are listed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matshow.Load(c.cfg.Path)
			if err != nil {
				return err
			}
			seq, err := matshow.Asymmetries(m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			n := 0
			for cell := range seq {
				n++
				if limit > 0 && n > limit {
					continue
				}
				fmt.Fprintln(out, cell)
			}
			if limit > 0 && n > limit {
				fmt.Fprintf(out, "... %d more\n", n-limit)
			}
			if n > 0 && strict {
				return fmt.Errorf("%w: %d asymmetric cells", errAsymmetric, n)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "print at most this many cells (0 = all)")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the matrix is not symmetric")
	return cmd
}
