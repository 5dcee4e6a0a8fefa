// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/matshow"
)

func newInfoCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "info [path]",
		Short: "Print the shape and value statistics of a matrix",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := matshow.Load(c.cfg.Path)
			if err != nil {
				return err
			}
			r := c.cfg.Range()
			s, err := matshow.Summarize(m, r)
			if err != nil {
				return err
			}

			p := message.NewPrinter(language.English)
			out := cmd.OutOrStdout()
			p.Fprintf(out, "path        %s\n", c.cfg.Path)
			p.Fprintf(out, "shape       %d x %d (%d cells)\n", s.Rows, s.Cols, s.Rows*s.Cols)
			p.Fprintf(out, "min         %.6g\n", s.Min)
			p.Fprintf(out, "max         %.6g\n", s.Max)
			p.Fprintf(out, "mean        %.6g\n", s.Mean)
			p.Fprintf(out, "stddev      %.6g\n", s.StdDev)
			p.Fprintf(out, "nan         %d\n", s.NaN)
			p.Fprintf(out, "inf         %d\n", s.Inf)
			p.Fprintf(out, "outside     %d (range [%g, %g])\n", s.OutOfRange, r.Min, r.Max)
			if s.Square {
				p.Fprintf(out, "symmetric   %t\n", s.Symmetric)
			} else {
				p.Fprintf(out, "symmetric   n/a (not square)\n")
			}
			return nil
		},
	}
}
