package matshow

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the shape and value distribution of a matrix.
type Summary struct {
	Rows, Cols int
	Min, Max   float64 // over finite values; NaN when there are none
	Mean       float64 // over finite values
	StdDev     float64 // sample standard deviation over finite values
	NaN        int     // cells holding NaN
	Inf        int     // cells holding ±Inf
	OutOfRange int     // finite cells outside the display range
	Square     bool
	Symmetric  bool // only meaningful when Square
}

// Summarize computes a Summary of m against the display range r.
// m must be rectangular and non-empty.
func Summarize(m Matrix, r Range) (Summary, error) {
	d, err := m.Dense()
	if err != nil {
		return Summary{}, err
	}
	rows, cols := d.Dims()
	s := Summary{Rows: rows, Cols: cols, Square: rows == cols}

	finite := make([]float64, 0, rows*cols)
	for _, v := range d.RawMatrix().Data {
		switch {
		case math.IsNaN(v):
			s.NaN++
		case math.IsInf(v, 0):
			s.Inf++
		default:
			finite = append(finite, v)
			if !r.Contains(v) {
				s.OutOfRange++
			}
		}
	}

	s.Min, s.Max, s.Mean, s.StdDev = math.NaN(), math.NaN(), math.NaN(), math.NaN()
	if len(finite) > 0 {
		s.Min = floats.Min(finite)
		s.Max = floats.Max(finite)
		s.Mean, s.StdDev = stat.MeanStdDev(finite, nil)
		if len(finite) == 1 {
			s.StdDev = 0
		}
	}

	if s.Square {
		s.Symmetric = mat.Equal(d, d.T())
	}
	return s, nil
}
