package matshow

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense 2D grid of values stored row by row.
// Rows are expected to share one length; Shape reports when they do not.
type Matrix [][]float64

// Rows returns the number of rows.
func (m Matrix) Rows() int {
	return len(m)
}

// Shape returns the row and column counts of a rectangular matrix.
// It fails with ErrShapeMismatch when the matrix is empty or ragged.
func (m Matrix) Shape() (rows, cols int, err error) {
	if len(m) == 0 {
		return 0, 0, fmt.Errorf("%w: empty matrix", ErrShapeMismatch)
	}
	cols = len(m[0])
	if cols == 0 {
		return 0, 0, fmt.Errorf("%w: row 0 has no values", ErrShapeMismatch)
	}
	for i, row := range m {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: row %d has %d values, row 0 has %d",
				ErrShapeMismatch, i, len(row), cols)
		}
	}
	return len(m), cols, nil
}

// IsSquare reports whether the matrix is rectangular with as many rows as columns.
func (m Matrix) IsSquare() bool {
	r, c, err := m.Shape()
	return err == nil && r == c
}

// Equal reports whether m and o have the same shape and identical values.
// NaN cells compare equal to NaN cells.
func (m Matrix) Equal(o Matrix) bool {
	if len(m) != len(o) {
		return false
	}
	for i := range m {
		if len(m[i]) != len(o[i]) {
			return false
		}
		for j, v := range m[i] {
			w := o[i][j]
			if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of m.
func (m Matrix) Clone() Matrix {
	if m == nil {
		return nil
	}
	c := make(Matrix, len(m))
	for i, row := range m {
		c[i] = append([]float64(nil), row...)
	}
	return c
}

// Dense copies a rectangular matrix into a gonum dense matrix.
func (m Matrix) Dense() (*mat.Dense, error) {
	r, c, err := m.Shape()
	if err != nil {
		return nil, err
	}
	data := make([]float64, 0, r*c)
	for _, row := range m {
		data = append(data, row...)
	}
	return mat.NewDense(r, c, data), nil
}
