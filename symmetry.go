package matshow

import (
	"fmt"
	"iter"
)

// Cell identifies a matrix element by row and column index.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("%d, %d", c.Row, c.Col)
}

// Asymmetries returns a lazy sequence of every cell (i, j) where
// m[i][j] != m[j][i], in row-major order. Each mismatch is therefore
// reported twice, once as (i, j) and once as (j, i).
//
// The comparison is exact; NaN never equals itself, so a NaN off the
// diagonal is always reported and a NaN on the diagonal is reported too.
// Asymmetries fails with ErrNotSquare unless m is square.
func Asymmetries(m Matrix) (iter.Seq[Cell], error) {
	if !m.IsSquare() {
		if _, _, err := m.Shape(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNotSquare, err)
		}
		return nil, fmt.Errorf("%w: %d rows, %d columns", ErrNotSquare, len(m), len(m[0]))
	}
	return func(yield func(Cell) bool) {
		for i := range m {
			for j := range m {
				if m[i][j] != m[j][i] {
					if !yield(Cell{Row: i, Col: j}) {
						return
					}
				}
			}
		}
	}, nil
}

// IsSymmetric reports whether the square matrix m equals its transpose.
func IsSymmetric(m Matrix) (bool, error) {
	seq, err := Asymmetries(m)
	if err != nil {
		return false, err
	}
	for range seq {
		return false, nil
	}
	return true, nil
}
