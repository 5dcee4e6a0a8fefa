package matshow

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// maxLineSize bounds a single matrix row in bytes.
const maxLineSize = 64 << 20

// Load reads a whitespace-delimited matrix from the file at path.
// The file is closed before Load returns, whether or not parsing succeeded.
func Load(path string) (Matrix, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	}
	defer func() {
		_ = f.Close()
	}()
	if fi, err := f.Stat(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFileNotFound, path, err)
	} else if fi.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path)
	}

	m, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Logger().Debug("matrix loaded",
		zap.String("path", path),
		zap.Int("rows", len(m)))
	return m, nil
}

// Parse reads a matrix from r. Each non-blank line is one row; tokens are
// separated by runs of whitespace and parsed as 64-bit floats. The first
// token that is not a number aborts the parse with a *ParseError.
func Parse(r io.Reader) (Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	m := Matrix{}
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]float64, len(fields))
		for i, tok := range fields {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, &ParseError{Line: line, Column: i + 1, Token: tok, Err: err}
			}
			row[i] = v
		}
		m = append(m, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matshow: read line %d: %w", line+1, err)
	}
	return m, nil
}

// Write serializes m in the format read by Parse: one row per line, values
// separated by a single space, each in the shortest form that parses back
// to the same float64.
func Write(w io.Writer, m Matrix) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 32)
	for _, row := range m {
		for j, v := range row {
			if j > 0 {
				buf = append(buf, ' ')
			}
			buf = strconv.AppendFloat(buf, v, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
		buf = buf[:0]
	}
	return bw.Flush()
}

// Save writes m to path with Write, replacing any existing file.
func Save(path string, m Matrix) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := Write(f, m); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
