package matshow

import (
	"errors"
	"fmt"
)

// Errors returned by matshow. Callers match them with errors.Is; the
// returned errors usually carry more context wrapped around the sentinel.
var (
	// ErrFileNotFound is returned when the matrix file cannot be opened.
	// The underlying fs error stays in the chain, so errors.Is(err,
	// fs.ErrNotExist) and errors.Is(err, fs.ErrPermission) work too.
	ErrFileNotFound = errors.New("matshow: matrix file not found or not readable")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("matshow: parse error")

	// ErrShapeMismatch is returned when a matrix is empty or its rows have
	// different lengths.
	ErrShapeMismatch = errors.New("matshow: shape mismatch")

	// ErrNotSquare is returned by the symmetry checker for non-square input.
	// It wraps ErrShapeMismatch.
	ErrNotSquare = fmt.Errorf("%w: matrix is not square", ErrShapeMismatch)

	// ErrDisplayUnavailable is returned when no graphical display can be
	// opened in the running environment.
	ErrDisplayUnavailable = errors.New("matshow: display unavailable")

	// ErrUnknownColormap is returned for a colormap name other than gray.
	ErrUnknownColormap = errors.New("matshow: unknown colormap")

	// ErrUnknownInterpolation is returned for an interpolation other than none.
	ErrUnknownInterpolation = errors.New("matshow: unknown interpolation")

	// ErrInvalidRange is returned when the value range is empty or not finite.
	ErrInvalidRange = errors.New("matshow: invalid value range")

	// ErrFrameTooLarge is returned when the scaled frame would exceed
	// MaxFrameSide pixels along either axis.
	ErrFrameTooLarge = errors.New("matshow: frame too large")

	// ErrUnknownFormat is returned when an output file extension has no encoder.
	ErrUnknownFormat = errors.New("matshow: unknown image format")
)

// ParseError describes a token that could not be read as a float.
type ParseError struct {
	Line   int    // 1-based line number in the input
	Column int    // 1-based token index within the line
	Token  string // offending token
	Err    error  // underlying strconv error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("matshow: line %d, column %d: cannot parse %q as a number: %v",
		e.Line, e.Column, e.Token, e.Err)
}

// Unwrap exposes both ErrParse and the strconv error.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
