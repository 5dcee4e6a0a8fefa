package matshow

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	s, err := Summarize(Matrix{{0, 1}, {1, 0}}, UnitRange)
	require.NoError(t, err)

	assert.Equal(t, 2, s.Rows)
	assert.Equal(t, 2, s.Cols)
	assert.Equal(t, 0.0, s.Min)
	assert.Equal(t, 1.0, s.Max)
	assert.InDelta(t, 0.5, s.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(1.0/3.0), s.StdDev, 1e-12)
	assert.Zero(t, s.OutOfRange)
	assert.True(t, s.Square)
	assert.True(t, s.Symmetric)
}

func TestSummarizeSpecialValues(t *testing.T) {
	m := Matrix{
		{math.NaN(), 2, -1},
		{math.Inf(1), 0.5, 0.5},
	}
	s, err := Summarize(m, UnitRange)
	require.NoError(t, err)

	assert.Equal(t, 1, s.NaN)
	assert.Equal(t, 1, s.Inf)
	assert.Equal(t, 2, s.OutOfRange)
	assert.Equal(t, -1.0, s.Min)
	assert.Equal(t, 2.0, s.Max)
	assert.False(t, s.Square)
	assert.False(t, s.Symmetric)
}

func TestSummarizeAsymmetric(t *testing.T) {
	s, err := Summarize(Matrix{{0, 1}, {0, 0}}, UnitRange)
	require.NoError(t, err)
	assert.True(t, s.Square)
	assert.False(t, s.Symmetric)
}

func TestSummarizeSingleValue(t *testing.T) {
	s, err := Summarize(Matrix{{0.5}}, UnitRange)
	require.NoError(t, err)
	assert.Equal(t, 0.5, s.Mean)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestSummarizeAllNaN(t *testing.T) {
	s, err := Summarize(Matrix{{math.NaN()}}, UnitRange)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(s.Min))
	assert.True(t, math.IsNaN(s.Mean))
}

func TestSummarizeRagged(t *testing.T) {
	_, err := Summarize(Matrix{{1, 2}, {3}}, UnitRange)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}
