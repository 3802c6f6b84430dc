package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarizeEmpty(t *testing.T) {
	_, err := Summarize(nil)
	require.Error(t, err)
	var empty *EmptyInputError
	require.ErrorAs(t, err, &empty)
}

func TestSummarizeSingleElement(t *testing.T) {
	s, err := Summarize([]float64{3.7})
	require.NoError(t, err)
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 3.7, s.Mean)
	assert.Equal(t, 3.7, s.Median)
	assert.Equal(t, 3.7, s.Min)
	assert.Equal(t, 3.7, s.Max)
	assert.Equal(t, 0.0, s.StdDev)
}

func TestSummarizeMedianOdd(t *testing.T) {
	s, err := Summarize([]float64{3, 1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.0, s.Median)
	assert.Equal(t, 2.0, s.Mean)
}

func TestSummarizeMedianEven(t *testing.T) {
	s, err := Summarize([]float64{4, 1, 3, 2})
	require.NoError(t, err)
	assert.Equal(t, 2.5, s.Median)
	assert.Equal(t, 2.5, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 4.0, s.Max)
}

func TestSummarizeDoesNotMutateInput(t *testing.T) {
	xs := []float64{5, 1, 4}
	_, err := Summarize(xs)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 1, 4}, xs)
}
