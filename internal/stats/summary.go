package stats

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// EmptyInputError indicates a statistic was requested over zero elements,
// where neither mean nor median is defined.
type EmptyInputError struct{ Op string }

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: empty input, statistics undefined", e.Op)
}

// Summary describes a sample of distances in kilometers.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	Min    float64
	Max    float64
	StdDev float64
}

// Summarize computes the summary of xs without mutating it. Zero-length
// input is an EmptyInputError.
func Summarize(xs []float64) (Summary, error) {
	if len(xs) == 0 {
		return Summary{}, &EmptyInputError{Op: "summarize"}
	}
	sorted := slices.Clone(xs)
	slices.Sort(sorted)

	s := Summary{
		Count:  len(xs),
		Mean:   stat.Mean(xs, nil),
		Median: median(sorted),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
	if len(xs) > 1 {
		s.StdDev = stat.StdDev(xs, nil)
	}
	return s, nil
}

// median takes the middle element of a sorted sample, averaging the two
// middle values for even lengths.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
