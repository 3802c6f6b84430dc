package geo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistance(t *testing.T) {
	assert.Equal(t, 0.0, Point{1, 1}.Distance(Point{1, 1}))
	assert.InDelta(t, 5.0, Point{0, 0}.Distance(Point{3, 4}), 1e-12)
	// symmetric
	assert.Equal(t, Point{2, 7}.Distance(Point{-1, 3}), Point{-1, 3}.Distance(Point{2, 7}))
}

func TestNearestIndexEmpty(t *testing.T) {
	_, _, err := NearestIndex(Point{0, 0}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoCandidates))
}

func TestNearestIndexPicksGlobalMinimum(t *testing.T) {
	p := Point{0, 0}
	candidates := []Point{{10, 0}, {3, 4}, {0, 2}, {8, 8}}

	idx, dist, err := NearestIndex(p, candidates)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
	assert.InDelta(t, 2.0, dist, 1e-12)

	// no candidate is closer than the reported match
	for _, q := range candidates {
		assert.GreaterOrEqual(t, p.Distance(q), dist)
	}
	assert.GreaterOrEqual(t, dist, 0.0)
}

func TestNearestIndexTieBreaksFirst(t *testing.T) {
	p := Point{0, 0}
	// two candidates at exactly distance 5
	idx, dist, err := NearestIndex(p, []Point{{3, 4}, {4, 3}, {0, 5}})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.InDelta(t, 5.0, dist, 1e-12)
}
