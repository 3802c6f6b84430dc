package geo

import (
	"errors"
	"math"
)

// Point is a planar coordinate pair in the linear units of its coordinate
// reference system. The Munro dataset carries British National Grid
// eastings/northings, so the unit is meters.
type Point struct {
	X float64
	Y float64
}

// Distance returns the Euclidean distance between p and q in CRS units.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// ErrNoCandidates is returned when a nearest-neighbor search is asked to
// pick from an empty candidate set.
var ErrNoCandidates = errors.New("no candidate points to search")

// NearestIndex scans candidates for the point closest to p and returns its
// index together with the distance. Among exact ties the first minimum in
// slice order wins; the choice is arbitrary and callers must not read
// significance into it.
func NearestIndex(p Point, candidates []Point) (int, float64, error) {
	if len(candidates) == 0 {
		return 0, 0, ErrNoCandidates
	}
	best := 0
	bestDist := p.Distance(candidates[0])
	for i, q := range candidates[1:] {
		if d := p.Distance(q); d < bestDist {
			best = i + 1
			bestDist = d
		}
	}
	return best, bestDist, nil
}
