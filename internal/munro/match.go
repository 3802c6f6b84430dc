package munro

import "munrodist/internal/geo"

// The grid's native unit is meters; reported distances are kilometers.
const metersPerKm = 1000.0

// MatchNearest pairs every peak in munros with its nearest neighbor from
// tops by scanning all candidates. O(|munros|·|tops|) comparisons, which
// is fine for the few hundred rows this dataset has. An empty candidate
// set is an explicit error, never a placeholder distance.
func MatchNearest(munros, tops []Peak) ([]Match, error) {
	if len(tops) == 0 {
		return nil, geo.ErrNoCandidates
	}
	pts := make([]geo.Point, len(tops))
	for i, t := range tops {
		pts[i] = t.Point
	}

	matches := make([]Match, 0, len(munros))
	for _, m := range munros {
		i, d, err := geo.NearestIndex(m.Point, pts)
		if err != nil {
			return nil, err
		}
		matches = append(matches, Match{
			Peak:       m,
			Nearest:    tops[i],
			DistanceKm: d / metersPerKm,
		})
	}
	return matches, nil
}

// Distances extracts the kilometer distance column from a match set.
func Distances(matches []Match) []float64 {
	out := make([]float64, len(matches))
	for i, m := range matches {
		out[i] = m.DistanceKm
	}
	return out
}
