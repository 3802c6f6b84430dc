package munro

import "munrodist/internal/geo"

// Peak is one row of the Scottish Munros dataset with its planar geometry
// attached. Coordinates are consumed verbatim from the source columns; no
// reprojection happens anywhere in the pipeline.
type Peak struct {
	Name           string
	HeightM        float64
	HeightFt       float64
	Classification string
	Point          geo.Point
}

// Match pairs a peak with its nearest neighbor from the opposite category
// and the distance between them in kilometers.
type Match struct {
	Peak       Peak
	Nearest    Peak
	DistanceKm float64
}
