package chart

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"munrodist/internal/stats"
)

// Figure styling carried over from the source analysis.
var (
	histColor = color.RGBA{R: 0x34, G: 0xad, B: 0xfa, A: 0xff}
	kdeColor  = color.RGBA{R: 0xfa, G: 0x81, B: 0x34, A: 0xff}
)

const (
	figWidth  = 7 * vg.Inch
	figHeight = 5 * vg.Inch
)

// Render draws the distance distribution: a count histogram overlaid with
// a Gaussian kernel density curve and dashed/dotted reference rules at the
// mean and median, then writes the figure to path, replacing any existing
// file.
//
// The density curve is rescaled into count units (density × n × bin width)
// so that both layers share one axis; see DESIGN.md for the twin-axis
// decision.
func Render(dists []float64, sum stats.Summary, path string) error {
	if len(dists) == 0 {
		return &stats.EmptyInputError{Op: "render"}
	}

	p := plot.New()
	p.X.Label.Text = "Distance between Munro and Nearest Munro Top (km)"
	p.Y.Label.Text = "Count"
	p.X.Min = 0
	p.X.Max = sum.Max + 5

	vals := make(plotter.Values, len(dists))
	copy(vals, dists)
	nbins := binCount(len(dists))
	hist, err := plotter.NewHist(vals, nbins)
	if err != nil {
		return fmt.Errorf("histogram: %w", err)
	}
	hist.FillColor = histColor
	hist.LineStyle.Width = vg.Points(0.5)
	p.Add(hist)

	var peakCount float64
	binWidth := 1.0
	for _, b := range hist.Bins {
		peakCount = math.Max(peakCount, b.Weight)
		binWidth = b.Max - b.Min
	}

	kde, err := plotter.NewLine(densityCurve(dists, sum, binWidth, p.X.Max))
	if err != nil {
		return fmt.Errorf("density curve: %w", err)
	}
	kde.Color = kdeColor
	kde.Width = vg.Points(1.5)
	p.Add(kde)

	mean, err := verticalRule(sum.Mean, peakCount, []vg.Length{vg.Points(6), vg.Points(4)})
	if err != nil {
		return fmt.Errorf("mean rule: %w", err)
	}
	median, err := verticalRule(sum.Median, peakCount, []vg.Length{vg.Points(1), vg.Points(3)})
	if err != nil {
		return fmt.Errorf("median rule: %w", err)
	}
	p.Add(mean, median)

	p.Legend.Add("Mean", mean)
	p.Legend.Add("Median", median)
	p.Legend.Add("Density", kde)
	p.Legend.Top = true

	if err := p.Save(figWidth, figHeight, path); err != nil {
		return fmt.Errorf("write chart %s: %w", path, err)
	}
	return nil
}

// binCount applies Sturges' rule, which is also what the source figure's
// histogram defaulted to at this sample size.
func binCount(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

func verticalRule(x, height float64, dashes []vg.Length) (*plotter.Line, error) {
	l, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: height}})
	if err != nil {
		return nil, err
	}
	l.Color = color.Black
	l.Dashes = dashes
	return l, nil
}

// densityCurve evaluates a Gaussian KDE with Silverman's bandwidth on an
// even grid over [0, xMax], scaled from density into count units.
func densityCurve(xs []float64, sum stats.Summary, binWidth, xMax float64) plotter.XYs {
	const samples = 200
	h := bandwidth(len(xs), sum.StdDev)
	scale := float64(len(xs)) * binWidth
	norm := float64(len(xs)) * h * math.Sqrt(2*math.Pi)

	pts := make(plotter.XYs, samples)
	for i := range pts {
		x := xMax * float64(i) / float64(samples-1)
		var d float64
		for _, xi := range xs {
			u := (x - xi) / h
			d += math.Exp(-0.5 * u * u)
		}
		pts[i] = plotter.XY{X: x, Y: d / norm * scale}
	}
	return pts
}

// bandwidth is Silverman's rule of thumb. A degenerate sample (zero
// spread) gets a fixed 1 km bandwidth so the curve stays drawable.
func bandwidth(n int, sd float64) float64 {
	if sd <= 0 {
		return 1
	}
	return 1.06 * sd * math.Pow(float64(n), -0.2)
}
