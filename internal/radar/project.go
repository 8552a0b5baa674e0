// Package radar maps multi-axis skill comparisons onto 2-D polygon
// geometry for radar chart rendering. The package computes coordinates
// only; drawing belongs to the presentation layer.
package radar

import "math"

// Grid reference circles drawn at fixed ratios of the chart radius
var gridRatios = []float64{0.25, 0.5, 0.75, 1}

// labelRadiusRatio places axis labels slightly beyond the chart boundary
const labelRadiusRatio = 1.25

// Axis is one labeled value on the chart. Value is normalized against
// MaxValue; values beyond MaxValue are clamped to the chart boundary.
type Axis struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	MaxValue float64 `json:"maxValue"`
}

// Point is a cartesian coordinate relative to the chart center
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Spoke is one axis line from the center to the chart boundary, with its
// label position.
type Spoke struct {
	End   Point  `json:"end"`
	Label Point  `json:"label"`
	Text  string `json:"text"`
}

// Chart is the complete projected geometry for one radar chart. All
// coordinates and radii are absolute in the same pixel space as Radius;
// GridCircles holds the radii of the reference circles at 25/50/75/100%.
type Chart struct {
	Radius      float64   `json:"radius"`
	Points      []Point   `json:"points"`
	Polygon     []Point   `json:"polygon"`
	GridCircles []float64 `json:"gridCircles"`
	Spokes      []Spoke   `json:"spokes"`
}

// Project maps the ordered axes onto polygon coordinates for a chart of the
// given pixel radius. The first axis points straight up and the rest follow
// clockwise at equal angular steps. An empty axis list yields an empty
// chart with no polygon.
func Project(axes []Axis, radius float64) Chart {
	chart := Chart{Radius: radius}
	if len(axes) == 0 {
		return chart
	}

	angleStep := 2 * math.Pi / float64(len(axes))
	chart.Points = make([]Point, len(axes))
	chart.Spokes = make([]Spoke, len(axes))
	for i, axis := range axes {
		angle := float64(i)*angleStep - math.Pi/2
		chart.Points[i] = pointAt(angle, radius*normalize(axis.Value, axis.MaxValue))
		chart.Spokes[i] = Spoke{
			End:   pointAt(angle, radius),
			Label: pointAt(angle, radius*labelRadiusRatio),
			Text:  axis.Label,
		}
	}

	chart.GridCircles = make([]float64, len(gridRatios))
	for i, ratio := range gridRatios {
		chart.GridCircles[i] = radius * ratio
	}

	// The closed polygon connects the points in input order and wraps back
	// to the first point.
	chart.Polygon = make([]Point, 0, len(chart.Points)+1)
	chart.Polygon = append(chart.Polygon, chart.Points...)
	chart.Polygon = append(chart.Polygon, chart.Points[0])
	return chart
}

// normalize maps a value to [0,1] against its axis maximum. Values beyond
// the maximum clamp to 1 so points are never drawn outside the boundary;
// a non-positive maximum yields 0.
func normalize(value, maxValue float64) float64 {
	if maxValue <= 0 {
		return 0
	}
	n := value / maxValue
	switch {
	case n < 0:
		return 0
	case n > 1:
		return 1
	}
	return n
}

func pointAt(angle, r float64) Point {
	return Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)}
}
