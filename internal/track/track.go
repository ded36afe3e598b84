package track

import (
	"fmt"
	"math"
	"os"

	"github.com/tkrajina/gpxgo/gpx"
)

// Load reads and parses a GPX file
func Load(filename string) (*gpx.GPX, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return Parse(data)
}

// Parse parses raw GPX bytes into the object model
func Parse(data []byte) (*gpx.GPX, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GPX: %w", err)
	}

	return doc, nil
}

// IntervalDistance calculates the distance in meters between two consecutive
// points. The vertical component is included only when both points carry an
// elevation; the choice is made per interval, not per track.
func IntervalDistance(a, b *gpx.GPXPoint) float64 {
	horizontal := gpx.HaversineDistance(a.Latitude, a.Longitude, b.Latitude, b.Longitude)
	if a.Elevation.Null() || b.Elevation.Null() {
		return horizontal
	}

	vertical := math.Abs(b.Elevation.Value() - a.Elevation.Value())
	return math.Sqrt(horizontal*horizontal + vertical*vertical)
}

// Concat returns all points of a track in segment order
func Concat(trk *gpx.GPXTrack) []*gpx.GPXPoint {
	var points []*gpx.GPXPoint
	for si := range trk.Segments {
		for pi := range trk.Segments[si].Points {
			points = append(points, &trk.Segments[si].Points[pi])
		}
	}

	return points
}

// CumulativeDistances returns, for each point, the traveled distance in
// meters from the first point up to and including that point
func CumulativeDistances(points []*gpx.GPXPoint) []float64 {
	distances := make([]float64, len(points))

	total := 0.0
	for i := 1; i < len(points); i++ {
		total += IntervalDistance(points[i-1], points[i])
		distances[i] = total
	}

	return distances
}
