package stats

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// maxSpeed estimates the top sustained speed in m/s from interval samples.
// Intervals whose distance sits more than 1.5 population standard
// deviations from the mean interval distance are treated as GPS glitches
// and discarded, and the top 5% of the remaining speeds is ignored.
func maxSpeed(samples []speedSample) float64 {
	if len(samples) == 0 {
		return 0.0
	}

	distances := make([]float64, len(samples))
	for i, s := range samples {
		distances[i] = s.distance
	}
	mean := stat.Mean(distances, nil)
	stddev := stat.PopStdDev(distances, nil)

	speeds := make([]float64, 0, len(samples))
	for _, s := range samples {
		if math.Abs(s.distance-mean) <= stddev*1.5 {
			speeds = append(speeds, s.speed)
		}
	}
	if len(speeds) == 0 {
		return 0.0
	}

	sort.Float64s(speeds)

	index := int(float64(len(speeds)) * 0.95)
	if index >= len(speeds) {
		index = len(speeds) - 1
	}
	return speeds[index]
}
