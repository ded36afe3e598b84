package stats

import (
	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/gpxcsv/internal/track"
)

// speedSample is one interval's speed (m/s) and distance (meters), kept for
// max-speed estimation
type speedSample struct {
	speed    float64
	distance float64
}

// Moving classifies each inter-point interval as moving or stopped by
// thresholding its speed, and accumulates the per-bucket totals. The input
// must already be in temporal order; it is not re-sorted.
//
// Intervals where either endpoint lacks a timestamp, or where no time
// elapses, contribute to neither bucket. Zero-distance intervals contribute
// their elapsed time to neither bucket.
func Moving(points []*gpx.GPXPoint, cfg Config) MovingData {
	var md MovingData
	var samples []speedSample

	for i := 1; i < len(points); i++ {
		prev, pt := points[i-1], points[i]
		if prev.Timestamp.IsZero() || pt.Timestamp.IsZero() {
			continue
		}

		elapsed := pt.Timestamp.Sub(prev.Timestamp).Seconds()
		if elapsed <= 0 {
			continue
		}

		distance := track.IntervalDistance(prev, pt)
		speedKmh := (distance / 1000) / (elapsed / 3600)

		if distance > 0 {
			if speedKmh <= cfg.StoppedSpeedThreshold {
				md.StoppedTime += elapsed
				md.StoppedDistance += distance
			} else {
				md.MovingTime += elapsed
				md.MovingDistance += distance
			}
		}

		// Samples are collected as soon as any moving interval has been
		// seen, even when the current interval was classified as stopped.
		// Kept for compatibility with the reference exporter's output.
		if md.MovingTime != 0 {
			samples = append(samples, speedSample{speed: distance / elapsed, distance: distance})
		}
	}

	md.MaxSpeed = maxSpeed(samples)
	return md
}

// Speed returns the instantaneous speed in km/h at pt given its in-segment
// predecessor. It is zero when there is no predecessor, when either
// timestamp is missing, or when no time elapses between the two points.
func Speed(prev, pt *gpx.GPXPoint) float64 {
	if prev == nil {
		return 0
	}
	if prev.Timestamp.IsZero() || pt.Timestamp.IsZero() {
		return 0
	}

	elapsed := pt.Timestamp.Sub(prev.Timestamp).Seconds()
	if elapsed <= 0 {
		return 0
	}

	distance := track.IntervalDistance(prev, pt)
	return (distance / 1000) / (elapsed / 3600)
}
