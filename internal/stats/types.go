package stats

import (
	"time"
)

// Config holds aggregation parameters
type Config struct {
	// StoppedSpeedThreshold is the speed in km/h at or below which an
	// interval counts as stopped rather than moving
	StoppedSpeedThreshold float64
}

// DefaultConfig returns the threshold the reference exporter uses
func DefaultConfig() Config {
	return Config{
		StoppedSpeedThreshold: 1.0, // km/h
	}
}

// MovingData separates a point sequence into moving and stopped intervals
type MovingData struct {
	MovingTime      float64 // seconds
	StoppedTime     float64 // seconds
	MovingDistance  float64 // meters
	StoppedDistance float64 // meters
	MaxSpeed        float64 // m/s
}

// TimeBounds are the earliest and latest timestamps across a track's points
type TimeBounds struct {
	Start time.Time
	End   time.Time
}

// Bounds is the bounding box over a track's points. Elevation is not part
// of the box.
type Bounds struct {
	MaxLatitude  float64
	MinLatitude  float64
	MaxLongitude float64
	MinLongitude float64
}
