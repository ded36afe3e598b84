package export

import (
	"strconv"
	"time"

	"github.com/tkrajina/gpxgo/gpx"
)

// Options controls optional output columns.
type Options struct {
	// DistanceFromStart appends the cumulative traveled distance from the
	// track's first point as a final dist_from_start column.
	DistanceFromStart bool
}

// DefaultOptions matches the reference exporter's full column set.
func DefaultOptions() Options {
	return Options{DistanceFromStart: true}
}

// baseColumns is the fixed column order of the output schema.
var baseColumns = []string{
	"gpx_name",
	"trk_name",
	"trk_mov_time",
	"trk_mov_dist",
	"trk_start_time",
	"trk_end_time",
	"trk_max_lat",
	"trk_max_long",
	"trk_min_lat",
	"trk_min_long",
	"segment_num",
	"lat",
	"long",
	"ele",
	"time",
	"speed",
}

// Columns returns the header row for the given options.
func Columns(opts Options) []string {
	cols := append([]string(nil), baseColumns...)
	if opts.DistanceFromStart {
		cols = append(cols, "dist_from_start")
	}
	return cols
}

// formatFloat renders a float in its shortest round-trip decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatTime renders a timestamp as RFC3339. Missing timestamps render as
// an empty cell.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// formatElevation renders elevation in meters, or an empty cell when the
// point carries none.
func formatElevation(e gpx.NullableFloat64) string {
	if e.Null() {
		return ""
	}
	return formatFloat(e.Value())
}
