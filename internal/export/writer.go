package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/planbiir/gpxcsv/internal/stats"
	"github.com/planbiir/gpxcsv/internal/track"
)

// Writer emits the flat per-point schema on top of a csv.Writer.
type Writer struct {
	csv  *csv.Writer
	opts Options
}

// NewWriter creates a Writer emitting to w.
func NewWriter(w io.Writer, opts Options) *Writer {
	return &Writer{
		csv:  csv.NewWriter(w),
		opts: opts,
	}
}

// WriteHeader writes the column-name row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(Columns(w.opts))
}

// trackContext carries the per-track aggregates every row of that track
// repeats.
type trackContext struct {
	gpxName    string
	trkName    string
	moving     stats.MovingData
	timeBounds stats.TimeBounds
	bounds     stats.Bounds

	// cumulative traveled distance, indexed over the track's concatenated
	// points
	distances []float64
}

// newTrackContext computes the track-level aggregates in one pass over the
// track's concatenated points. Moving data is aggregated across segment
// boundaries, not summed segment by segment.
func newTrackContext(gpxName string, trk *gpx.GPXTrack, cfg stats.Config) trackContext {
	points := track.Concat(trk)

	ctx := trackContext{
		gpxName:   gpxName,
		trkName:   trk.Name,
		moving:    stats.Moving(points, cfg),
		distances: track.CumulativeDistances(points),
	}
	ctx.timeBounds, _ = stats.TimeBoundsOf(trk)
	ctx.bounds, _ = stats.BoundsOf(trk)

	return ctx
}

// row assembles one output row for a point and its in-segment predecessor.
func (c *trackContext) row(segmentNum int, pt, prev *gpx.GPXPoint, distFromStart float64, opts Options) []string {
	row := []string{
		c.gpxName,
		c.trkName,
		formatFloat(c.moving.MovingTime),
		formatFloat(c.moving.MovingDistance),
		formatTime(c.timeBounds.Start),
		formatTime(c.timeBounds.End),
		formatFloat(c.bounds.MaxLatitude),
		formatFloat(c.bounds.MaxLongitude),
		formatFloat(c.bounds.MinLatitude),
		formatFloat(c.bounds.MinLongitude),
		fmt.Sprintf("%d", segmentNum),
		formatFloat(pt.Latitude),
		formatFloat(pt.Longitude),
		formatElevation(pt.Elevation),
		formatTime(pt.Timestamp),
		formatFloat(stats.Speed(prev, pt)),
	}
	if opts.DistanceFromStart {
		row = append(row, formatFloat(distFromStart))
	}
	return row
}

// Export writes the header plus one data row per trackpoint of doc, in
// document order (track, then segment, then point), and returns the number
// of data rows written.
func Export(doc *gpx.GPX, w io.Writer, cfg stats.Config, opts Options) (int, error) {
	cw := NewWriter(w, opts)
	if err := cw.WriteHeader(); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rows := 0
	for ti := range doc.Tracks {
		trk := &doc.Tracks[ti]
		ctx := newTrackContext(doc.Name, trk, cfg)

		offset := 0 // position within the track's concatenated points
		for si := range trk.Segments {
			seg := &trk.Segments[si]
			for pi := range seg.Points {
				pt := &seg.Points[pi]
				var prev *gpx.GPXPoint
				if pi > 0 {
					prev = &seg.Points[pi-1]
				}

				if err := cw.csv.Write(ctx.row(si, pt, prev, ctx.distances[offset], opts)); err != nil {
					return rows, fmt.Errorf("failed to write row: %w", err)
				}
				rows++
				offset++
			}
		}
	}

	cw.csv.Flush()
	if err := cw.csv.Error(); err != nil {
		return rows, fmt.Errorf("failed to flush output: %w", err)
	}

	return rows, nil
}
