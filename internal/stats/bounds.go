package stats

import (
	"github.com/tkrajina/gpxgo/gpx"
)

// TimeBoundsOf scans every point in every segment of a track and returns the
// earliest and latest timestamps. Points without a timestamp are skipped;
// ok is false when no point carries one.
func TimeBoundsOf(trk *gpx.GPXTrack) (TimeBounds, bool) {
	var tb TimeBounds
	found := false

	for si := range trk.Segments {
		for pi := range trk.Segments[si].Points {
			ts := trk.Segments[si].Points[pi].Timestamp
			if ts.IsZero() {
				continue
			}
			if !found {
				tb.Start, tb.End = ts, ts
				found = true
				continue
			}
			if ts.Before(tb.Start) {
				tb.Start = ts
			}
			if ts.After(tb.End) {
				tb.End = ts
			}
		}
	}

	return tb, found
}

// BoundsOf returns the bounding box over all of a track's points.
// ok is false for a track with no points.
func BoundsOf(trk *gpx.GPXTrack) (Bounds, bool) {
	var b Bounds
	found := false

	for si := range trk.Segments {
		for pi := range trk.Segments[si].Points {
			pt := &trk.Segments[si].Points[pi]
			if !found {
				b = Bounds{
					MaxLatitude:  pt.Latitude,
					MinLatitude:  pt.Latitude,
					MaxLongitude: pt.Longitude,
					MinLongitude: pt.Longitude,
				}
				found = true
				continue
			}
			b.MaxLatitude = max(b.MaxLatitude, pt.Latitude)
			b.MinLatitude = min(b.MinLatitude, pt.Latitude)
			b.MaxLongitude = max(b.MaxLongitude, pt.Longitude)
			b.MinLongitude = min(b.MinLongitude, pt.Longitude)
		}
	}

	return b, found
}
