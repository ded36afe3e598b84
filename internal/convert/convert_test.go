package convert

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planbiir/gpxcsv/internal/export"
)

const sampleGPX = `<?xml version="1.0" encoding="UTF-8"?>
<gpx version="1.1" creator="test" xmlns="http://www.topografix.com/GPX/1/1">
	<metadata><name>ride</name></metadata>
	<trk>
		<name>Morning Ride</name>
		<trkseg>
			<trkpt lat="46.0" lon="7.0"><ele>1000</ele><time>2025-01-01T10:00:00Z</time></trkpt>
			<trkpt lat="46.001" lon="7.0"><ele>1005</ele><time>2025-01-01T10:00:10Z</time></trkpt>
			<trkpt lat="46.002" lon="7.0"><ele>1010</ele><time>2025-01-01T10:00:20Z</time></trkpt>
		</trkseg>
	</trk>
</gpx>`

func writeSample(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sampleGPX), 0o644))
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return records
}

func TestDropExtension(t *testing.T) {
	cases := []struct{ in, want string }{
		{"track.gpx", "track"},
		{"a.b.gpx", "a"}, // truncates at the FIRST dot, not the last
		{"plain", "plain"},
		{".hidden", ""},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, DropExtension(tc.in))
		})
	}
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	writeSample(t, dir, "ride.gpx")
	out := filepath.Join(dir, "ride.csv")

	fs, err := File(filepath.Join(dir, "ride.gpx"), out, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, fs.Tracks)
	assert.Equal(t, 3, fs.Rows)

	records := readCSV(t, out)
	require.Len(t, records, 4)
	assert.Equal(t, export.Columns(export.DefaultOptions()), records[0])
	assert.Equal(t, "ride", records[1][0])
	assert.Equal(t, "Morning Ride", records[1][1])
}

func TestFileParseFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.gpx"), []byte("not gpx"), 0o644))
	out := filepath.Join(dir, "bad.csv")

	_, err := File(filepath.Join(dir, "bad.gpx"), out, DefaultConfig())
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDir(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	writeSample(t, in, "track.gpx")
	writeSample(t, in, "a.b.gpx")

	st, err := Dir(in, out, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 2, st.Files)
	assert.Equal(t, 0, st.Failed)
	assert.Equal(t, 6, st.Rows)

	// Output names come from first-dot truncation
	assert.FileExists(t, filepath.Join(out, "track.csv"))
	assert.FileExists(t, filepath.Join(out, "a.csv"))
}

func TestDirAbortsOnFirstFailure(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	// ReadDir returns entries sorted by name, so the broken file comes first
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.gpx"), []byte("not gpx"), 0o644))
	writeSample(t, in, "good.gpx")

	st, err := Dir(in, out, DefaultConfig())
	require.Error(t, err)
	assert.Equal(t, 0, st.Files)
	assert.Equal(t, 1, st.Failed)

	_, statErr := os.Stat(filepath.Join(out, "good.csv"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDirKeepGoing(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "broken.gpx"), []byte("not gpx"), 0o644))
	writeSample(t, in, "good.gpx")

	cfg := DefaultConfig()
	cfg.KeepGoing = true

	st, err := Dir(in, out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, st.Files)
	assert.Equal(t, 1, st.Failed)
	require.Len(t, st.Failures, 1)
	assert.True(t, strings.HasPrefix(st.Failures[0], "broken.gpx:"))

	assert.FileExists(t, filepath.Join(out, "good.csv"))
}

func TestDirParallel(t *testing.T) {
	in := t.TempDir()
	out := t.TempDir()
	for _, name := range []string{"one.gpx", "two.gpx", "three.gpx"} {
		writeSample(t, in, name)
	}

	cfg := DefaultConfig()
	cfg.Jobs = 2

	st, err := Dir(in, out, cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, st.Files)
	assert.Equal(t, 9, st.Rows)
	for _, name := range []string{"one.csv", "two.csv", "three.csv"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
}

func TestDirEmptyInput(t *testing.T) {
	st, err := Dir(t.TempDir(), t.TempDir(), DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, 0, st.Files)
}
