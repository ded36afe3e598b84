package convert

import (
	"time"

	"github.com/planbiir/gpxcsv/internal/export"
	"github.com/planbiir/gpxcsv/internal/stats"
)

// Config holds batch conversion parameters
type Config struct {
	// Stats configures the moving/stopped aggregation
	Stats stats.Config

	// Export configures the output column set
	Export export.Options

	// Jobs is the number of files converted concurrently
	Jobs int

	// KeepGoing records per-file failures and continues instead of
	// aborting the batch on the first one
	KeepGoing bool
}

// DefaultConfig mirrors the reference converter: sequential, abort on the
// first failing file, full column set, 1 km/h stopped threshold
func DefaultConfig() Config {
	return Config{
		Stats:  stats.DefaultConfig(),
		Export: export.DefaultOptions(),
		Jobs:   1,
	}
}

// FileStats describes one converted file
type FileStats struct {
	Input  string `json:"input"`
	Output string `json:"output"`
	Tracks int    `json:"tracks"`
	Rows   int    `json:"rows"`
}

// Stats summarises a batch run
type Stats struct {
	Files          int           `json:"files"`
	Failed         int           `json:"failed_files"`
	Tracks         int           `json:"tracks"`
	Rows           int           `json:"rows"`
	ProcessingTime time.Duration `json:"processing_time_ms"`
	Failures       []string      `json:"failures,omitempty"`
}
