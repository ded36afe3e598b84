package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/planbiir/gpxcsv/internal/export"
	"github.com/planbiir/gpxcsv/internal/track"
)

// DropExtension truncates a filename at the first dot: "a.b.gpx" becomes
// "a". This matches the reference converter, not the usual strip-last-
// extension rule.
func DropExtension(filename string) string {
	if i := strings.Index(filename, "."); i >= 0 {
		return filename[:i]
	}
	return filename
}

// File converts one GPX file into one CSV file. The output file is only
// written once the whole document exported cleanly; a failed export leaves
// no partial file behind.
func File(inputPath, outputPath string, cfg Config) (FileStats, error) {
	doc, err := track.Load(inputPath)
	if err != nil {
		return FileStats{}, err
	}

	var buf bytes.Buffer
	rows, err := export.Export(doc, &buf, cfg.Stats, cfg.Export)
	if err != nil {
		return FileStats{}, fmt.Errorf("failed to export %s: %w", inputPath, err)
	}

	if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
		return FileStats{}, fmt.Errorf("failed to write output: %w", err)
	}

	return FileStats{
		Input:  inputPath,
		Output: outputPath,
		Tracks: len(doc.Tracks),
		Rows:   rows,
	}, nil
}

// Dir converts every entry of inputDir into a CSV file in outputDir. There
// is no file-type filtering; any entry that does not parse as GPX fails.
// With cfg.KeepGoing the failure is recorded and the batch continues,
// otherwise the batch stops at the first one.
func Dir(inputDir, outputDir string, cfg Config) (Stats, error) {
	start := time.Now()

	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to read input directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}

	var st Stats
	var firstErr error

	if cfg.Jobs <= 1 {
		for _, name := range names {
			fs, err := convertEntry(inputDir, outputDir, name, cfg)
			if err != nil {
				st.Failed++
				st.Failures = append(st.Failures, fmt.Sprintf("%s: %v", name, err))
				if !cfg.KeepGoing {
					st.ProcessingTime = time.Since(start)
					return st, err
				}
				continue
			}
			st.Files++
			st.Tracks += fs.Tracks
			st.Rows += fs.Rows
		}
	} else {
		// One worker per job, fed from a shared channel. Each file's
		// conversion is independent, so fan-out is safe; workers already
		// running finish their file even when the batch is aborted.
		var mu sync.Mutex
		var wg sync.WaitGroup
		work := make(chan string)

		for i := 0; i < cfg.Jobs; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for name := range work {
					fs, err := convertEntry(inputDir, outputDir, name, cfg)
					mu.Lock()
					if err != nil {
						st.Failed++
						st.Failures = append(st.Failures, fmt.Sprintf("%s: %v", name, err))
						if firstErr == nil {
							firstErr = err
						}
					} else {
						st.Files++
						st.Tracks += fs.Tracks
						st.Rows += fs.Rows
					}
					mu.Unlock()
				}
			}()
		}

		for _, name := range names {
			if !cfg.KeepGoing {
				mu.Lock()
				stop := firstErr != nil
				mu.Unlock()
				if stop {
					break
				}
			}
			work <- name
		}
		close(work)
		wg.Wait()

		if !cfg.KeepGoing && firstErr != nil {
			st.ProcessingTime = time.Since(start)
			return st, firstErr
		}
	}

	st.ProcessingTime = time.Since(start)
	fmt.Printf("Done.\n")

	return st, nil
}

// convertEntry converts one directory entry and prints the confirmation
// line for it.
func convertEntry(inputDir, outputDir, name string, cfg Config) (FileStats, error) {
	target := filepath.Join(outputDir, DropExtension(name)+".csv")

	fs, err := File(filepath.Join(inputDir, name), target, cfg)
	if err != nil {
		return FileStats{}, err
	}

	fmt.Printf("Wrote to %s\n", target)
	return fs, nil
}
