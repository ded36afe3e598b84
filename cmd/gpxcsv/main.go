package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/planbiir/gpxcsv/internal/config"
	"github.com/planbiir/gpxcsv/internal/convert"
)

func main() {
	var (
		inputDir   = flag.String("i", "", "Directory containing GPX files")
		outputDir  = flag.String("o", "", "Directory in which to write CSV output")
		threshold  = flag.Float64("t", 1.0, "Stopped speed threshold in km/h")
		configFile = flag.String("config", "", "Optional YAML options file")
		jobs       = flag.Int("jobs", 1, "Number of files converted in parallel")
		keepGoing  = flag.Bool("keep-going", false, "Continue after a file fails instead of aborting")
		noDist     = flag.Bool("no-dist", false, "Omit the dist_from_start column")
		showStats  = flag.Bool("stats", false, "Show batch statistics")
		statsJSON  = flag.Bool("stats-json", false, "Output batch statistics as JSON")
		version    = flag.Bool("version", false, "Show version information")
	)

	flag.Usage = func() {
		fmt.Printf("gpxcsv - Transform GPX files to CSV\n\n")
		fmt.Printf("usage: gpxcsv -i /path/to/gpx-dir -o /path/to/csv-dir\n\n")
		fmt.Printf("examples:\n")
		fmt.Printf("  gpxcsv -i rides -o rides-csv\n")
		fmt.Printf("  gpxcsv -i rides -o rides-csv -t 2.5 -jobs 4\n")
		fmt.Printf("  gpxcsv -i rides -o rides-csv -config gpxcsv.yaml\n\n")
		fmt.Printf("options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if *version {
		fmt.Println("gpxcsv v1.0.0 - GPX to CSV converter")
		fmt.Println("https://github.com/planbiir/gpxcsv")
		os.Exit(0)
	}

	if *inputDir == "" || *outputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := convert.DefaultConfig()

	if *configFile != "" {
		fileCfg, err := config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading options file: %v\n", err)
			os.Exit(1)
		}
		cfg.Stats.StoppedSpeedThreshold = fileCfg.Converter.StoppedSpeedThresholdKmh
		cfg.Export.DistanceFromStart = fileCfg.Converter.DistFromStart()
		cfg.Jobs = fileCfg.Converter.Jobs
		cfg.KeepGoing = fileCfg.Converter.KeepGoing
	}

	// Flags set on the command line override the options file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.Stats.StoppedSpeedThreshold = *threshold
		case "jobs":
			cfg.Jobs = *jobs
		case "keep-going":
			cfg.KeepGoing = *keepGoing
		case "no-dist":
			cfg.Export.DistanceFromStart = !*noDist
		}
	})

	// Both paths must be existing directories before any file is touched
	for _, dir := range []string{*inputDir, *outputDir} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "Error: %s is not a directory\n", dir)
			os.Exit(1)
		}
	}

	fmt.Printf("📖 Converting GPX files in %s\n", *inputDir)

	st, err := convert.Dir(*inputDir, *outputDir, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting directory: %v\n", err)
		os.Exit(1)
	}

	if *showStats || *statsJSON {
		if *statsJSON {
			jsonData, err := json.MarshalIndent(st, "", "  ")
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error marshaling stats: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(string(jsonData))
		} else {
			printStats(st)
		}
	}

	if st.Failed > 0 {
		os.Exit(1)
	}
}

func printStats(st convert.Stats) {
	fmt.Printf("\n📊 Conversion Statistics:\n")
	fmt.Printf("📁 Files: %d converted, %d failed\n", st.Files, st.Failed)
	fmt.Printf("🛤️  Tracks: %d\n", st.Tracks)
	fmt.Printf("📍 Rows: %d\n", st.Rows)
	fmt.Printf("⏱️  Processing Time: %v\n", st.ProcessingTime)
	for _, failure := range st.Failures {
		fmt.Printf("   ⚠️  %s\n", failure)
	}
}
