package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the optional YAML options file mirroring the command-line
// surface.
type Config struct {
	Converter ConverterConfig `yaml:"converter"`
}

type ConverterConfig struct {
	StoppedSpeedThresholdKmh float64 `yaml:"stopped_speed_threshold_kmh"`
	// Pointer so an absent key keeps the default (on) while an explicit
	// false drops the dist_from_start column.
	DistanceFromStart *bool `yaml:"distance_from_start"`
	Jobs              int   `yaml:"jobs"`
	KeepGoing         bool  `yaml:"keep_going"`
}

// DistFromStart reports whether the dist_from_start column is enabled.
func (c ConverterConfig) DistFromStart() bool {
	return c.DistanceFromStart == nil || *c.DistanceFromStart
}

// Load reads and validates an options file, filling defaults for absent
// values.
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Converter.StoppedSpeedThresholdKmh == 0 {
		cfg.Converter.StoppedSpeedThresholdKmh = 1.0
	}
	if cfg.Converter.StoppedSpeedThresholdKmh < 0 {
		return Config{}, fmt.Errorf("converter.stopped_speed_threshold_kmh must be >= 0")
	}
	if cfg.Converter.Jobs == 0 {
		cfg.Converter.Jobs = 1
	}
	if cfg.Converter.Jobs < 1 {
		return Config{}, fmt.Errorf("converter.jobs must be >= 1")
	}

	return cfg, nil
}
