package config

import (
	"fmt"

	"github.com/Ning0612/reclaim/internal/core/scan"
	"github.com/Ning0612/reclaim/internal/domain"
)

// Config represents the complete configuration for reclaim
type Config struct {
	// Analysis holds the scan thresholds
	Analysis AnalysisConfig `mapstructure:"analysis"`

	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`

	// StateDir is where the scan history database lives
	StateDir string `mapstructure:"state_dir"`
}

// AnalysisConfig holds the recognized scan options
type AnalysisConfig struct {
	// MinSizeMB is the minimum file size in megabytes for the
	// large-file scan
	MinSizeMB int64 `mapstructure:"min_size_mb"`

	// StaleDays is the staleness threshold in days since last access
	StaleDays int `mapstructure:"stale_days"`

	// TopFiles is the maximum number of large files to surface in
	// output. Advisory: scanners return the full matching set.
	TopFiles int `mapstructure:"top_files"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is one of text, json
	Format string `mapstructure:"format"`

	// File enables rotating file output when non-empty
	File string `mapstructure:"file"`
}

// ScanConfig converts the analysis section to the scanner's config type.
func (a AnalysisConfig) ScanConfig() scan.Config {
	return scan.Config{
		MinSizeMB: a.MinSizeMB,
		StaleDays: a.StaleDays,
		TopFiles:  a.TopFiles,
	}
}

// Validate checks if the configuration is complete and consistent
func (c *Config) Validate() error {
	if c.Analysis.MinSizeMB <= 0 {
		return fmt.Errorf("%w: analysis.min_size_mb must be positive, got %d",
			domain.ErrConfigInvalid, c.Analysis.MinSizeMB)
	}
	if c.Analysis.StaleDays < 0 {
		return fmt.Errorf("%w: analysis.stale_days cannot be negative, got %d",
			domain.ErrConfigInvalid, c.Analysis.StaleDays)
	}
	if c.Analysis.TopFiles <= 0 {
		return fmt.Errorf("%w: analysis.top_files must be positive, got %d",
			domain.ErrConfigInvalid, c.Analysis.TopFiles)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", domain.ErrConfigInvalid, c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: unknown log format %q", domain.ErrConfigInvalid, c.Log.Format)
	}

	return nil
}
