// Package scan implements the disk-space reclamation scanners: large
// files, byte-identical duplicates, stale files, and known build or
// package cache directories, plus the aggregate analysis combining
// all four.
package scan

import (
	"io/fs"
	"path/filepath"

	"github.com/Ning0612/reclaim/internal/core/checksum"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/progress"
)

// Config holds the scan thresholds.
type Config struct {
	// MinSizeMB is the large-file threshold in megabytes
	MinSizeMB int64

	// StaleDays is the staleness threshold in days since last access
	StaleDays int

	// TopFiles caps how many large files are surfaced downstream.
	// Advisory only: scanners return the full matching set and
	// truncation is a presentation concern.
	TopFiles int
}

// DefaultConfig returns the recommended thresholds.
func DefaultConfig() Config {
	return Config{
		MinSizeMB: 100,
		StaleDays: 180,
		TopFiles:  10,
	}
}

// Scanner runs the individual scans. The zero value is not usable;
// create one with NewScanner.
type Scanner struct {
	calc     *checksum.Calculator
	reporter *progress.Reporter
}

// NewScanner creates a scanner with default hashing options and no
// progress reporting.
func NewScanner() *Scanner {
	return &Scanner{
		calc: checksum.NewDefaultCalculator(),
	}
}

// SetProgress installs a progress callback invoked at fixed
// traversal-count intervals. A nil callback disables reporting.
func (s *Scanner) SetProgress(cb progress.Callback) {
	if cb == nil {
		s.reporter = nil
		return
	}
	s.reporter = progress.NewReporter(cb, progress.DefaultInterval)
}

// absRoot normalizes the scan root so every record carries an
// absolute path.
func absRoot(root string) (string, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// newFileRecord builds a record for a regular file, reporting ok as
// false when the timestamps cannot be read.
func newFileRecord(path string, info fs.FileInfo) (domain.FileRecord, bool) {
	atime, mtime, ok := statTimes(info)
	if !ok {
		return domain.FileRecord{}, false
	}
	return domain.FileRecord{
		Path:       path,
		Size:       info.Size(),
		AccessTime: atime,
		ModTime:    mtime,
	}, true
}
