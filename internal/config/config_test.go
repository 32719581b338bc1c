package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/testutil"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load with no file failed: %v", err)
	}

	if cfg.Analysis.MinSizeMB != 100 {
		t.Errorf("MinSizeMB = %d, want 100", cfg.Analysis.MinSizeMB)
	}
	if cfg.Analysis.StaleDays != 180 {
		t.Errorf("StaleDays = %d, want 180", cfg.Analysis.StaleDays)
	}
	if cfg.Analysis.TopFiles != 10 {
		t.Errorf("TopFiles = %d, want 10", cfg.Analysis.TopFiles)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("unexpected log defaults: %+v", cfg.Log)
	}
	if cfg.StateDir == "" {
		t.Error("expected a default state dir")
	}
}

func TestLoad_FromFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	content := []byte(`
analysis:
  min_size_mb: 50
  stale_days: 30
  top_files: 5
log:
  level: debug
  format: json
`)
	path := testutil.CreateTestFile(t, dir, "config.yaml", content)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Analysis.MinSizeMB != 50 {
		t.Errorf("MinSizeMB = %d, want 50", cfg.Analysis.MinSizeMB)
	}
	if cfg.Analysis.StaleDays != 30 {
		t.Errorf("StaleDays = %d, want 30", cfg.Analysis.StaleDays)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Errorf("unexpected log config: %+v", cfg.Log)
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	_, err := Load(filepath.Join(dir, "nope.yaml"))
	if !errors.Is(err, domain.ErrConfigNotFound) {
		t.Errorf("expected ErrConfigNotFound, got %v", err)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	content := []byte(`
analysis:
  min_size_mb: -5
`)
	path := testutil.CreateTestFile(t, dir, "config.yaml", content)

	_, err := Load(path)
	if !errors.Is(err, domain.ErrConfigInvalid) {
		t.Errorf("expected ErrConfigInvalid, got %v", err)
	}
}

func TestValidate_LogLevel(t *testing.T) {
	cfg := &Config{
		Analysis: AnalysisConfig{MinSizeMB: 100, StaleDays: 180, TopFiles: 10},
		Log:      LogConfig{Level: "verbose", Format: "text"},
	}
	if err := cfg.Validate(); !errors.Is(err, domain.ErrConfigInvalid) {
		t.Errorf("expected ErrConfigInvalid for bad level, got %v", err)
	}
}

func TestScanConfig(t *testing.T) {
	a := AnalysisConfig{MinSizeMB: 7, StaleDays: 8, TopFiles: 9}
	sc := a.ScanConfig()
	if sc.MinSizeMB != 7 || sc.StaleDays != 8 || sc.TopFiles != 9 {
		t.Errorf("ScanConfig mismatch: %+v", sc)
	}
}
