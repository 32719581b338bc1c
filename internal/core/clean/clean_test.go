package clean

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/testutil"
)

func sampleAnalysis() *domain.DiskAnalysis {
	return &domain.DiskAnalysis{
		Root: "/data",
		LargeFiles: []domain.FileRecord{
			{Path: "/data/huge.iso", Size: 5000},
			{Path: "/data/big.mkv", Size: 4000},
		},
		Duplicates: []domain.DuplicateGroup{
			{Hash: "aa", Files: []domain.FileRecord{
				{Path: "/data/one.bin", Size: 100},
				{Path: "/data/two.bin", Size: 100},
				{Path: "/data/three.bin", Size: 100},
			}},
		},
		StaleFiles: []domain.FileRecord{
			{Path: "/data/old.log", Size: 300},
		},
		CacheDirs: []domain.CacheDirRecord{
			{Path: "/data/proj/node_modules", Label: "npm/yarn", Size: 700},
		},
	}
}

func TestBuildPlan_KeepsFirstDuplicate(t *testing.T) {
	plan := BuildPlan(sampleAnalysis(), Selection{AllDuplicates: true})

	if len(plan.Files) != 2 {
		t.Fatalf("expected 2 files (keep one copy), got %d", len(plan.Files))
	}
	for _, f := range plan.Files {
		if f.Path == "/data/one.bin" {
			t.Error("first group member must be kept")
		}
	}
	if plan.TotalBytes() != 200 {
		t.Errorf("TotalBytes = %d, want 200", plan.TotalBytes())
	}
}

func TestBuildPlan_ByIndex(t *testing.T) {
	plan := BuildPlan(sampleAnalysis(), Selection{
		LargeFiles: []int{1},
		StaleFiles: []int{0},
		CacheDirs:  []int{0},
	})

	if len(plan.Files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(plan.Files))
	}
	if len(plan.Dirs) != 1 {
		t.Fatalf("expected 1 dir, got %d", len(plan.Dirs))
	}
	if plan.Dirs[0].Path != "/data/proj/node_modules" {
		t.Errorf("unexpected dir: %s", plan.Dirs[0].Path)
	}
	if plan.TotalBytes() != 4000+300+700 {
		t.Errorf("TotalBytes = %d, want %d", plan.TotalBytes(), 4000+300+700)
	}
}

func TestBuildPlan_OutOfRangeIgnored(t *testing.T) {
	plan := BuildPlan(sampleAnalysis(), Selection{
		LargeFiles: []int{-1, 99},
		CacheDirs:  []int{5},
	})

	if !plan.IsEmpty() {
		t.Errorf("expected empty plan, got %d files, %d dirs", len(plan.Files), len(plan.Dirs))
	}
}

func TestBuildPlan_DeduplicatesAcrossCategories(t *testing.T) {
	analysis := sampleAnalysis()
	// The same path is both large and stale
	analysis.StaleFiles = append(analysis.StaleFiles, domain.FileRecord{Path: "/data/huge.iso", Size: 5000})

	plan := BuildPlan(analysis, Selection{
		LargeFiles: []int{0},
		AllStale:   true,
	})

	count := 0
	for _, f := range plan.Files {
		if f.Path == "/data/huge.iso" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("path planned %d times, want once", count)
	}
}

func TestBuildPlan_Pure(t *testing.T) {
	analysis := sampleAnalysis()
	before := len(analysis.Duplicates[0].Files)

	BuildPlan(analysis, Selection{AllDuplicates: true, AllStale: true, AllCaches: true})

	if len(analysis.Duplicates[0].Files) != before {
		t.Error("BuildPlan mutated the analysis")
	}
}

func TestExecute_DeletesFilesAndDirs(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	file := testutil.CreateTestFile(t, dir, "doomed.txt", []byte("doomed"))
	testutil.CreateTestFile(t, dir, filepath.Join("node_modules", "pkg.js"), []byte("cache"))
	cacheDir := filepath.Join(dir, "node_modules")

	plan := Plan{
		Files: []domain.FileRecord{{Path: file, Size: 6}},
		Dirs:  []domain.CacheDirRecord{{Path: cacheDir, Size: 5}},
	}

	results := NewDefaultExecutor().Execute(context.Background(), plan)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("deletion of %s failed: %v", r.Path, r.Err)
		}
	}

	if _, err := os.Stat(file); !os.IsNotExist(err) {
		t.Error("file still exists")
	}
	if _, err := os.Stat(cacheDir); !os.IsNotExist(err) {
		t.Error("cache dir still exists")
	}
	if FreedBytes(results) != 11 {
		t.Errorf("FreedBytes = %d, want 11", FreedBytes(results))
	}
}

func TestExecute_PartialFailureContinues(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	missing := filepath.Join(dir, "already-gone.txt")
	real := testutil.CreateTestFile(t, dir, "real.txt", []byte("real"))

	plan := Plan{
		Files: []domain.FileRecord{
			{Path: missing, Size: 10},
			{Path: real, Size: 4},
		},
	}

	results := NewDefaultExecutor().Execute(context.Background(), plan)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0].Err == nil {
		t.Error("expected error for missing file")
	}
	if results[1].Err != nil {
		t.Errorf("second deletion should succeed despite first failing: %v", results[1].Err)
	}
	if FreedBytes(results) != 4 {
		t.Errorf("FreedBytes = %d, want 4", FreedBytes(results))
	}
}

func TestExecute_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	plan := Plan{
		Files: []domain.FileRecord{{Path: "/nonexistent", Size: 1}},
	}

	results := NewDefaultExecutor().Execute(ctx, plan)
	if len(results) != 0 {
		t.Errorf("expected no deletions after cancellation, got %d", len(results))
	}
}
