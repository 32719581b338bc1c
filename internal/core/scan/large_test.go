package scan

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Ning0612/reclaim/internal/testutil"
)

func TestFindLargeFiles_ThresholdAndOrder(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	testutil.CreateTestFileWithSize(t, dir, "big.bin", 3*1024*1024)
	testutil.CreateTestFileWithSize(t, dir, "bigger.bin", 5*1024*1024)
	testutil.CreateTestFileWithSize(t, dir, "small.bin", 512*1024)

	scanner := NewScanner()
	files, err := scanner.FindLargeFiles(context.Background(), dir, 1)
	if err != nil {
		t.Fatalf("FindLargeFiles failed: %v", err)
	}

	if len(files) != 2 {
		t.Fatalf("expected 2 files over 1MB, got %d", len(files))
	}

	threshold := int64(1024 * 1024)
	for _, f := range files {
		if f.Size < threshold {
			t.Errorf("%s below threshold: %d", f.Path, f.Size)
		}
	}

	// Non-increasing by size
	for i := 1; i < len(files); i++ {
		if files[i].Size > files[i-1].Size {
			t.Errorf("result not sorted descending at index %d", i)
		}
	}

	if filepath.Base(files[0].Path) != "bigger.bin" {
		t.Errorf("expected bigger.bin first, got %s", files[0].Path)
	}
}

func TestFindLargeFiles_VersionControlPruned(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	// A large file inside .git must never surface: the subtree is pruned
	testutil.CreateTestFileWithSize(t, dir, filepath.Join(".git", "objects", "pack.bin"), 4*1024*1024)
	testutil.CreateTestFileWithSize(t, dir, "visible.bin", 2*1024*1024)

	scanner := NewScanner()
	files, err := scanner.FindLargeFiles(context.Background(), dir, 1)
	if err != nil {
		t.Fatalf("FindLargeFiles failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if filepath.Base(files[0].Path) != "visible.bin" {
		t.Errorf("expected visible.bin, got %s", files[0].Path)
	}
}

func TestFindLargeFiles_AbsolutePaths(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	testutil.CreateTestFileWithSize(t, dir, "big.bin", 2*1024*1024)

	scanner := NewScanner()
	files, err := scanner.FindLargeFiles(context.Background(), dir, 1)
	if err != nil {
		t.Fatalf("FindLargeFiles failed: %v", err)
	}

	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	if !filepath.IsAbs(files[0].Path) {
		t.Errorf("expected absolute path, got %s", files[0].Path)
	}
	if files[0].AccessTime.IsZero() || files[0].ModTime.IsZero() {
		t.Error("expected populated timestamps")
	}
}

func TestFindLargeFiles_EmptyResult(t *testing.T) {
	dir, cleanup := testutil.TempDir(t)
	defer cleanup()

	testutil.CreateTestFile(t, dir, "tiny.txt", []byte("tiny"))

	scanner := NewScanner()
	files, err := scanner.FindLargeFiles(context.Background(), dir, 100)
	if err != nil {
		t.Fatalf("FindLargeFiles failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected no files, got %d", len(files))
	}
}
