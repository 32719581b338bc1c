package state

import (
	"testing"
	"time"

	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/testutil"
)

func newTestManager(t *testing.T) (*Manager, func()) {
	t.Helper()

	dir, cleanup := testutil.TempDir(t)
	m, err := NewManager(dir)
	if err != nil {
		cleanup()
		t.Fatalf("NewManager failed: %v", err)
	}

	return m, func() {
		m.Close()
		cleanup()
	}
}

func sampleRun() *domain.DiskAnalysis {
	return &domain.DiskAnalysis{
		Root: "/home/user",
		LargeFiles: []domain.FileRecord{
			{Path: "/home/user/huge.iso", Size: 5 << 30},
		},
		Duplicates: []domain.DuplicateGroup{
			{Hash: "ab", Files: []domain.FileRecord{
				{Path: "/home/user/a", Size: 2048},
				{Path: "/home/user/b", Size: 2048},
			}},
		},
		CacheDirs: []domain.CacheDirRecord{
			{Path: "/home/user/p/node_modules", Label: "npm/yarn", Size: 1 << 20},
		},
		TotalReclaimable: 1<<20 + 2048,
	}
}

func TestSaveRunAndHistory(t *testing.T) {
	m, cleanup := newTestManager(t)
	defer cleanup()

	start := time.Now().Add(-time.Minute)
	id, err := m.SaveRun(sampleRun(), start, 42*time.Second)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id <= 0 {
		t.Fatalf("expected positive run id, got %d", id)
	}

	records, err := m.GetHistory(10)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Root != "/home/user" {
		t.Errorf("Root = %s", r.Root)
	}
	if r.LargeFiles != 1 || r.DuplicateGroups != 1 || r.CacheDirs != 1 || r.StaleFiles != 0 {
		t.Errorf("unexpected counts: %+v", r)
	}
	if r.ReclaimableBytes != 1<<20+2048 {
		t.Errorf("ReclaimableBytes = %d", r.ReclaimableBytes)
	}
	if r.Duration != 42*time.Second {
		t.Errorf("Duration = %v", r.Duration)
	}
}

func TestHistoryOrderAndLimit(t *testing.T) {
	m, cleanup := newTestManager(t)
	defer cleanup()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		if _, err := m.SaveRun(sampleRun(), base.Add(time.Duration(i)*time.Minute), time.Second); err != nil {
			t.Fatalf("SaveRun failed: %v", err)
		}
	}

	records, err := m.GetHistory(3)
	if err != nil {
		t.Fatalf("GetHistory failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].StartTime.After(records[i-1].StartTime) {
			t.Error("history not ordered newest first")
		}
	}
}

func TestGetHistoryInvalidLimit(t *testing.T) {
	m, cleanup := newTestManager(t)
	defer cleanup()

	if _, err := m.GetHistory(0); err == nil {
		t.Error("expected error for zero limit")
	}
}

func TestSaveDeletion(t *testing.T) {
	m, cleanup := newTestManager(t)
	defer cleanup()

	id, err := m.SaveRun(sampleRun(), time.Now(), time.Second)
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	deletions := []DeletionRecord{
		{RunID: id, Path: "/home/user/b", Kind: "file", Bytes: 2048, DeletedAt: time.Now()},
		{RunID: id, Path: "/home/user/p/node_modules", Kind: "dir", Bytes: 1 << 20, DeletedAt: time.Now(), Error: "permission denied"},
	}
	for _, d := range deletions {
		if err := m.SaveDeletion(d); err != nil {
			t.Fatalf("SaveDeletion failed: %v", err)
		}
	}

	got, err := m.GetDeletions(id)
	if err != nil {
		t.Fatalf("GetDeletions failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 deletions, got %d", len(got))
	}
	if got[0].Kind != "file" || got[0].Error != "" {
		t.Errorf("unexpected first deletion: %+v", got[0])
	}
	if got[1].Kind != "dir" || got[1].Error != "permission denied" {
		t.Errorf("unexpected second deletion: %+v", got[1])
	}
}

func TestSaveDeletionInvalidKind(t *testing.T) {
	m, cleanup := newTestManager(t)
	defer cleanup()

	err := m.SaveDeletion(DeletionRecord{RunID: 1, Path: "/x", Kind: "socket", DeletedAt: time.Now()})
	if err == nil {
		t.Error("expected error for invalid kind")
	}
}

func TestNewManagerEmptyDir(t *testing.T) {
	if _, err := NewManager(""); err == nil {
		t.Error("expected error for empty data directory")
	}
}
