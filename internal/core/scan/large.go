package scan

import (
	"context"
	"io/fs"
	"sort"

	"github.com/Ning0612/reclaim/internal/core/walk"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/progress"
)

// FindLargeFiles returns every regular file under root whose size is at
// least minSizeMB megabytes, sorted descending by size. Files of equal
// size have unspecified relative order. Files whose timestamps cannot
// be read are omitted.
func (s *Scanner) FindLargeFiles(ctx context.Context, root string, minSizeMB int64) ([]domain.FileRecord, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	threshold := minSizeMB * 1024 * 1024
	s.reporter.Reset()

	var result []domain.FileRecord
	err = walk.Walk(ctx, root, 0, func(path string, d fs.DirEntry) error {
		s.reporter.Visit(progress.PhaseWalk, path)

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			// metadata unavailable, skip the entry
			return nil
		}
		if info.Size() < threshold {
			return nil
		}

		record, ok := newFileRecord(path, info)
		if !ok {
			return nil
		}
		result = append(result, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Largest first
	sort.Slice(result, func(i, j int) bool {
		return result[i].Size > result[j].Size
	})

	return result, nil
}
