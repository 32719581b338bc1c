package scan

import (
	"context"
	"io/fs"
	"time"

	"github.com/Ning0612/reclaim/internal/core/walk"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/progress"
)

// FindStaleFiles returns every regular file under root that has not
// been accessed for at least days days. The reference time is captured
// once at scan start so the threshold is consistent across the whole
// walk. Files whose access time is unavailable or lies in the future
// (clock skew, filesystem quirks) are excluded.
func (s *Scanner) FindStaleFiles(ctx context.Context, root string, days int) ([]domain.FileRecord, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	threshold := time.Duration(days) * 24 * time.Hour
	s.reporter.Reset()

	var result []domain.FileRecord
	err = walk.Walk(ctx, root, 0, func(path string, d fs.DirEntry) error {
		s.reporter.Visit(progress.PhaseWalk, path)

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		record, ok := newFileRecord(path, info)
		if !ok {
			return nil
		}

		if record.AccessTime.After(now) {
			return nil
		}
		if now.Sub(record.AccessTime) < threshold {
			return nil
		}

		result = append(result, record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
