package scan

import (
	"context"
	"io/fs"

	"github.com/Ning0612/reclaim/internal/core/walk"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/progress"
)

// noiseFloor is the minimum byte size for duplicate consideration.
// False positives among tiny files are common and low-value to report.
const noiseFloor = 1024

// FindDuplicates returns groups of 2+ byte-identical files under root.
// The scan is two-phase: files are first bucketed by exact size, then
// only files sharing a size are content-hashed, avoiding the read cost
// for files with unique sizes. Files at or below the 1024-byte noise
// floor are never considered. A file that becomes unreadable between
// the size pass and the hash pass is dropped; it never produces a
// one-member group.
func (s *Scanner) FindDuplicates(ctx context.Context, root string) ([]domain.DuplicateGroup, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	s.reporter.Reset()

	// Phase 1: partition by exact size
	sizeGroups := make(map[int64][]domain.FileRecord)
	err = walk.Walk(ctx, root, 0, func(path string, d fs.DirEntry) error {
		s.reporter.Visit(progress.PhaseWalk, path)

		if !d.Type().IsRegular() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}
		if info.Size() <= noiseFloor {
			return nil
		}

		record, ok := newFileRecord(path, info)
		if !ok {
			return nil
		}
		sizeGroups[info.Size()] = append(sizeGroups[info.Size()], record)
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Phase 2: hash only files that share a size
	totalToHash := 0
	for _, files := range sizeGroups {
		if len(files) > 1 {
			totalToHash += len(files)
		}
	}

	var groups []domain.DuplicateGroup
	hashed := 0
	for _, files := range sizeGroups {
		if len(files) < 2 {
			continue
		}

		byHash := make(map[string][]domain.FileRecord)
		for _, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			hashed++
			s.reporter.Step(progress.PhaseHash, f.Path, hashed, totalToHash)

			digest, err := s.calc.SumFile(ctx, f.Path)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				// unreadable or vanished mid-scan, drop it
				continue
			}
			byHash[digest] = append(byHash[digest], f)
		}

		for digest, members := range byHash {
			if len(members) < 2 {
				continue
			}
			groups = append(groups, domain.DuplicateGroup{
				Hash:  digest,
				Files: members,
			})
		}
	}

	return groups, nil
}
