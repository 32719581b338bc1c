package scan

import (
	"context"

	"github.com/Ning0612/reclaim/internal/domain"
)

// Analyze runs the four scanners in sequence against the same root and
// consolidates their results. Each scanner performs an independent
// traversal; no state is shared between them.
//
// Total reclaimable is the sum of duplicate waste (keeping exactly one
// copy per group), cache directory sizes, and stale file sizes. A file
// belonging to more than one category is counted once per category;
// the overestimate is documented behavior.
func (s *Scanner) Analyze(ctx context.Context, root string, cfg Config) (*domain.DiskAnalysis, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	large, err := s.FindLargeFiles(ctx, root, cfg.MinSizeMB)
	if err != nil {
		return nil, err
	}

	duplicates, err := s.FindDuplicates(ctx, root)
	if err != nil {
		return nil, err
	}

	stale, err := s.FindStaleFiles(ctx, root, cfg.StaleDays)
	if err != nil {
		return nil, err
	}

	caches, err := s.FindCacheDirs(ctx, root)
	if err != nil {
		return nil, err
	}

	analysis := &domain.DiskAnalysis{
		Root:       root,
		LargeFiles: large,
		Duplicates: duplicates,
		StaleFiles: stale,
		CacheDirs:  caches,
	}
	analysis.TotalReclaimable = analysis.DuplicateWaste() +
		analysis.CacheSize() +
		analysis.StaleSize()

	return analysis, nil
}
