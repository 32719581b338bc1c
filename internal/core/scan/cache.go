package scan

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Ning0612/reclaim/internal/core/walk"
	"github.com/Ning0612/reclaim/internal/domain"
	"github.com/Ning0612/reclaim/internal/progress"
)

// cacheWalkDepth bounds the cache scan for performance. Cache
// directories nested deeper than this are not found; an accepted
// limitation.
const cacheWalkDepth = 10

// cachePattern pairs a directory name with the tool it belongs to.
type cachePattern struct {
	pattern string
	label   string
}

// cachePatterns is the canonical table of well-known build and
// package-manager cache directories.
var cachePatterns = []cachePattern{
	{"node_modules", "npm/yarn"},
	{"target", "Rust/Cargo"},
	{"__pycache__", "Python"},
	{".cache", "Generic cache"},
	{"build", "Build output"},
	{".pytest_cache", "pytest"},
	{".mypy_cache", "mypy"},
	{"dist", "Distribution"},
}

// FindCacheDirs returns every directory under root matching the cache
// pattern table, with the cumulative size of all regular files it
// transitively contains, sorted descending by size. A directory is
// recorded at most once even if it matches several patterns, and only
// when its recursive size is strictly positive. The walk is depth
// bounded.
func (s *Scanner) FindCacheDirs(ctx context.Context, root string) ([]domain.CacheDirRecord, error) {
	root, err := absRoot(root)
	if err != nil {
		return nil, err
	}

	s.reporter.Reset()

	seen := make(map[string]struct{})
	var result []domain.CacheDirRecord

	err = walk.Walk(ctx, root, cacheWalkDepth, func(path string, d fs.DirEntry) error {
		s.reporter.Visit(progress.PhaseWalk, path)

		if !d.IsDir() {
			return nil
		}

		label, matched := matchCachePattern(path)
		if !matched {
			return nil
		}
		if _, dup := seen[path]; dup {
			return nil
		}
		seen[path] = struct{}{}

		size := dirSize(path)
		if size <= 0 {
			return nil
		}

		result = append(result, domain.CacheDirRecord{
			Path:  path,
			Label: label,
			Size:  size,
		})
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

// matchCachePattern returns the label of the first table entry the
// directory path matches. Matching is suffix based but segment safe:
// "proj/node_modules" matches "node_modules", "proj/mynode_modules"
// does not.
func matchCachePattern(path string) (string, bool) {
	slashed := filepath.ToSlash(path)
	for _, p := range cachePatterns {
		if slashed == p.pattern || strings.HasSuffix(slashed, "/"+p.pattern) {
			return p.label, true
		}
	}
	return "", false
}

// dirSize sums the sizes of all regular files transitively beneath
// path. Symlinks are not followed and unreadable entries are skipped.
func dirSize(path string) int64 {
	var total int64
	filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		total += info.Size()
		return nil
	})
	return total
}
