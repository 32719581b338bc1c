package walk

import (
	"context"
	"io/fs"
	"path/filepath"
	"strings"
)

// VisitFunc is called for every filesystem entry the walker yields.
// Returning fs.SkipDir on a directory skips its subtree.
type VisitFunc func(path string, d fs.DirEntry) error

// Walk traverses the tree rooted at root, calling visit for each entry
// that survives filtering. maxDepth limits how deep the walk descends
// (root itself is depth 0); maxDepth <= 0 means unbounded.
//
// Symbolic links are never followed. Directories for which IsExcluded
// is true are pruned together with their entire subtree. Entries that
// fail with a permission or I/O error are skipped individually; the
// walk continues with siblings. Cancellation is polled between entry
// visits.
func Walk(ctx context.Context, root string, maxDepth int, visit VisitFunc) error {
	root = filepath.Clean(root)

	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				// Unreadable root is the only fatal condition
				return err
			}
			// Skip the entry, keep walking siblings
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if path != root && IsExcluded(path) {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if maxDepth > 0 && depth(path, root) > maxDepth {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		return visit(path, d)
	})
}

// depth returns how many levels below root the path sits.
func depth(path, root string) int {
	rel := strings.TrimPrefix(path, root)
	rel = strings.TrimPrefix(rel, string(filepath.Separator))
	if rel == "" {
		return 0
	}
	return strings.Count(rel, string(filepath.Separator)) + 1
}
