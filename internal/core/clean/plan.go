// Package clean turns an analysis plus a user selection into a
// deletion plan, and executes plans against the filesystem. Plan
// construction is pure; nothing is deleted until Execute is called
// with the reviewed plan.
package clean

import (
	"github.com/Ning0612/reclaim/internal/domain"
)

// Selection captures which parts of an analysis the user chose to
// remove. Index slices refer to positions in the corresponding
// analysis list; a nil slice with the category flag set selects
// everything in that category.
type Selection struct {
	// LargeFiles selects entries of DiskAnalysis.LargeFiles by index
	LargeFiles []int

	// Duplicates selects groups by index; within a selected group
	// every member except the first is planned for deletion
	Duplicates []int

	// AllDuplicates selects every duplicate group
	AllDuplicates bool

	// StaleFiles selects entries of DiskAnalysis.StaleFiles by index
	StaleFiles []int

	// AllStale selects every stale file
	AllStale bool

	// CacheDirs selects entries of DiskAnalysis.CacheDirs by index
	CacheDirs []int

	// AllCaches selects every cache directory
	AllCaches bool
}

// Plan is the concrete set of paths to remove.
type Plan struct {
	// Files to delete individually
	Files []domain.FileRecord

	// Dirs to delete recursively
	Dirs []domain.CacheDirRecord
}

// IsEmpty reports whether the plan contains nothing to delete.
func (p Plan) IsEmpty() bool {
	return len(p.Files) == 0 && len(p.Dirs) == 0
}

// TotalBytes returns the byte count the plan would free.
func (p Plan) TotalBytes() int64 {
	var total int64
	for _, f := range p.Files {
		total += f.Size
	}
	for _, d := range p.Dirs {
		total += d.Size
	}
	return total
}

// BuildPlan maps a selection onto an analysis. It is a pure function:
// no filesystem access, no mutation of the analysis. Out-of-range
// indices are ignored. For duplicate groups the first member is always
// kept; the choice is arbitrary since members are byte-identical.
func BuildPlan(analysis *domain.DiskAnalysis, sel Selection) Plan {
	var plan Plan
	seen := make(map[string]struct{})

	addFile := func(f domain.FileRecord) {
		if _, dup := seen[f.Path]; dup {
			return
		}
		seen[f.Path] = struct{}{}
		plan.Files = append(plan.Files, f)
	}

	for _, i := range sel.LargeFiles {
		if i >= 0 && i < len(analysis.LargeFiles) {
			addFile(analysis.LargeFiles[i])
		}
	}

	dupIndices := sel.Duplicates
	if sel.AllDuplicates {
		dupIndices = allIndices(len(analysis.Duplicates))
	}
	for _, i := range dupIndices {
		if i < 0 || i >= len(analysis.Duplicates) {
			continue
		}
		group := analysis.Duplicates[i]
		for _, f := range group.Files[1:] {
			addFile(f)
		}
	}

	staleIndices := sel.StaleFiles
	if sel.AllStale {
		staleIndices = allIndices(len(analysis.StaleFiles))
	}
	for _, i := range staleIndices {
		if i >= 0 && i < len(analysis.StaleFiles) {
			addFile(analysis.StaleFiles[i])
		}
	}

	cacheIndices := sel.CacheDirs
	if sel.AllCaches {
		cacheIndices = allIndices(len(analysis.CacheDirs))
	}
	for _, i := range cacheIndices {
		if i < 0 || i >= len(analysis.CacheDirs) {
			continue
		}
		c := analysis.CacheDirs[i]
		if _, dup := seen[c.Path]; dup {
			continue
		}
		seen[c.Path] = struct{}{}
		plan.Dirs = append(plan.Dirs, c)
	}

	return plan
}

func allIndices(n int) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	return indices
}
