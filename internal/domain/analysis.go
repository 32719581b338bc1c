package domain

// DiskAnalysis is the consolidated result of running all four scanners
// against one root.
type DiskAnalysis struct {
	// Root is the absolute path the analysis was run against
	Root string

	// LargeFiles sorted descending by size
	LargeFiles []FileRecord

	// Duplicates are groups of byte-identical files
	Duplicates []DuplicateGroup

	// StaleFiles have not been accessed within the staleness threshold
	StaleFiles []FileRecord

	// CacheDirs sorted descending by size
	CacheDirs []CacheDirRecord

	// TotalReclaimable is duplicate waste + cache sizes + stale sizes.
	// A file that is simultaneously a duplicate, stale, and inside a
	// cache directory is counted once per category; the overestimate
	// is accepted and documented, not a bug.
	TotalReclaimable int64
}

// DuplicateWaste returns the bytes reclaimable by keeping exactly one
// copy per duplicate group.
func (a *DiskAnalysis) DuplicateWaste() int64 {
	var total int64
	for _, g := range a.Duplicates {
		total += g.WastedBytes()
	}
	return total
}

// CacheSize returns the cumulative size of all detected cache directories.
func (a *DiskAnalysis) CacheSize() int64 {
	var total int64
	for _, c := range a.CacheDirs {
		total += c.Size
	}
	return total
}

// StaleSize returns the cumulative size of all stale files.
func (a *DiskAnalysis) StaleSize() int64 {
	var total int64
	for _, f := range a.StaleFiles {
		total += f.Size
	}
	return total
}
