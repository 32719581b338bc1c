package domain

import "time"

// FileRecord represents one regular file discovered during a scan.
// It is immutable once constructed; scanners copy records into result
// collections rather than sharing them.
type FileRecord struct {
	// Path is the absolute path of the file
	Path string

	// Size in bytes
	Size int64

	// AccessTime is the last access timestamp
	AccessTime time.Time

	// ModTime is the last modification timestamp
	ModTime time.Time
}

// DuplicateGroup is a set of 2+ files sharing identical size and
// identical SHA-256 content hash. Member order is encounter order
// during hashing; there is no cross-run stability guarantee.
type DuplicateGroup struct {
	// Hash is the hex-encoded SHA-256 digest shared by all members
	Hash string

	// Files are the byte-identical members (always 2 or more)
	Files []FileRecord
}

// Size returns the byte size shared by every member of the group.
func (g DuplicateGroup) Size() int64 {
	if len(g.Files) == 0 {
		return 0
	}
	return g.Files[0].Size
}

// WastedBytes returns the space reclaimable by keeping exactly one copy.
// Which copy is kept is arbitrary since all members are byte-identical.
func (g DuplicateGroup) WastedBytes() int64 {
	if len(g.Files) < 2 {
		return 0
	}
	return g.Size() * int64(len(g.Files)-1)
}

// CacheDirRecord represents one directory matched against the cache
// pattern table. Identity for deduplication is the absolute path.
type CacheDirRecord struct {
	// Path is the absolute path of the directory
	Path string

	// Label names the tool or ecosystem the pattern corresponds to
	// (e.g. "npm/yarn", "Rust/Cargo")
	Label string

	// Size is the cumulative size of all regular files transitively
	// contained, symlinks not followed. Always strictly positive.
	Size int64
}
