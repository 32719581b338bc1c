package walk

import (
	"path/filepath"
	"strings"
)

// excludedSegments are path components that mark system or virtual
// filesystem locations a scan must never enter. Matching is done on
// whole path segments so that e.g. "sys" prunes "/sys/kernel" but not
// "mysys/data".
var excludedSegments = map[string]struct{}{
	".git":    {},
	"proc":    {},
	"sys":     {},
	"dev":     {},
	"run":     {},
	".Trash":  {},
	"System":  {},
	"Volumes": {},
}

// excludedPairs are consecutive segment pairs (e.g. "Library/Caches"
// for macOS system-managed caches).
var excludedPairs = [][2]string{
	{"Library", "Caches"},
}

// IsExcluded reports whether path points into a system or virtual
// filesystem location, or into version-control metadata. Pure
// function of the path text; the path need not exist.
func IsExcluded(path string) bool {
	segments := strings.Split(filepath.ToSlash(path), "/")

	for i, seg := range segments {
		if _, ok := excludedSegments[seg]; ok {
			return true
		}
		for _, pair := range excludedPairs {
			if seg == pair[0] && i+1 < len(segments) && segments[i+1] == pair[1] {
				return true
			}
		}
	}

	return false
}
