//go:build !linux && !darwin && !windows

package scan

import (
	"io/fs"
	"time"
)

// statTimes falls back to the modification time on platforms without a
// recognized stat structure; access-time based checks degrade to
// modification-time checks there.
func statTimes(info fs.FileInfo) (atime, mtime time.Time, ok bool) {
	return info.ModTime(), info.ModTime(), true
}
