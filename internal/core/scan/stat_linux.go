//go:build linux

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// statTimes extracts access and modification times from platform
// metadata. ok is false when the underlying stat data is unavailable.
func statTimes(info fs.FileInfo) (atime, mtime time.Time, ok bool) {
	stat, castOK := info.Sys().(*syscall.Stat_t)
	if !castOK {
		return time.Time{}, time.Time{}, false
	}
	atime = time.Unix(stat.Atim.Sec, stat.Atim.Nsec)
	return atime, info.ModTime(), true
}
