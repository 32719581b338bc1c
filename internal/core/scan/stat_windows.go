//go:build windows

package scan

import (
	"io/fs"
	"syscall"
	"time"
)

// statTimes extracts access and modification times from platform
// metadata. ok is false when the underlying stat data is unavailable.
func statTimes(info fs.FileInfo) (atime, mtime time.Time, ok bool) {
	attrs, castOK := info.Sys().(*syscall.Win32FileAttributeData)
	if !castOK {
		return time.Time{}, time.Time{}, false
	}
	atime = time.Unix(0, attrs.LastAccessTime.Nanoseconds())
	return atime, info.ModTime(), true
}
