//go:build windows

package lock

import (
	"os"
)

// processExists checks whether a process with the given PID is running.
// Windows has no signal 0; FindProcess succeeding is the best available
// check, so stale cross-user locks fall back to the timeout.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	// Releasing avoids leaking the handle FindProcess opened
	process.Release()
	return true
}
