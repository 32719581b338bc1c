//go:build !windows

package lock

import (
	"os"
	"syscall"
)

// processExists checks whether a process with the given PID is running.
// Signal 0 performs the permission and existence checks without
// delivering anything.
func processExists(pid int) bool {
	process, err := os.FindProcess(pid)
	if err != nil {
		return false
	}

	err = process.Signal(syscall.Signal(0))
	if err == nil {
		return true
	}
	// EPERM means the process exists but belongs to another user
	return err == syscall.EPERM
}
