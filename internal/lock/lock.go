package lock

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	// LockFileName is the name of the lock file
	LockFileName = ".reclaim.lock"
	// DefaultStaleTimeout is the duration after which a lock from an
	// unreachable host is considered stale
	DefaultStaleTimeout = 30 * time.Minute
)

// Info contains metadata about the lock holder
type Info struct {
	PID       int       `json:"pid"`
	Hostname  string    `json:"hostname"`
	StartTime time.Time `json:"start_time"`
	Root      string    `json:"root,omitempty"`
}

// FileLock prevents two deletion runs from operating at the same time.
// Only operations that remove data take the lock; analysis is read-only
// and runs unguarded.
type FileLock struct {
	lockPath     string
	staleTimeout time.Duration
	info         *Info
}

// New creates a file lock in lockDir. An empty lockDir selects the
// user cache directory.
func New(lockDir string) (*FileLock, error) {
	if lockDir == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get cache dir: %w", err)
		}
		lockDir = filepath.Join(cacheDir, "reclaim")
	}

	if err := os.MkdirAll(lockDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	return &FileLock{
		lockPath:     filepath.Join(lockDir, LockFileName),
		staleTimeout: DefaultStaleTimeout,
	}, nil
}

// SetStaleTimeout sets the duration after which a cross-host lock is
// considered stale.
func (l *FileLock) SetStaleTimeout(d time.Duration) {
	l.staleTimeout = d
}

// Acquire attempts to take the lock for a deletion run over root.
// Returns a *HeldError if another live process holds it.
func (l *FileLock) Acquire(root string) error {
	existing, err := l.readInfo()
	if err == nil {
		if !l.isStale(existing) {
			return &HeldError{Holder: existing}
		}
		// Holder is gone, reclaim the file
		if err := os.Remove(l.lockPath); err != nil {
			return fmt.Errorf("failed to remove stale lock: %w", err)
		}
	}

	hostname, _ := os.Hostname()
	info := &Info{
		PID:       os.Getpid(),
		Hostname:  hostname,
		StartTime: time.Now(),
		Root:      root,
	}

	// O_EXCL makes creation atomic against a concurrent Acquire
	file, err := os.OpenFile(l.lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		if os.IsExist(err) {
			holder, readErr := l.readInfo()
			if readErr != nil {
				return fmt.Errorf("lock acquisition race: %w", err)
			}
			return &HeldError{Holder: holder}
		}
		return fmt.Errorf("failed to create lock file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(info); err != nil {
		os.Remove(l.lockPath)
		return fmt.Errorf("failed to write lock info: %w", err)
	}

	l.info = info
	return nil
}

// Release releases the lock if this instance holds it.
func (l *FileLock) Release() error {
	if l.info == nil {
		return nil
	}

	existing, err := l.readInfo()
	if err != nil {
		l.info = nil
		return nil // already gone
	}

	if !l.heldByThisInstance(existing) {
		l.info = nil
		return fmt.Errorf("lock was taken over by another process")
	}

	if err := os.Remove(l.lockPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove lock file: %w", err)
	}

	l.info = nil
	return nil
}

// IsLocked reports whether a live process currently holds the lock.
func (l *FileLock) IsLocked() bool {
	info, err := l.readInfo()
	if err != nil {
		return false
	}
	return !l.isStale(info)
}

// Holder returns information about the current lock holder.
func (l *FileLock) Holder() (*Info, error) {
	info, err := l.readInfo()
	if err != nil {
		return nil, err
	}
	if l.isStale(info) {
		return nil, fmt.Errorf("lock is stale")
	}
	return info, nil
}

func (l *FileLock) readInfo() (*Info, error) {
	data, err := os.ReadFile(l.lockPath)
	if err != nil {
		return nil, err
	}

	var info Info
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("invalid lock file format: %w", err)
	}

	return &info, nil
}

// isStale reports whether the holder is no longer running. Same-host
// locks check the process directly; cross-host locks fall back to the
// stale timeout since the process cannot be probed.
func (l *FileLock) isStale(info *Info) bool {
	hostname, _ := os.Hostname()

	if info.Hostname == hostname {
		return !processExists(info.PID)
	}

	return time.Since(info.StartTime) > l.staleTimeout
}

func (l *FileLock) heldByThisInstance(info *Info) bool {
	if l.info == nil {
		return false
	}
	hostname, _ := os.Hostname()
	return info.PID == os.Getpid() &&
		info.Hostname == hostname &&
		l.info.StartTime.Equal(info.StartTime) &&
		l.info.Root == info.Root
}

// HeldError reports that the lock is held by another live process
type HeldError struct {
	Holder *Info
}

func (e *HeldError) Error() string {
	if e.Holder != nil {
		return fmt.Sprintf("another deletion run is in progress (PID %d on %s since %s, root: %s)",
			e.Holder.PID,
			e.Holder.Hostname,
			e.Holder.StartTime.Format(time.RFC3339),
			e.Holder.Root,
		)
	}
	return "another deletion run is in progress"
}

// IsHeldError checks if an error is a HeldError
func IsHeldError(err error) bool {
	_, ok := err.(*HeldError)
	return ok
}
