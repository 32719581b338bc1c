package clean

import (
	"context"
	"os"
)

// Kind distinguishes plan item types in results.
type Kind string

const (
	KindFile Kind = "file"
	KindDir  Kind = "dir"
)

// Result reports the outcome of one deletion attempt.
type Result struct {
	Path  string
	Kind  Kind
	Bytes int64

	// Err is the underlying filesystem error, nil on success
	Err error
}

// Executor deletes planned items.
type Executor interface {
	Execute(ctx context.Context, plan Plan) []Result
}

// DefaultExecutor deletes directly via the os package.
type DefaultExecutor struct{}

// NewDefaultExecutor creates an executor operating on the real filesystem.
func NewDefaultExecutor() *DefaultExecutor {
	return &DefaultExecutor{}
}

// DeleteFile removes a single file, surfacing the underlying
// filesystem error unchanged. No retry.
func (e *DefaultExecutor) DeleteFile(path string) error {
	return os.Remove(path)
}

// DeleteDir removes a directory tree recursively, surfacing the
// underlying filesystem error unchanged. No retry.
func (e *DefaultExecutor) DeleteDir(path string) error {
	return os.RemoveAll(path)
}

// Execute deletes every item in the plan, continuing through per-item
// failures; partial failure is expected and normal. One Result is
// returned per item, in plan order, with Err set on failure.
// Cancellation stops the run between items.
func (e *DefaultExecutor) Execute(ctx context.Context, plan Plan) []Result {
	results := make([]Result, 0, len(plan.Files)+len(plan.Dirs))

	for _, f := range plan.Files {
		if ctx.Err() != nil {
			return results
		}
		results = append(results, Result{
			Path:  f.Path,
			Kind:  KindFile,
			Bytes: f.Size,
			Err:   e.DeleteFile(f.Path),
		})
	}

	for _, d := range plan.Dirs {
		if ctx.Err() != nil {
			return results
		}
		results = append(results, Result{
			Path:  d.Path,
			Kind:  KindDir,
			Bytes: d.Size,
			Err:   e.DeleteDir(d.Path),
		})
	}

	return results
}

// FreedBytes sums the bytes of successful deletions in results.
func FreedBytes(results []Result) int64 {
	var total int64
	for _, r := range results {
		if r.Err == nil {
			total += r.Bytes
		}
	}
	return total
}
