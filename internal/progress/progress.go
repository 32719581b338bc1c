package progress

import "sync"

// Phase identifies which part of a scan an update belongs to
type Phase int

const (
	// PhaseWalk covers directory traversal (all scanners)
	PhaseWalk Phase = iota
	// PhaseHash covers content hashing during duplicate confirmation
	PhaseHash
)

// Update is one progress notification
type Update struct {
	Phase Phase

	// CurrentPath is the entry being visited when the update fired
	CurrentPath string

	// Visited is the number of entries seen so far in this phase
	Visited int

	// Total is the number of entries the phase will process,
	// or 0 when unknown (walking has no upfront total)
	Total int
}

// Callback is a function that receives progress updates
type Callback func(update Update)

// DefaultInterval is the traversal count between walk updates
const DefaultInterval = 100

// Reporter throttles per-entry visits into periodic callback updates.
// The zero value (or a nil callback) reports nothing; scanners never
// need to branch on whether progress was requested.
type Reporter struct {
	callback Callback
	interval int

	mu      sync.Mutex
	visited int
}

// NewReporter creates a reporter invoking callback every interval visits.
// interval <= 0 selects DefaultInterval.
func NewReporter(callback Callback, interval int) *Reporter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Reporter{callback: callback, interval: interval}
}

// Visit records one traversal entry and fires the callback if the
// interval has elapsed.
func (r *Reporter) Visit(phase Phase, path string) {
	if r == nil || r.callback == nil {
		return
	}

	r.mu.Lock()
	r.visited++
	fire := r.visited%r.interval == 0
	update := Update{
		Phase:       phase,
		CurrentPath: path,
		Visited:     r.visited,
	}
	callback := r.callback
	r.mu.Unlock()

	// Call callback outside lock to prevent deadlock
	if fire {
		callback(update)
	}
}

// Step reports one completed unit of a phase with a known total,
// firing on every call (hashing is expensive enough per unit that
// throttling is unnecessary).
func (r *Reporter) Step(phase Phase, path string, done, total int) {
	if r == nil || r.callback == nil {
		return
	}

	r.callback(Update{
		Phase:       phase,
		CurrentPath: path,
		Visited:     done,
		Total:       total,
	})
}

// Reset clears the visit counter, so one reporter can serve
// consecutive scanner passes.
func (r *Reporter) Reset() {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.visited = 0
	r.mu.Unlock()
}
