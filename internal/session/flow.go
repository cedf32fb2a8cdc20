// Package session owns the in-memory session state: the canonical Job, the
// translated view, and one lifecycle per asynchronous flow. The state is an
// explicitly owned object handed to its consumers, never a package-level
// global, and every mutation is atomic to concurrent readers.
package session

// Status is the lifecycle state of one asynchronous flow.
type Status string

// Lifecycle states. A fresh dispatch from any state re-enters StatusLoading;
// nothing leaves StatusSucceeded or StatusFailed on its own.
const (
	StatusIdle      Status = "idle"
	StatusLoading   Status = "loading"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

// Flow tracks one outstanding remote call. Every dispatch is assigned a
// monotonic sequence number; a settlement carrying anything but the most
// recent sequence is stale and discarded, so overlapping requests cannot
// clobber each other's results. Flow is not self-locking: the owning Store
// serializes access.
type Flow struct {
	status Status
	err    string
	result any
	seq    uint64
}

// State is a read-only snapshot of a flow.
type State struct {
	Status Status `json:"status"`
	Error  string `json:"error,omitempty"`
}

// NewFlow returns a flow in the idle state.
func NewFlow() *Flow {
	return &Flow{status: StatusIdle}
}

// Dispatch moves the flow into loading, clears any previous error, and
// returns the sequence number the eventual settlement must present.
func (f *Flow) Dispatch() uint64 {
	f.seq++
	f.status = StatusLoading
	f.err = ""
	return f.seq
}

// Succeed settles the dispatch identified by seq with its result. A stale
// sequence is ignored and false is returned.
func (f *Flow) Succeed(seq uint64, result any) bool {
	if seq != f.seq {
		return false
	}
	f.status = StatusSucceeded
	f.result = result
	return true
}

// Fail settles the dispatch identified by seq with a display error. The
// previous successful result, if any, is left untouched so stale data can
// still be shown alongside the error. A stale sequence is ignored.
func (f *Flow) Fail(seq uint64, message string) bool {
	if seq != f.seq {
		return false
	}
	f.status = StatusFailed
	f.err = message
	return true
}

// Reset returns the flow to idle and discards its result and error. The
// sequence is advanced so an in-flight settlement from before the reset
// cannot land afterwards.
func (f *Flow) Reset() {
	f.seq++
	f.status = StatusIdle
	f.err = ""
	f.result = nil
}

// Result returns the stored result of the last successful settlement.
func (f *Flow) Result() any {
	return f.result
}

// State returns a snapshot of the flow's status and error.
func (f *Flow) State() State {
	return State{Status: f.status, Error: f.err}
}
