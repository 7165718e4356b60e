// Package store holds the client's normalized application state, one store
// per entity family. Mutation methods are the only writers; read projections
// copy state out. All stores are safe for concurrent use.
package store

import (
	"sync"
	"sync/atomic"
)

// workState is the per-store workflow bookkeeping every entity store embeds:
// the busy flag, the last workflow error message, and the monotonic sequence
// used to drop stale list replacements.
type workState struct {
	busy int32
	seq  uint64

	errMu  sync.Mutex
	errMsg string
}

// StartWork marks a workflow in flight. Paired with FinishWork.
func (w *workState) StartWork() {
	atomic.AddInt32(&w.busy, 1)
}

// FinishWork settles one workflow.
func (w *workState) FinishWork() {
	atomic.AddInt32(&w.busy, -1)
}

// Loading reports whether any workflow against this store is still pending.
func (w *workState) Loading() bool {
	return atomic.LoadInt32(&w.busy) > 0
}

// Begin issues a sequence token for a list-fetch workflow. Tokens are taken
// before the network call; a list replacement carrying an older token than
// the newest committed one is rejected, so the last-issued fetch wins no
// matter which response lands first.
func (w *workState) Begin() uint64 {
	return atomic.AddUint64(&w.seq, 1)
}

// SetError records the human-readable failure message surfaced to the UI.
func (w *workState) SetError(msg string) {
	w.errMu.Lock()
	w.errMsg = msg
	w.errMu.Unlock()
}

// ClearError resets the error projection at workflow start.
func (w *workState) ClearError() {
	w.SetError("")
}

// Err returns the last recorded workflow error message, empty when none.
func (w *workState) Err() string {
	w.errMu.Lock()
	defer w.errMu.Unlock()
	return w.errMsg
}

// commit records a list replacement token. It reports false, leaving prev
// untouched, when token is older than the newest committed one.
func commit(prev *uint64, token uint64) bool {
	if token <= *prev {
		return false
	}
	*prev = token
	return true
}
