package history

import (
	"errors"
	"sync"
	"time"

	"github.com/dshills/reviso/internal/snapshot"
)

// Common errors for history operations.
var (
	ErrEmptyHistory = errors.New("no past states to undo")
	ErrEmptyFuture  = errors.New("no undone states to redo")
)

// DefaultMaxEntries is the past-stack bound used when none is specified.
const DefaultMaxEntries = 1000

// entry wraps a snapshot with metadata.
type entry struct {
	snap snapshot.Snapshot
	at   time.Time
}

// EntryInfo describes one stored history entry.
type EntryInfo struct {
	Timestamp time.Time
}

// History manages undo/redo state for one originator.
type History struct {
	mu sync.Mutex

	past   []entry
	future []entry

	// Configuration
	maxEntries int
}

// New creates a history store bounded to maxEntries past states. A negative
// bound selects DefaultMaxEntries. A bound of zero is honored literally:
// every recorded state is immediately evicted and undo always reports
// ErrEmptyHistory.
func New(maxEntries int) *History {
	if maxEntries < 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{
		maxEntries: maxEntries,
	}
}

// Record pushes a snapshot onto the past stack and clears the future stack.
// If the past stack now exceeds the bound, the oldest entry is evicted.
// Record never fails.
func (h *History) Record(snap snapshot.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = append(h.past, entry{snap: snap, at: time.Now()})

	// A new edit invalidates the redo branch
	h.future = nil

	if len(h.past) > h.maxEntries {
		h.past = h.past[1:]
	}
}

// Undo pops the most recent past state and returns it. The caller-supplied
// current snapshot is pushed onto the future stack so the move is
// redoable. Returns ErrEmptyHistory, with no mutation, if there is nothing
// to undo.
func (h *History) Undo(current snapshot.Snapshot) (snapshot.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return snapshot.Snapshot{}, ErrEmptyHistory
	}

	popped := h.past[len(h.past)-1]
	h.past = h.past[:len(h.past)-1]
	h.future = append(h.future, entry{snap: current, at: time.Now()})

	return popped.snap, nil
}

// Redo pops the most recent future state and returns it. The caller-supplied
// current snapshot is pushed onto the past stack so the move is undoable.
// Returns ErrEmptyFuture, with no mutation, if there is nothing to redo.
func (h *History) Redo(current snapshot.Snapshot) (snapshot.Snapshot, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return snapshot.Snapshot{}, ErrEmptyFuture
	}

	popped := h.future[len(h.future)-1]
	h.future = h.future[:len(h.future)-1]
	h.past = append(h.past, entry{snap: current, at: time.Now()})

	return popped.snap, nil
}

// CanUndo returns true if undo is available.
func (h *History) CanUndo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past) > 0
}

// CanRedo returns true if redo is available.
func (h *History) CanRedo() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future) > 0
}

// UndoCount returns the number of undo steps available.
func (h *History) UndoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.past)
}

// RedoCount returns the number of redo steps available.
func (h *History) RedoCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.future)
}

// PeekUndo returns the snapshot the next Undo would restore, without
// removing it.
func (h *History) PeekUndo() (snapshot.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.past) == 0 {
		return snapshot.Snapshot{}, false
	}
	return h.past[len(h.past)-1].snap, true
}

// PeekRedo returns the snapshot the next Redo would restore, without
// removing it.
func (h *History) PeekRedo() (snapshot.Snapshot, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.future) == 0 {
		return snapshot.Snapshot{}, false
	}
	return h.future[len(h.future)-1].snap, true
}

// UndoInfo returns metadata for the past stack, oldest first.
func (h *History) UndoInfo() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]EntryInfo, len(h.past))
	for i, e := range h.past {
		result[i] = EntryInfo{Timestamp: e.at}
	}
	return result
}

// RedoInfo returns metadata for the future stack, oldest first.
func (h *History) RedoInfo() []EntryInfo {
	h.mu.Lock()
	defer h.mu.Unlock()

	result := make([]EntryInfo, len(h.future))
	for i, e := range h.future {
		result[i] = EntryInfo{Timestamp: e.at}
	}
	return result
}

// Clear empties both stacks. Idempotent.
func (h *History) Clear() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.past = nil
	h.future = nil
}

// SetMaxEntries changes the past-stack bound. If the stack is larger than
// the new bound, oldest entries are removed. A negative bound selects
// DefaultMaxEntries.
func (h *History) SetMaxEntries(max int) {
	if max < 0 {
		max = DefaultMaxEntries
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.maxEntries = max

	if len(h.past) > max {
		excess := len(h.past) - max
		h.past = h.past[excess:]
	}
}

// MaxEntries returns the past-stack bound.
func (h *History) MaxEntries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.maxEntries
}
