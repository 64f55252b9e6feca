// Package history provides bounded undo/redo bookkeeping over immutable
// state snapshots.
//
// The History type keeps two stacks around a pivot it does not hold: the
// past (states reachable by undo) and the future (states reachable by
// redo). The "current" state lives with the caller, typically an
// editor.Editor. Because the store never tracks current itself, Undo and
// Redo take the caller's current snapshot as an argument so the state being
// moved away from lands on the opposite stack:
//
//	h := history.New(100)
//
//	h.Record(oldState)           // before installing a new current state
//	prev, err := h.Undo(current) // current becomes redoable, prev returned
//	next, err := h.Redo(current) // current becomes undoable, next returned
//
// Recording a new state clears the future: a fresh edit invalidates any
// redo branch. The past is bounded by a maximum entry count; recording
// beyond the bound silently evicts the oldest entry.
//
// Undo on an empty past returns ErrEmptyHistory; Redo on an empty future
// returns ErrEmptyFuture. Neither mutates the store.
package history
