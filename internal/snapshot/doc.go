// Package snapshot provides the immutable point-in-time state value used by
// the history and editor packages.
//
// A Snapshot is a bag of named fields captured at one instant. It is never
// mutated after creation: deriving a changed state always produces a new
// Snapshot via With. This makes snapshots safe to hand across the
// editor/history boundary without copying or locking.
//
//	state := snapshot.New(
//		snapshot.F("content", "hello"),
//		snapshot.F("title", "Draft"),
//	)
//
//	next := state.With(snapshot.F("content", "hello world"))
//
// Equality is structural (Equal) and is intended for callers and tests; the
// history store never inspects snapshot contents.
package snapshot
