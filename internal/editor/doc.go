// Package editor provides the originator side of the snapshot history
// mechanism: a single owner of the "current state" that records every
// replaced state into a bounded history and can walk backward and forward
// through it.
//
//	ed := editor.New(editor.WithMaxHistory(100))
//
//	ed.SetContent("hello")
//	ed.SetContent("hello world")
//
//	prev, err := ed.Undo() // current is "hello" again
//	next, err := ed.Redo() // back to "hello world"
//
// An Editor is meant to be owned by exactly one caller; independent editing
// sessions each get their own Editor (see the session package).
package editor
