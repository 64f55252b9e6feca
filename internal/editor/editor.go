package editor

import (
	"github.com/dshills/reviso/internal/history"
	"github.com/dshills/reviso/internal/snapshot"
)

// Canonical field names for the editor state.
const (
	FieldContent  = "content"
	FieldTitle    = "title"
	FieldFontName = "fontName"
	FieldFontSize = "fontSize"
)

// Defaults for a seeded editor state.
const (
	DefaultTitle    = "Untitled"
	DefaultFontName = "Monospace"
	DefaultFontSize = 12.0
)

// DefaultFields returns the canonical starting fields for a document
// editor session.
func DefaultFields() []snapshot.Field {
	return []snapshot.Field{
		snapshot.F(FieldContent, ""),
		snapshot.F(FieldTitle, DefaultTitle),
		snapshot.F(FieldFontName, DefaultFontName),
		snapshot.F(FieldFontSize, DefaultFontSize),
	}
}

// Editor owns the current state snapshot and delegates undo/redo
// bookkeeping to a history store. It is the only component that installs a
// new notion of "current state."
//
// An unseeded editor holds no state until the first edit; that edit
// initializes the current snapshot and records nothing, so undo bottoms
// out at the first explicitly set state. Seeding with WithState makes the
// seed itself reachable by undo after later edits.
//
// An Editor is single-owner: one editing session per Editor. The embedded
// history store is internally locked, but interleaving Editor mutations
// from multiple goroutines is not supported.
type Editor struct {
	current     snapshot.Snapshot
	initialized bool
	hist        *history.History
}

// Option configures an Editor.
type Option func(*options)

type options struct {
	maxHistory int
	initial    snapshot.Snapshot
	hasInitial bool
}

// WithMaxHistory sets the undo depth bound.
func WithMaxHistory(n int) Option {
	return func(o *options) {
		o.maxHistory = n
	}
}

// WithState seeds the initial state.
func WithState(fields ...snapshot.Field) Option {
	return func(o *options) {
		o.initial = snapshot.New(fields...)
		o.hasInitial = true
	}
}

// New creates an editor with empty history.
func New(opts ...Option) *Editor {
	o := options{maxHistory: -1}
	for _, opt := range opts {
		opt(&o)
	}

	return &Editor{
		current:     o.initial,
		initialized: o.hasInitial,
		hist:        history.New(o.maxHistory),
	}
}

// State returns the current snapshot. For a never-edited, unseeded editor
// this is the zero snapshot.
func (e *Editor) State() snapshot.Snapshot {
	return e.current
}

// SetState replaces the current state wholesale with a snapshot built from
// the given fields. The outgoing state is recorded for undo. Always
// succeeds.
func (e *Editor) SetState(fields ...snapshot.Field) {
	e.install(snapshot.New(fields...))
}

// Apply merges the given fields over the current state. The outgoing state
// is recorded for undo.
func (e *Editor) Apply(fields ...snapshot.Field) {
	e.install(e.current.With(fields...))
}

// SetContent is a merge edit over the content field.
func (e *Editor) SetContent(content string) {
	e.Apply(snapshot.F(FieldContent, content))
}

// SetTitle is a merge edit over the title field.
func (e *Editor) SetTitle(title string) {
	e.Apply(snapshot.F(FieldTitle, title))
}

// SetFont is a merge edit over the font fields.
func (e *Editor) SetFont(name string, size float64) {
	e.Apply(
		snapshot.F(FieldFontName, name),
		snapshot.F(FieldFontSize, size),
	)
}

// install makes next the current state, recording the outgoing state. The
// very first install has no outgoing state and records nothing.
func (e *Editor) install(next snapshot.Snapshot) {
	if e.initialized {
		e.hist.Record(e.current)
	}
	e.current = next
	e.initialized = true
}

// Undo moves current state backward one step. Returns the restored
// snapshot, or history.ErrEmptyHistory if there is nothing to undo; on
// error the current state is untouched.
func (e *Editor) Undo() (snapshot.Snapshot, error) {
	restored, err := e.hist.Undo(e.current)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	e.current = restored
	return restored, nil
}

// Redo inverts the most recent undo. Returns the restored snapshot, or
// history.ErrEmptyFuture if there is nothing to redo; on error the current
// state is untouched.
func (e *Editor) Redo() (snapshot.Snapshot, error) {
	restored, err := e.hist.Redo(e.current)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	e.current = restored
	return restored, nil
}

// CanUndo returns true if undo is available.
func (e *Editor) CanUndo() bool {
	return e.hist.CanUndo()
}

// CanRedo returns true if redo is available.
func (e *Editor) CanRedo() bool {
	return e.hist.CanRedo()
}

// UndoCount returns the number of undo steps available.
func (e *Editor) UndoCount() int {
	return e.hist.UndoCount()
}

// RedoCount returns the number of redo steps available.
func (e *Editor) RedoCount() int {
	return e.hist.RedoCount()
}

// Reset clears the history and installs a state built from fields. With no
// fields the editor returns to its unseeded, uninitialized condition.
func (e *Editor) Reset(fields ...snapshot.Field) {
	e.hist.Clear()
	if len(fields) == 0 {
		e.current = snapshot.Snapshot{}
		e.initialized = false
		return
	}
	e.current = snapshot.New(fields...)
	e.initialized = true
}

// SetMaxHistory changes the undo depth bound, trimming oldest entries if
// the stack is over the new bound.
func (e *Editor) SetMaxHistory(n int) {
	e.hist.SetMaxEntries(n)
}

// MaxHistory returns the undo depth bound.
func (e *Editor) MaxHistory() int {
	return e.hist.MaxEntries()
}

// Phase reports which logical phase the session is in, derived from the
// history stacks.
func (e *Editor) Phase() Phase {
	switch {
	case e.hist.CanRedo():
		return PhaseBranched
	case e.hist.CanUndo():
		return PhaseEditable
	default:
		return PhaseFresh
	}
}
