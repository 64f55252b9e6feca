package history

import (
	"errors"
	"testing"

	"github.com/dshills/reviso/internal/snapshot"
)

func state(content string) snapshot.Snapshot {
	return snapshot.New(snapshot.F("content", content))
}

func TestRecordAndUndo(t *testing.T) {
	h := New(100)

	h.Record(state("A"))

	got, err := h.Undo(state("B"))
	if err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got.String("content") != "A" {
		t.Errorf("undo returned %s, want content=A", got.Format())
	}
}

func TestUndoPushesCurrentOntoFuture(t *testing.T) {
	h := New(100)

	h.Record(state("A"))
	h.Undo(state("B"))

	if !h.CanRedo() {
		t.Fatal("redo should be available after undo")
	}

	got, err := h.Redo(state("A"))
	if err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if got.String("content") != "B" {
		t.Errorf("redo returned %s, want content=B", got.Format())
	}
}

func TestRedoPushesCurrentOntoPast(t *testing.T) {
	h := New(100)

	h.Record(state("A"))
	h.Undo(state("B"))
	h.Redo(state("A"))

	// Redo must itself be undoable
	got, err := h.Undo(state("B"))
	if err != nil {
		t.Fatalf("undo after redo failed: %v", err)
	}
	if got.String("content") != "A" {
		t.Errorf("undo after redo returned %s, want content=A", got.Format())
	}
}

func TestRecordClearsFuture(t *testing.T) {
	h := New(100)

	h.Record(state("A"))
	h.Undo(state("B"))

	if !h.CanRedo() {
		t.Fatal("redo should be available")
	}

	h.Record(state("A"))

	if h.CanRedo() {
		t.Error("redo should be cleared after record")
	}
	if _, err := h.Redo(state("C")); !errors.Is(err, ErrEmptyFuture) {
		t.Errorf("expected ErrEmptyFuture, got %v", err)
	}
}

func TestEmptyErrors(t *testing.T) {
	h := New(100)

	if _, err := h.Undo(state("X")); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("expected ErrEmptyHistory, got %v", err)
	}
	if _, err := h.Redo(state("X")); !errors.Is(err, ErrEmptyFuture) {
		t.Errorf("expected ErrEmptyFuture, got %v", err)
	}

	// Failed calls must not mutate the store
	if h.UndoCount() != 0 || h.RedoCount() != 0 {
		t.Error("failed undo/redo mutated the store")
	}
}

func TestEmptyUndoRepeatable(t *testing.T) {
	h := New(100)

	for i := 0; i < 3; i++ {
		if _, err := h.Undo(state("X")); !errors.Is(err, ErrEmptyHistory) {
			t.Fatalf("call %d: expected ErrEmptyHistory, got %v", i, err)
		}
	}
	if h.RedoCount() != 0 {
		t.Error("failed undos should not populate the future stack")
	}
}

func TestMaxEntriesEviction(t *testing.T) {
	h := New(2)

	h.Record(state("A"))
	h.Record(state("B"))
	h.Record(state("C")) // evicts A

	if h.UndoCount() != 2 {
		t.Fatalf("undo count = %d, want 2", h.UndoCount())
	}

	got, _ := h.Undo(state("D"))
	if got.String("content") != "C" {
		t.Errorf("first undo = %s, want C", got.Format())
	}
	got, _ = h.Undo(state("C"))
	if got.String("content") != "B" {
		t.Errorf("second undo = %s, want B", got.Format())
	}
	if _, err := h.Undo(state("B")); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("third undo: expected ErrEmptyHistory, got %v", err)
	}
}

func TestZeroCapacity(t *testing.T) {
	h := New(0)

	h.Record(state("A"))
	h.Record(state("B"))

	if h.UndoCount() != 0 {
		t.Errorf("undo count = %d, want 0", h.UndoCount())
	}
	if _, err := h.Undo(state("C")); !errors.Is(err, ErrEmptyHistory) {
		t.Errorf("expected ErrEmptyHistory, got %v", err)
	}
}

func TestNegativeCapacityUsesDefault(t *testing.T) {
	h := New(-1)

	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("max entries = %d, want %d", h.MaxEntries(), DefaultMaxEntries)
	}
}

func TestFutureBoundedByUndos(t *testing.T) {
	h := New(3)

	for _, c := range []string{"A", "B", "C", "D"} {
		h.Record(state(c))
	}

	// Only 3 past entries retained, so at most 3 undos and at most 3
	// future entries can ever accumulate.
	cur := state("E")
	for h.CanUndo() {
		prev, err := h.Undo(cur)
		if err != nil {
			t.Fatalf("Undo failed: %v", err)
		}
		cur = prev
	}

	if h.RedoCount() != 3 {
		t.Errorf("redo count = %d, want 3", h.RedoCount())
	}
}

func TestCanUndoRedo(t *testing.T) {
	h := New(100)

	if h.CanUndo() || h.CanRedo() {
		t.Error("fresh store should report nothing to undo or redo")
	}

	h.Record(state("A"))

	if !h.CanUndo() {
		t.Error("should be able to undo after record")
	}
	if h.CanRedo() {
		t.Error("should not be able to redo after record")
	}

	h.Undo(state("B"))

	if h.CanUndo() {
		t.Error("should not be able to undo after undoing only entry")
	}
	if !h.CanRedo() {
		t.Error("should be able to redo after undo")
	}
}

func TestPeek(t *testing.T) {
	h := New(100)

	if _, ok := h.PeekUndo(); ok {
		t.Error("PeekUndo should return false when empty")
	}
	if _, ok := h.PeekRedo(); ok {
		t.Error("PeekRedo should return false when empty")
	}

	h.Record(state("A"))

	snap, ok := h.PeekUndo()
	if !ok || snap.String("content") != "A" {
		t.Errorf("PeekUndo = %s, %v", snap.Format(), ok)
	}
	if h.UndoCount() != 1 {
		t.Error("PeekUndo should not modify the stack")
	}

	h.Undo(state("B"))

	snap, ok = h.PeekRedo()
	if !ok || snap.String("content") != "B" {
		t.Errorf("PeekRedo = %s, %v", snap.Format(), ok)
	}
}

func TestInfo(t *testing.T) {
	h := New(100)

	h.Record(state("A"))
	h.Record(state("B"))
	h.Undo(state("C"))

	undo := h.UndoInfo()
	if len(undo) != 1 {
		t.Fatalf("undo info entries = %d, want 1", len(undo))
	}
	if undo[0].Timestamp.IsZero() {
		t.Error("undo timestamp not set")
	}

	redo := h.RedoInfo()
	if len(redo) != 1 {
		t.Fatalf("redo info entries = %d, want 1", len(redo))
	}
	if redo[0].Timestamp.IsZero() {
		t.Error("redo timestamp not set")
	}
}

func TestClear(t *testing.T) {
	h := New(100)

	h.Record(state("A"))
	h.Record(state("B"))
	h.Undo(state("C"))
	h.Clear()

	if h.CanUndo() || h.CanRedo() {
		t.Error("store should be empty after clear")
	}

	// Idempotent
	h.Clear()
	if h.UndoCount() != 0 {
		t.Error("second clear changed the store")
	}
}

func TestSetMaxEntriesTrims(t *testing.T) {
	h := New(100)

	for _, c := range []string{"A", "B", "C", "D"} {
		h.Record(state(c))
	}

	h.SetMaxEntries(2)

	if h.UndoCount() != 2 {
		t.Fatalf("undo count = %d, want 2", h.UndoCount())
	}

	// Oldest entries were trimmed; most recent survive
	got, _ := h.Undo(state("E"))
	if got.String("content") != "D" {
		t.Errorf("undo after trim = %s, want D", got.Format())
	}
}

func TestSetMaxEntriesNegativeUsesDefault(t *testing.T) {
	h := New(5)
	h.SetMaxEntries(-1)

	if h.MaxEntries() != DefaultMaxEntries {
		t.Errorf("max entries = %d, want %d", h.MaxEntries(), DefaultMaxEntries)
	}
}
