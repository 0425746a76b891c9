package history

import (
	"fmt"
	"testing"
)

func TestStoreCommitUndoRedo(t *testing.T) {
	store := NewStore("v0", 10)
	store.Commit("v1")
	store.Commit("v2")

	if got := store.Current(); got != "v2" {
		t.Fatalf("current = %q, want v2", got)
	}

	text, ok := store.Undo()
	if !ok || text != "v1" {
		t.Fatalf("undo = %q,%v", text, ok)
	}
	text, ok = store.Undo()
	if !ok || text != "v0" {
		t.Fatalf("undo = %q,%v", text, ok)
	}
	if _, ok := store.Undo(); ok {
		t.Fatalf("undo past the oldest entry should report false")
	}

	text, ok = store.Redo()
	if !ok || text != "v1" {
		t.Fatalf("redo = %q,%v", text, ok)
	}
	text, ok = store.Redo()
	if !ok || text != "v2" {
		t.Fatalf("redo = %q,%v", text, ok)
	}
	if _, ok := store.Redo(); ok {
		t.Fatalf("redo past the newest entry should report false")
	}
}

func TestStoreNUndosReturnToSeed(t *testing.T) {
	store := NewStore("seed", 50)
	const n = 20
	for i := 0; i < n; i++ {
		store.Commit(fmt.Sprintf("v%d", i))
	}

	for i := 0; i < n; i++ {
		if _, ok := store.Undo(); !ok {
			t.Fatalf("undo %d failed", i)
		}
	}
	if got := store.Current(); got != "seed" {
		t.Fatalf("after %d undos current = %q, want seed", n, got)
	}
}

func TestStoreCommitDiscardsRedoBranch(t *testing.T) {
	store := NewStore("v0", 10)
	store.Commit("v1")
	store.Commit("v2")
	store.Undo()

	store.Commit("fork")

	if store.CanRedo() {
		t.Fatalf("redo branch should be discarded after a commit")
	}
	if got := store.Current(); got != "fork" {
		t.Fatalf("current = %q, want fork", got)
	}
	text, _ := store.Undo()
	if text != "v1" {
		t.Fatalf("undo after fork = %q, want v1", text)
	}
}

func TestStoreDuplicateCommitIgnored(t *testing.T) {
	store := NewStore("v0", 10)
	store.Commit("v1")
	store.Commit("v1")

	if got := store.Len(); got != 2 {
		t.Fatalf("duplicate commit should not grow history, len = %d", got)
	}
}

func TestStoreCapDropsOldest(t *testing.T) {
	store := NewStore("v0", 3)
	store.Commit("v1")
	store.Commit("v2")
	store.Commit("v3")

	if got := store.Len(); got != 3 {
		t.Fatalf("len = %d, want cap 3", got)
	}
	if got := store.Current(); got != "v3" {
		t.Fatalf("current = %q, want v3", got)
	}

	// Two undos reach the oldest retained entry; v0 is gone.
	store.Undo()
	text, ok := store.Undo()
	if !ok || text != "v1" {
		t.Fatalf("undo = %q,%v, want v1", text, ok)
	}
	if _, ok := store.Undo(); ok {
		t.Fatalf("v0 should have been evicted")
	}
}

func TestStoreZeroCapUsesDefault(t *testing.T) {
	store := NewStore("seed", 0)
	for i := 0; i < DefaultMaxEntries+10; i++ {
		store.Commit(fmt.Sprintf("v%d", i))
	}
	if got := store.Len(); got != DefaultMaxEntries {
		t.Fatalf("len = %d, want %d", got, DefaultMaxEntries)
	}
}

func TestStoreCanUndoCanRedo(t *testing.T) {
	store := NewStore("v0", 10)
	if store.CanUndo() || store.CanRedo() {
		t.Fatalf("fresh store should have no undo or redo")
	}
	store.Commit("v1")
	if !store.CanUndo() || store.CanRedo() {
		t.Fatalf("after commit: CanUndo=%v CanRedo=%v", store.CanUndo(), store.CanRedo())
	}
	store.Undo()
	if store.CanUndo() || !store.CanRedo() {
		t.Fatalf("after undo: CanUndo=%v CanRedo=%v", store.CanUndo(), store.CanRedo())
	}
}
