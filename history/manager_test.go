package history_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"domain-swap/history"
	"domain-swap/storage"
)

func newManager(t *testing.T) (*history.Manager, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := storage.NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	m, err := history.NewManager(st)
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return m, dir
}

func TestAddAndListNewestFirst(t *testing.T) {
	m, _ := newManager(t)

	first, err := m.Add("https://a.com/1", "a.com", "b.com")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	second, err := m.Add("https://a.com/2", "a.com", "c.com")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := m.List()
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].ID != second.ID || got[1].ID != first.ID {
		t.Fatalf("expected newest first, got %v", got)
	}
	if got[0].Timestamp == 0 {
		t.Fatalf("expected a timestamp on %v", got[0])
	}
}

func TestCapDropsOldest(t *testing.T) {
	m, _ := newManager(t)

	var oldest history.Entry
	for i := 0; i < history.MaxEntries+5; i++ {
		e, err := m.Add(fmt.Sprintf("https://a.com/%d", i), "a.com", "b.com")
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if i == 0 {
			oldest = e
		}
	}

	got := m.List()
	if len(got) != history.MaxEntries {
		t.Fatalf("expected %d entries, got %d", history.MaxEntries, len(got))
	}
	if _, err := m.Get(oldest.ID); err != history.ErrNotFound {
		t.Fatalf("oldest entry should have been dropped, got %v", err)
	}
	// Newest survives at the front.
	if got[0].InputURLs != fmt.Sprintf("https://a.com/%d", history.MaxEntries+4) {
		t.Fatalf("unexpected newest entry: %+v", got[0])
	}
}

func TestDeleteEntry(t *testing.T) {
	m, _ := newManager(t)
	keep, _ := m.Add("https://a.com/1", "a.com", "b.com")
	drop, _ := m.Add("https://a.com/2", "a.com", "b.com")

	if err := m.Delete(drop.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := m.Get(drop.ID); err != history.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.Get(keep.ID); err != nil {
		t.Fatalf("remaining entry should survive: %v", err)
	}
}

func TestDeleteUnknownID(t *testing.T) {
	m, _ := newManager(t)
	if err := m.Delete("nope"); err != history.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClearRemovesRecord(t *testing.T) {
	m, dir := newManager(t)
	m.Add("https://a.com/1", "a.com", "b.com")

	if err := m.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(m.List()) != 0 {
		t.Fatalf("expected empty history")
	}
	if _, err := os.Stat(filepath.Join(dir, "history.json")); !os.IsNotExist(err) {
		t.Fatalf("persisted record should be removed")
	}
}

func TestDeletingLastEntryRemovesRecord(t *testing.T) {
	m, dir := newManager(t)
	e, _ := m.Add("https://a.com/1", "a.com", "b.com")

	if err := m.Delete(e.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "history.json")); !os.IsNotExist(err) {
		t.Fatalf("empty collection should not leave a record behind")
	}
}

func TestReloadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, _ := storage.NewStore(dir)
	m, _ := history.NewManager(st)
	e, err := m.Add("https://a.com/1", "a.com", "b.com")
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	st2, _ := storage.NewStore(dir)
	m2, err := history.NewManager(st2)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := m2.List()
	if len(got) != 1 || got[0] != e {
		t.Fatalf("round trip mismatch: %v", got)
	}
}

func TestCorruptRecordStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "history.json"), []byte("garbage"), 0644); err != nil {
		t.Fatal(err)
	}

	st, _ := storage.NewStore(dir)
	m, err := history.NewManager(st)
	if err != nil {
		t.Fatalf("NewManager should heal corruption, got %v", err)
	}
	if len(m.List()) != 0 {
		t.Fatalf("expected empty history after corruption")
	}
}
