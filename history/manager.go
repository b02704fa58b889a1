package history

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"domain-swap/storage"
)

// MaxEntries caps the collection; entries past the cap are dropped
// oldest-first.
const MaxEntries = 20

const recordKey = "history"

// Manager owns the in-memory history collection, newest first, and
// rewrites the persisted record on every mutation.
type Manager struct {
	mu      sync.RWMutex
	store   *storage.Store
	entries []Entry
}

// NewManager loads existing history from store, or starts empty when
// nothing readable is persisted.
func NewManager(store *storage.Store) (*Manager, error) {
	entries, err := storage.Load[[]Entry](store, recordKey)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, entries: entries}, nil
}

// Add records a replace run as the newest entry, truncating to
// MaxEntries, and returns the created entry.
func (m *Manager) Add(inputURLs, oldDomain, newDomain string) (Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := Entry{
		ID:        uuid.New().String(),
		Timestamp: time.Now().UnixMilli(),
		InputURLs: inputURLs,
		OldDomain: oldDomain,
		NewDomain: newDomain,
	}
	entries := append([]Entry{e}, m.entries...)
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}
	if err := m.flush(entries); err != nil {
		return Entry{}, err
	}
	m.entries = entries
	return e, nil
}

// List returns a newest-first snapshot of the collection.
func (m *Manager) List() []Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}

// Get returns the entry with the given id.
func (m *Manager) Get(id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

// Delete removes a single entry by id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, e := range m.entries {
		if e.ID != id {
			continue
		}
		entries := make([]Entry, 0, len(m.entries)-1)
		entries = append(entries, m.entries[:i]...)
		entries = append(entries, m.entries[i+1:]...)
		if err := m.flush(entries); err != nil {
			return err
		}
		m.entries = entries
		return nil
	}
	return ErrNotFound
}

// Clear empties the collection and removes the persisted record.
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.store.Clear(recordKey); err != nil {
		return err
	}
	m.entries = nil
	return nil
}

// flush rewrites the whole record; an empty collection removes it
// instead of persisting an empty marker.
func (m *Manager) flush(entries []Entry) error {
	if len(entries) == 0 {
		return m.store.Clear(recordKey)
	}
	return m.store.Save(recordKey, entries)
}
