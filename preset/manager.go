package preset

import (
	"sync"

	"github.com/google/uuid"

	"domain-swap/storage"
)

const recordKey = "presets"

// Manager owns the preset collection, kept in insertion order, and
// rewrites the persisted record on every mutation.
type Manager struct {
	mu      sync.RWMutex
	store   *storage.Store
	presets []Preset
}

// NewManager loads existing presets from store, or starts empty when
// nothing readable is persisted.
func NewManager(store *storage.Store) (*Manager, error) {
	presets, err := storage.Load[[]Preset](store, recordKey)
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, presets: presets}, nil
}

// Save creates a new preset. Names are unique by case-sensitive
// exact match; a collision returns ErrNameTaken and leaves the
// collection untouched. Callers normalize the domains first.
func (m *Manager) Save(name, oldDomain, newDomain string) (Preset, error) {
	if name == "" || oldDomain == "" || newDomain == "" {
		return Preset{}, ErrMissingField
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.presets {
		if p.Name == name {
			return Preset{}, ErrNameTaken
		}
	}

	p := Preset{
		ID:        uuid.New().String(),
		Name:      name,
		OldDomain: oldDomain,
		NewDomain: newDomain,
	}
	presets := append(append([]Preset{}, m.presets...), p)
	if err := m.store.Save(recordKey, presets); err != nil {
		return Preset{}, err
	}
	m.presets = presets
	return p, nil
}

// List returns an insertion-order snapshot of the collection.
func (m *Manager) List() []Preset {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]Preset, len(m.presets))
	copy(out, m.presets)
	return out
}

// Get returns the preset with the given id.
func (m *Manager) Get(id string) (Preset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.presets {
		if p.ID == id {
			return p, nil
		}
	}
	return Preset{}, ErrNotFound
}

// Delete removes a preset by id.
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, p := range m.presets {
		if p.ID != id {
			continue
		}
		presets := make([]Preset, 0, len(m.presets)-1)
		presets = append(presets, m.presets[:i]...)
		presets = append(presets, m.presets[i+1:]...)
		if len(presets) == 0 {
			if err := m.store.Clear(recordKey); err != nil {
				return err
			}
		} else if err := m.store.Save(recordKey, presets); err != nil {
			return err
		}
		m.presets = presets
		return nil
	}
	return ErrNotFound
}
