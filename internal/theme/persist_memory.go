package theme

import (
	"context"
	"sync"
)

// MemoryPersister keeps the preference in process memory.
type MemoryPersister struct {
	mu    sync.Mutex
	value Theme
	saves int
}

// NewMemoryPersister returns a persister seeded with initial. Pass "" for an
// empty persister.
func NewMemoryPersister(initial Theme) *MemoryPersister {
	return &MemoryPersister{value: initial}
}

// Load implements Persister.
func (p *MemoryPersister) Load(ctx context.Context) (Theme, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.value == "" {
		return "", ErrNotFound
	}
	return p.value, nil
}

// Save implements Persister.
func (p *MemoryPersister) Save(ctx context.Context, t Theme) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.value = t
	p.saves++
	return nil
}

// Saves returns how many times Save was called.
func (p *MemoryPersister) Saves() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves
}
