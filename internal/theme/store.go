package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Persister saves and restores a theme preference.
type Persister interface {
	// Load returns ErrNotFound when no preference has been saved yet.
	Load(ctx context.Context) (Theme, error)
	Save(ctx context.Context, t Theme) error
}

// Store holds the active theme for one client and writes every change
// through to its Persister.
type Store struct {
	// writeMu serialises Set and Toggle so persisted writes land in order.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	current   Theme
	fallback  Theme
	persister Persister
}

// NewStore creates a store that starts on fallback until Init is called.
func NewStore(p Persister, fallback Theme) *Store {
	if !fallback.Valid() {
		fallback = Default
	}
	return &Store{
		current:   fallback,
		fallback:  fallback,
		persister: p,
	}
}

// Init reads the persisted preference. A missing preference is not an error.
// Any other read failure is returned, but the store keeps working on the
// fallback theme.
func (s *Store) Init(ctx context.Context) error {
	t, err := s.persister.Load(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.current = t
		return nil
	case errors.Is(err, ErrNotFound):
		s.current = s.fallback
		return nil
	default:
		s.current = s.fallback
		return fmt.Errorf("load theme preference: %w", err)
	}
}

// Current returns the active theme.
func (s *Store) Current() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Resolve returns the active theme with System mapped to light or dark.
func (s *Store) Resolve(prefersDark bool) Theme {
	return s.Current().Resolve(prefersDark)
}

// Set switches to t and persists it immediately. The in-memory value is
// updated even when persisting fails.
func (s *Store) Set(ctx context.Context, t Theme) error {
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, string(t))
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.setLocked(ctx, t)
}

// Toggle flips between light and dark. A System preference is resolved
// against the client's scheme before flipping.
func (s *Store) Toggle(ctx context.Context, prefersDark bool) (Theme, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next := s.Current().Opposite(prefersDark)
	return next, s.setLocked(ctx, next)
}

// setLocked requires writeMu.
func (s *Store) setLocked(ctx context.Context, t Theme) error {
	s.mu.Lock()
	s.current = t
	s.mu.Unlock()

	if err := s.persister.Save(ctx, t); err != nil {
		return fmt.Errorf("save theme preference: %w", err)
	}
	return nil
}
