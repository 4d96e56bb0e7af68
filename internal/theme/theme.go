package theme

import (
	"context"
	"fmt"
	"log"
	"sync"
)

type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"

	// Key is the one persisted preference key.
	Key = "theme"
)

func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case Light, Dark:
		return Mode(s), true
	}
	return "", false
}

func (m Mode) Toggled() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

// Store persists the preference. Load reports ok=false when nothing valid is
// stored.
type Store interface {
	Load(ctx context.Context) (mode Mode, ok bool, err error)
	Save(ctx context.Context, mode Mode) error
}

// State is the process-wide theme slot. Init it once at startup; after that
// Toggle and Set are the only writers.
type State struct {
	mu         sync.RWMutex
	mode       Mode
	store      Store
	systemDark bool
}

func NewState(store Store, systemDark bool) *State {
	return &State{store: store, systemDark: systemDark, mode: Light}
}

// Init loads the saved preference, falling back to the system preference.
// A store failure is logged and treated as "nothing saved".
func (s *State) Init(ctx context.Context) Mode {
	mode, ok, err := s.store.Load(ctx)
	if err != nil {
		log.Printf("theme: load preference: %v", err)
	}
	if err != nil || !ok {
		mode = Light
		if s.systemDark {
			mode = Dark
		}
	}

	s.mu.Lock()
	s.mode = mode
	s.mu.Unlock()
	return mode
}

func (s *State) Mode() Mode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode
}

func (s *State) Toggle(ctx context.Context) (Mode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, s.mode.Toggled())
}

func (s *State) Set(ctx context.Context, mode Mode) (Mode, error) {
	if _, ok := ParseMode(string(mode)); !ok {
		return s.Mode(), fmt.Errorf("unknown theme %q", mode)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.apply(ctx, mode)
}

// apply is called with s.mu held. The in-memory mode changes only once the
// preference is saved.
func (s *State) apply(ctx context.Context, mode Mode) (Mode, error) {
	if err := s.store.Save(ctx, mode); err != nil {
		return s.mode, fmt.Errorf("save theme: %w", err)
	}
	s.mode = mode
	return mode, nil
}
