// Package credential holds the single API credential used for model calls.
package credential

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
)

// Backend is the durable location of the credential.
type Backend interface {
	Load() (string, error)
	Save(value string) error
	Remove() error
}

// Store resolves the credential once at startup and tracks changes made
// during the session. Safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	backend   Backend
	value     string
	listeners []func(present bool)
}

// New builds a store. The persisted value wins over fallback, which is the
// build-time default taken from the environment.
func New(backend Backend, fallback string) *Store {
	s := &Store{backend: backend}

	stored, err := backend.Load()
	if err != nil {
		log.Warn().Err(err).Msg("credential: could not read stored value")
	}
	switch {
	case strings.TrimSpace(stored) != "":
		s.value = stored
	case strings.TrimSpace(fallback) != "":
		s.value = fallback
	}
	return s
}

// Get returns the current credential and whether one is present.
func (s *Store) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.value != ""
}

// Present reports whether a credential is set.
func (s *Store) Present() bool {
	_, ok := s.Get()
	return ok
}

// Set persists a new credential. Calls already in flight keep the value
// they read when they started.
func (s *Store) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return s.Clear()
	}
	if err := s.backend.Save(value); err != nil {
		return err
	}

	s.mu.Lock()
	s.value = value
	listeners := append([]func(bool){}, s.listeners...)
	s.mu.Unlock()

	log.Debug().Msg("credential: updated")
	notify(listeners, true)
	return nil
}

// Clear removes the persisted credential. The store reports absent for the
// rest of the process even if a build-time default exists.
func (s *Store) Clear() error {
	if err := s.backend.Remove(); err != nil {
		return err
	}

	s.mu.Lock()
	s.value = ""
	listeners := append([]func(bool){}, s.listeners...)
	s.mu.Unlock()

	log.Debug().Msg("credential: cleared")
	notify(listeners, false)
	return nil
}

// Subscribe registers fn to be called after every Set or Clear.
func (s *Store) Subscribe(fn func(present bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func notify(listeners []func(bool), present bool) {
	for _, fn := range listeners {
		fn(present)
	}
}

// MemoryBackend keeps the credential in memory only.
type MemoryBackend struct {
	mu    sync.Mutex
	value string
}

func (m *MemoryBackend) Load() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.value, nil
}

func (m *MemoryBackend) Save(value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = value
	return nil
}

func (m *MemoryBackend) Remove() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = ""
	return nil
}
