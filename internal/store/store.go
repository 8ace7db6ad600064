// Package store holds the application state container and the
// orchestrators that fill it from the remote API.
package store

import (
	"sync"

	"eatgo/internal/model"
)

// Dispatcher applies transitions and exposes the current snapshot.
type Dispatcher interface {
	Dispatch(actions ...Action)
	State() model.State
}

// Listener is notified with the snapshot produced by a dispatch.
type Listener func(model.State)

// Store is the single writer of application state.
type Store struct {
	mu        sync.Mutex
	state     model.State
	listeners map[int]Listener
	nextID    int
}

// New creates a store holding the given initial snapshot.
func New(initial model.State) *Store {
	return &Store{
		state:     initial,
		listeners: make(map[int]Listener),
	}
}

// State returns the current snapshot.
func (s *Store) State() model.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies the actions in order and notifies listeners once with
// the resulting snapshot.
func (s *Store) Dispatch(actions ...Action) {
	if len(actions) == 0 {
		return
	}

	s.mu.Lock()
	next := s.state
	for _, action := range actions {
		next = action(next)
	}
	s.state = next
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	// Listeners run outside the lock so they may read or dispatch.
	for _, l := range listeners {
		l(next)
	}
}

// Subscribe registers a listener and returns a function removing it.
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
