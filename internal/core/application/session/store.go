package session

import (
	"sync"
	"time"

	"cargofresh/internal/core/domain/model/kernel"
)

// Store keeps the State of every visitor, keyed by session ID.
// Updates for one visitor run one at a time; different visitors do not block each other.
type Store struct {
	mu       sync.Mutex
	visitors map[kernel.UUID]*visitor
	now      func() time.Time
}

type visitor struct {
	mu       sync.Mutex
	state    State
	lastSeen time.Time
	evicted  bool
}

// NewStore creates an empty store. now defaults to time.Now.
func NewStore(now func() time.Time) *Store {
	if now == nil {
		now = time.Now
	}

	return &Store{
		visitors: make(map[kernel.UUID]*visitor),
		now:      now,
	}
}

// State returns the visitor's state, or InitialState for unknown visitors.
func (s *Store) State(id kernel.UUID) (State, error) {
	return s.Update(id, func(state State) (State, error) {
		return state, nil
	})
}

// Update replaces the visitor's state with the result of fn. If fn fails the stored
// state is kept and fn's error is returned with the stored state.
func (s *Store) Update(id kernel.UUID, fn func(State) (State, error)) (State, error) {
	if err := id.Validate(); err != nil {
		return State{}, err
	}

	for {
		v := s.visitor(id)

		v.mu.Lock()
		if v.evicted {
			v.mu.Unlock()
			continue
		}

		next, err := fn(v.state)
		if err == nil {
			v.state = next
		}
		v.lastSeen = s.now()
		state := v.state
		v.mu.Unlock()

		return state, err
	}
}

// Evict drops visitors idle for longer than idleFor and returns how many were dropped.
// Visitors with an update in progress are kept.
func (s *Store) Evict(idleFor time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idleFor)
	evicted := 0
	for id, v := range s.visitors {
		if !v.mu.TryLock() {
			continue
		}
		if v.lastSeen.Before(cutoff) {
			v.evicted = true
			delete(s.visitors, id)
			evicted++
		}
		v.mu.Unlock()
	}

	return evicted
}

// Len returns the number of tracked visitors.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.visitors)
}

func (s *Store) visitor(id kernel.UUID) *visitor {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.visitors[id]
	if !ok {
		v = &visitor{state: InitialState(), lastSeen: s.now()}
		s.visitors[id] = v
	}
	return v
}
