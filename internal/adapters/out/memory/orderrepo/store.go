// Package orderrepo keeps the order book in process memory.
//
// Store is the shared, mutex-guarded book; ChangeSet stages the writes of one unit
// of work; MemoryOrderRepository implements ports.OrderRepository on top of both.
// Orders are copied on the way in and out, so callers can only change stored state
// through Add, Update or a committed ChangeSet.
package orderrepo

import (
	"errors"
	"fmt"
	"sync"

	"cargofresh/internal/core/domain/model/order"
	"cargofresh/internal/pkg/errs"
)

// ErrOrderAlreadyExists is returned when an ID is added twice.
var ErrOrderAlreadyExists = errors.New("order already exists")

// Store holds every order, newest first, and the ID sequence.
type Store struct {
	mu      sync.RWMutex
	orders  map[order.ID]*order.Order
	newest  []order.ID
	lastSeq int
}

// NewStore creates a store preloaded with seed orders, given in listing order.
func NewStore(seed ...*order.Order) (*Store, error) {
	s := &Store{
		orders: make(map[order.ID]*order.Order),
	}

	for i := len(seed) - 1; i >= 0; i-- {
		if err := s.insert(seed[i]); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Reserve issues the next ID. IDs are never reused, even if the order is never stored.
func (s *Store) Reserve() (order.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastSeq++
	return order.NewID(s.lastSeq)
}

// Lookup returns a copy of the stored order.
func (s *Store) Lookup(id order.ID) (*order.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	return o.Clone(), true
}

// Snapshot returns copies of all orders, newest first.
func (s *Store) Snapshot() []*order.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*order.Order, 0, len(s.newest))
	for _, id := range s.newest {
		result = append(result, s.orders[id].Clone())
	}
	return result
}

// Apply writes a change set atomically: either every add and update lands or none does.
func (s *Store) Apply(changes *ChangeSet) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range changes.added {
		if _, exists := s.orders[o.ID()]; exists {
			return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, o.ID())
		}
	}
	for id := range changes.updated {
		if _, exists := s.orders[id]; !exists && !changes.adds(id) {
			return errs.NewObjectNotFoundError("order", id.String())
		}
	}

	for _, o := range changes.added {
		s.insertLocked(o.Clone())
	}
	for id, o := range changes.updated {
		s.orders[id] = o.Clone()
	}

	return nil
}

func (s *Store) insert(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.ID()]; exists {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, o.ID())
	}
	s.insertLocked(o.Clone())
	return nil
}

func (s *Store) update(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.ID()]; !exists {
		return errs.NewObjectNotFoundError("order", o.ID().String())
	}
	s.orders[o.ID()] = o.Clone()
	return nil
}

func (s *Store) insertLocked(o *order.Order) {
	s.orders[o.ID()] = o
	s.newest = append([]order.ID{o.ID()}, s.newest...)
	if seq := o.ID().Sequence(); seq > s.lastSeq {
		s.lastSeq = seq
	}
}
