package toast

import (
	"sync"
)

// store holds the active notification set in insertion order. Membership
// changes only through append and remove-by-id; records are never mutated
// in place. The modeled UI runtime is single-threaded, but Go callers may
// add and dismiss from arbitrary goroutines, so access is mutex-guarded.
type store struct {
	mu     sync.RWMutex
	active []Notification
}

func newStore() *store {
	return &store{}
}

// append adds a record to the end of the active set.
func (s *store) append(n Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = append(s.active, n)
}

// remove filters the record with the given id out of the active set.
// Removing an absent id is a no-op; the return value reports whether the
// set changed.
func (s *store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, n := range s.active {
		if n.ID == id {
			s.active = append(s.active[:i:i], s.active[i+1:]...)
			return true
		}
	}
	return false
}

// snapshot returns a copy of the active set in insertion order.
func (s *store) snapshot() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Notification, len(s.active))
	copy(out, s.active)
	return out
}

// len reports the current size of the active set.
func (s *store) len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.active)
}
