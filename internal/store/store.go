package store

import (
	"sync"

	"github.com/google/uuid"
)

// Store is an observable holder of a value. Every replacement is pushed to
// all subscribers synchronously, in subscription order.
type Store[T any] struct {
	mu        sync.RWMutex
	value     T
	version   uint64
	listeners []listener[T]
}

type listener[T any] struct {
	id uuid.UUID
	fn func(T)
}

// New creates a store holding initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value. Reference types such as slices are shared
// with the store and must be treated as read-only; replace them with Set.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies every subscriber.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	s.version++
	listeners := s.snapshot()
	s.mu.Unlock()

	notify(listeners, value)
}

// Update replaces the value with fn applied to the current one. fn runs
// outside the lock and is retried if another write lands in the meantime,
// so it may read the store but should not have side effects.
func (s *Store[T]) Update(fn func(T) T) {
	for {
		s.mu.RLock()
		current, version := s.value, s.version
		s.mu.RUnlock()

		next := fn(current)

		s.mu.Lock()
		if s.version != version {
			s.mu.Unlock()
			continue
		}
		s.value = next
		s.version++
		listeners := s.snapshot()
		s.mu.Unlock()

		notify(listeners, next)
		return
	}
}

// Subscribe registers fn and calls it straight away with the current value.
// The returned function removes the subscription; calling it more than once is a no-op.
func (s *Store[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := uuid.New()

	s.mu.Lock()
	s.listeners = append(s.listeners, listener[T]{id: id, fn: fn})
	value := s.value
	s.mu.Unlock()

	fn(value)

	var once sync.Once
	return func() {
		once.Do(func() {
			s.remove(id)
		})
	}
}

// Subscribers returns the number of registered listeners.
func (s *Store[T]) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listeners)
}

func (s *Store[T]) remove(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, l := range s.listeners {
		if l.id == id {
			s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
			return
		}
	}
}

// snapshot must be called with mu held. Listeners run outside the lock so
// they are free to read or write the store.
func (s *Store[T]) snapshot() []listener[T] {
	out := make([]listener[T], len(s.listeners))
	copy(out, s.listeners)
	return out
}

func notify[T any](listeners []listener[T], value T) {
	for _, l := range listeners {
		l.fn(value)
	}
}
