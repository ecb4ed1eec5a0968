package flow

import "sync"

// State wraps a single value and notifies bindings when it changes.
// It is the notification channel between the height probe and the
// container that owns the height: the probe writes, the container
// binds. Callers may also supply their own State to observe or force
// the measured height from outside.
//
// Set is a no-op when the new value equals the current one. That
// equality check is what keeps the measure→apply feedback loop at
// depth one: re-reporting an unchanged height never triggers another
// pass.
type State[T comparable] struct {
	mu       sync.Mutex
	value    T
	bindings []*binding[T]
}

// binding is a registered callback that fires when the value changes.
type binding[T comparable] struct {
	fn     func(T)
	active bool
}

// Unbind is a handle to remove a binding. Call it to prevent future
// callback invocations.
type Unbind func()

// NewState creates a state holding the given initial value.
func NewState[T comparable](initial T) *State[T] {
	return &State[T]{value: initial}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set updates the value and notifies all active bindings. Equal values
// are ignored. Callbacks run outside the lock, in registration order.
func (s *State[T]) Set(v T) {
	s.mu.Lock()
	if s.value == v {
		s.mu.Unlock()
		return
	}
	s.value = v

	// Copy active bindings and drop unbound ones while holding the lock.
	active := make([]*binding[T], 0, len(s.bindings))
	for _, b := range s.bindings {
		if b.active {
			active = append(active, b)
		}
	}
	s.bindings = active
	s.mu.Unlock()

	for _, b := range active {
		b.fn(v)
	}
}

// Bind registers a function to be called when the value changes.
// Returns an Unbind handle to remove the binding.
func (s *State[T]) Bind(fn func(T)) Unbind {
	s.mu.Lock()
	b := &binding[T]{fn: fn, active: true}
	s.bindings = append(s.bindings, b)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		b.active = false
		s.mu.Unlock()
	}
}
