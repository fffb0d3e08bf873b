package registry

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value    T
	userID   string
	lastUsed time.Time
}

// Registry keeps one value per browser session and indexes them by user so
// that backend events about a user can reach every session of that user.
type Registry[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	newFn   func() T
	onEvict func(T)
	entries map[string]*entry[T]
	byUser  map[string]map[string]struct{}
}

type Option[T any] func(*Registry[T])

// WithEvict is called for every value dropped by Drop or Sweep, outside the
// registry lock.
func WithEvict[T any](fn func(T)) Option[T] {
	return func(r *Registry[T]) { r.onEvict = fn }
}

func WithClock[T any](now func() time.Time) Option[T] {
	return func(r *Registry[T]) { r.now = now }
}

func New[T any](ttl time.Duration, newFn func() T, opts ...Option[T]) *Registry[T] {
	r := &Registry[T]{
		ttl:     ttl,
		now:     time.Now,
		newFn:   newFn,
		entries: make(map[string]*entry[T]),
		byUser:  make(map[string]map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Get returns the value for sessionID, creating it on first use.
func (r *Registry[T]) Get(sessionID, userID string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[sessionID]
	if !ok {
		e = &entry[T]{value: r.newFn()}
		r.entries[sessionID] = e
	}
	if e.userID != userID {
		r.unindex(sessionID, e.userID)
		e.userID = userID
		r.index(sessionID, userID)
	}
	e.lastUsed = r.now()
	return e.value
}

// Peek returns the value without creating or touching it.
func (r *Registry[T]) Peek(sessionID string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[sessionID]
	if !ok {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (r *Registry[T]) Drop(sessionID string) bool {
	r.mu.Lock()
	e, ok := r.entries[sessionID]
	if ok {
		delete(r.entries, sessionID)
		r.unindex(sessionID, e.userID)
	}
	r.mu.Unlock()

	if ok && r.onEvict != nil {
		r.onEvict(e.value)
	}
	return ok
}

// ForUser returns the values of every live session of userID.
func (r *Registry[T]) ForUser(userID string) []T {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.byUser[userID]
	out := make([]T, 0, len(ids))
	for id := range ids {
		if e, ok := r.entries[id]; ok {
			out = append(out, e.value)
		}
	}
	return out
}

// Sweep drops entries idle for longer than the ttl.
func (r *Registry[T]) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)

	r.mu.Lock()
	var evicted []T
	for id, e := range r.entries {
		if e.lastUsed.Before(cutoff) {
			delete(r.entries, id)
			r.unindex(id, e.userID)
			evicted = append(evicted, e.value)
		}
	}
	r.mu.Unlock()

	if r.onEvict != nil {
		for _, v := range evicted {
			r.onEvict(v)
		}
	}
	return len(evicted)
}

func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry[T]) index(sessionID, userID string) {
	if userID == "" {
		return
	}
	set, ok := r.byUser[userID]
	if !ok {
		set = make(map[string]struct{})
		r.byUser[userID] = set
	}
	set[sessionID] = struct{}{}
}

func (r *Registry[T]) unindex(sessionID, userID string) {
	if userID == "" {
		return
	}
	set := r.byUser[userID]
	delete(set, sessionID)
	if len(set) == 0 {
		delete(r.byUser, userID)
	}
}
