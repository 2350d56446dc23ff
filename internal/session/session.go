// Package session hosts per-client selection state. Every session owns one
// selection.Store and serialises all access to it through Do.
package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/android-4dsoft/yettel/internal/domain"
	"github.com/android-4dsoft/yettel/internal/region"
	"github.com/android-4dsoft/yettel/internal/selection"
)

// Session is one client's selection plus the vehicle it is buying for.
type Session struct {
	ID        uuid.UUID
	CreatedAt time.Time

	mu      sync.Mutex
	store   *selection.Store
	vehicle *domain.Vehicle
}

// Do runs fn with exclusive access to the session's selection store.
// fn must not block on I/O.
func (s *Session) Do(fn func(*selection.Store)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.store)
}

// Snapshot returns a copy of the current selection.
func (s *Session) Snapshot() domain.Selection {
	var sel domain.Selection
	s.Do(func(st *selection.Store) { sel = st.Snapshot() })
	return sel
}

// Vehicle returns the cached vehicle, if one has been fetched.
func (s *Session) Vehicle() (domain.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vehicle == nil {
		return domain.Vehicle{}, false
	}
	return *s.vehicle, true
}

// SetVehicle caches v unless a vehicle is already cached, and returns the
// cached one. Two racing fetches therefore settle on the first result.
func (s *Session) SetVehicle(v domain.Vehicle) domain.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.vehicle == nil {
		s.vehicle = &v
	}
	return *s.vehicle
}

// Registry holds the live sessions.
type Registry struct {
	graph *region.Graph
	now   func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
}

// NewRegistry returns an empty registry whose sessions validate against g.
func NewRegistry(g *region.Graph) *Registry {
	return &Registry{
		graph:    g,
		now:      time.Now,
		sessions: make(map[uuid.UUID]*Session),
	}
}

// Create starts a new session with an empty selection.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:        uuid.New(),
		CreatedAt: r.now().UTC(),
		store:     selection.NewStore(r.graph),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given ID.
func (r *Registry) Get(id uuid.UUID) (*Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session.Registry.Get: %w", domain.ErrNotFound)
	}
	return s, nil
}

// Delete removes a session. Deleting an unknown ID returns ErrNotFound.
func (r *Registry) Delete(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[id]; !ok {
		return fmt.Errorf("session.Registry.Delete: %w", domain.ErrNotFound)
	}
	delete(r.sessions, id)
	return nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
