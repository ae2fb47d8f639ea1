// Package memory provides an in-memory route repository used by tests and the
// storage-free run mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
	"github.com/rotafacil/transit-api/internal/domains/routes/ports"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu     sync.RWMutex
	routes map[string]domain.Route
	clock  func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		routes: make(map[string]domain.Route),
		clock:  time.Now,
	}
}

func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Create(_ context.Context, route *domain.Route) (*domain.Route, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *route
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.routes[stored.ID] = stored
	clone := stored
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.routes[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := stored
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Route, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	routes := make([]*domain.Route, 0, len(r.routes))
	for _, stored := range r.routes {
		clone := stored
		routes = append(routes, &clone)
	}
	return routes, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.routes[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.routes, id)
	return nil
}

func (r *Repository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.routes[id]
	return ok, nil
}
