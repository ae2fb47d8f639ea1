// Package memory provides an in-memory city repository used by tests and the
// storage-free run mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu     sync.RWMutex
	cities map[string]domain.City
	clock  func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		cities: make(map[string]domain.City),
		clock:  time.Now,
	}
}

func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Create(_ context.Context, city *domain.City) (*domain.City, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *city
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.cities[stored.ID] = stored
	clone := stored
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.cities[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := stored
	return &clone, nil
}

func (r *Repository) List(_ context.Context) ([]*domain.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cities := make([]*domain.City, 0, len(r.cities))
	for _, stored := range r.cities {
		clone := stored
		cities = append(cities, &clone)
	}
	return cities, nil
}

func (r *Repository) FindByNameAndCode(_ context.Context, name string, ibgeCode int) (*domain.City, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, stored := range r.cities {
		if stored.Name == name && stored.IBGECode == ibgeCode {
			clone := stored
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.cities[id]
	return ok, nil
}

func (r *Repository) Upsert(_ context.Context, city *domain.City) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, stored := range r.cities {
		if stored.IBGECode == city.IBGECode {
			updated := *city
			updated.ID = id
			updated.CreatedAt = stored.CreatedAt
			now := r.clock()
			updated.UpdatedAt = &now
			r.cities[id] = updated
			return false, nil
		}
	}
	stored := *city
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.cities[stored.ID] = stored
	return true, nil
}
