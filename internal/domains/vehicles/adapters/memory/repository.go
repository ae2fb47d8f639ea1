// Package memory provides an in-memory vehicle repository used by tests and
// the storage-free run mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/ports"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu       sync.RWMutex
	vehicles map[string]domain.Vehicle
	clock    func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		vehicles: make(map[string]domain.Vehicle),
		clock:    time.Now,
	}
}

func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Create(_ context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *vehicle
	stored.Amenities = append([]string(nil), vehicle.Amenities...)
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.vehicles[stored.ID] = stored
	return cloneVehicle(stored), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.vehicles[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneVehicle(stored), nil
}

func (r *Repository) List(_ context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	vehicles := make([]*domain.Vehicle, 0, len(r.vehicles))
	for _, stored := range r.vehicles {
		vehicles = append(vehicles, cloneVehicle(stored))
	}
	return vehicles, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.vehicles[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.vehicles, id)
	return nil
}

func (r *Repository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.vehicles[id]
	return ok, nil
}

func cloneVehicle(stored domain.Vehicle) *domain.Vehicle {
	clone := stored
	clone.Amenities = append([]string(nil), stored.Amenities...)
	return &clone
}
