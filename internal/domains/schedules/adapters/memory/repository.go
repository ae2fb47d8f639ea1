// Package memory provides an in-memory schedule repository used by tests and
// the storage-free run mode.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/domains/schedules/ports"
)

var _ ports.Repository = (*Repository)(nil)

type Repository struct {
	mu        sync.RWMutex
	schedules map[string]domain.Schedule
	clock     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		schedules: make(map[string]domain.Schedule),
		clock:     time.Now,
	}
}

func (r *Repository) WithClock(clock func() time.Time) *Repository {
	r.clock = clock
	return r
}

func (r *Repository) Create(_ context.Context, schedule *domain.Schedule) (*domain.Schedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.schedules {
		if existing.RouteID == schedule.RouteID &&
			existing.DayOfWeek == schedule.DayOfWeek &&
			existing.DepartureTime == schedule.DepartureTime {
			return nil, ports.ErrSlotTaken
		}
	}
	stored := *schedule
	stored.CreatedAt = r.clock()
	stored.UpdatedAt = nil
	r.schedules[stored.ID] = stored
	clone := stored
	return &clone, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored, ok := r.schedules[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := stored
	return &clone, nil
}

func (r *Repository) ListByRoute(_ context.Context, routeID string) ([]*domain.Schedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	schedules := make([]*domain.Schedule, 0)
	for _, stored := range r.schedules {
		if stored.RouteID == routeID {
			clone := stored
			schedules = append(schedules, &clone)
		}
	}
	return schedules, nil
}

func (r *Repository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schedules[id]; !ok {
		return ports.ErrNotFound
	}
	delete(r.schedules, id)
	return nil
}

func (r *Repository) ExistsByID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.schedules[id]
	return ok, nil
}

func (r *Repository) SlotExists(_ context.Context, routeID, day, departureTime string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, stored := range r.schedules {
		if stored.RouteID == routeID &&
			string(stored.DayOfWeek) == day &&
			stored.DepartureTime == departureTime {
			return true, nil
		}
	}
	return false, nil
}
