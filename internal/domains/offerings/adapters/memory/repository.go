package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

var _ ports.Repository = (*Repository)(nil)

// SeededRow pairs a denormalized search row with the route endpoints it came
// from, so city filters can be applied without a relational join.
type SeededRow struct {
	Row               domain.SearchResultRow
	OriginCityID      string
	DestinationCityID string
}

// Repository is an in-memory offering persistence adapter. It enforces the
// same tuple-uniqueness constraint the Postgres schema carries.
type Repository struct {
	mu        sync.RWMutex
	offerings map[string]*domain.Offering
	rows      []SeededRow
	clock     func() time.Time
}

func NewRepository() *Repository {
	return &Repository{
		offerings: map[string]*domain.Offering{},
		clock:     time.Now,
	}
}

// WithClock overrides the timestamp source.
func (r *Repository) WithClock(clock func() time.Time) {
	if clock != nil {
		r.clock = clock
	}
}

// SeedSearchRows loads denormalized rows for Search to serve.
func (r *Repository) SeedSearchRows(rows ...SeededRow) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rows...)
}

func (r *Repository) Search(_ context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]domain.SearchResultRow, 0, len(r.rows))
	for _, seeded := range r.rows {
		if filters.DayOfWeek != "" && seeded.Row.DayOfWeek != filters.DayOfWeek {
			continue
		}
		if filters.DepartureTime != "" && seeded.Row.DepartureTime != filters.DepartureTime {
			continue
		}
		if filters.OriginCityID != "" && seeded.OriginCityID != filters.OriginCityID {
			continue
		}
		if filters.DestinationCityID != "" && seeded.DestinationCityID != filters.DestinationCityID {
			continue
		}
		matched = append(matched, seeded.Row)
	}
	offset := page * pageSize
	if offset >= len(matched) {
		return []domain.SearchResultRow{}, nil
	}
	end := offset + pageSize
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], nil
}

func (r *Repository) Exists(_ context.Context, carrierID, routeID, scheduleID, vehicleID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lookupTuple(carrierID, routeID, scheduleID, vehicleID) != nil, nil
}

func (r *Repository) Create(_ context.Context, offering *domain.Offering) (*domain.Offering, error) {
	if offering == nil {
		return nil, errors.New("offering is nil")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookupTuple(offering.CarrierID, offering.RouteID, offering.ScheduleID, offering.VehicleID) != nil {
		return nil, ports.ErrDuplicate
	}
	clone := *offering
	clone.CreatedAt = r.clock()
	clone.UpdatedAt = nil
	r.offerings[clone.ID] = &clone
	result := clone
	return &result, nil
}

func (r *Repository) lookupTuple(carrierID, routeID, scheduleID, vehicleID string) *domain.Offering {
	for _, offering := range r.offerings {
		if offering.CarrierID == carrierID &&
			offering.RouteID == routeID &&
			offering.ScheduleID == scheduleID &&
			offering.VehicleID == vehicleID {
			return offering
		}
	}
	return nil
}
