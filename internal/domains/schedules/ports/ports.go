package ports

import (
	"context"
	"errors"

	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
)

var (
	ErrNotFound = errors.New("schedule not found")
	// ErrSlotTaken reports that the route already has a departure at this day
	// and time.
	ErrSlotTaken = errors.New("schedule slot already exists")
)

// Repository persists schedules.
type Repository interface {
	Create(ctx context.Context, schedule *domain.Schedule) (*domain.Schedule, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ListByRoute(ctx context.Context, routeID string) ([]*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	SlotExists(ctx context.Context, routeID string, day string, departureTime string) (bool, error)
}

// RouteLookup answers whether a route is registered.
type RouteLookup interface {
	RouteExists(ctx context.Context, id string) (bool, error)
}

// Service exposes schedule use cases to adapters.
type Service interface {
	Create(ctx context.Context, params domain.CreateParams) (*domain.Schedule, error)
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	ListByRoute(ctx context.Context, routeID string) ([]*domain.Schedule, error)
	Delete(ctx context.Context, id string) error
	ScheduleExists(ctx context.Context, id string) (bool, error)
}
