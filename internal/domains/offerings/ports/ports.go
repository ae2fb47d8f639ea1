package ports

import (
	"context"
	"errors"
	"fmt"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
)

// ErrDuplicate reports that an offering with the same carrier, route,
// schedule, and vehicle is already stored. Create returns it when the
// storage-level uniqueness constraint fires, which happens when two
// concurrent creates race past the Exists pre-check.
var ErrDuplicate = errors.New("offering tuple already exists")

// StorageError wraps a data-access failure with the operation that hit it.
// The original cause is preserved for logging but not meant for API clients.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("offerings storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Repository owns all database access for the composite offering.
type Repository interface {
	// Search joins offerings with their carrier, route, schedule, and vehicle,
	// applies the present filters as ANDed equality predicates, and paginates
	// with LIMIT pageSize OFFSET page*pageSize (page is zero-based). No match
	// yields an empty slice, never an error.
	Search(ctx context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error)
	// Exists reports whether an offering with exactly this 4-tuple is stored.
	Exists(ctx context.Context, carrierID, routeID, scheduleID, vehicleID string) (bool, error)
	// Create inserts one offering inside a transaction and returns the stored
	// record including storage-assigned timestamps.
	Create(ctx context.Context, offering *domain.Offering) (*domain.Offering, error)
}

// The offerings context consumes collaborators only through these narrow
// existence capabilities, so it carries no dependency on their schemas.
type (
	CarrierLookup interface {
		CarrierExists(ctx context.Context, id string) (bool, error)
	}
	RouteLookup interface {
		RouteExists(ctx context.Context, id string) (bool, error)
	}
	ScheduleLookup interface {
		ScheduleExists(ctx context.Context, id string) (bool, error)
	}
	VehicleLookup interface {
		VehicleExists(ctx context.Context, id string) (bool, error)
	}
)

// EventPublisher emits integration events after state changes.
type EventPublisher interface {
	OfferingCreated(ctx context.Context, offering *domain.Offering) error
}

// Service is the application port exposed to transport adapters.
type Service interface {
	Search(ctx context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error)
	Create(ctx context.Context, params domain.CreateParams) (*domain.Offering, error)
}
