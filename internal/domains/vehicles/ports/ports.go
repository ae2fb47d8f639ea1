package ports

import (
	"context"
	"errors"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
)

var ErrNotFound = errors.New("vehicle not found")

// Repository persists vehicles.
type Repository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Service exposes vehicle use cases to adapters.
type Service interface {
	Create(ctx context.Context, params domain.CreateParams) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id string) (*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
	Delete(ctx context.Context, id string) error
	VehicleExists(ctx context.Context, id string) (bool, error)
}
