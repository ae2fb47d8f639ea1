package ports

import (
	"context"
	"errors"

	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
)

var ErrNotFound = errors.New("route not found")

// Repository persists routes.
type Repository interface {
	Create(ctx context.Context, route *domain.Route) (*domain.Route, error)
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context) ([]*domain.Route, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// CityLookup answers whether a municipality is registered.
type CityLookup interface {
	CityExists(ctx context.Context, id string) (bool, error)
}

// Service exposes route use cases to adapters.
type Service interface {
	Create(ctx context.Context, params domain.CreateParams) (*domain.Route, error)
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context) ([]*domain.Route, error)
	Delete(ctx context.Context, id string) error
	RouteExists(ctx context.Context, id string) (bool, error)
}
