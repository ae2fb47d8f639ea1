package ports

import (
	"context"
	"errors"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
)

var ErrNotFound = errors.New("city not found")

// Repository persists municipalities.
type Repository interface {
	Create(ctx context.Context, city *domain.City) (*domain.City, error)
	GetByID(ctx context.Context, id string) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
	FindByNameAndCode(ctx context.Context, name string, ibgeCode int) (*domain.City, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// Upsert stores the city keyed by IBGE code, reporting whether a new row
	// was created.
	Upsert(ctx context.Context, city *domain.City) (created bool, err error)
}

// Municipality is one entry of the external registry.
type Municipality struct {
	IBGECode int
	Name     string
	State    string
}

// Registry answers municipality questions from the IBGE catalog.
type Registry interface {
	ValidCity(ctx context.Context, name string, ibgeCode int) (bool, error)
	StateMunicipalities(ctx context.Context, state string) ([]Municipality, error)
}

// Importer runs a state-wide municipality import, durably or inline.
type Importer interface {
	ImportState(ctx context.Context, state string) (domain.ImportReport, error)
}

// Service exposes municipality use cases to adapters.
type Service interface {
	GetByID(ctx context.Context, id string) (*domain.City, error)
	List(ctx context.Context) ([]*domain.City, error)
	FindOrCreateCity(ctx context.Context, name, state string, ibgeCode int) (string, error)
	CityExists(ctx context.Context, id string) (bool, error)
	ImportState(ctx context.Context, state string) (domain.ImportReport, error)
}
