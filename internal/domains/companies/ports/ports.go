package ports

import (
	"context"
	"errors"

	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
)

var (
	ErrNotFound = errors.New("company not found")
	// ErrCNPJTaken reports that another company already carries this CNPJ.
	ErrCNPJTaken = errors.New("cnpj already registered")
	// ErrLegalNameTaken reports that another company already carries this legal name.
	ErrLegalNameTaken = errors.New("legal name already registered")
)

// Repository persists carriers.
type Repository interface {
	Create(ctx context.Context, company *domain.Company) (*domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, company *domain.Company) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	ExistsByID(ctx context.Context, id string) (bool, error)
	FindByCNPJ(ctx context.Context, cnpj string) (*domain.Company, error)
	FindByLegalName(ctx context.Context, legalName string) (*domain.Company, error)
}

// CityResolver finds or registers the city a carrier is headquartered in.
type CityResolver interface {
	FindOrCreateCity(ctx context.Context, name, state string, ibgeCode int) (cityID string, err error)
}

// Service exposes carrier use cases to adapters.
type Service interface {
	Create(ctx context.Context, params domain.CreateParams, cityName, state string, ibgeCode int) (*domain.Company, error)
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
	Update(ctx context.Context, id string, params domain.UpdateParams) (*domain.Company, error)
	Delete(ctx context.Context, id string) error
	CarrierExists(ctx context.Context, id string) (bool, error)
}
