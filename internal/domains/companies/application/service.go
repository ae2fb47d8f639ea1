package application

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
	"github.com/rotafacil/transit-api/internal/domains/companies/ports"
)

// ErrEmptyUpdate signals an update request that carries no fields.
var ErrEmptyUpdate = errors.New("company update carries no fields")

// Service orchestrates carrier use cases.
type Service struct {
	repo   ports.Repository
	cities ports.CityResolver
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ports.Repository, cities ports.CityResolver, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		cities: cities,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create registers a new carrier. The headquarters city is resolved first, so
// an unknown city fails the whole request before any uniqueness checks run.
func (s *Service) Create(ctx context.Context, params domain.CreateParams, cityName, state string, ibgeCode int) (*domain.Company, error) {
	log := s.logger.With(slog.String("component", "companies.service"), slog.String("operation", "create"))
	log.InfoContext(ctx, "creating company", slog.String("trade_name", params.TradeName))

	cityID, err := s.cities.FindOrCreateCity(ctx, cityName, state, ibgeCode)
	if err != nil {
		return nil, err
	}
	params.CityID = cityID

	if existing, err := s.repo.FindByCNPJ(ctx, params.CNPJ); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, &ConflictError{Field: "cnpj", Value: params.CNPJ}
	}
	if existing, err := s.repo.FindByLegalName(ctx, params.LegalName); err != nil && !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, &ConflictError{Field: "legal name", Value: params.LegalName}
	}

	company, err := domain.NewCompany(params)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, company)
	if err != nil {
		if errors.Is(err, ports.ErrCNPJTaken) {
			return nil, &ConflictError{Field: "cnpj", Value: params.CNPJ}
		}
		return nil, err
	}
	log.InfoContext(ctx, "company created", slog.String("company_id", stored.ID))
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	company, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	return company, err
}

func (s *Service) List(ctx context.Context) ([]*domain.Company, error) {
	return s.repo.List(ctx)
}

// Update applies a partial update. An empty payload is rejected outright.
func (s *Service) Update(ctx context.Context, id string, params domain.UpdateParams) (*domain.Company, error) {
	if params.Empty() {
		return nil, ErrEmptyUpdate
	}
	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, err
	}
	if err := company.Apply(params); err != nil {
		return nil, err
	}
	updated, err := s.repo.Update(ctx, company)
	if err != nil {
		if errors.Is(err, ports.ErrCNPJTaken) {
			return nil, &ConflictError{Field: "cnpj", Value: company.CNPJ}
		}
		return nil, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

// CarrierExists satisfies the existence lookup other contexts validate against.
func (s *Service) CarrierExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
