package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

// InvalidCityError reports that the IBGE registry does not know this city.
type InvalidCityError struct {
	Name     string
	IBGECode int
}

func (e *InvalidCityError) Error() string {
	return fmt.Sprintf("city %q with ibge code %d is not a known municipality", e.Name, e.IBGECode)
}

// NotFoundError reports that no city matches the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("city %q not found", e.ID)
}

// Service orchestrates municipality use cases.
type Service struct {
	repo     ports.Repository
	registry ports.Registry
	logger   *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ports.Repository, registry ports.Registry, opts ...Option) *Service {
	s := &Service{
		repo:     repo,
		registry: registry,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.City, error) {
	city, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	return city, err
}

func (s *Service) List(ctx context.Context) ([]*domain.City, error) {
	return s.repo.List(ctx)
}

// FindOrCreateCity returns the stored city matching name and IBGE code,
// registering it first when absent. Unknown municipalities are rejected
// before anything is stored.
func (s *Service) FindOrCreateCity(ctx context.Context, name, state string, ibgeCode int) (string, error) {
	log := s.logger.With(slog.String("component", "cities.service"), slog.String("operation", "find_or_create"))

	existing, err := s.repo.FindByNameAndCode(ctx, name, ibgeCode)
	if err == nil {
		return existing.ID, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return "", err
	}

	valid, err := s.registry.ValidCity(ctx, name, ibgeCode)
	if err != nil {
		return "", fmt.Errorf("ibge lookup: %w", err)
	}
	if !valid {
		return "", &InvalidCityError{Name: name, IBGECode: ibgeCode}
	}

	city, err := domain.NewCity(name, state, ibgeCode)
	if err != nil {
		return "", err
	}
	stored, err := s.repo.Create(ctx, city)
	if err != nil {
		return "", err
	}
	log.InfoContext(ctx, "city registered",
		slog.String("city_id", stored.ID),
		slog.Int("ibge_code", stored.IBGECode))
	return stored.ID, nil
}

// CityExists satisfies the existence lookup the routes context validates against.
func (s *Service) CityExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

// ImportState pulls every municipality of a federative unit from the registry
// and upserts them. Already-known cities are counted as skipped.
func (s *Service) ImportState(ctx context.Context, state string) (domain.ImportReport, error) {
	state = strings.ToUpper(strings.TrimSpace(state))
	log := s.logger.With(slog.String("component", "cities.service"), slog.String("operation", "import_state"), slog.String("state", state))

	report := domain.ImportReport{State: state}
	municipalities, err := s.registry.StateMunicipalities(ctx, state)
	if err != nil {
		return report, fmt.Errorf("ibge state listing: %w", err)
	}
	for _, m := range municipalities {
		city, err := domain.NewCity(m.Name, m.State, m.IBGECode)
		if err != nil {
			log.WarnContext(ctx, "skipping malformed registry entry",
				slog.String("name", m.Name),
				slog.Int("ibge_code", m.IBGECode),
				slog.String("error", err.Error()))
			report.Skipped++
			continue
		}
		created, err := s.repo.Upsert(ctx, city)
		if err != nil {
			return report, err
		}
		if created {
			report.Imported++
		} else {
			report.Skipped++
		}
	}
	log.InfoContext(ctx, "state import finished",
		slog.Int("imported", report.Imported),
		slog.Int("skipped", report.Skipped))
	return report, nil
}

var _ ports.Service = (*Service)(nil)
