package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
	"github.com/rotafacil/transit-api/internal/domains/routes/ports"
)

// UnknownCityError reports that a route references an unregistered city.
type UnknownCityError struct {
	Role string
	ID   string
}

func (e *UnknownCityError) Error() string {
	return fmt.Sprintf("%s city %q is not registered", e.Role, e.ID)
}

// NotFoundError reports that no route matches the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("route %q not found", e.ID)
}

// Service orchestrates route use cases.
type Service struct {
	repo   ports.Repository
	cities ports.CityLookup
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ports.Repository, cities ports.CityLookup, opts ...Option) *Service {
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

// Create registers a route after confirming both endpoints are known cities.
// Origin is checked first; a missing origin fails before destination is looked up.
func (s *Service) Create(ctx context.Context, params domain.CreateParams) (*domain.Route, error) {
	log := s.logger.With(slog.String("component", "routes.service"), slog.String("operation", "create"))

	route, err := domain.NewRoute(params)
	if err != nil {
		return nil, err
	}

	checks := []struct {
		role string
		id   string
	}{
		{"origin", route.OriginCityID},
		{"destination", route.DestinationCityID},
	}
	for _, check := range checks {
		exists, err := s.cities.CityExists(ctx, check.id)
		if err != nil {
			return nil, fmt.Errorf("%s city lookup: %w", check.role, err)
		}
		if !exists {
			return nil, &UnknownCityError{Role: check.role, ID: check.id}
		}
	}

	stored, err := s.repo.Create(ctx, route)
	if err != nil {
		return nil, err
	}
	log.InfoContext(ctx, "route created",
		slog.String("route_id", stored.ID),
		slog.String("name", stored.Name))
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	route, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	return route, err
}

func (s *Service) List(ctx context.Context) ([]*domain.Route, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

// RouteExists satisfies the existence lookup other contexts validate against.
func (s *Service) RouteExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
