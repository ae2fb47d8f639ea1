package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/ports"
)

// NotFoundError reports that no vehicle matches the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("vehicle %q not found", e.ID)
}

// Service orchestrates vehicle use cases.
type Service struct {
	repo   ports.Repository
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ports.Repository, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) Create(ctx context.Context, params domain.CreateParams) (*domain.Vehicle, error) {
	vehicle, err := domain.NewVehicle(params)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "vehicle created",
		slog.String("component", "vehicles.service"),
		slog.String("vehicle_id", stored.ID),
		slog.String("name", stored.Name))
	return stored, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Vehicle, error) {
	vehicle, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	return vehicle, err
}

func (s *Service) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

// VehicleExists satisfies the existence lookup other contexts validate against.
func (s *Service) VehicleExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
