package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/domains/schedules/ports"
)

// UnknownRouteError reports that a schedule references an unregistered route.
type UnknownRouteError struct {
	ID string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("route %q is not registered", e.ID)
}

// SlotTakenError reports a duplicate departure slot on the same route.
type SlotTakenError struct {
	RouteID       string
	DayOfWeek     string
	DepartureTime string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("route %q already departs %s at %s", e.RouteID, e.DayOfWeek, e.DepartureTime)
}

// NotFoundError reports that no schedule matches the requested identifier.
type NotFoundError struct {
	ID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("schedule %q not found", e.ID)
}

// Service orchestrates schedule use cases.
type Service struct {
	repo   ports.Repository
	routes ports.RouteLookup
	logger *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(repo ports.Repository, routes ports.RouteLookup, opts ...Option) *Service {
	s := &Service{
		repo:   repo,
		routes: routes,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Create registers a departure slot. The route must exist and the slot must be
// free; the storage constraint backs the pre-check up under concurrency.
func (s *Service) Create(ctx context.Context, params domain.CreateParams) (*domain.Schedule, error) {
	log := s.logger.With(slog.String("component", "schedules.service"), slog.String("operation", "create"))

	schedule, err := domain.NewSchedule(params)
	if err != nil {
		return nil, err
	}

	exists, err := s.routes.RouteExists(ctx, schedule.RouteID)
	if err != nil {
		return nil, fmt.Errorf("route lookup: %w", err)
	}
	if !exists {
		return nil, &UnknownRouteError{ID: schedule.RouteID}
	}

	taken, err := s.repo.SlotExists(ctx, schedule.RouteID, string(schedule.DayOfWeek), schedule.DepartureTime)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, s.slotTaken(schedule)
	}

	stored, err := s.repo.Create(ctx, schedule)
	if err != nil {
		if errors.Is(err, ports.ErrSlotTaken) {
			return nil, s.slotTaken(schedule)
		}
		return nil, err
	}
	log.InfoContext(ctx, "schedule created",
		slog.String("schedule_id", stored.ID),
		slog.String("route_id", stored.RouteID),
		slog.String("day_of_week", string(stored.DayOfWeek)),
		slog.String("departure_time", stored.DepartureTime))
	return stored, nil
}

func (s *Service) slotTaken(schedule *domain.Schedule) error {
	return &SlotTakenError{
		RouteID:       schedule.RouteID,
		DayOfWeek:     string(schedule.DayOfWeek),
		DepartureTime: schedule.DepartureTime,
	}
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	schedule, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	return schedule, err
}

func (s *Service) ListByRoute(ctx context.Context, routeID string) ([]*domain.Schedule, error) {
	return s.repo.ListByRoute(ctx, routeID)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, ports.ErrNotFound) {
		return &NotFoundError{ID: id}
	}
	return err
}

// ScheduleExists satisfies the existence lookup other contexts validate against.
func (s *Service) ScheduleExists(ctx context.Context, id string) (bool, error) {
	return s.repo.ExistsByID(ctx, id)
}

var _ ports.Service = (*Service)(nil)
