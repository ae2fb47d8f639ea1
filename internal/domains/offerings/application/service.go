package application

import (
	"context"
	"errors"
	"log/slog"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

// DefaultPageSize applies when the caller supplies no page size.
const DefaultPageSize = 25

// Service orchestrates the offerings use cases: filtered search and composite
// creation with referential-integrity and uniqueness checks.
type Service struct {
	repo      ports.Repository
	carriers  ports.CarrierLookup
	routes    ports.RouteLookup
	schedules ports.ScheduleLookup
	vehicles  ports.VehicleLookup
	events    ports.EventPublisher
	logger    *slog.Logger
}

type Option func(*Service)

// WithLogger injects a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithEvents injects an integration-event publisher.
func WithEvents(events ports.EventPublisher) Option {
	return func(s *Service) { s.events = events }
}

func NewService(
	repo ports.Repository,
	carriers ports.CarrierLookup,
	routes ports.RouteLookup,
	schedules ports.ScheduleLookup,
	vehicles ports.VehicleLookup,
	opts ...Option,
) *Service {
	s := &Service{
		repo:      repo,
		carriers:  carriers,
		routes:    routes,
		schedules: schedules,
		vehicles:  vehicles,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Search delegates to the repository and returns the mapped rows. Zero matches
// are a valid outcome logged as a warning, never an error.
func (s *Service) Search(ctx context.Context, filters domain.SearchFilters, page, pageSize int) ([]domain.SearchResultRow, error) {
	if err := filters.Validate(); err != nil {
		return nil, err
	}
	if page < 0 {
		page = 0
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s.logger.Info("searching offerings",
		slog.String("component", "offerings.service"),
		slog.String("operation", "Search"),
		slog.String("dayOfWeek", string(filters.DayOfWeek)),
		slog.String("departureTime", filters.DepartureTime),
		slog.String("originCityId", filters.OriginCityID),
		slog.String("destinationCityId", filters.DestinationCityID),
		slog.Int("page", page),
		slog.Int("pageSize", pageSize),
	)
	rows, err := s.repo.Search(ctx, filters, page, pageSize)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		s.logger.Warn("no offerings matched the given filters",
			slog.String("component", "offerings.service"),
			slog.String("operation", "Search"),
		)
		return []domain.SearchResultRow{}, nil
	}
	return rows, nil
}

// Create validates every foreign reference in order (carrier, route,
// schedule, vehicle), rejects duplicates of the 4-tuple, and persists the new
// offering. A constraint violation surfaced by the repository — the losing
// side of two concurrent creates — maps to the same duplicate outcome as the
// pre-check.
func (s *Service) Create(ctx context.Context, params domain.CreateParams) (*domain.Offering, error) {
	if err := s.validateReferences(ctx, params); err != nil {
		return nil, err
	}
	s.logger.Info("checking offering uniqueness",
		slog.String("component", "offerings.service"),
		slog.String("operation", "Create"),
		slog.String("carrierId", params.CarrierID),
		slog.String("routeId", params.RouteID),
		slog.String("scheduleId", params.ScheduleID),
		slog.String("vehicleId", params.VehicleID),
	)
	taken, err := s.repo.Exists(ctx, params.CarrierID, params.RouteID, params.ScheduleID, params.VehicleID)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, s.duplicateError(params)
	}
	offering, err := domain.NewOffering(params)
	if err != nil {
		return nil, err
	}
	stored, err := s.repo.Create(ctx, offering)
	if err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return nil, s.duplicateError(params)
		}
		return nil, err
	}
	s.publishCreated(ctx, stored)
	return stored, nil
}

// validateReferences checks each foreign id against its owning collaborator
// and fails fast on the first missing one.
func (s *Service) validateReferences(ctx context.Context, params domain.CreateParams) error {
	checks := []struct {
		entity string
		id     string
		exists func(context.Context, string) (bool, error)
	}{
		{EntityCarrier, params.CarrierID, s.carriers.CarrierExists},
		{EntityRoute, params.RouteID, s.routes.RouteExists},
		{EntitySchedule, params.ScheduleID, s.schedules.ScheduleExists},
		{EntityVehicle, params.VehicleID, s.vehicles.VehicleExists},
	}
	for _, check := range checks {
		ok, err := check.exists(ctx, check.id)
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Warn("offering references a missing entity",
				slog.String("component", "offerings.service"),
				slog.String("operation", "Create"),
				slog.String("entity", check.entity),
				slog.String("id", check.id),
			)
			return &ReferenceNotFoundError{Entity: check.entity, ID: check.id}
		}
	}
	return nil
}

func (s *Service) duplicateError(params domain.CreateParams) error {
	return &DuplicateOfferingError{
		CarrierID:  params.CarrierID,
		RouteID:    params.RouteID,
		ScheduleID: params.ScheduleID,
		VehicleID:  params.VehicleID,
	}
}

func (s *Service) publishCreated(ctx context.Context, offering *domain.Offering) {
	if s.events == nil {
		return
	}
	if err := s.events.OfferingCreated(ctx, offering); err != nil {
		s.logger.Error("failed to publish offering.created event",
			slog.String("component", "offerings.service"),
			slog.String("offeringId", offering.ID),
			slog.String("error", err.Error()),
		)
	}
}

var _ ports.Service = (*Service)(nil)
