package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

var (
	ErrMissingCarrier  = errors.New("carrier id is required")
	ErrMissingRoute    = errors.New("route id is required")
	ErrMissingSchedule = errors.New("schedule id is required")
	ErrMissingVehicle  = errors.New("vehicle id is required")
	ErrNegativePrice   = errors.New("ticket price must not be negative")
)

// Offering ties a carrier, a route, a timetable entry, and a vehicle together
// with a ticket price. The 4-tuple of foreign ids is unique across all
// offerings. TicketPrice is decimal reais; storage keeps integer centavos.
type Offering struct {
	ID          string
	CarrierID   string
	RouteID     string
	ScheduleID  string
	VehicleID   string
	TicketPrice float64
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// CreateParams carries the inputs of the offering creation flow.
type CreateParams struct {
	CarrierID   string
	RouteID     string
	ScheduleID  string
	VehicleID   string
	TicketPrice float64
}

// NewOffering validates params and constructs an Offering with a fresh
// identifier. Timestamps stay zero; the storage layer assigns them.
func NewOffering(params CreateParams) (*Offering, error) {
	o := &Offering{
		ID:          uuid.NewString(),
		CarrierID:   strings.TrimSpace(params.CarrierID),
		RouteID:     strings.TrimSpace(params.RouteID),
		ScheduleID:  strings.TrimSpace(params.ScheduleID),
		VehicleID:   strings.TrimSpace(params.VehicleID),
		TicketPrice: params.TicketPrice,
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// Validate enforces the offering invariants.
func (o *Offering) Validate() error {
	if o.CarrierID == "" {
		return ErrMissingCarrier
	}
	if o.RouteID == "" {
		return ErrMissingRoute
	}
	if o.ScheduleID == "" {
		return ErrMissingSchedule
	}
	if o.VehicleID == "" {
		return ErrMissingVehicle
	}
	if o.TicketPrice < 0 {
		return ErrNegativePrice
	}
	return nil
}

// SearchFilters narrows an offering search. Zero-valued fields contribute no
// predicate; present fields combine with AND semantics.
type SearchFilters struct {
	DayOfWeek         timetable.DayOfWeek
	DepartureTime     string
	OriginCityID      string
	DestinationCityID string
}

// Validate rejects malformed filter values. Absent fields always pass.
func (f SearchFilters) Validate() error {
	if f.DayOfWeek != "" && !timetable.ValidDay(f.DayOfWeek) {
		return timetable.ErrInvalidDay
	}
	if f.DepartureTime != "" && !timetable.ValidTimeOfDay(f.DepartureTime) {
		return timetable.ErrInvalidTimeOfDay
	}
	return nil
}

// Empty reports whether no filter field is set.
func (f SearchFilters) Empty() bool {
	return f.DayOfWeek == "" && f.DepartureTime == "" &&
		f.OriginCityID == "" && f.DestinationCityID == ""
}

// SearchResultRow is the denormalized read model produced by joining an
// offering with its carrier, route, schedule, and vehicle. It has no identity
// beyond its values and is recomputed per query.
type SearchResultRow struct {
	Route             string
	Carrier           string
	TicketPrice       float64
	DistanceKm        float64
	EstimatedDuration string
	MainRoad          string
	Vehicle           string
	DayOfWeek         timetable.DayOfWeek
	DepartureTime     string
	ArrivalTime       string
}
