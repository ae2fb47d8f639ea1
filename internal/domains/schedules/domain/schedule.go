package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

var ErrMissingRoute = errors.New("route id is required")

// Schedule models one recurring departure slot of a route.
type Schedule struct {
	ID            string
	RouteID       string
	DayOfWeek     timetable.DayOfWeek
	DepartureTime string
	ArrivalTime   string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// CreateParams carries the caller-supplied fields for a new schedule.
type CreateParams struct {
	RouteID       string
	DayOfWeek     timetable.DayOfWeek
	DepartureTime string
	ArrivalTime   string
}

// NewSchedule validates and constructs a Schedule with a fresh identifier.
func NewSchedule(params CreateParams) (*Schedule, error) {
	schedule := &Schedule{
		ID:            uuid.NewString(),
		RouteID:       strings.TrimSpace(params.RouteID),
		DayOfWeek:     params.DayOfWeek,
		DepartureTime: strings.TrimSpace(params.DepartureTime),
		ArrivalTime:   strings.TrimSpace(params.ArrivalTime),
	}
	if err := schedule.Validate(); err != nil {
		return nil, err
	}
	return schedule, nil
}

// Validate enforces the schedule invariants.
func (s *Schedule) Validate() error {
	if s.RouteID == "" {
		return ErrMissingRoute
	}
	if !timetable.ValidDay(s.DayOfWeek) {
		return timetable.ErrInvalidDay
	}
	if !timetable.ValidTimeOfDay(s.DepartureTime) {
		return timetable.ErrInvalidTimeOfDay
	}
	if !timetable.ValidTimeOfDay(s.ArrivalTime) {
		return timetable.ErrInvalidTimeOfDay
	}
	return nil
}
