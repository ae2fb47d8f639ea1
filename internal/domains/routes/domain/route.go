package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("route name must have between 2 and 100 characters")
	ErrMissingOrigin      = errors.New("origin city id is required")
	ErrMissingDestination = errors.New("destination city id is required")
	ErrSameCity           = errors.New("origin and destination must differ")
	ErrInvalidDistance    = errors.New("distance must be greater than zero")
)

// Route models a link between two municipalities served by carriers.
type Route struct {
	ID                string
	Name              string
	OriginCityID      string
	DestinationCityID string
	DistanceKm        float64
	EstimatedDuration string
	MainRoad          string
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// CreateParams carries the caller-supplied fields for a new route.
type CreateParams struct {
	Name              string
	OriginCityID      string
	DestinationCityID string
	DistanceKm        float64
	EstimatedDuration string
	MainRoad          string
}

// NewRoute validates and constructs a Route with a fresh identifier.
func NewRoute(params CreateParams) (*Route, error) {
	route := &Route{
		ID:                uuid.NewString(),
		Name:              strings.TrimSpace(params.Name),
		OriginCityID:      strings.TrimSpace(params.OriginCityID),
		DestinationCityID: strings.TrimSpace(params.DestinationCityID),
		DistanceKm:        params.DistanceKm,
		EstimatedDuration: strings.TrimSpace(params.EstimatedDuration),
		MainRoad:          strings.TrimSpace(params.MainRoad),
	}
	if err := route.Validate(); err != nil {
		return nil, err
	}
	return route, nil
}

// Validate enforces the route invariants.
func (r *Route) Validate() error {
	if n := len([]rune(r.Name)); n < 2 || n > 100 {
		return ErrInvalidName
	}
	if r.OriginCityID == "" {
		return ErrMissingOrigin
	}
	if r.DestinationCityID == "" {
		return ErrMissingDestination
	}
	if r.OriginCityID == r.DestinationCityID {
		return ErrSameCity
	}
	if r.DistanceKm <= 0 {
		return ErrInvalidDistance
	}
	return nil
}
