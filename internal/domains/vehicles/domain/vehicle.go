package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName      = errors.New("vehicle name must have between 2 and 100 characters")
	ErrInvalidSeatCount = errors.New("seat count must not be negative")
)

// Vehicle models a bus or van assigned to offerings.
type Vehicle struct {
	ID        string
	Name      string
	Plate     string
	SeatCount int
	Amenities []string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// CreateParams carries the caller-supplied fields for a new vehicle.
type CreateParams struct {
	Name      string
	Plate     string
	SeatCount int
	Amenities []string
}

// NewVehicle validates and constructs a Vehicle with a fresh identifier.
func NewVehicle(params CreateParams) (*Vehicle, error) {
	amenities := make([]string, 0, len(params.Amenities))
	for _, amenity := range params.Amenities {
		if trimmed := strings.TrimSpace(amenity); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}
	vehicle := &Vehicle{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(params.Name),
		Plate:     strings.ToUpper(strings.TrimSpace(params.Plate)),
		SeatCount: params.SeatCount,
		Amenities: amenities,
	}
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Validate enforces the vehicle invariants.
func (v *Vehicle) Validate() error {
	if n := len([]rune(v.Name)); n < 2 || n > 100 {
		return ErrInvalidName
	}
	if v.SeatCount < 0 {
		return ErrInvalidSeatCount
	}
	return nil
}
