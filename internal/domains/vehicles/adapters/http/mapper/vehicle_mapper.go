package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
)

// CreateVehicleRequest is the transport payload for registering a vehicle.
type CreateVehicleRequest struct {
	Name      string   `json:"nome" binding:"required"`
	Plate     string   `json:"placa"`
	SeatCount int      `json:"assentos"`
	Amenities []string `json:"comodidades"`
}

// Vehicle is the transport-level vehicle payload.
type Vehicle struct {
	ID        string     `json:"id"`
	Name      string     `json:"nome"`
	Plate     string     `json:"placa,omitempty"`
	SeatCount int        `json:"assentos,omitempty"`
	Amenities []string   `json:"comodidades"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToDomainParams converts a create request into domain creation parameters.
func ToDomainParams(req CreateVehicleRequest) domain.CreateParams {
	return domain.CreateParams{
		Name:      req.Name,
		Plate:     req.Plate,
		SeatCount: req.SeatCount,
		Amenities: req.Amenities,
	}
}

// FromDomainVehicle converts a stored vehicle into its transport form.
func FromDomainVehicle(vehicle *domain.Vehicle) Vehicle {
	if vehicle == nil {
		return Vehicle{}
	}
	return Vehicle{
		ID:        vehicle.ID,
		Name:      vehicle.Name,
		Plate:     vehicle.Plate,
		SeatCount: vehicle.SeatCount,
		Amenities: vehicle.Amenities,
		CreatedAt: vehicle.CreatedAt,
		UpdatedAt: vehicle.UpdatedAt,
	}
}

// FromDomainVehicles converts a slice of vehicles to transport form.
func FromDomainVehicles(vehicles []*domain.Vehicle) []Vehicle {
	result := make([]Vehicle, 0, len(vehicles))
	for _, vehicle := range vehicles {
		result = append(result, FromDomainVehicle(vehicle))
	}
	return result
}
