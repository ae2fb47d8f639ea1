package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
)

// CreateRouteRequest is the transport payload for registering a route.
type CreateRouteRequest struct {
	Name              string  `json:"nome" binding:"required"`
	OriginCityID      string  `json:"idCidadeOrigem" binding:"required"`
	DestinationCityID string  `json:"idCidadeDestino" binding:"required"`
	DistanceKm        float64 `json:"distanciaKm" binding:"required"`
	EstimatedDuration string  `json:"duracaoEstimada"`
	MainRoad          string  `json:"viaPrincipal"`
}

// Route is the transport-level route payload.
type Route struct {
	ID                string     `json:"id"`
	Name              string     `json:"nome"`
	OriginCityID      string     `json:"idCidadeOrigem"`
	DestinationCityID string     `json:"idCidadeDestino"`
	DistanceKm        float64    `json:"distanciaKm"`
	EstimatedDuration string     `json:"duracaoEstimada,omitempty"`
	MainRoad          string     `json:"viaPrincipal,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         *time.Time `json:"updated_at,omitempty"`
}

// ToDomainParams converts a create request into domain creation parameters.
func ToDomainParams(req CreateRouteRequest) domain.CreateParams {
	return domain.CreateParams{
		Name:              req.Name,
		OriginCityID:      req.OriginCityID,
		DestinationCityID: req.DestinationCityID,
		DistanceKm:        req.DistanceKm,
		EstimatedDuration: req.EstimatedDuration,
		MainRoad:          req.MainRoad,
	}
}

// FromDomainRoute converts a stored route into its transport form.
func FromDomainRoute(route *domain.Route) Route {
	if route == nil {
		return Route{}
	}
	return Route{
		ID:                route.ID,
		Name:              route.Name,
		OriginCityID:      route.OriginCityID,
		DestinationCityID: route.DestinationCityID,
		DistanceKm:        route.DistanceKm,
		EstimatedDuration: route.EstimatedDuration,
		MainRoad:          route.MainRoad,
		CreatedAt:         route.CreatedAt,
		UpdatedAt:         route.UpdatedAt,
	}
}

// FromDomainRoutes converts a slice of routes to transport representation.
func FromDomainRoutes(routes []*domain.Route) []Route {
	result := make([]Route, 0, len(routes))
	for _, route := range routes {
		result = append(result, FromDomainRoute(route))
	}
	return result
}
