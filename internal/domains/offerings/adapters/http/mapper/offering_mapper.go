package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// CreateOfferingRequest is the transport payload for registering an offering.
// Field names follow the public API contract.
type CreateOfferingRequest struct {
	CarrierID   string  `json:"empresaId" binding:"required"`
	RouteID     string  `json:"rotaId" binding:"required"`
	ScheduleID  string  `json:"horarioId" binding:"required"`
	VehicleID   string  `json:"veiculoId" binding:"required"`
	TicketPrice float64 `json:"precoPassagem"`
}

// Offering is the transport-level offering payload.
type Offering struct {
	ID          string     `json:"id"`
	CarrierID   string     `json:"empresaId"`
	RouteID     string     `json:"rotaId"`
	ScheduleID  string     `json:"horarioId"`
	VehicleID   string     `json:"veiculoId"`
	TicketPrice float64    `json:"precoPassagem"`
	CreatedAt   time.Time  `json:"criadoEm"`
	UpdatedAt   *time.Time `json:"atualizadoEm,omitempty"`
}

// SearchRow is one denormalized row of the public trip search.
type SearchRow struct {
	Route             string  `json:"rota"`
	Carrier           string  `json:"empresa"`
	TicketPrice       float64 `json:"preco"`
	DistanceKm        float64 `json:"distanciaKm"`
	EstimatedDuration string  `json:"duracao"`
	MainRoad          string  `json:"viaPrincipal"`
	Vehicle           string  `json:"veiculo"`
	DayOfWeek         string  `json:"diaSemana"`
	DepartureTime     string  `json:"horarioPartida"`
	ArrivalTime       string  `json:"horarioChegada"`
}

// SearchQuery carries the optional trip-search filters and pagination.
type SearchQuery struct {
	DayOfWeek         string `form:"diaSemana"`
	DepartureTime     string `form:"horaPartida"`
	OriginCityID      string `form:"idCidadeOrigem"`
	DestinationCityID string `form:"idCidadeDestino"`
	Page              int    `form:"page"`
	PageSize          int    `form:"limit"`
}

// ToDomainFilters converts the query filters to their domain counterpart.
func ToDomainFilters(q SearchQuery) domain.SearchFilters {
	return domain.SearchFilters{
		DayOfWeek:         timetable.DayOfWeek(q.DayOfWeek),
		DepartureTime:     q.DepartureTime,
		OriginCityID:      q.OriginCityID,
		DestinationCityID: q.DestinationCityID,
	}
}

// ToDomainParams converts a create request into domain creation parameters.
func ToDomainParams(req CreateOfferingRequest) domain.CreateParams {
	return domain.CreateParams{
		CarrierID:   req.CarrierID,
		RouteID:     req.RouteID,
		ScheduleID:  req.ScheduleID,
		VehicleID:   req.VehicleID,
		TicketPrice: req.TicketPrice,
	}
}

// FromDomainOffering converts a stored offering into its transport form.
func FromDomainOffering(offering *domain.Offering) Offering {
	if offering == nil {
		return Offering{}
	}
	return Offering{
		ID:          offering.ID,
		CarrierID:   offering.CarrierID,
		RouteID:     offering.RouteID,
		ScheduleID:  offering.ScheduleID,
		VehicleID:   offering.VehicleID,
		TicketPrice: offering.TicketPrice,
		CreatedAt:   offering.CreatedAt,
		UpdatedAt:   offering.UpdatedAt,
	}
}

// FromDomainRows converts search result rows to transport representation.
func FromDomainRows(rows []domain.SearchResultRow) []SearchRow {
	result := make([]SearchRow, 0, len(rows))
	for _, row := range rows {
		result = append(result, SearchRow{
			Route:             row.Route,
			Carrier:           row.Carrier,
			TicketPrice:       row.TicketPrice,
			DistanceKm:        row.DistanceKm,
			EstimatedDuration: row.EstimatedDuration,
			MainRoad:          row.MainRoad,
			Vehicle:           row.Vehicle,
			DayOfWeek:         string(row.DayOfWeek),
			DepartureTime:     row.DepartureTime,
			ArrivalTime:       row.ArrivalTime,
		})
	}
	return result
}
