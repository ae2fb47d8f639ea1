package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
)

// CreateCityRequest is the transport payload for registering a municipality.
// The IBGE code is validated against the Localidades registry before storage.
type CreateCityRequest struct {
	Name     string `json:"nome" binding:"required"`
	State    string `json:"uf" binding:"required"`
	IBGECode int    `json:"codigo_ibge" binding:"required"`
}

// ImportStateRequest asks for a bulk import of every municipality of a state.
type ImportStateRequest struct {
	State string `json:"uf" binding:"required"`
}

// City is the transport-level municipality payload.
type City struct {
	ID        string     `json:"id"`
	Name      string     `json:"nome"`
	State     string     `json:"uf"`
	IBGECode  int        `json:"codigo_ibge"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ImportReport summarizes a state import run.
type ImportReport struct {
	State    string `json:"uf"`
	Imported int    `json:"importadas"`
	Skipped  int    `json:"ignoradas"`
}

// FromDomainCity converts a stored municipality into its transport form.
func FromDomainCity(city *domain.City) City {
	if city == nil {
		return City{}
	}
	return City{
		ID:        city.ID,
		Name:      city.Name,
		State:     city.State,
		IBGECode:  city.IBGECode,
		CreatedAt: city.CreatedAt,
		UpdatedAt: city.UpdatedAt,
	}
}

// FromDomainCities converts a slice of municipalities to transport form.
func FromDomainCities(cities []*domain.City) []City {
	result := make([]City, 0, len(cities))
	for _, city := range cities {
		result = append(result, FromDomainCity(city))
	}
	return result
}

// FromDomainReport converts an import report to transport form.
func FromDomainReport(report domain.ImportReport) ImportReport {
	return ImportReport{
		State:    report.State,
		Imported: report.Imported,
		Skipped:  report.Skipped,
	}
}
