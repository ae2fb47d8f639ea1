package mapper

import (
	"time"

	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
)

// CreateCompanyRequest is the transport payload for registering a carrier.
// The headquarters city travels alongside and is resolved against the IBGE
// registry before the carrier itself is stored.
type CreateCompanyRequest struct {
	LegalName string `json:"razao_social" binding:"required"`
	TradeName string `json:"nome_fantasia" binding:"required"`
	CNPJ      string `json:"cnpj" binding:"required"`
	CityName  string `json:"cidade" binding:"required"`
	State     string `json:"uf" binding:"required"`
	IBGECode  int    `json:"codigo_cidade" binding:"required"`
}

// UpdateCompanyRequest carries a partial carrier update.
type UpdateCompanyRequest struct {
	LegalName *string `json:"razao_social"`
	TradeName *string `json:"nome_fantasia"`
	CNPJ      *string `json:"cnpj"`
	CityID    *string `json:"id_cidade"`
}

// Company is the transport-level carrier payload.
type Company struct {
	ID        string     `json:"id"`
	LegalName string     `json:"razao_social"`
	TradeName string     `json:"nome_fantasia"`
	CNPJ      string     `json:"cnpj"`
	CityID    string     `json:"id_cidade,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// ToDomainParams extracts the carrier fields of a create request.
func ToDomainParams(req CreateCompanyRequest) domain.CreateParams {
	return domain.CreateParams{
		LegalName: req.LegalName,
		TradeName: req.TradeName,
		CNPJ:      req.CNPJ,
	}
}

// ToUpdateParams converts a partial update request to its domain counterpart.
func ToUpdateParams(req UpdateCompanyRequest) domain.UpdateParams {
	return domain.UpdateParams{
		LegalName: req.LegalName,
		TradeName: req.TradeName,
		CNPJ:      req.CNPJ,
		CityID:    req.CityID,
	}
}

// FromDomainCompany converts a stored carrier into its transport form.
func FromDomainCompany(company *domain.Company) Company {
	if company == nil {
		return Company{}
	}
	return Company{
		ID:        company.ID,
		LegalName: company.LegalName,
		TradeName: company.TradeName,
		CNPJ:      company.CNPJ,
		CityID:    company.CityID,
		CreatedAt: company.CreatedAt,
		UpdatedAt: company.UpdatedAt,
	}
}

// FromDomainCompanies converts a slice of carriers to transport representation.
func FromDomainCompanies(companies []*domain.Company) []Company {
	result := make([]Company, 0, len(companies))
	for _, company := range companies {
		result = append(result, FromDomainCompany(company))
	}
	return result
}
