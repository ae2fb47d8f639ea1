package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/companies/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/companies/application"
	"github.com/rotafacil/transit-api/internal/domains/companies/domain"
	"github.com/rotafacil/transit-api/internal/domains/companies/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
)

// CompanyAPI wires HTTP transport with the companies bounded context.
type CompanyAPI struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewCompanyAPI creates a CompanyAPI backed by the provided service.
func NewCompanyAPI(service ports.Service) CompanyAPI {
	return CompanyAPI{service: service, responder: newResponder()}
}

// Post /api/v1/companies
// Registers a carrier, resolving its headquarters city against IBGE.
func (api *CompanyAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	company, err := api.service.Create(
		c.Request.Context(),
		httpmapper.ToDomainParams(payload),
		payload.CityName,
		payload.State,
		payload.IBGECode,
	)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainCompany(company))
}

// Get /api/v1/companies
func (api *CompanyAPI) List(c *gin.Context) {
	companies, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainCompanies(companies))
}

// Get /api/v1/companies/:id
func (api *CompanyAPI) GetByID(c *gin.Context) {
	company, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainCompany(company))
}

// Patch /api/v1/companies/:id
// Applies a partial carrier update.
func (api *CompanyAPI) Update(c *gin.Context) {
	var payload httpmapper.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	company, err := api.service.Update(c.Request.Context(), c.Param("id"), httpmapper.ToUpdateParams(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainCompany(company))
}

// Delete /api/v1/companies/:id
func (api *CompanyAPI) Delete(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// companyErrorMapper translates company application errors to problems.
func companyErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apierrors.NewNotFoundProblem("Company", notFoundErr.ID), true
	}
	var conflictErr *application.ConflictError
	if errors.As(err, &conflictErr) {
		return apierrors.NewConflictProblem(conflictErr.Error()), true
	}
	switch {
	case errors.Is(err, ports.ErrCNPJTaken), errors.Is(err, ports.ErrLegalNameTaken):
		return apierrors.NewConflictProblem(err.Error()), true
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrInvalidLegalName),
		errors.Is(err, domain.ErrInvalidTradeName),
		errors.Is(err, domain.ErrInvalidCNPJ),
		errors.Is(err, application.ErrEmptyUpdate):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
