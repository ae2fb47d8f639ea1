package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/cities/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/cities/application"
	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
)

// CityAPI wires HTTP transport with the cities bounded context. State-wide
// imports are delegated to the configured importer, which may run the work
// inline or through a durable workflow.
type CityAPI struct {
	service   ports.Service
	importer  ports.Importer
	responder *apierrors.ChainedResponder
}

// NewCityAPI creates a CityAPI backed by the provided service and importer.
func NewCityAPI(service ports.Service, importer ports.Importer) CityAPI {
	return CityAPI{service: service, importer: importer, responder: newResponder()}
}

// Post /api/v1/cities
// Registers a municipality after validating it against the IBGE registry.
func (api *CityAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateCityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	id, err := api.service.FindOrCreateCity(c.Request.Context(), payload.Name, payload.State, payload.IBGECode)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	city, err := api.service.GetByID(c.Request.Context(), id)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainCity(city))
}

// Get /api/v1/cities
func (api *CityAPI) List(c *gin.Context) {
	cities, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainCities(cities))
}

// Get /api/v1/cities/:id
func (api *CityAPI) GetByID(c *gin.Context) {
	city, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainCity(city))
}

// Post /api/v1/cities/import
// Imports every municipality of a state from the IBGE registry.
func (api *CityAPI) ImportState(c *gin.Context) {
	var payload httpmapper.ImportStateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	report, err := api.importer.ImportState(c.Request.Context(), payload.State)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainReport(report))
}

// cityErrorMapper translates city application errors to problems.
func cityErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var invalidErr *application.InvalidCityError
	if errors.As(err, &invalidErr) {
		return apierrors.ErrValidation.WithDetail(invalidErr.Error()), true
	}
	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apierrors.NewNotFoundProblem("City", notFoundErr.ID), true
	}
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidState),
		errors.Is(err, domain.ErrInvalidIBGECode):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
