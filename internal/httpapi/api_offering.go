package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/offerings/application"
	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// OfferingAPI wires HTTP transport with the offerings bounded context.
type OfferingAPI struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewOfferingAPI creates an OfferingAPI backed by the provided service.
func NewOfferingAPI(service ports.Service) OfferingAPI {
	return OfferingAPI{service: service, responder: newResponder()}
}

// Get /api/v1/offerings
// Searches published offerings with optional filters and pagination.
func (api *OfferingAPI) Search(c *gin.Context) {
	var query httpmapper.SearchQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	rows, err := api.service.Search(c.Request.Context(), httpmapper.ToDomainFilters(query), query.Page, query.PageSize)
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainRows(rows))
}

// Post /api/v1/offerings
// Registers a transport offering after validating its references.
func (api *OfferingAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateOfferingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	offering, err := api.service.Create(c.Request.Context(), httpmapper.ToDomainParams(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainOffering(offering))
}

// offeringErrorMapper translates offering application errors to problems.
func offeringErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var refErr *application.ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return apierrors.NewNotFoundProblem(refErr.Entity, refErr.ID), true
	}
	var dupErr *application.DuplicateOfferingError
	if errors.As(err, &dupErr) {
		return apierrors.NewConflictProblem(dupErr.Error()), true
	}
	if errors.Is(err, ports.ErrDuplicate) {
		return apierrors.NewConflictProblem(err.Error()), true
	}
	switch {
	case errors.Is(err, domain.ErrMissingCarrier),
		errors.Is(err, domain.ErrMissingRoute),
		errors.Is(err, domain.ErrMissingSchedule),
		errors.Is(err, domain.ErrMissingVehicle),
		errors.Is(err, domain.ErrNegativePrice),
		errors.Is(err, timetable.ErrInvalidDay),
		errors.Is(err, timetable.ErrInvalidTimeOfDay):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	var storageErr *ports.StorageError
	if errors.As(err, &storageErr) {
		// Storage causes are logged server-side, never echoed to clients.
		return apierrors.ErrInternal, true
	}
	return apierrors.ProblemDetail{}, false
}
