package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/routes/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/routes/application"
	"github.com/rotafacil/transit-api/internal/domains/routes/domain"
	"github.com/rotafacil/transit-api/internal/domains/routes/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
)

// RouteAPI wires HTTP transport with the routes bounded context.
type RouteAPI struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewRouteAPI creates a RouteAPI backed by the provided service.
func NewRouteAPI(service ports.Service) RouteAPI {
	return RouteAPI{service: service, responder: newResponder()}
}

// Post /api/v1/routes
// Registers a route between two registered cities.
func (api *RouteAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateRouteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	route, err := api.service.Create(c.Request.Context(), httpmapper.ToDomainParams(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainRoute(route))
}

// Get /api/v1/routes
func (api *RouteAPI) List(c *gin.Context) {
	routes, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainRoutes(routes))
}

// Get /api/v1/routes/:id
func (api *RouteAPI) GetByID(c *gin.Context) {
	route, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainRoute(route))
}

// Delete /api/v1/routes/:id
func (api *RouteAPI) Delete(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// routeErrorMapper translates route application errors to problems.
func routeErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var cityErr *application.UnknownCityError
	if errors.As(err, &cityErr) {
		return apierrors.NewNotFoundProblem("City", cityErr.ID), true
	}
	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apierrors.NewNotFoundProblem("Route", notFoundErr.ID), true
	}
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrMissingOrigin),
		errors.Is(err, domain.ErrMissingDestination),
		errors.Is(err, domain.ErrSameCity),
		errors.Is(err, domain.ErrInvalidDistance):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
