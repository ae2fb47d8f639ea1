package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/vehicles/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/application"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/domain"
	"github.com/rotafacil/transit-api/internal/domains/vehicles/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
)

// VehicleAPI wires HTTP transport with the vehicles bounded context.
type VehicleAPI struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewVehicleAPI creates a VehicleAPI backed by the provided service.
func NewVehicleAPI(service ports.Service) VehicleAPI {
	return VehicleAPI{service: service, responder: newResponder()}
}

// Post /api/v1/vehicles
func (api *VehicleAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateVehicleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	vehicle, err := api.service.Create(c.Request.Context(), httpmapper.ToDomainParams(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainVehicle(vehicle))
}

// Get /api/v1/vehicles
func (api *VehicleAPI) List(c *gin.Context) {
	vehicles, err := api.service.List(c.Request.Context())
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainVehicles(vehicles))
}

// Get /api/v1/vehicles/:id
func (api *VehicleAPI) GetByID(c *gin.Context) {
	vehicle, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainVehicle(vehicle))
}

// Delete /api/v1/vehicles/:id
func (api *VehicleAPI) Delete(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// vehicleErrorMapper translates vehicle application errors to problems.
func vehicleErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apierrors.NewNotFoundProblem("Vehicle", notFoundErr.ID), true
	}
	switch {
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrInvalidName),
		errors.Is(err, domain.ErrInvalidSeatCount):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
