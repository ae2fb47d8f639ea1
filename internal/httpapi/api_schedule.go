package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	httpmapper "github.com/rotafacil/transit-api/internal/domains/schedules/adapters/http/mapper"
	"github.com/rotafacil/transit-api/internal/domains/schedules/application"
	"github.com/rotafacil/transit-api/internal/domains/schedules/domain"
	"github.com/rotafacil/transit-api/internal/domains/schedules/ports"
	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// ScheduleAPI wires HTTP transport with the schedules bounded context.
type ScheduleAPI struct {
	service   ports.Service
	responder *apierrors.ChainedResponder
}

// NewScheduleAPI creates a ScheduleAPI backed by the provided service.
func NewScheduleAPI(service ports.Service) ScheduleAPI {
	return ScheduleAPI{service: service, responder: newResponder()}
}

// Post /api/v1/schedules
// Registers a timetable entry for a route.
func (api *ScheduleAPI) Create(c *gin.Context) {
	var payload httpmapper.CreateScheduleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		api.responder.BadRequest(c, err.Error())
		return
	}
	schedule, err := api.service.Create(c.Request.Context(), httpmapper.ToDomainParams(payload))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, httpmapper.FromDomainSchedule(schedule))
}

// Get /api/v1/schedules/:id
func (api *ScheduleAPI) GetByID(c *gin.Context) {
	schedule, err := api.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainSchedule(schedule))
}

// Get /api/v1/routes/:id/schedules
// Lists the timetable of a route.
func (api *ScheduleAPI) ListByRoute(c *gin.Context) {
	schedules, err := api.service.ListByRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, httpmapper.FromDomainSchedules(schedules))
}

// Delete /api/v1/schedules/:id
func (api *ScheduleAPI) Delete(c *gin.Context) {
	if err := api.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		api.responder.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// scheduleErrorMapper translates schedule application errors to problems.
func scheduleErrorMapper(err error) (apierrors.ProblemDetail, bool) {
	var routeErr *application.UnknownRouteError
	if errors.As(err, &routeErr) {
		return apierrors.NewNotFoundProblem("Route", routeErr.ID), true
	}
	var slotErr *application.SlotTakenError
	if errors.As(err, &slotErr) {
		return apierrors.NewConflictProblem(slotErr.Error()), true
	}
	var notFoundErr *application.NotFoundError
	if errors.As(err, &notFoundErr) {
		return apierrors.NewNotFoundProblem("Schedule", notFoundErr.ID), true
	}
	switch {
	case errors.Is(err, ports.ErrSlotTaken):
		return apierrors.NewConflictProblem(err.Error()), true
	case errors.Is(err, ports.ErrNotFound):
		return apierrors.ErrNotFound.WithDetail(err.Error()), true
	case errors.Is(err, domain.ErrMissingRoute),
		errors.Is(err, timetable.ErrInvalidDay),
		errors.Is(err, timetable.ErrInvalidTimeOfDay):
		return apierrors.ErrValidation.WithDetail(err.Error()), true
	}
	return apierrors.ProblemDetail{}, false
}
