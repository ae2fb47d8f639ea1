// Package httpapi assembles the gin router for the transit API. Each bounded
// context contributes an API struct and an error mapper; errors are rendered
// as RFC 7807 problem details through a shared chained responder.
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "github.com/rotafacil/transit-api/internal/shared/errors"
)

// Handlers groups the per-context API handlers mounted by NewRouter.
type Handlers struct {
	Offerings OfferingAPI
	Companies CompanyAPI
	Cities    CityAPI
	Routes    RouteAPI
	Schedules ScheduleAPI
	Vehicles  VehicleAPI
}

// NewRouter builds the gin engine with all routes mounted under /api/v1.
func NewRouter(handlers Handlers, middleware ...gin.HandlerFunc) *gin.Engine {
	router := gin.Default()
	for _, m := range middleware {
		router.Use(m)
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	offerings := v1.Group("/offerings")
	offerings.GET("", handlers.Offerings.Search)
	offerings.POST("", handlers.Offerings.Create)

	companies := v1.Group("/companies")
	companies.POST("", handlers.Companies.Create)
	companies.GET("", handlers.Companies.List)
	companies.GET("/:id", handlers.Companies.GetByID)
	companies.PATCH("/:id", handlers.Companies.Update)
	companies.DELETE("/:id", handlers.Companies.Delete)

	cities := v1.Group("/cities")
	cities.GET("", handlers.Cities.List)
	cities.GET("/:id", handlers.Cities.GetByID)
	cities.POST("", handlers.Cities.Create)
	cities.POST("/import", handlers.Cities.ImportState)

	routes := v1.Group("/routes")
	routes.POST("", handlers.Routes.Create)
	routes.GET("", handlers.Routes.List)
	routes.GET("/:id", handlers.Routes.GetByID)
	routes.DELETE("/:id", handlers.Routes.Delete)

	schedules := v1.Group("/schedules")
	schedules.POST("", handlers.Schedules.Create)
	schedules.GET("/:id", handlers.Schedules.GetByID)
	schedules.DELETE("/:id", handlers.Schedules.Delete)
	routes.GET("/:id/schedules", handlers.Schedules.ListByRoute)

	vehicles := v1.Group("/vehicles")
	vehicles.POST("", handlers.Vehicles.Create)
	vehicles.GET("", handlers.Vehicles.List)
	vehicles.GET("/:id", handlers.Vehicles.GetByID)
	vehicles.DELETE("/:id", handlers.Vehicles.Delete)

	return router
}

// newResponder chains every context's error mapper in front of the default
// problem-details handling.
func newResponder() *apierrors.ChainedResponder {
	return apierrors.NewChainedResponder(
		"",
		offeringErrorMapper,
		companyErrorMapper,
		cityErrorMapper,
		routeErrorMapper,
		scheduleErrorMapper,
		vehicleErrorMapper,
	)
}
