package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/clients/http/ibge"
	"github.com/rotafacil/transit-api/internal/httpapi"
	platformmigrations "github.com/rotafacil/transit-api/internal/platform/migrations"
	platformobservability "github.com/rotafacil/transit-api/internal/platform/observability"
	platformpostgres "github.com/rotafacil/transit-api/internal/platform/postgres"

	citiesmemory "github.com/rotafacil/transit-api/internal/domains/cities/adapters/memory"
	citiespostgres "github.com/rotafacil/transit-api/internal/domains/cities/adapters/persistence/postgres"
	citiesworkflows "github.com/rotafacil/transit-api/internal/domains/cities/adapters/workflows"
	citiesapp "github.com/rotafacil/transit-api/internal/domains/cities/application"
	citiesports "github.com/rotafacil/transit-api/internal/domains/cities/ports"

	companiesmemory "github.com/rotafacil/transit-api/internal/domains/companies/adapters/memory"
	companiespostgres "github.com/rotafacil/transit-api/internal/domains/companies/adapters/persistence/postgres"
	companiesapp "github.com/rotafacil/transit-api/internal/domains/companies/application"
	companiesports "github.com/rotafacil/transit-api/internal/domains/companies/ports"

	routesmemory "github.com/rotafacil/transit-api/internal/domains/routes/adapters/memory"
	routespostgres "github.com/rotafacil/transit-api/internal/domains/routes/adapters/persistence/postgres"
	routesapp "github.com/rotafacil/transit-api/internal/domains/routes/application"
	routesports "github.com/rotafacil/transit-api/internal/domains/routes/ports"

	schedulesmemory "github.com/rotafacil/transit-api/internal/domains/schedules/adapters/memory"
	schedulespostgres "github.com/rotafacil/transit-api/internal/domains/schedules/adapters/persistence/postgres"
	schedulesapp "github.com/rotafacil/transit-api/internal/domains/schedules/application"
	schedulesports "github.com/rotafacil/transit-api/internal/domains/schedules/ports"

	vehiclesmemory "github.com/rotafacil/transit-api/internal/domains/vehicles/adapters/memory"
	vehiclespostgres "github.com/rotafacil/transit-api/internal/domains/vehicles/adapters/persistence/postgres"
	vehiclesapp "github.com/rotafacil/transit-api/internal/domains/vehicles/application"
	vehiclesports "github.com/rotafacil/transit-api/internal/domains/vehicles/ports"

	offeringsevents "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/events"
	offeringsmemory "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/memory"
	offeringsobs "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/observability"
	offeringspostgres "github.com/rotafacil/transit-api/internal/domains/offerings/adapters/persistence/postgres"
	offeringsapp "github.com/rotafacil/transit-api/internal/domains/offerings/application"
	offeringsports "github.com/rotafacil/transit-api/internal/domains/offerings/ports"
)

// Run boots the transit HTTP API with observability, repositories, messaging,
// and workflows wired.
func Run(ctx context.Context) error {
	const serviceName = "transit-api"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanupDB := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanupDB()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}
	repos := buildRepositories(db)

	registry, err := ibge.NewClient(cfg.IBGEBaseURL, &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		return fmt.Errorf("failed to build IBGE client: %w", err)
	}

	cityService := citiesapp.NewService(repos.cities, registry, citiesapp.WithLogger(logger))
	var importer citiesports.Importer = citiesworkflows.NewInline(cityService, logger)
	if temporalClient, err := connectTemporalClient(cfg, instruments); err != nil {
		logger.Warn("Temporal unavailable, state imports run inline", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		importer = citiesworkflows.NewTemporal(temporalClient, logger)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	companyService := companiesapp.NewService(repos.companies, cityService, companiesapp.WithLogger(logger))
	routeService := routesapp.NewService(repos.routes, cityService, routesapp.WithLogger(logger))
	scheduleService := schedulesapp.NewService(repos.schedules, routeService, schedulesapp.WithLogger(logger))
	vehicleService := vehiclesapp.NewService(repos.vehicles, vehiclesapp.WithLogger(logger))

	offeringOpts := []offeringsapp.Option{offeringsapp.WithLogger(logger)}
	if cfg.RabbitURL != "" {
		publisher, err := offeringsevents.NewPublisher(cfg.RabbitURL, offeringsevents.WithLogger(logger))
		if err != nil {
			logger.Warn("RabbitMQ unavailable, offering events disabled", slog.String("error", err.Error()))
		} else {
			defer publisher.Close()
			offeringOpts = append(offeringOpts, offeringsapp.WithEvents(publisher))
		}
	}
	offeringService := offeringsobs.New(
		offeringsapp.NewService(
			repos.offerings,
			companyService,
			routeService,
			scheduleService,
			vehicleService,
			offeringOpts...,
		),
		offeringsobs.WithLogger(logger),
		offeringsobs.WithTracer(instruments.Tracer("internal.offerings.application")),
		offeringsobs.WithMeter(instruments.Meter("internal.offerings.application")),
	)

	router := httpapi.NewRouter(httpapi.Handlers{
		Offerings: httpapi.NewOfferingAPI(offeringService),
		Companies: httpapi.NewCompanyAPI(companyService),
		Cities:    httpapi.NewCityAPI(cityService, importer),
		Routes:    httpapi.NewRouteAPI(routeService),
		Schedules: httpapi.NewScheduleAPI(scheduleService),
		Vehicles:  httpapi.NewVehicleAPI(vehicleService),
	}, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("transit API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("transit API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// repositories groups the per-context persistence adapters, postgres-backed
// when a database is available and in-memory otherwise.
type repositories struct {
	offerings offeringsports.Repository
	companies companiesports.Repository
	cities    citiesports.Repository
	routes    routesports.Repository
	schedules schedulesports.Repository
	vehicles  vehiclesports.Repository
}

func buildRepositories(db *gorm.DB) repositories {
	if db == nil {
		return repositories{
			offerings: offeringsmemory.NewRepository(),
			companies: companiesmemory.NewRepository(),
			cities:    citiesmemory.NewRepository(),
			routes:    routesmemory.NewRepository(),
			schedules: schedulesmemory.NewRepository(),
			vehicles:  vehiclesmemory.NewRepository(),
		}
	}
	return repositories{
		offerings: offeringspostgres.NewRepository(db),
		companies: companiespostgres.NewRepository(db),
		cities:    citiespostgres.NewRepository(db),
		routes:    routespostgres.NewRepository(db),
		schedules: schedulespostgres.NewRepository(db),
		vehicles:  vehiclespostgres.NewRepository(db),
	}
}

func connectTemporalClient(cfg Config, instruments *platformobservability.Instruments) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, errors.New("temporal disabled via TEMPORAL_DISABLED env")
	}
	tracerOptions := temporalotel.TracerOptions{}
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer("temporal-client")
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(effectiveLogger(instruments)),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}

func effectiveLogger(instruments *platformobservability.Instruments) *slog.Logger {
	if instruments != nil && instruments.Logger != nil {
		return instruments.Logger
	}
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}
