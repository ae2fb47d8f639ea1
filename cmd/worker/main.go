package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/rotafacil/transit-api/internal/clients/http/ibge"
	citiesmemory "github.com/rotafacil/transit-api/internal/domains/cities/adapters/memory"
	citiespostgres "github.com/rotafacil/transit-api/internal/domains/cities/adapters/persistence/postgres"
	citiesports "github.com/rotafacil/transit-api/internal/domains/cities/ports"
	cityworkflows "github.com/rotafacil/transit-api/internal/durable/temporal/workflows/cities"
	platformmigrations "github.com/rotafacil/transit-api/internal/platform/migrations"
	platformobservability "github.com/rotafacil/transit-api/internal/platform/observability"
	platformpostgres "github.com/rotafacil/transit-api/internal/platform/postgres"
	cityactivities "github.com/rotafacil/transit-api/internal/platform/temporal/activities/cities"
)

func main() {
	ctx := context.Background()
	const serviceName = "transit-worker"
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cityRepo, cleanupRepo := buildCityRepository(ctx, logger)
	defer cleanupRepo()
	registry, err := ibge.NewClient(envOrDefault("IBGE_BASE_URL", ibge.DefaultBaseURL), &http.Client{Timeout: 10 * time.Second})
	if err != nil {
		logger.Error("failed to build IBGE client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	activities := cityactivities.NewActivities(registry, cityRepo)

	tracerOptions := temporalotel.TracerOptions{Tracer: instruments.Tracer("temporal-worker")}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		logger.Error("failed to configure Temporal tracing interceptor", slog.String("error", err.Error()))
		os.Exit(1)
	}
	clientOptions := client.Options{
		HostPort:  envOrDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		Namespace: envOrDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	clientOptions.Interceptors = append(clientOptions.Interceptors, tracingInterceptor)
	temporalClient, err := client.Dial(clientOptions)
	if err != nil {
		logger.Error("failed to create Temporal client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, cityworkflows.CityImportTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(cityworkflows.CityImportWorkflow, workflow.RegisterOptions{Name: cityworkflows.CityImportWorkflowName})
	w.RegisterActivityWithOptions(activities.FetchStateMunicipalities, activity.RegisterOptions{Name: cityworkflows.FetchMunicipalitiesActivityName})
	w.RegisterActivityWithOptions(activities.UpsertCities, activity.RegisterOptions{Name: cityworkflows.UpsertCitiesActivityName})

	logger.Info("worker listening", slog.String("taskQueue", cityworkflows.CityImportTaskQueue), slog.String("namespace", clientOptions.Namespace))
	if err := w.Run(worker.InterruptCh()); err != nil {
		logger.Error("Temporal worker exited with error", slog.String("error", err.Error()))
		return
	}
	logger.Info("Temporal worker stopped")
}

func buildCityRepository(ctx context.Context, logger *slog.Logger) (citiesports.Repository, func()) {
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	if db == nil {
		return citiesmemory.NewRepository(), cleanup
	}
	if err := platformmigrations.Run(db); err != nil {
		logger.Warn("worker failed to run migrations, falling back to memory", slog.String("error", err.Error()))
		cleanup()
		return citiesmemory.NewRepository(), func() {}
	}
	logger.Info("worker city repository configured with postgres")
	return citiespostgres.NewRepository(db), cleanup
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
