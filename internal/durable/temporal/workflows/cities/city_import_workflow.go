package cities

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
)

const (
	// CityImportWorkflowName is the public identifier for registering the workflow.
	CityImportWorkflowName = "cities.workflows.StateImport"
	// CityImportTaskQueue is the queue consumed by the worker processing city imports.
	CityImportTaskQueue = "CITY_IMPORT"

	// FetchMunicipalitiesActivityName pulls a state listing from the IBGE registry.
	FetchMunicipalitiesActivityName = "cities.activities.FetchStateMunicipalities"
	// UpsertCitiesActivityName stores a batch of municipalities.
	UpsertCitiesActivityName = "cities.activities.UpsertCities"
)

// upsertBatchSize bounds a single activity payload; IBGE states carry up to
// 853 municipalities.
const upsertBatchSize = 100

// CityImportWorkflowInput captures the payload required to import one state.
type CityImportWorkflowInput struct {
	State   string
	TraceID string
}

// UpsertBatchResult reports what one batch upsert did.
type UpsertBatchResult struct {
	Imported int
	Skipped  int
}

// CityImportWorkflow fetches every municipality of a federative unit and
// upserts them in batches. Each batch is an independently retried activity, so
// a worker crash resumes from the last committed batch.
func CityImportWorkflow(ctx workflow.Context, input CityImportWorkflowInput) (domain.ImportReport, error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("CityImportWorkflow started", withTraceID(input.TraceID, "state", input.State)...)

	report := domain.ImportReport{State: input.State}
	options := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, options)

	var municipalities []ports.Municipality
	if err := workflow.ExecuteActivity(ctx, FetchMunicipalitiesActivityName, input.State).Get(ctx, &municipalities); err != nil {
		logger.Error("CityImportWorkflow registry fetch failed", withTraceID(input.TraceID, "state", input.State, "error", err)...)
		return report, err
	}

	for start := 0; start < len(municipalities); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(municipalities) {
			end = len(municipalities)
		}
		var batch UpsertBatchResult
		if err := workflow.ExecuteActivity(ctx, UpsertCitiesActivityName, municipalities[start:end]).Get(ctx, &batch); err != nil {
			logger.Error("CityImportWorkflow batch upsert failed", withTraceID(input.TraceID, "state", input.State, "offset", start, "error", err)...)
			return report, err
		}
		report.Imported += batch.Imported
		report.Skipped += batch.Skipped
	}

	logger.Info("CityImportWorkflow completed",
		withTraceID(input.TraceID, "state", input.State, "imported", report.Imported, "skipped", report.Skipped)...)
	return report, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
