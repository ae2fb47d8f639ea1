// Package workflows provides the two city-import orchestrators: a durable one
// backed by Temporal and an inline fallback that runs the import in-process.
package workflows

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"go.temporal.io/sdk/client"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
	cityworkflows "github.com/rotafacil/transit-api/internal/durable/temporal/workflows/cities"
)

// Inline runs the import synchronously against the city service. It is the
// fallback when no Temporal cluster is configured.
type Inline struct {
	service ports.Service
	logger  *slog.Logger
}

func NewInline(service ports.Service, logger *slog.Logger) *Inline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Inline{service: service, logger: logger}
}

func (o *Inline) ImportState(ctx context.Context, state string) (domain.ImportReport, error) {
	if o == nil || o.service == nil {
		return domain.ImportReport{}, errors.New("inline city importer not configured")
	}
	o.logger.InfoContext(ctx, "running city import inline", slog.String("state", state))
	return o.service.ImportState(ctx, state)
}

var _ ports.Importer = (*Inline)(nil)

// Temporal starts the durable import workflow and waits for its result.
type Temporal struct {
	client client.Client
	logger *slog.Logger
}

func NewTemporal(temporalClient client.Client, logger *slog.Logger) *Temporal {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Temporal{client: temporalClient, logger: logger}
}

func (o *Temporal) ImportState(ctx context.Context, state string) (domain.ImportReport, error) {
	var report domain.ImportReport
	if o == nil || o.client == nil {
		return report, errors.New("temporal city importer not configured")
	}
	options := client.StartWorkflowOptions{
		ID:        fmt.Sprintf("city-import-%s", state),
		TaskQueue: cityworkflows.CityImportTaskQueue,
	}
	input := cityworkflows.CityImportWorkflowInput{State: state}
	run, err := o.client.ExecuteWorkflow(ctx, options, cityworkflows.CityImportWorkflowName, input)
	if err != nil {
		return report, fmt.Errorf("start city import workflow: %w", err)
	}
	o.logger.InfoContext(ctx, "city import workflow started",
		slog.String("state", state),
		slog.String("workflow_id", run.GetID()),
		slog.String("run_id", run.GetRunID()))
	if err := run.Get(ctx, &report); err != nil {
		return report, fmt.Errorf("city import workflow: %w", err)
	}
	return report, nil
}

var _ ports.Importer = (*Temporal)(nil)
