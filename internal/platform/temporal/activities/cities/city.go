package cities

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	"github.com/rotafacil/transit-api/internal/domains/cities/domain"
	"github.com/rotafacil/transit-api/internal/domains/cities/ports"
	cityworkflows "github.com/rotafacil/transit-api/internal/durable/temporal/workflows/cities"
)

// Activities groups the Temporal activities of the cities bounded context.
type Activities struct {
	registry ports.Registry
	repo     ports.Repository
}

// NewActivities wires the city collaborators into the Temporal activities bundle.
func NewActivities(registry ports.Registry, repo ports.Repository) *Activities {
	return &Activities{registry: registry, repo: repo}
}

// FetchStateMunicipalities pulls the full municipality listing of a state.
func (a *Activities) FetchStateMunicipalities(ctx context.Context, state string) ([]ports.Municipality, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.registry == nil {
		logger.Error("city fetch activity not initialized", "state", state)
		return nil, errors.New("city fetch activity not initialized")
	}
	logger.Info("FetchStateMunicipalities activity started", "state", state)
	municipalities, err := a.registry.StateMunicipalities(ctx, state)
	if err != nil {
		logger.Error("FetchStateMunicipalities activity failed", "state", state, "error", err)
		return nil, err
	}
	logger.Info("FetchStateMunicipalities activity completed", "state", state, "count", len(municipalities))
	return municipalities, nil
}

// UpsertCities stores one batch of municipalities. Malformed registry entries
// are counted as skipped, matching the inline import path.
func (a *Activities) UpsertCities(ctx context.Context, batch []ports.Municipality) (cityworkflows.UpsertBatchResult, error) {
	logger := activity.GetLogger(ctx)
	var result cityworkflows.UpsertBatchResult
	if a == nil || a.repo == nil {
		logger.Error("city upsert activity not initialized")
		return result, errors.New("city upsert activity not initialized")
	}
	for _, m := range batch {
		city, err := domain.NewCity(m.Name, m.State, m.IBGECode)
		if err != nil {
			logger.Warn("skipping malformed registry entry", "name", m.Name, "ibgeCode", m.IBGECode, "error", err)
			result.Skipped++
			continue
		}
		created, err := a.repo.Upsert(ctx, city)
		if err != nil {
			logger.Error("UpsertCities activity failed", "ibgeCode", m.IBGECode, "error", err)
			return result, err
		}
		if created {
			result.Imported++
		} else {
			result.Skipped++
		}
	}
	return result, nil
}
