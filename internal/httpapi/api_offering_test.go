package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/offerings/adapters/memory"
	"github.com/rotafacil/transit-api/internal/domains/offerings/application"
	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/shared/errors"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

// allowAllLookups satisfies every collaborator lookup except ids listed in
// missing.
type allowAllLookups struct {
	missing map[string]bool
}

func (s allowAllLookups) CarrierExists(_ context.Context, id string) (bool, error) {
	return !s.missing[id], nil
}

func (s allowAllLookups) RouteExists(_ context.Context, id string) (bool, error) {
	return !s.missing[id], nil
}

func (s allowAllLookups) ScheduleExists(_ context.Context, id string) (bool, error) {
	return !s.missing[id], nil
}

func (s allowAllLookups) VehicleExists(_ context.Context, id string) (bool, error) {
	return !s.missing[id], nil
}

func newOfferingRouter(t *testing.T, repo *memory.Repository, lookups allowAllLookups) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	service := application.NewService(repo, lookups, lookups, lookups, lookups)
	return NewRouter(Handlers{Offerings: NewOfferingAPI(service)})
}

func TestOfferingAPI_SearchReturnsRows(t *testing.T) {
	repo := memory.NewRepository()
	repo.SeedSearchRows(memory.SeededRow{
		Row: domain.SearchResultRow{
			Route:         "BH x Oliveira",
			Carrier:       "Viação Serrana",
			TicketPrice:   49.9,
			DayOfWeek:     timetable.Monday,
			DepartureTime: "07:00:00",
			ArrivalTime:   "09:30:00",
		},
		OriginCityID:      "city-bh",
		DestinationCityID: "city-ol",
	})
	router := newOfferingRouter(t, repo, allowAllLookups{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offerings?diaSemana=Segunda-feira", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "BH x Oliveira", rows[0]["rota"])
	assert.Equal(t, "Viação Serrana", rows[0]["empresa"])
	assert.InDelta(t, 49.9, rows[0]["preco"], 0.0001)
}

func TestOfferingAPI_SearchRejectsInvalidDay(t *testing.T) {
	router := newOfferingRouter(t, memory.NewRepository(), allowAllLookups{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/offerings?diaSemana=Feriado", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, errors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
}

func TestOfferingAPI_CreateAndDuplicate(t *testing.T) {
	router := newOfferingRouter(t, memory.NewRepository(), allowAllLookups{})
	body := `{"empresaId":"carrier-1","rotaId":"route-1","horarioId":"schedule-1","veiculoId":"vehicle-1","precoPassagem":49.9}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offerings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var created map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created["id"])
	assert.InDelta(t, 49.9, created["precoPassagem"], 0.0001)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/offerings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
}

func TestOfferingAPI_CreateMissingReferenceIs404(t *testing.T) {
	router := newOfferingRouter(t, memory.NewRepository(), allowAllLookups{missing: map[string]bool{"route-9": true}})
	body := `{"empresaId":"carrier-1","rotaId":"route-9","horarioId":"schedule-1","veiculoId":"vehicle-1","precoPassagem":10}`

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offerings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var problem map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Resource Not Found", problem["title"])
}

func TestOfferingAPI_CreateRejectsMissingFields(t *testing.T) {
	router := newOfferingRouter(t, memory.NewRepository(), allowAllLookups{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/offerings", strings.NewReader(`{"empresaId":"carrier-1"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
