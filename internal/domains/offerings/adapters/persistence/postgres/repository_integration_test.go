//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/domains/offerings/ports"
	"github.com/rotafacil/transit-api/internal/platform/migrations"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

func setupOfferingsPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("transit_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

// seedCollaborators inserts the carrier, route, schedule, and vehicle rows the
// offerings joins resolve against.
func seedCollaborators(t *testing.T, db *gorm.DB) {
	t.Helper()
	stmts := []struct {
		sql  string
		args []any
	}{
		{`INSERT INTO cities (id, name, state, ibge_code) VALUES (?, ?, ?, ?)`,
			[]any{"city-bh", "Belo Horizonte", "MG", "3106200"}},
		{`INSERT INTO cities (id, name, state, ibge_code) VALUES (?, ?, ?, ?)`,
			[]any{"city-ol", "Oliveira", "MG", "3145604"}},
		{`INSERT INTO companies (id, legal_name, trade_name, cnpj) VALUES (?, ?, ?, ?)`,
			[]any{"carrier-1", "Expresso Oliveira LTDA", "Expresso Oliveira", "12345678000190"}},
		{`INSERT INTO routes (id, name, origin_city_id, destination_city_id, distance_km, estimated_duration, main_road) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			[]any{"route-1", "BH x Oliveira", "city-bh", "city-ol", 150.5, "02:30", "BR-381"}},
		{`INSERT INTO schedules (id, route_id, day_of_week, departure_time, arrival_time) VALUES (?, ?, ?, ?, ?)`,
			[]any{"schedule-1", "route-1", "Segunda-feira", "07:00:00", "09:30:00"}},
		{`INSERT INTO schedules (id, route_id, day_of_week, departure_time, arrival_time) VALUES (?, ?, ?, ?, ?)`,
			[]any{"schedule-2", "route-1", "Sexta-feira", "18:00:00", "20:30:00"}},
		{`INSERT INTO vehicles (id, name, plate, seat_count) VALUES (?, ?, ?, ?)`,
			[]any{"vehicle-1", "Marcopolo G7", "ABC1D23", 46}},
	}
	for _, s := range stmts {
		require.NoError(t, db.Exec(s.sql, s.args...).Error)
	}
}

func newTestOffering(t *testing.T, scheduleID string, price float64) *domain.Offering {
	t.Helper()
	offering, err := domain.NewOffering(domain.CreateParams{
		CarrierID:   "carrier-1",
		RouteID:     "route-1",
		ScheduleID:  scheduleID,
		VehicleID:   "vehicle-1",
		TicketPrice: price,
	})
	require.NoError(t, err)
	return offering
}

func TestRepository_CreateAndExists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOfferingsPostgresContainer(t)
	defer cleanup()
	seedCollaborators(t, db)

	repo := NewRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "carrier-1", "route-1", "schedule-1", "vehicle-1")
	require.NoError(t, err)
	assert.False(t, exists)

	stored, err := repo.Create(ctx, newTestOffering(t, "schedule-1", 49.90))
	require.NoError(t, err)
	assert.Equal(t, 49.90, stored.TicketPrice)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Nil(t, stored.UpdatedAt)

	exists, err = repo.Exists(ctx, "carrier-1", "route-1", "schedule-1", "vehicle-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestRepository_DuplicateTupleIsRejected(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOfferingsPostgresContainer(t)
	defer cleanup()
	seedCollaborators(t, db)

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestOffering(t, "schedule-1", 49.90))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newTestOffering(t, "schedule-1", 59.90))
	assert.ErrorIs(t, err, ports.ErrDuplicate)
}

func TestRepository_SearchJoinsAndFilters(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOfferingsPostgresContainer(t)
	defer cleanup()
	seedCollaborators(t, db)

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestOffering(t, "schedule-1", 49.90))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestOffering(t, "schedule-2", 55.00))
	require.NoError(t, err)

	rows, err := repo.Search(ctx, domain.SearchFilters{}, 0, 25)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	first := rows[0]
	assert.Equal(t, "BH x Oliveira", first.Route)
	assert.Equal(t, "Expresso Oliveira", first.Carrier)
	assert.Equal(t, 49.90, first.TicketPrice)
	assert.Equal(t, 150.5, first.DistanceKm)
	assert.Equal(t, "BR-381", first.MainRoad)
	assert.Equal(t, "Marcopolo G7", first.Vehicle)
	assert.Equal(t, timetable.Monday, first.DayOfWeek)
	assert.Equal(t, "07:00:00", first.DepartureTime)
	assert.Equal(t, "09:30:00", first.ArrivalTime)

	rows, err = repo.Search(ctx, domain.SearchFilters{DayOfWeek: timetable.Friday}, 0, 25)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 55.00, rows[0].TicketPrice)

	rows, err = repo.Search(ctx, domain.SearchFilters{
		DayOfWeek:     timetable.Friday,
		DepartureTime: "07:00:00",
	}, 0, 25)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = repo.Search(ctx, domain.SearchFilters{OriginCityID: "city-bh", DestinationCityID: "city-ol"}, 0, 25)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestRepository_SearchPaginates(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupOfferingsPostgresContainer(t)
	defer cleanup()
	seedCollaborators(t, db)

	repo := NewRepository(db)
	ctx := context.Background()

	_, err := repo.Create(ctx, newTestOffering(t, "schedule-1", 49.90))
	require.NoError(t, err)
	_, err = repo.Create(ctx, newTestOffering(t, "schedule-2", 55.00))
	require.NoError(t, err)

	page0, err := repo.Search(ctx, domain.SearchFilters{}, 0, 1)
	require.NoError(t, err)
	require.Len(t, page0, 1)

	page1, err := repo.Search(ctx, domain.SearchFilters{}, 1, 1)
	require.NoError(t, err)
	require.Len(t, page1, 1)
	assert.NotEqual(t, page0[0].DepartureTime, page1[0].DepartureTime)

	page2, err := repo.Search(ctx, domain.SearchFilters{}, 2, 1)
	require.NoError(t, err)
	assert.Empty(t, page2)
}
