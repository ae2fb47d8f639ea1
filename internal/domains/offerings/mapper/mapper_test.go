package mapper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

func TestToDomain(t *testing.T) {
	created := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)
	offering := ToDomain(Record{
		ID:         "o1",
		CarrierID:  "c1",
		RouteID:    "r1",
		ScheduleID: "s1",
		VehicleID:  "v1",
		PriceCents: 1990,
		CreatedAt:  created,
		UpdatedAt:  &updated,
	})
	require.Equal(t, "o1", offering.ID)
	require.Equal(t, 19.90, offering.TicketPrice)
	require.Equal(t, created, offering.CreatedAt)
	require.Equal(t, &updated, offering.UpdatedAt)
}

func TestToPersistence_PassesTimestampsThrough(t *testing.T) {
	offering := &domain.Offering{
		ID:          "o1",
		CarrierID:   "c1",
		RouteID:     "r1",
		ScheduleID:  "s1",
		VehicleID:   "v1",
		TicketPrice: 19.90,
	}
	rec := ToPersistence(offering)
	require.Equal(t, int64(1990), rec.PriceCents)
	require.True(t, rec.CreatedAt.IsZero())
	require.Nil(t, rec.UpdatedAt)
}

func TestToPersistence_RoundTripsWithToDomain(t *testing.T) {
	now := time.Now().UTC()
	original := &domain.Offering{
		ID:          "o2",
		CarrierID:   "c2",
		RouteID:     "r2",
		ScheduleID:  "s2",
		VehicleID:   "v2",
		TicketPrice: 104.25,
		CreatedAt:   now,
	}
	require.Equal(t, original, ToDomain(ToPersistence(original)))
}

func TestSearchRowToDomain(t *testing.T) {
	mainRoad := "BR-101"
	row := SearchRowToDomain(SearchRecord{
		Route:             "Natal - Recife",
		Carrier:           "Viação Norte",
		PriceCents:        2000,
		DistanceKm:        290,
		EstimatedDuration: "04:30:00",
		MainRoad:          &mainRoad,
		Vehicle:           "Ônibus Leito",
		DayOfWeek:         "Segunda-feira",
		DepartureTime:     "07:00:00",
		ArrivalTime:       "11:30:00",
	})
	require.Equal(t, 20.0, row.TicketPrice)
	require.Equal(t, timetable.Monday, row.DayOfWeek)
	require.Equal(t, "BR-101", row.MainRoad)
}

func TestSearchRowToDomain_NullMainRoad(t *testing.T) {
	row := SearchRowToDomain(SearchRecord{Route: "A - B", PriceCents: 100})
	require.Empty(t, row.MainRoad)
	require.Equal(t, 1.0, row.TicketPrice)
}
