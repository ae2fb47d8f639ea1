package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/domains/offerings/domain"
	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

func TestFilterClauses_AllEmpty(t *testing.T) {
	conditions, args := FilterClauses(domain.SearchFilters{})
	require.Empty(t, conditions)
	require.Empty(t, args)
}

func TestFilterClauses_SingleFilter(t *testing.T) {
	conditions, args := FilterClauses(domain.SearchFilters{DayOfWeek: timetable.Monday})
	require.Equal(t, []string{"schedules.day_of_week = ?"}, conditions)
	require.Equal(t, []any{"Segunda-feira"}, args)
}

func TestFilterClauses_Conjunction(t *testing.T) {
	conditions, args := FilterClauses(domain.SearchFilters{
		DayOfWeek:     timetable.Friday,
		DepartureTime: "07:00:00",
		OriginCityID:  "city-1",
	})
	require.Equal(t, []string{
		"schedules.day_of_week = ?",
		"schedules.departure_time = ?",
		"routes.origin_city_id = ?",
	}, conditions)
	require.Equal(t, []any{"Sexta-feira", "07:00:00", "city-1"}, args)
}

func TestFilterClauses_EveryCombination(t *testing.T) {
	full := domain.SearchFilters{
		DayOfWeek:         timetable.Saturday,
		DepartureTime:     "22:15:00",
		OriginCityID:      "city-1",
		DestinationCityID: "city-2",
	}
	// One predicate per present field, regardless of which subset is set.
	for mask := 0; mask < 16; mask++ {
		var filters domain.SearchFilters
		want := 0
		if mask&1 != 0 {
			filters.DayOfWeek = full.DayOfWeek
			want++
		}
		if mask&2 != 0 {
			filters.DepartureTime = full.DepartureTime
			want++
		}
		if mask&4 != 0 {
			filters.OriginCityID = full.OriginCityID
			want++
		}
		if mask&8 != 0 {
			filters.DestinationCityID = full.DestinationCityID
			want++
		}
		conditions, args := FilterClauses(filters)
		require.Len(t, conditions, want)
		require.Len(t, args, want)
	}
}

func TestFilterClauses_DestinationOnly(t *testing.T) {
	conditions, args := FilterClauses(domain.SearchFilters{DestinationCityID: "city-9"})
	require.Equal(t, []string{"routes.destination_city_id = ?"}, conditions)
	require.Equal(t, []any{"city-9"}, args)
}
