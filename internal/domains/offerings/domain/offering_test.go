package domain

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rotafacil/transit-api/internal/shared/timetable"
)

func TestNewOffering(t *testing.T) {
	offering, err := NewOffering(CreateParams{
		CarrierID:   "c1",
		RouteID:     "r1",
		ScheduleID:  "s1",
		VehicleID:   "v1",
		TicketPrice: 19.90,
	})
	require.NoError(t, err)
	require.NotEmpty(t, offering.ID)
	require.Equal(t, 19.90, offering.TicketPrice)
	require.True(t, offering.CreatedAt.IsZero())
	require.Nil(t, offering.UpdatedAt)
}

func TestNewOffering_GeneratesUniqueIDs(t *testing.T) {
	params := CreateParams{CarrierID: "c1", RouteID: "r1", ScheduleID: "s1", VehicleID: "v1", TicketPrice: 1}
	a, err := NewOffering(params)
	require.NoError(t, err)
	b, err := NewOffering(params)
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestNewOffering_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		params CreateParams
		want   error
	}{
		{"missing carrier", CreateParams{RouteID: "r", ScheduleID: "s", VehicleID: "v"}, ErrMissingCarrier},
		{"missing route", CreateParams{CarrierID: "c", ScheduleID: "s", VehicleID: "v"}, ErrMissingRoute},
		{"missing schedule", CreateParams{CarrierID: "c", RouteID: "r", VehicleID: "v"}, ErrMissingSchedule},
		{"missing vehicle", CreateParams{CarrierID: "c", RouteID: "r", ScheduleID: "s"}, ErrMissingVehicle},
		{"negative price", CreateParams{CarrierID: "c", RouteID: "r", ScheduleID: "s", VehicleID: "v", TicketPrice: -0.01}, ErrNegativePrice},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewOffering(tc.params)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestSearchFilters_Validate(t *testing.T) {
	require.NoError(t, SearchFilters{}.Validate())
	require.NoError(t, SearchFilters{DayOfWeek: timetable.Monday, DepartureTime: "07:00:00"}.Validate())
	require.ErrorIs(t, SearchFilters{DayOfWeek: "Mondayy"}.Validate(), timetable.ErrInvalidDay)
	require.ErrorIs(t, SearchFilters{DepartureTime: "7am"}.Validate(), timetable.ErrInvalidTimeOfDay)
}

func TestSearchFilters_Empty(t *testing.T) {
	require.True(t, SearchFilters{}.Empty())
	require.False(t, SearchFilters{OriginCityID: "city-1"}.Empty())
}
