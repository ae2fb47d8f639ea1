package timetable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidDay(t *testing.T) {
	for _, d := range []DayOfWeek{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday} {
		require.True(t, ValidDay(d))
	}
	require.False(t, ValidDay("Feriado"))
	require.False(t, ValidDay(""))
}

func TestValidTimeOfDay(t *testing.T) {
	require.True(t, ValidTimeOfDay("07:30:00"))
	require.True(t, ValidTimeOfDay("23:59:59"))
	require.False(t, ValidTimeOfDay("7:30:00"))
	require.False(t, ValidTimeOfDay("07:30"))
	require.False(t, ValidTimeOfDay("7am"))
}
