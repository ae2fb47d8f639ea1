package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		want   int64
	}{
		{"zero", 0, 0},
		{"whole reais", 20, 2000},
		{"typical fare", 19.90, 1990},
		{"single cent", 0.01, 1},
		{"rounds up", 10.999, 1100},
		{"rounds down", 10.991, 1099},
		{"large fare", 12345.67, 1234567},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, ToMinorUnits(tc.amount))
		})
	}
}

// The literal 19.995 is stored as a float64 just below the exact half-cent, so
// it rounds down. Pinned so a codec change cannot silently move the boundary.
func TestToMinorUnits_HalfCentBoundary(t *testing.T) {
	require.Equal(t, int64(1999), ToMinorUnits(19.995))
	// Idempotent across repeated calls.
	for i := 0; i < 5; i++ {
		require.Equal(t, int64(1999), ToMinorUnits(19.995))
	}
}

func TestToMajorUnits(t *testing.T) {
	require.Equal(t, 19.90, ToMajorUnits(1990))
	require.Equal(t, 0.01, ToMajorUnits(1))
	require.Equal(t, 0.0, ToMajorUnits(0))
	require.Equal(t, 123.45, ToMajorUnits(12345))
}

func TestRoundTrip_MinorUnits(t *testing.T) {
	for cents := int64(0); cents <= 25000; cents++ {
		require.Equal(t, cents, ToMinorUnits(ToMajorUnits(cents)))
	}
	for _, cents := range []int64{999999, 123456789, 900719925474} {
		require.Equal(t, cents, ToMinorUnits(ToMajorUnits(cents)))
	}
}

func TestConvert(t *testing.T) {
	got, err := Convert(19.90, UnitCents)
	require.NoError(t, err)
	require.Equal(t, 1990.0, got)

	got, err = Convert(1990, UnitDecimal)
	require.NoError(t, err)
	require.Equal(t, 19.90, got)
}

func TestConvert_InvalidUnit(t *testing.T) {
	_, err := Convert(10, Unit("dollars"))
	require.ErrorIs(t, err, ErrInvalidConversion)
}
