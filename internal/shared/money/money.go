// Package money converts ticket prices between integer centavos and decimal
// reais. Storage always keeps centavos; the API boundary speaks reais.
package money

import (
	"errors"
	"fmt"
	"math"
)

// Unit identifies the target representation of a conversion.
type Unit string

const (
	// UnitCents is the integer minor-unit form used in storage.
	UnitCents Unit = "cents"
	// UnitDecimal is the decimal major-unit form used at the boundary.
	UnitDecimal Unit = "decimal"
)

// ErrInvalidConversion signals an unrecognized conversion unit.
var ErrInvalidConversion = errors.New("invalid money conversion unit")

// ToMinorUnits rounds a decimal amount (19.99) to the nearest integer number
// of cents (1999). Halves round away from zero. Amounts like 19.995 have no
// exact binary representation; the nearest float64 sits just below the half
// and therefore rounds down, which is the behavior the tests pin.
func ToMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToMajorUnits converts integer cents back to a decimal amount with two
// decimal places. Inverse of ToMinorUnits for every integer input.
func ToMajorUnits(cents int64) float64 {
	return float64(cents) / 100
}

// Convert translates value into the requested unit. The value is read as
// decimal reais when converting to cents and as integer centavos when
// converting to decimal.
func Convert(value float64, to Unit) (float64, error) {
	switch to {
	case UnitCents:
		return float64(ToMinorUnits(value)), nil
	case UnitDecimal:
		return ToMajorUnits(int64(math.Round(value))), nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidConversion, to)
	}
}
