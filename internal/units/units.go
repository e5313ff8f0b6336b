// Package units provides weight rounding and unit conversion helpers.
package units

import (
	"errors"
	"math"
)

// ErrInvalidPrecision is returned when a rounding precision is zero or negative.
var ErrInvalidPrecision = errors.New("precision must be greater than 0")

// KilogramsPerPound is the exact conversion factor.
const KilogramsPerPound = 0.45359237

// RoundToGrid rounds a weight up to the smallest multiple of precision
// that is >= weight, so every prescription lands on a loadable increment.
func RoundToGrid(weight, precision float64) (float64, error) {
	if precision <= 0 {
		return 0, ErrInvalidPrecision
	}
	return math.Ceil(weight/precision) * precision, nil
}

// LbsToKg converts pounds to kilograms.
func LbsToKg(lbs float64) float64 {
	return lbs * KilogramsPerPound
}

// KgToLbs converts kilograms to pounds.
func KgToLbs(kg float64) float64 {
	return kg / KilogramsPerPound
}
