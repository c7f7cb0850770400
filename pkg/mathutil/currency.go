// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/housing-budget/pkg/constants"
)

// RoundWhole rounds a value to the nearest whole riyal.
func RoundWhole(val float64) float64 {
	return math.Round(val)
}

// WithinTolerance checks if two values are within a specified tolerance
func WithinTolerance(val1, val2, tolerance float64) bool {
	return math.Abs(val1-val2) <= tolerance
}

// SafeRatio divides value by total and returns 0 when total is not positive.
func SafeRatio(value, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return value / total
}

// Compound grows value at ratePct per period for the given number of periods.
func Compound(value, ratePct float64, periods int) float64 {
	if periods <= 0 || ratePct == 0 {
		return value
	}
	return value * math.Pow(1+ratePct/constants.PercentageMultiplier, float64(periods))
}

// MinInt returns the smaller of two ints.
func MinInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// MaxInt returns the larger of two ints.
func MaxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
