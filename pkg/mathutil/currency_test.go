package mathutil

import (
	"testing"
)

func TestRoundWhole(t *testing.T) {
	if got := RoundWhole(3199.5); got != 3200 {
		t.Errorf("RoundWhole(3199.5) = %v, expected 3200", got)
	}
	if got := RoundWhole(3199.49); got != 3199 {
		t.Errorf("RoundWhole(3199.49) = %v, expected 3199", got)
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		total    float64
		expected float64
	}{
		{"Normal ratio", 4200, 12000, 0.35},
		{"Zero total", 4200, 0, 0},
		{"Negative total", 4200, -10, 0},
		{"Zero value", 0, 12000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SafeRatio(tt.value, tt.total)
			if !WithinTolerance(result, tt.expected, 1e-9) {
				t.Errorf("SafeRatio(%v, %v) = %v, expected %v", tt.value, tt.total, result, tt.expected)
			}
		})
	}
}

func TestCompound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		ratePct  float64
		periods  int
		expected float64
	}{
		{"No periods", 12000, 3, 0, 12000},
		{"Zero rate", 12000, 0, 35, 12000},
		{"One period", 10000, 10, 1, 11000},
		{"Two periods", 10000, 10, 2, 12100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Compound(tt.value, tt.ratePct, tt.periods)
			if !WithinTolerance(result, tt.expected, 1e-6) {
				t.Errorf("Compound() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestMinMaxInt(t *testing.T) {
	if MinInt(25, 40) != 25 || MinInt(40, 25) != 25 {
		t.Error("MinInt returned the larger value")
	}
	if MaxInt(0, -5) != 0 || MaxInt(-5, 0) != 0 {
		t.Error("MaxInt returned the smaller value")
	}
}
