// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/housing-budget/pkg/constants"
)

// ValidateObligations warns when fixed obligations leave no income to plan with.
func ValidateObligations(household string, income, obligations float64) string {
	if income > 0 && obligations >= income {
		return fmt.Sprintf("Household '%s' has obligations of %.2f at or above its income of %.2f - net income will be zero",
			household, obligations, income)
	}
	return ""
}

// ValidateFinancingHorizon warns when a financed purchase starts too close to
// retirement to use the full loan term.
func ValidateFinancingHorizon(household, financing string, age int) string {
	if financing == "" || financing == "cash" {
		return ""
	}
	years := constants.RetirementAge - age
	if years < constants.RetirementProximityYears {
		return fmt.Sprintf("Household '%s' is %d years from retirement - the %s amount will be reduced",
			household, maxInt(years, 0), strings.ReplaceAll(financing, "_", " "))
	}
	return ""
}

// ValidateRoomCount warns when the requested rooms are short for the household.
func ValidateRoomCount(household string, familySize, rooms int) string {
	if rooms > 0 && familySize > rooms*2 {
		return fmt.Sprintf("Household '%s' requests %d rooms for %d people - more than two people per room",
			household, rooms, familySize)
	}
	return ""
}

// ConfigValidator collects warnings for a batch of households.
type ConfigValidator struct {
	Households []HouseholdConfig
}

// HouseholdConfig is the subset of a household record the validator reads.
type HouseholdConfig struct {
	Name          string
	Active        bool
	Income        float64
	Obligations   float64
	Age           int
	FamilySize    int
	RequiredRooms int
	Financing     string
	PreferredType string
	KnownType     bool
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	seen := make(map[string]int)
	for _, h := range cv.Households {
		seen[strings.ToLower(strings.TrimSpace(h.Name))]++
	}

	active := 0
	for _, h := range cv.Households {
		if !h.Active {
			continue
		}
		active++

		if seen[strings.ToLower(strings.TrimSpace(h.Name))] > 1 {
			warnings = append(warnings, fmt.Sprintf("Household name '%s' is used more than once", h.Name))
		}
		if w := ValidateObligations(h.Name, h.Income, h.Obligations); w != "" {
			warnings = append(warnings, w)
		}
		if w := ValidateFinancingHorizon(h.Name, h.Financing, h.Age); w != "" {
			warnings = append(warnings, w)
		}
		if w := ValidateRoomCount(h.Name, h.FamilySize, h.RequiredRooms); w != "" {
			warnings = append(warnings, w)
		}
		if h.PreferredType != "" && !h.KnownType {
			warnings = append(warnings, fmt.Sprintf("Household '%s' prefers unknown property type '%s' - preference ignored",
				h.Name, h.PreferredType))
		}
	}

	if len(cv.Households) > 0 && active == 0 {
		warnings = append(warnings, "No active households - nothing will be planned")
	}

	return warnings
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
