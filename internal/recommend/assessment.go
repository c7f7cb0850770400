package recommend

import (
	"fmt"

	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
)

// AffordabilityBand grades a repayment-to-income ratio.
type AffordabilityBand string

const (
	Comfortable AffordabilityBand = "comfortable"
	Elevated    AffordabilityBand = "elevated"
	HighBurden  AffordabilityBand = "high"
)

// ClassifyAffordability grades the ratio; above 0.4 is a high burden.
func ClassifyAffordability(ratio float64) AffordabilityBand {
	switch {
	case ratio > constants.HighBurdenRatio:
		return HighBurden
	case ratio > constants.ElevatedBurdenRatio:
		return Elevated
	default:
		return Comfortable
	}
}

// RoomFit grades the requested room count against the household size.
type RoomFit string

const (
	RoomsAdequate     RoomFit = "adequate"
	RoomsTight        RoomFit = "tight"
	RoomsInsufficient RoomFit = "insufficient"
)

// AssessRoomFit compares family size with requested rooms: more than two
// people per room is insufficient, more than one and a half is tight.
func AssessRoomFit(familySize, requiredRooms int) RoomFit {
	switch {
	case float64(familySize) > float64(requiredRooms)*2:
		return RoomsInsufficient
	case float64(familySize) > float64(requiredRooms)*1.5:
		return RoomsTight
	default:
		return RoomsAdequate
	}
}

// PreferenceNotes flags where the recommendation departs from what the
// household asked for.
func PreferenceNotes(preferredType reference.PropertyType, preferredOwnership Ownership, recommendedType reference.PropertyType, decision Ownership) []string {
	var notes []string
	if preferredType != "" && preferredType != recommendedType {
		notes = append(notes, fmt.Sprintf("Your preferred %s differs from the recommended %s based on your budget and household",
			preferredType, recommendedType))
	}
	if preferredOwnership == Buy && decision == Rent {
		notes = append(notes, "Although you prefer to buy, renting may suit your current finances and age better")
	}
	return notes
}

// RetirementNote comments on the time left to repay a financed purchase.
func RetirementNote(yearsUntilRetirement int) string {
	if yearsUntilRetirement < constants.RetirementProximityYears {
		return "Retirement is close, so a financed purchase needs a cautious repayment plan"
	}
	return "There is enough time before retirement to repay a financed purchase"
}
