package recommend

import (
	"fmt"

	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/format"
)

// Ownership is buy or rent.
type Ownership string

const (
	Buy  Ownership = "buy"
	Rent Ownership = "rent"
)

// BuyReason is given when fewer than RentVoteThreshold triggers fire.
const BuyReason = "Buying builds a long-term asset while you have time to repay"

// Decision is the buy-or-rent outcome with its reasons.
type Decision struct {
	Recommendation Ownership `json:"recommendation"`
	Reasons        []string  `json:"reasons"`
	Triggers       int       `json:"triggers"`
}

// OwnershipDecision counts four triggers (high city inflation, age, budget
// shortfall against the city average, closeness to retirement) and
// recommends renting when at least RentVoteThreshold of them fire.
func OwnershipDecision(city reference.City, age int, budget float64, yearsUntilRetirement int) Decision {
	var reasons []string

	if city.InflationRatePct > constants.HighInflationPct {
		reasons = append(reasons, fmt.Sprintf("Prices in %s are rising %s a year, which favours buying sooner",
			city.Name, format.English.Percent(city.InflationRatePct)))
	}
	if age > constants.LateCareerAge {
		reasons = append(reasons, fmt.Sprintf("At %d, renting avoids taking on long-term debt", age))
	}
	if budget < constants.BudgetShortfallRatio*city.AveragePrice {
		reasons = append(reasons, fmt.Sprintf("A budget of %s is below %s of the %s average price of %s",
			format.Currency(budget), format.Percentage(constants.BudgetShortfallRatio), city.Name,
			format.Currency(city.AveragePrice)))
	}
	if yearsUntilRetirement < constants.NearRetirementYears {
		reasons = append(reasons, fmt.Sprintf("With %d years until retirement, renting keeps you flexible", yearsUntilRetirement))
	}

	if len(reasons) >= constants.RentVoteThreshold {
		return Decision{Recommendation: Rent, Reasons: reasons, Triggers: len(reasons)}
	}
	return Decision{Recommendation: Buy, Reasons: []string{BuyReason}, Triggers: len(reasons)}
}
