package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/housing-budget/internal/budget"
	"github.com/iwvelando/housing-budget/internal/planner"
	"github.com/iwvelando/housing-budget/internal/recommend"
	"github.com/iwvelando/housing-budget/internal/reference"
)

// Display names accepted for each canonical value. Keys are lower case.
var (
	financingAliases = map[string]budget.FinancingOption{
		"cash":               budget.Cash,
		"نقدي":               budget.Cash,
		"نقدا":               budget.Cash,
		"كاش":                budget.Cash,
		"mortgage":           budget.Mortgage,
		"bank financing":     budget.Mortgage,
		"تمويل عقاري":        budget.Mortgage,
		"رهن عقاري":          budget.Mortgage,
		"تمويل بنكي":         budget.Mortgage,
		"direct_installment": budget.DirectInstallment,
		"direct installment": budget.DirectInstallment,
		"installment":        budget.DirectInstallment,
		"تقسيط مباشر":        budget.DirectInstallment,
		"تقسيط":              budget.DirectInstallment,
	}

	propertyTypeAliases = map[string]reference.PropertyType{
		"شقة":     reference.Apartment,
		"دوبلكس":  reference.Duplex,
		"دبلكس":   reference.Duplex,
		"فيلا":    reference.Villa,
		"فلة":     reference.Villa,
		"استوديو": reference.Studio,
	}

	ownershipAliases = map[string]recommend.Ownership{
		"buy":     recommend.Buy,
		"own":     recommend.Buy,
		"شراء":    recommend.Buy,
		"تملك":    recommend.Buy,
		"rent":    recommend.Rent,
		"إيجار":   recommend.Rent,
		"ايجار":   recommend.Rent,
		"استئجار": recommend.Rent,
	}
)

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// ParseFinancingOption maps a canonical or display name onto a financing option.
func ParseFinancingOption(s string) (budget.FinancingOption, error) {
	if opt, ok := financingAliases[normalize(s)]; ok {
		return opt, nil
	}
	return "", fmt.Errorf("%w: unsupported financing option %q", planner.ErrInvalidInput, s)
}

// ParsePropertyType maps a canonical or display name onto a property type.
func ParsePropertyType(s string) (reference.PropertyType, bool) {
	if t, ok := reference.ParsePropertyType(s); ok {
		return t, true
	}
	t, ok := propertyTypeAliases[normalize(s)]
	return t, ok
}

// ParseOwnership maps a canonical or display name onto buy or rent.
func ParseOwnership(s string) (recommend.Ownership, bool) {
	o, ok := ownershipAliases[normalize(s)]
	return o, ok
}

// Profile converts the record into a planner profile. Unknown preferences
// are dropped; an unknown financing option is an error.
func (h Household) Profile() (planner.HouseholdProfile, error) {
	option, err := ParseFinancingOption(h.FinancingOption)
	if err != nil {
		return planner.HouseholdProfile{}, fmt.Errorf("household %s: %w", h.Name, err)
	}

	profile := planner.HouseholdProfile{
		Name:               h.Name,
		MonthlyIncome:      h.MonthlyIncome,
		MonthlyObligations: h.MonthlyObligations,
		Age:                h.Age,
		FamilySize:         h.FamilySize,
		RequiredRooms:      h.RequiredRooms,
		SalaryIncreasePct:  h.ExpectedSalaryIncrease,
		City:               strings.TrimSpace(h.City),
		WorkRegion:         strings.ToLower(strings.TrimSpace(h.WorkRegion)),
		FinancingOption:    option,
		MortgageRatePct:    h.MortgageInterestRate,
	}
	if t, ok := ParsePropertyType(h.PreferredPropertyType); ok {
		profile.PreferredPropertyType = t
	}
	if o, ok := ParseOwnership(h.OwnershipPreference); ok {
		profile.OwnershipPreference = o
	}
	return profile, nil
}
