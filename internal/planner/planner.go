// Package planner runs one household submission through the budget and
// recommendation rules and assembles the result.
package planner

import (
	"fmt"

	"github.com/iwvelando/housing-budget/internal/budget"
	"github.com/iwvelando/housing-budget/internal/recommend"
	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/format"
	"go.uber.org/zap"
)

// Result is the complete plan for one household.
type Result struct {
	Profile           HouseholdProfile            `json:"profile"`
	City              string                      `json:"city"`
	NetIncome         float64                     `json:"netIncome"`
	Retirement        budget.Retirement           `json:"retirement"`
	Budget            budget.Result               `json:"budget"`
	Recommendation    recommend.Recommendation    `json:"recommendation"`
	BaselinePrice     float64                     `json:"baselinePrice"`
	IsAffordable      bool                        `json:"isAffordable"`
	AffordabilityBand recommend.AffordabilityBand `json:"affordabilityBand"`
	RoomFit           recommend.RoomFit           `json:"roomFit"`
	Notes             []string                    `json:"notes,omitempty"`
}

// Plan computes, in order, net income, the retirement projection, the
// maximum budget, affordability of the recommended property, the district
// and the buy-or-rent decision. The catalog is only read.
func Plan(logger *zap.Logger, catalog reference.Catalog, profile HouseholdProfile) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	const op = "planner.Plan"

	if err := profile.Validate(); err != nil {
		return Result{}, err
	}
	city, err := catalog.City(profile.City)
	if err != nil {
		return Result{}, err
	}
	if profile.WorkRegion != "" && !city.HasRegion(profile.WorkRegion) {
		return Result{}, fmt.Errorf("%w: work region %q is not a region of %s", ErrInvalidInput, profile.WorkRegion, city.Name)
	}

	net := budget.NetIncome(profile.MonthlyIncome, profile.MonthlyObligations)
	retirement := budget.RetirementImpact(profile.Age, net, profile.SalaryIncreasePct)
	budgetResult, err := budget.MaxBudget(budget.Inputs{
		NetIncome:         net,
		Age:               profile.Age,
		SalaryIncreasePct: profile.SalaryIncreasePct,
		MortgageRatePct:   profile.MortgageRatePct,
		Option:            profile.FinancingOption,
	})
	if err != nil {
		return Result{}, err
	}
	logger.Debug("computed budget",
		zap.String("op", op),
		zap.String("household", profile.Name),
		zap.String("financing", string(budgetResult.Option)),
		zap.Float64("netIncome", net),
		zap.Float64("maxBudget", budgetResult.MaxBudget),
	)

	rooms := recommend.RequiredRooms(profile.FamilySize)
	choice := recommend.RecommendPropertyType(catalog, city, profile.FamilySize, profile.RequiredRooms)
	baseline := recommend.CityEstimate(catalog, city, choice.Type)
	affordable := budgetResult.MaxBudget >= baseline.Price

	var districtPtr *reference.District
	estimate := baseline
	district, found := recommend.SelectDistrict(catalog, city, choice.Type, budgetResult.MaxBudget, profile.FamilySize)
	if found {
		districtPtr = &district
		estimate = recommend.EstimatedPrice(catalog, city, district, choice.Type)
	} else {
		logger.Debug(fmt.Sprintf("no district of %s fits a budget of %.2f for a %s", city.Name, budgetResult.MaxBudget, choice.Type),
			zap.String("op", op),
		)
	}

	decision := recommend.OwnershipDecision(city, profile.Age, budgetResult.MaxBudget, retirement.YearsUntilRetirement)

	propertyReasons := recommend.PropertyReasons(city, choice, rooms, profile.FamilySize, districtPtr,
		profile.WorkRegion, budgetResult.MaxBudget)
	rec := recommend.Recommendation{
		PropertyType:        choice.Type,
		PropertySize:        choice.BaseSize,
		Bedrooms:            rooms.Bedrooms,
		Bathrooms:           rooms.Bathrooms,
		EstimatedPrice:      estimate.Price,
		PriceFromSample:     estimate.FromSample,
		PricePerSqm:         recommend.PricePerSqm(city, district),
		MonthlyRentEstimate: recommend.MonthlyRent(estimate.Price),
		District:            districtPtr,
		Ownership:           decision.Recommendation,
		Reasons:             decision.Reasons,
		PropertyReasons:     propertyReasons,
	}

	result := Result{
		Profile:           profile,
		City:              city.Name,
		NetIncome:         net,
		Retirement:        retirement,
		Budget:            budgetResult,
		Recommendation:    rec,
		BaselinePrice:     baseline.Price,
		IsAffordable:      affordable,
		AffordabilityBand: recommend.ClassifyAffordability(budgetResult.AffordabilityRatio),
		RoomFit:           recommend.AssessRoomFit(profile.FamilySize, profile.RequiredRooms),
		Notes:             notes(profile, city, budgetResult, baseline.Price, affordable, rec, retirement),
	}

	logger.Debug("assembled plan",
		zap.String("op", op),
		zap.String("household", profile.Name),
		zap.String("propertyType", string(rec.PropertyType)),
		zap.String("district", rec.DistrictName()),
		zap.String("ownership", string(rec.Ownership)),
		zap.Bool("affordable", affordable),
	)
	return result, nil
}

func notes(profile HouseholdProfile, city reference.City, b budget.Result, baseline float64, affordable bool,
	rec recommend.Recommendation, retirement budget.Retirement) []string {
	var out []string
	if !affordable {
		out = append(out, fmt.Sprintf("Your budget of %s is below the estimated %s for a typical %s in %s",
			format.Currency(b.MaxBudget), format.Currency(baseline), rec.PropertyType, city.Name))
	}
	if rec.District == nil {
		out = append(out, fmt.Sprintf("No district in %s matches your budget; consider renting or a smaller property", city.Name))
	}
	if b.Option.Financed() {
		out = append(out, recommend.RetirementNote(retirement.YearsUntilRetirement))
	}
	out = append(out, recommend.PreferenceNotes(profile.PreferredPropertyType, profile.OwnershipPreference,
		rec.PropertyType, rec.Ownership)...)
	return out
}
