package planner

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/iwvelando/housing-budget/internal/budget"
	"github.com/iwvelando/housing-budget/internal/recommend"
	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/mathutil"
)

func baseProfile() HouseholdProfile {
	return HouseholdProfile{
		Name:               "Young couple",
		MonthlyIncome:      15000,
		MonthlyObligations: 3000,
		Age:                30,
		FamilySize:         2,
		RequiredRooms:      1,
		SalaryIncreasePct:  3,
		City:               "Riyadh",
		WorkRegion:         reference.RegionEast,
		FinancingOption:    budget.Mortgage,
		MortgageRatePct:    4,
	}
}

func TestPlanMortgageCouple(t *testing.T) {
	result, err := Plan(nil, reference.DefaultCatalog(), baseProfile())
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if result.NetIncome != 12000 {
		t.Errorf("NetIncome = %.2f, expected 12000", result.NetIncome)
	}
	if result.Retirement.YearsUntilRetirement != 35 {
		t.Errorf("YearsUntilRetirement = %d, expected 35", result.Retirement.YearsUntilRetirement)
	}
	if !mathutil.WithinTolerance(result.Budget.MaxBudget, 795700.43, 0.01) {
		t.Errorf("MaxBudget = %.2f, expected 795700.43", result.Budget.MaxBudget)
	}
	if result.Budget.LoanTermYears != 25 {
		t.Errorf("LoanTermYears = %d, expected 25", result.Budget.LoanTermYears)
	}

	rec := result.Recommendation
	if rec.PropertyType != reference.Apartment {
		t.Errorf("PropertyType = %s, expected apartment", rec.PropertyType)
	}
	if rec.Bedrooms != 1 || rec.Bathrooms != 1 {
		t.Errorf("rooms = %d/%d, expected 1/1", rec.Bedrooms, rec.Bathrooms)
	}
	if rec.DistrictName() != "Al Hamra" {
		t.Errorf("District = %q, expected Al Hamra", rec.DistrictName())
	}
	if !mathutil.WithinTolerance(rec.EstimatedPrice, 760000, 0.01) {
		t.Errorf("EstimatedPrice = %.2f, expected 760000", rec.EstimatedPrice)
	}
	if rec.MonthlyRentEstimate != 3040 {
		t.Errorf("MonthlyRentEstimate = %.2f, expected 3040", rec.MonthlyRentEstimate)
	}
	if rec.Ownership != recommend.Buy {
		t.Errorf("Ownership = %s, expected buy", rec.Ownership)
	}

	// The city-wide apartment estimate of SAR 800,000 sits just above the budget.
	if result.IsAffordable {
		t.Error("expected the baseline apartment to be out of reach")
	}
	if result.RoomFit != recommend.RoomsTight {
		t.Errorf("RoomFit = %s, expected tight", result.RoomFit)
	}

	joined := strings.Join(result.Notes, "\n")
	if !strings.Contains(joined, "is below the estimated SAR 800,000 for a typical apartment in Riyadh") {
		t.Errorf("missing over-budget note:\n%s", joined)
	}
	if !strings.Contains(joined, "enough time before retirement") {
		t.Errorf("missing retirement note:\n%s", joined)
	}
	if !strings.Contains(strings.Join(rec.PropertyReasons, "\n"), "close to your work area") {
		t.Errorf("missing work-area reason: %v", rec.PropertyReasons)
	}
}

func TestPlanLargeFamilyGetsVilla(t *testing.T) {
	profile := baseProfile()
	profile.FamilySize = 7
	profile.RequiredRooms = 2

	result, err := Plan(nil, reference.DefaultCatalog(), profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	rec := result.Recommendation
	if rec.PropertyType != reference.Villa {
		t.Errorf("PropertyType = %s, expected villa", rec.PropertyType)
	}
	if rec.PropertySize != 350 {
		t.Errorf("PropertySize = %.0f, expected Riyadh's villa size of 350", rec.PropertySize)
	}
	if rec.Bedrooms != 4 || rec.Bathrooms != 3 {
		t.Errorf("rooms = %d/%d, expected 4/3", rec.Bedrooms, rec.Bathrooms)
	}
	// No Riyadh villa fits a budget under SAR 800,000; that is a result, not an error.
	if rec.District != nil {
		t.Errorf("expected no district, got %s", rec.District.Name)
	}
	if !strings.Contains(strings.Join(result.Notes, "\n"), "No district in Riyadh matches your budget") {
		t.Errorf("missing no-district note: %v", result.Notes)
	}
	if result.RoomFit != recommend.RoomsInsufficient {
		t.Errorf("RoomFit = %s, expected insufficient", result.RoomFit)
	}
}

func TestPlanCashNearRetirementRents(t *testing.T) {
	profile := baseProfile()
	profile.Name = "Near retirement"
	profile.Age = 60
	profile.FamilySize = 3
	profile.RequiredRooms = 2
	profile.City = "Dammam"
	profile.WorkRegion = ""
	profile.FinancingOption = budget.Cash
	profile.OwnershipPreference = recommend.Buy

	result, err := Plan(nil, reference.DefaultCatalog(), profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if result.Budget.MaxBudget != 201600 {
		t.Errorf("MaxBudget = %.2f, expected 201600", result.Budget.MaxBudget)
	}
	if result.Budget.MonthlyPayment != 0 || result.Budget.AffordabilityRatio != 0 {
		t.Errorf("cash payment/ratio = %.2f/%.2f, expected 0/0", result.Budget.MonthlyPayment, result.Budget.AffordabilityRatio)
	}
	if result.AffordabilityBand != recommend.Comfortable {
		t.Errorf("AffordabilityBand = %s, expected comfortable", result.AffordabilityBand)
	}

	rec := result.Recommendation
	if rec.Ownership != recommend.Rent {
		t.Errorf("Ownership = %s, expected rent", rec.Ownership)
	}
	// Age, budget shortfall and closeness to retirement all fire.
	if len(rec.Reasons) != 3 {
		t.Errorf("rent reasons = %v, expected 3", rec.Reasons)
	}

	joined := strings.Join(result.Notes, "\n")
	if !strings.Contains(joined, "Although you prefer to buy") {
		t.Errorf("missing ownership preference note:\n%s", joined)
	}
	if strings.Contains(joined, "retirement") {
		t.Errorf("cash purchase should carry no financing retirement note:\n%s", joined)
	}
}

func TestPlanPrefersRecordedSample(t *testing.T) {
	catalog := reference.DefaultCatalog().WithSamples([]reference.PriceSample{
		{City: "Riyadh", District: "Al Olaya", PropertyType: reference.Villa, Price: 3000000},
	})
	profile := baseProfile()
	profile.MonthlyIncome = 60000
	profile.MonthlyObligations = 0
	profile.FamilySize = 7
	profile.RequiredRooms = 4
	profile.PreferredPropertyType = reference.Apartment

	result, err := Plan(nil, catalog, profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	rec := result.Recommendation
	if rec.DistrictName() != "Al Olaya" {
		t.Fatalf("District = %q, expected Al Olaya", rec.DistrictName())
	}
	if rec.EstimatedPrice != 3000000 || !rec.PriceFromSample {
		t.Errorf("EstimatedPrice = %.2f (sample=%v), expected the recorded 3000000", rec.EstimatedPrice, rec.PriceFromSample)
	}
	if !result.IsAffordable {
		t.Error("expected the baseline villa to be affordable")
	}
	if !strings.Contains(strings.Join(result.Notes, "\n"), "preferred apartment differs from the recommended villa") {
		t.Errorf("missing property preference note: %v", result.Notes)
	}
}

func TestPlanSyntheticCity(t *testing.T) {
	catalog := reference.DefaultCatalog()
	catalog.Cities = []reference.City{{
		Name:             "Testville",
		AveragePrice:     100000,
		PricePerSqm:      1000,
		InflationRatePct: 1,
		Districts: []reference.District{
			{Name: "Old Town", PriceMultiplier: 0.5, DemandScore: 4, GrowthPotential: 2},
			{Name: "New Town", PriceMultiplier: 0.9, DemandScore: 3, GrowthPotential: 9},
		},
	}}

	profile := baseProfile()
	profile.City = "testville"
	profile.WorkRegion = ""

	result, err := Plan(nil, catalog, profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	if result.City != "Testville" {
		t.Errorf("City = %q, expected Testville", result.City)
	}
	if result.Recommendation.DistrictName() != "New Town" {
		t.Errorf("District = %q, expected New Town", result.Recommendation.DistrictName())
	}
	if !mathutil.WithinTolerance(result.Recommendation.PricePerSqm, 900, 0.01) {
		t.Errorf("PricePerSqm = %.2f, expected 900", result.Recommendation.PricePerSqm)
	}
}

func TestPlanIsIdempotent(t *testing.T) {
	catalog := reference.DefaultCatalog()
	profile := baseProfile()

	first, err := Plan(nil, catalog, profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}
	second, err := Plan(nil, catalog, profile)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Errorf("repeated plans differ:\n%s\n%s", a, b)
	}
}

func TestPlanErrors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(p *HouseholdProfile)
		expected error
		contains string
	}{
		{"Unknown city", func(p *HouseholdProfile) { p.City = "Atlantis" }, reference.ErrUnknownCity, "Atlantis"},
		{"Too young", func(p *HouseholdProfile) { p.Age = 17 }, ErrInvalidInput, "age must be at least 18"},
		{"Zero income", func(p *HouseholdProfile) { p.MonthlyIncome = 0 }, ErrInvalidInput, "monthlyIncome must be greater than 0"},
		{"Family too large", func(p *HouseholdProfile) { p.FamilySize = 21 }, ErrInvalidInput, "familySize must be at most 20"},
		{"Rate too high", func(p *HouseholdProfile) { p.MortgageRatePct = 16 }, ErrInvalidInput, "mortgageInterestRate"},
		{"Unknown financing", func(p *HouseholdProfile) { p.FinancingOption = "lease" }, ErrInvalidInput, "financingOption must be one of"},
		{"Missing city", func(p *HouseholdProfile) { p.City = "" }, ErrInvalidInput, "city is required"},
		{"Unknown property type", func(p *HouseholdProfile) { p.PreferredPropertyType = "castle" }, ErrInvalidInput, "preferredPropertyType"},
		{"Work region outside city", func(p *HouseholdProfile) { p.WorkRegion = "downtown" }, ErrInvalidInput, "work region"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := baseProfile()
			tt.mutate(&profile)
			_, err := Plan(nil, reference.DefaultCatalog(), profile)
			if !errors.Is(err, tt.expected) {
				t.Fatalf("error = %v, expected %v", err, tt.expected)
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("error %q does not mention %q", err, tt.contains)
			}
		})
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	profile := baseProfile()
	profile.Age = 10
	profile.RequiredRooms = 0

	err := profile.Validate()
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("error = %v, expected ErrInvalidInput", err)
	}
	for _, field := range []string{"age", "requiredRooms"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}
