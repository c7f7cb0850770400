package recommend

import (
	"strings"
	"testing"

	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/mathutil"
)

func mustCity(t *testing.T, catalog reference.Catalog, name string) reference.City {
	t.Helper()
	city, err := catalog.City(name)
	if err != nil {
		t.Fatalf("city %s: %v", name, err)
	}
	return city
}

func TestPropertyType(t *testing.T) {
	tests := []struct {
		name       string
		familySize int
		rooms      int
		expected   reference.PropertyType
	}{
		{"Single person", 1, 1, reference.Apartment},
		{"Couple", 2, 1, reference.Apartment},
		{"Three rooms lifts to duplex", 2, 3, reference.Duplex},
		{"Family of four", 4, 1, reference.Duplex},
		{"Four rooms lifts to villa", 1, 4, reference.Villa},
		{"Family of six", 6, 1, reference.Villa},
		{"Family size wins over few rooms", 7, 2, reference.Villa},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PropertyType(tt.familySize, tt.rooms); got != tt.expected {
				t.Errorf("PropertyType(%d, %d) = %s, expected %s", tt.familySize, tt.rooms, got, tt.expected)
			}
		})
	}
}

func TestPropertyTypeIsMonotonic(t *testing.T) {
	rank := map[reference.PropertyType]int{reference.Apartment: 0, reference.Duplex: 1, reference.Villa: 2}
	for rooms := 1; rooms <= 10; rooms++ {
		prev := -1
		for family := 1; family <= 20; family++ {
			r := rank[PropertyType(family, rooms)]
			if r < prev {
				t.Fatalf("rank dropped at family=%d rooms=%d", family, rooms)
			}
			prev = r
		}
	}
	for family := 1; family <= 20; family++ {
		prev := -1
		for rooms := 1; rooms <= 10; rooms++ {
			r := rank[PropertyType(family, rooms)]
			if r < prev {
				t.Fatalf("rank dropped at family=%d rooms=%d", family, rooms)
			}
			prev = r
		}
	}
}

func TestRecommendPropertyTypeBaseSize(t *testing.T) {
	catalog := reference.DefaultCatalog()

	riyadh := mustCity(t, catalog, "Riyadh")
	choice := RecommendPropertyType(catalog, riyadh, 7, 2)
	if choice.Type != reference.Villa || choice.BaseSize != 350 {
		t.Errorf("Riyadh villa = %+v, expected villa of 350 m²", choice)
	}

	dammam := mustCity(t, catalog, "Dammam")
	choice = RecommendPropertyType(catalog, dammam, 2, 1)
	if choice.Type != reference.Apartment || choice.BaseSize != 120 {
		t.Errorf("Dammam apartment = %+v, expected apartment of 120 m²", choice)
	}
}

func TestRequiredRooms(t *testing.T) {
	tests := []struct {
		familySize int
		expected   Rooms
	}{
		{1, Rooms{1, 1}},
		{2, Rooms{1, 1}},
		{3, Rooms{2, 2}},
		{4, Rooms{2, 2}},
		{5, Rooms{3, 2}},
		{6, Rooms{3, 2}},
		{7, Rooms{4, 3}},
		{8, Rooms{4, 3}},
		{9, Rooms{5, 3}},
		{20, Rooms{5, 3}},
	}

	for _, tt := range tests {
		if got := RequiredRooms(tt.familySize); got != tt.expected {
			t.Errorf("RequiredRooms(%d) = %+v, expected %+v", tt.familySize, got, tt.expected)
		}
	}
}

func TestEstimatedPrice(t *testing.T) {
	catalog := reference.DefaultCatalog()
	riyadh := mustCity(t, catalog, "Riyadh")

	tests := []struct {
		name       string
		district   string
		propType   reference.PropertyType
		expected   float64
		fromSample bool
	}{
		{"Recorded sample wins", "Al Malqa", reference.Villa, 2450000, true},
		{"Recorded apartment sample", "Al Narjis", reference.Apartment, 890000, true},
		{"Derived villa", "Al Rabwah", reference.Villa, 800000 * 0.85 * 2.2, false},
		{"Derived duplex", "Al Olaya", reference.Duplex, 800000 * 1.5 * 1.8, false},
		{"Derived studio", "Al Hamra", reference.Studio, 800000 * 0.95 * 0.6, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var district reference.District
			for _, d := range riyadh.Districts {
				if d.Name == tt.district {
					district = d
				}
			}
			got := EstimatedPrice(catalog, riyadh, district, tt.propType)
			if !mathutil.WithinTolerance(got.Price, tt.expected, constants.CurrencyTolerance) || got.FromSample != tt.fromSample {
				t.Errorf("EstimatedPrice = %+v, expected %.2f (sample=%v)", got, tt.expected, tt.fromSample)
			}
		})
	}

	baseline := CityEstimate(catalog, riyadh, reference.Villa)
	if !mathutil.WithinTolerance(baseline.Price, 800000*2.2, constants.CurrencyTolerance) || baseline.FromSample {
		t.Errorf("CityEstimate = %+v, expected %.2f", baseline, 800000*2.2)
	}
}

func TestSelectDistrict(t *testing.T) {
	catalog := reference.DefaultCatalog()
	riyadh := mustCity(t, catalog, "Riyadh")

	tests := []struct {
		name       string
		propType   reference.PropertyType
		budget     float64
		familySize int
		expected   string
	}{
		// Apartments within budget: Al Rabwah 680,000 and Al Hamra 760,000.
		{"Small household favours growth", reference.Apartment, 795700, 2, "Al Hamra"},
		// Every apartment fits; demand-weighted Al Olaya scores 8.8.
		{"Large household favours demand", reference.Apartment, 2000000, 5, "Al Olaya"},
		// Growth-weighted: Al Narjis 8.4 beats Al Malqa 8.3.
		{"Small household with large budget", reference.Apartment, 2000000, 2, "Al Narjis"},
		{"Nothing affordable", reference.Villa, 795700, 7, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectDistrict(catalog, riyadh, tt.propType, tt.budget, tt.familySize)
			if tt.expected == "" {
				if ok {
					t.Fatalf("expected no district, got %s", got.Name)
				}
				return
			}
			if !ok || got.Name != tt.expected {
				t.Errorf("SelectDistrict = %q (found=%v), expected %q", got.Name, ok, tt.expected)
			}
		})
	}
}

func TestSelectDistrictNeverExceedsBudget(t *testing.T) {
	catalog := reference.DefaultCatalog()
	for _, city := range catalog.Cities {
		for _, propType := range reference.StandardTypes {
			for budget := 100000.0; budget <= 3000000; budget += 100000 {
				for _, family := range []int{1, 3, 4, 9} {
					d, ok := SelectDistrict(catalog, city, propType, budget, family)
					if !ok {
						continue
					}
					if price := EstimatedPrice(catalog, city, d, propType).Price; price > budget {
						t.Fatalf("%s/%s %s priced %.0f above budget %.0f", city.Name, d.Name, propType, price, budget)
					}
				}
			}
		}
	}
}

func TestSelectDistrictTieKeepsTableOrder(t *testing.T) {
	catalog := reference.DefaultCatalog()
	city := reference.City{
		Name:         "Testville",
		AveragePrice: 100000,
		Districts: []reference.District{
			{Name: "First", PriceMultiplier: 1, DemandScore: 5, GrowthPotential: 5},
			{Name: "Second", PriceMultiplier: 1, DemandScore: 5, GrowthPotential: 5},
		},
	}

	for i := 0; i < 10; i++ {
		got, ok := SelectDistrict(catalog, city, reference.Apartment, 100000, 2)
		if !ok || got.Name != "First" {
			t.Fatalf("run %d: got %q, expected First", i, got.Name)
		}
	}
}

func TestOwnershipDecision(t *testing.T) {
	catalog := reference.DefaultCatalog()
	riyadh := mustCity(t, catalog, "Riyadh")   // inflation 6.5%
	dammam := mustCity(t, catalog, "Dammam")   // inflation 4.0%
	madinah := mustCity(t, catalog, "Madinah") // inflation 4.5%

	tests := []struct {
		name     string
		city     reference.City
		age      int
		budget   float64
		years    int
		expected Ownership
		triggers int
	}{
		{"No triggers", dammam, 30, 800000, 35, Buy, 0},
		{"Inflation alone", riyadh, 30, 800000, 35, Buy, 1},
		{"Inflation and shortfall", riyadh, 30, 500000, 35, Rent, 2},
		{"Age and retirement", dammam, 58, 800000, 7, Rent, 2},
		{"Age alone", madinah, 51, 600000, 14, Buy, 1},
		{"All four", riyadh, 60, 100000, 5, Rent, 4},
		{"Shortfall boundary is strict", dammam, 55, 490000, 10, Buy, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OwnershipDecision(tt.city, tt.age, tt.budget, tt.years)
			if got.Recommendation != tt.expected {
				t.Errorf("recommendation = %s, expected %s", got.Recommendation, tt.expected)
			}
			if got.Triggers != tt.triggers {
				t.Errorf("triggers = %d, expected %d", got.Triggers, tt.triggers)
			}
			if got.Recommendation == Buy {
				if len(got.Reasons) != 1 || got.Reasons[0] != BuyReason {
					t.Errorf("buy reasons = %v, expected the single default reason", got.Reasons)
				}
			} else if len(got.Reasons) != tt.triggers {
				t.Errorf("rent reasons = %d, expected %d", len(got.Reasons), tt.triggers)
			}
		})
	}
}

func TestOwnershipDecisionReasonText(t *testing.T) {
	riyadh := reference.DefaultCatalog().Cities[0]
	got := OwnershipDecision(riyadh, 60, 100000, 5)

	expected := []string{
		"Prices in Riyadh are rising 6.5% a year",
		"At 60, renting avoids taking on long-term debt",
		"A budget of SAR 100,000 is below 70.0% of the Riyadh average price of SAR 800,000",
		"With 5 years until retirement, renting keeps you flexible",
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(got.Reasons[i], prefix) {
			t.Errorf("reason %d = %q, expected prefix %q", i, got.Reasons[i], prefix)
		}
	}
}

func TestMonthlyRentAndPricePerSqm(t *testing.T) {
	if got := MonthlyRent(760000); got != 3040 {
		t.Errorf("MonthlyRent(760000) = %.2f, expected 3040", got)
	}
	if got := MonthlyRent(1234567); got != 4938 {
		t.Errorf("MonthlyRent(1234567) = %.2f, expected 4938", got)
	}

	city := reference.City{PricePerSqm: 4000}
	if got := PricePerSqm(city, reference.District{}); got != 4000 {
		t.Errorf("PricePerSqm without district = %.2f, expected 4000", got)
	}
	if got := PricePerSqm(city, reference.District{Name: "X", PriceMultiplier: 1.25}); got != 5000 {
		t.Errorf("PricePerSqm with district = %.2f, expected 5000", got)
	}
}

func TestClassifyAffordability(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected AffordabilityBand
	}{
		{0, Comfortable},
		{0.35, Comfortable},
		{0.36, Elevated},
		{0.4, Elevated},
		{0.41, HighBurden},
	}

	for _, tt := range tests {
		if got := ClassifyAffordability(tt.ratio); got != tt.expected {
			t.Errorf("ClassifyAffordability(%.2f) = %s, expected %s", tt.ratio, got, tt.expected)
		}
	}
}

func TestAssessRoomFit(t *testing.T) {
	tests := []struct {
		family   int
		rooms    int
		expected RoomFit
	}{
		{2, 2, RoomsAdequate},
		{3, 2, RoomsAdequate},
		{4, 2, RoomsTight},
		{5, 2, RoomsInsufficient},
		{7, 2, RoomsInsufficient},
	}

	for _, tt := range tests {
		if got := AssessRoomFit(tt.family, tt.rooms); got != tt.expected {
			t.Errorf("AssessRoomFit(%d, %d) = %s, expected %s", tt.family, tt.rooms, got, tt.expected)
		}
	}
}

func TestPropertyReasons(t *testing.T) {
	catalog := reference.DefaultCatalog()
	riyadh := mustCity(t, catalog, "Riyadh")
	hamra := riyadh.Districts[5]
	choice := PropertyChoice{Type: reference.Apartment, BaseSize: 120}

	reasons := PropertyReasons(riyadh, choice, Rooms{1, 1}, 2, &hamra, reference.RegionEast, 795700)
	joined := strings.Join(reasons, "\n")
	for _, want := range []string{
		"An apartment suits a household of 2",
		"Al Hamra has the best growth score",
		"close to your work area",
		"Homes in Riyadh average SAR 800,000",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("reasons missing %q:\n%s", want, joined)
		}
	}

	reasons = PropertyReasons(riyadh, choice, Rooms{1, 1}, 2, &hamra, reference.RegionNorth, 795700)
	if strings.Contains(strings.Join(reasons, "\n"), "work area") {
		t.Error("work-area reason given for a different region")
	}

	reasons = PropertyReasons(riyadh, choice, Rooms{1, 1}, 2, nil, "", 100000)
	if !strings.Contains(strings.Join(reasons, "\n"), "No district in Riyadh fits a budget of SAR 100,000") {
		t.Errorf("missing no-district reason: %v", reasons)
	}
}

func TestPreferenceNotes(t *testing.T) {
	notes := PreferenceNotes(reference.Apartment, Buy, reference.Villa, Rent)
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %v", notes)
	}
	if notes := PreferenceNotes("", Rent, reference.Villa, Rent); len(notes) != 0 {
		t.Errorf("expected no notes, got %v", notes)
	}
	if notes := PreferenceNotes(reference.Villa, Buy, reference.Villa, Buy); len(notes) != 0 {
		t.Errorf("expected no notes, got %v", notes)
	}
}

func TestRetirementNote(t *testing.T) {
	if !strings.Contains(RetirementNote(14), "cautious") {
		t.Error("expected cautious note below 15 years")
	}
	if strings.Contains(RetirementNote(15), "cautious") {
		t.Error("unexpected cautious note at 15 years")
	}
}
