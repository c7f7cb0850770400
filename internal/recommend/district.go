package recommend

import (
	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
)

// DistrictScore weighs a district for a household. Small households lean on
// growth potential, larger ones on current demand and amenities.
func DistrictScore(district reference.District, familySize int) float64 {
	if familySize <= constants.SmallHouseholdSize {
		return constants.PrimaryWeight*district.GrowthPotential + constants.SecondaryWeight*district.DemandScore
	}
	return constants.PrimaryWeight*district.DemandScore + constants.SecondaryWeight*district.GrowthPotential
}

// SelectDistrict returns the best-scoring district of the city whose price
// for the property type fits the budget. Ties go to the district listed
// first. The boolean is false when no district is affordable, which is not
// an error.
func SelectDistrict(catalog reference.Catalog, city reference.City, t reference.PropertyType, budget float64, familySize int) (reference.District, bool) {
	var (
		best      reference.District
		bestScore float64
		found     bool
	)
	for _, district := range city.Districts {
		if EstimatedPrice(catalog, city, district, t).Price > budget {
			continue
		}
		score := DistrictScore(district, familySize)
		if !found || score > bestScore {
			best, bestScore, found = district, score, true
		}
	}
	return best, found
}
