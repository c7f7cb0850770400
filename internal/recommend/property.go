// Package recommend turns a budget into a housing recommendation: the kind
// and size of property, the district to look in, and whether to buy or rent.
package recommend

import (
	"fmt"

	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/format"
	"github.com/iwvelando/housing-budget/pkg/mathutil"
)

// PropertyChoice is the recommended property type with its typical size.
type PropertyChoice struct {
	Type     reference.PropertyType `json:"propertyType"`
	BaseSize float64                `json:"baseSize"`
}

// Rooms is the bedroom and bathroom count suited to a household.
type Rooms struct {
	Bedrooms  int `json:"bedrooms"`
	Bathrooms int `json:"bathrooms"`
}

// Estimate is a property price and where it came from.
type Estimate struct {
	Price      float64 `json:"price"`
	FromSample bool    `json:"fromSample"`
}

// PropertyType picks the property type from household size and room count.
// Either threshold alone is enough to move up a category.
func PropertyType(familySize, requiredRooms int) reference.PropertyType {
	switch {
	case familySize >= 6 || requiredRooms >= 4:
		return reference.Villa
	case familySize >= 4 || requiredRooms >= 3:
		return reference.Duplex
	default:
		return reference.Apartment
	}
}

// RecommendPropertyType picks the property type and looks up its base size
// for the city.
func RecommendPropertyType(catalog reference.Catalog, city reference.City, familySize, requiredRooms int) PropertyChoice {
	t := PropertyType(familySize, requiredRooms)
	return PropertyChoice{Type: t, BaseSize: catalog.BaseSize(city, t)}
}

// RequiredRooms maps a household size onto a bedroom and bathroom count.
func RequiredRooms(familySize int) Rooms {
	switch {
	case familySize <= 2:
		return Rooms{Bedrooms: 1, Bathrooms: 1}
	case familySize <= 4:
		return Rooms{Bedrooms: 2, Bathrooms: 2}
	case familySize <= 6:
		return Rooms{Bedrooms: 3, Bathrooms: 2}
	case familySize <= 8:
		return Rooms{Bedrooms: 4, Bathrooms: 3}
	default:
		return Rooms{Bedrooms: 5, Bathrooms: 3}
	}
}

// EstimatedPrice prices a property type in a district. A recorded sample for
// the exact (city, district, type) wins over the derived figure of city
// average × district multiplier × type multiplier. A zero-value district
// prices at the city average.
func EstimatedPrice(catalog reference.Catalog, city reference.City, district reference.District, t reference.PropertyType) Estimate {
	if district.Name != "" {
		if price, ok := catalog.Sample(city.Name, district.Name, t); ok {
			return Estimate{Price: price, FromSample: true}
		}
	}
	multiplier := district.PriceMultiplier
	if district.Name == "" || multiplier <= 0 {
		multiplier = 1
	}
	spec, _ := catalog.PropertyType(t)
	return Estimate{Price: city.AveragePrice * multiplier * spec.PriceMultiplier}
}

// CityEstimate prices a property type at the city average, before any
// district is chosen.
func CityEstimate(catalog reference.Catalog, city reference.City, t reference.PropertyType) Estimate {
	return EstimatedPrice(catalog, city, reference.District{}, t)
}

// MonthlyRent estimates the monthly rent for a property of the given price.
func MonthlyRent(price float64) float64 {
	return mathutil.RoundWhole(price * constants.MonthlyRentYield)
}

// PricePerSqm is the city's per-metre price scaled by the district multiplier.
func PricePerSqm(city reference.City, district reference.District) float64 {
	if district.Name == "" || district.PriceMultiplier <= 0 {
		return city.PricePerSqm
	}
	return city.PricePerSqm * district.PriceMultiplier
}

// PropertyReasons explains the property part of a recommendation.
func PropertyReasons(city reference.City, choice PropertyChoice, rooms Rooms, familySize int, district *reference.District, workRegion string, budget float64) []string {
	reasons := []string{
		fmt.Sprintf("%s %s suits a household of %d", article(choice.Type), choice.Type, familySize),
		fmt.Sprintf("About %.0f m² with %d bedrooms and %d bathrooms", choice.BaseSize, rooms.Bedrooms, rooms.Bathrooms),
	}

	if district == nil {
		reasons = append(reasons, fmt.Sprintf("No district in %s fits a budget of %s for a %s",
			city.Name, format.Currency(budget), choice.Type))
	} else {
		focus := "demand"
		if familySize <= constants.SmallHouseholdSize {
			focus = "growth"
		}
		reasons = append(reasons, fmt.Sprintf("%s has the best %s score among districts within budget", district.Name, focus))
		if workRegion != "" && district.Region != "" && district.Region == workRegion {
			reasons = append(reasons, fmt.Sprintf("%s is in the %s of %s, close to your work area", district.Name, district.Region, city.Name))
		}
	}

	reasons = append(reasons, fmt.Sprintf("Homes in %s average %s", city.Name, format.Currency(city.AveragePrice)))
	return reasons
}

func article(t reference.PropertyType) string {
	if t == reference.Apartment {
		return "An"
	}
	return "A"
}
