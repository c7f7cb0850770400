package recommend

import "github.com/iwvelando/housing-budget/internal/reference"

// Recommendation is the property and location advice for one household.
type Recommendation struct {
	PropertyType        reference.PropertyType `json:"propertyType"`
	PropertySize        float64                `json:"propertySize"`
	Bedrooms            int                    `json:"bedrooms"`
	Bathrooms           int                    `json:"bathrooms"`
	EstimatedPrice      float64                `json:"estimatedPrice"`
	PriceFromSample     bool                   `json:"priceFromSample"`
	PricePerSqm         float64                `json:"pricePerSqm"`
	MonthlyRentEstimate float64                `json:"monthlyRentEstimate"`
	District            *reference.District    `json:"district,omitempty"`
	Ownership           Ownership              `json:"ownership"`
	Reasons             []string               `json:"reasons"`
	PropertyReasons     []string               `json:"propertyReasons"`
}

// DistrictName returns the recommended district's name, or "" when none fits.
func (r Recommendation) DistrictName() string {
	if r.District == nil {
		return ""
	}
	return r.District.Name
}
