// Package reference holds the static housing market tables the planner reads:
// cities with their districts, the property-type catalog and any recorded
// price samples. Tables are plain records so they can be swapped for
// synthetic data in tests or overridden from a YAML file.
package reference

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCity is returned when a city is not present in the catalog.
var ErrUnknownCity = errors.New("unknown city")

// PropertyType is a kind of dwelling.
type PropertyType string

const (
	Apartment PropertyType = "apartment"
	Duplex    PropertyType = "duplex"
	Villa     PropertyType = "villa"
	Studio    PropertyType = "studio"
)

// StandardTypes are the property types every catalog must price.
var StandardTypes = []PropertyType{Apartment, Duplex, Villa, Studio}

// ParsePropertyType accepts the canonical type names, ignoring case.
func ParsePropertyType(s string) (PropertyType, bool) {
	normalized := PropertyType(strings.ToLower(strings.TrimSpace(s)))
	for _, t := range StandardTypes {
		if t == normalized {
			return t, true
		}
	}
	return "", false
}

// District is a neighbourhood inside a city.
type District struct {
	Name            string  `yaml:"name" json:"name"`
	ArabicName      string  `yaml:"arabicName" json:"arabicName,omitempty"`
	Region          string  `yaml:"region" json:"region,omitempty"`
	PriceMultiplier float64 `yaml:"priceMultiplier" json:"priceMultiplier"`
	DemandScore     float64 `yaml:"demandScore" json:"demandScore"`
	GrowthPotential float64 `yaml:"growthPotential" json:"growthPotential"`
}

// City holds market figures for one city.
type City struct {
	Name             string                   `yaml:"name" json:"name"`
	ArabicName       string                   `yaml:"arabicName" json:"arabicName,omitempty"`
	AveragePrice     float64                  `yaml:"averagePrice" json:"averagePrice"`
	AverageRent      float64                  `yaml:"averageRent" json:"averageRent"`
	PricePerSqm      float64                  `yaml:"pricePerSqm" json:"pricePerSqm"`
	InflationRatePct float64                  `yaml:"inflationRatePct" json:"inflationRatePct"`
	Regions          []string                 `yaml:"regions" json:"regions,omitempty"`
	BaseSizes        map[PropertyType]float64 `yaml:"baseSizes" json:"baseSizes,omitempty"`
	Districts        []District               `yaml:"districts" json:"districts"`
}

// PropertyTypeSpec describes one entry of the property-type catalog.
type PropertyTypeSpec struct {
	Type            PropertyType `yaml:"type" json:"type"`
	ArabicName      string       `yaml:"arabicName" json:"arabicName,omitempty"`
	PriceMultiplier float64      `yaml:"priceMultiplier" json:"priceMultiplier"`
	BaseSize        float64      `yaml:"baseSize" json:"baseSize"`
}

// PriceSample is an observed price for a property type in a district.
type PriceSample struct {
	City         string       `yaml:"city" json:"city"`
	District     string       `yaml:"district" json:"district"`
	PropertyType PropertyType `yaml:"propertyType" json:"propertyType"`
	Price        float64      `yaml:"price" json:"price"`
}

// Catalog is the complete set of reference tables.
type Catalog struct {
	Cities        []City             `yaml:"cities" json:"cities"`
	PropertyTypes []PropertyTypeSpec `yaml:"propertyTypes" json:"propertyTypes"`
	PriceSamples  []PriceSample      `yaml:"priceSamples" json:"priceSamples,omitempty"`
}

// City looks a city up by its English or Arabic name.
func (c Catalog) City(name string) (City, error) {
	trimmed := strings.TrimSpace(name)
	for _, city := range c.Cities {
		if strings.EqualFold(city.Name, trimmed) || (city.ArabicName != "" && city.ArabicName == trimmed) {
			return city, nil
		}
	}
	return City{}, fmt.Errorf("%w: %q", ErrUnknownCity, name)
}

// CityNames lists the catalog's cities in table order.
func (c Catalog) CityNames() []string {
	names := make([]string, 0, len(c.Cities))
	for _, city := range c.Cities {
		names = append(names, city.Name)
	}
	return names
}

// PropertyType returns the catalog entry for a property type.
func (c Catalog) PropertyType(t PropertyType) (PropertyTypeSpec, bool) {
	for _, spec := range c.PropertyTypes {
		if spec.Type == t {
			return spec, true
		}
	}
	return PropertyTypeSpec{}, false
}

// BaseSize returns the typical floor area of a property type in a city, using
// the city's override when present.
func (c Catalog) BaseSize(city City, t PropertyType) float64 {
	if size, ok := city.BaseSizes[t]; ok && size > 0 {
		return size
	}
	if spec, ok := c.PropertyType(t); ok {
		return spec.BaseSize
	}
	return 0
}

// Sample returns the recorded price for an exact (city, district, type) match.
func (c Catalog) Sample(city, district string, t PropertyType) (float64, bool) {
	for _, s := range c.PriceSamples {
		if strings.EqualFold(s.City, city) && strings.EqualFold(s.District, district) && s.PropertyType == t {
			return s.Price, true
		}
	}
	return 0, false
}

// WithSamples returns a copy of the catalog with extra price samples. Later
// samples replace earlier ones for the same (city, district, type).
func (c Catalog) WithSamples(samples []PriceSample) Catalog {
	merged := make([]PriceSample, 0, len(c.PriceSamples)+len(samples))
	for _, existing := range c.PriceSamples {
		replaced := false
		for _, s := range samples {
			if strings.EqualFold(s.City, existing.City) && strings.EqualFold(s.District, existing.District) &&
				s.PropertyType == existing.PropertyType {
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, existing)
		}
	}
	merged = append(merged, samples...)
	c.PriceSamples = merged
	return c
}

// HasRegion reports whether the region belongs to the city.
func (city City) HasRegion(region string) bool {
	for _, r := range city.Regions {
		if strings.EqualFold(r, strings.TrimSpace(region)) {
			return true
		}
	}
	return false
}

// Validate checks that the catalog's figures are within their documented ranges.
func (c Catalog) Validate() error {
	if len(c.Cities) == 0 {
		return errors.New("catalog has no cities")
	}
	if len(c.PropertyTypes) == 0 {
		return errors.New("catalog has no property types")
	}
	for _, spec := range c.PropertyTypes {
		if spec.PriceMultiplier <= 0 {
			return fmt.Errorf("property type %s: price multiplier must be positive", spec.Type)
		}
	}
	for _, t := range StandardTypes {
		if _, ok := c.PropertyType(t); !ok {
			return fmt.Errorf("catalog is missing property type %s", t)
		}
	}
	seen := make(map[string]struct{}, len(c.Cities))
	for _, city := range c.Cities {
		key := strings.ToLower(city.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("city %s listed twice", city.Name)
		}
		seen[key] = struct{}{}
		if city.AveragePrice <= 0 {
			return fmt.Errorf("city %s: average price must be positive", city.Name)
		}
		for _, d := range city.Districts {
			if d.PriceMultiplier <= 0 {
				return fmt.Errorf("city %s district %s: price multiplier must be positive", city.Name, d.Name)
			}
			if d.DemandScore < 1 || d.DemandScore > 10 {
				return fmt.Errorf("city %s district %s: demand score %.1f outside 1-10", city.Name, d.Name, d.DemandScore)
			}
			if d.GrowthPotential < 1 || d.GrowthPotential > 10 {
				return fmt.Errorf("city %s district %s: growth potential %.1f outside 1-10", city.Name, d.Name, d.GrowthPotential)
			}
		}
	}
	for _, s := range c.PriceSamples {
		if s.Price <= 0 {
			return fmt.Errorf("price sample %s/%s/%s: price must be positive", s.City, s.District, s.PropertyType)
		}
	}
	return nil
}
