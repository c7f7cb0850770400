// Package config defines the data structures related to configuration and
// includes functions for loading and converting household batches.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/iwvelando/housing-budget/internal/reference"
	"github.com/iwvelando/housing-budget/internal/storage"
	"github.com/iwvelando/housing-budget/pkg/validation"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for housing-budget.
type Configuration struct {
	Logging    LoggingConfig   `yaml:"logging,omitempty"`
	Output     OutputConfig    `yaml:"output,omitempty"`
	Reference  ReferenceConfig `yaml:"reference,omitempty"`
	Households []Household     `yaml:"households"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// ReferenceConfig points at optional replacements for the built-in market tables.
type ReferenceConfig struct {
	CatalogFile    string `yaml:"catalogFile,omitempty"`
	PriceSamplesDB string `yaml:"priceSamplesDB,omitempty"`
}

// Household is one named submission in a batch. Financing options, property
// types and ownership preferences may use their Arabic or English display
// names.
type Household struct {
	Name                   string  `yaml:"name" json:"name"`
	Active                 bool    `yaml:"active" json:"active"`
	MonthlyIncome          float64 `yaml:"monthlyIncome" json:"monthlyIncome"`
	MonthlyObligations     float64 `yaml:"monthlyObligations" json:"monthlyObligations"`
	Age                    int     `yaml:"age" json:"age"`
	FamilySize             int     `yaml:"familySize" json:"familySize"`
	RequiredRooms          int     `yaml:"requiredRooms" json:"requiredRooms"`
	ExpectedSalaryIncrease float64 `yaml:"expectedSalaryIncrease" json:"expectedSalaryIncrease"`
	City                   string  `yaml:"city" json:"city"`
	WorkRegion             string  `yaml:"workRegion,omitempty" json:"workRegion,omitempty"`
	FinancingOption        string  `yaml:"financingOption" json:"financingOption"`
	MortgageInterestRate   float64 `yaml:"mortgageInterestRate" json:"mortgageInterestRate"`
	PreferredPropertyType  string  `yaml:"preferredPropertyType,omitempty" json:"preferredPropertyType,omitempty"`
	OwnershipPreference    string  `yaml:"ownershipPreference,omitempty" json:"ownershipPreference,omitempty"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// ActiveHouseholds returns the households marked active, in file order.
func (c *Configuration) ActiveHouseholds() []Household {
	var active []Household
	for _, h := range c.Households {
		if h.Active {
			active = append(active, h)
		}
	}
	return active
}

// LoadCatalog returns the configured market tables.
func (c *Configuration) LoadCatalog() (reference.Catalog, error) {
	return c.Reference.LoadCatalog()
}

// LoadCatalog returns the built-in tables, or the YAML override named by
// catalogFile, with any price samples recorded in priceSamplesDB merged in.
func (r ReferenceConfig) LoadCatalog() (reference.Catalog, error) {
	catalog := reference.DefaultCatalog()
	if path := strings.TrimSpace(r.CatalogFile); path != "" {
		loaded, err := reference.LoadCatalog(path)
		if err != nil {
			return reference.Catalog{}, err
		}
		catalog = loaded
	}

	dbPath := strings.TrimSpace(r.PriceSamplesDB)
	if dbPath == "" {
		return catalog, nil
	}

	store, err := storage.OpenSQLite(dbPath)
	if err != nil {
		return reference.Catalog{}, err
	}
	defer func() {
		_ = store.Close()
	}()

	if err := store.EnsureSchema(); err != nil {
		return reference.Catalog{}, err
	}
	return store.MergeInto(catalog)
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	households := make([]validation.HouseholdConfig, 0, len(c.Households))
	for _, h := range c.Households {
		preferred := strings.TrimSpace(h.PreferredPropertyType)
		_, known := ParsePropertyType(preferred)
		financing := ""
		if opt, err := ParseFinancingOption(h.FinancingOption); err == nil {
			financing = string(opt)
		}

		households = append(households, validation.HouseholdConfig{
			Name:          h.Name,
			Active:        h.Active,
			Income:        h.MonthlyIncome,
			Obligations:   h.MonthlyObligations,
			Age:           h.Age,
			FamilySize:    h.FamilySize,
			RequiredRooms: h.RequiredRooms,
			Financing:     financing,
			PreferredType: preferred,
			KnownType:     known,
		})
	}

	validator := validation.ConfigValidator{Households: households}
	return validator.ValidateAll()
}
