// Package constants provides shared constants for the housing-budget application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 halala)
	CurrencyTolerance = 0.01
)

// Retirement policy
const (
	// RetirementAge is the age at which salary income is assumed to stop
	RetirementAge = 65

	// RetirementReplacementRatio is the share of final salary kept as pension
	RetirementReplacementRatio = 0.6
)

// Financing policy
const (
	// DebtBurdenRatio is the share of net income banks allow for repayments
	DebtBurdenRatio = 0.35

	// MaxMortgageTermYears is the longest mortgage product on offer
	MaxMortgageTermYears = 25

	// YearsPastRetirement is how long a mortgage may run past retirement age
	YearsPastRetirement = 5

	// RetirementProximityYears is the horizon below which mortgage principal is reduced
	RetirementProximityYears = 15

	// RetirementProximityBase is the reduction factor at the proximity horizon
	RetirementProximityBase = 0.95

	// RetirementProximityStep is the reduction per year inside the horizon
	RetirementProximityStep = 0.01

	// RetirementProximityFloor is the smallest reduction factor applied
	RetirementProximityFloor = 0.8

	// MortgageFallbackYears is the income multiple used when no mortgage term remains
	MortgageFallbackYears = 5

	// CashSavingYears is the longest saving horizon for a cash purchase
	CashSavingYears = 4

	// InstallmentRatePct is the fixed annual rate of direct developer installments
	InstallmentRatePct = 5.5

	// MaxInstallmentTermYears is the longest direct installment plan
	MaxInstallmentTermYears = 10

	// InstallmentFallbackYears is the income multiple used when no installment term remains
	InstallmentFallbackYears = 2
)

// Affordability bands
const (
	// HighBurdenRatio flags repayments that weigh heavily on net income
	HighBurdenRatio = 0.4

	// ElevatedBurdenRatio flags repayments that need careful spending
	ElevatedBurdenRatio = 0.35
)

// Recommendation policy
const (
	// HighInflationPct is the city price inflation that triggers an ownership note
	HighInflationPct = 5.5

	// LateCareerAge is the age above which long-term debt is discouraged
	LateCareerAge = 50

	// BudgetShortfallRatio is the share of the city average a budget must reach
	BudgetShortfallRatio = 0.7

	// NearRetirementYears is the horizon under which renting keeps flexibility
	NearRetirementYears = 10

	// RentVoteThreshold is the number of rent-favouring triggers that flips the decision
	RentVoteThreshold = 2

	// PrimaryWeight and SecondaryWeight split district scores
	PrimaryWeight   = 0.7
	SecondaryWeight = 0.3

	// SmallHouseholdSize is the largest household weighted toward growth potential
	SmallHouseholdSize = 3

	// MonthlyRentYield converts a property price into a monthly rent estimate
	MonthlyRentYield = 0.004
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024

	// DefaultCacheTTLSeconds is how long cached plans stay in Redis
	DefaultCacheTTLSeconds = 3600
)
