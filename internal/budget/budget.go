// Package budget derives a household's purchasing budget from its income,
// age and chosen financing option. Every function here is a pure computation;
// the arithmetic stages of MaxBudget are recorded as CalculationSteps so the
// result can be explained line by line.
package budget

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iwvelando/housing-budget/pkg/constants"
	"github.com/iwvelando/housing-budget/pkg/format"
	"github.com/iwvelando/housing-budget/pkg/loans"
	"github.com/iwvelando/housing-budget/pkg/mathutil"
)

// ErrInvalidInput marks arguments outside their documented ranges.
var ErrInvalidInput = errors.New("invalid input")

// FinancingOption is how the purchase is paid for.
type FinancingOption string

const (
	Cash              FinancingOption = "cash"
	Mortgage          FinancingOption = "mortgage"
	DirectInstallment FinancingOption = "direct_installment"
)

// FinancingOptions lists every supported option.
var FinancingOptions = []FinancingOption{Cash, Mortgage, DirectInstallment}

// ParseFinancingOption accepts the canonical option names, ignoring case.
func ParseFinancingOption(s string) (FinancingOption, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for _, opt := range FinancingOptions {
		if string(opt) == normalized {
			return opt, nil
		}
	}
	return "", fmt.Errorf("%w: unsupported financing option %q", ErrInvalidInput, s)
}

// Financed reports whether the option involves borrowing.
func (f FinancingOption) Financed() bool {
	return f == Mortgage || f == DirectInstallment
}

// CalculationStep documents one arithmetic stage of a budget computation.
type CalculationStep struct {
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Explanation string  `json:"explanation"`
}

// Retirement holds the income projection up to retirement.
type Retirement struct {
	YearsUntilRetirement int     `json:"yearsUntilRetirement"`
	PreRetirementIncome  float64 `json:"preRetirementIncome"`
	PostRetirementIncome float64 `json:"postRetirementIncome"`
	// TotalPreRetirementIncome approximates the income earned until retirement
	// by averaging the current and final monthly income. It is a linear
	// approximation, not the exact sum of the compounded series.
	TotalPreRetirementIncome float64 `json:"totalPreRetirementIncome"`
}

// Inputs are the figures MaxBudget works from.
type Inputs struct {
	NetIncome         float64
	Age               int
	SalaryIncreasePct float64
	MortgageRatePct   float64
	Option            FinancingOption
}

// Result is the outcome of a budget computation.
type Result struct {
	Option             FinancingOption   `json:"financingOption"`
	MaxBudget          float64           `json:"maxBudget"`
	MonthlyPayment     float64           `json:"monthlyPayment"`
	AffordabilityRatio float64           `json:"affordabilityRatio"`
	LoanAmount         float64           `json:"loanAmount"`
	LoanTermYears      int               `json:"loanTermYears"`
	InterestRatePct    float64           `json:"interestRatePct"`
	TotalInterest      float64           `json:"totalInterest"`
	Steps              []CalculationStep `json:"steps"`
}

// NetIncome is monthly income minus fixed obligations, never negative.
func NetIncome(income, obligations float64) float64 {
	net := income - obligations
	if net < 0 {
		return 0
	}
	return net
}

// YearsUntilRetirement is the number of working years left before the
// retirement age, never negative.
func YearsUntilRetirement(age int) int {
	return mathutil.MaxInt(0, constants.RetirementAge-age)
}

// RetirementImpact projects net income forward to retirement.
func RetirementImpact(age int, netIncome, salaryIncreasePct float64) Retirement {
	years := YearsUntilRetirement(age)
	pre := mathutil.Compound(netIncome, salaryIncreasePct, years)
	return Retirement{
		YearsUntilRetirement:     years,
		PreRetirementIncome:      pre,
		PostRetirementIncome:     pre * constants.RetirementReplacementRatio,
		TotalPreRetirementIncome: (netIncome + pre) / 2 * constants.MonthsPerYear * float64(years),
	}
}

// MortgagePayment is the level monthly payment that amortizes loanAmount
// over termYears at annualRatePct.
func MortgagePayment(loanAmount, annualRatePct float64, termYears int) float64 {
	return loans.CalculateMonthlyPayment(loanAmount, annualRatePct, termYears*constants.MonthsPerYear)
}

// RetirementProximityFactor scales a mortgage down when fewer than
// RetirementProximityYears remain before retirement. It returns 1 otherwise.
func RetirementProximityFactor(yearsUntilRetirement int) float64 {
	if yearsUntilRetirement >= constants.RetirementProximityYears {
		return 1
	}
	factor := constants.RetirementProximityBase -
		constants.RetirementProximityStep*float64(constants.RetirementProximityYears-yearsUntilRetirement)
	if factor < constants.RetirementProximityFloor {
		return constants.RetirementProximityFloor
	}
	return factor
}

// Validate checks the inputs against their documented ranges.
func (in Inputs) Validate() error {
	switch {
	case in.NetIncome < 0:
		return fmt.Errorf("%w: net income %.2f is negative", ErrInvalidInput, in.NetIncome)
	case in.Age < 18 || in.Age > 90:
		return fmt.Errorf("%w: age %d outside 18-90", ErrInvalidInput, in.Age)
	case in.SalaryIncreasePct < 0 || in.SalaryIncreasePct > 20:
		return fmt.Errorf("%w: salary increase %.2f%% outside 0-20", ErrInvalidInput, in.SalaryIncreasePct)
	case in.MortgageRatePct < 0 || in.MortgageRatePct > 15:
		return fmt.Errorf("%w: mortgage rate %.2f%% outside 0-15", ErrInvalidInput, in.MortgageRatePct)
	}
	return nil
}

// MaxBudget computes the largest purchase the household can fund with the
// chosen financing option.
func MaxBudget(in Inputs) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	var log stepLog
	retirement := RetirementImpact(in.Age, in.NetIncome, in.SalaryIncreasePct)

	log.add("Net monthly income", in.NetIncome,
		"Monthly income after fixed obligations: %s", format.Currency(in.NetIncome))
	log.add("Years until retirement", float64(retirement.YearsUntilRetirement),
		"Retirement age %d minus current age %d, not below zero", constants.RetirementAge, in.Age)
	log.add("Projected income at retirement", retirement.PreRetirementIncome,
		"Net income growing %s a year for %d years: %s",
		format.English.Percent(in.SalaryIncreasePct), retirement.YearsUntilRetirement,
		format.Currency(retirement.PreRetirementIncome))

	var result Result
	switch in.Option {
	case Mortgage:
		result = mortgageBudget(in, retirement.YearsUntilRetirement, &log)
	case Cash:
		result = cashBudget(in, retirement.YearsUntilRetirement, &log)
	case DirectInstallment:
		result = installmentBudget(in, retirement.YearsUntilRetirement, &log)
	default:
		return Result{}, fmt.Errorf("%w: unsupported financing option %q", ErrInvalidInput, in.Option)
	}

	result.Option = in.Option
	result.AffordabilityRatio = mathutil.SafeRatio(result.MonthlyPayment, in.NetIncome)
	result.Steps = log.done()
	return result, nil
}

func mortgageBudget(in Inputs, years int, log *stepLog) Result {
	payment := in.NetIncome * constants.DebtBurdenRatio
	log.add("Maximum monthly payment", payment,
		"%s of net income, the bank debt-burden cap: %s",
		format.Percentage(constants.DebtBurdenRatio), format.Currency(payment))

	term := mathutil.MinInt(constants.MaxMortgageTermYears, years+constants.YearsPastRetirement)
	log.add("Loan term", float64(term),
		"Shorter of the %d-year product maximum and %d years past retirement: %d years",
		constants.MaxMortgageTermYears, constants.YearsPastRetirement, term)

	if term <= 0 {
		maxBudget := in.NetIncome * constants.MonthsPerYear * constants.MortgageFallbackYears
		log.add("Maximum budget", maxBudget,
			"No mortgage term remains, so the budget is %d years of net income: %s",
			constants.MortgageFallbackYears, format.Currency(maxBudget))
		return Result{MaxBudget: maxBudget, InterestRatePct: in.MortgageRatePct}
	}

	termMonths := term * constants.MonthsPerYear
	loan := loans.CalculateMaxPrincipal(payment, in.MortgageRatePct, termMonths)
	log.add("Maximum loan amount", loan,
		"Present value of %s a month over %d months at %s: %s",
		format.Currency(payment), termMonths, format.English.Percent(in.MortgageRatePct), format.Currency(loan))

	if years < constants.RetirementProximityYears {
		factor := RetirementProximityFactor(years)
		log.add("Retirement proximity factor", factor,
			"%.2f less %.2f for each of the %d years short of %d, floored at %.2f: %.2f",
			constants.RetirementProximityBase, constants.RetirementProximityStep,
			constants.RetirementProximityYears-years, constants.RetirementProximityYears,
			constants.RetirementProximityFloor, factor)
		loan *= factor
		log.add("Adjusted loan amount", loan,
			"Loan amount reduced for retirement proximity: %s", format.Currency(loan))
	}

	log.add("Maximum budget", loan,
		"Financed purchase ceiling: %s", format.Currency(loan))

	return Result{
		MaxBudget:       loan,
		MonthlyPayment:  payment,
		LoanAmount:      loan,
		LoanTermYears:   term,
		InterestRatePct: in.MortgageRatePct,
		TotalInterest:   loans.Summarize(loan, in.MortgageRatePct, termMonths).TotalInterest,
	}
}

func cashBudget(in Inputs, years int, log *stepLog) Result {
	savings := in.NetIncome * constants.DebtBurdenRatio
	log.add("Monthly savings", savings,
		"%s of net income set aside each month: %s",
		format.Percentage(constants.DebtBurdenRatio), format.Currency(savings))

	savingYears := mathutil.MinInt(years, constants.CashSavingYears)
	log.add("Saving period", float64(savingYears),
		"Shorter of %d years and the years until retirement: %d years",
		constants.CashSavingYears, savingYears)

	maxBudget := savings * constants.MonthsPerYear * float64(savingYears)
	log.add("Maximum budget", maxBudget,
		"%s a month saved for %d years: %s",
		format.Currency(savings), savingYears, format.Currency(maxBudget))

	return Result{MaxBudget: maxBudget}
}

func installmentBudget(in Inputs, years int, log *stepLog) Result {
	payment := in.NetIncome * constants.DebtBurdenRatio
	log.add("Maximum monthly installment", payment,
		"%s of net income: %s",
		format.Percentage(constants.DebtBurdenRatio), format.Currency(payment))

	term := mathutil.MinInt(constants.MaxInstallmentTermYears, years)
	log.add("Installment term", float64(term),
		"Shorter of the %d-year plan maximum and the years until retirement: %d years",
		constants.MaxInstallmentTermYears, term)

	if term <= 0 {
		maxBudget := in.NetIncome * constants.MonthsPerYear * constants.InstallmentFallbackYears
		log.add("Maximum budget", maxBudget,
			"No installment term remains, so the budget is %d years of net income: %s",
			constants.InstallmentFallbackYears, format.Currency(maxBudget))
		return Result{MaxBudget: maxBudget, InterestRatePct: constants.InstallmentRatePct}
	}

	termMonths := term * constants.MonthsPerYear
	financed := loans.CalculateMaxPrincipal(payment, constants.InstallmentRatePct, termMonths)
	log.add("Maximum financed amount", financed,
		"Present value of %s a month over %d months at the fixed %s installment rate: %s",
		format.Currency(payment), termMonths, format.English.Percent(constants.InstallmentRatePct),
		format.Currency(financed))

	log.add("Maximum budget", financed,
		"Installment purchase ceiling: %s", format.Currency(financed))

	return Result{
		MaxBudget:       financed,
		MonthlyPayment:  payment,
		LoanAmount:      financed,
		LoanTermYears:   term,
		InterestRatePct: constants.InstallmentRatePct,
		TotalInterest:   loans.Summarize(financed, constants.InstallmentRatePct, termMonths).TotalInterest,
	}
}
