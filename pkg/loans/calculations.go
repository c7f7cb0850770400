// Package loans provides common loan processing utilities.
package loans

import (
	"math"

	"github.com/iwvelando/housing-budget/pkg/constants"
)

// Summary holds the repayment totals of a fully amortized loan.
type Summary struct {
	Principal      float64
	MonthlyPayment float64
	TotalPaid      float64
	TotalInterest  float64
	TermMonths     int
}

// PeriodicRate converts an annual percentage rate into a monthly fraction.
func PeriodicRate(annualInterestRate float64) float64 {
	return annualInterestRate / (constants.PercentageMultiplier * constants.MonthsPerYear)
}

// CalculateMonthlyPayment calculates the monthly payment for a loan using the standard amortization formula.
func CalculateMonthlyPayment(principal, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 || principal <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		// For zero interest, simply divide the principal by term
		return principal / float64(termMonths)
	}
	periodicInterestRate := PeriodicRate(annualInterestRate)
	power := math.Pow((1.00 + periodicInterestRate), float64(termMonths))
	discountFactor := (power - 1.00) / power
	return principal * periodicInterestRate / discountFactor
}

// CalculateMaxPrincipal is the inverse of CalculateMonthlyPayment: the largest
// principal a fixed monthly payment can amortize over termMonths, i.e. the
// present value of an ordinary annuity.
func CalculateMaxPrincipal(monthlyPayment, annualInterestRate float64, termMonths int) float64 {
	if termMonths <= 0 || monthlyPayment <= 0 {
		return 0
	}
	if annualInterestRate == 0 {
		return monthlyPayment * float64(termMonths)
	}
	periodicInterestRate := PeriodicRate(annualInterestRate)
	return monthlyPayment * (1.00 - math.Pow(1.00+periodicInterestRate, -float64(termMonths))) / periodicInterestRate
}

// Summarize computes the repayment totals for a loan.
func Summarize(principal, annualInterestRate float64, termMonths int) Summary {
	payment := CalculateMonthlyPayment(principal, annualInterestRate, termMonths)
	totalPaid := payment * float64(termMonths)
	interest := totalPaid - principal
	if interest < 0 {
		interest = 0
	}
	return Summary{
		Principal:      principal,
		MonthlyPayment: payment,
		TotalPaid:      totalPaid,
		TotalInterest:  interest,
		TermMonths:     termMonths,
	}
}
