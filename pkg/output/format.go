// Package output provides utilities for formatting and displaying plan results.
package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/housing-budget/internal/planner"
	"github.com/iwvelando/housing-budget/pkg/format"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(results []planner.Result) {
	_ = WritePretty(os.Stdout, results, format.English)
}

// WritePretty writes one report block per result using f for amounts.
func WritePretty(w io.Writer, results []planner.Result, f *format.Formatter) error {
	if f == nil {
		f = format.English
	}
	var b strings.Builder
	for i, result := range results {
		writePlan(&b, result, f)
		if i < len(results)-1 {
			b.WriteString("\n")
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writePlan(b *strings.Builder, r planner.Result, f *format.Formatter) {
	name := r.Profile.Name
	if name == "" {
		name = r.City
	}
	budget := r.Budget
	rec := r.Recommendation

	fmt.Fprintf(b, "--- Plan for household %s ---\n", name)
	row(b, "City", r.City)
	row(b, "Net monthly income", f.Currency(r.NetIncome))
	row(b, "Years until retirement", strconv.Itoa(r.Retirement.YearsUntilRetirement))
	row(b, "Financing", strings.ReplaceAll(string(budget.Option), "_", " "))
	row(b, "Maximum budget", f.Currency(budget.MaxBudget))
	if budget.Option.Financed() {
		row(b, "Monthly payment", fmt.Sprintf("%s (%s of net income, %s)",
			f.Currency(budget.MonthlyPayment), f.Percentage(budget.AffordabilityRatio), r.AffordabilityBand))
		if budget.LoanTermYears > 0 {
			row(b, "Loan", fmt.Sprintf("%s over %d years at %s",
				f.Currency(budget.LoanAmount), budget.LoanTermYears, f.Percent(budget.InterestRatePct)))
		}
	}

	b.WriteString("Calculation steps:\n")
	for i, step := range budget.Steps {
		fmt.Fprintf(b, "  %d. %s: %s\n", i+1, step.Label, step.Explanation)
	}

	b.WriteString("Recommendation:\n")
	row(b, "  Property", fmt.Sprintf("%s, %s m², %d bedrooms / %d bathrooms",
		rec.PropertyType, f.Number(rec.PropertySize, 0), rec.Bedrooms, rec.Bathrooms))
	if rec.District != nil {
		row(b, "  District", fmt.Sprintf("%s (%s)", rec.District.Name, rec.District.Region))
	} else {
		row(b, "  District", "none within budget")
	}
	price := f.Currency(rec.EstimatedPrice)
	if rec.PriceFromSample {
		price += " (recorded sample)"
	}
	row(b, "  Estimated price", price)
	row(b, "  Price per m²", f.Currency(rec.PricePerSqm))
	row(b, "  Monthly rent", f.Currency(rec.MonthlyRentEstimate))
	row(b, "  Ownership", string(rec.Ownership))
	row(b, "  Affordable", yesNo(r.IsAffordable))
	row(b, "  Room fit", string(r.RoomFit))

	list(b, "Reasons", append(append([]string(nil), rec.Reasons...), rec.PropertyReasons...))
	list(b, "Notes", r.Notes)
}

func row(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-24s | %s\n", label, value)
}

func list(b *strings.Builder, title string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "%s:\n", title)
	for _, item := range items {
		fmt.Fprintf(b, "  - %s\n", item)
	}
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

var csvHeader = []string{
	"household", "city", "financing", "net income", "max budget", "monthly payment",
	"affordability ratio", "affordability band", "property type", "property size",
	"bedrooms", "bathrooms", "district", "estimated price", "monthly rent",
	"ownership", "affordable", "notes",
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(results []planner.Result) {
	fmt.Print(CsvString(results))
}

// CsvString renders the CSV output as a string, one row per result.
func CsvString(results []planner.Result) string {
	var buf bytes.Buffer
	_ = WriteCSV(&buf, results)
	return buf.String()
}

// WriteCSV writes the header and one row per result.
func WriteCSV(w io.Writer, results []planner.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range results {
		district := ""
		if r.Recommendation.District != nil {
			district = r.Recommendation.District.Name
		}
		record := []string{
			r.Profile.Name,
			r.City,
			string(r.Budget.Option),
			money(r.NetIncome),
			money(r.Budget.MaxBudget),
			money(r.Budget.MonthlyPayment),
			strconv.FormatFloat(r.Budget.AffordabilityRatio, 'f', 4, 64),
			string(r.AffordabilityBand),
			string(r.Recommendation.PropertyType),
			money(r.Recommendation.PropertySize),
			strconv.Itoa(r.Recommendation.Bedrooms),
			strconv.Itoa(r.Recommendation.Bathrooms),
			district,
			money(r.Recommendation.EstimatedPrice),
			money(r.Recommendation.MonthlyRentEstimate),
			string(r.Recommendation.Ownership),
			strconv.FormatBool(r.IsAffordable),
			strings.Join(r.Notes, "; "),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// JSONFormat outputs the results as an indented JSON array.
func JSONFormat(results []planner.Result) {
	_ = WriteJSON(os.Stdout, results)
}

// WriteJSON writes the results as an indented JSON array.
func WriteJSON(w io.Writer, results []planner.Result) error {
	if results == nil {
		results = []planner.Result{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
