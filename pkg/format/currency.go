// Package format renders riyal amounts and percentages for display.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RiyalSymbol is the Arabic abbreviation of the Saudi riyal.
const RiyalSymbol = "ر.س"

// Formatter renders amounts for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns a Formatter for the given locale tag.
func New(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// English is the formatter used by the CLI and logs.
var English = New(language.English)

// Arabic is the formatter used for Arabic display.
var Arabic = New(language.Arabic)

// Currency returns a whole-riyal amount with thousands separators, e.g.
// "SAR 1,234,567" in English and "1,234,567 ر.س" in Arabic.
func (f *Formatter) Currency(amount float64) string {
	rounded := math.Round(amount)
	if base, _ := f.tag.Base(); base.String() == "ar" {
		return f.printer.Sprintf("%.0f %s", rounded, RiyalSymbol)
	}
	if rounded < 0 {
		return f.printer.Sprintf("-SAR %.0f", -rounded)
	}
	return f.printer.Sprintf("SAR %.0f", rounded)
}

// Percentage renders a ratio (0.35) as a percentage with one decimal ("35.0%").
func (f *Formatter) Percentage(ratio float64) string {
	return f.printer.Sprintf("%.1f%%", ratio*100)
}

// Percent renders a value already expressed in percent (4.5) as "4.5%".
func (f *Formatter) Percent(pct float64) string {
	return f.printer.Sprintf("%.1f%%", pct)
}

// Number renders a plain number with grouping and the given decimals.
func (f *Formatter) Number(value float64, decimals int) string {
	return f.printer.Sprintf("%.*f", decimals, value)
}

// Currency formats with the English formatter.
func Currency(amount float64) string {
	return English.Currency(amount)
}

// Percentage formats with the English formatter.
func Percentage(ratio float64) string {
	return English.Percentage(ratio)
}
