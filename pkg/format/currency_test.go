package format

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{"Small amount", 950, "SAR 950"},
		{"Thousands", 12000, "SAR 12,000"},
		{"Rounded budget", 795700.43, "SAR 795,700"},
		{"Millions", 1760000, "SAR 1,760,000"},
		{"Negative", -4200, "-SAR 4,200"},
		{"Zero", 0, "SAR 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Currency(tt.amount); got != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestArabicCurrencyCarriesRiyalSymbol(t *testing.T) {
	got := Arabic.Currency(201600)
	if !strings.HasSuffix(got, RiyalSymbol) {
		t.Errorf("Arabic.Currency() = %q, expected suffix %q", got, RiyalSymbol)
	}
	if strings.Contains(got, "SAR") {
		t.Errorf("Arabic.Currency() = %q, expected no latin currency code", got)
	}
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		ratio    float64
		expected string
	}{
		{0.35, "35.0%"},
		{0, "0.0%"},
		{0.4126, "41.3%"},
	}

	for _, tt := range tests {
		if got := Percentage(tt.ratio); got != tt.expected {
			t.Errorf("Percentage(%v) = %q, expected %q", tt.ratio, got, tt.expected)
		}
	}
}

func TestPercentAndNumber(t *testing.T) {
	f := New(language.English)
	if got := f.Percent(5.5); got != "5.5%" {
		t.Errorf("Percent(5.5) = %q, expected 5.5%%", got)
	}
	if got := f.Number(1234.567, 2); got != "1,234.57" {
		t.Errorf("Number() = %q, expected 1,234.57", got)
	}
}
