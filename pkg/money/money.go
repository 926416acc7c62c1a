// Package money formats decimal amounts and timestamps for storefront display.
package money

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var usPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatUSD renders an amount as a US dollar string, e.g. "$1,234.56".
// Negative amounts render with a leading minus: "-$3.50".
func FormatUSD(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Neg()
	}

	units := rounded.IntPart()
	cents := rounded.Sub(decimal.NewFromInt(units)).Mul(decimal.NewFromInt(100)).IntPart()

	return usPrinter.Sprintf("%s$%d.%02d", sign, units, cents)
}

// ParseUSD parses a decimal amount string, rejecting values that cannot
// represent a price.
func ParseUSD(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", value, err)
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %q cannot be negative", value)
	}
	return amount.Round(2), nil
}

// FormatOrderDate renders a timestamp the way the storefront shows purchase
// dates, e.g. "6/15/2025".
func FormatOrderDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
