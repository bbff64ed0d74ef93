package output

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(2) }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatYearList renders a list of years as a comma-separated string.
func FormatYearList(years []int) string {
	if len(years) == 0 {
		return "(none)"
	}
	parts := make([]string, len(years))
	for i, year := range years {
		parts[i] = strconv.Itoa(year)
	}
	return strings.Join(parts, ", ")
}

// ledgerLine renders the statement-style report line: a label padded with
// underscores, then a right-aligned amount.
func ledgerLine(label, value string) string {
	const width = 43
	padded := label + " "
	if len(padded) < width {
		padded += strings.Repeat("_", width-len(padded))
	}
	return padded + " " + value
}
