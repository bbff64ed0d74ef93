// Package datagen produces synthetic earnings records for trying out the
// calculator without a real statement download.
package datagen

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
)

// Options describe the synthetic career to generate.
type Options struct {
	// StartIncome is the first year's earnings.
	StartIncome decimal.Decimal
	// Growth is the year-over-year multiplier, e.g. 1.03 for 3% raises.
	Growth decimal.Decimal
	// Years is the career length.
	Years int
	// EndYear is the first year NOT included; the record covers
	// [EndYear-Years, EndYear).
	EndYear int
}

// DefaultOptions models a 32-year career at 3% annual raises ending just
// before endYear.
func DefaultOptions(endYear int) Options {
	return Options{
		StartIncome: decimal.NewFromInt(35000),
		Growth:      decimal.NewFromFloat(1.03),
		Years:       32,
		EndYear:     endYear,
	}
}

// Generate builds the synthetic earnings record.
func Generate(opts Options) (domain.EarningsRecord, error) {
	if opts.Years <= 0 {
		return nil, fmt.Errorf("career length must be positive, got %d", opts.Years)
	}
	if !opts.StartIncome.IsPositive() {
		return nil, fmt.Errorf("start income must be positive, got %s", opts.StartIncome)
	}
	if !opts.Growth.IsPositive() {
		return nil, fmt.Errorf("growth multiplier must be positive, got %s", opts.Growth)
	}

	record := make(domain.EarningsRecord, opts.Years)
	income := opts.StartIncome
	for year := opts.EndYear - opts.Years; year < opts.EndYear; year++ {
		record[year] = income.Round(2)
		income = income.Mul(opts.Growth)
	}
	return record, nil
}

// StatementXML renders the record in the statement download format so the
// generated data can exercise the XML loading path end to end.
func StatementXML(record domain.EarningsRecord) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	buf.WriteString(`<osss:OnlineSocialSecurityStatementData xmlns:osss="http://ssa.gov/osss/schemas/2.0">` + "\n")
	buf.WriteString("  <osss:EarningsRecord>\n")
	for _, year := range record.Years() {
		amount := record[year].StringFixed(2)
		fmt.Fprintf(&buf, "    <osss:Earnings startYear=\"%d\" endYear=\"%d\">\n", year, year)
		fmt.Fprintf(&buf, "      <osss:FicaEarnings>%s</osss:FicaEarnings>\n", amount)
		fmt.Fprintf(&buf, "      <osss:MedicareEarnings>%s</osss:MedicareEarnings>\n", amount)
		buf.WriteString("    </osss:Earnings>\n")
	}
	buf.WriteString("  </osss:EarningsRecord>\n")
	buf.WriteString("</osss:OnlineSocialSecurityStatementData>\n")
	return buf.Bytes()
}
