// Package reference holds the published reference tables the calculation
// engine consumes: the national average wage index, the payroll tax rate
// schedule, and the equity index annual return series. The tables are
// versioned data; the engine treats them as read-only.
package reference

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// WageIndexSeries maps a year to the published national average wage index
// value for that year. Immutable once constructed.
type WageIndexSeries map[int]decimal.Decimal

// FirstYear returns the earliest year covered by the series.
func (s WageIndexSeries) FirstYear() int {
	first := 0
	for year := range s {
		if first == 0 || year < first {
			first = year
		}
	}
	return first
}

// LastYear returns the latest year covered by the series.
func (s WageIndexSeries) LastYear() int {
	last := 0
	for year := range s {
		if year > last {
			last = year
		}
	}
	return last
}

// Latest returns the most recent index value in the series. This is also
// the maximum value: the national average wage has risen every year the
// series covers, which is what makes adjustment factors >= 1.
func (s WageIndexSeries) Latest() decimal.Decimal {
	return s[s.LastYear()]
}

// Validate checks that every index value is positive.
func (s WageIndexSeries) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("wage index series is empty")
	}
	for year, value := range s {
		if !value.IsPositive() {
			return fmt.Errorf("wage index for year %d is not positive (%s)", year, value)
		}
	}
	return nil
}

// TaxRateSchedule maps the year a payroll tax rate change took effect to
// the new combined (employee plus employer) percentage rate. A rate holds
// until the next listed change.
type TaxRateSchedule map[int]decimal.Decimal

// ExpandByYear forward-fills the sparse schedule into a dense year->rate
// mapping covering first through last inclusive. Years before the schedule
// begins get a zero rate.
func (ts TaxRateSchedule) ExpandByYear(first, last int) map[int]decimal.Decimal {
	changeYears := make([]int, 0, len(ts))
	for year := range ts {
		changeYears = append(changeYears, year)
	}
	sort.Ints(changeYears)

	expanded := make(map[int]decimal.Decimal, last-first+1)
	for year := first; year <= last; year++ {
		rate := decimal.Zero
		for _, changeYear := range changeYears {
			if changeYear > year {
				break
			}
			rate = ts[changeYear]
		}
		expanded[year] = rate
	}
	return expanded
}

// EquityReturnSeries maps a year to the equity index's published annual
// percentage return for that year.
type EquityReturnSeries map[int]decimal.Decimal

// FirstYear returns the earliest year with a published return.
func (s EquityReturnSeries) FirstYear() int {
	first := 0
	for year := range s {
		if first == 0 || year < first {
			first = year
		}
	}
	return first
}

// LastYear returns the latest year with a published return.
func (s EquityReturnSeries) LastYear() int {
	last := 0
	for year := range s {
		if year > last {
			last = year
		}
	}
	return last
}

// Mean returns the arithmetic mean of all published annual returns.
func (s EquityReturnSeries) Mean() decimal.Decimal {
	return s.MeanRange(s.FirstYear(), s.LastYear())
}

// MeanRange returns the arithmetic mean of the published returns for years
// within [first, last]. Years in the range without a published return are
// skipped, not counted as zero. Returns zero when no years overlap.
func (s EquityReturnSeries) MeanRange(first, last int) decimal.Decimal {
	sum := decimal.Zero
	count := 0
	for year := first; year <= last; year++ {
		if ret, ok := s[year]; ok {
			sum = sum.Add(ret)
			count++
		}
	}
	if count == 0 {
		return decimal.Zero
	}
	return sum.Div(decimal.NewFromInt(int64(count)))
}

// Tables aggregates the reference data one engine run needs. Construct once
// and share freely; nothing in the calculation path mutates it.
type Tables struct {
	WageIndex     WageIndexSeries    `yaml:"wage_index" json:"wage_index"`
	TaxRates      TaxRateSchedule    `yaml:"tax_rates" json:"tax_rates"`
	EquityReturns EquityReturnSeries `yaml:"equity_returns" json:"equity_returns"`
}

// Validate checks the aggregate for usability.
func (t *Tables) Validate() error {
	if err := t.WageIndex.Validate(); err != nil {
		return fmt.Errorf("wage index: %w", err)
	}
	if len(t.TaxRates) == 0 {
		return fmt.Errorf("tax rate schedule is empty")
	}
	if len(t.EquityReturns) == 0 {
		return fmt.Errorf("equity return series is empty")
	}
	return nil
}

// DefaultTables returns the built-in published data: the SSA national
// average wage index, the OASDI combined rate history, and the S&P 500
// annual return series.
func DefaultTables() *Tables {
	return &Tables{
		WageIndex:     NationalAverageWageIndex(),
		TaxRates:      OASDITaxRateSchedule(),
		EquityReturns: SP500AnnualReturns(),
	}
}
