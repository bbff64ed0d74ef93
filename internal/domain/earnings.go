package domain

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// EarningsRecord maps a calendar year to the Social Security taxable
// earnings reported for that year. Years need not be contiguous; a year
// absent from the map simply contributed no earnings.
type EarningsRecord map[int]decimal.Decimal

// FirstYear returns the earliest year present in the record.
// Calling it on an empty record is a programming error; use Len first.
func (er EarningsRecord) FirstYear() int {
	first := 0
	for year := range er {
		if first == 0 || year < first {
			first = year
		}
	}
	return first
}

// LastYear returns the latest year present in the record.
func (er EarningsRecord) LastYear() int {
	last := 0
	for year := range er {
		if year > last {
			last = year
		}
	}
	return last
}

// Years returns the record's years in ascending order.
func (er EarningsRecord) Years() []int {
	years := make([]int, 0, len(er))
	for year := range er {
		years = append(years, year)
	}
	sort.Ints(years)
	return years
}

// Total sums the raw earnings across all years.
func (er EarningsRecord) Total() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range er {
		total = total.Add(amount)
	}
	return total
}

// MissingYears returns the years that are present in the record but carry
// zero earnings, in ascending order. These are reported as a diagnostic;
// they still participate in indexing like any other year.
func (er EarningsRecord) MissingYears() []int {
	var missing []int
	for year, amount := range er {
		if amount.IsZero() {
			missing = append(missing, year)
		}
	}
	sort.Ints(missing)
	return missing
}

// Validate checks that every year carries a non-negative earnings amount.
func (er EarningsRecord) Validate() error {
	for year, amount := range er {
		if amount.IsNegative() {
			return fmt.Errorf("earnings for year %d are negative (%s)", year, amount.StringFixed(2))
		}
		if year < 1900 || year > 2200 {
			return fmt.Errorf("earnings year %d is out of range", year)
		}
	}
	return nil
}

// Clone returns an independent copy of the record.
func (er EarningsRecord) Clone() EarningsRecord {
	clone := make(EarningsRecord, len(er))
	for year, amount := range er {
		clone[year] = amount
	}
	return clone
}
