package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/reference"
)

// ErrNoEarnings is returned when a calculation is asked to run against an
// empty earnings record.
var ErrNoEarnings = fmt.Errorf("earnings record is empty")

// WageIndexer scales historical earnings to current-era wage levels using
// the national average wage index.
type WageIndexer struct {
	Series reference.WageIndexSeries
}

// NewWageIndexer creates a wage indexer over the given series.
func NewWageIndexer(series reference.WageIndexSeries) *WageIndexer {
	return &WageIndexer{Series: series}
}

// AdjustmentFactors computes the per-year wage adjustment factors needed to
// index an earnings record ending in lastEarningsYear.
//
// For each indexed year the factor is
//
//	1 + (latestIndex - index[y]) / index[y]
//
// which is >= 1 because the latest index value is the series maximum. The
// loop over the series is half-open: the final indexed year is excluded,
// so it picks up the flat 1.0 pad below along with any years past the end
// of the series. That mirrors the published calculation this tool
// reproduces; see TestAdjustmentFactorsLastIndexedYearIsPadded.
func (wi *WageIndexer) AdjustmentFactors(lastEarningsYear int) map[int]decimal.Decimal {
	firstIndexed := wi.Series.FirstYear()
	lastIndexed := wi.Series.LastYear()
	latest := wi.Series.Latest()

	factors := make(map[int]decimal.Decimal)
	lastComputed := firstIndexed
	for year := firstIndexed; year < lastIndexed; year++ {
		index := wi.Series[year]
		factors[year] = decimal.NewFromInt(1).Add(latest.Sub(index).Div(index))
		lastComputed = year
	}

	// Unindexed recent years are not inflated.
	for year := lastComputed + 1; year <= lastEarningsYear; year++ {
		factors[year] = decimal.NewFromInt(1)
	}

	return factors
}

// AdjustEarnings applies the adjustment factors to the raw earnings,
// producing indexed earnings for every year from the record's first through
// last year inclusive. Years in that span absent from the record adjust to
// zero. Returns ErrNoEarnings for an empty record.
func (wi *WageIndexer) AdjustEarnings(record domain.EarningsRecord) (map[int]decimal.Decimal, error) {
	if len(record) == 0 {
		return nil, ErrNoEarnings
	}

	firstYear := record.FirstYear()
	lastYear := record.LastYear()
	factors := wi.AdjustmentFactors(lastYear)

	adjusted := make(map[int]decimal.Decimal, len(record))
	for year := firstYear; year <= lastYear; year++ {
		earnings, ok := record[year]
		if !ok {
			continue
		}
		factor, ok := factors[year]
		if !ok {
			// Earnings predate the wage index coverage; leave them
			// unadjusted rather than dropping them.
			factor = decimal.NewFromInt(1)
		}
		adjusted[year] = earnings.Mul(factor)
	}
	return adjusted, nil
}
