package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/ssgo/internal/domain"
	"github.com/rgehrsitz/ssgo/internal/reference"
)

var (
	hundred = decimal.NewFromInt(100)
	two     = decimal.NewFromInt(2)
)

// InvestmentComparator simulates the alternative history where each year's
// payroll tax contribution was invested in a broad equity index instead.
type InvestmentComparator struct {
	TaxRates reference.TaxRateSchedule
	Returns  reference.EquityReturnSeries

	// HorizonYears are the forward-projection horizons.
	HorizonYears []int
	// AnnuityRates are the fixed withdrawal percentages illustrated for
	// each projected value.
	AnnuityRates []decimal.Decimal
}

// NewInvestmentComparator creates a comparator with the standard 5/10-year
// horizons and 3-6% annuity illustrations.
func NewInvestmentComparator(taxRates reference.TaxRateSchedule, returns reference.EquityReturnSeries) *InvestmentComparator {
	return &InvestmentComparator{
		TaxRates:     taxRates,
		Returns:      returns,
		HorizonYears: []int{5, 10},
		AnnuityRates: []decimal.Decimal{
			decimal.NewFromInt(3),
			decimal.NewFromInt(4),
			decimal.NewFromInt(5),
			decimal.NewFromInt(6),
		},
	}
}

// Compare runs the simulation over the earnings record and builds the full
// projection, including forward horizons and annuity illustrations.
// Returns ErrNoEarnings for an empty record.
func (ic *InvestmentComparator) Compare(record domain.EarningsRecord) (*domain.InvestmentProjection, error) {
	if len(record) == 0 {
		return nil, ErrNoEarnings
	}

	value, contributions := ic.simulate(record)

	// Two reference growth scenarios: the full published history and the
	// stretch overlapping the earnings record. "Low" halves the smaller
	// mean; "average" takes the larger as-is.
	baselineMean := ic.Returns.Mean()
	periodMean := ic.Returns.MeanRange(record.FirstYear(), record.LastYear())
	lowRate := decimal.Min(baselineMean, periodMean).Div(two)
	avgRate := decimal.Max(baselineMean, periodMean)

	projection := &domain.InvestmentProjection{
		TotalContributions: contributions,
		CurrentValue:       value,
		LowRate:            lowRate,
		AverageRate:        avgRate,
		Current: domain.ProjectedValue{
			Years:     0,
			Value:     value,
			Annuities: ic.annuities(value),
		},
	}
	for _, years := range ic.HorizonYears {
		lowValue := compound(value, lowRate, years)
		avgValue := compound(value, avgRate, years)
		projection.LowHorizons = append(projection.LowHorizons, domain.ProjectedValue{
			Years:     years,
			Rate:      lowRate,
			Value:     lowValue,
			Annuities: ic.annuities(lowValue),
		})
		projection.AvgHorizons = append(projection.AvgHorizons, domain.ProjectedValue{
			Years:     years,
			Rate:      avgRate,
			Value:     avgValue,
			Annuities: ic.annuities(avgValue),
		})
	}
	return projection, nil
}

// simulate walks the earnings years in chronological order. Each year the
// prior balance grows by that year's published return, then the year's
// contribution lands as a deposit at year end; the first contribution
// therefore sees no growth until the following year. Years without a
// published return grow 0%, a deliberate simplification.
func (ic *InvestmentComparator) simulate(record domain.EarningsRecord) (value, contributions decimal.Decimal) {
	years := record.Years()
	first := years[0]
	last := years[len(years)-1]
	rates := ic.TaxRates.ExpandByYear(first, last)

	value = decimal.Zero
	contributions = decimal.Zero
	for year := first; year <= last; year++ {
		if ret, ok := ic.Returns[year]; ok {
			value = value.Mul(decimal.NewFromInt(1).Add(ret.Div(hundred)))
		}
		earnings, ok := record[year]
		if !ok {
			continue
		}
		contribution := rates[year].Div(hundred).Mul(earnings)
		value = value.Add(contribution)
		contributions = contributions.Add(contribution)
	}
	return value, contributions
}

// annuities builds the fixed-percentage withdrawal illustrations for a
// principal amount.
func (ic *InvestmentComparator) annuities(principal decimal.Decimal) []domain.AnnuityIllustration {
	illustrations := make([]domain.AnnuityIllustration, 0, len(ic.AnnuityRates))
	for _, rate := range ic.AnnuityRates {
		annual := principal.Mul(rate).Div(hundred)
		illustrations = append(illustrations, domain.AnnuityIllustration{
			WithdrawalRate: rate,
			AnnualIncome:   annual,
			MonthlyIncome:  annual.Div(monthsPerYear),
		})
	}
	return illustrations
}

// compound grows a value at an annual percentage rate for a number of
// years.
func compound(value, ratePercent decimal.Decimal, years int) decimal.Decimal {
	growth := decimal.NewFromInt(1).Add(ratePercent.Div(hundred)).Pow(decimal.NewFromInt(int64(years)))
	return value.Mul(growth)
}
